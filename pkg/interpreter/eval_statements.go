package interpreter

import (
	"auburn/interpreter-go/pkg/ast"
	"auburn/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateStatement(node ast.Statement, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case ast.Expression:
		return i.evaluateExpression(n, env)
	case *ast.LetStatement:
		return i.evaluateLetStatement(n, env)
	case *ast.AssignmentStatement:
		return i.evaluateAssignmentStatement(n, env)
	case *ast.EchoStatement:
		return i.evaluateEchoStatement(n, env)
	case *ast.ReturnStatement:
		return i.evaluateReturnStatement(n, env)
	case *ast.StructDefinition, *ast.MethodsDefinition, *ast.FunctionDefinition:
		return nil, runtime.NewFault(runtime.FaultTypeMismatch, "Definitions are only allowed at module top level")
	default:
		return nil, runtime.NewFault(runtime.FaultTypeMismatch, "Unsupported statement type %s", n.NodeType())
	}
}

// evaluateBlock runs statements in a freshly nested frame. The block's
// value is the value of its final expression statement; an empty block
// or one ending in a non-expression statement yields unit.
func (i *Interpreter) evaluateBlock(block *ast.BlockExpression, env *runtime.Environment) (runtime.Value, error) {
	scope := env.Extend()
	var result runtime.Value = runtime.UnitValue{}
	for _, stmt := range block.Body {
		val, err := i.evaluateStatement(stmt, scope)
		if err != nil {
			return nil, err
		}
		if _, ok := stmt.(ast.Expression); ok {
			result = val
		} else {
			result = runtime.UnitValue{}
		}
	}
	return result, nil
}

func (i *Interpreter) evaluateLetStatement(stmt *ast.LetStatement, env *runtime.Environment) (runtime.Value, error) {
	if stmt.Name == nil {
		return nil, runtime.NewFault(runtime.FaultUnboundName, "Let binding requires a name")
	}
	val, err := i.evaluateExpression(stmt.Value, env)
	if err != nil {
		return nil, err
	}
	env.Define(stmt.Name.Name, runtime.Copy(val))
	return runtime.UnitValue{}, nil
}

// evaluateAssignmentStatement implements the explicit update syntax:
// writing through an existing variable binding, or overwriting one
// field of a struct instance. Fields can never be added or removed.
func (i *Interpreter) evaluateAssignmentStatement(stmt *ast.AssignmentStatement, env *runtime.Environment) (runtime.Value, error) {
	val, err := i.evaluateExpression(stmt.Value, env)
	if err != nil {
		return nil, err
	}
	switch target := stmt.Target.(type) {
	case *ast.Identifier:
		if err := env.Assign(target.Name, runtime.Copy(val)); err != nil {
			return nil, err
		}
		return runtime.UnitValue{}, nil
	case *ast.FieldAccessExpression:
		obj, err := i.evaluateExpression(target.Object, env)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*runtime.StructInstanceValue)
		if !ok {
			return nil, runtime.NewFault(runtime.FaultTypeMismatch, "Field assignment requires a struct value, got %s", obj.Kind())
		}
		if target.Field == nil {
			return nil, runtime.NewFault(runtime.FaultNoSuchField, "Field assignment requires a field name")
		}
		if _, ok := inst.Fields[target.Field.Name]; !ok {
			return nil, runtime.NewFault(runtime.FaultNoSuchField, "No field '%s' on struct '%s'", target.Field.Name, inst.TypeName())
		}
		inst.Fields[target.Field.Name] = runtime.Copy(val)
		return runtime.UnitValue{}, nil
	default:
		return nil, runtime.NewFault(runtime.FaultTypeMismatch, "Assignment target must be a variable or field")
	}
}

func (i *Interpreter) evaluateEchoStatement(stmt *ast.EchoStatement, env *runtime.Environment) (runtime.Value, error) {
	val, err := i.evaluateExpression(stmt.Value, env)
	if err != nil {
		return nil, err
	}
	if err := i.emit(val); err != nil {
		return nil, err
	}
	return runtime.UnitValue{}, nil
}

func (i *Interpreter) evaluateReturnStatement(stmt *ast.ReturnStatement, env *runtime.Environment) (runtime.Value, error) {
	var result runtime.Value = runtime.UnitValue{}
	if stmt.Argument != nil {
		val, err := i.evaluateExpression(stmt.Argument, env)
		if err != nil {
			return nil, err
		}
		result = val
	}
	return nil, returnSignal{value: result}
}
