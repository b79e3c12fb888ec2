package interpreter

import (
	"auburn/interpreter-go/pkg/ast"
	"auburn/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		return runtime.NumberValue{Val: n.Value}, nil
	case *ast.Identifier:
		return env.Get(n.Name)
	case *ast.UnaryExpression:
		return i.evaluateUnaryExpression(n, env)
	case *ast.BinaryExpression:
		return i.evaluateBinaryExpression(n, env)
	case *ast.FieldAccessExpression:
		return i.evaluateFieldAccess(n, env)
	case *ast.StructLiteral:
		return i.evaluateStructLiteral(n, env)
	case *ast.CallExpression:
		return i.evaluateCall(n, env)
	case *ast.BlockExpression:
		return i.evaluateBlock(n, env)
	default:
		return nil, runtime.NewFault(runtime.FaultTypeMismatch, "Unsupported expression type %s", n.NodeType())
	}
}

func (i *Interpreter) evaluateUnaryExpression(expr *ast.UnaryExpression, env *runtime.Environment) (runtime.Value, error) {
	operand, err := i.evaluateExpression(expr.Operand, env)
	if err != nil {
		return nil, err
	}
	num, ok := operand.(runtime.NumberValue)
	if !ok {
		return nil, runtime.NewFault(runtime.FaultTypeMismatch, "Unary '%s' requires a numeric operand, got %s", expr.Operator, operand.Kind())
	}
	switch expr.Operator {
	case ast.UnaryNegate:
		return runtime.NumberValue{Val: -num.Val}, nil
	default:
		return nil, runtime.NewFault(runtime.FaultTypeMismatch, "Unsupported unary operator '%s'", expr.Operator)
	}
}

// evaluateBinaryExpression applies +, -, * and /. Operands evaluate
// strictly left to right; both must be numbers. Division by zero is a
// fault, never an Inf/NaN result.
func (i *Interpreter) evaluateBinaryExpression(expr *ast.BinaryExpression, env *runtime.Environment) (runtime.Value, error) {
	leftVal, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	rightVal, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}
	left, ok := leftVal.(runtime.NumberValue)
	if !ok {
		return nil, runtime.NewFault(runtime.FaultTypeMismatch, "Arithmetic requires numeric operands, got %s", leftVal.Kind())
	}
	right, ok := rightVal.(runtime.NumberValue)
	if !ok {
		return nil, runtime.NewFault(runtime.FaultTypeMismatch, "Arithmetic requires numeric operands, got %s", rightVal.Kind())
	}
	switch expr.Operator {
	case "+":
		return runtime.NumberValue{Val: left.Val + right.Val}, nil
	case "-":
		return runtime.NumberValue{Val: left.Val - right.Val}, nil
	case "*":
		return runtime.NumberValue{Val: left.Val * right.Val}, nil
	case "/":
		if right.Val == 0 {
			return nil, runtime.NewFault(runtime.FaultDivisionByZero, "Division by zero")
		}
		return runtime.NumberValue{Val: left.Val / right.Val}, nil
	default:
		return nil, runtime.NewFault(runtime.FaultTypeMismatch, "Unsupported binary operator '%s'", expr.Operator)
	}
}

func (i *Interpreter) evaluateFieldAccess(expr *ast.FieldAccessExpression, env *runtime.Environment) (runtime.Value, error) {
	obj, err := i.evaluateExpression(expr.Object, env)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*runtime.StructInstanceValue)
	if !ok {
		return nil, runtime.NewFault(runtime.FaultTypeMismatch, "Field access requires a struct value, got %s", obj.Kind())
	}
	if expr.Field == nil {
		return nil, runtime.NewFault(runtime.FaultNoSuchField, "Field access requires a field name")
	}
	val, ok := inst.Fields[expr.Field.Name]
	if !ok {
		return nil, runtime.NewFault(runtime.FaultNoSuchField, "No field '%s' on struct '%s'", expr.Field.Name, inst.TypeName())
	}
	return val, nil
}

// evaluateStructLiteral builds an instance whose field set exactly
// matches the declared layout. Field expressions evaluate in the order
// the literal wrote them; the instance always renders in declaration
// order regardless.
func (i *Interpreter) evaluateStructLiteral(lit *ast.StructLiteral, env *runtime.Environment) (runtime.Value, error) {
	if lit.StructType == nil {
		return nil, runtime.NewFault(runtime.FaultUnboundName, "Struct literal requires a struct type name")
	}
	typeName := lit.StructType.Name
	def, ok := i.decls.Struct(typeName)
	if !ok {
		return nil, runtime.NewFault(runtime.FaultUnboundName, "Undefined struct type '%s'", typeName)
	}
	fields := make(map[string]runtime.Value, len(lit.Fields))
	for _, init := range lit.Fields {
		name := ""
		if init.Name != nil {
			name = init.Name.Name
		} else if init.IsShorthand {
			if ident, ok := init.Value.(*ast.Identifier); ok {
				name = ident.Name
			}
		}
		if name == "" {
			return nil, runtime.NewFault(runtime.FaultUnknownField, "Struct literal field initializer requires a field name")
		}
		if !def.HasField(name) {
			return nil, runtime.NewFault(runtime.FaultUnknownField, "Unknown field '%s' in literal of struct '%s'", name, typeName)
		}
		if _, dup := fields[name]; dup {
			return nil, runtime.NewFault(runtime.FaultUnknownField, "Duplicate field '%s' in literal of struct '%s'", name, typeName)
		}
		val, err := i.evaluateExpression(init.Value, env)
		if err != nil {
			return nil, err
		}
		fields[name] = runtime.Copy(val)
	}
	for _, declared := range def.Node.FieldNames() {
		if _, ok := fields[declared]; !ok {
			return nil, runtime.NewFault(runtime.FaultMissingField, "Missing field '%s' for struct '%s'", declared, typeName)
		}
	}
	return &runtime.StructInstanceValue{Definition: def, Fields: fields}, nil
}
