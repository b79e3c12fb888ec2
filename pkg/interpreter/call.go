package interpreter

import (
	"auburn/interpreter-go/pkg/ast"
	"auburn/interpreter-go/pkg/runtime"
)

// returnSignal carries an early return through the evaluator as an
// error; the dispatcher absorbs it at the call boundary.
type returnSignal struct {
	value runtime.Value
}

func (returnSignal) Error() string { return "return outside function body" }

// evaluateCall resolves a call expression with the static rule: an
// identifier callee names a free function; `TypeName.fn(...)` names an
// associated function of the declared type; any other `expr.fn(...)`
// is an instance method on the receiver's type. Arguments evaluate
// left to right in the caller before the callee frame exists.
func (i *Interpreter) evaluateCall(call *ast.CallExpression, env *runtime.Environment) (runtime.Value, error) {
	switch callee := call.Callee.(type) {
	case *ast.Identifier:
		fn, ok := i.decls.Function(callee.Name)
		if !ok {
			return nil, runtime.NewFault(runtime.FaultUnboundName, "Undefined function '%s'", callee.Name)
		}
		args, err := i.evaluateArguments(call.Arguments, env)
		if err != nil {
			return nil, err
		}
		return i.dispatch(fn, nil, args)
	case *ast.FieldAccessExpression:
		if callee.Field == nil {
			return nil, runtime.NewFault(runtime.FaultUnboundName, "Call target requires a name")
		}
		if typeName, ok := i.staticTypeTarget(callee.Object, env); ok {
			fn, ok := i.decls.Associated(typeName, callee.Field.Name)
			if !ok {
				return nil, runtime.NewFault(runtime.FaultUnboundName, "No associated function '%s' for type '%s'", callee.Field.Name, typeName)
			}
			args, err := i.evaluateArguments(call.Arguments, env)
			if err != nil {
				return nil, err
			}
			return i.dispatch(fn, nil, args)
		}
		receiver, err := i.evaluateExpression(callee.Object, env)
		if err != nil {
			return nil, err
		}
		inst, ok := receiver.(*runtime.StructInstanceValue)
		if !ok {
			return nil, runtime.NewFault(runtime.FaultTypeMismatch, "Method call requires a struct receiver, got %s", receiver.Kind())
		}
		fn, ok := i.decls.Method(inst.TypeName(), callee.Field.Name)
		if !ok {
			return nil, runtime.NewFault(runtime.FaultUnboundName, "No method '%s' on type '%s'", callee.Field.Name, inst.TypeName())
		}
		args, err := i.evaluateArguments(call.Arguments, env)
		if err != nil {
			return nil, err
		}
		return i.dispatch(fn, inst, args)
	default:
		return nil, runtime.NewFault(runtime.FaultTypeMismatch, "Call target %s is not callable", call.Callee.NodeType())
	}
}

// staticTypeTarget reports whether the callee object is a bare type
// name: an identifier that names a declared struct and is not shadowed
// by a variable binding in scope.
func (i *Interpreter) staticTypeTarget(object ast.Expression, env *runtime.Environment) (string, bool) {
	ident, ok := object.(*ast.Identifier)
	if !ok {
		return "", false
	}
	if env.Has(ident.Name) {
		return "", false
	}
	if !i.decls.HasStruct(ident.Name) {
		return "", false
	}
	return ident.Name, true
}

func (i *Interpreter) evaluateArguments(args []ast.Expression, env *runtime.Environment) ([]runtime.Value, error) {
	values := make([]runtime.Value, 0, len(args))
	for _, argExpr := range args {
		val, err := i.evaluateExpression(argExpr, env)
		if err != nil {
			return nil, err
		}
		values = append(values, val)
	}
	return values, nil
}

// dispatch invokes a resolved function body on a fresh frame. Arguments
// bind by value (independent copies); the receiver, when present, binds
// as `self` unchanged so nested self-calls observe the same receiver
// value the outer call did.
func (i *Interpreter) dispatch(fn *runtime.FunctionValue, receiver runtime.Value, args []runtime.Value) (runtime.Value, error) {
	decl := fn.Declaration
	if decl == nil || decl.Body == nil {
		return nil, runtime.NewFault(runtime.FaultUnboundName, "Call target is missing its body")
	}
	if len(args) != len(decl.Params) {
		name := "<anonymous>"
		if decl.ID != nil {
			name = decl.ID.Name
		}
		return nil, runtime.NewFault(runtime.FaultArityMismatch, "Function '%s' expects %d arguments, got %d", name, len(decl.Params), len(args))
	}
	if i.depth >= i.maxDepth {
		return nil, runtime.NewFault(runtime.FaultStackOverflow, "Call depth exceeded %d frames", i.maxDepth)
	}
	i.depth++
	defer func() { i.depth-- }()

	frame := runtime.NewEnvironment(nil)
	if receiver != nil {
		frame.Define("self", receiver)
	}
	for idx, param := range decl.Params {
		if param == nil || param.Name == nil {
			return nil, runtime.NewFault(runtime.FaultUnboundName, "Function parameter %d is missing its name", idx)
		}
		frame.Define(param.Name.Name, runtime.Copy(args[idx]))
	}
	result, err := i.evaluateBlock(decl.Body, frame)
	if err != nil {
		if ret, ok := err.(returnSignal); ok {
			return ret.value, nil
		}
		return nil, err
	}
	return result, nil
}
