package ast

// Shorthand constructors used by tests and hand-built programs.

// Identifier and literal helpers.

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Num(value float64) *NumberLiteral {
	return NewNumberLiteral(value)
}

// Type expression helpers.

func Ty(name string) *SimpleTypeExpression {
	return NewSimpleTypeExpression(ID(name))
}

// Expression helpers.

func Neg(operand Expression) *UnaryExpression {
	return NewUnaryExpression(UnaryNegate, operand)
}

func Bin(operator string, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(operator, left, right)
}

func Field(object Expression, name string) *FieldAccessExpression {
	return NewFieldAccessExpression(object, ID(name))
}

func Call(callee Expression, args ...Expression) *CallExpression {
	return NewCallExpression(callee, args)
}

// MethodCall builds `receiver.name(args...)`; with an identifier naming
// a struct type as the receiver it reads as an associated call.
func MethodCall(receiver Expression, name string, args ...Expression) *CallExpression {
	return NewCallExpression(Field(receiver, name), args)
}

func FieldInit(name string, value Expression) *StructFieldInitializer {
	return NewStructFieldInitializer(value, ID(name), false)
}

// FieldShorthand builds the `field` initializer meaning `field: field`.
func FieldShorthand(name string) *StructFieldInitializer {
	return NewStructFieldInitializer(ID(name), nil, true)
}

func StructLit(typeName string, fields ...*StructFieldInitializer) *StructLiteral {
	return NewStructLiteral(ID(typeName), fields)
}

func Block(body ...Statement) *BlockExpression {
	return NewBlockExpression(body)
}

// Statement helpers.

func Let(name string, value Expression) *LetStatement {
	return NewLetStatement(ID(name), nil, value)
}

func LetTyped(name string, typeAnnotation TypeExpression, value Expression) *LetStatement {
	return NewLetStatement(ID(name), typeAnnotation, value)
}

func Assign(target, value Expression) *AssignmentStatement {
	return NewAssignmentStatement(target, value)
}

func Echo(value Expression) *EchoStatement {
	return NewEchoStatement(value)
}

func Ret(argument Expression) *ReturnStatement {
	return NewReturnStatement(argument)
}

// Definition helpers.

func FieldDef(fieldType TypeExpression, name string) *StructFieldDefinition {
	return NewStructFieldDefinition(fieldType, ID(name))
}

func StructDef(name string, fields ...*StructFieldDefinition) *StructDefinition {
	return NewStructDefinition(ID(name), fields)
}

func Param(name string, paramType TypeExpression) *FunctionParameter {
	return NewFunctionParameter(ID(name), paramType)
}

func Fn(name string, params []*FunctionParameter, returnType TypeExpression, body ...Statement) *FunctionDefinition {
	return NewFunctionDefinition(ID(name), params, Block(body...), returnType, false)
}

// Method builds an instance method; the implicit receiver is bound as
// `self` at dispatch time and never appears in params.
func Method(name string, params []*FunctionParameter, returnType TypeExpression, body ...Statement) *FunctionDefinition {
	return NewFunctionDefinition(ID(name), params, Block(body...), returnType, true)
}

func Methods(targetType string, definitions ...*FunctionDefinition) *MethodsDefinition {
	return NewMethodsDefinition(ID(targetType), definitions)
}

func Mod(body ...Statement) *Module {
	return NewModule(body)
}
