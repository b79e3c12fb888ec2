package ast

type NodeType string

const (
	NodeIdentifier             NodeType = "Identifier"
	NodeNumberLiteral          NodeType = "NumberLiteral"
	NodeSimpleTypeExpression   NodeType = "SimpleTypeExpression"
	NodeUnaryExpression        NodeType = "UnaryExpression"
	NodeBinaryExpression       NodeType = "BinaryExpression"
	NodeFieldAccessExpression  NodeType = "FieldAccessExpression"
	NodeCallExpression         NodeType = "CallExpression"
	NodeStructLiteral          NodeType = "StructLiteral"
	NodeStructFieldInitializer NodeType = "StructFieldInitializer"
	NodeBlockExpression        NodeType = "BlockExpression"
	NodeLetStatement           NodeType = "LetStatement"
	NodeAssignmentStatement    NodeType = "AssignmentStatement"
	NodeEchoStatement          NodeType = "EchoStatement"
	NodeReturnStatement        NodeType = "ReturnStatement"
	NodeStructFieldDefinition  NodeType = "StructFieldDefinition"
	NodeStructDefinition       NodeType = "StructDefinition"
	NodeFunctionParameter      NodeType = "FunctionParameter"
	NodeFunctionDefinition     NodeType = "FunctionDefinition"
	NodeMethodsDefinition      NodeType = "MethodsDefinition"
	NodeModule                 NodeType = "Module"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces.

type Expression interface {
	Node
	expressionNode()
	statementNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

type TypeExpression interface {
	Node
	typeExpressionNode()
}

type typeExpressionMarker struct{}

func (typeExpressionMarker) typeExpressionNode() {}

// Identifier

type Identifier struct {
	nodeImpl
	expressionMarker
	statementMarker

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

// Literals

// NumberLiteral is the only literal form in the Auburn core; every
// numeric value is an IEEE-754 double regardless of the declared type.
type NumberLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Value float64 `json:"value"`
}

func NewNumberLiteral(value float64) *NumberLiteral {
	return &NumberLiteral{nodeImpl: newNodeImpl(NodeNumberLiteral), Value: value}
}

// Type expressions

type SimpleTypeExpression struct {
	nodeImpl
	typeExpressionMarker

	Name *Identifier `json:"name"`
}

func NewSimpleTypeExpression(name *Identifier) *SimpleTypeExpression {
	return &SimpleTypeExpression{nodeImpl: newNodeImpl(NodeSimpleTypeExpression), Name: name}
}

// Expressions

type UnaryOperator string

const (
	UnaryNegate UnaryOperator = "-"
)

type UnaryExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Operator UnaryOperator `json:"operator"`
	Operand  Expression    `json:"operand"`
}

func NewUnaryExpression(operator UnaryOperator, operand Expression) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(NodeUnaryExpression), Operator: operator, Operand: operand}
}

type BinaryExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Operator string     `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

func NewBinaryExpression(operator string, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Operator: operator, Left: left, Right: right}
}

// FieldAccessExpression covers `expr.field` as well as the callee
// position of `receiver.method(...)` and `TypeName.associated_fn(...)`;
// the dispatcher decides which of those a given access means.
type FieldAccessExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Object Expression  `json:"object"`
	Field  *Identifier `json:"field"`
}

func NewFieldAccessExpression(object Expression, field *Identifier) *FieldAccessExpression {
	return &FieldAccessExpression{nodeImpl: newNodeImpl(NodeFieldAccessExpression), Object: object, Field: field}
}

type CallExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Callee    Expression   `json:"callee"`
	Arguments []Expression `json:"arguments"`
}

func NewCallExpression(callee Expression, arguments []Expression) *CallExpression {
	if arguments == nil {
		arguments = []Expression{}
	}
	return &CallExpression{nodeImpl: newNodeImpl(NodeCallExpression), Callee: callee, Arguments: arguments}
}

type StructFieldInitializer struct {
	nodeImpl

	Name        *Identifier `json:"name,omitempty"`
	Value       Expression  `json:"value"`
	IsShorthand bool        `json:"isShorthand"`
}

func NewStructFieldInitializer(value Expression, name *Identifier, isShorthand bool) *StructFieldInitializer {
	return &StructFieldInitializer{nodeImpl: newNodeImpl(NodeStructFieldInitializer), Name: name, Value: value, IsShorthand: isShorthand}
}

type StructLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	StructType *Identifier               `json:"structType"`
	Fields     []*StructFieldInitializer `json:"fields"`
}

func NewStructLiteral(structType *Identifier, fields []*StructFieldInitializer) *StructLiteral {
	if fields == nil {
		fields = []*StructFieldInitializer{}
	}
	return &StructLiteral{nodeImpl: newNodeImpl(NodeStructLiteral), StructType: structType, Fields: fields}
}

type BlockExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Body []Statement `json:"body"`
}

func NewBlockExpression(body []Statement) *BlockExpression {
	if body == nil {
		body = []Statement{}
	}
	return &BlockExpression{nodeImpl: newNodeImpl(NodeBlockExpression), Body: body}
}

// Statements

type LetStatement struct {
	nodeImpl
	statementMarker

	Name           *Identifier    `json:"name"`
	TypeAnnotation TypeExpression `json:"typeAnnotation,omitempty"`
	Value          Expression     `json:"value"`
}

func NewLetStatement(name *Identifier, typeAnnotation TypeExpression, value Expression) *LetStatement {
	return &LetStatement{nodeImpl: newNodeImpl(NodeLetStatement), Name: name, TypeAnnotation: typeAnnotation, Value: value}
}

// AssignmentStatement writes through an existing binding; the target is
// either an Identifier or a FieldAccessExpression.
type AssignmentStatement struct {
	nodeImpl
	statementMarker

	Target Expression `json:"target"`
	Value  Expression `json:"value"`
}

func NewAssignmentStatement(target, value Expression) *AssignmentStatement {
	return &AssignmentStatement{nodeImpl: newNodeImpl(NodeAssignmentStatement), Target: target, Value: value}
}

type EchoStatement struct {
	nodeImpl
	statementMarker

	Value Expression `json:"value"`
}

func NewEchoStatement(value Expression) *EchoStatement {
	return &EchoStatement{nodeImpl: newNodeImpl(NodeEchoStatement), Value: value}
}

type ReturnStatement struct {
	nodeImpl
	statementMarker

	Argument Expression `json:"argument,omitempty"`
}

func NewReturnStatement(argument Expression) *ReturnStatement {
	return &ReturnStatement{nodeImpl: newNodeImpl(NodeReturnStatement), Argument: argument}
}
