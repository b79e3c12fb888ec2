package ast

// Definitions

type StructFieldDefinition struct {
	nodeImpl

	Name      *Identifier    `json:"name"`
	FieldType TypeExpression `json:"fieldType"`
}

func NewStructFieldDefinition(fieldType TypeExpression, name *Identifier) *StructFieldDefinition {
	return &StructFieldDefinition{nodeImpl: newNodeImpl(NodeStructFieldDefinition), Name: name, FieldType: fieldType}
}

type StructDefinition struct {
	nodeImpl
	statementMarker

	ID     *Identifier              `json:"id"`
	Fields []*StructFieldDefinition `json:"fields"`
}

func NewStructDefinition(id *Identifier, fields []*StructFieldDefinition) *StructDefinition {
	if fields == nil {
		fields = []*StructFieldDefinition{}
	}
	return &StructDefinition{nodeImpl: newNodeImpl(NodeStructDefinition), ID: id, Fields: fields}
}

// FieldNames returns the declared field names in declaration order.
func (d *StructDefinition) FieldNames() []string {
	names := make([]string, 0, len(d.Fields))
	for _, field := range d.Fields {
		if field != nil && field.Name != nil {
			names = append(names, field.Name.Name)
		}
	}
	return names
}

type FunctionParameter struct {
	nodeImpl

	Name      *Identifier    `json:"name"`
	ParamType TypeExpression `json:"paramType,omitempty"`
}

func NewFunctionParameter(name *Identifier, paramType TypeExpression) *FunctionParameter {
	return &FunctionParameter{nodeImpl: newNodeImpl(NodeFunctionParameter), Name: name, ParamType: paramType}
}

// FunctionDefinition describes a free function, an associated function,
// or an instance method. TakesSelf distinguishes the latter two inside a
// methods block; the receiver is never listed in Params.
type FunctionDefinition struct {
	nodeImpl
	statementMarker

	ID         *Identifier          `json:"id"`
	Params     []*FunctionParameter `json:"params"`
	Body       *BlockExpression     `json:"body"`
	ReturnType TypeExpression       `json:"returnType,omitempty"`
	TakesSelf  bool                 `json:"takesSelf"`
}

func NewFunctionDefinition(id *Identifier, params []*FunctionParameter, body *BlockExpression, returnType TypeExpression, takesSelf bool) *FunctionDefinition {
	if params == nil {
		params = []*FunctionParameter{}
	}
	return &FunctionDefinition{nodeImpl: newNodeImpl(NodeFunctionDefinition), ID: id, Params: params, Body: body, ReturnType: returnType, TakesSelf: takesSelf}
}

// MethodsDefinition attaches a set of function definitions to a struct
// type: definitions with TakesSelf are instance methods, the rest are
// associated functions reachable as `TypeName.fn(...)`.
type MethodsDefinition struct {
	nodeImpl
	statementMarker

	TargetType  *Identifier           `json:"targetType"`
	Definitions []*FunctionDefinition `json:"definitions"`
}

func NewMethodsDefinition(targetType *Identifier, definitions []*FunctionDefinition) *MethodsDefinition {
	if definitions == nil {
		definitions = []*FunctionDefinition{}
	}
	return &MethodsDefinition{nodeImpl: newNodeImpl(NodeMethodsDefinition), TargetType: targetType, Definitions: definitions}
}

type Module struct {
	nodeImpl

	Body []Statement `json:"body"`
}

func NewModule(body []Statement) *Module {
	if body == nil {
		body = []Statement{}
	}
	return &Module{nodeImpl: newNodeImpl(NodeModule), Body: body}
}
