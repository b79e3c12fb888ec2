package ast

import (
	"encoding/json"
	"fmt"
)

// DecodeModule parses a serialized Auburn module. The wire shape is the
// node-per-object form the external front end emits: every node is a
// JSON object carrying a "type" discriminator.
func DecodeModule(data []byte) (*Module, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode module: %w", err)
	}
	node, err := decodeNode(raw)
	if err != nil {
		return nil, err
	}
	module, ok := node.(*Module)
	if !ok {
		return nil, fmt.Errorf("decode module: top-level node is %s, expected Module", node.NodeType())
	}
	return module, nil
}

func decodeNode(node map[string]any) (Node, error) {
	typ, _ := node["type"].(string)
	switch NodeType(typ) {
	case NodeModule:
		body, err := decodeStatements(node["body"])
		if err != nil {
			return nil, err
		}
		return NewModule(body), nil
	case NodeIdentifier:
		name, _ := node["name"].(string)
		if name == "" {
			return nil, fmt.Errorf("identifier requires a name")
		}
		return NewIdentifier(name), nil
	case NodeNumberLiteral:
		value, ok := node["value"].(float64)
		if !ok {
			return nil, fmt.Errorf("number literal requires numeric value, got %T", node["value"])
		}
		return NewNumberLiteral(value), nil
	case NodeSimpleTypeExpression:
		name, err := decodeIdentifier(node["name"])
		if err != nil {
			return nil, err
		}
		return NewSimpleTypeExpression(name), nil
	case NodeUnaryExpression:
		op, _ := node["operator"].(string)
		operand, err := decodeExpression(node["operand"])
		if err != nil {
			return nil, err
		}
		return NewUnaryExpression(UnaryOperator(op), operand), nil
	case NodeBinaryExpression:
		op, _ := node["operator"].(string)
		left, err := decodeExpression(node["left"])
		if err != nil {
			return nil, err
		}
		right, err := decodeExpression(node["right"])
		if err != nil {
			return nil, err
		}
		return NewBinaryExpression(op, left, right), nil
	case NodeFieldAccessExpression:
		object, err := decodeExpression(node["object"])
		if err != nil {
			return nil, err
		}
		field, err := decodeIdentifier(node["field"])
		if err != nil {
			return nil, err
		}
		return NewFieldAccessExpression(object, field), nil
	case NodeCallExpression:
		callee, err := decodeExpression(node["callee"])
		if err != nil {
			return nil, err
		}
		args, err := decodeExpressions(node["arguments"])
		if err != nil {
			return nil, err
		}
		return NewCallExpression(callee, args), nil
	case NodeStructFieldInitializer:
		value, err := decodeExpression(node["value"])
		if err != nil {
			return nil, err
		}
		var name *Identifier
		if node["name"] != nil {
			name, err = decodeIdentifier(node["name"])
			if err != nil {
				return nil, err
			}
		}
		shorthand, _ := node["isShorthand"].(bool)
		return NewStructFieldInitializer(value, name, shorthand), nil
	case NodeStructLiteral:
		structType, err := decodeIdentifier(node["structType"])
		if err != nil {
			return nil, err
		}
		rawFields, _ := node["fields"].([]any)
		fields := make([]*StructFieldInitializer, 0, len(rawFields))
		for _, rawField := range rawFields {
			child, err := decodeChild(rawField)
			if err != nil {
				return nil, err
			}
			init, ok := child.(*StructFieldInitializer)
			if !ok {
				return nil, fmt.Errorf("struct literal field is %s, expected StructFieldInitializer", child.NodeType())
			}
			fields = append(fields, init)
		}
		return NewStructLiteral(structType, fields), nil
	case NodeBlockExpression:
		body, err := decodeStatements(node["body"])
		if err != nil {
			return nil, err
		}
		return NewBlockExpression(body), nil
	case NodeLetStatement:
		name, err := decodeIdentifier(node["name"])
		if err != nil {
			return nil, err
		}
		value, err := decodeExpression(node["value"])
		if err != nil {
			return nil, err
		}
		annotation, err := decodeOptionalType(node["typeAnnotation"])
		if err != nil {
			return nil, err
		}
		return NewLetStatement(name, annotation, value), nil
	case NodeAssignmentStatement:
		target, err := decodeExpression(node["target"])
		if err != nil {
			return nil, err
		}
		value, err := decodeExpression(node["value"])
		if err != nil {
			return nil, err
		}
		return NewAssignmentStatement(target, value), nil
	case NodeEchoStatement:
		value, err := decodeExpression(node["value"])
		if err != nil {
			return nil, err
		}
		return NewEchoStatement(value), nil
	case NodeReturnStatement:
		var argument Expression
		if node["argument"] != nil {
			var err error
			argument, err = decodeExpression(node["argument"])
			if err != nil {
				return nil, err
			}
		}
		return NewReturnStatement(argument), nil
	case NodeStructFieldDefinition:
		name, err := decodeIdentifier(node["name"])
		if err != nil {
			return nil, err
		}
		fieldType, err := decodeOptionalType(node["fieldType"])
		if err != nil {
			return nil, err
		}
		return NewStructFieldDefinition(fieldType, name), nil
	case NodeStructDefinition:
		id, err := decodeIdentifier(node["id"])
		if err != nil {
			return nil, err
		}
		rawFields, _ := node["fields"].([]any)
		fields := make([]*StructFieldDefinition, 0, len(rawFields))
		for _, rawField := range rawFields {
			child, err := decodeChild(rawField)
			if err != nil {
				return nil, err
			}
			def, ok := child.(*StructFieldDefinition)
			if !ok {
				return nil, fmt.Errorf("struct definition field is %s, expected StructFieldDefinition", child.NodeType())
			}
			fields = append(fields, def)
		}
		return NewStructDefinition(id, fields), nil
	case NodeFunctionParameter:
		name, err := decodeIdentifier(node["name"])
		if err != nil {
			return nil, err
		}
		paramType, err := decodeOptionalType(node["paramType"])
		if err != nil {
			return nil, err
		}
		return NewFunctionParameter(name, paramType), nil
	case NodeFunctionDefinition:
		id, err := decodeIdentifier(node["id"])
		if err != nil {
			return nil, err
		}
		rawParams, _ := node["params"].([]any)
		params := make([]*FunctionParameter, 0, len(rawParams))
		for _, rawParam := range rawParams {
			child, err := decodeChild(rawParam)
			if err != nil {
				return nil, err
			}
			param, ok := child.(*FunctionParameter)
			if !ok {
				return nil, fmt.Errorf("function parameter is %s, expected FunctionParameter", child.NodeType())
			}
			params = append(params, param)
		}
		bodyRaw, ok := node["body"].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("function definition requires a body block")
		}
		bodyNode, err := decodeNode(bodyRaw)
		if err != nil {
			return nil, err
		}
		body, ok := bodyNode.(*BlockExpression)
		if !ok {
			return nil, fmt.Errorf("function body is %s, expected BlockExpression", bodyNode.NodeType())
		}
		returnType, err := decodeOptionalType(node["returnType"])
		if err != nil {
			return nil, err
		}
		takesSelf, _ := node["takesSelf"].(bool)
		return NewFunctionDefinition(id, params, body, returnType, takesSelf), nil
	case NodeMethodsDefinition:
		target, err := decodeIdentifier(node["targetType"])
		if err != nil {
			return nil, err
		}
		rawDefs, _ := node["definitions"].([]any)
		defs := make([]*FunctionDefinition, 0, len(rawDefs))
		for _, rawDef := range rawDefs {
			child, err := decodeChild(rawDef)
			if err != nil {
				return nil, err
			}
			def, ok := child.(*FunctionDefinition)
			if !ok {
				return nil, fmt.Errorf("methods entry is %s, expected FunctionDefinition", child.NodeType())
			}
			defs = append(defs, def)
		}
		return NewMethodsDefinition(target, defs), nil
	default:
		return nil, fmt.Errorf("unknown node type %q", typ)
	}
}

func decodeChild(raw any) (Node, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid node entry %T", raw)
	}
	return decodeNode(obj)
}

func decodeExpression(raw any) (Expression, error) {
	child, err := decodeChild(raw)
	if err != nil {
		return nil, err
	}
	expr, ok := child.(Expression)
	if !ok {
		return nil, fmt.Errorf("node %s is not an expression", child.NodeType())
	}
	return expr, nil
}

func decodeExpressions(raw any) ([]Expression, error) {
	entries, _ := raw.([]any)
	out := make([]Expression, 0, len(entries))
	for _, entry := range entries {
		expr, err := decodeExpression(entry)
		if err != nil {
			return nil, err
		}
		out = append(out, expr)
	}
	return out, nil
}

func decodeStatements(raw any) ([]Statement, error) {
	entries, _ := raw.([]any)
	out := make([]Statement, 0, len(entries))
	for _, entry := range entries {
		child, err := decodeChild(entry)
		if err != nil {
			return nil, err
		}
		stmt, ok := child.(Statement)
		if !ok {
			return nil, fmt.Errorf("node %s is not a statement", child.NodeType())
		}
		out = append(out, stmt)
	}
	return out, nil
}

func decodeIdentifier(raw any) (*Identifier, error) {
	child, err := decodeChild(raw)
	if err != nil {
		return nil, err
	}
	ident, ok := child.(*Identifier)
	if !ok {
		return nil, fmt.Errorf("node %s is not an identifier", child.NodeType())
	}
	return ident, nil
}

func decodeOptionalType(raw any) (TypeExpression, error) {
	if raw == nil {
		return nil, nil
	}
	child, err := decodeChild(raw)
	if err != nil {
		return nil, err
	}
	typeExpr, ok := child.(TypeExpression)
	if !ok {
		return nil, fmt.Errorf("node %s is not a type expression", child.NodeType())
	}
	return typeExpr, nil
}
