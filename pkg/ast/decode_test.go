package ast

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestDecodeModuleRoundTrip(t *testing.T) {
	module := Mod(
		StructDef("Vec",
			FieldDef(Ty("f64"), "x"),
			FieldDef(Ty("f64"), "y"),
		),
		Methods("Vec",
			Fn("new",
				[]*FunctionParameter{Param("x", Ty("f64")), Param("y", Ty("f64"))},
				Ty("Vec"),
				StructLit("Vec", FieldShorthand("x"), FieldShorthand("y")),
			),
			Method("len", nil, Ty("f64"),
				Bin("+",
					Bin("*", Field(ID("self"), "x"), Field(ID("self"), "x")),
					Bin("*", Field(ID("self"), "y"), Field(ID("self"), "y")),
				),
			),
		),
		Fn("main", nil, nil,
			LetTyped("v", Ty("Vec"), MethodCall(ID("Vec"), "new", Num(3), Num(4))),
			Assign(Field(ID("v"), "x"), Neg(Num(3))),
			Echo(MethodCall(ID("v"), "len")),
			Ret(Num(0)),
		),
	)

	data, err := json.Marshal(module)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	decoded, err := DecodeModule(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !reflect.DeepEqual(decoded, module) {
		t.Fatalf("round trip changed the module:\n got %#v\nwant %#v", decoded, module)
	}
}

func TestDecodeModuleFromWireJSON(t *testing.T) {
	src := `{
		"type": "Module",
		"body": [
			{
				"type": "FunctionDefinition",
				"id": {"type": "Identifier", "name": "main"},
				"params": [],
				"body": {
					"type": "BlockExpression",
					"body": [
						{"type": "EchoStatement", "value": {"type": "NumberLiteral", "value": 1}}
					]
				},
				"returnType": null,
				"takesSelf": false
			}
		]
	}`
	module, err := DecodeModule([]byte(src))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(module.Body) != 1 {
		t.Fatalf("expected one top-level statement, got %d", len(module.Body))
	}
	fn, ok := module.Body[0].(*FunctionDefinition)
	if !ok {
		t.Fatalf("expected function definition, got %T", module.Body[0])
	}
	if fn.ID.Name != "main" || len(fn.Body.Body) != 1 {
		t.Fatalf("unexpected function shape: %#v", fn)
	}
}

func TestDecodeModuleErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"invalid json", `{`, "decode module"},
		{"top level not module", `{"type": "Identifier", "name": "a"}`, "expected Module"},
		{"unknown node type", `{"type": "Module", "body": [{"type": "WhileLoop"}]}`, "unknown node type"},
		{"identifier without name", `{"type": "Module", "body": [{"type": "EchoStatement", "value": {"type": "Identifier"}}]}`, "identifier requires a name"},
		{"number with string value", `{"type": "Module", "body": [{"type": "EchoStatement", "value": {"type": "NumberLiteral", "value": "3"}}]}`, "numeric value"},
		{
			"function without body",
			`{"type": "Module", "body": [{"type": "FunctionDefinition", "id": {"type": "Identifier", "name": "f"}, "params": []}]}`,
			"requires a body block",
		},
		{
			"statement where expression expected",
			`{"type": "Module", "body": [{"type": "EchoStatement", "value": {"type": "LetStatement", "name": {"type": "Identifier", "name": "a"}, "value": {"type": "NumberLiteral", "value": 1}}}]}`,
			"not an expression",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeModule([]byte(tc.src))
			if err == nil {
				t.Fatalf("expected decode to fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}
