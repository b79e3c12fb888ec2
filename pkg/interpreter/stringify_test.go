package interpreter

import (
	"math"
	"testing"

	"auburn/interpreter-go/pkg/ast"
	"auburn/interpreter-go/pkg/runtime"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{-1, "-1.0"},
		{50, "50.0"},
		{0.06, "0.06"},
		{0.1, "0.1"},
		{2.5, "2.5"},
		{-3.75, "-3.75"},
		{1.0 / 3.0, "0.3333333333333333"},
		{0.4242640687119285, "0.4242640687119285"},
		{1e21, "1e+21"},
		{1e-7, "1e-07"},
		{math.MaxFloat64, "1.7976931348623157e+308"},
	}
	for _, tc := range cases {
		if got := formatNumber(tc.in); got != tc.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	def := &runtime.StructDefinitionValue{Node: ast.StructDef("Point",
		ast.FieldDef(ast.Ty("f64"), "x"),
		ast.FieldDef(ast.Ty("f64"), "y"),
	)}
	inst := &runtime.StructInstanceValue{
		Definition: def,
		Fields: map[string]runtime.Value{
			"x": runtime.NumberValue{Val: 1},
			"y": runtime.NumberValue{Val: 2},
		},
	}
	cases := []struct {
		name string
		val  runtime.Value
		want string
	}{
		{"number", runtime.NumberValue{Val: 4.5}, "4.5"},
		{"unit", runtime.UnitValue{}, "()"},
		{"struct", inst, "Point { x: 1.0, y: 2.0 }"},
		{"struct definition", def, "<struct Point>"},
		{"function", &runtime.FunctionValue{Declaration: ast.Fn("f", nil, nil)}, "<function>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatValue(tc.val); got != tc.want {
				t.Fatalf("FormatValue = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatEmptyStruct(t *testing.T) {
	def := &runtime.StructDefinitionValue{Node: ast.StructDef("Nothing")}
	inst := &runtime.StructInstanceValue{Definition: def, Fields: map[string]runtime.Value{}}
	if got := FormatValue(inst); got != "Nothing {}" {
		t.Fatalf("FormatValue = %q", got)
	}
}
