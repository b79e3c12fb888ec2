package interpreter

import (
	"bytes"
	"testing"

	"auburn/interpreter-go/pkg/ast"
	"auburn/interpreter-go/pkg/runtime"
)

// runModule loads and runs a module, returning main's value and the
// echoed output.
func runModule(t *testing.T, module *ast.Module) (runtime.Value, string) {
	t.Helper()
	var out bytes.Buffer
	interp := NewWithOutput(&out)
	val, err := interp.RunModule(module)
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	return val, out.String()
}

// runModuleExpectingError loads and runs a module that must fail,
// returning the error and any output echoed before the failure.
func runModuleExpectingError(t *testing.T, module *ast.Module) (error, string) {
	t.Helper()
	var out bytes.Buffer
	interp := NewWithOutput(&out)
	if _, err := interp.RunModule(module); err != nil {
		return err, out.String()
	}
	t.Fatalf("expected evaluation to fail")
	return nil, ""
}

func expectFault(t *testing.T, err error, kind runtime.FaultKind) *runtime.Fault {
	t.Helper()
	fault, ok := runtime.AsFault(err)
	if !ok {
		t.Fatalf("expected %s fault, got %v", kind, err)
	}
	if fault.FaultKind != kind {
		t.Fatalf("expected %s fault, got %s: %s", kind, fault.FaultKind, fault.Message)
	}
	return fault
}

func expectNumber(t *testing.T, val runtime.Value, want float64) {
	t.Helper()
	num, ok := val.(runtime.NumberValue)
	if !ok {
		t.Fatalf("expected number result, got %#v", val)
	}
	if num.Val != want {
		t.Fatalf("expected %v, got %v", want, num.Val)
	}
}

// vecModule builds the canonical Vec program: an associated `new`
// constructor, squared-length `len`, and a `norm` that divides each
// component by the squared length (the language has no square root).
func vecModule(extra ...ast.Statement) *ast.Module {
	body := []ast.Statement{
		ast.StructDef("Vec",
			ast.FieldDef(ast.Ty("f64"), "x"),
			ast.FieldDef(ast.Ty("f64"), "y"),
			ast.FieldDef(ast.Ty("f64"), "z"),
		),
		ast.Methods("Vec",
			ast.Fn("new",
				[]*ast.FunctionParameter{
					ast.Param("x", ast.Ty("f64")),
					ast.Param("y", ast.Ty("f64")),
					ast.Param("z", ast.Ty("f64")),
				},
				ast.Ty("Vec"),
				ast.StructLit("Vec",
					ast.FieldShorthand("x"),
					ast.FieldShorthand("y"),
					ast.FieldShorthand("z"),
				),
			),
			ast.Method("len", nil, ast.Ty("f64"),
				ast.Bin("+",
					ast.Bin("+",
						ast.Bin("*", ast.Field(ast.ID("self"), "x"), ast.Field(ast.ID("self"), "x")),
						ast.Bin("*", ast.Field(ast.ID("self"), "y"), ast.Field(ast.ID("self"), "y")),
					),
					ast.Bin("*", ast.Field(ast.ID("self"), "z"), ast.Field(ast.ID("self"), "z")),
				),
			),
			ast.Method("norm", nil, ast.Ty("Vec"),
				ast.Let("l", ast.MethodCall(ast.ID("self"), "len")),
				ast.StructLit("Vec",
					ast.FieldInit("x", ast.Bin("/", ast.Field(ast.ID("self"), "x"), ast.ID("l"))),
					ast.FieldInit("y", ast.Bin("/", ast.Field(ast.ID("self"), "y"), ast.ID("l"))),
					ast.FieldInit("z", ast.Bin("/", ast.Field(ast.ID("self"), "z"), ast.ID("l"))),
				),
			),
		),
	}
	return ast.Mod(append(body, extra...)...)
}
