package interpreter

import (
	"testing"

	"auburn/interpreter-go/pkg/ast"
	"auburn/interpreter-go/pkg/runtime"
)

func TestNumberLiteralEvaluation(t *testing.T) {
	module := ast.Mod(
		ast.Fn("main", nil, nil, ast.Num(42.5)),
	)
	val, _ := runModule(t, module)
	expectNumber(t, val, 42.5)
}

func TestArithmetic(t *testing.T) {
	cases := []struct {
		name string
		expr ast.Expression
		want float64
	}{
		{"add", ast.Bin("+", ast.Num(1.5), ast.Num(2.25)), 3.75},
		{"sub", ast.Bin("-", ast.Num(10), ast.Num(4)), 6},
		{"mul", ast.Bin("*", ast.Num(3), ast.Num(4)), 12},
		{"div", ast.Bin("/", ast.Num(9), ast.Num(2)), 4.5},
		{"negate", ast.Neg(ast.Num(7)), -7},
		{"nested", ast.Bin("*", ast.Bin("+", ast.Num(1), ast.Num(2)), ast.Num(4)), 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			module := ast.Mod(ast.Fn("main", nil, nil, tc.expr))
			val, _ := runModule(t, module)
			expectNumber(t, val, tc.want)
		})
	}
}

func TestOperandsEvaluateLeftToRight(t *testing.T) {
	// side echoes its argument before yielding it, so the echo order
	// records the evaluation order.
	module := ast.Mod(
		ast.Fn("side", []*ast.FunctionParameter{ast.Param("n", ast.Ty("f64"))}, ast.Ty("f64"),
			ast.Echo(ast.ID("n")),
			ast.ID("n"),
		),
		ast.Fn("main", nil, nil,
			ast.Echo(ast.Bin("+", ast.Call(ast.ID("side"), ast.Num(1)), ast.Call(ast.ID("side"), ast.Num(2)))),
		),
	)
	_, out := runModule(t, module)
	if out != "1.0\n2.0\n3.0\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestLetBindingAndShadowing(t *testing.T) {
	module := ast.Mod(
		ast.Fn("main", nil, nil,
			ast.Let("a", ast.Num(1)),
			ast.Let("a", ast.Num(2)),
			ast.ID("a"),
		),
	)
	val, _ := runModule(t, module)
	expectNumber(t, val, 2)
}

func TestVariableAssignment(t *testing.T) {
	module := ast.Mod(
		ast.Fn("main", nil, nil,
			ast.Let("a", ast.Num(1)),
			ast.Assign(ast.ID("a"), ast.Num(5)),
			ast.ID("a"),
		),
	)
	val, _ := runModule(t, module)
	expectNumber(t, val, 5)
}

func TestBlockValueIsLastExpression(t *testing.T) {
	module := ast.Mod(
		ast.Fn("main", nil, nil,
			ast.Num(1),
			ast.Num(2),
		),
	)
	val, _ := runModule(t, module)
	expectNumber(t, val, 2)
}

func TestBlockEndingInStatementYieldsUnit(t *testing.T) {
	module := ast.Mod(
		ast.Fn("main", nil, nil,
			ast.Num(1),
			ast.Let("a", ast.Num(2)),
		),
	)
	val, _ := runModule(t, module)
	if _, ok := val.(runtime.UnitValue); !ok {
		t.Fatalf("expected unit result, got %#v", val)
	}
}

func TestEmptyMainYieldsUnit(t *testing.T) {
	module := ast.Mod(ast.Fn("main", nil, nil))
	val, _ := runModule(t, module)
	if _, ok := val.(runtime.UnitValue); !ok {
		t.Fatalf("expected unit result, got %#v", val)
	}
}

func TestReturnShortCircuitsBody(t *testing.T) {
	module := ast.Mod(
		ast.Fn("pick", nil, ast.Ty("f64"),
			ast.Ret(ast.Num(7)),
			ast.Echo(ast.Num(999)),
			ast.Num(999),
		),
		ast.Fn("main", nil, nil, ast.Call(ast.ID("pick"))),
	)
	val, out := runModule(t, module)
	expectNumber(t, val, 7)
	if out != "" {
		t.Fatalf("statements after return ran, output %q", out)
	}
}

func TestFreeFunctionCallWithArguments(t *testing.T) {
	module := ast.Mod(
		ast.Fn("add",
			[]*ast.FunctionParameter{ast.Param("a", ast.Ty("f64")), ast.Param("b", ast.Ty("f64"))},
			ast.Ty("f64"),
			ast.Bin("+", ast.ID("a"), ast.ID("b")),
		),
		ast.Fn("main", nil, nil, ast.Call(ast.ID("add"), ast.Num(2), ast.Num(3))),
	)
	val, _ := runModule(t, module)
	expectNumber(t, val, 5)
}

func TestBlockScopeDoesNotLeakLets(t *testing.T) {
	// A let inside a nested block is invisible after the block ends.
	module := ast.Mod(
		ast.Fn("main", nil, nil,
			ast.Block(ast.Let("hidden", ast.Num(1))),
			ast.ID("hidden"),
		),
	)
	err, _ := runModuleExpectingError(t, module)
	expectFault(t, err, runtime.FaultUnboundName)
}

func TestPureExpressionIsIdempotent(t *testing.T) {
	expr := ast.Bin("/", ast.Bin("+", ast.Num(1), ast.Num(2)), ast.Num(7))
	env := runtime.NewEnvironment(nil)
	interp := New()
	first, err := interp.evaluateExpression(expr, env)
	if err != nil {
		t.Fatalf("first evaluation failed: %v", err)
	}
	second, err := interp.evaluateExpression(expr, env)
	if err != nil {
		t.Fatalf("second evaluation failed: %v", err)
	}
	if !runtime.Equal(first, second) {
		t.Fatalf("expected identical results, got %#v and %#v", first, second)
	}
}

func TestEchoWritesNewlinePerValue(t *testing.T) {
	module := ast.Mod(
		ast.Fn("main", nil, nil,
			ast.Echo(ast.Num(1)),
			ast.Echo(ast.Num(2)),
		),
	)
	_, out := runModule(t, module)
	if out != "1.0\n2.0\n" {
		t.Fatalf("unexpected output %q", out)
	}
}
