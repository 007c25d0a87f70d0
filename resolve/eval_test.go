package resolve

import (
	"math"
	"testing"

	"github.com/sansecio/pathexpr/ast"
	"github.com/sansecio/pathexpr/parser"
)

var specTable = SymbolTable{
	"A.foo.B": 2.0,
	"X.Y.bar": 16.0,
	"X.Y.foo": 12.0,
	"K.foo.M": 7.0,
}

func parseExpr(t *testing.T, input string) ast.Expr {
	t.Helper()
	e, err := parser.New().ParseExpression(input)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", input, err)
	}
	return e
}

func parsePred(t *testing.T, input string) *ast.Comparison {
	t.Helper()
	c, err := parser.New().ParsePredicate(input)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", input, err)
	}
	return c
}

func TestValueWithConsistentResolution(t *testing.T) {
	e := parseExpr(t, `2 * "A.*.B" / 1 + ("X.Y.*" / 4) - "K.*.M"`)
	v, ok := Value(e, specTable)
	if !ok {
		t.Fatal("expected a value")
	}
	if v != 0.0 {
		t.Errorf("expected 0.0, got %v", v)
	}
}

func TestHoldsWithConsistentResolution(t *testing.T) {
	c := parsePred(t, `2 * "A.*.B" + "X.Y.*" / 4 >= "K.*.M"`)
	v, ok := Holds(c, specTable)
	if !ok {
		t.Fatal("expected a value")
	}
	if !v {
		t.Error("expected predicate to hold")
	}
}

func TestAbsentAfterRemovingUniqueMatch(t *testing.T) {
	table := SymbolTable{}
	for k, v := range specTable {
		table[k] = v
	}
	delete(table, "X.Y.foo")

	e := parseExpr(t, `2 * "A.*.B" / 1 + ("X.Y.*" / 4) - "K.*.M"`)
	if _, ok := Value(e, table); ok {
		t.Error("expected absent value for expression")
	}

	c := parsePred(t, `2 * "A.*.B" + "X.Y.*" / 4 >= "K.*.M"`)
	if _, ok := Holds(c, table); ok {
		t.Error("expected absent value for predicate")
	}
}

func TestValueConstantOnly(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"1 + 2", 3},
		{"2 * 3 + 4", 10},
		{"10 - 2 - 3", 5},
		{"8 / 2 / 2", 2},
		{"10 % * 100", 10},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, ok := Value(parseExpr(t, tt.input), SymbolTable{})
			if !ok {
				t.Fatal("constant expression must always yield a value")
			}
			if v != tt.want {
				t.Errorf("expected %v, got %v", tt.want, v)
			}
		})
	}
}

func TestEvalAbsencePropagates(t *testing.T) {
	e := parseExpr(t, `1 + "A.*.B"`)
	if _, ok := Eval(e, Bindings{}); ok {
		t.Error("expected absence to propagate from unbound variable")
	}
	if v, ok := Eval(e, Bindings{"A.*.B": 2}); !ok || v != 3 {
		t.Errorf("expected 3, got %v (ok=%v)", v, ok)
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	// Raw float64 semantics: Inf and NaN are present values, not absent.
	v, ok := Value(parseExpr(t, "1 / 0"), SymbolTable{})
	if !ok || !math.IsInf(v, 1) {
		t.Errorf("expected +Inf, got %v (ok=%v)", v, ok)
	}

	v, ok = Value(parseExpr(t, "0 / 0"), SymbolTable{})
	if !ok || !math.IsNaN(v) {
		t.Errorf("expected NaN, got %v (ok=%v)", v, ok)
	}
}

func TestEvalComparisonOps(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"1 < 2", true},
		{"2 < 1", false},
		{"2 <= 2", true},
		{"2 == 2", true},
		{"2 == 2.5", false},
		{"2 >= 3", false},
		{"3 > 2", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, ok := Holds(parsePred(t, tt.input), SymbolTable{})
			if !ok {
				t.Fatal("constant predicate must always yield a value")
			}
			if v != tt.want {
				t.Errorf("expected %v, got %v", tt.want, v)
			}
		})
	}
}

func TestHoldsAbsentComparison(t *testing.T) {
	c := parsePred(t, `"A.*.B" < 10`)
	if _, ok := Holds(c, SymbolTable{}); ok {
		t.Error("expected absent comparison")
	}
}

func TestValueReusableAcrossTables(t *testing.T) {
	e := parseExpr(t, `"A.*.B" + 1`)

	v, ok := Value(e, SymbolTable{"A.foo.B": 2})
	if !ok || v != 3 {
		t.Errorf("first table: expected 3, got %v (ok=%v)", v, ok)
	}

	v, ok = Value(e, SymbolTable{"A.bar.B": 9})
	if !ok || v != 10 {
		t.Errorf("second table: expected 10, got %v (ok=%v)", v, ok)
	}

	if _, ok = Value(e, SymbolTable{"other": 1}); ok {
		t.Error("third table: expected absent value")
	}
}
