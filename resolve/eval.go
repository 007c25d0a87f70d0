package resolve

import "github.com/sansecio/pathexpr/ast"

// Eval evaluates an expression over bindings. The second return is false
// when any variable in the tree is unbound; absence propagates upward, so
// a binary node is present only if both sides are. Division by zero
// follows float64 semantics: Inf and NaN are present values.
func Eval(e ast.Expr, b Bindings) (float64, bool) {
	switch e := e.(type) {
	case ast.Constant:
		return e.Value, true

	case *ast.Variable:
		v, ok := b[e.Glob]
		return v, ok

	case ast.BinaryExpr:
		l, ok := Eval(e.Left, b)
		if !ok {
			return 0, false
		}
		r, ok := Eval(e.Right, b)
		if !ok {
			return 0, false
		}
		switch e.Op {
		case "+":
			return l + r, true
		case "-":
			return l - r, true
		case "*":
			return l * r, true
		case "/":
			return l / r, true
		}
		return 0, false

	default:
		return 0, false
	}
}

// EvalComparison evaluates a predicate over bindings. Equality is exact
// float64 equality, no epsilon.
func EvalComparison(c *ast.Comparison, b Bindings) (bool, bool) {
	l, ok := Eval(c.Left, b)
	if !ok {
		return false, false
	}
	r, ok := Eval(c.Right, b)
	if !ok {
		return false, false
	}
	switch c.Op {
	case "<":
		return l < r, true
	case "<=":
		return l <= r, true
	case "==":
		return l == r, true
	case ">=":
		return l >= r, true
	case ">":
		return l > r, true
	}
	return false, false
}

// Value resolves an expression's variables against the table and evaluates
// it. An expression without variables always yields a value.
func Value(e ast.Expr, table SymbolTable) (float64, bool) {
	b := Resolve(ast.Variables(e), table)
	if b == nil {
		return 0, false
	}
	return Eval(e, b)
}

// Holds resolves a predicate's variables against the table and evaluates
// the comparison.
func Holds(c *ast.Comparison, table SymbolTable) (bool, bool) {
	b := Resolve(c.Variables(), table)
	if b == nil {
		return false, false
	}
	return EvalComparison(c, b)
}
