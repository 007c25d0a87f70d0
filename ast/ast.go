// Package ast defines the expression tree for glob-path metric expressions.
package ast

// Expr represents a numeric expression node.
type Expr interface {
	exprNode()
}

// Constant represents a numeric literal, already scaled by any unit suffix.
type Constant struct {
	Value float64
}

func (Constant) exprNode() {}

// BinaryExpr represents an arithmetic operation (+, -, *, /).
type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
}

func (BinaryExpr) exprNode() {}

// Comparison represents a predicate comparing two expressions
// (<, <=, ==, >=, >). Comparisons do not nest inside expressions.
type Comparison struct {
	Op    string
	Left  Expr
	Right Expr
}

// Variables returns the variable leaves of an expression subtree.
// Duplicates are preserved; callers that need distinct variables
// deduplicate by glob text.
func Variables(e Expr) []*Variable {
	switch e := e.(type) {
	case *Variable:
		return []*Variable{e}
	case BinaryExpr:
		return append(Variables(e.Left), Variables(e.Right)...)
	default:
		return nil
	}
}

// Variables returns the variable leaves on both sides of the comparison.
func (c *Comparison) Variables() []*Variable {
	return append(Variables(c.Left), Variables(c.Right)...)
}
