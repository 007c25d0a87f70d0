// Package parser parses glob-path expressions and predicates using participle.
package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/sansecio/pathexpr/ast"
)

// Parser parses expressions and predicates. A Parser is built once and is
// safe for concurrent use.
type Parser struct {
	expr *participle.Parser[exprGrammar]
	pred *participle.Parser[predicateGrammar]
}

// New creates a new expression parser.
func New() *Parser {
	lex := lexer.MustStateful(lexer.Rules{
		"Root": {
			{Name: "Whitespace", Pattern: `[\s]+`},
			{Name: "Glob", Pattern: `"[^"]*"`},
			{Name: "Number", Pattern: `[0-9]+(?:\.[0-9]+)?(?:[eE][+-]?[0-9]+)?`},
			{Name: "Unit", Pattern: `[kKmMgG][bB]?|%`},
			{Name: "CmpOp", Pattern: `<=|>=|==|<|>`},
			{Name: "AddOp", Pattern: `[+-]`},
			{Name: "MulOp", Pattern: `[*/]`},
			{Name: "LParen", Pattern: `\(`},
			{Name: "RParen", Pattern: `\)`},
		},
	})

	opts := []participle.Option{
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
		participle.UseLookahead(5),
	}

	return &Parser{
		expr: participle.MustBuild[exprGrammar](opts...),
		pred: participle.MustBuild[predicateGrammar](opts...),
	}
}

// ParseExpression parses a numeric expression. The whole input must be
// consumed; trailing tokens are a parse error carrying their position.
func (p *Parser) ParseExpression(input string) (ast.Expr, error) {
	e, err := p.expr.ParseString("", input)
	if err != nil {
		return nil, err
	}
	return convertExpr(e), nil
}

// ParsePredicate parses a comparison between two expressions.
func (p *Parser) ParsePredicate(input string) (*ast.Comparison, error) {
	pr, err := p.pred.ParseString("", input)
	if err != nil {
		return nil, err
	}
	return &ast.Comparison{
		Op:    pr.Op,
		Left:  convertExpr(pr.Left),
		Right: convertExpr(pr.Right),
	}, nil
}

// Grammar to AST conversion. Additive and multiplicative chains fold
// left-associatively: a - b - c becomes (-(- a b) c).

func convertExpr(e *exprGrammar) ast.Expr {
	left := convertTerm(e.Left)
	for _, rest := range e.Rest {
		left = ast.BinaryExpr{Op: rest.Op, Left: left, Right: convertTerm(rest.Term)}
	}
	return left
}

func convertTerm(t *termGrammar) ast.Expr {
	left := convertFactor(t.Left)
	for _, rest := range t.Rest {
		left = ast.BinaryExpr{Op: rest.Op, Left: left, Right: convertFactor(rest.Factor)}
	}
	return left
}

func convertFactor(f *factorGrammar) ast.Expr {
	switch {
	case f.Glob != nil:
		return ast.NewVariable(unquoteGlob(*f.Glob))
	case f.Paren != nil:
		return convertExpr(f.Paren)
	default:
		return convertConstant(f.Constant)
	}
}

func convertConstant(c *constantGrammar) ast.Constant {
	v := c.Value
	if c.Sign == "-" {
		v = -v
	}
	if c.Unit != nil {
		v *= unitScale(*c.Unit)
	}
	return ast.Constant{Value: v}
}

// unitScale maps a unit suffix to its multiplier. Byte-scale units are
// decimal, not binary, and the trailing b is optional: 10k == 10kb == 1e4.
func unitScale(unit string) float64 {
	switch strings.ToLower(unit) {
	case "k", "kb":
		return 1e3
	case "m", "mb":
		return 1e6
	case "g", "gb":
		return 1e9
	case "%":
		return 0.01
	}
	return 1
}

func unquoteGlob(s string) string {
	return strings.Trim(s, `"`)
}
