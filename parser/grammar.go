package parser

// Grammar structs for participle parser.
// Precedence low to high: comparison, additive, multiplicative, factor.

type predicateGrammar struct {
	Left  *exprGrammar `parser:"@@"`
	Op    string       `parser:"@CmpOp"`
	Right *exprGrammar `parser:"@@"`
}

type exprGrammar struct {
	Left *termGrammar  `parser:"@@"`
	Rest []*opTermPair `parser:"@@*"`
}

type opTermPair struct {
	Op   string       `parser:"@AddOp"`
	Term *termGrammar `parser:"@@"`
}

type termGrammar struct {
	Left *factorGrammar  `parser:"@@"`
	Rest []*opFactorPair `parser:"@@*"`
}

type opFactorPair struct {
	Op     string         `parser:"@MulOp"`
	Factor *factorGrammar `parser:"@@"`
}

type factorGrammar struct {
	Glob     *string          `parser:"( @Glob"`
	Paren    *exprGrammar     `parser:"| '(' @@ ')'"`
	Constant *constantGrammar `parser:"| @@ )"`
}

type constantGrammar struct {
	Sign  string  `parser:"@AddOp?"`
	Value float64 `parser:"@Number"`
	Unit  *string `parser:"@Unit?"`
}
