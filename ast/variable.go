package ast

import (
	"strings"

	regexp "github.com/wasilibs/go-re2"
)

// Variable represents a glob-path leaf like A.*.B. The glob is compiled
// once, at construction, into an anchored pattern with one capture group
// per wildcard.
type Variable struct {
	Glob      string
	pattern   *regexp.Regexp
	wildcards int
}

func (*Variable) exprNode() {}

// NewVariable compiles a glob into a Variable. Literal dots match only
// dots; each * matches any run of characters (dots included) and is
// captured; the pattern always matches whole keys, never substrings.
func NewVariable(glob string) *Variable {
	var b strings.Builder
	b.WriteString(`\A`)
	wildcards := 0
	for i := 0; i < len(glob); i++ {
		c := glob[i]
		if c == '*' {
			b.WriteString(`(.*)`)
			wildcards++
			continue
		}
		if isRegexMeta(c) {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteString(`\z`)

	return &Variable{
		Glob:      glob,
		pattern:   regexp.MustCompile(b.String()),
		wildcards: wildcards,
	}
}

// Wildcards returns the number of * wildcards in the glob.
func (v *Variable) Wildcards() int {
	return v.wildcards
}

// Match tests a symbol-table key against the compiled glob. On a match it
// returns the substrings captured by the wildcards, in glob order; a
// wildcard-free glob matches with an empty capture tuple.
func (v *Variable) Match(key string) ([]string, bool) {
	m := v.pattern.FindStringSubmatch(key)
	if m == nil {
		return nil, false
	}
	return m[1:], true
}

// Equal reports whether two variables were built from the same glob text.
func (v *Variable) Equal(o *Variable) bool {
	return o != nil && v.Glob == o.Glob
}

func isRegexMeta(c byte) bool {
	switch c {
	case '\\', '.', '+', '?', '(', ')', '[', ']', '{', '}', '|', '^', '$':
		return true
	}
	return false
}
