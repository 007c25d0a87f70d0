// Package resolve matches expression variables against a symbol table and
// evaluates expressions over the resulting bindings.
package resolve

import (
	"sort"
	"strconv"
	"strings"

	"github.com/sansecio/pathexpr/ast"
)

// SymbolTable maps concrete dotted paths to their current values. It is
// treated as an immutable snapshot for the duration of one Resolve call;
// callers synchronize any concurrent mutation externally.
type SymbolTable map[string]float64

// Bindings maps a variable's glob text to its resolved value. Variables
// built from the same glob text share one binding. A nil Bindings means
// no consistent resolution exists; it is not an error.
type Bindings map[string]float64

// Resolve finds, for every distinct variable, a symbol-table key matched
// by its glob, accepting only an assignment where all variables bind their
// wildcards to the identical capture tuple. Matches are grouped by capture
// tuple and a group qualifies only when every variable matched inside it;
// anything less yields nil.
//
// Tie-breaks are deterministic: keys are visited in sorted order and later
// matches overwrite earlier ones, so within a group each variable takes its
// lexicographically greatest matching key, and among multiple qualifying
// groups the one with the lexicographically smallest capture tuple wins.
func Resolve(vars []*ast.Variable, table SymbolTable) Bindings {
	distinct := make(map[string]*ast.Variable, len(vars))
	for _, v := range vars {
		distinct[v.Glob] = v
	}
	if len(distinct) == 0 {
		return Bindings{}
	}

	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Capture tuple -> glob -> matched key. An equi-join on the tuple of
	// wildcard values: only tuples with a row for every variable survive.
	groups := make(map[string]map[string]string)
	for _, key := range keys {
		for glob, v := range distinct {
			captures, ok := v.Match(key)
			if !ok {
				continue
			}
			tuple := encodeTuple(captures)
			g := groups[tuple]
			if g == nil {
				g = make(map[string]string, len(distinct))
				groups[tuple] = g
			}
			g[glob] = key
		}
	}

	var qualifying []string
	for tuple, g := range groups {
		if len(g) == len(distinct) {
			qualifying = append(qualifying, tuple)
		}
	}
	if len(qualifying) == 0 {
		return nil
	}
	sort.Strings(qualifying)

	chosen := groups[qualifying[0]]
	bindings := make(Bindings, len(chosen))
	for glob, key := range chosen {
		bindings[glob] = table[key]
	}
	return bindings
}

// encodeTuple renders a capture tuple as a grouping key. The arity prefix
// keeps the empty tuple distinct from a single empty capture, and tuples
// of different arity never share a group.
func encodeTuple(captures []string) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(captures)))
	for _, c := range captures {
		b.WriteByte(0x1f)
		b.WriteString(c)
	}
	return b.String()
}
