package main

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/sansecio/pathexpr/parser"
	"github.com/sansecio/pathexpr/resolve"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <metrics-json> <expression>\n", os.Args[0])
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}

	table := make(resolve.SymbolTable)
	flatten("", gjson.ParseBytes(data), table)

	input := os.Args[2]
	p := parser.New()

	// Predicates carry a comparison operator; anything else is an expression.
	if pred, err := p.ParsePredicate(input); err == nil {
		if v, ok := resolve.Holds(pred, table); ok {
			fmt.Println(v)
		} else {
			fmt.Println("undefined")
		}
		return
	}

	expr, err := p.ParseExpression(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %q: %v\n", input, err)
		os.Exit(1)
	}

	if v, ok := resolve.Value(expr, table); ok {
		fmt.Println(v)
	} else {
		fmt.Println("undefined")
	}
}

// flatten walks a JSON document and records every numeric leaf under its
// dotted path.
func flatten(prefix string, value gjson.Result, table resolve.SymbolTable) {
	switch value.Type {
	case gjson.Number:
		table[prefix] = value.Float()
	case gjson.JSON:
		value.ForEach(func(key, child gjson.Result) bool {
			path := key.String()
			if prefix != "" {
				path = prefix + "." + path
			}
			flatten(path, child, table)
			return true
		})
	}
}
