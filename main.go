// Command truthtable prints the truth tables of propositional formulas.
//
// Formulas use single-letter variables, "~" (not), "&" (and), "|" (or) and parentheses:
//
//	truthtable table 'A & ~B'
//	truthtable classify 'A | ~A'
//	truthtable repl
//
// Environment:
//
//	TRUTHTABLE_DEBUG=true        log diagnostics on stderr, as -v does
//	TRUTHTABLE_HISTORY=<path>    history file of the interactive shell
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
