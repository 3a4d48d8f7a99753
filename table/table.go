// Package table builds and renders the truth tables of propositional formulas.
package table

import (
	"fmt"

	"github.com/crillab/truthtable/bf"
)

// ErrorPrefix starts the output of Make when the formula cannot be parsed.
const ErrorPrefix = "Error: "

// A Row is one line of a truth table.
type Row struct {
	Values []bool // One value per variable, in the order of the table's variables
	Result bool   // The value of the formula under that assignment
}

// A Table is the truth table of a formula.
type Table struct {
	Formula string // The formula, without white space
	Vars    []rune // Variables, in order of first appearance in the formula
	Rows    []Row
}

// New parses formula and builds its truth table.
// The returned error, if any, is a *bf.SyntaxError.
func New(formula string) (*Table, error) {
	f, vars, err := bf.Parse(formula)
	if err != nil {
		return nil, err
	}
	return &Table{
		Formula: bf.Strip(formula),
		Vars:    vars,
		Rows:    Generate(f, vars),
	}, nil
}

// Generate evaluates f under all 2^len(vars) assignments of vars.
// Assignments are enumerated depth-first over vars, binding each variable to true before false,
// so the first row binds every variable to true and the last one binds every variable to false.
func Generate(f bf.Formula, vars []rune) []Row {
	var rows []Row
	if len(vars) < 24 {
		rows = make([]Row, 0, 1<<len(vars))
	}
	var rec func(i int, a bf.Assignment)
	rec = func(i int, a bf.Assignment) {
		if i == len(vars) {
			values := make([]bool, len(vars))
			for j, v := range vars {
				values[j] = a[v]
			}
			rows = append(rows, Row{Values: values, Result: f.Eval(a)})
			return
		}
		rec(i+1, a.With(vars[i], true))
		rec(i+1, a.With(vars[i], false))
	}
	rec(0, bf.Assignment{})
	return rows
}

// Make returns the textual truth table of formula.
// If formula cannot be parsed, it returns a single line made of ErrorPrefix and the reason of the failure instead.
// Make never panics.
func Make(formula string) (res string) {
	defer func() {
		if r := recover(); r != nil {
			res = ErrorPrefix + fmt.Sprint(r)
		}
	}()
	t, err := New(formula)
	if err != nil {
		return ErrorPrefix + err.Error()
	}
	return t.String()
}
