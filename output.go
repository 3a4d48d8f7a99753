package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/crillab/truthtable/bf"
	"github.com/crillab/truthtable/table"
)

// writeTable writes the truth table of formula on w,
// or a single error line if formula cannot be parsed.
func writeTable(w io.Writer, fm table.Format, formula string) error {
	t, err := table.New(formula)
	if err != nil {
		logSyntaxError(formula, err)
		_, err = fmt.Fprintln(w, table.ErrorPrefix+err.Error())
		return err
	}
	theLog.Info("table", "formula", t.Formula, "vars", len(t.Vars), "rows", len(t.Rows))
	return t.Render(w, fm)
}

// writeTableYAML writes the truth table of formula on w as a YAML document,
// or the same error line as writeTable if formula cannot be parsed.
func writeTableYAML(w io.Writer, formula string) error {
	t, err := table.New(formula)
	if err != nil {
		logSyntaxError(formula, err)
		_, err = fmt.Fprintln(w, table.ErrorPrefix+err.Error())
		return err
	}
	theLog.Info("table", "formula", t.Formula, "vars", len(t.Vars), "rows", len(t.Rows))
	data, err := t.YAML()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func writeClass(w io.Writer, fm table.Format, formula string) error {
	f, vars, err := parse(formula)
	if err != nil {
		return err
	}
	logCNF(formula, f)
	c, sat, unsat := bf.Classify(f)
	if _, err := fmt.Fprintf(w, "%s: %v\n", bf.Strip(formula), c); err != nil {
		return err
	}
	if c != bf.Contingent {
		return nil
	}
	_, err = fmt.Fprintf(w, "  true with %s\n  false with %s\n", formatAssignment(fm, vars, sat), formatAssignment(fm, vars, unsat))
	return err
}

func writeEquiv(w io.Writer, fm table.Format, formula1, formula2 string) error {
	f1, vars1, err := parse(formula1)
	if err != nil {
		return err
	}
	f2, vars2, err := parse(formula2)
	if err != nil {
		return err
	}
	ok, model := bf.Equivalent(f1, f2)
	if ok {
		_, err = fmt.Fprintln(w, "equivalent")
		return err
	}
	_, err = fmt.Fprintf(w, "not equivalent: %s\n", formatAssignment(fm, mergeVars(vars1, vars2), model))
	return err
}

func writeDimacs(w io.Writer, formula string) error {
	f, _, err := parse(formula)
	if err != nil {
		return err
	}
	logCNF(formula, f)
	return bf.Dimacs(f, w)
}

// logCNF logs the size of the CNF translation of f.
func logCNF(formula string, f bf.Formula) {
	if !theLog.Enabled(context.Background(), slog.LevelInfo) {
		return
	}
	nbVars, nbClauses := bf.CNFSize(f)
	theLog.Info("cnf", "formula", bf.Strip(formula), "vars", nbVars, "clauses", nbClauses)
}

func parse(formula string) (bf.Formula, []rune, error) {
	f, vars, err := bf.Parse(formula)
	if err != nil {
		logSyntaxError(formula, err)
		return nil, nil, fmt.Errorf("could not parse %q: %w", formula, err)
	}
	return f, vars, nil
}

func logSyntaxError(formula string, err error) {
	var synErr *bf.SyntaxError
	if errors.As(err, &synErr) {
		theLog.Info("syntax error", "formula", bf.Strip(formula), "pos", synErr.Pos, "msg", synErr.Msg)
	}
}

// formatAssignment lists the values of vars in a, as in "A=T B=F".
func formatAssignment(fm table.Format, vars []rune, a bf.Assignment) string {
	strs := make([]string, len(vars))
	for i, v := range vars {
		val := fm.False
		if a[v] {
			val = fm.True
		}
		strs[i] = string(v) + "=" + val
	}
	return strings.Join(strs, " ")
}

// mergeVars appends to vars1 the variables of vars2 it lacks.
func mergeVars(vars1, vars2 []rune) []rune {
	res := append([]rune(nil), vars1...)
outer:
	for _, v := range vars2 {
		for _, w := range vars1 {
			if v == w {
				continue outer
			}
		}
		res = append(res, v)
	}
	return res
}
