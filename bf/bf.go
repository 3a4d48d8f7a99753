package bf

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// A Formula is a propositional formula built from variables with
// negations, conjunctions and disjunctions.
type Formula interface {
	nnf() Formula
	String() string
	// Eval returns the truth value of the formula under a.
	// It panics if a lacks a binding for one of the formula's variables.
	Eval(a Assignment) bool
}

// An Assignment binds variables to truth values.
// It is treated as a value: With returns a copy rather than modifying the receiver.
type Assignment map[rune]bool

// With returns a copy of a where v is bound to val.
func (a Assignment) With(v rune, val bool) Assignment {
	res := make(Assignment, len(a)+1)
	for k, b := range a {
		res[k] = b
	}
	res[v] = val
	return res
}

// Solve solves the given formula.
// f is first converted as a CNF formula. It is then given to the gini solver.
// The function returns a model associating each variable with its binding, or nil if the formula was not satisfiable.
func Solve(f Formula) Assignment {
	return asCnf(f).solve()
}

// Dimacs writes the DIMACS CNF version of the formula on w.
// Variables are numbered after their order of first appearance in f, starting at 1.
// The original names of variables are associated with their DIMACS integer counterparts
// in comments, between the prolog and the set of clauses.
// For instance, if the variable "a" is associated with the index 1, there will be a comment line
// "c a=1".
func Dimacs(f Formula, w io.Writer) error {
	cnf := asCnf(f)
	nbVars := len(cnf.vars.all)
	nbClauses := len(cnf.clauses)
	prefix := fmt.Sprintf("p cnf %d %d\n", nbVars, nbClauses)
	if _, err := io.WriteString(w, prefix); err != nil {
		return fmt.Errorf("could not write DIMACS output: %v", err)
	}
	for i, v := range cnf.vars.order {
		line := fmt.Sprintf("c %c=%d\n", v, i+1)
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("could not write DIMACS output: %v", err)
		}
	}
	for _, clause := range cnf.clauses {
		strClause := make([]string, len(clause))
		for i, lit := range clause {
			strClause[i] = strconv.Itoa(lit)
		}
		line := fmt.Sprintf("%s 0\n", strings.Join(strClause, " "))
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("could not write DIMACS output: %v", err)
		}
	}
	return nil
}

// CNFSize returns the number of variables, dummy ones included, and of clauses
// of the CNF translation of f, as written in the header of its DIMACS output.
func CNFSize(f Formula) (nbVars, nbClauses int) {
	cnf := asCnf(f)
	return len(cnf.vars.all), len(cnf.clauses)
}

// Vars returns the variables of f, in order of first appearance from left to right.
func Vars(f Formula) []rune {
	var res []rune
	seen := make(map[rune]bool)
	var rec func(f Formula)
	rec = func(f Formula) {
		switch f := f.(type) {
		case variable:
			if !seen[f.name] {
				seen[f.name] = true
				res = append(res, f.name)
			}
		case lit:
			rec(f.v)
		case not:
			rec(f[0])
		case and:
			for _, sub := range f {
				rec(sub)
			}
		case or:
			for _, sub := range f {
				rec(sub)
			}
		default:
			panic("invalid formula type")
		}
	}
	rec(f)
	return res
}

// Var generates a named boolean variable in a formula.
func Var(name rune) Formula {
	return pbVar(name)
}

func pbVar(name rune) variable {
	return variable{name: name, dummy: false}
}

func dummyVar(idx int) variable {
	return variable{name: rune(idx), dummy: true}
}

type variable struct {
	name  rune
	dummy bool
}

func (v variable) nnf() Formula {
	return lit{signed: false, v: v}
}

func (v variable) String() string {
	return string(v.name)
}

func (v variable) Eval(a Assignment) bool {
	b, ok := a[v.name]
	if !ok {
		panic(fmt.Errorf("assignment lacks binding for variable %c", v.name))
	}
	return b
}

type lit struct {
	v      variable
	signed bool
}

func (l lit) nnf() Formula {
	return l
}

func (l lit) String() string {
	if l.signed {
		return "not(" + l.v.String() + ")"
	}
	return l.v.String()
}

func (l lit) Eval(a Assignment) bool {
	b := l.v.Eval(a)
	if l.signed {
		return !b
	}
	return b
}

// Not represents a negation. It negates the given subformula.
func Not(f Formula) Formula {
	return not{f}
}

type not [1]Formula

func (n not) nnf() Formula {
	switch f := n[0].(type) {
	case variable:
		l := f.nnf().(lit)
		l.signed = true
		return l
	case lit:
		f.signed = !f.signed
		return f
	case not:
		return f[0].nnf()
	case and:
		subs := make([]Formula, len(f))
		for i, sub := range f {
			subs[i] = not{sub}.nnf()
		}
		return or(subs).nnf()
	case or:
		subs := make([]Formula, len(f))
		for i, sub := range f {
			subs[i] = not{sub}.nnf()
		}
		return and(subs).nnf()
	default:
		panic("invalid formula type")
	}
}

func (n not) String() string {
	return "not(" + n[0].String() + ")"
}

func (n not) Eval(a Assignment) bool {
	return !n[0].Eval(a)
}

// And generates the conjunction of left and right.
func And(left, right Formula) Formula {
	return and{left, right}
}

type and []Formula

func (a and) nnf() Formula {
	var res and
	for _, s := range a {
		nnf := s.nnf()
		if sub, ok := nnf.(and); ok { // Simplify: "and"s in the "and" get to the higher level
			res = append(res, sub...)
		} else {
			res = append(res, nnf)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

func (a and) String() string {
	strs := make([]string, len(a))
	for i, f := range a {
		strs[i] = f.String()
	}
	return "and(" + strings.Join(strs, ", ") + ")"
}

// Eval stops at the first false subformula.
func (a and) Eval(m Assignment) bool {
	for _, s := range a {
		if !s.Eval(m) {
			return false
		}
	}
	return true
}

// Or generates the disjunction of left and right.
func Or(left, right Formula) Formula {
	return or{left, right}
}

type or []Formula

func (o or) nnf() Formula {
	var res or
	for _, s := range o {
		nnf := s.nnf()
		if sub, ok := nnf.(or); ok { // Simplify: "or"s in the "or" get to the higher level
			res = append(res, sub...)
		} else {
			res = append(res, nnf)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

func (o or) String() string {
	strs := make([]string, len(o))
	for i, f := range o {
		strs[i] = f.String()
	}
	return "or(" + strings.Join(strs, ", ") + ")"
}

// Eval stops at the first true subformula.
func (o or) Eval(m Assignment) bool {
	for _, s := range o {
		if s.Eval(m) {
			return true
		}
	}
	return false
}

// vars associate variables with numeric indices.
type vars struct {
	all   map[variable]int // all vars, including those created when converting the formula
	pb    map[variable]int // Only the vars that appeared originally in the problem
	order []rune           // problem vars, by index
}

// newVars numbers the problem vars from 1, in the given order.
func newVars(order []rune) vars {
	vs := vars{all: make(map[variable]int), pb: make(map[variable]int), order: order}
	for i, name := range order {
		vs.all[pbVar(name)] = i + 1
		vs.pb[pbVar(name)] = i + 1
	}
	return vs
}

// litValue returns the int value associated with the given problem var.
func (vars *vars) litValue(l lit) int {
	val, ok := vars.all[l.v]
	if !ok {
		panic(fmt.Errorf("unregistered variable %c", l.v.name))
	}
	if l.signed {
		return -val
	}
	return val
}

// dummy creates a dummy variable and returns its associated index.
func (vars *vars) dummy() int {
	val := len(vars.all) + 1
	vars.all[dummyVar(val)] = val
	return val
}

// A CNF is the representation of a boolean formula as a conjunction of disjunction.
// It can be solved by a SAT solver.
type cnf struct {
	vars    vars
	clauses [][]int
}

// solve gives cnf to gini.
// If it is satisfiable, the function returns a model, associating each problem variable with its binding.
// Else, the function returns nil.
func (cnf *cnf) solve() Assignment {
	g := gini.New()
	for _, clause := range cnf.clauses {
		for _, l := range clause {
			g.Add(z.Dimacs2Lit(l))
		}
		g.Add(z.LitNull)
	}
	if g.Solve() != 1 {
		return nil
	}
	model := make(Assignment, len(cnf.vars.pb))
	for v, idx := range cnf.vars.pb {
		model[v.name] = g.Value(z.Dimacs2Lit(idx))
	}
	return model
}

// asCnf returns a CNF representation of the given formula.
func asCnf(f Formula) *cnf {
	vars := newVars(Vars(f))
	clauses := cnfRec(f.nnf(), &vars)
	return &cnf{vars: vars, clauses: clauses}
}

// transforms the f NNF formula into a CNF formula.
// Each "and" nested in an "or" is replaced by a dummy variable implying it.
func cnfRec(f Formula, vars *vars) [][]int {
	switch f := f.(type) {
	case lit:
		return [][]int{{vars.litValue(f)}}
	case and:
		var res [][]int
		for _, sub := range f {
			res = append(res, cnfRec(sub, vars)...)
		}
		return res
	case or:
		var res [][]int
		var lits []int
		for _, sub := range f {
			switch sub := sub.(type) {
			case lit:
				lits = append(lits, vars.litValue(sub))
			case and:
				d := vars.dummy()
				lits = append(lits, d)
				for _, sub2 := range sub {
					cnf := cnfRec(sub2, vars)
					// the last clause is the one sub2 stands for, the others define its dummies
					last := len(cnf) - 1
					cnf[last] = append(cnf[last], -d)
					res = append(res, cnf...)
				}
			default:
				panic("unexpected or in or")
			}
		}
		res = append(res, lits)
		return res
	default:
		panic("invalid NNF formula")
	}
}
