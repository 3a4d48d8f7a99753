// Package bf parses, evaluates and analyses propositional formulas.
//
// Formulas are built from single-letter variables with the "~" (not), "&" (and) and "|" (or)
// operators, and parentheses. For instance, the formula
//
// ~(a & b) | c
//
// Will be parsed with
//
// f, vars, err := Parse("~(a & b) | c")
//
// and is equivalent to the one defined by the following code:
//
// f := Or(Not(And(Var('a'), Var('b'))), Var('c'))
//
// A formula can be evaluated under an Assignment, which binds each of its variables to a truth value.
//
// Formulas can also be translated to CNF. Dimacs writes that translation in the DIMACS format,
// and Solve, Classify and Equivalent hand it to the gini SAT solver. The translation introduces
// a fresh variable for each conjunction found under a disjunction, so it is polynomial in time and space.
// For "a | (b & c)" the following CNF is generated, where x4 implies "b & c":
//
// (b | ~x4) & (c | ~x4) & (a | x4)
package bf
