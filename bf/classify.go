package bf

// Class is the semantic status of a formula.
type Class byte

const (
	// Contingent means the formula is true under some assignments and false under others.
	Contingent = Class(iota)
	// Tautology means the formula is true under every assignment.
	Tautology
	// Contradiction means the formula is false under every assignment.
	Contradiction
)

func (c Class) String() string {
	switch c {
	case Contingent:
		return "contingent"
	case Tautology:
		return "tautology"
	case Contradiction:
		return "contradiction"
	default:
		panic("invalid class")
	}
}

// Classify tells whether f is a tautology, a contradiction or neither.
// For a contingent formula, it also returns an assignment satisfying f
// and an assignment falsifying it. Both are nil otherwise.
func Classify(f Formula) (c Class, sat, unsat Assignment) {
	sat = Solve(f)
	if sat == nil {
		return Contradiction, nil, nil
	}
	unsat = Solve(Not(f))
	if unsat == nil {
		return Tautology, nil, nil
	}
	return Contingent, sat, unsat
}

// Equivalent tells whether f1 and f2 have the same truth value under every assignment.
// If they do not, it returns an assignment of the variables of both formulas on which they differ.
func Equivalent(f1, f2 Formula) (bool, Assignment) {
	model := Solve(xor(f1, f2))
	return model == nil, model
}

// xor is only used internally: it is not part of the formula language.
func xor(f1, f2 Formula) Formula {
	return and{or{not{f1}, not{f2}}, or{f1, f2}}
}
