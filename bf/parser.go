package bf

import (
	"fmt"
	"strings"
	"unicode"
)

// A SyntaxError is returned by Parse when a formula is malformed.
type SyntaxError struct {
	Msg string
	Pos int // Offset, in runes, in the stripped formula
}

func (e *SyntaxError) Error() string {
	return e.Msg
}

type parser struct {
	src  []rune
	pos  int    // Index of the rune after ch
	ch   rune   // Current rune, meaningless when eof is set
	eof  bool   // Have we reached eof yet?
	vars []rune // Variables, in order of first appearance
}

// Strip removes all white space from formula.
func Strip(formula string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, formula)
}

// Parse parses the given formula.
// It returns the corresponding Formula and its variables, in order of first appearance.
// White space is ignored. Formulas are written using the following operators (from lowest to highest priority) :
//
// - for a disjunction ("or"), the "|" operator,
// - for a conjunction ("and"), the "&" operator,
// - for a negation, the "~" unary operator.
//
// Variables are single letters. "|" and "&" are left associative.
// Negation applies to a variable or to a parenthesized subformula, so "~~a" must be written "~(~a)".
func Parse(formula string) (f Formula, vars []rune, err error) {
	p := parser{src: []rune(Strip(formula))}
	p.next()
	f, err = p.parseOr()
	if err != nil {
		return nil, nil, err
	}
	if !p.eof {
		return nil, nil, p.errorf("Extra string: '%s'", string(p.src[p.pos-1:]))
	}
	return f, p.vars, nil
}

func (p *parser) next() {
	if p.pos >= len(p.src) {
		p.eof = true
		return
	}
	p.ch = p.src[p.pos]
	p.pos++
}

// match consumes the current rune if it is r.
func (p *parser) match(r rune) bool {
	if p.eof || p.ch != r {
		return false
	}
	p.next()
	return true
}

func (p *parser) errorf(format string, args ...any) *SyntaxError {
	pos := p.pos - 1
	if p.eof {
		pos = len(p.src)
	}
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

func (p *parser) parseOr() (Formula, error) {
	f, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.match('|') {
		f2, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		f = Or(f, f2)
	}
	return f, nil
}

func (p *parser) parseAnd() (Formula, error) {
	f, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.match('&') {
		f2, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		f = And(f, f2)
	}
	return f, nil
}

func (p *parser) parseNot() (Formula, error) {
	if p.match('~') {
		f, err := p.parseBasic()
		if err != nil {
			return nil, err
		}
		return Not(f), nil
	}
	return p.parseBasic()
}

func (p *parser) parseBasic() (Formula, error) {
	if p.match('(') {
		f, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if !p.match(')') {
			return nil, p.errorf("')' expected")
		}
		return f, nil
	}
	if p.eof {
		return nil, p.errorf("Unknown char: <EOF>")
	}
	if !isAlphabetic(p.ch) {
		return nil, p.errorf("Unknown char: %c", p.ch)
	}
	v := p.ch
	p.next()
	p.addVar(v)
	return Var(v), nil
}

// isAlphabetic reports whether r can name a variable:
// letters, letter numbers such as Ⅻ, and other alphabetic marks.
func isAlphabetic(r rune) bool {
	return unicode.In(r, unicode.L, unicode.Nl, unicode.Other_Alphabetic)
}

func (p *parser) addVar(v rune) {
	for _, w := range p.vars {
		if w == v {
			return
		}
	}
	p.vars = append(p.vars, v)
}
