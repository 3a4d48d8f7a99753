package bf

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// To each formula, associate an expected string representation.
var exprToFormula = map[string]string{
	"a":               "a",
	"~a":              "not(a)",
	"~(~a)":           "not(not(a))",
	"(a)":             "a",
	"((a))":           "a",
	"a | b":           "or(a, b)",
	"a & b":           "and(a, b)",
	"a & b & c":       "and(and(a, b), c)",
	"a | b | c":       "or(or(a, b), c)",
	"a & b | c":       "or(and(a, b), c)",
	"a | b & c":       "or(a, and(b, c))",
	"(a | b) & c":     "and(or(a, b), c)",
	"~a & b":          "and(not(a), b)",
	"~(a & b)":        "not(and(a, b))",
	"~a|~b":           "or(not(a), not(b))",
	" a\t&\n~ b ":     "and(a, not(b))",
	"A & a":           "and(A, a)",
	"(a|~b|c)&~(a|b)": "and(or(or(a, not(b)), c), not(or(a, b)))",
}

func TestParse(t *testing.T) {
	for expr, expected := range exprToFormula {
		f, _, err := Parse(expr)
		if err != nil {
			t.Errorf("Could not parse expression %q: %v", expr, err)
		} else if f.String() != expected {
			t.Errorf("For expression %q, expected formula %q, got %q", expr, expected, f.String())
		}
	}
}

func TestParseVars(t *testing.T) {
	tests := []struct {
		expr string
		vars []rune
	}{
		{"A", []rune{'A'}},
		{"B|A", []rune{'B', 'A'}},
		{"A&B|A&~C", []rune{'A', 'B', 'C'}},
		{"(c|b)&(a|c)", []rune{'c', 'b', 'a'}},
		{"a&A", []rune{'a', 'A'}},
		{"x&(y|~x)&é", []rune{'x', 'y', 'é'}},
		{"Ⅻ|~ⅰ", []rune{'Ⅻ', 'ⅰ'}},
	}
	for _, test := range tests {
		f, vars, err := Parse(test.expr)
		if err != nil {
			t.Errorf("Could not parse expression %q: %v", test.expr, err)
			continue
		}
		if diff := cmp.Diff(test.vars, vars); diff != "" {
			t.Errorf("For expression %q, unexpected vars (-want +got):\n%s", test.expr, diff)
		}
		if diff := cmp.Diff(test.vars, Vars(f)); diff != "" {
			t.Errorf("For expression %q, Vars disagrees with Parse (-want +got):\n%s", test.expr, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		expr string
		msg  string
		pos  int
	}{
		{"", "Unknown char: <EOF>", 0},
		{"   ", "Unknown char: <EOF>", 0},
		{"(A&B", "')' expected", 4},
		{"((A)", "')' expected", 4},
		{"(A&B]", "')' expected", 4},
		{"A&1", "Unknown char: 1", 2},
		{"A&", "Unknown char: <EOF>", 2},
		{"|A", "Unknown char: |", 0},
		{"~~A", "Unknown char: ~", 1},
		{"()", "Unknown char: )", 1},
		{"A B", "Extra string: 'B'", 1},
		{"A)", "Extra string: ')'", 1},
		{"A&B)|C", "Extra string: ')|C'", 3},
		{"A~B", "Extra string: '~B'", 1},
	}
	for _, test := range tests {
		_, _, err := Parse(test.expr)
		if err == nil {
			t.Errorf("Parsing %q should have failed", test.expr)
			continue
		}
		var synErr *SyntaxError
		if !errors.As(err, &synErr) {
			t.Errorf("Parsing %q: expected a *SyntaxError, got %T", test.expr, err)
			continue
		}
		if synErr.Msg != test.msg {
			t.Errorf("Parsing %q: expected message %q, got %q", test.expr, test.msg, synErr.Msg)
		}
		if synErr.Pos != test.pos {
			t.Errorf("Parsing %q: expected error at %d, got %d", test.expr, test.pos, synErr.Pos)
		}
	}
}

func TestStrip(t *testing.T) {
	if got := Strip(" a &\t~ b\r\n"); got != "a&~b" {
		t.Errorf("expected %q, got %q", "a&~b", got)
	}
}

func ExampleParse() {
	expr := "a & ~(b | c) & (c | ~a)"
	f, vars, err := Parse(expr)
	if err != nil {
		fmt.Printf("Could not parse expression %q: %v", expr, err)
		return
	}
	fmt.Printf("%s over %c\n", f, vars)
	// Output:
	// and(and(a, not(or(b, c))), or(c, not(a))) over [a b c]
}

func ExampleParse_error() {
	_, _, err := Parse("(a & b")
	fmt.Println(err)
	// Output: ')' expected
}
