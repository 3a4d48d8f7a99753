package table

import (
	"fmt"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

func mustNew(t *testing.T, formula string) *Table {
	t.Helper()
	tbl, err := New(formula)
	if err != nil {
		t.Fatalf("could not build table of %q: %v", formula, err)
	}
	return tbl
}

func TestMake(t *testing.T) {
	tests := map[string]string{
		"X":          "X X\nT T\nF F\n",
		"~X":         "X ~X\nT F\nF T\n",
		"A&~B":       "A B A&~B\nT T F\nT F T\nF T F\nF F F\n",
		"B|A":        "B A B|A\nT T T\nT F T\nF T T\nF F F\n",
		" A & ~ B ":  "A B A&~B\nT T F\nT F T\nF T F\nF F F\n",
		"(A|B)&(A)":  "A B (A|B)&(A)\nT T T\nT F T\nF T F\nF F F\n",
		"(A&B":       "Error: ')' expected",
		"A B":        "Error: Extra string: 'B'",
		"A&1":        "Error: Unknown char: 1",
		"":           "Error: Unknown char: <EOF>",
		"A|":         "Error: Unknown char: <EOF>",
		"A&B)":       "Error: Extra string: ')'",
		"~~A":        "Error: Unknown char: ~",
		"a&(b|~a)&b": "a b a&(b|~a)&b\nT T T\nT F F\nF T F\nF F F\n",
	}
	for formula, expected := range tests {
		if diff := cmp.Diff(expected, Make(formula)); diff != "" {
			t.Errorf("Make(%q) (-want +got):\n%s", formula, diff)
		}
	}
}

func TestMakeErrorIsSingleLine(t *testing.T) {
	for _, formula := range []string{"(", "A&", "A&1", "A B C", "((A|B)", "&", "~"} {
		res := Make(formula)
		if !strings.HasPrefix(res, ErrorPrefix) {
			t.Errorf("Make(%q) = %q, expected an error", formula, res)
		}
		if strings.Contains(res, "\n") {
			t.Errorf("Make(%q) = %q, expected a single line", formula, res)
		}
	}
}

func TestMakeIdempotent(t *testing.T) {
	for _, formula := range []string{"A&~B|C", "(p|q)&~(r&p)", "A B"} {
		if first, second := Make(formula), Make(formula); first != second {
			t.Errorf("Make(%q) is not deterministic: %q then %q", formula, first, second)
		}
	}
}

func TestRowCount(t *testing.T) {
	tests := map[string]int{
		"A":                 1,
		"A|A&A":             1,
		"A&B":               2,
		"A&B|C":             3,
		"(a|b)&(c|d)&~e":    5,
		"a|b|c|d|e|f|g|h|i": 9,
	}
	for formula, nbVars := range tests {
		tbl := mustNew(t, formula)
		if len(tbl.Vars) != nbVars {
			t.Errorf("%q: expected %d vars, got %d", formula, nbVars, len(tbl.Vars))
		}
		if len(tbl.Rows) != 1<<nbVars {
			t.Errorf("%q: expected %d rows, got %d", formula, 1<<nbVars, len(tbl.Rows))
		}
		lines := strings.Split(strings.TrimSuffix(tbl.String(), "\n"), "\n")
		if len(lines) != 1+1<<nbVars {
			t.Errorf("%q: expected %d lines, got %d", formula, 1+1<<nbVars, len(lines))
		}
	}
}

func TestRowOrder(t *testing.T) {
	tbl := mustNew(t, "(a|b)&(c|~d)")
	n := len(tbl.Vars)
	for k, row := range tbl.Rows {
		for j, val := range row.Values {
			bit := (k >> (n - 1 - j)) & 1
			if val != (bit == 0) {
				t.Errorf("row %d: variable %c should be %t", k, tbl.Vars[j], bit == 0)
			}
		}
	}
}

func TestPrecedence(t *testing.T) {
	tbl := mustNew(t, "A&B|C")
	// A=true, B=false, C=true is row 0b010
	row := tbl.Rows[2]
	if diff := cmp.Diff(Row{Values: []bool{true, false, true}, Result: true}, row); diff != "" {
		t.Errorf("unexpected row (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(mustNew(t, "(A&B)|C").Rows, tbl.Rows); diff != "" {
		t.Errorf("A&B|C and (A&B)|C differ (-want +got):\n%s", diff)
	}
	if cmp.Equal(mustNew(t, "A&(B|C)").Rows, tbl.Rows) {
		t.Errorf("A&B|C and A&(B|C) should differ")
	}
}

func TestNegationPrecedence(t *testing.T) {
	tbl := mustNew(t, "~A&B")
	if diff := cmp.Diff(mustNew(t, "(~A)&B").Rows, tbl.Rows); diff != "" {
		t.Errorf("~A&B and (~A)&B differ (-want +got):\n%s", diff)
	}
	if cmp.Equal(mustNew(t, "~(A&B)").Rows, tbl.Rows) {
		t.Errorf("~A&B and ~(A&B) should differ")
	}
}

func TestRender(t *testing.T) {
	tbl := mustNew(t, "a|~b")
	fm := Format{
		True:  "1",
		False: "0",
		Colors: &Colors{
			True:  func(f string, args ...any) string { return "+" + fmt.Sprintf(f, args...) },
			False: func(f string, args ...any) string { return "-" + fmt.Sprintf(f, args...) },
		},
	}
	var sb strings.Builder
	if err := tbl.Render(&sb, fm); err != nil {
		t.Fatalf("could not render table: %v", err)
	}
	const expected = "a b a|~b\n+1 +1 +1\n+1 -0 +1\n-0 +1 -0\n-0 -0 +1\n"
	if diff := cmp.Diff(expected, sb.String()); diff != "" {
		t.Errorf("unexpected rendering (-want +got):\n%s", diff)
	}
}

func TestYAML(t *testing.T) {
	data, err := mustNew(t, "B|~A").YAML()
	if err != nil {
		t.Fatalf("could not encode table: %v", err)
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("could not decode %q: %v", data, err)
	}
	expected := document{
		Formula: "B|~A",
		Vars:    []string{"B", "A"},
		Rows: []documentRow{
			{Values: []bool{true, true}, Result: true},
			{Values: []bool{true, false}, Result: true},
			{Values: []bool{false, true}, Result: false},
			{Values: []bool{false, false}, Result: true},
		},
	}
	if diff := cmp.Diff(expected, doc); diff != "" {
		t.Errorf("unexpected document (-want +got):\n%s", diff)
	}
}

func ExampleMake() {
	fmt.Print(Make("A & ~B"))
	// Output:
	// A B A&~B
	// T T F
	// T F T
	// F T F
	// F F F
}

func ExampleMake_error() {
	fmt.Println(Make("(A & B"))
	// Output: Error: ')' expected
}
