package table

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

// A Format describes how a table is rendered as text.
type Format struct {
	True, False string
	// Colors, when not nil, are applied to the values of each row.
	Colors *Colors
}

// Colors hold the functions used to colorize table values.
type Colors struct {
	True, False func(string, ...any) string
}

// DefaultFormat is the format used by Make and String.
var DefaultFormat = Format{True: "T", False: "F"}

// NewColors returns green true values and red false values.
func NewColors() *Colors {
	return &Colors{
		True:  color.New(color.FgGreen).SprintfFunc(),
		False: color.New(color.FgRed).SprintfFunc(),
	}
}

func (fm *Format) symbol(b bool) string {
	if b {
		if fm.Colors != nil {
			return fm.Colors.True("%s", fm.True)
		}
		return fm.True
	}
	if fm.Colors != nil {
		return fm.Colors.False("%s", fm.False)
	}
	return fm.False
}

// Render writes t on w with the given format.
// The header lists the variables and the formula; each row lists the value of each variable and the result,
// separated by spaces.
func (t *Table) Render(w io.Writer, fm Format) error {
	var sb strings.Builder
	for _, v := range t.Vars {
		sb.WriteRune(v)
		sb.WriteByte(' ')
	}
	sb.WriteString(t.Formula)
	sb.WriteByte('\n')
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}
	for _, row := range t.Rows {
		sb.Reset()
		for _, b := range row.Values {
			sb.WriteString(fm.symbol(b))
			sb.WriteByte(' ')
		}
		sb.WriteString(fm.symbol(row.Result))
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) String() string {
	var sb strings.Builder
	_ = t.Render(&sb, DefaultFormat)
	return sb.String()
}
