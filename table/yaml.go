package table

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

type document struct {
	Formula string        `yaml:"formula"`
	Vars    []string      `yaml:"vars,flow"`
	Rows    []documentRow `yaml:"rows"`
}

type documentRow struct {
	Values []bool `yaml:"values,flow"`
	Result bool   `yaml:"result"`
}

// YAML returns t as a YAML document with the formula, its variables and the rows of the table.
func (t *Table) YAML() ([]byte, error) {
	doc := document{
		Formula: t.Formula,
		Vars:    make([]string, len(t.Vars)),
		Rows:    make([]documentRow, len(t.Rows)),
	}
	for i, v := range t.Vars {
		doc.Vars[i] = string(v)
	}
	for i, row := range t.Rows {
		doc.Rows[i] = documentRow{Values: row.Values, Result: row.Result}
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("could not encode table of %q: %w", t.Formula, err)
	}
	return data, nil
}
