package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/crillab/truthtable/table"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='color true and false values'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log diagnostics on stderr'"`

	// Symbols for true and false values
	True, False string

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// setup applies the options shared by all commands.
func (cfg *MainConfig) setup() {
	if cfg.Verbose || boolEnv("TRUTHTABLE_DEBUG") {
		verbose()
	}
}

func (cfg *MainConfig) symbolsOpt(_ *cli.Context, v string) (any, error) {
	if utf8.RuneCountInString(v) != 2 {
		return nil, fmt.Errorf("%w: symbols %q: expected two characters, for true then false", cli.ErrUsage, v)
	}
	r, n := utf8.DecodeRuneInString(v)
	t, f := string(r), v[n:]
	if t == f {
		return nil, fmt.Errorf("%w: symbols %q: true and false must differ", cli.ErrUsage, v)
	}
	cfg.True, cfg.False = t, f
	return v, nil
}

// format returns the table format to use on w.
// Values are colored with -color, or when w is a terminal and -color was not given.
func (cfg *MainConfig) format(w io.Writer) table.Format {
	fm := table.DefaultFormat
	if cfg.True != "" {
		fm.True, fm.False = cfg.True, cfg.False
	}
	if cfg.Color {
		color.NoColor = false
		fm.Colors = table.NewColors()
		return fm
	}
	colorsSet := false
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			colorsSet = opt.Value != nil
			break
		}
	}
	if colorsSet {
		return fm
	}
	f, ok := w.(*os.File)
	if !ok {
		return fm
	}
	if isatty.IsTerminal(f.Fd()) {
		fm.Colors = table.NewColors()
	}
	return fm
}

type TableConfig struct {
	*MainConfig
	YAML bool `cli:"name=yaml desc='output tables as YAML documents'"`

	Table *cli.Command
}

type ClassifyConfig struct {
	*MainConfig

	Classify *cli.Command
}

type EquivConfig struct {
	*MainConfig

	Equiv *cli.Command
}

type DimacsConfig struct {
	*MainConfig

	Dimacs *cli.Command
}

type ReplConfig struct {
	*MainConfig
	History string `cli:"name=history desc='history file (default $TRUTHTABLE_HISTORY or ~/.truthtable_history)'"`

	Repl *cli.Command
}

func (cfg *ReplConfig) historyPath() string {
	if cfg.History != "" {
		return cfg.History
	}
	if p := os.Getenv("TRUTHTABLE_HISTORY"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".truthtable_history")
}
