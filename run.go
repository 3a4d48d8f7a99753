package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
)

func tables(cfg *TableConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Table.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args, err = readFormulas(cc.In)
		if err != nil {
			return err
		}
	}
	fm := cfg.format(cc.Out)
	for i, formula := range args {
		if i > 0 {
			sep := "\n"
			if cfg.YAML {
				sep = "---\n"
			}
			if _, err := io.WriteString(cc.Out, sep); err != nil {
				return err
			}
		}
		if cfg.YAML {
			err = writeTableYAML(cc.Out, formula)
		} else {
			err = writeTable(cc.Out, fm, formula)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// readFormulas returns the non-blank lines of r.
func readFormulas(r io.Reader) ([]string, error) {
	var res []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		res = append(res, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading formulas: %w", err)
	}
	return res, nil
}

func classify(cfg *ClassifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Classify.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: classify requires at least one formula", cli.ErrUsage)
	}
	fm := cfg.format(cc.Out)
	for _, formula := range args {
		if err := writeClass(cc.Out, fm, formula); err != nil {
			return err
		}
	}
	return nil
}

func equiv(cfg *EquivConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Equiv.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: equiv requires two formulas", cli.ErrUsage)
	}
	return writeEquiv(cc.Out, cfg.format(cc.Out), args[0], args[1])
}

func dimacs(cfg *DimacsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dimacs.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: dimacs requires one formula", cli.ErrUsage)
	}
	return writeDimacs(cc.Out, args[0])
}
