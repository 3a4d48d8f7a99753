package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "symbols",
			Description: "symbols for true and false values (default TF)",
			Type:        cli.NamedFuncOpt(cfg.symbolsOpt, "(chars)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "truthtable").
		WithSynopsis("truthtable [opts] command [opts]").
		WithDescription("truthtable prints the truth tables of propositional formulas.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		}).
		WithSubs(
			TableCommand(cfg),
			ClassifyCommand(cfg),
			EquivCommand(cfg),
			DimacsCommand(cfg),
			ReplCommand(cfg))
}

func TableCommand(mainCfg *MainConfig) *cli.Command {
	return tableCommand(&TableConfig{MainConfig: mainCfg})
}

func tableCommand(cfg *TableConfig) *cli.Command {
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Table, "table").
		WithAliases("t").
		WithSynopsis("table [-yaml] [formulas]").
		WithDescription(tableDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tables(cfg, cc, args)
		})
}

const tableDescription = `table prints the truth table of each formula.

Formulas are read from the arguments or, when there are none, one per line
from the standard input. They are made of single-letter variables, "~" (not),
"&" (and), "|" (or) and parentheses; "&" binds tighter than "|". White space
is ignored.

The header lists the variables, in order of first appearance, and the formula.
Each row gives the value of each variable followed by the value of the formula.
Rows start with all variables true and end with all variables false.

A malformed formula prints a single "Error: ..." line instead of its table.`

func ClassifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ClassifyConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Classify, "classify").
		WithAliases("c").
		WithSynopsis("classify formulas").
		WithDescription("tell whether formulas are tautologies, contradictions or contingent").
		WithRun(func(cc *cli.Context, args []string) error {
			return classify(cfg, cc, args)
		})
}

func EquivCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EquivConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Equiv, "equiv").
		WithAliases("eq").
		WithSynopsis("equiv formula1 formula2").
		WithDescription("tell whether two formulas are equivalent, or give an assignment on which they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return equiv(cfg, cc, args)
		})
}

func DimacsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DimacsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dimacs, "dimacs").
		WithSynopsis("dimacs formula").
		WithDescription("write the CNF translation of a formula in the DIMACS format").
		WithRun(func(cc *cli.Context, args []string) error {
			return dimacs(cfg, cc, args)
		})
}

func ReplCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReplConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Repl, "repl").
		WithSynopsis("repl [-history file]").
		WithDescription("interactive shell: each line is a formula whose truth table is printed; :help lists commands").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return repl(cfg, cc, args)
		})
}
