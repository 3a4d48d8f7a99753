package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/crillab/truthtable/table"

	"github.com/ergochat/readline"
	"github.com/scott-cotton/cli"
)

const replHelp = `Type a formula to print its truth table, for instance: A & ~(B | C)

Commands:
  :classify <formula>            tautology, contradiction or contingent
  :equiv <formula> ; <formula>   check two formulas for equivalence
  :dimacs <formula>              CNF translation in the DIMACS format
  :help                          this message
  exit, quit                     leave the shell`

// A session executes the lines of the interactive shell.
type session struct {
	out io.Writer
	fm  table.Format
}

func (s *session) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	if !strings.HasPrefix(line, ":") {
		return writeTable(s.out, s.fm, line)
	}
	cmd, arg, _ := strings.Cut(line[1:], " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case "help", "h":
		_, err := fmt.Fprintln(s.out, replHelp)
		return err
	case "classify", "c":
		if arg == "" {
			return errors.New("usage: :classify <formula>")
		}
		return writeClass(s.out, s.fm, arg)
	case "equiv", "eq":
		f1, f2, ok := strings.Cut(arg, ";")
		if !ok || strings.TrimSpace(f1) == "" || strings.TrimSpace(f2) == "" {
			return errors.New("usage: :equiv <formula> ; <formula>")
		}
		return writeEquiv(s.out, s.fm, f1, f2)
	case "dimacs":
		if arg == "" {
			return errors.New("usage: :dimacs <formula>")
		}
		return writeDimacs(s.out, arg)
	default:
		return fmt.Errorf("unknown command %q (type :help)", ":"+cmd)
	}
}

func repl(cfg *ReplConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Repl.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: repl takes no arguments", cli.ErrUsage)
	}
	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:          "truthtable> ",
		HistoryFile:     cfg.historyPath(),
		HistoryLimit:    500,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("readline init: %w", err)
	}
	defer func() { _ = rl.Close() }()

	sess := &session{out: cc.Out, fm: cfg.format(cc.Out)}
	fmt.Fprintln(cc.Out, "truthtable shell - type ':help' for commands, 'exit' to quit")
	for {
		line, err := rl.ReadLine()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("error reading line: %w", err)
		}
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		if lower == "exit" || lower == "quit" {
			break
		}
		if err := sess.Execute(line); err != nil {
			fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		}
	}
	return nil
}
