package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	prompt "github.com/c-bata/go-prompt"

	"github.com/xtxerr/tempseries/config"
	"github.com/xtxerr/tempseries/internal/errors"
	"github.com/xtxerr/tempseries/internal/logging"
	"github.com/xtxerr/tempseries/internal/validation"
	"github.com/xtxerr/tempseries/series"
)

const exitCommand = "exit"

var commands = []prompt.Suggest{
	{Text: "add", Description: "append readings: add <v> [v...]"},
	{Text: "mean", Description: "arithmetic mean"},
	{Text: "std", Description: "population standard deviation"},
	{Text: "min", Description: "lowest reading"},
	{Text: "max", Description: "highest reading"},
	{Text: "zero", Description: "reading closest to zero"},
	{Text: "closest", Description: "reading closest to a value: closest <v>"},
	{Text: "less", Description: "readings below a threshold: less <v>"},
	{Text: "greater", Description: "readings above a threshold: greater <v>"},
	{Text: "summary", Description: "mean, std, min and max"},
	{Text: "pct", Description: "approximate p50/p90/p95/p99"},
	{Text: "quantile", Description: "approximate quantile: quantile <q>"},
	{Text: "values", Description: "all readings in insertion order"},
	{Text: "len", Description: "number of readings"},
	{Text: "help", Description: "list commands"},
	{Text: exitCommand, Description: "leave the shell"},
}

// shell runs commands against a single store.
type shell struct {
	store *series.Store
	cfg   *config.Config
	out   io.Writer
	log   *slog.Logger
}

func newShell(store *series.Store, cfg *config.Config, out io.Writer) *shell {
	return &shell{
		store: store,
		cfg:   cfg,
		out:   out,
		log:   logging.Component("shell"),
	}
}

// execute runs one command line and writes its output.
func (sh *shell) execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]
	precision := sh.cfg.Report.Precision

	switch cmd {
	case "add":
		values, err := validation.ParseReadings(args)
		if err != nil {
			return err
		}
		if err := sh.store.Append(values...); err != nil {
			return err
		}
		sh.log.Debug("readings appended", "count", len(values), "length", sh.store.Len())
		return sh.println(fmt.Sprintf("added %d, length %d", len(values), sh.store.Len()))

	case "mean":
		return sh.printValue(sh.store.Mean())
	case "std":
		return sh.printValue(sh.store.StandardDeviation())
	case "min":
		return sh.printValue(sh.store.Min())
	case "max":
		return sh.printValue(sh.store.Max())
	case "zero":
		return sh.printValue(sh.store.ClosestToZero())

	case "closest", "less", "greater", "quantile":
		if len(args) != 1 {
			return errors.Wrapf(errors.ErrInvalidNumber, "%s expects one argument", cmd)
		}
		v, err := validation.ParseReading(args[0])
		if err != nil {
			return err
		}
		switch cmd {
		case "closest":
			return sh.printValue(sh.store.ClosestTo(v))
		case "quantile":
			return sh.printValue(sh.store.Quantile(v, sh.cfg.Report.Accuracy))
		case "less":
			return sh.printValues(sh.store.LessThan(v))
		default:
			return sh.printValues(sh.store.GreaterThan(v))
		}

	case "summary":
		sum, err := sh.store.Summary()
		if err != nil {
			return err
		}
		return sh.println(formatSummary(sum, precision))

	case "pct":
		p, err := sh.store.Percentiles(sh.cfg.Report.Accuracy)
		if err != nil {
			return err
		}
		return sh.println(formatPercentiles(p, precision))

	case "values":
		return sh.println(formatValues(sh.store.Values(), precision))
	case "len":
		return sh.println(fmt.Sprintf("%d", sh.store.Len()))

	case "help":
		for _, c := range commands {
			if err := sh.println(fmt.Sprintf("  %-9s %s", c.Text, c.Description)); err != nil {
				return err
			}
		}
		return nil
	}

	return errors.Wrapf(errors.ErrUnknownCommand, "%q", cmd)
}

func (sh *shell) println(s string) error {
	_, err := fmt.Fprintln(sh.out, s)
	return err
}

func (sh *shell) printValue(v float64, err error) error {
	if err != nil {
		return err
	}
	return sh.println(formatValue(v, sh.cfg.Report.Precision))
}

func (sh *shell) printValues(values []float64, err error) error {
	if err != nil {
		return err
	}
	return sh.println(formatValues(values, sh.cfg.Report.Precision))
}

// executor is the go-prompt callback. Errors are printed and the shell
// keeps running.
func (sh *shell) executor(line string) {
	line = strings.TrimSpace(line)
	if line == exitCommand {
		return
	}
	if err := sh.execute(line); err != nil {
		fmt.Fprintf(sh.out, "error: %v\n", err)
	}
}

func (sh *shell) completer(d prompt.Document) []prompt.Suggest {
	// Only the command word is completed.
	if strings.Contains(d.TextBeforeCursor(), " ") {
		return nil
	}
	suggestions := prompt.FilterHasPrefix(commands, d.GetWordBeforeCursor(), true)
	if len(suggestions) > sh.cfg.Shell.MaxSuggestions {
		suggestions = suggestions[:sh.cfg.Shell.MaxSuggestions]
	}
	return suggestions
}

// run blocks until the user enters exit or presses Ctrl-D.
func (sh *shell) run() {
	sh.log.Info("shell started", "length", sh.store.Len())
	p := prompt.New(
		sh.executor,
		sh.completer,
		prompt.OptionPrefix(sh.cfg.Shell.Prompt),
		prompt.OptionTitle("tempseries"),
		prompt.OptionMaxSuggestion(uint16(sh.cfg.Shell.MaxSuggestions)),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
			return breakline && strings.TrimSpace(in) == exitCommand
		}),
	)
	p.Run()
	sh.log.Info("shell stopped", "length", sh.store.Len())
}
