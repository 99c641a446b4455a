// tempseries reports descriptive statistics over temperature readings.
//
// With file arguments (or piped stdin) it prints one summary per input.
// On an interactive terminal with no arguments it starts a shell.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/xtxerr/tempseries/config"
	"github.com/xtxerr/tempseries/internal/errors"
	"github.com/xtxerr/tempseries/internal/logging"
	"github.com/xtxerr/tempseries/series"
)

// Version is set at build time via ldflags
var Version = "dev"

// options holds command-line overrides. Zero values leave the config alone.
type options struct {
	configPath  string
	logLevel    string
	jsonLog     bool
	percentiles bool
	accuracy    float64
	precision   int
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "tempseries.yaml", "config file path")
	flag.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	flag.BoolVar(&opts.jsonLog, "json-log", false, "log as JSON")
	flag.BoolVar(&opts.percentiles, "percentiles", false, "include p50/p90/p95/p99 in reports")
	flag.Float64Var(&opts.accuracy, "accuracy", 0, "percentile relative accuracy (overrides config)")
	flag.IntVar(&opts.precision, "precision", -1, "decimals printed (overrides config)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	interactive := flag.NArg() == 0 && term.IsTerminal(int(os.Stdin.Fd()))

	err := run(ctx, opts, flag.Args(), interactive, os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, formatFailure(err))
	}
	os.Exit(errors.ErrorToCode(err))
}

// formatFailure renders err for stderr, prefixed with its exit code name.
func formatFailure(err error) string {
	return fmt.Sprintf("tempseries: %s: %v", errors.CodeName(errors.ErrorToCode(err)), err)
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return nil, err
	}

	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.jsonLog {
		cfg.Log.JSON = true
	}
	if opts.percentiles {
		cfg.Report.Percentiles = true
	}
	if opts.accuracy != 0 {
		cfg.Report.Accuracy = opts.accuracy
	}
	if opts.precision >= 0 {
		cfg.Report.Precision = opts.precision
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate flags")
	}
	return cfg, nil
}

func run(ctx context.Context, opts options, args []string, interactive bool, stdin io.Reader, stdout io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return errors.NewValidation("log.level", err.Error())
	}
	logging.Init(level, cfg.Log.JSON)
	logging.Debug("tempseries starting", "version", Version, "inputs", len(args), "interactive", interactive)

	if interactive {
		newShell(series.New(), cfg, stdout).run()
		return nil
	}
	return runBatch(ctx, args, stdin, stdout, cfg)
}
