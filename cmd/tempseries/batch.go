package main

import (
	"bufio"
	"context"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/xtxerr/tempseries/config"
	"github.com/xtxerr/tempseries/internal/errors"
	"github.com/xtxerr/tempseries/internal/logging"
	"github.com/xtxerr/tempseries/internal/validation"
	"github.com/xtxerr/tempseries/series"
)

// stdinName is the input name used for readings piped on stdin.
const stdinName = "-"

// readReadings parses one reading per line. Blank lines and '#' comments
// are skipped.
func readReadings(r io.Reader) ([]float64, error) {
	var values []float64
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if validation.IsComment(line) {
			continue
		}
		v, err := validation.ParseReading(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "line %d", lineNo+1)
	}
	return values, nil
}

// buildReport loads one input into its own store and summarizes it.
func buildReport(name string, r io.Reader, cfg config.ReportConfig) (report, error) {
	values, err := readReadings(r)
	if err != nil {
		return report{}, err
	}
	store, err := series.FromValues(values)
	if err != nil {
		return report{}, err
	}

	sum, err := store.Summary()
	if err != nil {
		return report{}, err
	}
	rep := report{Name: name, Count: store.Len(), Summary: sum}

	if cfg.Percentiles {
		p, err := store.Percentiles(cfg.Accuracy)
		if err != nil {
			return report{}, err
		}
		rep.Percentiles = &p
	}
	return rep, nil
}

func reportFile(path string, cfg config.ReportConfig) (report, error) {
	f, err := os.Open(path)
	if err != nil {
		return report{}, errors.Wrap(err, "open input")
	}
	defer f.Close()
	return buildReport(path, f, cfg)
}

// runBatch reports every file concurrently, one store per file, and prints
// the reports in argument order. With no files, stdin is read.
func runBatch(ctx context.Context, paths []string, stdin io.Reader, w io.Writer, cfg *config.Config) error {
	log := logging.Component("batch")

	if len(paths) == 0 {
		rep, err := buildReport(stdinName, stdin, cfg.Report)
		if err != nil {
			logging.Warn("input rejected", "input", stdinName, "error", err)
			return errors.Wrap(err, stdinName)
		}
		return writeReport(w, rep, cfg.Report.Precision)
	}

	reports := make([]report, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rep, err := reportFile(path, cfg.Report)
			if err != nil {
				logging.Warn("input rejected", "input", path, "error", err)
				return errors.Wrap(err, path)
			}
			log.Info("input summarized", "input", path, "readings", rep.Count)
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, rep := range reports {
		if err := writeReport(w, rep, cfg.Report.Precision); err != nil {
			return err
		}
	}
	return nil
}
