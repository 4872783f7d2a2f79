// Command schedbench builds a synthetic unconference grid, runs the
// local-search optimizer against it (with restarts), and prints a
// before/after report. With -evaluate it also runs the brute-force
// evaluator over the same instance and reports how close the
// optimizer's result came to the true optimum - this only terminates
// in reasonable time for small instances (see schedule/evaluator).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/relia1/unconfrs/obslog"
	"github.com/relia1/unconfrs/schedconf"
	"github.com/relia1/unconfrs/schedule"
	"github.com/relia1/unconfrs/schedule/evaluator"
	"github.com/relia1/unconfrs/schedule/optimizer"
	"github.com/relia1/unconfrs/schedule/testdata"
	"github.com/rs/zerolog"
	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "schedbench:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout *os.File) error {
	if _, err := maxprocs.Set(maxprocs.Logger(func(string, ...any) {})); err != nil {
		return fmt.Errorf("schedbench: set GOMAXPROCS: %w", err)
	}

	fs := flag.NewFlagSet("schedbench", flag.ContinueOnError)
	configPath := fs.String("config", "", "optional TOML config file")
	rooms := fs.Int("rooms", 0, "number of rooms (columns); 0 uses the configured/default value")
	slots := fs.Int("slots", 0, "number of time slots (rows); 0 uses the configured/default value")
	restarts := fs.Int("restarts", -1, "optimizer restart count; -1 uses the configured/default value")
	workers := fs.Int("workers", -1, "evaluator worker count; -1 uses the configured/default value, 0 means GOMAXPROCS")
	logLevel := fs.String("loglevel", "", "zerolog level (debug, info, warn, error); empty uses the configured/default value")
	preassigned := fs.Bool("pin-first", false, "pin the first cell to a synthetic keynote session")
	evaluate := fs.Bool("evaluate", false, "also run the brute-force evaluator (small instances only)")
	interactive := fs.Bool("interactive", false, "start an interactive REPL instead of running a single benchmark")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := schedconf.Load(*configPath)
	if err != nil {
		return err
	}
	cfg = schedconf.Override(cfg, flagOverrides(fs, rooms, slots, restarts, workers, logLevel))

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("schedbench: log level %q: %w", cfg.LogLevel, err)
	}
	logger := obslog.NewZerologWriter(stdout, level)

	if *interactive {
		return runREPL(cfg, logger, os.Stdin, stdout)
	}

	params := testdata.Uniform(cfg.Rooms, cfg.Slots)
	if *preassigned {
		params = testdata.UniformPreassigned(cfg.Rooms, cfg.Slots)
	}

	return benchmark(context.Background(), cfg, params, logger, *evaluate, stdout)
}

func benchmark(ctx context.Context, cfg schedconf.Config, params schedule.BuildParams, logger obslog.Logger, runEvaluate bool, stdout *os.File) error {
	g := schedule.Build(params)
	before := g.Score()

	score := optimizer.ImproveWithRestarts(g, cfg.Restarts, optimizer.WithLogger(logger))
	logger.WithField("before", before).WithField("after", score).Info("optimizer finished")

	fmt.Fprintf(stdout, "initial score: %.4f\n", before)
	fmt.Fprintf(stdout, "optimized score (%d restarts): %.4f\n", cfg.Restarts, score)
	fmt.Fprintln(stdout, g.String())

	if runEvaluate {
		reference := schedule.Build(params)
		result, err := evaluator.Evaluate(ctx, reference, cfg.Workers)
		if err != nil {
			return fmt.Errorf("schedbench: evaluate: %w", err)
		}
		fmt.Fprintf(stdout, "brute-force optimum: %.4f (worst: %.4f, over %d placements)\n",
			result.BestScore, result.WorstScore, len(result.Scores))
	}

	return nil
}

func flagOverrides(fs *flag.FlagSet, rooms, slots, restarts, workers *int, logLevel *string) schedconf.FlagOverrides {
	var out schedconf.FlagOverrides
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rooms":
			out.Rooms = rooms
		case "slots":
			out.Slots = slots
		case "restarts":
			out.Restarts = restarts
		case "workers":
			out.Workers = workers
		case "loglevel":
			out.LogLevel = logLevel
		}
	})
	return out
}
