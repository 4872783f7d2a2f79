package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/relia1/unconfrs/obslog"
	"github.com/relia1/unconfrs/schedconf"
	"github.com/relia1/unconfrs/schedule"
	"github.com/relia1/unconfrs/schedule/evaluator"
	"github.com/relia1/unconfrs/schedule/optimizer"
	"github.com/relia1/unconfrs/schedule/testdata"
)

// session is the REPL's live in-memory instance: a single grid an
// operator can repeatedly improve, evaluate, and render without
// restarting the process.
type session struct {
	cfg    schedconf.Config
	logger obslog.Logger
	grid   *schedule.Grid
}

// runREPL reads one command per line from in until "quit"/"exit" or
// EOF, writing responses to out.
func runREPL(cfg schedconf.Config, logger obslog.Logger, in io.Reader, out io.Writer) error {
	s := &session{cfg: cfg, logger: logger, grid: schedule.Build(testdata.Uniform(cfg.Rooms, cfg.Slots))}

	fmt.Fprintln(out, "schedbench interactive mode - commands: improve, evaluate, render, reset [rooms slots], quit")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "schedbench> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if s.execute(scanner.Text(), out) {
			return nil
		}
	}
}

// execute runs a single REPL command line, returning true if the REPL
// should stop.
func (s *session) execute(line string, out io.Writer) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "improve":
		score := optimizer.ImproveWithRestarts(s.grid, s.cfg.Restarts, optimizer.WithLogger(s.logger))
		fmt.Fprintf(out, "optimized score: %.4f\n", score)
	case "evaluate":
		result, err := evaluator.Evaluate(context.Background(), s.grid, s.cfg.Workers)
		if err != nil {
			fmt.Fprintln(out, "evaluate:", err)
			return false
		}
		fmt.Fprintf(out, "brute-force optimum: %.4f (worst: %.4f, over %d placements)\n",
			result.BestScore, result.WorstScore, len(result.Scores))
	case "render":
		fmt.Fprintln(out, s.grid.String())
	case "reset":
		rooms, slots := s.cfg.Rooms, s.cfg.Slots
		if len(fields) == 3 {
			if r, err := strconv.Atoi(fields[1]); err == nil {
				rooms = r
			}
			if sl, err := strconv.Atoi(fields[2]); err == nil {
				slots = sl
			}
		}
		s.grid = schedule.Build(testdata.Uniform(rooms, slots))
		fmt.Fprintf(out, "reset to %d rooms x %d slots\n", rooms, slots)
	case "quit", "exit":
		fmt.Fprintln(out, "bye")
		return true
	default:
		fmt.Fprintln(out, "unknown command:", fields[0])
	}
	return false
}
