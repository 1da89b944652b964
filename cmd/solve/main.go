// Command solve is a CLI front-end: it reads a puzzle corpus file, solves
// every puzzle through sudokucore via workerpool, and prints a per-run
// summary of solve counts, guesses, backtracks and triad resolutions.
package main

import (
	"flag"
	"log"
	"os"

	"sudoku-solver/internal/solverio"
	"sudoku-solver/internal/sudokucore"
	"sudoku-solver/internal/workerpool"
	"sudoku-solver/pkg/config"
)

func main() {
	var (
		trace = flag.Bool("trace", false, "print the guess/backtrack/BUG/solved step trace")
		out   = flag.String("out", "", "write input,solution pairs to this path (default: discard)")
	)
	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("usage: solve [-trace] [-out path] [puzzles-file]")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	path := cfg.PuzzlesFile
	if flag.NArg() == 1 {
		path = flag.Arg(0)
	}

	puzzles, err := solverio.ReadPuzzles(path)
	if err != nil {
		log.Fatalf("reading puzzles: %v", err)
	}
	log.Printf("loaded %d puzzles from %s", len(puzzles), path)

	var stats sudokucore.Stats
	pool := workerpool.New(cfg.Workers, &stats)

	var traceFn sudokucore.TraceFunc
	if *trace {
		traceFn = func(e sudokucore.TraceEvent) {
			log.Printf("trace: %s depth=%d cell=%d digit=%d", e.Kind, e.Depth, e.Cell, e.Digit)
		}
	}

	go func() {
		for _, p := range puzzles {
			pool.Submit(workerpool.Job{Grid: p.Grid, Rules: cfg.Rules, Trace: traceFn})
		}
		pool.Close()
	}()

	var pairs []solverio.SolutionPair
	for res := range pool.Results() {
		if res.Panicked {
			log.Printf("puzzle %s panicked: %s", res.Job.Grid[:], res.PanicMsg)
			continue
		}
		if res.Status.Solved {
			pairs = append(pairs, solverio.SolutionPair{Input: res.Job.Grid, Solution: res.Output})
		}
	}

	snap := stats.Snapshot()
	log.Printf(
		"solved=%d unsolved=%d no_guess=%d guesses=%d backtracks=%d triads_resolved=%d triad_updates=%d bug_count=%d",
		snap.Solved, snap.Unsolved, snap.NoGuess, snap.Guesses, snap.Backtracks,
		snap.TriadsResolved, snap.TriadUpdates, snap.BugCount,
	)
	if snap.Solved > 0 {
		log.Printf(
			"averages per solved puzzle: %.2f guesses, %.2f backtracks, %.2f triads resolved",
			float64(snap.Guesses)/float64(snap.Solved),
			float64(snap.Backtracks)/float64(snap.Solved),
			float64(snap.TriadsResolved)/float64(snap.Solved),
		)
	}

	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("creating output file: %v", err)
		}
		defer f.Close()
		if err := solverio.WriteSolutions(f, pairs); err != nil {
			log.Fatalf("writing solutions: %v", err)
		}
	}
}
