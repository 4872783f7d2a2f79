package evaluator

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/relia1/unconfrs/schedule"
	"golang.org/x/sync/errgroup"
)

// Result summarizes an exhaustive brute-force evaluation: every score
// observed (an unordered multiset), the best/worst scoring grid found,
// and their scores.
type Result struct {
	Scores     []float64
	Best       *schedule.Grid
	Worst      *schedule.Grid
	BestScore  float64
	WorstScore float64
}

type accumulator struct {
	score float64
	grid  *schedule.Grid
}

// Evaluate enumerates every injection of candidate sessions (the
// sessions currently placed in g's free cells, plus its unassigned
// pool) into g's free cells: every size-F combination of candidates
// (F the number of free cells), and every F! ordering of each
// combination assigned to the free cells in row-major order. g is not
// mutated.
//
// Combinations are distributed across a pool of workers goroutines
// (runtime.GOMAXPROCS(0) if workers <= 0); within a worker,
// permutations of its assigned combinations run sequentially on a
// cloned grid. Two mutex-protected cells hold the running global
// best/worst; each worker updates them once, after finishing all of
// its combinations - never per permutation.
//
// Evaluate returns a wrapped context.Canceled (or DeadlineExceeded) if
// ctx is done before enumeration completes; this is the only error the
// core can return short of out-of-memory.
func Evaluate(ctx context.Context, g *schedule.Grid, workers int) (Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers < 1 {
		workers = 1
	}

	freePositions := g.SwappablePositions()
	f := len(freePositions)

	var candidates []schedule.Session
	for _, p := range freePositions {
		cell := g.Cell(p)
		if cell.SessionID != nil {
			candidates = append(candidates, schedule.Session{SessionID: *cell.SessionID, NumVotes: cell.NumVotes, TagID: cell.TagID})
		}
	}
	candidates = append(candidates, g.Unassigned()...)
	n := len(candidates)

	combos := combinations(n, f)

	globalBest := accumulator{score: math.Inf(1), grid: g.Clone()}
	globalWorst := accumulator{score: math.Inf(-1), grid: g.Clone()}
	var mu sync.Mutex

	perWorkerScores := make([][]float64, workers)

	eg, egCtx := errgroup.WithContext(ctx)
	chunks := splitWork(len(combos), workers)

	for w := 0; w < workers; w++ {
		w := w
		lo, hi := chunks[w][0], chunks[w][1]
		eg.Go(func() error {
			localBest := accumulator{score: math.Inf(1)}
			localWorst := accumulator{score: math.Inf(-1)}
			var localScores []float64

			for ci := lo; ci < hi; ci++ {
				if ci%64 == 0 {
					if err := egCtx.Err(); err != nil {
						return err
					}
				}

				combo := combos[ci]
				used := make(map[int]bool, f)
				for _, idx := range combo {
					used[idx] = true
				}
				leftover := make([]schedule.Session, 0, n-f)
				for idx, s := range candidates {
					if !used[idx] {
						leftover = append(leftover, s)
					}
				}

				for _, perm := range permutations(combo) {
					test := g.Clone()
					for i, idx := range perm {
						test.SetCellSession(freePositions[i], candidates[idx])
					}
					test.SetUnassigned(leftover)

					score := test.Score()
					localScores = append(localScores, score)

					if score < localBest.score {
						localBest = accumulator{score: score, grid: test}
					}
					if score > localWorst.score {
						localWorst = accumulator{score: score, grid: test}
					}
				}
			}

			perWorkerScores[w] = localScores

			mu.Lock()
			if localBest.grid != nil && localBest.score < globalBest.score {
				globalBest = localBest
			}
			if localWorst.grid != nil && localWorst.score > globalWorst.score {
				globalWorst = localWorst
			}
			mu.Unlock()

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return Result{}, fmt.Errorf("evaluator: evaluate: %w", err)
	}

	var allScores []float64
	for _, s := range perWorkerScores {
		allScores = append(allScores, s...)
	}

	return Result{
		Scores:     allScores,
		Best:       globalBest.grid,
		Worst:      globalWorst.grid,
		BestScore:  globalBest.score,
		WorstScore: globalWorst.score,
	}, nil
}

// splitWork divides [0,total) into up to workers contiguous, roughly
// equal [lo,hi) ranges.
func splitWork(total, workers int) [][2]int {
	if workers < 1 {
		workers = 1
	}
	chunks := make([][2]int, workers)
	base := total / workers
	rem := total % workers
	start := 0
	for w := 0; w < workers; w++ {
		size := base
		if w < rem {
			size++
		}
		chunks[w] = [2]int{start, start + size}
		start += size
	}
	return chunks
}
