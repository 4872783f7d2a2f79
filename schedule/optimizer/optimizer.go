package optimizer

import "github.com/relia1/unconfrs/schedule"

type moveKind int

const (
	moveNone moveKind = iota
	moveGrid
	movePool
)

// move captures a single candidate swap considered during a
// neighborhood scan, sufficient to re-apply it for real once the scan
// picks it as the best improving move.
type move struct {
	kind    moveKind
	p1, p2  schedule.Position
	poolIdx int
}

func (m move) apply(g *schedule.Grid) {
	switch m.kind {
	case moveGrid:
		g.SwapInGrid(m.p1, m.p2)
	case movePool:
		g.SwapWithPool(m.p1, m.poolIdx)
	}
}

// Improve runs one pass of the local-search algorithm on g: a random
// initial fill, then a best-improvement neighborhood scan over
// in-grid and pool swaps for up to 3*capacity^2 iterations, stopping
// early at the first local optimum (no improving move found). It
// mutates g in place and returns the final score.
func Improve(g *schedule.Grid, opts ...Option) float64 {
	cfg := newConfig(opts)

	g.RandomlyFill()

	current := g.Score()
	capacity := g.Capacity()
	budget := 3 * capacity * capacity

	for iter := 0; iter < budget; iter++ {
		best := current
		var bestMove move

		positions := g.SwappablePositions()

		for i := 0; i < len(positions); i++ {
			p1 := positions[i]

			for j := i + 1; j < len(positions); j++ {
				p2 := positions[j]
				g.SwapInGrid(p1, p2)
				score := g.Score()
				if score < best {
					best = score
					bestMove = move{kind: moveGrid, p1: p1, p2: p2}
				}
				g.SwapInGrid(p1, p2) // self-inverse: revert
			}

			poolLen := len(g.Unassigned())
			for k := 0; k < poolLen; k++ {
				savedCell := g.Cell(p1)
				savedPool := g.Unassigned()

				g.SwapWithPool(p1, k)
				score := g.Score()
				if score < best {
					best = score
					bestMove = move{kind: movePool, p1: p1, poolIdx: k}
				}

				restoreCell(g, p1, savedCell)
				g.SetUnassigned(savedPool)
			}
		}

		if bestMove.kind == moveNone {
			break // local optimum reached
		}

		bestMove.apply(g)
		if best > current {
			panic("optimizer: monotonicity invariant violated: best improvement worsened the score")
		}
		current = best

		cfg.logger.WithField("iteration", iter).WithField("score", current).Debug("applied improving move")
	}

	return current
}

// ImproveWithRestarts snapshots g, runs Improve on the snapshot
// restarts+1 times (once, then restarts more), keeping the
// lowest-scoring result, overwrites g with that best grid, and returns
// its score. For the same starting grid and the same sequence of
// random draws, more restarts never produce a worse result.
func ImproveWithRestarts(g *schedule.Grid, restarts int, opts ...Option) float64 {
	cfg := newConfig(opts)

	snapshot := g.Clone()

	bestScore := Improve(g, opts...)
	bestGrid := g.Clone()

	cfg.logger.WithField("restart", 0).WithField("score", bestScore).Debug("initial run complete")

	for i := 0; i < restarts; i++ {
		attempt := snapshot.Clone()
		score := Improve(attempt, opts...)

		cfg.logger.WithField("restart", i+1).WithField("score", score).Debug("restart complete")

		if score < bestScore {
			bestScore = score
			bestGrid = attempt
		}
	}

	*g = *bestGrid
	cfg.logger.WithField("best_score", bestScore).Info("improve_with_restarts finished")

	return bestScore
}

func restoreCell(g *schedule.Grid, p schedule.Position, saved schedule.Cell) {
	if saved.SessionID != nil {
		g.SetCellSession(p, schedule.Session{SessionID: *saved.SessionID, NumVotes: saved.NumVotes, TagID: saved.TagID})
	} else {
		g.ClearCell(p)
	}
}
