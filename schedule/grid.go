package schedule

import (
	"fmt"
	"math/rand"

	"github.com/relia1/unconfrs/schedule/scoring"
)

// Position identifies a (row, column) cell in the grid. Row 0 is the
// earliest time slot; column order is stable but otherwise arbitrary.
type Position struct {
	Row, Col int
}

// Grid is the in-memory representation of the schedule: a rectangular
// row-major matrix of cells plus the pool of sessions not currently
// placed in any cell. A Grid exclusively owns its cells and pool; it
// is constructed once via Build and then mutated only through the
// operations below, each of which preserves the invariants documented
// on those operations.
//
// Grid is not safe for concurrent use - it is single-owner by design
// (see schedule/evaluator for how parallel exploration clones a Grid
// per worker instead of sharing one).
type Grid struct {
	rows       [][]Cell
	unassigned []Session
}

// CellParams describes the initial contents of one grid cell, as
// supplied to Build.
type CellParams struct {
	Pinned    bool
	SessionID SessionID
	NumVotes  int
	TagID     *int
}

// BuildParams describes a complete scheduling problem: grid dimensions,
// per-cell pin state/contents, and the unassigned pool.
type BuildParams struct {
	Rows, Cols int
	Cells      [][]CellParams // len(Cells) == Rows, len(Cells[r]) == Cols
	Pool       []Session
}

// Build constructs a Grid honoring the invariants of the data model:
// pin preservation, uniqueness, attribute coherence, and
// rectangularity. It panics if params is not rectangular (len(Cells)
// != Rows, or any row's length != Cols) - a malformed BuildParams is a
// programmer error in the caller, not a recoverable condition.
func Build(params BuildParams) *Grid {
	if len(params.Cells) != params.Rows {
		panic(fmt.Sprintf("schedule: Build: expected %d rows, got %d", params.Rows, len(params.Cells)))
	}

	rows := make([][]Cell, params.Rows)
	for r, rowParams := range params.Cells {
		if len(rowParams) != params.Cols {
			panic(fmt.Sprintf("schedule: Build: row %d has %d cells, expected %d", r, len(rowParams), params.Cols))
		}
		row := make([]Cell, params.Cols)
		for c, cp := range rowParams {
			// TagID is a property of the slot itself and is honored
			// regardless of pin state - an unoccupied cell can still
			// carry a tag (e.g. a room's default track), distinct from
			// SessionID/NumVotes which only apply once a session is
			// actually placed.
			row[c] = Cell{Pinned: cp.Pinned, TagID: cp.TagID}
			if cp.Pinned {
				id := cp.SessionID
				row[c].SessionID = &id
				row[c].NumVotes = cp.NumVotes
			}
		}
		rows[r] = row
	}

	pool := make([]Session, len(params.Pool))
	copy(pool, params.Pool)

	return &Grid{rows: rows, unassigned: pool}
}

// NumRows returns the row count R.
func (g *Grid) NumRows() int { return len(g.rows) }

// NumCols returns the column count C (0 if the grid has no rows).
func (g *Grid) NumCols() int {
	if len(g.rows) == 0 {
		return 0
	}
	return len(g.rows[0])
}

// Capacity returns R*C.
func (g *Grid) Capacity() int {
	return g.NumRows() * g.NumCols()
}

// Unassigned returns a copy of the current unassigned pool.
func (g *Grid) Unassigned() []Session {
	out := make([]Session, len(g.unassigned))
	copy(out, g.unassigned)
	return out
}

// Cell returns a copy of the cell at p.
func (g *Grid) Cell(p Position) Cell {
	return g.rows[p.Row][p.Col]
}

// SwappablePositions returns the positions of all non-pinned cells, in
// deterministic row-major order.
func (g *Grid) SwappablePositions() []Position {
	positions := make([]Position, 0, g.Capacity())
	for r, row := range g.rows {
		for c, cell := range row {
			if !cell.Pinned {
				positions = append(positions, Position{Row: r, Col: c})
			}
		}
	}
	return positions
}

// RandomlyFill draws a uniformly random session from the unassigned
// pool for every non-pinned empty cell, in row-major order, removing
// each chosen session from the pool (swap-remove - pool order is not
// an invariant). If the pool empties before every cell is filled, the
// remaining cells stay empty; this is not an error.
func (g *Grid) RandomlyFill() {
	for r := range g.rows {
		for c := range g.rows[r] {
			cell := &g.rows[r][c]
			if cell.Pinned || !cell.empty() {
				continue
			}
			if len(g.unassigned) == 0 {
				return
			}
			i := rand.Intn(len(g.unassigned))
			cell.setSession(g.unassigned[i])
			g.removeFromPool(i)
		}
	}
}

// removeFromPool removes the i-th pool entry via swap-remove.
func (g *Grid) removeFromPool(i int) {
	last := len(g.unassigned) - 1
	g.unassigned[i] = g.unassigned[last]
	g.unassigned = g.unassigned[:last]
}

// SwapInGrid exchanges the session-bearing attributes (session id,
// votes, tag) between two non-pinned cells. Both positions must refer
// to non-pinned cells - violating this is a programmer error and
// panics. Self-swaps (p1 == p2) are legal and a no-op.
func (g *Grid) SwapInGrid(p1, p2 Position) {
	c1 := &g.rows[p1.Row][p1.Col]
	c2 := &g.rows[p2.Row][p2.Col]
	if c1.Pinned || c2.Pinned {
		panic("schedule: SwapInGrid: both positions must be non-pinned")
	}
	c1.SessionID, c2.SessionID = c2.SessionID, c1.SessionID
	c1.NumVotes, c2.NumVotes = c2.NumVotes, c1.NumVotes
	c1.TagID, c2.TagID = c2.TagID, c1.TagID
}

// SwapWithPool exchanges the session-bearing attributes of cell p
// (which must be non-pinned) with the k-th element of the unassigned
// pool. If the cell was empty, the pool loses slot k entirely rather
// than gaining a "ghost" empty session - the pool holds only real
// sessions.
func (g *Grid) SwapWithPool(p Position, k int) {
	cell := &g.rows[p.Row][p.Col]
	if cell.Pinned {
		panic("schedule: SwapWithPool: position must be non-pinned")
	}

	poolSession := g.unassigned[k]
	cellSession, hadSession := cell.session()

	cell.setSession(poolSession)

	if hadSession {
		g.unassigned[k] = cellSession
	} else {
		g.removeFromPool(k)
	}
}

// Score delegates to the scoring engine, evaluating the weighted
// soft-constraint penalty over the grid's current contents and pool.
func (g *Grid) Score() float64 {
	rows := make([][]scoring.Cell, len(g.rows))
	for r, row := range g.rows {
		scoreRow := make([]scoring.Cell, len(row))
		for c, cell := range row {
			scoreRow[c] = scoring.Cell{Present: !cell.empty(), NumVotes: cell.NumVotes, TagID: cell.TagID}
		}
		rows[r] = scoreRow
	}

	poolVotes := make([]int, len(g.unassigned))
	for i, s := range g.unassigned {
		poolVotes[i] = s.NumVotes
	}

	return scoring.Score(rows, poolVotes)
}

// Clone returns a deep copy, safe to mutate independently of g. Used
// by ImproveWithRestarts to snapshot/restore the input grid and by the
// brute-force evaluator to give each worker its own grid instead of
// sharing one across goroutines.
func (g *Grid) Clone() *Grid {
	rows := make([][]Cell, len(g.rows))
	for r, row := range g.rows {
		rows[r] = append([]Cell(nil), row...)
	}
	return &Grid{
		rows:       rows,
		unassigned: append([]Session(nil), g.unassigned...),
	}
}

// SetCellSession directly sets a non-pinned cell's contents to s,
// without touching the pool. Used by the brute-force evaluator to
// reconstruct candidate placements; ordinary local search uses the
// swap primitives above instead.
func (g *Grid) SetCellSession(p Position, s Session) {
	cell := &g.rows[p.Row][p.Col]
	if cell.Pinned {
		panic("schedule: SetCellSession: position must be non-pinned")
	}
	cell.setSession(s)
}

// ClearCell empties a non-pinned cell.
func (g *Grid) ClearCell(p Position) {
	cell := &g.rows[p.Row][p.Col]
	if cell.Pinned {
		panic("schedule: ClearCell: position must be non-pinned")
	}
	cell.clear()
}

// SetUnassigned replaces the unassigned pool wholesale. Used by the
// brute-force evaluator when reconstructing the leftover candidates
// for a given placement.
func (g *Grid) SetUnassigned(pool []Session) {
	g.unassigned = append([]Session(nil), pool...)
}
