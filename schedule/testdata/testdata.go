package testdata

import "github.com/relia1/unconfrs/schedule"

// Uniform builds an unpinned rooms x slots grid (cell (row,col) gets a
// default tag of col+1, independent of whatever session eventually
// lands there) and a pool of floor(rooms*slots*4/3)+1 sessions, so
// that there are always more candidate sessions than cells. Session i
// gets 3*(i/rooms) votes and a tag that cycles as (i%6)+1.
func Uniform(rooms, slots int) schedule.BuildParams {
	cells := make([][]schedule.CellParams, slots)
	for r := range cells {
		row := make([]schedule.CellParams, rooms)
		for c := range row {
			tag := c + 1
			row[c] = schedule.CellParams{TagID: &tag}
		}
		cells[r] = row
	}

	numSessions := rooms*slots*4/3 + 1
	pool := make([]schedule.Session, numSessions)
	for i := range pool {
		tag := (i % 6) + 1
		pool[i] = schedule.Session{
			SessionID: schedule.SessionID(i),
			NumVotes:  3 * (i / rooms),
			TagID:     &tag,
		}
	}

	return schedule.BuildParams{Rows: slots, Cols: rooms, Cells: cells, Pool: pool}
}

// UniformPreassigned is Uniform, but with cell (0,0) pinned to session
// id 999 with 0 votes.
func UniformPreassigned(rooms, slots int) schedule.BuildParams {
	params := Uniform(rooms, slots)
	params.Cells[0][0] = schedule.CellParams{Pinned: true, SessionID: 999, NumVotes: 0}
	return params
}
