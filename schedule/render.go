package schedule

import (
	"strconv"
	"strings"
)

// String renders the grid in a stable textual format: one "Row <n>:"
// line per row (1-based), followed by a bracketed comma-separated list
// of each cell's vote count, or "-" for an empty cell, then a trailing
// "Unassigned: v1, v2, ..." line if the pool is non-empty.
func (g *Grid) String() string {
	var b strings.Builder
	for r, row := range g.rows {
		b.WriteString("Row ")
		b.WriteString(strconv.Itoa(r + 1))
		b.WriteString(": [")
		for c, cell := range row {
			if c > 0 {
				b.WriteString(", ")
			}
			if cell.empty() {
				b.WriteByte('-')
			} else {
				b.WriteString(strconv.Itoa(cell.NumVotes))
			}
		}
		b.WriteString("]\n")
	}

	if len(g.unassigned) > 0 {
		b.WriteString("Unassigned: ")
		for i, s := range g.unassigned {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Itoa(s.NumVotes))
		}
		b.WriteString("\n")
	}

	return b.String()
}
