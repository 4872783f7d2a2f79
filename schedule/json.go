package schedule

import "github.com/joeycumines/go-utilpkg/jsonenc"

// MarshalResultJSON renders the grid as a JSON object with two fields:
// "rows" (an array of arrays of vote counts, null for an empty cell)
// and "unassigned" (an array of pool vote counts). It is an additional,
// machine-readable view alongside the stable textual format of String,
// not a replacement for it.
func (g *Grid) MarshalResultJSON() []byte {
	buf := make([]byte, 0, 64*g.Capacity())
	buf = append(buf, `{"rows":[`...)
	for r, row := range g.rows {
		if r > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, '[')
		for c, cell := range row {
			if c > 0 {
				buf = append(buf, ',')
			}
			if cell.empty() {
				buf = append(buf, "null"...)
			} else {
				buf = jsonenc.AppendFloat64(buf, float64(cell.NumVotes))
			}
		}
		buf = append(buf, ']')
	}
	buf = append(buf, `],"unassigned":[`...)
	for i, s := range g.unassigned {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = jsonenc.AppendFloat64(buf, float64(s.NumVotes))
	}
	buf = append(buf, `]}`...)
	return buf
}
