package scoring

import "sort"

// Cell is the minimal read-only view of a grid cell the scoring
// engine needs: whether a session is present, its vote count, and its
// topic tag. Empty cells are represented with Present == false.
type Cell struct {
	Present  bool
	NumVotes int
	TagID    *int
}

const (
	weightConflicting = 0.5
	weightMissing      = 0.75
	weightLate        = 0.1
	weightSameTag     = 0.3
)

// Score computes the weighted soft-constraint penalty for a grid,
// given as a slice of rows (each a slice of Cell, row-major, row 0 the
// earliest time slot) plus the vote counts of sessions in the
// unassigned pool. Terms are evaluated in fixed order A, B, C, D and
// combined as 0.5*A + 0.75*B + 0.1*C + 0.3*D.
func Score(rows [][]Cell, poolVotes []int) float64 {
	a := TermConflictingPopular(rows)
	b := TermPopularMissing(rows, poolVotes)
	c := TermLatePopular(rows)
	d := TermSameTagCollisions(rows)
	return Weighted(a, b, c, d)
}

// Weighted combines the four raw penalty terms using the design's
// fixed weights.
func Weighted(a, b, c, d int) float64 {
	return weightConflicting*float64(a) + weightMissing*float64(b) + weightLate*float64(c) + weightSameTag*float64(d)
}

// TermConflictingPopular is Term A: within each row, sort non-empty
// cells with positive votes in descending order and sum the products
// of adjacent pairs, then sum across rows.
func TermConflictingPopular(rows [][]Cell) int {
	total := 0
	for _, row := range rows {
		total += conflictSubSum(row)
	}
	return total
}

// TermPopularMissing is Term B: for every placed session with votes s
// and every pool session with votes u > s, add (u-s)*15, summed over
// all such pairs.
func TermPopularMissing(rows [][]Cell, poolVotes []int) int {
	placed := make([]int, 0, len(rows))
	for _, row := range rows {
		for _, cell := range row {
			if cell.Present {
				placed = append(placed, cell.NumVotes)
			}
		}
	}

	penalty := 0
	for _, s := range placed {
		for _, u := range poolVotes {
			if u > s {
				penalty += (u - s) * 15
			}
		}
	}
	return penalty
}

// TermLatePopular is Term C: Term A's per-row sub-sum, multiplied by
// the row's 0-based index, summed across rows.
func TermLatePopular(rows [][]Cell) int {
	total := 0
	for rowIdx, row := range rows {
		total += conflictSubSum(row) * rowIdx
	}
	return total
}

// TermSameTagCollisions is Term D: within each row, for every
// unordered pair of non-empty cells that share a non-nil tag id, add
// max(votes_i,1)*max(votes_j,1).
func TermSameTagCollisions(rows [][]Cell) int {
	total := 0
	for _, row := range rows {
		tagged := make([]Cell, 0, len(row))
		for _, cell := range row {
			if cell.Present && cell.TagID != nil {
				tagged = append(tagged, cell)
			}
		}

		penalty := 0
		for i := 0; i < len(tagged); i++ {
			for j := i + 1; j < len(tagged); j++ {
				if *tagged[i].TagID == *tagged[j].TagID {
					penalty += max1(tagged[i].NumVotes) * max1(tagged[j].NumVotes)
				}
			}
		}
		total += penalty
	}
	return total
}

func conflictSubSum(row []Cell) int {
	votes := make([]int, 0, len(row))
	for _, cell := range row {
		if cell.Present && cell.NumVotes > 0 {
			votes = append(votes, cell.NumVotes)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(votes)))

	sum := 0
	for i := 0; i+1 < len(votes); i++ {
		sum += votes[i] * votes[i+1]
	}
	return sum
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
