package schedule

// Cell is a single (row, column) room-time assignment. When SessionID
// is nil the cell is empty and NumVotes/TagID must be ignored by
// callers. They are not necessarily zero: Build keeps a supplied
// TagID on an empty cell and SwapInGrid carries it along; only
// ClearCell zeroes them.
type Cell struct {
	SessionID *SessionID
	NumVotes  int
	TagID     *int
	Pinned    bool
}

func (c *Cell) empty() bool {
	return c.SessionID == nil
}

// session returns the Session value currently held by the cell, or
// false if the cell is empty.
func (c *Cell) session() (Session, bool) {
	if c.empty() {
		return Session{}, false
	}
	return Session{SessionID: *c.SessionID, NumVotes: c.NumVotes, TagID: c.TagID}, true
}

// setSession copies a Session's attributes into the cell.
func (c *Cell) setSession(s Session) {
	id := s.SessionID
	c.SessionID = &id
	c.NumVotes = s.NumVotes
	c.TagID = s.TagID
}

// clear empties the cell.
func (c *Cell) clear() {
	c.SessionID = nil
	c.NumVotes = 0
	c.TagID = nil
}
