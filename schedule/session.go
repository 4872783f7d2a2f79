package schedule

// SessionID identifies a candidate talk.
type SessionID int64

// Session is a candidate talk: stable identity plus the attributes the
// Scoring Engine reasons about. Sessions are immutable value records —
// they move between the pool and cells by copy, never by reference.
type Session struct {
	SessionID SessionID
	NumVotes  int
	TagID     *int // nil means no topic tag
}
