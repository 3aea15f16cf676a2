package game

// Snapshot is a read-only view of a session, consumed by the presentation
// layer and by determinism tests. Nothing in a snapshot can reach back
// into session state.
type Snapshot struct {
	Board   Board
	Score   int
	Moves   int
	MaxTile int
	Status  Status
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Board:   s.board,
		Score:   s.score,
		Moves:   s.moves,
		MaxTile: s.board.MaxTile(),
		Status:  s.status,
	}
}
