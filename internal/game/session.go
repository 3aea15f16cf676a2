package game

import (
	"math/rand"
)

// Status represents the session state machine.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Rules holds the tunable constants of a game session.
type Rules struct {
	// WinningTile is the tile value that ends the game with a win.
	// Zero disables the win check (endless play).
	WinningTile int

	// SpawnFourProb is the probability that a spawned tile is a 4
	// instead of a 2. The classic split is 0.10.
	SpawnFourProb float64
}

// DefaultRules returns the classic 2048 rules.
func DefaultRules() Rules {
	return Rules{
		WinningTile:   2048,
		SpawnFourProb: 0.10,
	}
}

// Session owns one game's board, counters, and status. All mutation goes
// through Move; the slide functions themselves are pure. The RNG is owned
// by the session and seeded explicitly, so spawn sequences are
// reproducible.
type Session struct {
	rng   *rand.Rand
	rules Rules

	board  Board
	score  int
	moves  int
	status Status

	lastDelta    int  // Score gained by the last accepted move
	lastRejected bool // Whether the last directional input was a no-op
}

// NewSession creates a session with two spawned starting tiles.
func NewSession(rules Rules, seed int64) *Session {
	s := &Session{
		rng:   rand.New(rand.NewSource(seed)),
		rules: rules,
	}
	s.spawnTile()
	s.spawnTile()
	return s
}

// spawnTile places a 2 (or, with probability SpawnFourProb, a 4) on a
// uniformly random empty cell. It is never called on a full board: Move
// only spawns after a board-changing slide, which always frees a cell or
// is preceded by one being free.
func (s *Session) spawnTile() {
	empty := s.board.EmptyCells()
	if len(empty) == 0 {
		return
	}

	cell := empty[s.rng.Intn(len(empty))]

	value := 2
	if s.rng.Float64() < s.rules.SpawnFourProb {
		value = 4
	}

	s.board[cell.Y][cell.X] = value
}

// Move applies one slide. If the slide changes the board it is accepted:
// the score and move counter advance, a tile spawns, and the terminal
// conditions are evaluated. A slide that changes nothing is rejected and
// mutates no state beyond the rejection marker. Directional input in a
// terminal state is always rejected.
func (s *Session) Move(dir Direction) bool {
	if s.status != StatusPlaying {
		return false
	}

	newBoard, delta, changed := Slide(s.board, dir)
	if !changed {
		s.lastRejected = true
		return false
	}

	s.board = newBoard
	s.score += delta
	s.moves++
	s.lastDelta = delta
	s.lastRejected = false

	s.spawnTile()

	// Terminal checks run after the spawn, so a spawn can never rescue a
	// board that is already dead.
	switch {
	case s.rules.WinningTile > 0 && s.board.MaxTile() >= s.rules.WinningTile:
		s.status = StatusWon
	case !s.board.CanMove():
		s.status = StatusLost
	}

	return true
}

// Board returns a copy of the current board.
func (s *Session) Board() Board {
	return s.board
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Moves returns the number of accepted moves.
func (s *Session) Moves() int {
	return s.moves
}

// Status returns the current session status.
func (s *Session) Status() Status {
	return s.status
}

// LastDelta returns the score gained by the most recent accepted move.
func (s *Session) LastDelta() int {
	return s.lastDelta
}

// LastRejected reports whether the most recent directional input was
// rejected as a no-op.
func (s *Session) LastRejected() bool {
	return s.lastRejected
}
