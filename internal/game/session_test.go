package game

import "testing"

// newTestSession builds a session with a known board, bypassing the two
// initial spawns.
func newTestSession(board Board, rules Rules, seed int64) *Session {
	s := NewSession(rules, seed)
	s.board = board
	s.score = 0
	s.moves = 0
	s.status = StatusPlaying
	return s
}

func TestNewSessionSpawnsTwoTiles(t *testing.T) {
	s := NewSession(DefaultRules(), 42)

	filled := 0
	for _, row := range s.Board() {
		for _, v := range row {
			if v != 0 {
				filled++
				if v != 2 && v != 4 {
					t.Errorf("initial tile has value %d, want 2 or 4", v)
				}
			}
		}
	}

	if filled != 2 {
		t.Errorf("new session has %d tiles, want 2", filled)
	}
	if s.Status() != StatusPlaying {
		t.Errorf("new session status = %v, want playing", s.Status())
	}
	if s.Score() != 0 || s.Moves() != 0 {
		t.Error("new session should start with zero score and moves")
	}
}

func TestSessionDeterministicSpawns(t *testing.T) {
	s1 := NewSession(DefaultRules(), 12345)
	s2 := NewSession(DefaultRules(), 12345)

	if s1.Board() != s2.Board() {
		t.Fatalf("same seed should produce same initial board:\n%v\nvs\n%v", s1.Board(), s2.Board())
	}

	// Same move sequence keeps the sessions in lockstep.
	seq := []Direction{DirLeft, DirUp, DirRight, DirDown, DirLeft}
	for _, dir := range seq {
		a1 := s1.Move(dir)
		a2 := s2.Move(dir)
		if a1 != a2 || s1.Board() != s2.Board() || s1.Score() != s2.Score() {
			t.Fatalf("sessions diverged after %v", dir)
		}
	}
}

func TestMoveAcceptedUpdatesCounters(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	s := newTestSession(board, DefaultRules(), 7)

	preSum := s.Board().TileSum()
	preEmpty := len(s.Board().EmptyCells())

	if !s.Move(DirLeft) {
		t.Fatal("merging move should be accepted")
	}

	if s.Score() != 4 {
		t.Errorf("score = %d, want 4", s.Score())
	}
	if s.Moves() != 1 {
		t.Errorf("moves = %d, want 1", s.Moves())
	}
	if s.LastDelta() != 4 {
		t.Errorf("last delta = %d, want 4", s.LastDelta())
	}
	if s.LastRejected() {
		t.Error("accepted move should clear the rejection marker")
	}
	if s.Board()[0][0] != 4 {
		t.Errorf("board[0][0] = %d, want 4", s.Board()[0][0])
	}

	// One tile spawned: the merge freed a cell, the spawn took one back.
	postEmpty := len(s.Board().EmptyCells())
	if postEmpty != preEmpty {
		t.Errorf("empty cells = %d, want %d (merge frees one, spawn takes one)", postEmpty, preEmpty)
	}

	// Value conservation: sum grew only by the spawned tile (2 or 4).
	grown := s.Board().TileSum() - preSum
	if grown != 2 && grown != 4 {
		t.Errorf("tile sum grew by %d, want 2 or 4", grown)
	}
}

func TestMoveRejectedMutatesNothing(t *testing.T) {
	board := Board{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	s := newTestSession(board, DefaultRules(), 7)

	if s.Move(DirLeft) {
		t.Fatal("left slide on left-aligned board should be rejected")
	}

	if s.Board() != board {
		t.Error("rejected move must not change the board")
	}
	if s.Score() != 0 || s.Moves() != 0 {
		t.Error("rejected move must not change counters")
	}
	if !s.LastRejected() {
		t.Error("rejected move should set the rejection marker")
	}

	// Idempotence: rejecting again rejects again.
	if s.Move(DirLeft) {
		t.Error("re-applying a rejected direction should stay rejected")
	}
}

func TestSpawnerAccounting(t *testing.T) {
	rules := DefaultRules()
	s := NewSession(rules, 99)

	for range 200 {
		if s.Status() != StatusPlaying {
			break
		}
		var slidEmpty int
		moved := false
		for _, dir := range Directions {
			slid, _, changed := Slide(s.Board(), dir)
			if !changed {
				continue
			}
			slidEmpty = len(slid.EmptyCells())
			if !s.Move(dir) {
				t.Fatal("session rejected a move the engine accepts")
			}
			moved = true
			break
		}
		if !moved {
			break
		}
		// The spawn consumes exactly one of the cells the slide left free.
		post := len(s.Board().EmptyCells())
		if post != slidEmpty-1 {
			t.Fatalf("empty cells after spawn = %d, want %d", post, slidEmpty-1)
		}
		for _, row := range s.Board() {
			for _, v := range row {
				if v != 0 && (v&(v-1)) != 0 {
					t.Fatalf("non-power-of-two tile %d on board", v)
				}
			}
		}
	}
}

func TestSpawnFourProbability(t *testing.T) {
	// With probability 1.0 every spawn is a 4; with 0.0, a 2.
	all4 := NewSession(Rules{WinningTile: 2048, SpawnFourProb: 1.0}, 1)
	for _, row := range all4.Board() {
		for _, v := range row {
			if v != 0 && v != 4 {
				t.Errorf("spawn with prob 1.0 produced %d, want 4", v)
			}
		}
	}

	all2 := NewSession(Rules{WinningTile: 2048, SpawnFourProb: 0.0}, 1)
	for _, row := range all2.Board() {
		for _, v := range row {
			if v != 0 && v != 2 {
				t.Errorf("spawn with prob 0.0 produced %d, want 2", v)
			}
		}
	}
}

func TestWinTransition(t *testing.T) {
	board := Board{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	s := newTestSession(board, DefaultRules(), 3)

	if !s.Move(DirLeft) {
		t.Fatal("merging move should be accepted")
	}

	if s.Status() != StatusWon {
		t.Errorf("status = %v, want won", s.Status())
	}

	// Terminal: further directional input is rejected without mutation.
	after := s.Board()
	if s.Move(DirRight) {
		t.Error("won session must reject further moves")
	}
	if s.Board() != after {
		t.Error("rejected post-win move must not mutate the board")
	}
}

func TestWinAtConfiguredTile(t *testing.T) {
	board := Board{
		{32, 32, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	s := newTestSession(board, Rules{WinningTile: 64, SpawnFourProb: 0.1}, 3)

	s.Move(DirLeft)

	if s.Status() != StatusWon {
		t.Errorf("status = %v, want won at configured tile 64", s.Status())
	}
}

func TestNoWinWhenDisabled(t *testing.T) {
	board := Board{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	s := newTestSession(board, Rules{WinningTile: 0, SpawnFourProb: 0.1}, 3)

	s.Move(DirLeft)

	if s.Status() != StatusPlaying {
		t.Errorf("status = %v, want playing (win check disabled)", s.Status())
	}
}

func TestLossTransition(t *testing.T) {
	// One move left: merging the pair fills the freed cell with a spawn
	// and leaves no further merges for any seed (spawned 2 or 4 sits in
	// the only empty cell, surrounded by distinct values).
	board := Board{
		{8, 8, 32, 64},
		{64, 128, 256, 512},
		{1024, 64, 128, 256},
		{512, 1024, 32, 64},
	}
	s := newTestSession(board, DefaultRules(), 11)

	if !s.Move(DirLeft) {
		t.Fatal("merging move should be accepted")
	}

	if s.Status() != StatusLost {
		t.Fatalf("status = %v, want lost; board:\n%v", s.Status(), s.Board())
	}

	// Lost iff full and all four directions are no-ops.
	if s.Board().HasEmptyCell() {
		t.Error("lost board should be full")
	}
	for _, dir := range Directions {
		if _, _, changed := Slide(s.Board(), dir); changed {
			t.Errorf("lost board should reject %v", dir)
		}
	}

	if s.Move(DirDown) {
		t.Error("lost session must reject further moves")
	}
}

func TestSnapshotReflectsSession(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	s := newTestSession(board, DefaultRules(), 5)
	s.Move(DirLeft)

	snap := s.Snapshot()
	if snap.Score != 4 {
		t.Errorf("snapshot score = %d, want 4", snap.Score)
	}
	if snap.Moves != 1 {
		t.Errorf("snapshot moves = %d, want 1", snap.Moves)
	}
	if snap.Status != StatusPlaying {
		t.Errorf("snapshot status = %v, want playing", snap.Status)
	}
	if snap.MaxTile != snap.Board.MaxTile() {
		t.Error("snapshot max tile disagrees with its own board")
	}

	// The snapshot is a copy: mutating it must not touch the session.
	snap.Board[0][0] = 9999
	if s.Board()[0][0] == 9999 {
		t.Error("snapshot board must be detached from the session")
	}
}
