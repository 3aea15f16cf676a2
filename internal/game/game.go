package game

import (
	"github.com/vovakirdan/twenty48/internal/core"
)

// Mode represents the game mode.
type Mode string

const (
	// ModeClassic wins at the configured winning tile.
	ModeClassic Mode = "classic"
	// ModeEndless has no win condition; play until the board is dead.
	ModeEndless Mode = "endless"
)

// ModeInfo carries the metadata the menu, CLI, and score storage need.
type ModeInfo struct {
	ID    Mode
	Title string
}

// Modes lists the playable modes in menu order.
func Modes() []ModeInfo {
	return []ModeInfo{
		{ID: ModeClassic, Title: "Classic"},
		{ID: ModeEndless, Title: "Endless"},
	}
}

// ValidMode reports whether id names a playable mode.
func ValidMode(id string) bool {
	for _, m := range Modes() {
		if string(m.ID) == id {
			return true
		}
	}
	return false
}

// Game wraps a Session for the tick-driven platform layer: it maps input
// frames to moves, tracks pause and screen-size state, and renders.
type Game struct {
	mode  Mode
	rules Rules

	session *Session
	tick    uint64

	// Screen dimensions
	screenW int
	screenH int

	paused        bool
	tooSmall      bool
	moveProcessed bool // At most one slide per tick
}

// New creates a game in the given mode. Endless mode disables the win
// check regardless of the configured winning tile.
func New(mode Mode, rules Rules) *Game {
	if mode == ModeEndless {
		rules.WinningTile = 0
	}
	return &Game{
		mode:  mode,
		rules: rules,
	}
}

// ID returns the mode identifier, used for CLI commands and score storage.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "twenty48 (Endless)"
	}
	return "twenty48"
}

// Reset initializes/restarts the game with a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.session = NewSession(g.rules, cfg.Seed)
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.moveProcessed = false
	g.checkScreenSize()
}

// SetScreenSize updates the tracked terminal dimensions. The session is
// untouched: resizing the window never resets a game in progress.
func (g *Game) SetScreenSize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for board plus HUD.
func (g *Game) checkScreenSize() {
	minW := BoardSize*cellWidth + 4
	minH := BoardSize*cellHeight + hudHeight + 4
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick. One input frame is fully processed
// before the next: slide, spawn, terminal check, all within this call.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.session.Status() == StatusPlaying {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Terminal states ignore directional input; restart is handled by the
	// platform via Reset.
	if g.session.Status() != StatusPlaying {
		return core.StepResult{State: g.State()}
	}

	var dir Direction
	moved := false

	switch {
	case in.Has(core.ActionUp):
		dir = DirUp
		moved = true
	case in.Has(core.ActionDown):
		dir = DirDown
		moved = true
	case in.Has(core.ActionLeft):
		dir = DirLeft
		moved = true
	case in.Has(core.ActionRight):
		dir = DirRight
		moved = true
	}

	if moved && !g.moveProcessed {
		g.session.Move(dir)
		g.moveProcessed = true
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state for the platform layer.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Status() != StatusPlaying,
		Paused:   g.paused || g.tooSmall,
	}
}

// Snapshot returns the read-only session snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}
