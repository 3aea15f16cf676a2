package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/twenty48/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestGameResetDeterministic(t *testing.T) {
	g1 := New(ModeClassic, DefaultRules())
	g1.Reset(testConfig(12345))

	g2 := New(ModeClassic, DefaultRules())
	g2.Reset(testConfig(12345))

	if g1.Snapshot().Board != g2.Snapshot().Board {
		t.Errorf("same seed should produce same initial board:\n%v\nvs\n%v",
			g1.Snapshot().Board, g2.Snapshot().Board)
	}
}

func TestGameStepProcessesOneMove(t *testing.T) {
	g := New(ModeClassic, DefaultRules())
	g.Reset(testConfig(42))

	before := g.Snapshot()

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)

	after := g.Snapshot()
	if after.Moves > before.Moves+1 {
		t.Errorf("one tick processed %d moves", after.Moves-before.Moves)
	}
}

func TestGameIgnoresMovesWhenPaused(t *testing.T) {
	g := New(ModeClassic, DefaultRules())
	g.Reset(testConfig(42))

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)

	if !g.State().Paused {
		t.Fatal("pause action should pause the game")
	}

	before := g.Snapshot()
	in = core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)

	if g.Snapshot().Board != before.Board {
		t.Error("paused game must not process moves")
	}

	// Unpause resumes play.
	in = core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	if g.State().Paused {
		t.Error("second pause action should resume")
	}
}

func TestGameOverBlocksInput(t *testing.T) {
	g := New(ModeClassic, DefaultRules())
	g.Reset(testConfig(42))

	g.session = newTestSession(Board{
		{1024, 1024, 0, 0},
	}, DefaultRules(), 1)

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)

	if g.session.Status() != StatusWon {
		t.Fatalf("status = %v, want won", g.session.Status())
	}
	if !g.State().GameOver {
		t.Error("State().GameOver should be true after a win")
	}

	board := g.Snapshot().Board
	in = core.NewInputFrame()
	in.Set(core.ActionDown)
	g.Step(in)

	if g.Snapshot().Board != board {
		t.Error("directional input after game over must be ignored")
	}
}

func TestEndlessModeNeverWins(t *testing.T) {
	g := New(ModeEndless, DefaultRules())
	g.Reset(testConfig(42))

	g.session = newTestSession(Board{
		{2048, 2048, 0, 0},
	}, g.rules, 1)

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)

	if g.session.Status() != StatusPlaying {
		t.Errorf("endless mode status = %v, want playing past 2048", g.session.Status())
	}
	if g.Snapshot().MaxTile < 4096 {
		t.Errorf("max tile = %d, want at least 4096", g.Snapshot().MaxTile)
	}
}

func TestGameTooSmallFreezesSimulation(t *testing.T) {
	g := New(ModeClassic, DefaultRules())
	cfg := testConfig(42)
	cfg.ScreenW = 10
	cfg.ScreenH = 5
	g.Reset(cfg)

	if !g.State().Paused {
		t.Error("tiny screen should report paused state")
	}

	before := g.Snapshot()
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)

	if g.Snapshot().Board != before.Board {
		t.Error("too-small game must not process moves")
	}
}

func TestGameRenderShowsTiles(t *testing.T) {
	g := New(ModeClassic, DefaultRules())
	g.Reset(testConfig(42))

	g.session = newTestSession(Board{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 512},
	}, DefaultRules(), 1)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "2") {
		t.Error("render output should contain the tile value 2")
	}
	if !strings.Contains(out, "512") {
		t.Error("render output should contain the tile value 512")
	}
	if !strings.Contains(out, "Score:") {
		t.Error("render output should contain the score HUD")
	}
	if !strings.Contains(out, "Moves:") {
		t.Error("render output should contain the move counter")
	}
}

func TestModeMetadata(t *testing.T) {
	modes := Modes()
	if len(modes) != 2 {
		t.Fatalf("Modes() returned %d entries, want 2", len(modes))
	}

	if !ValidMode("classic") || !ValidMode("endless") {
		t.Error("classic and endless should be valid modes")
	}
	if ValidMode("pong") {
		t.Error("unknown mode should be invalid")
	}

	if New(ModeClassic, DefaultRules()).ID() != "classic" {
		t.Error("classic game ID mismatch")
	}
	if New(ModeEndless, DefaultRules()).ID() != "endless" {
		t.Error("endless game ID mismatch")
	}
}
