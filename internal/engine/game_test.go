package engine

import (
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/honeyrun/internal/config"
	"github.com/vovakirdan/honeyrun/internal/core"
	"github.com/vovakirdan/honeyrun/internal/entity"
)

// testConfig returns the default config with the background movers off and
// the save file in a temp dir.
func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Movers = config.MoverConfig{}
	cfg.SaveFile = filepath.Join(t.TempDir(), "gamestate")
	return cfg
}

func newTestGame(t *testing.T, cfg config.Config, opts ...Option) *Game {
	t.Helper()
	opts = append([]Option{
		WithRand(rand.New(rand.NewSource(42))),
		WithLogger(log.New(io.Discard)),
	}, opts...)
	g := New(cfg, opts...)
	t.Cleanup(g.Shutdown)
	return g
}

func TestNewGameStartsRunning(t *testing.T) {
	g := newTestGame(t, testConfig(t))

	if !g.IsPaused() || !g.IsGameOver() {
		t.Fatal("a fresh engine should be paused with no bear")
	}
	g.Resume()
	if g.IsGameRunning() {
		t.Error("Resume() must be a no-op while the game is over")
	}

	g.NewGame()
	if !g.IsGameRunning() || g.IsGameOver() {
		t.Fatalf("after NewGame() status = %v, game over = %v", g.Status(), g.IsGameOver())
	}
	bear, ok := g.Player()
	if !ok {
		t.Fatal("Player() should return the new bear")
	}
	if bear.Lives != 3 || bear.EatenHoney != 0 || bear.X != 20 || bear.Y != 240 {
		t.Errorf("unexpected fresh bear: %+v", bear)
	}
	if len(g.Bees()) != 0 || len(g.Honey()) != 0 {
		t.Error("NewGame() should clear bees and honey")
	}
}

func TestNewGameClearsField(t *testing.T) {
	g := newTestGame(t, testConfig(t))
	g.NewGame()
	for i := 0; i < 20; i++ {
		g.Tick()
	}
	g.MovePlayer(core.ActionDown)

	g.NewGame()
	bear, _ := g.Player()
	if bear.Y != 240 {
		t.Errorf("NewGame() should reset the bear position, y = %v", bear.Y)
	}
	if len(g.Bees()) != 0 || len(g.Honey()) != 0 {
		t.Error("NewGame() should clear bees and honey")
	}
}

func TestPauseResumeObservers(t *testing.T) {
	g := newTestGame(t, testConfig(t))

	var seen []Status
	unsubscribe := g.Subscribe(func(s Status) {
		seen = append(seen, s)
	})

	g.NewGame()
	g.Pause()
	g.Pause()
	g.Resume()
	g.Resume()

	want := []Status{StatusRunning, StatusPaused, StatusRunning}
	if len(seen) != len(want) {
		t.Fatalf("observed %v, expected %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("transition %d = %v, expected %v", i, seen[i], want[i])
		}
	}

	unsubscribe()
	g.Pause()
	if len(seen) != len(want) {
		t.Error("unsubscribed observer should not be called")
	}
}

func TestStatusString(t *testing.T) {
	if StatusRunning.String() != "RUNNING" || StatusPaused.String() != "PAUSED" {
		t.Errorf("unexpected names %q, %q", StatusRunning, StatusPaused)
	}
}

func TestMovePlayerStaysInField(t *testing.T) {
	cfg := testConfig(t)
	g := newTestGame(t, cfg)
	g.NewGame()

	bear, _ := g.Player()
	maxX := cfg.Field.Width - bear.Width
	maxY := cfg.Field.Height - bear.VerticalStep()

	rng := rand.New(rand.NewSource(7))
	dirs := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}
	for i := 0; i < 2000; i++ {
		g.MovePlayer(dirs[rng.Intn(len(dirs))])

		b, _ := g.Player()
		if b.X < 0 || b.X > maxX || b.Y < 0 || b.Y > maxY {
			t.Fatalf("move %d left the field: (%v, %v)", i, b.X, b.Y)
		}
	}
}

func TestMovePlayerRejectsWithoutClipping(t *testing.T) {
	g := newTestGame(t, testConfig(t))
	g.NewGame()

	// start (20, 240), steps 20 both ways
	tests := []struct {
		dir   core.Action
		moved bool
		x, y  float64
	}{
		{core.ActionLeft, true, 0, 240},
		{core.ActionLeft, false, 0, 240},
		{core.ActionUp, true, 0, 220},
		{core.ActionRight, true, 20, 220},
		{core.ActionDown, true, 20, 240},
		{core.ActionNone, false, 20, 240},
	}
	for i, tc := range tests {
		if moved := g.MovePlayer(tc.dir); moved != tc.moved {
			t.Errorf("step %d: MovePlayer(%v) = %v, expected %v", i, tc.dir, moved, tc.moved)
		}
		b, _ := g.Player()
		if b.X != tc.x || b.Y != tc.y {
			t.Errorf("step %d: position (%v, %v), expected (%v, %v)", i, b.X, b.Y, tc.x, tc.y)
		}
	}

	for g.MovePlayer(core.ActionUp) {
	}
	if b, _ := g.Player(); b.Y != 0 {
		t.Errorf("bear should stop exactly at the top, y = %v", b.Y)
	}
	for g.MovePlayer(core.ActionDown) {
	}
	if b, _ := g.Player(); b.Y != 580 {
		t.Errorf("bear should stop at height - step, y = %v", b.Y)
	}
	for g.MovePlayer(core.ActionRight) {
	}
	if b, _ := g.Player(); b.X != 720 {
		t.Errorf("bear should stop at width - bear width, x = %v", b.X)
	}
}

func TestMovePlayerWithoutBear(t *testing.T) {
	g := newTestGame(t, testConfig(t))
	if g.MovePlayer(core.ActionUp) {
		t.Error("MovePlayer() without a bear should do nothing")
	}
}

func TestHighScoresSortedDescending(t *testing.T) {
	g := newTestGame(t, testConfig(t))

	for _, s := range []int{50, 200, 10} {
		g.AddHighScore(HighScore{Name: "bear", Score: s})
	}

	got := g.HighScores()
	want := []int{200, 50, 10}
	if len(got) != len(want) {
		t.Fatalf("HighScores() = %v", got)
	}
	for i := range want {
		if got[i].Score != want[i] {
			t.Errorf("HighScores()[%d] = %d, expected %d", i, got[i].Score, want[i])
		}
	}

	got[0].Score = -1
	if g.HighScores()[0].Score != 200 {
		t.Error("HighScores() should return a copy")
	}
}

func TestExitSavesAndNewGameDeletes(t *testing.T) {
	cfg := testConfig(t)
	g := newTestGame(t, cfg)
	g.NewGame()

	g.Exit()
	if !g.IsPaused() {
		t.Error("Exit() should pause the game")
	}
	if _, err := os.Stat(cfg.SaveFile); err != nil {
		t.Fatalf("Exit() should write the save file: %v", err)
	}

	g.NewGame()
	if _, err := os.Stat(cfg.SaveFile); !os.IsNotExist(err) {
		t.Error("NewGame() should delete the save file")
	}
}

func TestSaveSkippedWhenGameOver(t *testing.T) {
	cfg := testConfig(t)
	g := newTestGame(t, cfg)

	if err := g.Save(); err != nil {
		t.Fatalf("Save() without a bear should be a silent no-op, got %v", err)
	}
	if _, err := os.Stat(cfg.SaveFile); !os.IsNotExist(err) {
		t.Error("nothing should be written when the game is over")
	}
}

// place puts the given entities on the field, replacing whatever was there.
func place(g *Game, bear entity.Bear, bees []entity.Bee, honey []entity.Honey) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.bear = &bear
	g.bees = bees
	g.honey = honey
}
