// Package engine is the game-state engine: it owns the bear, bees and honey
// pots, runs the two background movers, applies spawn and collision rules
// once per tick and persists an unfinished game between runs.
//
// A single mutex guards all mutable state. The movers, Tick, MovePlayer and
// every state operation take it, so one tick's spawn, collision and
// life/score changes are applied as one unit.
package engine

import (
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/honeyrun/internal/config"
	"github.com/vovakirdan/honeyrun/internal/core"
	"github.com/vovakirdan/honeyrun/internal/entity"
	"github.com/vovakirdan/honeyrun/internal/savefile"
)

// Game is the bear game state machine.
type Game struct {
	cfg    config.Config
	logger *log.Logger
	store  *savefile.Store
	codec  savefile.Codec
	rng    *rand.Rand

	mu         sync.Mutex
	bear       *entity.Bear
	bees       []entity.Bee
	honey      []entity.Honey
	status     Status
	statusSeq  uint64
	highScores []HighScore

	observerMu   sync.Mutex
	observers    map[int]func(Status)
	nextObserver int

	notifyMu     sync.Mutex
	deliveredSeq uint64

	scheduler *Scheduler
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for persistence failures and lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithStore overrides the save file location from the config.
func WithStore(s *savefile.Store) Option {
	return func(g *Game) {
		if s != nil {
			g.store = s
		}
	}
}

// WithRand sets the random source for lanes and spawn points.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
		}
	}
}

// New creates a paused game with no bear and starts the background movers.
// Call LoadGame or NewGame to begin playing and Shutdown (or Exit) when done.
func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{
		cfg: cfg,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			Level:  log.WarnLevel,
			Prefix: "engine",
		}),
		store:     savefile.NewStore(cfg.SaveFile),
		codec:     savefile.Codec{LegacyAxisOrder: cfg.LegacyAxisOrder},
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		status:    StatusPaused,
		observers: make(map[int]func(Status)),
		scheduler: NewScheduler(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.scheduler.Every("bee-mover", cfg.Movers.BeePeriod, g.MoveBees)
	g.scheduler.Every("honey-mover", cfg.Movers.HoneyPeriod, g.MoveHoney)
	g.scheduler.Start()
	g.logger.Debug("movers started", "jobs", g.scheduler.Jobs())

	return g
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Pause stops the movers and ticks from changing anything.
func (g *Game) Pause() {
	g.setStatus(StatusPaused)
}

// Resume restarts play. It does nothing when the game is over.
func (g *Game) Resume() {
	g.mu.Lock()
	if g.gameOverLocked() {
		g.mu.Unlock()
		return
	}
	seq := g.setStatusLocked(StatusRunning)
	g.mu.Unlock()

	g.notify(StatusRunning, seq)
}

// NewGame discards any save file and starts over with a fresh bear.
func (g *Game) NewGame() {
	g.removeSaveFile()

	g.mu.Lock()
	g.resetLocked()
	seq := g.setStatusLocked(StatusRunning)
	g.mu.Unlock()

	g.logger.Debug("new game started")
	g.notify(StatusRunning, seq)
}

// resetLocked clears the field and places a fresh bear.
func (g *Game) resetLocked() {
	p := g.cfg.Player
	bear := entity.NewBear(p.Width, p.Height, p.StepDivisor, p.StartX, p.StartY, p.Lives)
	g.bear = &bear
	g.bees = nil
	g.honey = nil
}

// Exit pauses the game, saves it if it is not over and stops the movers.
// Save failures are logged and otherwise ignored. Terminating the process
// is left to the caller.
func (g *Game) Exit() {
	g.Pause()
	if err := g.Save(); err != nil {
		g.logger.Warn("could not save game", "path", g.store.Path, "error", err)
	}
	g.Shutdown()
}

// Shutdown stops the background movers. Safe to call more than once.
func (g *Game) Shutdown() {
	g.scheduler.Stop()
}

// MovePlayer moves the bear one step in the given direction. A move that
// would leave the field is rejected and the bear stays where it is.
// Reports whether the bear moved.
func (g *Game) MovePlayer(dir core.Action) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.bear == nil {
		return false
	}
	b := g.bear
	field := g.cfg.Field

	switch dir {
	case core.ActionUp:
		next := b.Y - b.VerticalStep()
		if next < 0 {
			return false
		}
		b.Y = next
	case core.ActionDown:
		next := b.Y + b.VerticalStep()
		if next > field.Height-b.VerticalStep() {
			return false
		}
		b.Y = next
	case core.ActionLeft:
		next := b.X - b.HorizontalStep()
		if next < 0 {
			return false
		}
		b.X = next
	case core.ActionRight:
		next := b.X + b.HorizontalStep()
		if next > field.Width-b.Width {
			return false
		}
		b.X = next
	default:
		return false
	}
	return true
}

// Status returns the stored status.
func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// IsGameRunning reports whether the status is RUNNING.
func (g *Game) IsGameRunning() bool {
	return g.Status() == StatusRunning
}

// IsPaused reports whether the status is PAUSED.
func (g *Game) IsPaused() bool {
	return g.Status() == StatusPaused
}

// IsGameOver reports whether there is no bear or it has no lives left.
func (g *Game) IsGameOver() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gameOverLocked()
}

func (g *Game) gameOverLocked() bool {
	return g.bear == nil || !g.bear.Alive()
}

// Player returns a copy of the bear, or false if there is none.
func (g *Game) Player() (entity.Bear, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.bear == nil {
		return entity.Bear{}, false
	}
	return *g.bear, true
}

// Bees returns a copy of the bees on the field.
func (g *Game) Bees() []entity.Bee {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]entity.Bee(nil), g.bees...)
}

// Honey returns a copy of the honey pots on the field.
func (g *Game) Honey() []entity.Honey {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]entity.Honey(nil), g.honey...)
}

// State is a consistent copy of everything the presentation layer draws.
type State struct {
	Status   Status
	GameOver bool
	Bear     entity.Bear
	HasBear  bool
	Bees     []entity.Bee
	Honey    []entity.Honey
}

// State returns a consistent copy of the field taken under one lock.
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := State{
		Status:   g.status,
		GameOver: g.gameOverLocked(),
		Bees:     append([]entity.Bee(nil), g.bees...),
		Honey:    append([]entity.Honey(nil), g.honey...),
	}
	if g.bear != nil {
		s.Bear = *g.bear
		s.HasBear = true
	}
	return s
}

// Subscribe registers fn to be called on status transitions.
// fn runs on the goroutine that caused the transition, outside the engine
// lock, so it may read the game; it must not change the status itself.
// Deliveries are serialized and never go backwards: when transitions race,
// a superseded one is skipped, and the last status delivered is the
// current one. The returned func unsubscribes.
func (g *Game) Subscribe(fn func(Status)) (unsubscribe func()) {
	g.observerMu.Lock()
	id := g.nextObserver
	g.nextObserver++
	g.observers[id] = fn
	g.observerMu.Unlock()

	return func() {
		g.observerMu.Lock()
		delete(g.observers, id)
		g.observerMu.Unlock()
	}
}

func (g *Game) setStatus(s Status) {
	g.mu.Lock()
	seq := g.setStatusLocked(s)
	g.mu.Unlock()

	g.notify(s, seq)
}

// setStatusLocked stores s and returns the transition's sequence number,
// or 0 when the status did not change.
func (g *Game) setStatusLocked(s Status) uint64 {
	if g.status == s {
		return 0
	}
	g.status = s
	g.statusSeq++
	return g.statusSeq
}

// notify delivers transition seq unless a later one was delivered already.
func (g *Game) notify(s Status, seq uint64) {
	if seq == 0 {
		return
	}
	g.notifyMu.Lock()
	defer g.notifyMu.Unlock()
	if seq <= g.deliveredSeq {
		return
	}
	g.deliveredSeq = seq

	g.observerMu.Lock()
	fns := make([]func(Status), 0, len(g.observers))
	for _, fn := range g.observers {
		fns = append(fns, fn)
	}
	g.observerMu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}
