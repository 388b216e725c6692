package engine

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/honeyrun/internal/entity"
	"github.com/vovakirdan/honeyrun/internal/savefile"
)

var (
	errNoLiveBear = errors.New("save has no living bear")
	errOffField   = errors.New("save has a position outside the field")
)

// CanLoadGame reports whether a save file is waiting to be loaded.
func (g *Game) CanLoadGame() bool {
	return g.store.Exists()
}

// LoadGame restores the saved game. It returns false when there is no save
// file, leaving the game untouched; the caller should start a new game.
//
// A save that cannot be read or decoded is discarded as a whole and a new
// game is started instead. Either way the save file is consumed.
func (g *Game) LoadGame() bool {
	if !g.store.Exists() {
		return false
	}

	snap, err := g.readSave()
	if err != nil {
		g.logger.Warn("could not load saved game, starting a new one", "path", g.store.Path, "error", err)
		g.NewGame()
		return true
	}

	g.mu.Lock()
	g.applyLocked(snap)
	seq := g.setStatusLocked(StatusRunning)
	g.mu.Unlock()

	g.removeSaveFile()
	g.logger.Info("loaded saved game", "path", g.store.Path, "bees", len(snap.Bees), "honey", len(snap.Honey))
	g.notify(StatusRunning, seq)
	return true
}

func (g *Game) readSave() (savefile.Snapshot, error) {
	data, err := g.store.Read()
	if err != nil {
		return savefile.Snapshot{}, err
	}
	snap, err := g.codec.Decode(data)
	if err != nil {
		return savefile.Snapshot{}, err
	}
	if snap.Bear == nil || snap.Bear.Lives <= 0 {
		return savefile.Snapshot{}, fmt.Errorf("%w: %w", savefile.ErrMalformed, errNoLiveBear)
	}
	if err := g.checkBounds(snap); err != nil {
		return savefile.Snapshot{}, fmt.Errorf("%w: %w", savefile.ErrMalformed, err)
	}
	return snap, nil
}

// checkBounds rejects a snapshot the current field could not have produced:
// a bear outside its move range, or a bee or honey pot beyond the recycle
// bounds. The save may come from a run with a different field or sprites.
func (g *Game) checkBounds(snap savefile.Snapshot) error {
	field, p := g.cfg.Field, g.cfg.Player
	bear := snap.Bear
	if !within(bear.X, 0, field.Width-p.Width) || !within(bear.Y, 0, field.Height-p.Height/p.StepDivisor) {
		return fmt.Errorf("%w: bear at (%g, %g)", errOffField, bear.X, bear.Y)
	}
	for _, pt := range snap.Bees {
		if !within(pt.X, -g.cfg.Bee.Width, field.Width+g.cfg.Bee.Width) {
			return fmt.Errorf("%w: bee at x=%g", errOffField, pt.X)
		}
	}
	for _, pt := range snap.Honey {
		if !within(pt.X, -g.cfg.Honey.Width, field.Width+g.cfg.Honey.Width) {
			return fmt.Errorf("%w: honey at x=%g", errOffField, pt.X)
		}
	}
	return nil
}

func within(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// applyLocked replaces the field with the snapshot contents.
func (g *Game) applyLocked(snap savefile.Snapshot) {
	p, bee, honey := g.cfg.Player, g.cfg.Bee, g.cfg.Honey

	bear := entity.NewBear(p.Width, p.Height, p.StepDivisor, snap.Bear.X, snap.Bear.Y, snap.Bear.Lives)
	bear.EatenHoney = snap.Bear.EatenHoney
	g.bear = &bear

	g.bees = make([]entity.Bee, 0, len(snap.Bees))
	for _, pt := range snap.Bees {
		g.bees = append(g.bees, entity.NewBee(bee.Width, bee.Height, bee.StepDivisor, pt.X, pt.Y))
	}
	g.honey = make([]entity.Honey, 0, len(snap.Honey))
	for _, pt := range snap.Honey {
		g.honey = append(g.honey, entity.NewHoney(honey.Width, honey.Height, honey.StepDivisor, pt.X, pt.Y))
	}
}

// Save writes the current game to the save file, replacing any previous
// one. Nothing is written when the game is over.
func (g *Game) Save() error {
	g.mu.Lock()
	if g.gameOverLocked() {
		g.mu.Unlock()
		return nil
	}
	snap := g.snapshotLocked()
	g.mu.Unlock()

	return g.store.Write(g.codec.Encode(snap))
}

func (g *Game) snapshotLocked() savefile.Snapshot {
	snap := savefile.Snapshot{
		Bear: &savefile.BearRecord{
			EatenHoney: g.bear.EatenHoney,
			Lives:      g.bear.Lives,
			X:          g.bear.X,
			Y:          g.bear.Y,
		},
		Honey: make([]savefile.Point, 0, len(g.honey)),
		Bees:  make([]savefile.Point, 0, len(g.bees)),
	}
	for _, h := range g.honey {
		snap.Honey = append(snap.Honey, savefile.Point{X: h.X, Y: h.Y})
	}
	for _, b := range g.bees {
		snap.Bees = append(snap.Bees, savefile.Point{X: b.X, Y: b.Y})
	}
	return snap
}

// removeSaveFile deletes the save file, logging and ignoring failures.
func (g *Game) removeSaveFile() {
	if err := g.store.Remove(); err != nil {
		g.logger.Debug("could not remove save file", "error", err)
	}
}
