package engine

// TickResult reports what one Tick did.
type TickResult struct {
	Eaten    int  // honey pots eaten this tick
	Stings   int  // bees that hit the bear this tick
	GameOver bool // the bear is out of lives (or missing)
}

// Tick runs one simulation step: spawn, then honey and bee collisions.
// It does nothing while paused. Once the game is over the status drops to
// PAUSED so nothing moves until a new game starts.
func (g *Game) Tick() TickResult {
	g.mu.Lock()

	if g.gameOverLocked() {
		seq := g.setStatusLocked(StatusPaused)
		g.mu.Unlock()
		g.notify(StatusPaused, seq)
		return TickResult{GameOver: true}
	}
	if g.status != StatusRunning {
		g.mu.Unlock()
		return TickResult{}
	}

	g.spawnLocked()
	res := g.consumeLocked()

	var seq uint64
	if g.gameOverLocked() {
		res.GameOver = true
		seq = g.setStatusLocked(StatusPaused)
	}
	g.mu.Unlock()

	if seq != 0 {
		g.logger.Debug("game over")
	}
	g.notify(StatusPaused, seq)
	return res
}

// consumeLocked applies collisions. Hits are marked during the scan and the
// survivors rebuilt afterwards, so the slices are never edited mid-loop.
func (g *Game) consumeLocked() TickResult {
	var res TickResult

	eaten := make([]bool, len(g.honey))
	for i, h := range g.honey {
		if g.bear.Eat(h) {
			eaten[i] = true
			res.Eaten++
		}
	}
	if res.Eaten > 0 {
		g.honey = keepUnmarked(g.honey, eaten)
	}

	stung := make([]bool, len(g.bees))
	for i, b := range g.bees {
		if g.bear.Sting(b) {
			stung[i] = true
			res.Stings++
		}
	}
	if res.Stings > 0 {
		g.bees = keepUnmarked(g.bees, stung)
	}

	return res
}

func keepUnmarked[T any](items []T, marked []bool) []T {
	kept := make([]T, 0, len(items))
	for i, item := range items {
		if !marked[i] {
			kept = append(kept, item)
		}
	}
	return kept
}
