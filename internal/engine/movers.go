package engine

// MoveBees advances every bee one step left, recycling the ones that leave
// the field into a new lane at the right edge. No-op unless running.
// The scheduler calls it every movers.bee_period.
func (g *Game) MoveBees() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status != StatusRunning {
		return
	}
	for i := range g.bees {
		g.bees[i].Advance(g.cfg.Field.Width, g.randomLane)
	}
}

// MoveHoney is MoveBees for honey pots, on its own period.
func (g *Game) MoveHoney() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status != StatusRunning {
		return
	}
	for i := range g.honey {
		g.honey[i].Advance(g.cfg.Field.Width, g.randomLane)
	}
}

// randomLane picks a lane y uniformly. Callers hold g.mu, which also guards rng.
func (g *Game) randomLane() float64 {
	lanes := g.cfg.Field.Lanes
	return lanes[g.rng.Intn(len(lanes))]
}

// randomSpawnX picks a spawn x for a sprite of the given width.
func (g *Game) randomSpawnX(width float64) float64 {
	offsets := g.cfg.Spawn.XOffsets
	return offsets[g.rng.Intn(len(offsets))] + width
}
