package engine

import (
	"slices"

	"github.com/vovakirdan/honeyrun/internal/entity"
)

// spawnLocked adds at most one bee and one honey pot, each only while under
// its cap and only if the drawn spawn point is free.
func (g *Game) spawnLocked() {
	if len(g.bees) < g.cfg.Spawn.MaxBees {
		c := g.cfg.Bee
		x, y := g.randomSpawnX(c.Width), g.randomLane()
		taken := slices.ContainsFunc(g.bees, func(b entity.Bee) bool {
			return b.X == x && b.Y == y
		})
		if !taken {
			g.bees = append(g.bees, entity.NewBee(c.Width, c.Height, c.StepDivisor, x, y))
		}
	}

	if len(g.honey) < g.cfg.Spawn.MaxHoney {
		c := g.cfg.Honey
		x, y := g.randomSpawnX(c.Width), g.randomLane()
		taken := slices.ContainsFunc(g.honey, func(h entity.Honey) bool {
			return h.X == x && h.Y == y
		})
		if !taken {
			g.honey = append(g.honey, entity.NewHoney(c.Width, c.Height, c.StepDivisor, x, y))
		}
	}
}
