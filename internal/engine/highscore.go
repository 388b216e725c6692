package engine

import "sort"

// HighScore is one entry on the session's high-score list.
type HighScore struct {
	Name  string
	Score int
}

// AddHighScore inserts an entry, keeping the list sorted by score, highest first.
func (g *Game) AddHighScore(h HighScore) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.highScores = append(g.highScores, h)
	sort.SliceStable(g.highScores, func(i, j int) bool {
		return g.highScores[i].Score > g.highScores[j].Score
	})
}

// HighScores returns a copy of the high-score list, highest first.
func (g *Game) HighScores() []HighScore {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]HighScore(nil), g.highScores...)
}
