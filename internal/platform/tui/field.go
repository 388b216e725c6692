package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/honeyrun/internal/config"
	"github.com/vovakirdan/honeyrun/internal/core"
	"github.com/vovakirdan/honeyrun/internal/engine"
)

// Glyphs used on the field.
const (
	glyphBear  = '█'
	glyphBee   = '*'
	glyphHoney = 'o'
	glyphLife  = '♥'
)

// fieldView maps field pixels onto the inner area of the field box.
type fieldView struct {
	field  config.FieldConfig
	left   int
	top    int
	width  int
	height int
}

// newFieldView lays the field out below the HUD row, inside a box that
// fills the rest of the screen.
func newFieldView(s *core.Screen, field config.FieldConfig) fieldView {
	return fieldView{
		field:  field,
		left:   1,
		top:    2,
		width:  max(s.Width()-2, 0),
		height: max(s.Height()-3, 0),
	}
}

// project converts a field rectangle to cells. ok is false when nothing of
// the rectangle is inside the field. Anything visible covers at least one cell.
func (v fieldView) project(r core.Rect) (x, y, w, h int, ok bool) {
	if v.width == 0 || v.height == 0 {
		return 0, 0, 0, 0, false
	}
	if r.Right() <= 0 || r.X >= v.field.Width || r.Bottom() <= 0 || r.Y >= v.field.Height {
		return 0, 0, 0, 0, false
	}

	cols, rows := float64(v.width), float64(v.height)

	x0 := core.Clamp(int(math.Floor(r.X*cols/v.field.Width)), 0, v.width-1)
	y0 := core.Clamp(int(math.Floor(r.Y*rows/v.field.Height)), 0, v.height-1)
	x1 := core.Clamp(int(math.Ceil(r.Right()*cols/v.field.Width)), x0+1, v.width)
	y1 := core.Clamp(int(math.Ceil(r.Bottom()*rows/v.field.Height)), y0+1, v.height)

	return v.left + x0, v.top + y0, x1 - x0, y1 - y0, true
}

func (v fieldView) fill(s *core.Screen, r core.Rect, glyph rune, c core.Color) {
	if x, y, w, h, ok := v.project(r); ok {
		s.FillRect(x, y, w, h, glyph, c)
	}
}

// DrawField renders the HUD, the field box, every entity and the
// pause/game-over banner into s.
func DrawField(s *core.Screen, st engine.State, field config.FieldConfig, best int) {
	s.Clear()
	drawHUD(s, st, best)

	if s.Height() < 3 {
		return
	}
	s.DrawBox(0, 1, s.Width(), s.Height()-1)

	v := newFieldView(s, field)
	for _, h := range st.Honey {
		v.fill(s, h.Rect(), glyphHoney, core.ColorOrange)
	}
	for _, b := range st.Bees {
		v.fill(s, b.Rect(), glyphBee, core.ColorYellow)
	}
	if st.HasBear {
		v.fill(s, st.Bear.Rect(), glyphBear, core.ColorBrown)
	}

	switch {
	case st.GameOver:
		drawBanner(s, "GAME OVER", "n: new game   tab: scores   q: quit")
	case st.Status == engine.StatusPaused:
		drawBanner(s, "PAUSED", "p: resume   n: new game   q: save & quit")
	}
}

func drawHUD(s *core.Screen, st engine.State, best int) {
	score := 0
	if st.HasBear {
		score = st.Bear.EatenHoney
	}
	left := fmt.Sprintf(" Honey %d  Best %d  Lives ", score, max(best, score))
	s.DrawText(0, 0, left)

	x := len([]rune(left))
	for i := 0; i < st.Bear.Lives; i++ {
		s.SetColored(x+i, 0, glyphLife, core.ColorRed)
	}

	status := st.Status.String()
	if st.GameOver {
		status = "GAME OVER"
	}
	s.DrawText(s.Width()-len(status)-1, 0, status)
}

func drawBanner(s *core.Screen, title, hint string) {
	mid := s.Height() / 2
	s.DrawTextCentered(mid-1, " "+title+" ")
	s.DrawTextCentered(mid+1, " "+hint+" ")
}
