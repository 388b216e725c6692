// Package entity defines the bear, bees and honey pots that live on the field.
// All types are plain values; the engine owns and mutates them under its lock.
package entity

import "github.com/vovakirdan/honeyrun/internal/core"

// Sprite is the shared shape of everything on the field: a fixed size and
// a mutable top-left position, in field pixels.
type Sprite struct {
	X, Y          float64
	Width, Height float64
}

// Rect returns the collision rectangle at the current position.
func (s Sprite) Rect() core.Rect {
	return core.NewRect(s.X, s.Y, s.Width, s.Height)
}

// Overlaps reports whether two sprites' bounding boxes intersect.
func (s Sprite) Overlaps(other Sprite) bool {
	return s.Rect().Intersects(other.Rect())
}

// Drifter is a sprite that moves leftwards by a size-derived step and is
// recycled to the right edge once it leaves the field.
type Drifter struct {
	Sprite
	StepDivisor float64
}

// HorizontalStep returns how far the drifter moves per mover tick.
func (d Drifter) HorizontalStep() float64 {
	return d.Width / d.StepDivisor
}

// Advance moves the drifter one step left. When the new position would put
// it fully past the left edge it is placed at fieldWidth+Width with lane as
// its new y instead. lane is only called on recycle.
// Reports whether the drifter was recycled.
func (d *Drifter) Advance(fieldWidth float64, lane func() float64) bool {
	next := d.X - d.HorizontalStep()
	if next > -d.Width {
		d.X = next
		return false
	}
	d.X = fieldWidth + d.Width
	d.Y = lane()
	return true
}

// Bee is a hazard. Touching one costs the bear a life.
type Bee struct {
	Drifter
}

// NewBee creates a bee at (x, y).
func NewBee(width, height, stepDivisor, x, y float64) Bee {
	return Bee{Drifter{
		Sprite:      Sprite{X: x, Y: y, Width: width, Height: height},
		StepDivisor: stepDivisor,
	}}
}

// Honey is a collectible. Touching one feeds the bear.
type Honey struct {
	Drifter
}

// NewHoney creates a honey pot at (x, y).
func NewHoney(width, height, stepDivisor, x, y float64) Honey {
	return Honey{Drifter{
		Sprite:      Sprite{X: x, Y: y, Width: width, Height: height},
		StepDivisor: stepDivisor,
	}}
}

// Bear is the player character.
type Bear struct {
	Sprite
	StepDivisor float64
	Lives       int
	EatenHoney  int
}

// NewBear creates a bear at (x, y) with the given number of lives.
func NewBear(width, height, stepDivisor, x, y float64, lives int) Bear {
	return Bear{
		Sprite:      Sprite{X: x, Y: y, Width: width, Height: height},
		StepDivisor: stepDivisor,
		Lives:       lives,
	}
}

// HorizontalStep returns the distance of one left/right move.
func (b Bear) HorizontalStep() float64 {
	return b.Width / b.StepDivisor
}

// VerticalStep returns the distance of one up/down move.
func (b Bear) VerticalStep() float64 {
	return b.Height / b.StepDivisor
}

// Alive reports whether the bear has lives left.
func (b Bear) Alive() bool {
	return b.Lives > 0
}

// Eat consumes the honey pot if the bear touches it.
func (b *Bear) Eat(h Honey) bool {
	if !b.Overlaps(h.Sprite) {
		return false
	}
	b.EatenHoney++
	return true
}

// Sting costs the bear a life if the bee touches it. Lives never drop below zero.
func (b *Bear) Sting(bee Bee) bool {
	if !b.Overlaps(bee.Sprite) {
		return false
	}
	if b.Lives > 0 {
		b.Lives--
	}
	return true
}
