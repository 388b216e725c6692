package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'B', ColorYellow)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'B' || cell.Color != ColorYellow {
		t.Errorf("GetCell(5, 5) = %+v, expected 'B' in yellow", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenFillRectClips(t *testing.T) {
	s := NewScreen(5, 3)
	s.FillRect(3, 1, 10, 10, '#', ColorOrange)

	if s.Row(0) != "     " {
		t.Errorf("Row(0) = %q, expected untouched", s.Row(0))
	}
	if s.Row(1) != "   ##" {
		t.Errorf("Row(1) = %q, expected %q", s.Row(1), "   ##")
	}
	if s.GetCell(4, 2).Color != ColorOrange {
		t.Error("FillRect should colour the cells it touches")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(0, 0, 6, 4)

	want := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abcdef")

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 || lines[0] != "abc" {
		t.Errorf("String() = %q, expected clipped first row", s.String())
	}

	s.Resize(4, 1)
	if s.Width() != 4 || s.Height() != 1 || s.Row(0) != "    " {
		t.Errorf("Resize should reallocate a blank buffer, got %q", s.Row(0))
	}
}
