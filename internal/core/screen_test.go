package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if got := s.Get(3, 2); got != '#' {
		t.Errorf("Get(3,2) = %q, want '#'", got)
	}

	// Unset cells are spaces.
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("Get(0,0) = %q, want space", got)
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(1, 1, 'X', ColorOrange)

	cell := s.GetCell(1, 1)
	if cell.Rune != 'X' || cell.Color != ColorOrange {
		t.Errorf("GetCell(1,1) = %+v, want X in orange", cell)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	// Writes outside the buffer are ignored, reads return spaces.
	s.Set(-1, 0, '#')
	s.Set(0, -1, '#')
	s.Set(4, 0, '#')
	s.Set(0, 4, '#')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get(-1,0) = %q, want space", got)
	}
	if got := s.Get(4, 4); got != ' ' {
		t.Errorf("Get(4,4) = %q, want space", got)
	}
	cell := s.GetCell(99, 99)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("GetCell(99,99) = %+v, want default space", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "2048")
	if got := s.Row(1); got != "  2048    " {
		t.Errorf("Row(1) = %q, want %q", got, "  2048    ")
	}

	// Text is clipped at the right edge.
	s.DrawText(8, 0, "abc")
	if got := s.Row(0); got != "        ab" {
		t.Errorf("Row(0) = %q, want %q", got, "        ab")
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawTextColored(0, 0, "hi", ColorCyan)

	if cell := s.GetCell(0, 0); cell.Rune != 'h' || cell.Color != ColorCyan {
		t.Errorf("GetCell(0,0) = %+v, want cyan 'h'", cell)
	}
	if cell := s.GetCell(1, 0); cell.Rune != 'i' || cell.Color != ColorCyan {
		t.Errorf("GetCell(1,0) = %+v, want cyan 'i'", cell)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(2, 2, '#', ColorRed)

	s.Clear()

	cell := s.GetCell(2, 2)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("GetCell(2,2) after Clear = %+v, want default space", cell)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(1, 1, '#')
	s.Set(5, 3, '@')

	s.Resize(4, 3)

	if s.Width() != 4 || s.Height() != 3 {
		t.Errorf("size after resize = %dx%d, want 4x3", s.Width(), s.Height())
	}
	// Content inside the new bounds survives; the rest is dropped.
	if got := s.Get(1, 1); got != '#' {
		t.Errorf("Get(1,1) = %q after shrink, want '#'", got)
	}
	if got := s.Get(3, 2); got != ' ' {
		t.Errorf("Get(3,2) = %q after shrink, want space", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)

	s.DrawBox(Rect{X: 0, Y: 0, W: 4, H: 3})

	if got := s.Get(0, 0); got != '┌' {
		t.Errorf("Get(0,0) = %q, want corner", got)
	}
	if got := s.Get(3, 0); got != '┐' {
		t.Errorf("Get(3,0) = %q, want corner", got)
	}
	if got := s.Get(0, 2); got != '└' {
		t.Errorf("Get(0,2) = %q, want corner", got)
	}
	if got := s.Get(3, 2); got != '┘' {
		t.Errorf("Get(3,2) = %q, want corner", got)
	}
	if got := s.Get(1, 0); got != '─' {
		t.Errorf("Get(1,0) = %q, want horizontal edge", got)
	}
	if got := s.Get(0, 1); got != '│' {
		t.Errorf("Get(0,1) = %q, want vertical edge", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	want := "abc\nde "
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if n := strings.Count(s.String(), "\n"); n != 1 {
		t.Errorf("String() newline count = %d, want 1", n)
	}
}
