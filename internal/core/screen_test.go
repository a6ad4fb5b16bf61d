package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("dimensions = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 4, '●', ColorRed)
	if c := s.GetCell(3, 4); c.Rune != '●' || c.Color != ColorRed {
		t.Errorf("GetCell(3, 4) = %+v, expected red ●", c)
	}

	// Out of bounds writes are ignored and reads are blank
	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(0, 100, 'A', ColorRed)
	if s.GetCell(-1, 0).Rune != ' ' || s.GetCell(0, 100).Rune != ' ' {
		t.Error("out of bounds GetCell should return a blank cell")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if row := screenRow(s, 1); !strings.HasPrefix(row, "  Hello") {
		t.Errorf("row 1 = %q, expected to start with \"  Hello\"", row)
	}

	s.DrawText(18, 0, "Hello")
	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCenteredColored(1, "★ 3", ColorYellow)

	x := (20 - 3) / 2
	if c := s.GetCell(x, 1); c.Rune != '★' || c.Color != ColorYellow {
		t.Errorf("expected yellow ★ at x=%d, got %+v", x, c)
	}
	if s.GetCell(x+2, 1).Rune != '3' {
		t.Errorf("expected '3' at x=%d, got %q", x+2, s.GetCell(x+2, 1).Rune)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.GetCell(pos[0], pos[1]).Rune; got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	if s.GetCell(3, 1).Color != ColorGray {
		t.Error("box edge should carry the box color")
	}
	if s.GetCell(3, 2).Rune != ' ' {
		t.Error("box interior should stay blank")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#')

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.GetCell(x, y).Rune != '#' {
				t.Errorf("DrawRect: expected '#' at (%d, %d), got %q", x, y, s.GetCell(x, y).Rune)
			}
		}
	}
	if s.GetCell(5, 5).Rune != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize dimensions = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(screenRow(s, 0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", screenRow(s, 0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(screenRow(s, 0), "Hello") {
		t.Errorf("content should be preserved after enlarging, row 0 = %q", screenRow(s, 0))
	}
	if len(strings.Split(s.String(), "\n")) != 8 {
		t.Error("String should render one line per row")
	}
}

func screenRow(s *Screen, y int) string {
	return strings.Split(s.String(), "\n")[y]
}
