package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(30, 7)

	if s.Width() != 30 || s.Height() != 7 {
		t.Fatalf("size = %dx%d, expected 30x7", s.Width(), s.Height())
	}
	for y := range s.Height() {
		if row := s.Row(y); row != strings.Repeat(" ", 30) {
			t.Errorf("Row(%d) = %q, expected blank", y, row)
		}
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("GetCell(%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColorClips(t *testing.T) {
	s := NewScreen(4, 3)

	tests := []struct {
		name string
		x, y int
		in   bool
	}{
		{"origin", 0, 0, true},
		{"last cell", 3, 2, true},
		{"left", -1, 1, false},
		{"right", 4, 1, false},
		{"above", 1, -1, false},
		{"below", 1, 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s.SetColor(tc.x, tc.y, 'E', ColorEnemy)
			got := s.GetCell(tc.x, tc.y)
			if tc.in && (got.Rune != 'E' || got.Color != ColorEnemy) {
				t.Errorf("GetCell(%d, %d) = %+v, expected enemy glyph", tc.x, tc.y, got)
			}
			if !tc.in && got != blank {
				t.Errorf("GetCell(%d, %d) = %+v, expected blank outside the screen", tc.x, tc.y, got)
			}
		})
	}

	s.Set(1, 1, '@')
	if c := s.GetCell(1, 1); c.Color != ColorDefault {
		t.Errorf("Set should use the default color, got %v", c.Color)
	}
}

func TestScreenClearResetsColors(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawTextColor(0, 0, "██████", ColorWall)
	s.DrawTextColor(0, 1, "Score:", ColorCoin)

	s.Clear()

	if s.String() != "      \n      " {
		t.Errorf("String() after Clear = %q", s.String())
	}
	if s.GetCell(3, 0).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(12, 2)

	s.DrawText(1, 0, "Level: 3/3")
	if got := s.Row(0); got != " Level: 3/3 " {
		t.Errorf("Row(0) = %q", got)
	}

	// Multi-byte runes take one cell each, and text clips at the edge
	s.DrawTextColor(8, 1, "·o·E·", ColorFloor)
	if got := s.Row(1); got != "        ·o·E" {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	tests := []struct {
		width int
		text  string
		x     int
	}{
		{20, "Hi", 9},
		{21, "Hi", 9},
		{30, "Restart? (y/n)", 8},
		{10, "Window too small", -3},
	}

	for _, tc := range tests {
		s := NewScreen(tc.width, 1)
		s.DrawTextCentered(0, tc.text, ColorYellow)

		first := []rune(tc.text)[0]
		col := max(tc.x, 0)
		if tc.x < 0 {
			first = []rune(tc.text)[-tc.x]
		}
		if got := s.GetCell(col, 0); got.Rune != first || got.Color != ColorYellow {
			t.Errorf("width %d, %q: cell %d = %+v, expected %q", tc.width, tc.text, col, got, first)
		}
	}
}

func TestScreenDrawBoardBox(t *testing.T) {
	s := NewScreen(8, 4)
	s.DrawBox(NewRect(1, 0, 6, 4), ColorWall)

	expected := []string{
		" ┌────┐ ",
		" │    │ ",
		" │    │ ",
		" └────┘ ",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
	if s.GetCell(1, 0).Color != ColorWall || s.GetCell(3, 3).Color != ColorWall {
		t.Error("Box should use the given color")
	}
	if s.GetCell(3, 1) != blank {
		t.Error("DrawBox must not touch the interior")
	}
}

func TestScreenFillRectOverlay(t *testing.T) {
	s := NewScreen(6, 3)
	for y := range 3 {
		s.DrawTextColor(0, y, "██████", ColorWall)
	}

	box := Centered(6, 3, 4, 1)
	s.FillRect(box, ' ', ColorDefault)

	if got := s.Row(1); got != "█    █" {
		t.Errorf("Row(1) = %q, expected overlay cleared in the middle", got)
	}
	if got := s.Row(0); got != "██████" {
		t.Errorf("Row(0) = %q, expected untouched", got)
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawTextColor(0, 0, "@·G", ColorPlayer)

	s.Resize(2, 3)
	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 2x3", s.Width(), s.Height())
	}
	if s.Row(0) != "@·" || s.GetCell(0, 0).Color != ColorPlayer {
		t.Errorf("Row(0) = %q, expected preserved prefix", s.Row(0))
	}
	if s.Row(2) != "  " {
		t.Errorf("New row should be blank, got %q", s.Row(2))
	}

	s.Resize(5, 1)
	if s.String() != "@·   " {
		t.Errorf("String() = %q after growing width", s.String())
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	for _, y := range []int{-1, 1} {
		if got := s.Row(y); got != "   " {
			t.Errorf("Row(%d) = %q, expected blank row", y, got)
		}
	}
}
