package maze

import "testing"

func TestCellSetMembership(t *testing.T) {
	s := NewCellSet(C(1, 1), C(2, 2), C(1, 1))

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2 (duplicates dropped)", s.Len())
	}
	if !s.Contains(C(1, 1)) || !s.Contains(C(2, 2)) {
		t.Error("Set should contain its initial cells")
	}
	if s.Contains(C(3, 3)) {
		t.Error("Set should not contain (3,3)")
	}

	if s.Add(C(2, 2)) {
		t.Error("Add() of an existing cell should report false")
	}
	if !s.Add(C(3, 3)) {
		t.Error("Add() of a new cell should report true")
	}
}

func TestCellSetRemoveKeepsIndex(t *testing.T) {
	s := NewCellSet(C(0, 0), C(1, 0), C(2, 0), C(3, 0))

	if !s.Remove(C(1, 0)) {
		t.Fatal("Remove() of a present cell should report true")
	}
	if s.Remove(C(1, 0)) {
		t.Error("Removing twice should report false")
	}

	// The last cell fills the hole and must still be removable.
	if !s.Contains(C(3, 0)) {
		t.Fatal("Moved cell lost after Remove")
	}
	if !s.Remove(C(3, 0)) {
		t.Error("Moved cell should still be removable")
	}

	got := s.Cells()
	if len(got) != 2 || got[0] != C(0, 0) || got[1] != C(2, 0) {
		t.Errorf("Cells() = %v, expected [(0,0) (2,0)]", got)
	}
}

func TestCellSetCellsIsCopy(t *testing.T) {
	s := NewCellSet(C(4, 4))
	cells := s.Cells()
	cells[0] = C(9, 9)

	if !s.Contains(C(4, 4)) || s.At(0) != C(4, 4) {
		t.Error("Mutating Cells() result must not affect the set")
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			dx, dy := tc.dir.Delta()
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("Delta() = (%d, %d), expected (%d, %d)", dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

func TestCellInBounds(t *testing.T) {
	tests := []struct {
		cell     Cell
		expected bool
	}{
		{C(0, 0), true},
		{C(9, 9), true},
		{C(-1, 0), false},
		{C(0, -1), false},
		{C(10, 0), false},
		{C(0, 10), false},
	}

	for _, tc := range tests {
		if got := tc.cell.InBounds(); got != tc.expected {
			t.Errorf("%v.InBounds() = %v, expected %v", tc.cell, got, tc.expected)
		}
	}
}
