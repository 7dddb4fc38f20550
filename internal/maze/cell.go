package maze

import "fmt"

// GridSize is the width and height of the playable area.
const GridSize = 10

// Cell is a grid coordinate. X grows to the right, Y grows downward.
type Cell struct {
	X, Y int
}

// C is a convenience constructor for Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighbouring cell in the given direction.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// InBounds reports whether the cell lies on the grid.
func (c Cell) InBounds() bool {
	return c.X >= 0 && c.X < GridSize && c.Y >= 0 && c.Y < GridSize
}

// key encodes the cell as a single integer for set membership.
func (c Cell) key() int {
	return c.Y*GridSize + c.X
}

// Direction is one of the four unit moves.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in a fixed order.
// Random choices index into it, so the order is part of determinism.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the unit vector for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// CellSet is a set of cells with O(1) membership.
// Cells are also kept in a slice so that iteration order, and therefore
// seeded random selection, is reproducible.
type CellSet struct {
	items []Cell
	index map[int]int // encoded cell -> position in items
}

// NewCellSet creates a set holding the given cells. Duplicates are dropped.
func NewCellSet(cells ...Cell) *CellSet {
	s := &CellSet{
		items: make([]Cell, 0, len(cells)),
		index: make(map[int]int, len(cells)),
	}
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

// Add inserts a cell. Returns false if it was already present.
func (s *CellSet) Add(c Cell) bool {
	k := c.key()
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = len(s.items)
	s.items = append(s.items, c)
	return true
}

// Remove deletes a cell. Returns false if it was not present.
// The last cell takes the removed cell's slot.
func (s *CellSet) Remove(c Cell) bool {
	k := c.key()
	i, ok := s.index[k]
	if !ok {
		return false
	}

	last := len(s.items) - 1
	if i != last {
		moved := s.items[last]
		s.items[i] = moved
		s.index[moved.key()] = i
	}
	s.items = s.items[:last]
	delete(s.index, k)
	return true
}

// Contains reports whether the cell is in the set.
func (s *CellSet) Contains(c Cell) bool {
	_, ok := s.index[c.key()]
	return ok
}

// Len returns the number of cells in the set.
func (s *CellSet) Len() int {
	return len(s.items)
}

// At returns the i-th cell in iteration order.
func (s *CellSet) At(i int) Cell {
	return s.items[i]
}

// Cells returns a copy of the cells in iteration order.
func (s *CellSet) Cells() []Cell {
	out := make([]Cell, len(s.items))
	copy(out, s.items)
	return out
}
