package maze

import (
	"errors"
	"time"
)

// MaxLevel is the number of levels in the catalog.
const MaxLevel = 3

// ErrUnknownLevel is returned for a level number outside [1, MaxLevel].
var ErrUnknownLevel = errors.New("maze: unknown level")

// Level describes the initial layout and hazards of one level.
type Level struct {
	Number      int
	Name        string
	PlayerStart Cell
	Goal        Cell
	Walls       []Cell
	Enemies     []Cell
	Coins       []Cell
	EnemyTick   time.Duration // 0 means enemies stand still
	WallTick    time.Duration // 0 means walls never move
}

// levels holds the hand-authored catalog, index 0 is level 1.
var levels = [MaxLevel]Level{
	{
		Number:      1,
		Name:        "Static Walls",
		PlayerStart: C(0, 0),
		Goal:        C(9, 9),
		Walls: []Cell{
			C(2, 0), C(2, 1), C(2, 2), C(2, 3), C(2, 4),
			C(4, 5), C(5, 5), C(6, 5), C(7, 5),
			C(7, 2), C(7, 3), C(7, 4),
		},
		Enemies: []Cell{C(3, 3), C(6, 7), C(8, 2)},
		Coins:   []Cell{C(1, 2), C(3, 6), C(5, 8), C(8, 4), C(9, 1)},
	},
	{
		Number:      2,
		Name:        "Patrols",
		PlayerStart: C(0, 0),
		Goal:        C(9, 9),
		Walls: []Cell{
			C(1, 1), C(1, 2), C(1, 3), C(1, 5), C(1, 6), C(1, 7), C(1, 9),
			C(3, 1), C(3, 3), C(3, 5), C(3, 7), C(3, 9),
			C(5, 0), C(5, 1), C(5, 3), C(5, 5), C(5, 7), C(5, 9),
			C(7, 1), C(7, 3), C(7, 5), C(7, 7), C(7, 8), C(7, 9),
			C(9, 1), C(9, 3), C(9, 5), C(9, 7),
		},
		Enemies:   []Cell{C(2, 2), C(4, 4), C(6, 6), C(8, 8), C(2, 8), C(8, 2)},
		Coins:     []Cell{C(0, 5), C(2, 9), C(4, 2), C(6, 4), C(8, 6), C(4, 8), C(9, 0)},
		EnemyTick: 500 * time.Millisecond,
	},
	{
		Number:      3,
		Name:        "Shifting Maze",
		PlayerStart: C(0, 0),
		Goal:        C(9, 9),
		Walls: append(borderWalls(), []Cell{
			C(2, 2), C(2, 3), C(2, 4), C(2, 6), C(2, 7), C(2, 8),
			C(4, 2), C(4, 3), C(4, 4), C(4, 6), C(4, 7), C(4, 8),
			C(6, 2), C(6, 3), C(6, 4), C(6, 6), C(6, 7), C(6, 8),
			C(8, 2), C(8, 3), C(8, 4), C(8, 6), C(8, 7), C(8, 8),
			C(3, 5), C(5, 5), C(7, 5),
		}...),
		Enemies: []Cell{C(1, 3), C(3, 1), C(3, 8), C(5, 3), C(7, 1), C(7, 8), C(8, 5)},
		Coins: []Cell{
			C(1, 1), C(1, 8), C(3, 3), C(3, 7), C(5, 1),
			C(5, 8), C(7, 3), C(7, 7), C(8, 1), C(8, 8),
		},
		EnemyTick: 300 * time.Millisecond,
		WallTick:  2000 * time.Millisecond,
	},
}

// borderWalls builds the outer ring of level 3, leaving gaps at 3 and 7
// and the four corners open.
func borderWalls() []Cell {
	var walls []Cell
	for i := 1; i < GridSize-1; i++ {
		if i == 3 || i == 7 {
			continue
		}
		walls = append(walls, C(i, 0), C(i, GridSize-1), C(0, i), C(GridSize-1, i))
	}
	return walls
}

// Definition returns a copy of the level with the given 1-based number.
// The caller may modify the returned slices freely.
func Definition(level int) (Level, error) {
	if level < 1 || level > MaxLevel {
		return Level{}, ErrUnknownLevel
	}
	src := levels[level-1]
	def := src
	def.Walls = append([]Cell(nil), src.Walls...)
	def.Enemies = append([]Cell(nil), src.Enemies...)
	def.Coins = append([]Cell(nil), src.Coins...)
	return def, nil
}

// Levels returns copies of every level in order.
func Levels() []Level {
	out := make([]Level, 0, MaxLevel)
	for n := 1; n <= MaxLevel; n++ {
		def, _ := Definition(n)
		out = append(out, def)
	}
	return out
}
