package maze

import (
	"errors"
	"testing"
	"time"
)

func TestDefinitionRange(t *testing.T) {
	for _, n := range []int{0, -1, MaxLevel + 1} {
		if _, err := Definition(n); !errors.Is(err, ErrUnknownLevel) {
			t.Errorf("Definition(%d) error = %v, expected ErrUnknownLevel", n, err)
		}
	}
	for n := 1; n <= MaxLevel; n++ {
		def, err := Definition(n)
		if err != nil {
			t.Fatalf("Definition(%d) failed: %v", n, err)
		}
		if def.Number != n {
			t.Errorf("Definition(%d).Number = %d", n, def.Number)
		}
	}
}

func TestDefinitionReturnsCopy(t *testing.T) {
	def, _ := Definition(1)
	def.Walls[0] = C(9, 9)
	def.Enemies[0] = C(9, 9)
	def.Coins[0] = C(9, 9)

	fresh, _ := Definition(1)
	if fresh.Walls[0] != C(2, 0) || fresh.Enemies[0] != C(3, 3) || fresh.Coins[0] != C(1, 2) {
		t.Error("Mutating a definition must not change the catalog")
	}
}

func TestLevelTickIntervals(t *testing.T) {
	tests := []struct {
		level     int
		enemyTick time.Duration
		wallTick  time.Duration
	}{
		{1, 0, 0},
		{2, 500 * time.Millisecond, 0},
		{3, 300 * time.Millisecond, 2 * time.Second},
	}

	for _, tc := range tests {
		def, _ := Definition(tc.level)
		if def.EnemyTick != tc.enemyTick {
			t.Errorf("level %d EnemyTick = %v, expected %v", tc.level, def.EnemyTick, tc.enemyTick)
		}
		if def.WallTick != tc.wallTick {
			t.Errorf("level %d WallTick = %v, expected %v", tc.level, def.WallTick, tc.wallTick)
		}
	}
}

func TestLevelLayoutsInBounds(t *testing.T) {
	for _, def := range Levels() {
		all := append(append(append([]Cell{}, def.Walls...), def.Enemies...), def.Coins...)
		all = append(all, def.PlayerStart, def.Goal)
		for _, c := range all {
			if !c.InBounds() {
				t.Errorf("level %d: %v is out of bounds", def.Number, c)
			}
		}

		walls := NewCellSet(def.Walls...)
		if walls.Len() != len(def.Walls) {
			t.Errorf("level %d has duplicate walls", def.Number)
		}
		if walls.Contains(def.PlayerStart) || walls.Contains(def.Goal) {
			t.Errorf("level %d has a wall on the start or goal", def.Number)
		}
		for _, e := range def.Enemies {
			if walls.Contains(e) {
				t.Errorf("level %d: enemy starts inside wall %v", def.Number, e)
			}
		}
	}
}

func TestLevelCounts(t *testing.T) {
	tests := []struct {
		level                  int
		walls, enemies, coins int
	}{
		{1, 12, 3, 5},
		{2, 28, 6, 7},
		{3, 51, 7, 10},
	}

	for _, tc := range tests {
		def, _ := Definition(tc.level)
		if len(def.Walls) != tc.walls || len(def.Enemies) != tc.enemies || len(def.Coins) != tc.coins {
			t.Errorf("level %d: walls=%d enemies=%d coins=%d, expected %d/%d/%d",
				tc.level, len(def.Walls), len(def.Enemies), len(def.Coins), tc.walls, tc.enemies, tc.coins)
		}
	}
}
