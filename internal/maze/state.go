package maze

import (
	"errors"
	"math/rand"
)

// CoinValue is the score awarded for each collected coin.
const CoinValue = 10

// DefaultWallRetryLimit bounds how many random cells a wall tick tries
// before giving up.
const DefaultWallRetryLimit = 100

// ErrInvalidMove is returned when a move vector is not a single unit step.
var ErrInvalidMove = errors.New("maze: move must be a single orthogonal step")

// Outcome classifies the result of a move or an enemy tick.
type Outcome int

const (
	OutcomeBlocked      Outcome = iota // Move rejected, nothing changed
	OutcomeMoved                       // State changed, play continues
	OutcomeCaught                      // An enemy shares the player's cell
	OutcomeLevelCleared                // Goal reached below the last level
	OutcomeGameWon                     // Goal reached on the last level
)

func (o Outcome) String() string {
	switch o {
	case OutcomeBlocked:
		return "blocked"
	case OutcomeMoved:
		return "moved"
	case OutcomeCaught:
		return "caught"
	case OutcomeLevelCleared:
		return "level_cleared"
	case OutcomeGameWon:
		return "game_won"
	default:
		return "unknown"
	}
}

// State is the mutable grid of one level: player, walls, coins, enemies,
// plus the score and level number that survive level transitions.
type State struct {
	rng        *rand.Rand
	retryLimit int

	level int
	def   Level
	score int

	player  Cell
	walls   *CellSet
	coins   *CellSet
	enemies []Cell
}

// NewState creates a state positioned at the start of level 1.
// All randomness is drawn from rng. A non-positive retryLimit selects
// DefaultWallRetryLimit.
func NewState(rng *rand.Rand, retryLimit int) *State {
	if retryLimit <= 0 {
		retryLimit = DefaultWallRetryLimit
	}
	s := &State{
		rng:        rng,
		retryLimit: retryLimit,
	}
	s.Restart()
	return s
}

// load rebuilds every per-level field from the catalog.
func (s *State) load(level int) {
	def, err := Definition(level)
	if err != nil {
		// Level numbers come from Restart and AdvanceLevel only.
		panic(err)
	}
	s.level = level
	s.def = def
	s.player = def.PlayerStart
	s.walls = NewCellSet(def.Walls...)
	s.coins = NewCellSet(def.Coins...)
	s.enemies = append([]Cell(nil), def.Enemies...)
}

// Restart returns to level 1 with a zero score.
func (s *State) Restart() {
	s.score = 0
	s.load(1)
}

// AdvanceLevel moves to the next level, staying on the last one at most.
// Score is kept; everything else comes fresh from the catalog.
func (s *State) AdvanceLevel() {
	s.load(min(s.level+1, MaxLevel))
}

// ApplyMove moves the player by (dx, dy).
// Out-of-bounds targets and walls yield OutcomeBlocked without any change.
// Otherwise the player moves, a coin on the target is collected, and the
// outcome is Caught, LevelCleared/GameWon or Moved, checked in that order.
func (s *State) ApplyMove(dx, dy int) (Outcome, error) {
	if abs(dx)+abs(dy) != 1 {
		return OutcomeBlocked, ErrInvalidMove
	}

	target := s.player.Add(dx, dy)
	if !target.InBounds() || s.walls.Contains(target) {
		return OutcomeBlocked, nil
	}

	s.player = target

	if s.coins.Remove(target) {
		s.score += CoinValue
	}

	switch {
	case s.enemyAt(target):
		return OutcomeCaught, nil
	case target == s.def.Goal && s.level < MaxLevel:
		return OutcomeLevelCleared, nil
	case target == s.def.Goal:
		return OutcomeGameWon, nil
	}
	return OutcomeMoved, nil
}

// Move is ApplyMove for a typed direction.
func (s *State) Move(d Direction) Outcome {
	dx, dy := d.Delta()
	outcome, err := s.ApplyMove(dx, dy)
	if err != nil {
		return OutcomeBlocked
	}
	return outcome
}

// TickEnemies moves every enemy one random step. A step into a wall or off
// the grid leaves that enemy in place. Enemies may share cells with each
// other and with the player; the latter is reported as OutcomeCaught.
func (s *State) TickEnemies() Outcome {
	for i, e := range s.enemies {
		next := e.Step(Directions[s.rng.Intn(len(Directions))])
		if next.InBounds() && !s.walls.Contains(next) {
			s.enemies[i] = next
		}
	}

	if s.enemyAt(s.player) {
		return OutcomeCaught
	}
	return OutcomeMoved
}

// TickWalls relocates one wall that is not under the level's player start
// or goal to a random free cell. A free cell is on the grid and holds no
// player, goal, wall or enemy. Returns false if nothing moved, either because
// no wall is movable or because no free cell was found within the retry limit.
func (s *State) TickWalls() bool {
	var movable []Cell
	for _, w := range s.walls.items {
		if w != s.def.PlayerStart && w != s.def.Goal {
			movable = append(movable, w)
		}
	}
	if len(movable) == 0 {
		return false
	}

	wall := movable[s.rng.Intn(len(movable))]
	s.walls.Remove(wall)

	for range s.retryLimit {
		c := C(s.rng.Intn(GridSize), s.rng.Intn(GridSize))
		if c == s.player || c == s.def.Goal || s.walls.Contains(c) || s.enemyAt(c) {
			continue
		}
		s.walls.Add(c)
		return true
	}

	s.walls.Add(wall)
	return false
}

// enemyAt reports whether any enemy occupies the cell.
func (s *State) enemyAt(c Cell) bool {
	for _, e := range s.enemies {
		if e == c {
			return true
		}
	}
	return false
}

// Level returns the current 1-based level number.
func (s *State) Level() int { return s.level }

// Definition returns the catalog entry of the current level.
func (s *State) Definition() Level { return s.def }

// Score returns the accumulated score.
func (s *State) Score() int { return s.score }

// Player returns the player's cell.
func (s *State) Player() Cell { return s.player }

// Goal returns the current level's goal cell.
func (s *State) Goal() Cell { return s.def.Goal }

// HasWall reports whether a wall occupies the cell.
func (s *State) HasWall(c Cell) bool { return s.walls.Contains(c) }

// HasCoin reports whether a coin lies on the cell.
func (s *State) HasCoin(c Cell) bool { return s.coins.Contains(c) }

// Walls returns a copy of the wall cells.
func (s *State) Walls() []Cell { return s.walls.Cells() }

// Coins returns a copy of the remaining coin cells.
func (s *State) Coins() []Cell { return s.coins.Cells() }

// Enemies returns a copy of the enemy cells in identity order.
func (s *State) Enemies() []Cell { return append([]Cell(nil), s.enemies...) }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
