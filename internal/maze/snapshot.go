package maze

// Snapshot captures the complete visible state for rendering, determinism
// tests and logging. Slices are copies and may be kept by the caller.
type Snapshot struct {
	Level     int
	LevelName string
	Score     int
	Phase     Phase
	Message   string
	Player    Cell
	Goal      Cell
	Walls     []Cell
	Coins     []Cell
	Enemies   []Cell
	Tasks     int // Live scheduled tasks
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	return Snapshot{
		Level:     s.Level(),
		LevelName: s.Definition().Name,
		Score:     s.Score(),
		Phase:     g.phase,
		Message:   g.message,
		Player:    s.Player(),
		Goal:      s.Goal(),
		Walls:     s.Walls(),
		Coins:     s.Coins(),
		Enemies:   s.Enemies(),
		Tasks:     g.sched.Len(),
	}
}
