// Package maze implements Maze Explorer: a player crosses a 10x10 grid,
// collecting coins and dodging wandering enemies, through three levels.
//
// State holds the grid of the current level. Game wraps it with the run
// lifecycle and the periodic enemy and wall tasks. Neither knows anything
// about terminals or Bubble Tea; the platform layer drives them.
package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/maze-explorer/internal/tick"
)

// Task kinds scheduled by Game.
const (
	TaskEnemies tick.Kind = "enemies"
	TaskWalls   tick.Kind = "walls"
)

// Phase is the lifecycle stage of a run.
type Phase string

const (
	PhasePlaying Phase = "playing"
	PhaseCaught  Phase = "caught"
	PhaseWon     Phase = "won"
)

// EventKind identifies what happened in an Event.
type EventKind string

const (
	EventLevelStarted EventKind = "level_started"
	EventLevelCleared EventKind = "level_cleared"
	EventCaught       EventKind = "caught"
	EventGameWon      EventKind = "game_won"
	EventWallMoved    EventKind = "wall_moved"
	EventRestarted    EventKind = "restarted"
)

// Messages shown for run transitions.
const (
	msgCaught = "You were caught by an enemy!"
	msgWon    = "Congratulations! You've completed all levels!"
)

func levelClearedMessage(cleared, next int) string {
	return fmt.Sprintf("Level %d complete! Moving to level %d.", cleared, next)
}

// Event is reported to the observer after a notable state change.
type Event struct {
	Kind  EventKind
	Level int
	Score int
}

// Options configures a new Game.
type Options struct {
	Seed           int64
	WallRetryLimit int // 0 selects DefaultWallRetryLimit
}

// Game is the controller for one run. It owns the grid state and the
// scheduler, and is driven from a single event loop.
type Game struct {
	state    *State
	sched    *tick.Scheduler
	phase    Phase
	message  string
	armed    []tick.Handle
	observer func(Event)
}

// New creates a game at level 1. Call Start to schedule its tasks.
func New(opts Options) *Game {
	rng := rand.New(rand.NewSource(opts.Seed))
	return &Game{
		state: NewState(rng, opts.WallRetryLimit),
		sched: tick.New(),
		phase: PhasePlaying,
	}
}

// SetObserver registers a callback for game events. Pass nil to remove it.
func (g *Game) SetObserver(fn func(Event)) {
	g.observer = fn
}

// Start schedules the tasks of the current level.
func (g *Game) Start(now time.Time) {
	g.enterLevel(now)
}

// Move applies a player move and performs the resulting transition.
// Moves are ignored once the run has ended.
func (g *Game) Move(d Direction, now time.Time) Outcome {
	if g.phase != PhasePlaying {
		return OutcomeBlocked
	}
	// The level banner lasts until the first move on the new level
	g.message = ""

	outcome := g.state.Move(d)
	switch outcome {
	case OutcomeCaught:
		g.endRun(PhaseCaught, msgCaught, EventCaught)
	case OutcomeLevelCleared:
		cleared := g.state.Level()
		g.cancelTasks()
		g.emit(EventLevelCleared)
		g.state.AdvanceLevel()
		g.message = levelClearedMessage(cleared, g.state.Level())
		g.enterLevel(now)
	case OutcomeGameWon:
		g.endRun(PhaseWon, msgWon, EventGameWon)
	}
	return outcome
}

// RunTask executes a scheduled task if its handle is still live.
// The boolean is false for canceled handles; the driver must then stop
// re-arming that handle.
func (g *Game) RunTask(h tick.Handle, now time.Time) (Outcome, bool) {
	if !g.sched.Fire(h, now) {
		return OutcomeBlocked, false
	}

	switch h.Kind {
	case TaskEnemies:
		outcome := g.state.TickEnemies()
		if outcome == OutcomeCaught {
			g.endRun(PhaseCaught, msgCaught, EventCaught)
		}
		return outcome, true

	case TaskWalls:
		if !g.state.TickWalls() {
			return OutcomeBlocked, true
		}
		g.emit(EventWallMoved)
		return OutcomeMoved, true

	default:
		g.sched.Cancel(h)
		return OutcomeBlocked, false
	}
}

// Restart cancels all tasks and begins a new run at level 1.
func (g *Game) Restart(now time.Time) {
	g.cancelTasks()
	g.state.Restart()
	g.phase = PhasePlaying
	g.message = ""
	g.emit(EventRestarted)
	g.enterLevel(now)
}

// Arm returns handles scheduled since the last call. The driver must arm
// exactly one timer per returned handle.
func (g *Game) Arm() []tick.Handle {
	armed := g.armed
	g.armed = nil
	return armed
}

// Due returns live tasks whose deadline has passed, for virtual-clock drivers.
func (g *Game) Due(now time.Time) []tick.Handle {
	return g.sched.Due(now)
}

// Pending returns the number of live scheduled tasks.
func (g *Game) Pending() int {
	return g.sched.Len()
}

// Phase returns the lifecycle stage of the run.
func (g *Game) Phase() Phase { return g.phase }

// Message returns the current banner text, if any.
func (g *Game) Message() string { return g.message }

// State exposes the grid state for inspection.
func (g *Game) State() *State { return g.state }

// Level returns the current level number.
func (g *Game) Level() int { return g.state.Level() }

// Score returns the current score.
func (g *Game) Score() int { return g.state.Score() }

// enterLevel schedules the periodic tasks defined by the current level.
func (g *Game) enterLevel(now time.Time) {
	def := g.state.Definition()

	if def.EnemyTick > 0 {
		if h, err := g.sched.Schedule(TaskEnemies, def.EnemyTick, now); err == nil {
			g.armed = append(g.armed, h)
		}
	}
	if def.WallTick > 0 {
		if h, err := g.sched.Schedule(TaskWalls, def.WallTick, now); err == nil {
			g.armed = append(g.armed, h)
		}
	}

	g.emit(EventLevelStarted)
}

// endRun stops every task and freezes the run in a terminal phase.
func (g *Game) endRun(phase Phase, message string, kind EventKind) {
	g.cancelTasks()
	g.phase = phase
	g.message = message
	g.emit(kind)
}

// cancelTasks drops every scheduled task, including ones not yet armed.
func (g *Game) cancelTasks() {
	g.sched.CancelAll()
	g.armed = nil
}

func (g *Game) emit(kind EventKind) {
	if g.observer == nil {
		return
	}
	g.observer(Event{
		Kind:  kind,
		Level: g.state.Level(),
		Score: g.state.Score(),
	})
}
