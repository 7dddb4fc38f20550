// Package sim plays Maze Explorer headlessly on a virtual clock.
// A seeded random walker stands in for the player, so a run is fully
// determined by its options.
package sim

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-explorer/internal/maze"
)

// OutcomeTimeout is reported when the run was still going at the deadline.
const OutcomeTimeout = "timeout"

// Step is the virtual clock resolution. Every task interval and the default
// move cadence are multiples of it, and MoveEvery may not be shorter.
const Step = 50 * time.Millisecond

// ErrMoveTooFast is returned for a move cadence shorter than Step.
var ErrMoveTooFast = fmt.Errorf("sim: move interval must be at least %v", Step)

// epoch is the virtual start time.
var epoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Options configures a simulated run.
type Options struct {
	Seed           int64
	Duration       time.Duration // Virtual time budget
	MoveEvery      time.Duration // Delay between walker moves, default 150ms
	StartLevel     int           // Level to begin on, default 1
	WallRetryLimit int
}

// Validate rejects a move cadence the virtual clock cannot resolve.
// Zero selects the default cadence.
func (o Options) Validate() error {
	if o.MoveEvery < 0 || (o.MoveEvery > 0 && o.MoveEvery < Step) {
		return ErrMoveTooFast
	}
	return nil
}

// Result summarizes a simulated run.
type Result struct {
	Outcome  string // caught, won or timeout
	Level    int
	Score    int
	Moves    int // Moves attempted by the walker
	Blocked  int // Moves rejected by walls or the grid edge
	Tasks    int // Enemy and wall tasks executed
	Elapsed  time.Duration
	Snapshot maze.Snapshot
}

// Run plays one run to completion or until the time budget is spent.
// A nil logger discards events. A MoveEvery below Step is raised to Step;
// call Validate first to reject it instead.
func Run(opts Options, logger *log.Logger) Result {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.MoveEvery <= 0 {
		opts.MoveEvery = 3 * Step
	}
	opts.MoveEvery = max(opts.MoveEvery, Step)

	game := maze.New(maze.Options{Seed: opts.Seed, WallRetryLimit: opts.WallRetryLimit})
	game.SetObserver(func(e maze.Event) {
		logger.Debug("game event", "event", e.Kind, "level", e.Level, "score", e.Score)
	})
	for game.Level() < opts.StartLevel && game.Level() < maze.MaxLevel {
		game.State().AdvanceLevel()
	}

	walker := rand.New(rand.NewSource(opts.Seed + 1))
	now := epoch
	deadline := epoch.Add(opts.Duration)
	nextMove := epoch.Add(opts.MoveEvery)
	res := Result{Outcome: OutcomeTimeout}

	game.Start(now)
	game.Arm() // Due drives tasks here; no timers to arm

	for now.Before(deadline) && game.Phase() == maze.PhasePlaying {
		now = now.Add(Step)
		if now.After(deadline) {
			now = deadline
		}

		for _, h := range game.Due(now) {
			if _, ok := game.RunTask(h, now); ok {
				res.Tasks++
			}
		}
		if game.Phase() != maze.PhasePlaying {
			break
		}

		if !now.Before(nextMove) {
			nextMove = nextMove.Add(opts.MoveEvery)
			res.Moves++
			dir := maze.Directions[walker.Intn(len(maze.Directions))]
			if game.Move(dir, now) == maze.OutcomeBlocked {
				res.Blocked++
			}
		}
	}

	if game.Phase() != maze.PhasePlaying {
		res.Outcome = string(game.Phase())
	}
	res.Level = game.Level()
	res.Score = game.Score()
	res.Elapsed = now.Sub(epoch)
	res.Snapshot = game.Snapshot()

	logger.Info("simulation finished",
		"outcome", res.Outcome,
		"level", res.Level,
		"score", res.Score,
		"moves", res.Moves,
		"elapsed", res.Elapsed,
	)
	return res
}
