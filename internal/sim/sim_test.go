package sim

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/maze-explorer/internal/maze"
)

func TestRunIsDeterministic(t *testing.T) {
	opts := Options{Seed: 42, Duration: 2 * time.Minute, StartLevel: 2}

	a := Run(opts, nil)
	b := Run(opts, nil)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("Same options gave different results:\n%+v\n%+v", a, b)
	}
}

func TestRunZeroDurationTimesOut(t *testing.T) {
	res := Run(Options{Seed: 1}, nil)

	if res.Outcome != OutcomeTimeout {
		t.Errorf("Outcome = %q, expected timeout", res.Outcome)
	}
	if res.Level != 1 || res.Score != 0 || res.Moves != 0 || res.Elapsed != 0 {
		t.Errorf("Unexpected result %+v", res)
	}
}

func TestRunRespectsBudget(t *testing.T) {
	budget := 3 * time.Second
	res := Run(Options{Seed: 7, Duration: budget}, nil)

	if res.Elapsed > budget {
		t.Errorf("Elapsed = %v, beyond budget %v", res.Elapsed, budget)
	}
	// Level 1 has no tasks and its enemies never move
	if res.Level == 1 && res.Tasks != 0 {
		t.Errorf("Tasks = %d on level 1, expected 0", res.Tasks)
	}
	if res.Moves == 0 {
		t.Error("Walker never moved")
	}
	if res.Blocked > res.Moves {
		t.Errorf("Blocked %d > Moves %d", res.Blocked, res.Moves)
	}
}

func TestRunStartLevelSchedulesTasks(t *testing.T) {
	res := Run(Options{Seed: 3, Duration: 5 * time.Second, StartLevel: 3}, nil)

	if res.Tasks == 0 {
		t.Error("Level 3 should run enemy and wall tasks")
	}
	if res.Outcome == OutcomeTimeout && res.Snapshot.Tasks != 2 {
		t.Errorf("Live tasks = %d while playing level 3, expected 2", res.Snapshot.Tasks)
	}
	if res.Outcome == string(maze.PhaseCaught) && res.Snapshot.Tasks != 0 {
		t.Errorf("Live tasks = %d after the catch, expected 0", res.Snapshot.Tasks)
	}
}

func TestRunStopsAtDeadline(t *testing.T) {
	tests := []time.Duration{
		70 * time.Millisecond,
		Step,
		1234 * time.Millisecond,
	}

	for _, budget := range tests {
		res := Run(Options{Seed: 5, Duration: budget}, nil)
		if res.Outcome == OutcomeTimeout && res.Elapsed != budget {
			t.Errorf("budget %v: Elapsed = %v, expected exactly the budget", budget, res.Elapsed)
		}
		if res.Elapsed > budget {
			t.Errorf("budget %v: Elapsed = %v overruns it", budget, res.Elapsed)
		}
	}
}

func TestMoveCadence(t *testing.T) {
	tests := []struct {
		every time.Duration
		err   error
	}{
		{0, nil},
		{Step, nil},
		{150 * time.Millisecond, nil},
		{10 * time.Millisecond, ErrMoveTooFast},
		{-time.Second, ErrMoveTooFast},
	}

	for _, tc := range tests {
		if err := (Options{MoveEvery: tc.every}).Validate(); !errors.Is(err, tc.err) {
			t.Errorf("Validate(MoveEvery=%v) = %v, expected %v", tc.every, err, tc.err)
		}
	}

	// A cadence below the clock step moves at most once per step
	res := Run(Options{Seed: 9, Duration: time.Second, MoveEvery: 10 * time.Millisecond}, nil)
	if limit := int(res.Elapsed / Step); res.Moves > limit {
		t.Errorf("Moves = %d in %v, expected at most %d", res.Moves, res.Elapsed, limit)
	}
}
