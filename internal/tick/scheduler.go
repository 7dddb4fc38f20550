// Package tick provides a cooperative periodic scheduler.
//
// The scheduler never starts goroutines or timers of its own. A driver (the
// Bubble Tea program or a virtual clock) arms one timer per live Handle and
// calls Fire when it expires. Canceled handles stay dead forever, so a timer
// that was already in flight when its task was canceled is simply dropped.
package tick

import (
	"errors"
	"sort"
	"time"
)

// ErrInvalidInterval is returned when a task is scheduled with a
// non-positive period.
var ErrInvalidInterval = errors.New("tick: interval must be positive")

// Kind names what a task does. The owner of the scheduler dispatches on it.
type Kind string

// Handle identifies one scheduled periodic task.
// IDs are never reused within a Scheduler.
type Handle struct {
	ID       uint64
	Kind     Kind
	Interval time.Duration
}

type entry struct {
	handle Handle
	due    time.Time
}

// Scheduler tracks live periodic tasks and their next deadlines.
// It is not safe for concurrent use; it belongs to a single event loop.
type Scheduler struct {
	nextID uint64
	live   map[uint64]*entry
}

// New creates an empty scheduler.
func New() *Scheduler {
	return &Scheduler{
		live: make(map[uint64]*entry),
	}
}

// Schedule registers a periodic task that first becomes due at now+interval.
func (s *Scheduler) Schedule(kind Kind, interval time.Duration, now time.Time) (Handle, error) {
	if interval <= 0 {
		return Handle{}, ErrInvalidInterval
	}

	s.nextID++
	h := Handle{ID: s.nextID, Kind: kind, Interval: interval}
	s.live[h.ID] = &entry{handle: h, due: now.Add(interval)}
	return h, nil
}

// Cancel removes a task. Returns false if it was not live.
func (s *Scheduler) Cancel(h Handle) bool {
	if _, ok := s.live[h.ID]; !ok {
		return false
	}
	delete(s.live, h.ID)
	return true
}

// CancelAll removes every live task and returns how many were removed.
func (s *Scheduler) CancelAll() int {
	n := len(s.live)
	clear(s.live)
	return n
}

// Live reports whether the handle still refers to a scheduled task.
func (s *Scheduler) Live(h Handle) bool {
	_, ok := s.live[h.ID]
	return ok
}

// Fire consumes one period of a task. It returns false for a canceled or
// unknown handle, in which case the caller must not run the task.
// On success the next deadline becomes now+interval.
func (s *Scheduler) Fire(h Handle, now time.Time) bool {
	e, ok := s.live[h.ID]
	if !ok {
		return false
	}
	e.due = now.Add(e.handle.Interval)
	return true
}

// Due returns live handles whose deadline is at or before now,
// ordered by deadline and then by ID.
func (s *Scheduler) Due(now time.Time) []Handle {
	var due []*entry
	for _, e := range s.live {
		if !e.due.After(now) {
			due = append(due, e)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].handle.ID < due[j].handle.ID
		}
		return due[i].due.Before(due[j].due)
	})

	handles := make([]Handle, len(due))
	for i, e := range due {
		handles[i] = e.handle
	}
	return handles
}

// NextDue returns the earliest deadline among live tasks.
func (s *Scheduler) NextDue() (time.Time, bool) {
	var (
		next  time.Time
		found bool
	)
	for _, e := range s.live {
		if !found || e.due.Before(next) {
			next = e.due
			found = true
		}
	}
	return next, found
}

// Len returns the number of live tasks.
func (s *Scheduler) Len() int {
	return len(s.live)
}
