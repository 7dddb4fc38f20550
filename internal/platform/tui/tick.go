// Package tui provides the Bubble Tea integration for Maze Explorer.
// It maps keys to moves, turns scheduled game tasks into timers, and serves
// the game over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maze-explorer/internal/tick"
)

// TaskMsg is sent when the timer of a scheduled game task expires.
type TaskMsg struct {
	Handle tick.Handle
	At     time.Time
}

// taskCmd returns a command that fires the task once after its interval.
// The model re-arms it after each successful run.
func taskCmd(h tick.Handle) tea.Cmd {
	return tea.Tick(h.Interval, func(t time.Time) tea.Msg {
		return TaskMsg{Handle: h, At: t}
	})
}

// armCmds starts one timer per handle.
func armCmds(handles []tick.Handle) tea.Cmd {
	if len(handles) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(handles))
	for i, h := range handles {
		cmds[i] = taskCmd(h)
	}
	return tea.Batch(cmds...)
}
