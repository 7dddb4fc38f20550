package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maze-explorer/internal/core"
	"github.com/vovakirdan/maze-explorer/internal/maze"
	"github.com/vovakirdan/maze-explorer/internal/storage"
	"github.com/vovakirdan/maze-explorer/internal/tick"
)

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func newTestModel(t *testing.T, withStore bool) (Model, *storage.Store) {
	t.Helper()

	var store *storage.Store
	if withStore {
		var err error
		store, err = storage.Open(filepath.Join(t.TempDir(), "scores.db"))
		if err != nil {
			t.Fatalf("storage.Open failed: %v", err)
		}
		t.Cleanup(func() { store.Close() })
	}

	m := NewModel(Options{
		Config: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1, Player: "tester"},
		Store:  store,
	})
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	m.Init()
	return m, store
}

// press sends keys in order and returns the resulting model and last command.
func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(k)
		m = updated.(Model)
	}
	return m, cmd
}

func repeat(k tea.KeyMsg, n int) []tea.KeyMsg {
	keys := make([]tea.KeyMsg, n)
	for i := range keys {
		keys[i] = k
	}
	return keys
}

// pathToEnemy walks level 1 from the start into the enemy at (3,3).
func pathToEnemy() []tea.KeyMsg {
	keys := repeat(keyDown, 5)
	keys = append(keys, repeat(keyRight, 3)...)
	return append(keys, repeat(keyUp, 2)...)
}

func TestModelMovesPlayer(t *testing.T) {
	m, _ := newTestModel(t, false)

	m, _ = press(t, m, keyRight)
	if got := m.Game().State().Player(); got != maze.C(1, 0) {
		t.Fatalf("Player() = %v, expected (1,0)", got)
	}

	// (2,0) is a wall
	m, _ = press(t, m, keyRight)
	if got := m.Game().State().Player(); got != maze.C(1, 0) {
		t.Errorf("Player() = %v, expected to stay at (1,0)", got)
	}
}

func TestModelLevelClearArmsTasks(t *testing.T) {
	m, _ := newTestModel(t, false)

	keys := append(repeat(keyDown, 9), repeat(keyRight, 8)...)
	m, _ = press(t, m, keys...)
	if m.Game().Level() != 1 {
		t.Fatalf("Level() = %d before reaching the goal", m.Game().Level())
	}

	m, cmd := press(t, m, keyRight)
	if m.Game().Level() != 2 {
		t.Fatalf("Level() = %d, expected 2", m.Game().Level())
	}
	if cmd == nil {
		t.Error("Level 2 enemy task should be armed")
	}
	if m.Game().Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", m.Game().Pending())
	}
}

func TestModelDropsStaleTask(t *testing.T) {
	m, _ := newTestModel(t, false)

	stale := TaskMsg{
		Handle: tick.Handle{ID: 99, Kind: maze.TaskEnemies, Interval: time.Second},
		At:     time.Now(),
	}
	updated, cmd := m.Update(stale)
	if cmd != nil {
		t.Error("Stale task must not be re-armed")
	}
	if updated.(Model).Game().Phase() != maze.PhasePlaying {
		t.Error("Stale task changed the game")
	}
}

func TestModelCaughtSavesRunOnce(t *testing.T) {
	m, store := newTestModel(t, true)

	m, _ = press(t, m, pathToEnemy()...)
	if m.Game().Phase() != maze.PhaseCaught {
		t.Fatalf("Phase() = %v, expected caught", m.Game().Phase())
	}
	if !strings.Contains(m.View(), "Restart? (y/n)") {
		t.Error("View should show the restart prompt")
	}

	// Moves at the prompt are ignored and do not save again
	m, _ = press(t, m, keyDown, keyRight)

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("Saved %d runs, expected 1", len(runs))
	}
	r := runs[0]
	if r.Player != "tester" || r.Outcome != storage.OutcomeCaught || r.Level != 1 || r.Score != 0 {
		t.Errorf("Saved run = %+v", r)
	}
	if m.LastRun() == nil || m.LastRun().RunID != r.RunID {
		t.Error("LastRun() should be the saved run")
	}
}

func TestModelScoreboardAndRestart(t *testing.T) {
	m, _ := newTestModel(t, true)
	m, _ = press(t, m, pathToEnemy()...)

	m, _ = press(t, m, keyTab)
	view := m.View()
	if !strings.Contains(view, "HIGH SCORES") || !strings.Contains(view, "tester") {
		t.Errorf("Scoreboard view missing title or run:\n%s", view)
	}

	m, _ = press(t, m, keyEsc)
	if !strings.Contains(m.View(), "Restart? (y/n)") {
		t.Error("Esc should return to the prompt")
	}

	m, _ = press(t, m, runeKey('y'))
	snap := m.Game().Snapshot()
	if snap.Phase != maze.PhasePlaying || snap.Level != 1 || snap.Score != 0 || snap.Player != maze.C(0, 0) {
		t.Errorf("After restart: %+v", snap)
	}
	if m.LastRun() != nil {
		t.Error("LastRun() should reset with the new run")
	}
}

func TestModelDeclineQuits(t *testing.T) {
	m, _ := newTestModel(t, false)
	m, _ = press(t, m, pathToEnemy()...)

	m, cmd := press(t, m, runeKey('n'))
	if !m.IsQuitting() {
		t.Error("n at the prompt should quit")
	}
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
}

func TestModelQuitMidRunSavesScoredRun(t *testing.T) {
	m, store := newTestModel(t, true)

	// Collect the coin at (1,2)
	m, _ = press(t, m, keyDown, keyDown, keyRight)
	if m.Game().Score() != maze.CoinValue {
		t.Fatalf("Score() = %d, expected %d", m.Game().Score(), maze.CoinValue)
	}

	m, _ = press(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Fatal("q should quit")
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 1 || runs[0].Outcome != storage.OutcomeQuit || runs[0].Score != maze.CoinValue {
		t.Errorf("Saved runs = %+v, expected one quit run", runs)
	}
}

func TestModelQuitWithoutScoreSavesNothing(t *testing.T) {
	m, store := newTestModel(t, true)

	press(t, m, runeKey('q'))

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Saved %d runs, expected none", len(runs))
	}
}

func TestModelViewAndResize(t *testing.T) {
	m, _ := newTestModel(t, false)
	m, _ = press(t, m, keyRight)

	view := m.View()
	if !strings.Contains(view, "Level: 1/3") {
		t.Error("View should contain the HUD")
	}
	if !strings.Contains(view, "quit") {
		t.Error("View should contain the key help")
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)
	if m.Game().State().Player() != maze.C(1, 0) {
		t.Error("Resize must not reset the game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("Screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}
