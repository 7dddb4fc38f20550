package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-explorer/internal/core"
	"github.com/vovakirdan/maze-explorer/internal/maze"
	"github.com/vovakirdan/maze-explorer/internal/storage"
)

// Options configures a game Model.
type Options struct {
	Config         core.RuntimeConfig
	Store          *storage.Store // Optional; runs are not saved without it
	Logger         *log.Logger    // Optional; defaults to a discarding logger
	WallRetryLimit int
	TopScores      int
}

// Model is the Bubble Tea model for one Maze Explorer session.
type Model struct {
	game       *maze.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	scoreboard ScoreboardModel
	topScores  int
	showScores bool
	lastRun    *storage.Run
	runSaved   bool // Whether the current run has been recorded
	quitting   bool
	now        func() time.Time
}

// NewModel creates a new Bubble Tea model with a fresh game at level 1.
func NewModel(opts Options) Model {
	cfg := opts.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Player == "" {
		cfg.Player = core.DefaultConfig().Player
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("player", cfg.Player)

	game := maze.New(maze.Options{
		Seed:           cfg.Seed,
		WallRetryLimit: opts.WallRetryLimit,
	})
	game.SetObserver(func(e maze.Event) {
		logger.Debug("game event", "event", e.Kind, "level", e.Level, "score", e.Score)
	})

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		store:     opts.Store,
		logger:    logger,
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      h,
		topScores: opts.TopScores,
		now:       time.Now,
	}
}

// Init starts the game and arms the timers of its first level.
func (m Model) Init() tea.Cmd {
	m.logger.Info("run started", "seed", m.config.Seed)
	m.game.Start(m.now())
	return armCmds(m.game.Arm())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showScores {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TaskMsg:
		return m.handleTask(msg)
	}

	return m, nil
}

// handleKey processes keyboard input on the game screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	if action == core.ActionQuit {
		// Abandoned runs count only once something was scored
		if m.game.Phase() == maze.PhasePlaying && m.game.Score() > 0 {
			m.finishRun(storage.OutcomeQuit)
		}
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.Phase() != maze.PhasePlaying {
		return m.handlePrompt(action)
	}

	dir, ok := directionFor(action)
	if !ok {
		return m, nil
	}

	outcome := m.game.Move(dir, m.now())
	switch outcome {
	case maze.OutcomeCaught, maze.OutcomeGameWon:
		m.finishRun(string(m.game.Phase()))
	case maze.OutcomeLevelCleared:
		m.logger.Info("level cleared", "level", m.game.Level()-1, "score", m.game.Score())
	}

	// Level transitions schedule the next level's tasks
	return m, armCmds(m.game.Arm())
}

// handlePrompt processes the end-of-run prompt.
func (m Model) handlePrompt(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionRestart:
		m.game.Restart(m.now())
		m.runSaved = false
		m.lastRun = nil
		m.logger.Info("run restarted")
		return m, armCmds(m.game.Arm())

	case core.ActionDecline:
		m.quitting = true
		return m, tea.Quit

	case core.ActionScoreboard:
		m.openScoreboard()
	}
	return m, nil
}

// handleTask runs a scheduled game task and re-arms its timer.
func (m Model) handleTask(msg TaskMsg) (tea.Model, tea.Cmd) {
	outcome, ok := m.game.RunTask(msg.Handle, msg.At)
	if !ok {
		// Canceled by a level change, restart or end of run
		return m, nil
	}

	if outcome == maze.OutcomeCaught {
		m.finishRun(string(m.game.Phase()))
		return m, nil
	}

	return m, taskCmd(msg.Handle)
}

// handleResize processes window resize events.
// The game keeps its state; only the view adapts.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	if m.showScores {
		m.scoreboard.Resize(msg.Width, msg.Height)
	}
	return m, nil
}

// updateScoreboard forwards keys to the scoreboard while it is shown.
func (m Model) updateScoreboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	updated, cmd := m.scoreboard.Update(msg)
	if sb, ok := updated.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.showScores = false
	}
	return m, cmd
}

// openScoreboard loads fresh scores and shows them over the game.
func (m *Model) openScoreboard() {
	m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH, m.topScores)
	if m.lastRun != nil {
		m.scoreboard.Highlight(m.lastRun.RunID)
	}
	m.showScores = true
}

// finishRun records the run once. Saving is best-effort; the game goes on
// without a database.
func (m *Model) finishRun(outcome string) {
	if m.runSaved {
		return
	}
	m.runSaved = true

	logger := m.logger.With("outcome", outcome, "level", m.game.Level(), "score", m.game.Score())
	if m.store == nil {
		logger.Info("run ended")
		return
	}

	run, err := m.store.SaveRun(storage.Run{
		Player:  m.config.Player,
		Score:   m.game.Score(),
		Level:   m.game.Level(),
		Outcome: outcome,
	})
	if err != nil {
		logger.Error("could not save run", "error", err)
		return
	}
	m.lastRun = &run
	logger.Info("run ended", "run_id", run.RunID)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showScores {
		return m.scoreboard.View()
	}

	m.game.Render(m.screen)

	var keys help.KeyMap = m.keys
	if m.game.Phase() != maze.PhasePlaying {
		keys = promptKeys{m.keys}
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(keys))
}

// Game returns the underlying game.
func (m Model) Game() *maze.Game {
	return m.game
}

// LastRun returns the most recently saved run, if any.
func (m Model) LastRun() *storage.Run {
	return m.lastRun
}

// IsQuitting returns true if the user asked to leave.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local game.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
