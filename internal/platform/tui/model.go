// Package tui is the terminal frontend: a Bubble Tea model driving the
// game, a screen-buffer renderer and an SSH server for remote play.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"twenty48/internal/config"
	"twenty48/internal/core"
	"twenty48/internal/game"
	"twenty48/internal/storage"
)

// sessionStats observes the game and tracks figures that outlive a
// single board, like the highest tile seen across restarts.
type sessionStats struct {
	changes  int
	peakTile int
}

// GameChanged implements game.Listener.
func (s *sessionStats) GameChanged(g *game.Game) {
	s.changes++
	if mt := g.MaxTile(); mt > s.peakTile {
		s.peakTile = mt
	}
}

// Model is the Bubble Tea model for an interactive game session.
type Model struct {
	game       *game.Game
	spawner    *game.Spawner
	stats      *sessionStats
	screen     *core.Screen
	store      *storage.Store
	cfg        config.Config
	rt         core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	best       int
	quitting   bool
	scoreSaved bool // Whether the result has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given configuration.
// The store may be nil; results are then not persisted.
func NewModel(cfg config.Config, rt core.RuntimeConfig, store *storage.Store) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	g := game.NewGameWithTarget(cfg.Board.Size, cfg.Board.WinningTile)
	stats := &sessionStats{}
	g.AddListener(stats)

	spawner := game.NewSpawner(rt.Seed, cfg.Spawn.FourChance)
	for range cfg.Spawn.StartTiles {
		spawner.Spawn(g)
	}

	best := 0
	if store != nil {
		// Best-effort lookup, zero is fine if the query fails
		best, _ = store.HighScore(cfg.Board.Size)
	}

	return Model{
		game:    g,
		spawner: spawner,
		stats:   stats,
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:   store,
		cfg:     cfg,
		rt:      rt,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		best:    best,
	}
}

// Init implements tea.Model. The game is turn-based, so there is no
// tick loop; everything happens in response to key presses.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		m.restart()
		return m, nil
	}

	if dir, ok := actionDirection(action); ok && !m.game.GameOver() {
		if m.game.Tilt(dir) {
			m.spawner.Spawn(m.game)
		}
		if m.game.GameOver() {
			m.saveResult()
		}
	}

	return m, nil
}

// restart clears the board and deals fresh starting tiles. The max
// score high-water and session stats survive across restarts.
func (m *Model) restart() {
	m.game.Clear()
	for range m.cfg.Spawn.StartTiles {
		m.spawner.Spawn(m.game)
	}
	m.scoreSaved = false
}

// saveResult persists the finished game once per game over.
func (m *Model) saveResult() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.game.Score() > m.best {
		m.best = m.game.Score()
	}

	if m.store == nil || m.game.Score() == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveResult(storage.Result{
		Score:     m.game.Score(),
		MaxTile:   m.game.MaxTile(),
		BoardSize: m.game.Size(),
		Won:       m.game.MaxTile() >= m.game.WinningTile(),
	})
}

// handleResize processes window resize events. Board state is
// preserved; only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.rt.ScreenW = msg.Width
	m.rt.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	drawGame(m.screen, m.game, m.best, m.stats.peakTile)

	dir := filepath.Join(os.Getenv("HOME"), ".twenty48", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("board_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawGame(m.screen, m.game, m.best, m.stats.peakTile)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given model.
func Run(cfg config.Config, rt core.RuntimeConfig, store *storage.Store) error {
	model := NewModel(cfg, rt, store)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
