package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-ballgame/internal/ballgame"
	"github.com/vovakirdan/tui-ballgame/internal/core"
)

// Options configures the terminal front end.
type Options struct {
	TickRate   int              // Simulation ticks per second
	Sound      core.SoundPlayer // Sound sink; nil means silent
	Logger     *log.Logger      // nil discards logs
	HoldWindow time.Duration    // How long a direction stays held after a key event
}

// Model is the Bubble Tea model driving one ballgame.Game.
type Model struct {
	game   *ballgame.Game
	snap   ballgame.Snapshot
	screen *core.Screen

	keys   KeyMap
	mapper *KeyMapper
	input  *InputTracker
	help   help.Model

	history    table.Model
	historyLen int

	sound  core.SoundPlayer
	logger *log.Logger

	tickRate int
	dt       float64
	cursor   int
	width    int
	height   int
	quitting bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game *ballgame.Game, opts Options) Model {
	cfg := core.DefaultConfig()
	if opts.TickRate > 0 {
		cfg.TickRate = opts.TickRate
	}
	if opts.Sound == nil {
		opts.Sound = core.NopSoundPlayer{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.ShowAll = false

	return Model{
		game:     game,
		snap:     game.Snapshot(),
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		keys:     keys,
		mapper:   NewKeyMapper(keys),
		input:    NewInputTracker(opts.HoldWindow),
		help:     h,
		history:  newHistoryTable(),
		sound:    opts.Sound,
		logger:   opts.Logger,
		tickRate: cfg.TickRate,
		dt:       cfg.TickSeconds(),
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the action for the next tick. While a menu is open the
// direction keys move the cursor and Enter selects.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	action, continuous := m.mapper.MapKey(msg)
	if action == core.ActionNone {
		return m, nil
	}

	if items := menuItems(m.snap); len(items) > 0 {
		switch action {
		case core.ActionUp, core.ActionLeft:
			if m.cursor > 0 {
				m.cursor--
			}
		case core.ActionDown, core.ActionRight:
			if m.cursor < len(items)-1 {
				m.cursor++
			}
		case core.ActionConfirm:
			m.input.Press(items[core.Clamp(m.cursor, 0, len(items)-1)].action)
		default:
			m.input.Press(action)
		}
		return m, nil
	}

	if continuous {
		m.input.Hold(action, time.Now())
	} else {
		m.input.Press(action)
	}
	return m, nil
}

// handleResize resizes the screen buffer. The playfield keeps its logical
// size and is rescaled to the new cell grid.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the simulation once and routes its events.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	res := m.game.Step(m.input.Frame(now), m.dt)
	m.snap = res.Snapshot

	for _, ev := range res.Events {
		switch ev.Kind {
		case ballgame.EventSound:
			m.sound.Play(ev.Sound)
		case ballgame.EventStateChanged:
			m.cursor = 0
			m.input.Release()
		}
	}

	if len(m.snap.History) != m.historyLen {
		m.historyLen = len(m.snap.History)
		m.history.SetRows(historyTableRows(m.snap.History))
	}

	if m.snap.Quit {
		m.logger.Info("quit requested")
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.tickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.snap.App != ballgame.StateGame {
		return menuView(m.snap, m.cursor, m.history, m.width, m.height-1) + "\n" + m.helpView()
	}

	m.screen.Clear()
	DrawPlayfield(m.screen, m.snap)
	if m.snap.Sim == ballgame.SimPaused {
		DrawOverlay(m.screen, "P A U S E D", nil, itemLabels(menuItems(m.snap)), m.cursor)
	}
	return RenderScreen(m.screen) + "\n" + m.helpView()
}

func (m Model) helpView() string {
	if m.snap.App == ballgame.StateGame && m.snap.Sim == ballgame.SimRunning {
		return m.help.View(m.keys)
	}
	return m.help.ShortHelpView([]key.Binding{m.keys.Up, m.keys.Down, m.keys.Confirm, m.keys.Menu, m.keys.Quit})
}

// Run starts the Bubble Tea program for the given game.
func Run(game *ballgame.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
