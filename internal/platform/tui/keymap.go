package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-ballgame/internal/core"
)

// defaultHoldWindow is how long a direction counts as held after its last key
// event. Terminals report key repeats, not key-up, so a short window bridges
// the gap between repeats.
const defaultHoldWindow = 150 * time.Millisecond

// KeyMap defines the key bindings of the game.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Pause     key.Binding
	Confirm   key.Binding
	Menu      key.Binding
	Quit      key.Binding
	DebugGame key.Binding
	DebugMenu key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Confirm, k.Menu, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Confirm, k.Menu, k.Quit},
		{k.DebugGame, k.DebugMenu},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "main menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
		DebugGame: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "force game"),
		),
		DebugMenu: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "force menu"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper for the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to an action. Directions are continuous
// (held), every other action is a one-shot press.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, continuous bool) {
	switch {
	case key.Matches(msg, km.keys.Up):
		return core.ActionUp, true
	case key.Matches(msg, km.keys.Down):
		return core.ActionDown, true
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, true
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, true
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.keys.Confirm):
		return core.ActionConfirm, false
	case key.Matches(msg, km.keys.Menu):
		return core.ActionMenu, false
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, false
	case key.Matches(msg, km.keys.DebugGame):
		return core.ActionDebugGame, false
	case key.Matches(msg, km.keys.DebugMenu):
		return core.ActionDebugMenu, false
	}
	return core.ActionNone, false
}

// InputTracker turns discrete key events into per-tick input frames.
type InputTracker struct {
	window   time.Duration
	lastSeen map[core.Action]time.Time
	pressed  []core.Action
}

// NewInputTracker creates a tracker that keeps directions held for window
// after their last key event.
func NewInputTracker(window time.Duration) *InputTracker {
	if window <= 0 {
		window = defaultHoldWindow
	}
	return &InputTracker{
		window:   window,
		lastSeen: make(map[core.Action]time.Time),
	}
}

// Hold records a continuous action seen at now.
func (t *InputTracker) Hold(a core.Action, now time.Time) {
	t.lastSeen[a] = now
}

// Press queues a one-shot action for the next frame.
func (t *InputTracker) Press(a core.Action) {
	t.pressed = append(t.pressed, a)
}

// Frame builds the input frame for a tick at now and consumes queued presses.
func (t *InputTracker) Frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	for a, seen := range t.lastSeen {
		if now.Sub(seen) <= t.window {
			f.Hold(a)
		} else {
			delete(t.lastSeen, a)
		}
	}
	for _, a := range t.pressed {
		f.Press(a)
	}
	t.pressed = t.pressed[:0]
	return f
}

// Release forgets every held direction, e.g. when a menu opens.
func (t *InputTracker) Release() {
	clear(t.lastSeen)
}
