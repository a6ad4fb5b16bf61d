package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow
	ActionDown             // S, Down arrow
	ActionLeft             // A, Left arrow
	ActionRight            // D, Right arrow
	ActionPause            // Space, P - toggle pause while playing
	ActionConfirm          // Enter - play from the main menu, new game after game over
	ActionMenu             // M - back to the main menu
	ActionQuit             // Esc, Q, Ctrl+C - exit the program
	ActionDebugGame        // G - force a transition into Game
	ActionDebugMenu        // N - force a transition into MainMenu
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionMenu:
		return "Menu"
	case ActionQuit:
		return "Quit"
	case ActionDebugGame:
		return "DebugGame"
	case ActionDebugMenu:
		return "DebugMenu"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// Held actions are continuous (movement); pressed actions fire once on the
// tick the key went down (pause, menu navigation).
type InputFrame struct {
	held    map[Action]bool
	pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		held:    make(map[Action]bool),
		pressed: make(map[Action]bool),
	}
}

// Press marks an action as just pressed this frame. A pressed action also
// counts as held.
func (f *InputFrame) Press(a Action) {
	f.ensure()
	f.pressed[a] = true
	f.held[a] = true
}

// Hold marks an action as held without a fresh press.
func (f *InputFrame) Hold(a Action) {
	f.ensure()
	f.held[a] = true
}

// Held returns true if the action is down this frame.
func (f InputFrame) Held(a Action) bool {
	return f.held[a]
}

// Pressed returns true if the action went down this frame.
func (f InputFrame) Pressed(a Action) bool {
	return f.pressed[a]
}

func (f *InputFrame) ensure() {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	if f.pressed == nil {
		f.pressed = make(map[Action]bool)
	}
}
