package ballgame

// AppState is the top-level application mode.
type AppState int

const (
	StateMainMenu AppState = iota
	StateGame
	StateGameOver
)

// String returns a human-readable name for the state.
func (s AppState) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StateGame:
		return "Game"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// SimState is the pause sub-state. It only has meaning while in StateGame.
type SimState int

const (
	SimRunning SimState = iota
	SimPaused
)

// String returns a human-readable name for the sub-state.
func (s SimState) String() string {
	if s == SimPaused {
		return "Paused"
	}
	return "Running"
}

// Transition describes what Commit applied at a tick boundary.
type Transition struct {
	From, To     AppState
	Changed      bool // App state changed
	PauseToggled bool // Sim state flipped inside Game
}

// StateMachine holds the application state and buffered transition requests.
// Requests never take effect until Commit, which the game calls once at the
// end of each tick.
type StateMachine struct {
	app AppState
	sim SimState

	next        AppState
	hasNext     bool
	togglePause bool
}

// NewStateMachine returns a machine in MainMenu/Running.
func NewStateMachine() *StateMachine {
	return &StateMachine{app: StateMainMenu, sim: SimRunning}
}

// App returns the current application state.
func (m *StateMachine) App() AppState {
	return m.app
}

// Sim returns the current simulation sub-state.
func (m *StateMachine) Sim() SimState {
	return m.sim
}

// Simulating reports whether gameplay systems should run this tick.
func (m *StateMachine) Simulating() bool {
	return m.app == StateGame && m.sim == SimRunning
}

// Request buffers a transition to another application state.
// The last request before Commit wins.
func (m *StateMachine) Request(next AppState) {
	m.next = next
	m.hasNext = true
}

// RequestTogglePause buffers a pause toggle. Two toggles in one tick cancel out.
// Toggles outside Game are ignored.
func (m *StateMachine) RequestTogglePause() {
	if m.app != StateGame {
		return
	}
	m.togglePause = !m.togglePause
}

// Pending reports whether any request is buffered.
func (m *StateMachine) Pending() bool {
	return m.hasNext || m.togglePause
}

// Commit applies buffered requests. A request for the current state is
// ignored. Entering or leaving Game always lands in SimRunning, and a pause
// toggle buffered in the same tick as an app change is dropped.
func (m *StateMachine) Commit() Transition {
	tr := Transition{From: m.app, To: m.app}

	if m.hasNext && m.next != m.app {
		tr.To = m.next
		tr.Changed = true
		m.app = m.next
		m.sim = SimRunning
	} else if m.togglePause && m.app == StateGame {
		if m.sim == SimRunning {
			m.sim = SimPaused
		} else {
			m.sim = SimRunning
		}
		tr.PauseToggled = true
	}

	m.hasNext = false
	m.togglePause = false
	return tr
}
