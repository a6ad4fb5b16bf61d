package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-ballgame/internal/ballgame"
	"github.com/vovakirdan/tui-ballgame/internal/config"
	"github.com/vovakirdan/tui-ballgame/internal/core"
	"github.com/vovakirdan/tui-ballgame/internal/entity"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name       string
		msg        tea.KeyMsg
		action     core.Action
		continuous bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, true},
		{"w", runeKey("w"), core.ActionUp, true},
		{"a", runeKey("a"), core.ActionLeft, true},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, true},
		{"space pauses", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPause, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"escape quits", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit, false},
		{"q quits", runeKey("q"), core.ActionQuit, false},
		{"m", runeKey("m"), core.ActionMenu, false},
		{"g", runeKey("g"), core.ActionDebugGame, false},
		{"n", runeKey("n"), core.ActionDebugMenu, false},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, continuous := km.MapKey(tt.msg)
			if action != tt.action || continuous != tt.continuous {
				t.Errorf("MapKey(%q) = %v,%v want %v,%v", tt.msg.String(), action, continuous, tt.action, tt.continuous)
			}
		})
	}
}

func TestInputTrackerHoldWindow(t *testing.T) {
	tr := NewInputTracker(100 * time.Millisecond)
	start := time.Unix(0, 0)

	tr.Hold(core.ActionLeft, start)
	tr.Press(core.ActionPause)

	f := tr.Frame(start.Add(50 * time.Millisecond))
	if !f.Held(core.ActionLeft) {
		t.Error("left should still be held inside the window")
	}
	if !f.Pressed(core.ActionPause) {
		t.Error("queued press missing")
	}

	f = tr.Frame(start.Add(60 * time.Millisecond))
	if f.Pressed(core.ActionPause) {
		t.Error("presses are consumed by the first frame")
	}

	f = tr.Frame(start.Add(200 * time.Millisecond))
	if f.Held(core.ActionLeft) {
		t.Error("left should be released after the window")
	}
}

func TestInputTrackerRelease(t *testing.T) {
	tr := NewInputTracker(0)
	now := time.Now()
	tr.Hold(core.ActionUp, now)
	tr.Release()

	if tr.Frame(now).Held(core.ActionUp) {
		t.Error("release should drop held directions")
	}
}

func TestLayoutToCellFlipsY(t *testing.T) {
	l := NewLayout(82, 43) // inner 80x40
	if l.Inner.W != 80 || l.Inner.H != 40 {
		t.Fatalf("inner = %+v", l.Inner)
	}

	x, y, ok := l.ToCell(core.V(0, 0), 800, 600)
	if !ok || x != l.Inner.X || y != l.Inner.Bottom()-1 {
		t.Errorf("origin maps to (%d,%d), want bottom-left", x, y)
	}

	x, y, _ = l.ToCell(core.V(800, 600), 800, 600)
	if x != l.Inner.Right()-1 || y != l.Inner.Y {
		t.Errorf("far corner maps to (%d,%d), want top-right", x, y)
	}

	x, y, _ = l.ToCell(core.V(400, 300), 800, 600)
	if x != l.Inner.X+40 || y != l.Inner.Y+20 {
		t.Errorf("center maps to (%d,%d)", x, y)
	}
}

func TestDrawPlayfield(t *testing.T) {
	s := core.NewScreen(82, 43)
	snap := ballgame.Snapshot{
		App:     ballgame.StateGame,
		Score:   7,
		Enemies: 1,
		Width:   800,
		Height:  600,
		Entities: []entity.Entity{
			{ID: 1, Kind: entity.KindPlayer, Pos: core.V(400, 300), Size: 64, Sprite: core.SpritePlayer},
			{ID: 2, Kind: entity.KindEnemy, Pos: core.V(100, 500), Size: 64, Sprite: core.SpriteEnemy},
		},
	}

	DrawPlayfield(s, snap)

	hud := strings.SplitN(s.String(), "\n", 2)[0]
	if !strings.Contains(hud, "Score: 7") || !strings.Contains(hud, "Enemies: 1") {
		t.Errorf("HUD row = %q", hud)
	}

	l := NewLayout(82, 43)
	x, y, _ := l.ToCell(core.V(400, 300), 800, 600)
	if cell := s.GetCell(x, y); cell.Rune != '●' || cell.Color != core.ColorBrightBlue {
		t.Errorf("player center cell = %+v", cell)
	}
	if s.GetCell(0, 1).Rune != '┌' {
		t.Error("playfield border missing")
	}
}

func TestHistoryTableRowsNewestFirst(t *testing.T) {
	var h []ballgame.HighScore
	for i := 0; i < 12; i++ {
		h = append(h, ballgame.HighScore{Label: "Player", Score: i})
	}

	rows := historyTableRows(h)
	if len(rows) != historyRows {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0][0] != "12" || rows[0][2] != "11" {
		t.Errorf("first row = %v", rows[0])
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	g, err := ballgame.New(config.DefaultBallGameConfig(), core.FixedViewport{W: 800, H: 600}, 1)
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(g, Options{TickRate: 60})
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelMenuFlow(t *testing.T) {
	m := newTestModel(t)
	now := time.Now()

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = step(t, m, TickMsg(now))
	if m.snap.App != ballgame.StateGame {
		t.Fatalf("Play should start a game, got %v", m.snap.App)
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("game view should show the HUD")
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = step(t, m, TickMsg(now))
	if m.snap.Sim != ballgame.SimPaused {
		t.Fatal("space should pause")
	}
	if !strings.Contains(m.View(), "P A U S E D") {
		t.Error("pause overlay missing")
	}

	// Cursor to "Main Menu" and select it.
	m = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = step(t, m, TickMsg(now))
	if m.snap.App != ballgame.StateMainMenu {
		t.Fatalf("expected main menu, got %v", m.snap.App)
	}
	if m.cursor != 0 {
		t.Error("cursor should reset on state change")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	next, cmd := m.Update(TickMsg(time.Now()))
	m = next.(Model)

	if !m.quitting || cmd == nil {
		t.Fatal("escape should quit the program")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

type recordingPlayer struct {
	played []core.SoundID
}

func (p *recordingPlayer) Play(id core.SoundID) {
	p.played = append(p.played, id)
}

func TestModelRoutesSounds(t *testing.T) {
	g, err := ballgame.New(config.DefaultBallGameConfig(), core.FixedViewport{W: 800, H: 600}, 3)
	if err != nil {
		t.Fatal(err)
	}
	rec := &recordingPlayer{}
	m := NewModel(g, Options{Sound: rec})

	m = step(t, m, runeKey("g"))
	m = step(t, m, TickMsg(time.Now()))
	if m.snap.App != ballgame.StateGame {
		t.Fatal("debug key should force the game state")
	}

	// Every enemy reaches a wall within a few seconds, so something plays.
	for i := 0; i < 600 && len(rec.played) == 0; i++ {
		m = step(t, m, TickMsg(time.Now()))
	}
	if len(rec.played) == 0 {
		t.Fatal("no sound routed to the player")
	}
	for _, id := range rec.played {
		switch id {
		case core.SoundPluck1, core.SoundPluck2, core.SoundExplosion, core.SoundLaser:
		default:
			t.Errorf("unknown sound %q", id)
		}
	}
}
