package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-ballgame/internal/ballgame"
	"github.com/vovakirdan/tui-ballgame/internal/core"
	"github.com/vovakirdan/tui-ballgame/internal/entity"
)

// glyph is how one sprite looks in the terminal.
type glyph struct {
	body   rune
	center rune
	color  core.Color
}

var spriteGlyphs = map[core.SpriteID]glyph{
	core.SpritePlayer: {body: '█', center: '●', color: core.ColorBrightBlue},
	core.SpriteEnemy:  {body: '▓', center: '◉', color: core.ColorBrightRed},
	core.SpriteStar:   {body: '*', center: '★', color: core.ColorBrightYellow},
}

// Layout splits the terminal into the HUD row and the bordered playfield.
type Layout struct {
	HUD   int       // HUD row
	Box   core.Rect // Playfield border
	Inner core.Rect // Cells inside the border
}

// NewLayout computes the layout for a screen of w x h cells.
func NewLayout(w, h int) Layout {
	box := core.NewRect(0, 1, w, core.Max(h-1, 2))
	inner := core.NewRect(box.X+1, box.Y+1, core.Max(box.W-2, 0), core.Max(box.H-2, 0))
	return Layout{HUD: 0, Box: box, Inner: inner}
}

// ToCell maps a playfield position (origin bottom-left, y up) to a screen
// cell inside the layout. ok is false when the playfield has no area.
func (l Layout) ToCell(p core.Vec2, fieldW, fieldH float64) (x, y int, ok bool) {
	if l.Inner.W <= 0 || l.Inner.H <= 0 || fieldW <= 0 || fieldH <= 0 {
		return 0, 0, false
	}
	cx := int(math.Floor(p.X / fieldW * float64(l.Inner.W)))
	cy := int(math.Floor((fieldH - p.Y) / fieldH * float64(l.Inner.H)))
	cx = core.Clamp(cx, 0, l.Inner.W-1)
	cy = core.Clamp(cy, 0, l.Inner.H-1)
	return l.Inner.X + cx, l.Inner.Y + cy, true
}

// DrawPlayfield draws the border, every entity and the HUD.
func DrawPlayfield(s *core.Screen, snap ballgame.Snapshot) {
	l := NewLayout(s.Width(), s.Height())
	s.DrawBox(l.Box, core.ColorGray)

	// Stars first so enemies and the player stay on top.
	for _, kind := range []entity.Kind{entity.KindStar, entity.KindEnemy, entity.KindPlayer} {
		for _, e := range snap.Entities {
			if e.Kind == kind {
				drawEntity(s, l, e, snap.Width, snap.Height)
			}
		}
	}

	drawHUD(s, l, snap)
}

func drawEntity(s *core.Screen, l Layout, e entity.Entity, fieldW, fieldH float64) {
	g, ok := spriteGlyphs[e.Sprite]
	if !ok {
		g = glyph{body: '?', center: '?', color: core.ColorWhite}
	}

	cellW := fieldW / float64(core.Max(l.Inner.W, 1))
	cellH := fieldH / float64(core.Max(l.Inner.H, 1))
	r := e.Radius()

	// Fill every cell whose center lies inside the circle.
	for cy := 0; cy < l.Inner.H; cy++ {
		py := fieldH - (float64(cy)+0.5)*cellH
		if math.Abs(py-e.Pos.Y) > r {
			continue
		}
		for cx := 0; cx < l.Inner.W; cx++ {
			px := (float64(cx) + 0.5) * cellW
			if core.Distance(core.V(px, py), e.Pos) < r {
				s.SetColored(l.Inner.X+cx, l.Inner.Y+cy, g.body, g.color)
			}
		}
	}

	if x, y, ok := l.ToCell(e.Pos, fieldW, fieldH); ok {
		s.SetColored(x, y, g.center, g.color)
	}
}

func drawHUD(s *core.Screen, l Layout, snap ballgame.Snapshot) {
	left := fmt.Sprintf(" Score: %d", snap.Score)
	right := fmt.Sprintf("Enemies: %d ", snap.Enemies)
	s.DrawTextColored(0, l.HUD, left, core.ColorBrightYellow)
	s.DrawTextColored(s.Width()-len(right), l.HUD, right, core.ColorBrightRed)
}

// DrawOverlay draws a centered box with a title and menu items over the
// current screen contents. The item at cursor is highlighted.
func DrawOverlay(s *core.Screen, title string, lines []string, items []string, cursor int) {
	w := len([]rune(title))
	for _, ln := range lines {
		w = core.Max(w, len([]rune(ln)))
	}
	for _, it := range items {
		w = core.Max(w, len([]rune(it))+4)
	}
	w += 6
	h := len(lines) + len(items) + 4
	if len(lines) > 0 {
		h++
	}

	box := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			s.SetColored(x, y, ' ', core.ColorDefault)
		}
	}
	s.DrawBox(box, core.ColorCyan)

	y := box.Y + 2
	s.DrawTextColored(box.X+(w-len([]rune(title)))/2, box.Y+1, title, core.ColorWhite)
	for _, ln := range lines {
		s.DrawTextColored(box.X+(w-len([]rune(ln)))/2, y, ln, core.ColorYellow)
		y++
	}
	if len(lines) > 0 {
		y++
	}
	for i, it := range items {
		label := "  " + it + "  "
		c := core.ColorGray
		if i == cursor {
			label = "> " + it + " <"
			c = core.ColorBrightYellow
		}
		s.DrawTextColored(box.X+(w-len([]rune(label)))/2, y, label, c)
		y++
	}
}
