// Package headless steps a ballgame.Game without a terminal, driven by a
// scripted random-walk pilot. It backs the sim command and soak tests.
package headless

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/vovakirdan/tui-ballgame/internal/ballgame"
	"github.com/vovakirdan/tui-ballgame/internal/core"
)

// Pilot produces the input for each tick.
type Pilot interface {
	Next(snap ballgame.Snapshot) core.InputFrame
}

// RandomWalk holds one or two directions for a random stretch of ticks and
// presses Confirm whenever a menu is showing, so sessions restart on their own.
type RandomWalk struct {
	rng     *rand.Rand
	dirs    []core.Action
	left    int
	maxHold int
}

// NewRandomWalk creates a pilot seeded with seed that changes direction at
// most every maxHold ticks.
func NewRandomWalk(seed int64, maxHold int) *RandomWalk {
	if maxHold <= 0 {
		maxHold = 30
	}
	return &RandomWalk{rng: rand.New(rand.NewSource(seed)), maxHold: maxHold}
}

var directions = []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

// Next implements Pilot.
func (p *RandomWalk) Next(snap ballgame.Snapshot) core.InputFrame {
	f := core.NewInputFrame()
	if snap.App != ballgame.StateGame {
		f.Press(core.ActionConfirm)
		return f
	}

	if p.left <= 0 {
		p.dirs = p.dirs[:0]
		p.dirs = append(p.dirs, directions[p.rng.Intn(len(directions))])
		if p.rng.Intn(2) == 0 {
			p.dirs = append(p.dirs, directions[p.rng.Intn(len(directions))])
		}
		p.left = 1 + p.rng.Intn(p.maxHold)
	}
	p.left--

	for _, a := range p.dirs {
		f.Hold(a)
	}
	return f
}

// Report summarizes a headless run.
type Report struct {
	Ticks    int
	Final    ballgame.Snapshot
	Sessions int // Games started
	Sounds   map[core.SoundID]int
	Spawned  int
}

// Run steps game for ticks ticks of dt seconds each.
func Run(game *ballgame.Game, pilot Pilot, ticks int, dt float64) Report {
	r := Report{Sounds: make(map[core.SoundID]int)}
	snap := game.Snapshot()

	for i := 0; i < ticks; i++ {
		res := game.Step(pilot.Next(snap), dt)
		snap = res.Snapshot
		r.Ticks++

		for _, ev := range res.Events {
			switch ev.Kind {
			case ballgame.EventSound:
				r.Sounds[ev.Sound]++
			case ballgame.EventSpawned:
				r.Spawned++
			case ballgame.EventStateChanged:
				if ev.To == ballgame.StateGame && ev.From != ballgame.StateGame {
					r.Sessions++
				}
			}
		}

		if snap.Quit {
			break
		}
	}

	r.Final = snap
	return r
}

// Print writes a human-readable report.
func (r Report) Print(w io.Writer) {
	fmt.Fprintf(w, "Ticks:     %d\n", r.Ticks)
	fmt.Fprintf(w, "State:     %s/%s\n", r.Final.App, r.Final.Sim)
	fmt.Fprintf(w, "Sessions:  %d\n", r.Sessions)
	fmt.Fprintf(w, "Score:     %d\n", r.Final.Score)
	fmt.Fprintf(w, "Enemies:   %d\n", r.Final.Enemies)
	fmt.Fprintf(w, "Stars:     %d\n", r.Final.Stars)
	fmt.Fprintf(w, "Spawned:   %d\n", r.Spawned)
	fmt.Fprintf(w, "Bounces:   %d\n", r.Sounds[core.SoundPluck1]+r.Sounds[core.SoundPluck2])
	fmt.Fprintln(w)

	if len(r.Final.History) == 0 {
		fmt.Fprintln(w, "No games finished.")
		return
	}

	fmt.Fprintln(w, "High scores:")
	fmt.Fprintf(w, "  %-4s  %-12s  %s\n", "#", "Player", "Score")
	fmt.Fprintf(w, "  %-4s  %-12s  %s\n", "-", "------", "-----")
	for i, h := range r.Final.History {
		fmt.Fprintf(w, "  %-4d  %-12s  %d\n", i+1, h.Label, h.Score)
	}
}
