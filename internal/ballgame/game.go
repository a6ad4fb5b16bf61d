// Package ballgame implements the evade-and-collect arcade simulation.
// The player dodges bouncing enemies and picks up stars on a bounded
// playfield. The package is pure logic: rendering, audio and input arrive
// through core types and the per-tick event list.
package ballgame

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-ballgame/internal/config"
	"github.com/vovakirdan/tui-ballgame/internal/core"
	"github.com/vovakirdan/tui-ballgame/internal/entity"
)

// ErrNoViewport is returned by New when no viewport is available.
var ErrNoViewport = errors.New("ballgame: no viewport")

// Game owns one simulation: entities, score, timers and the state machine.
type Game struct {
	cfg      config.BallGameConfig
	viewport core.Viewport
	rng      *rand.Rand
	logger   *log.Logger

	world   *entity.Registry
	spawner *Spawner
	tracker *Tracker
	machine *StateMachine

	enemyTimer *Timer
	starTimer  *Timer

	events []Event
	tick   int
	quit   bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithRand replaces the seeded RNG, e.g. with a scripted source in tests.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
		}
	}
}

// New creates a game in the main menu.
func New(cfg config.BallGameConfig, vp core.Viewport, seed int64, opts ...Option) (*Game, error) {
	if vp == nil {
		return nil, ErrNoViewport
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("ballgame: %w", err)
	}

	g := &Game{
		cfg:        cfg,
		viewport:   vp,
		rng:        rand.New(rand.NewSource(seed)),
		logger:     log.New(io.Discard),
		world:      entity.NewRegistry(),
		tracker:    NewTracker(cfg.Session.PlayerLabel),
		machine:    NewStateMachine(),
		enemyTimer: NewTimer(cfg.Enemy.SpawnPeriod),
		starTimer:  NewTimer(cfg.Star.SpawnPeriod),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.spawner = NewSpawner(cfg, g.rng, g.world)

	g.tracker.OnScoreChanged(func(score int) {
		g.logger.Debug("score changed", "score", score)
	})
	g.tracker.OnHistoryChanged(func(h []HighScore) {
		g.logger.Info("high scores updated", "entries", len(h), "last", h[len(h)-1].Score)
	})

	return g, nil
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	Snapshot Snapshot
	Events   []Event
}

// Step advances the simulation by one tick of dt seconds.
// Order: input -> timers/spawns -> movement -> bounce and confinement ->
// collisions -> game-over bookkeeping -> state transitions.
func (g *Game) Step(in core.InputFrame, dt float64) StepResult {
	g.events = nil
	g.tick++

	g.handleInput(in)

	if g.machine.Simulating() {
		w, h := g.viewport.Extent()
		g.tickSpawnTimers(w, h, dt)

		MovePlayer(g.world, in, g.cfg.Player.Speed, dt)
		MoveEnemies(g.world, g.cfg.Enemy.Speed, dt)

		for _, s := range BounceEnemies(g.world, w, h, g.rng) {
			g.emit(soundEvent(s))
		}
		ConfinePlayer(g.world, w, h)

		g.resolveEnemyHit()
		g.resolveStarPickups()
	}

	g.drainGameOver()
	g.commitTransitions()

	return StepResult{Snapshot: g.Snapshot(), Events: g.events}
}

func (g *Game) handleInput(in core.InputFrame) {
	if in.Pressed(core.ActionQuit) {
		g.quit = true
		g.emit(Event{Kind: EventQuit})
	}

	switch g.machine.App() {
	case StateMainMenu:
		if in.Pressed(core.ActionConfirm) {
			g.machine.Request(StateGame)
		}
	case StateGame:
		if in.Pressed(core.ActionPause) {
			g.machine.RequestTogglePause()
		}
		if in.Pressed(core.ActionMenu) {
			g.machine.Request(StateMainMenu)
		}
	case StateGameOver:
		if in.Pressed(core.ActionConfirm) {
			g.machine.Request(StateGame)
		}
		if in.Pressed(core.ActionMenu) {
			g.machine.Request(StateMainMenu)
		}
	}

	if in.Pressed(core.ActionDebugGame) {
		g.machine.Request(StateGame)
	}
	if in.Pressed(core.ActionDebugMenu) {
		g.machine.Request(StateMainMenu)
	}
}

// tickSpawnTimers advances both spawn timers before either spawner runs, then
// spawns for each timer that finished this tick.
func (g *Game) tickSpawnTimers(w, h, dt float64) {
	g.enemyTimer.Tick(dt)
	g.starTimer.Tick(dt)

	if g.enemyTimer.Finished() {
		g.spawnEnemy(w, h)
	}
	if g.starTimer.Finished() {
		g.spawnStar(w, h)
	}
}

func (g *Game) spawnEnemy(w, h float64) {
	e, ok := g.spawner.SpawnEnemy(w, h)
	if !ok {
		g.logger.Debug("enemy spawn dropped, no free spot", "retries", g.cfg.Enemy.SpawnRetries)
		return
	}
	g.emit(spawnedEvent(e))
}

func (g *Game) spawnStar(w, h float64) {
	g.emit(spawnedEvent(g.spawner.SpawnStar(w, h)))
}

func (g *Game) resolveEnemyHit() {
	player, _, hit := FindEnemyHit(g.world)
	if !hit {
		return
	}

	g.world.Despawn(player.ID)
	g.emit(despawnedEvent(player.ID, entity.KindPlayer))
	g.emit(soundEvent(core.SoundExplosion))
	g.emit(Event{Kind: EventGameOver, Score: g.tracker.Score()})
}

func (g *Game) resolveStarPickups() {
	for _, s := range FindCollectedStars(g.world) {
		g.world.Despawn(s.ID)
		g.emit(despawnedEvent(s.ID, entity.KindStar))
		g.emit(soundEvent(core.SoundLaser))
		g.tracker.Increment()
	}
}

// drainGameOver records every death and queues the GameOver transition.
func (g *Game) drainGameOver() {
	for _, ev := range g.events {
		if ev.Kind != EventGameOver {
			continue
		}
		g.logger.Info("game over", "score", ev.Score)
		g.tracker.OnGameOver(ev.Score)
		g.machine.Request(StateGameOver)
	}
}

func (g *Game) commitTransitions() {
	if !g.machine.Pending() {
		return
	}

	tr := g.machine.Commit()
	switch {
	case tr.Changed:
		if tr.From == StateGame {
			g.exitGame()
		}
		if tr.To == StateGame {
			g.enterGame()
		}
		g.logger.Info("state changed", "from", tr.From, "to", tr.To)
	case tr.PauseToggled:
		g.logger.Info("simulation toggled", "state", g.machine.Sim())
	default:
		return
	}

	g.emit(Event{Kind: EventStateChanged, From: tr.From, To: tr.To, Sim: g.machine.Sim()})
}

// enterGame starts a fresh session: score zeroed, timers restarted, player
// first so the enemy placement can avoid it.
func (g *Game) enterGame() {
	w, h := g.viewport.Extent()

	g.tracker.Reset()
	g.enemyTimer.Reset()
	g.starTimer.Reset()

	p, err := g.spawner.SpawnPlayer(w, h)
	if err != nil {
		g.logger.Error("player spawn failed", "error", err)
	} else {
		g.emit(spawnedEvent(p))
	}

	for i := 0; i < g.cfg.Enemy.InitialCount; i++ {
		g.spawnEnemy(w, h)
	}
	for i := 0; i < g.cfg.Star.InitialCount; i++ {
		g.spawnStar(w, h)
	}
}

// exitGame clears every entity of the session.
func (g *Game) exitGame() {
	for _, kind := range []entity.Kind{entity.KindPlayer, entity.KindEnemy, entity.KindStar} {
		for _, id := range g.world.DespawnKind(kind) {
			g.emit(despawnedEvent(id, kind))
		}
	}
}

func (g *Game) emit(ev Event) {
	g.events = append(g.events, ev)
}

// Snapshot is a read-only view of the game for UI and HUD rendering.
type Snapshot struct {
	App      AppState
	Sim      SimState
	Score    int
	History  []HighScore
	Enemies  int
	Stars    int
	Entities []entity.Entity
	Width    float64
	Height   float64
	Tick     int
	Quit     bool
}

// Snapshot returns the current view of the game.
func (g *Game) Snapshot() Snapshot {
	w, h := g.viewport.Extent()
	return Snapshot{
		App:      g.machine.App(),
		Sim:      g.machine.Sim(),
		Score:    g.tracker.Score(),
		History:  g.tracker.History(),
		Enemies:  g.world.Count(entity.KindEnemy),
		Stars:    g.world.Count(entity.KindStar),
		Entities: g.world.Snapshot(),
		Width:    w,
		Height:   h,
		Tick:     g.tick,
		Quit:     g.quit,
	}
}

// LastHighScore returns the most recent history entry.
func (s Snapshot) LastHighScore() (HighScore, bool) {
	if len(s.History) == 0 {
		return HighScore{}, false
	}
	return s.History[len(s.History)-1], true
}

// Player returns the player record from the snapshot, if present.
func (s Snapshot) Player() (entity.Entity, bool) {
	for _, e := range s.Entities {
		if e.Kind == entity.KindPlayer {
			return e, true
		}
	}
	return entity.Entity{}, false
}
