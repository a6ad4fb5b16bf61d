package ballgame

import (
	"math/rand"

	"github.com/vovakirdan/tui-ballgame/internal/config"
	"github.com/vovakirdan/tui-ballgame/internal/core"
	"github.com/vovakirdan/tui-ballgame/internal/entity"
)

// Spawner places new entities on the playfield.
type Spawner struct {
	cfg   config.BallGameConfig
	rng   *rand.Rand
	world *entity.Registry
}

// NewSpawner creates a spawner drawing positions from rng.
func NewSpawner(cfg config.BallGameConfig, rng *rand.Rand, world *entity.Registry) *Spawner {
	return &Spawner{cfg: cfg, rng: rng, world: world}
}

// SpawnPlayer creates the player at the window center.
func (s *Spawner) SpawnPlayer(w, h float64) (*entity.Entity, error) {
	return s.world.Spawn(entity.KindPlayer, core.V(w/2, h/2), s.cfg.Player.Size, core.SpritePlayer)
}

// SpawnEnemy creates one enemy at a uniformly random position.
// While a player exists, candidates closer than AvoidFactor*Size to it are
// resampled up to SpawnRetries times; when every attempt is too close the
// spawn is dropped and ok is false. With no player there is nothing to avoid,
// so the first candidate is accepted. A session always spawns its player
// before any enemy, so this only happens when the spawner is used on its own.
// Enemies are not confined here, the next confinement pass pulls them inside
// the window.
func (s *Spawner) SpawnEnemy(w, h float64) (e *entity.Entity, ok bool) {
	pos, ok := s.placeEnemy(w, h)
	if !ok {
		return nil, false
	}

	// Both components in [0,1) keeps the initial heading in the first quadrant.
	dir := core.V(s.rng.Float64(), s.rng.Float64()).Normalize()

	e, err := s.world.Spawn(entity.KindEnemy, pos, s.cfg.Enemy.Size, core.SpriteEnemy)
	if err != nil {
		return nil, false
	}
	e.Dir = dir
	return e, true
}

func (s *Spawner) placeEnemy(w, h float64) (core.Vec2, bool) {
	player, hasPlayer := s.world.Player()
	minDist := s.cfg.Enemy.Size * s.cfg.Enemy.AvoidFactor

	for attempt := 0; attempt < s.cfg.Enemy.SpawnRetries; attempt++ {
		pos := s.randomPoint(w, h)
		if !hasPlayer || core.Distance(player.Pos, pos) >= minDist {
			return pos, true
		}
	}
	return core.Vec2{}, false
}

// SpawnStar creates one star at a random position confined to the window.
func (s *Spawner) SpawnStar(w, h float64) *entity.Entity {
	pos := core.ConfineVec(s.randomPoint(w, h), w, h, s.cfg.Star.Size)
	// Stars are never the player kind, Spawn cannot fail
	e, _ := s.world.Spawn(entity.KindStar, pos, s.cfg.Star.Size, core.SpriteStar)
	return e
}

func (s *Spawner) randomPoint(w, h float64) core.Vec2 {
	x := s.rng.Float64() * w
	y := s.rng.Float64() * h
	return core.V(x, y)
}
