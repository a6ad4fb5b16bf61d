package ballgame

import (
	"math/rand"

	"github.com/vovakirdan/tui-ballgame/internal/core"
	"github.com/vovakirdan/tui-ballgame/internal/entity"
)

// BounceEnemies flips the direction axis of every enemy touching a window
// edge, then confines the enemy inside the window. It returns one bounce
// sound per enemy that changed direction, chosen by a coin flip.
func BounceEnemies(world *entity.Registry, w, h float64, rng *rand.Rand) []core.SoundID {
	var sounds []core.SoundID

	for _, e := range world.Query(entity.KindEnemy) {
		half := e.Size / 2
		changed := false

		if e.Pos.X <= half || e.Pos.X >= w-half {
			e.Dir.X = -e.Dir.X
			changed = true
		}
		if e.Pos.Y <= half || e.Pos.Y >= h-half {
			e.Dir.Y = -e.Dir.Y
			changed = true
		}

		if changed {
			sounds = append(sounds, bounceSound(rng))
		}

		e.Pos = core.ConfineVec(e.Pos, w, h, e.Size)
	}
	return sounds
}

// ConfinePlayer keeps the player inside the window. No player is a no-op.
func ConfinePlayer(world *entity.Registry, w, h float64) {
	p, ok := world.Player()
	if !ok {
		return
	}
	p.Pos = core.ConfineVec(p.Pos, w, h, p.Size)
}

func bounceSound(rng *rand.Rand) core.SoundID {
	if rng.Intn(2) == 0 {
		return core.SoundPluck1
	}
	return core.SoundPluck2
}
