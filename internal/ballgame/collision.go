package ballgame

import (
	"github.com/vovakirdan/tui-ballgame/internal/core"
	"github.com/vovakirdan/tui-ballgame/internal/entity"
)

// Overlaps reports whether two circular entities touch.
func Overlaps(a, b *entity.Entity) bool {
	return core.Distance(a.Pos, b.Pos) < a.Radius()+b.Radius()
}

// FindEnemyHit returns the first enemy overlapping the player, in registry
// order. It returns false when there is no player or no hit.
func FindEnemyHit(world *entity.Registry) (player, enemy *entity.Entity, hit bool) {
	p, ok := world.Player()
	if !ok {
		return nil, nil, false
	}
	for _, e := range world.Query(entity.KindEnemy) {
		if Overlaps(p, e) {
			return p, e, true
		}
	}
	return p, nil, false
}

// FindCollectedStars returns every star overlapping the player.
func FindCollectedStars(world *entity.Registry) []*entity.Entity {
	p, ok := world.Player()
	if !ok {
		return nil
	}
	var out []*entity.Entity
	for _, s := range world.Query(entity.KindStar) {
		if Overlaps(p, s) {
			out = append(out, s)
		}
	}
	return out
}
