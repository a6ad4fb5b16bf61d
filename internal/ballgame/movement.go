package ballgame

import (
	"github.com/vovakirdan/tui-ballgame/internal/core"
	"github.com/vovakirdan/tui-ballgame/internal/entity"
)

// InputDirection composes the held directional actions into a unit vector.
// Opposite keys cancel; no input yields the zero vector.
func InputDirection(in core.InputFrame) core.Vec2 {
	var d core.Vec2
	if in.Held(core.ActionLeft) {
		d.X -= 1
	}
	if in.Held(core.ActionRight) {
		d.X += 1
	}
	if in.Held(core.ActionUp) {
		d.Y += 1
	}
	if in.Held(core.ActionDown) {
		d.Y -= 1
	}
	return d.Normalize()
}

// MovePlayer moves the player along the input direction. No player is a no-op.
func MovePlayer(world *entity.Registry, in core.InputFrame, speed, dt float64) {
	p, ok := world.Player()
	if !ok {
		return
	}
	p.Pos = p.Pos.Add(InputDirection(in).Scale(speed * dt))
}

// MoveEnemies advances every enemy along its direction.
func MoveEnemies(world *entity.Registry, speed, dt float64) {
	for _, e := range world.Query(entity.KindEnemy) {
		e.Pos = e.Pos.Add(e.Dir.Scale(speed * dt))
	}
}
