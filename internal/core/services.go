package core

// Viewport reports the current playfield extent in playfield units.
// It is queried every tick, so a resize takes effect on the next confinement pass.
type Viewport interface {
	Extent() (w, h float64)
}

// FixedViewport is a Viewport with a constant size.
type FixedViewport struct {
	W, H float64
}

// Extent implements Viewport.
func (v FixedViewport) Extent() (float64, float64) {
	return v.W, v.H
}

// SoundID names a sound effect asset.
type SoundID string

// Sound effects emitted by the simulation.
const (
	SoundPluck1    SoundID = "audio/pluck_001.ogg"
	SoundPluck2    SoundID = "audio/pluck_002.ogg"
	SoundExplosion SoundID = "audio/explosionCrunch_000.ogg"
	SoundLaser     SoundID = "audio/laserLarge_000.ogg"
)

// SoundPlayer plays sound effects, fire-and-forget.
type SoundPlayer interface {
	Play(id SoundID)
}

// NopSoundPlayer discards every sound.
type NopSoundPlayer struct{}

// Play implements SoundPlayer.
func (NopSoundPlayer) Play(SoundID) {}

// SpriteID names a sprite asset.
type SpriteID string

// Sprites attached to spawned entities.
const (
	SpritePlayer SpriteID = "sprites/ball_blue_large.png"
	SpriteEnemy  SpriteID = "sprites/ball_red_large.png"
	SpriteStar   SpriteID = "sprites/star.png"
)
