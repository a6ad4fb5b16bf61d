package ballgame

import (
	"github.com/vovakirdan/tui-ballgame/internal/core"
	"github.com/vovakirdan/tui-ballgame/internal/entity"
)

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventSound        EventKind = iota // Sound effect requested
	EventSpawned                       // Entity created, visual should appear
	EventDespawned                     // Entity removed, visual should disappear
	EventGameOver                      // Player died, carries the final score
	EventStateChanged                  // App state or pause sub-state changed
	EventQuit                          // Program exit requested
)

// Event is one entry of the per-tick output list. Producers append during
// the tick; the game drains GameOver before committing transitions, and
// platform adapters consume the rest.
type Event struct {
	Kind EventKind

	Sound core.SoundID

	Entity     entity.ID
	EntityKind entity.Kind
	Pos        core.Vec2
	Sprite     core.SpriteID

	Score int

	From, To AppState
	Sim      SimState
}

func soundEvent(id core.SoundID) Event {
	return Event{Kind: EventSound, Sound: id}
}

func spawnedEvent(e *entity.Entity) Event {
	return Event{
		Kind:       EventSpawned,
		Entity:     e.ID,
		EntityKind: e.Kind,
		Pos:        e.Pos,
		Sprite:     e.Sprite,
	}
}

func despawnedEvent(id entity.ID, kind entity.Kind) Event {
	return Event{Kind: EventDespawned, Entity: id, EntityKind: kind}
}
