// Package entity holds the live simulation entities of a game session.
// The registry is an arena keyed by stable IDs; every record carries its kind
// tag so systems query by filtering over the arena.
package entity

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-ballgame/internal/core"
)

// ID identifies an entity. IDs start at 1; 0 is never assigned.
type ID uint64

// Kind tags what an entity is.
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindEnemy
	KindStar
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindStar:
		return "star"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ErrPlayerExists is returned when a second player would be spawned.
var ErrPlayerExists = errors.New("entity: player already exists")

// Entity is a single live record.
type Entity struct {
	ID     ID
	Kind   Kind
	Pos    core.Vec2
	Dir    core.Vec2 // Unit direction, enemies only
	Size   float64   // Diameter in playfield units
	Sprite core.SpriteID
}

// Radius returns half the entity size.
func (e *Entity) Radius() float64 {
	return e.Size / 2
}

// Registry stores live entities in spawn order.
type Registry struct {
	nextID ID
	live   []*Entity
	index  map[ID]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		nextID: 1,
		live:   make([]*Entity, 0, 32),
		index:  make(map[ID]int),
	}
}

// Spawn creates an entity and returns it. At most one player may exist.
func (r *Registry) Spawn(kind Kind, pos core.Vec2, size float64, sprite core.SpriteID) (*Entity, error) {
	if kind == KindPlayer && r.Count(KindPlayer) > 0 {
		return nil, ErrPlayerExists
	}

	e := &Entity{
		ID:     r.nextID,
		Kind:   kind,
		Pos:    pos,
		Size:   size,
		Sprite: sprite,
	}
	r.nextID++
	r.index[e.ID] = len(r.live)
	r.live = append(r.live, e)
	return e, nil
}

// Despawn removes an entity. It returns false if the ID is not live.
func (r *Registry) Despawn(id ID) bool {
	i, ok := r.index[id]
	if !ok {
		return false
	}

	r.live = append(r.live[:i], r.live[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.live); j++ {
		r.index[r.live[j].ID] = j
	}
	return true
}

// DespawnKind removes every entity of the given kind and returns their IDs.
func (r *Registry) DespawnKind(kind Kind) []ID {
	var removed []ID
	kept := r.live[:0]
	for _, e := range r.live {
		if e.Kind == kind {
			removed = append(removed, e.ID)
			delete(r.index, e.ID)
			continue
		}
		kept = append(kept, e)
	}
	// Drop dangling pointers past the new length
	for i := len(kept); i < len(r.live); i++ {
		r.live[i] = nil
	}
	r.live = kept
	for i, e := range r.live {
		r.index[e.ID] = i
	}
	return removed
}

// Get returns the entity with the given ID.
func (r *Registry) Get(id ID) (*Entity, bool) {
	i, ok := r.index[id]
	if !ok {
		return nil, false
	}
	return r.live[i], true
}

// Player returns the player entity, if one exists.
func (r *Registry) Player() (*Entity, bool) {
	for _, e := range r.live {
		if e.Kind == KindPlayer {
			return e, true
		}
	}
	return nil, false
}

// Query returns the live entities of a kind in spawn order.
// The returned slice is a copy, so callers may despawn while ranging over it.
func (r *Registry) Query(kind Kind) []*Entity {
	out := make([]*Entity, 0, len(r.live))
	for _, e := range r.live {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of live entities of a kind.
func (r *Registry) Count(kind Kind) int {
	n := 0
	for _, e := range r.live {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Len returns the total number of live entities.
func (r *Registry) Len() int {
	return len(r.live)
}

// Snapshot returns value copies of every live entity in spawn order.
func (r *Registry) Snapshot() []Entity {
	out := make([]Entity, len(r.live))
	for i, e := range r.live {
		out[i] = *e
	}
	return out
}
