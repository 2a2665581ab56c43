package skyland

import "github.com/vovakirdan/skyland/internal/core"

// Kind tags an entity as something to eat or something to avoid.
type Kind int

const (
	Food Kind = iota
	Enemy
)

func (k Kind) String() string {
	if k == Enemy {
		return "enemy"
	}
	return "food"
}

// EntitySize is the side of an entity's square collider.
const EntitySize = 16

// collider is centered on the entity position.
var collider = core.NewRect(-EntitySize/2, -EntitySize/2, EntitySize, EntitySize)

// Entity is a spawned actor drifting through a world at constant velocity.
type Entity struct {
	Kind     Kind
	Pos      core.Vec
	Vel      core.Vec
	Collider core.Rect // entity-local
	Alive    bool
}

// NewEntity creates a live entity.
func NewEntity(kind Kind, pos, vel core.Vec) *Entity {
	return &Entity{
		Kind:     kind,
		Pos:      pos,
		Vel:      vel,
		Collider: collider,
		Alive:    true,
	}
}

// Hitbox returns the collider in world coordinates.
func (e *Entity) Hitbox() core.Rect {
	return e.Collider.Translate(e.Pos)
}

// Tick moves the entity and terminates it once it no longer overlaps area.
// Terminated entities never move again.
func (e *Entity) Tick(area core.Rect) {
	if !e.Alive {
		return
	}
	e.Pos = e.Pos.Add(e.Vel)
	if !e.Hitbox().Intersects(area) {
		e.Alive = false
	}
}

// Stop terminates the entity.
func (e *Entity) Stop() {
	e.Alive = false
}
