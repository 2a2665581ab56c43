package skyland

import (
	"github.com/vovakirdan/skyland/internal/config"
	"github.com/vovakirdan/skyland/internal/core"
)

// World is one of the two phases of the game. Sky and Land differ only in
// their policy: terrain bob range, capture geometry and spawn tables.
type World struct {
	name     string
	area     core.Rect
	policy   config.WorldConfig
	rng      Random
	entities []*Entity

	terrain int // vertical bob position
	goal    int
	dir     int // +1 or -1
	action  bool
}

// NewWorld creates a world covering area.
func NewWorld(name string, area core.Rect, policy config.WorldConfig, rng Random) *World {
	w := &World{name: name, area: area, policy: policy, rng: rng}
	w.Reset()
	return w
}

// Name returns "sky" or "land".
func (w *World) Name() string {
	return w.name
}

// Reset drops every entity and returns the terrain to its start position.
func (w *World) Reset() {
	t := w.policy.Terrain
	w.entities = w.entities[:0]
	w.terrain = t.Start
	w.goal = t.Goal
	w.dir = 1
	if w.goal < w.terrain {
		w.dir = -1
	}
	w.action = false
}

// SetAction arms or disarms consumption.
func (w *World) SetAction(armed bool) {
	w.action = armed
}

// Armed reports whether consumption is armed.
func (w *World) Armed() bool {
	return w.action
}

// Terrain returns the current terrain offset.
func (w *World) Terrain() int {
	return w.terrain
}

// Entities returns the owned entities. Terminated entities may still be
// present until the next tick.
func (w *World) Entities() []*Entity {
	return w.entities
}

// Add inserts an entity into the world.
func (w *World) Add(e *Entity) {
	w.entities = append(w.entities, e)
}

// Tick advances terrain, entities and the spawner. A frozen world keeps
// its terrain still but entities continue to drift.
func (w *World) Tick(frozen bool) {
	w.prune()
	if !frozen {
		w.bob()
	}
	for _, e := range w.entities {
		e.Tick(w.area)
	}
	w.spawn(Food, w.policy.Food)
	w.spawn(Enemy, w.policy.Enemy)
}

// bob moves the terrain one unit toward its goal, reversing and drawing a
// new goal on the other side once the goal is reached.
func (w *World) bob() {
	t := w.policy.Terrain
	if t.Min == t.Max {
		return
	}
	w.terrain = core.Clamp(w.terrain+w.dir, t.Min, t.Max)
	if (w.dir > 0 && w.terrain >= w.goal) || (w.dir < 0 && w.terrain <= w.goal) {
		w.dir = -w.dir
		if w.dir > 0 {
			w.goal = between(w.rng, w.terrain, t.Max+1)
		} else {
			w.goal = between(w.rng, t.Min, w.terrain+1)
		}
	}
}

// spawn places a new entity just past the right edge of the area.
func (w *World) spawn(kind Kind, s config.SpawnConfig) {
	if !chance(w.rng, s.Odds) {
		return
	}
	pos := core.Vec{
		X: w.area.Right() + EntitySize/2,
		Y: between(w.rng, s.MinY, s.MaxY),
	}
	w.Add(NewEntity(kind, pos, core.Vec{X: -s.Speed}))
}

// prune removes terminated entities.
func (w *World) prune() {
	live := w.entities[:0]
	for _, e := range w.entities {
		if e.Alive {
			live = append(live, e)
		}
	}
	clear(w.entities[len(live):])
	w.entities = live
}

// CaptureRect returns the region in which live entities can be consumed,
// placed relative to the protagonist position cx and jump offset jy.
func (w *World) CaptureRect(cx, jy int) core.Rect {
	c := w.policy.Capture
	return core.NewRect(cx+c.DX, w.terrain+c.JumpFactor*jy+c.DY, c.W, c.H)
}

// Matches returns the live entities overlapping r.
func (w *World) Matches(r core.Rect) []*Entity {
	var out []*Entity
	for _, e := range w.entities {
		if e.Alive && e.Hitbox().Intersects(r) {
			out = append(out, e)
		}
	}
	return out
}
