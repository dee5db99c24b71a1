package scene

import "github.com/go-gl/mathgl/mgl32"

// Entity is a named node in the scene graph. It owns a local transform,
// an optional parent, and any number of components. Lifecycle is owned by
// the World; the renderer only reads entities and writes light caches.
type Entity struct {
	Name      string
	Transform Transform

	parent     *Entity
	components []any
}

// Parent returns the entity's parent, or nil for a root entity.
func (e *Entity) Parent() *Entity {
	return e.parent
}

// Add attaches components to the entity and returns it for chaining.
func (e *Entity) Add(components ...any) *Entity {
	e.components = append(e.components, components...)
	return e
}

// LocalToWorld composes ancestor transforms with the local one.
func (e *Entity) LocalToWorld() mgl32.Mat4 {
	local := e.Transform.Matrix()
	if e.parent == nil {
		return local
	}
	return e.parent.LocalToWorld().Mul4(local)
}

// Get returns the first component of type T attached to the entity.
func Get[T any](e *Entity) (T, bool) {
	for _, c := range e.components {
		if v, ok := c.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// GetAll returns every component of type T in attachment order.
func GetAll[T any](e *Entity) []T {
	var out []T
	for _, c := range e.components {
		if v, ok := c.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// World is a flat collection of entities. Children appear in the same
// list as their parents; enumeration order is append order, but callers
// must not depend on it beyond "first camera found".
type World struct {
	entities []*Entity
}

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{}
}

// Spawn creates a root entity with an identity transform.
func (w *World) Spawn(name string) *Entity {
	e := &Entity{Name: name, Transform: NewTransform()}
	w.entities = append(w.entities, e)
	return e
}

// SpawnChild creates an entity parented to the given one.
func (w *World) SpawnChild(name string, parent *Entity) *Entity {
	e := w.Spawn(name)
	e.parent = parent
	return e
}

// Entities returns the world's entity list.
func (w *World) Entities() []*Entity {
	return w.entities
}
