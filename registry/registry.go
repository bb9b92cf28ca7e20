// Package registry stores the arena's colliders. Iteration follows insertion
// order so a tick visits colliders the same way on every run.
package registry

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/lixenwraith/mirror-arena/component"
	"github.com/samber/lo"
)

// ID identifies a collider for its whole lifetime, IDs are never reused
type ID uint64

// Entry pairs a collider with its ID
type Entry struct {
	ID       ID
	Collider component.Collider
}

// Registry is the collider collection
type Registry struct {
	colliders *orderedmap.OrderedMap[ID, component.Collider]
	nextID    ID
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		colliders: orderedmap.NewOrderedMap[ID, component.Collider](),
		nextID:    1,
	}
}

// Insert adds a collider and returns its new ID
func (r *Registry) Insert(c component.Collider) ID {
	id := r.nextID
	r.nextID++
	r.colliders.Set(id, c)
	return id
}

// Remove deletes a collider, returns false if it was not present
func (r *Registry) Remove(id ID) bool {
	return r.colliders.Delete(id)
}

// Get looks up a collider by ID
func (r *Registry) Get(id ID) (component.Collider, bool) {
	return r.colliders.Get(id)
}

// Len returns the total collider count
func (r *Registry) Len() int {
	return r.colliders.Len()
}

// Entries returns every collider in insertion order
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, r.colliders.Len())
	for el := r.colliders.Front(); el != nil; el = el.Next() {
		entries = append(entries, Entry{ID: el.Key, Collider: el.Value})
	}
	return entries
}

// IDs returns the IDs of all colliders of the given kind in insertion order
func (r *Registry) IDs(kind component.ColliderKind) []ID {
	return lo.FilterMap(r.Entries(), func(e Entry, _ int) (ID, bool) {
		return e.ID, e.Collider.Kind == kind
	})
}

// Count returns how many colliders of the given kind exist
func (r *Registry) Count(kind component.ColliderKind) int {
	return lo.CountBy(r.Entries(), func(e Entry) bool {
		return e.Collider.Kind == kind
	})
}

// RemoveKind deletes every collider of the given kind and returns how many were removed
func (r *Registry) RemoveKind(kind component.ColliderKind) int {
	ids := r.IDs(kind)
	for _, id := range ids {
		r.colliders.Delete(id)
	}
	return len(ids)
}
