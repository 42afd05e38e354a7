package ecs

import "github.com/milk9111/quarrel/ecs/component"

// Kind is anything that names a component store.
type Kind interface {
	ID() component.ComponentID
}

// Query returns the live entities that hold every kind. It iterates the
// smallest store and checks the rest.
func (w *World) Query(kinds ...Kind) []Entity {
	if len(kinds) == 0 {
		return nil
	}
	stores := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s == nil {
			return nil
		}
		stores = append(stores, s)
	}
	smallest := stores[0]
	for _, s := range stores[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}

	var out []Entity
	for _, e := range smallest.Entities() {
		match := true
		for _, s := range stores {
			if !s.Has(e) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// First returns the lowest-slot live entity holding kind.
func (w *World) First(kind Kind) (Entity, bool) {
	s := w.store(kind.ID(), false)
	var best Entity
	found := false
	for _, e := range s.Entities() {
		if !found || e.id() < best.id() {
			best = e
			found = true
		}
	}
	return best, found
}
