package ecs

import "github.com/milk9111/quarrel/ecs/component"

// World owns entities and their component stores.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity kills e and drops every component it owned. Returns false if
// e was already dead.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e)
	}
	return true
}

func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func (w *World) Entities() []Entity {
	return w.entities.live()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	return &w.events
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		s = newSparseSet()
		w.stores[id] = s
	}
	return s
}

func (w *World) addComponent(e Entity, id component.ComponentID, value any) error {
	if id == 0 {
		return component.ErrInvalidComponentKind
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(id, true).Set(e, value)
	return nil
}

func (w *World) getComponent(e Entity, id component.ComponentID) (any, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	s := w.store(id, false)
	if s == nil || !s.Has(e) {
		return nil, false
	}
	return s.Get(e), true
}

func (w *World) removeComponent(e Entity, id component.ComponentID) bool {
	s := w.store(id, false)
	if s == nil {
		return false
	}
	return s.Remove(e)
}

func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

func Entities(w *World) []Entity {
	return w.Entities()
}
