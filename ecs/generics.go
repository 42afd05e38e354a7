package ecs

import (
	"fmt"

	"github.com/milk9111/quarrel/ecs/component"
)

// Add stores value under kind, replacing any previous value. Errors name
// the component type.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if value == nil {
		return fmt.Errorf("%w: %s on %s", component.ErrNilComponent, kind, e)
	}
	if err := w.addComponent(e, kind.ID(), value); err != nil {
		return fmt.Errorf("add %s to %s: %w", kind, e, err)
	}
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.removeComponent(e, kind.ID())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := w.getComponent(e, kind.ID())
	return ok
}

// Get returns a pointer into the store; writes through it are visible to
// every later reader.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	value, ok := w.getComponent(e, kind.ID())
	if !ok {
		return nil, false
	}
	cast, ok := value.(*T)
	return cast, ok
}

// ForEach visits every live entity holding kind. The entity list is
// snapshotted first, so fn may add, remove or destroy freely; entities
// killed mid-iteration are skipped.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := w.store(kind.ID(), false)
	for _, e := range s.Entities() {
		a, ok := Get(w, e, kind)
		if !ok {
			continue
		}
		fn(e, a)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range w.Query(ka, kb) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if !okA || !okB {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	for _, e := range w.Query(ka, kb, kc) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		if !okA || !okB || !okC {
			continue
		}
		fn(e, a, b, c)
	}
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	for _, e := range w.Query(ka, kb, kc, kd) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		d, okD := Get(w, e, kd)
		if !okA || !okB || !okC || !okD {
			continue
		}
		fn(e, a, b, c, d)
	}
}

// First returns the first live entity holding kind along with its value.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, bool) {
	e, ok := w.First(kind)
	if !ok {
		return 0, nil, false
	}
	v, ok := Get(w, e, kind)
	return e, v, ok
}
