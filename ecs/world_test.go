package ecs

import (
	"errors"
	"strings"
	"testing"

	"github.com/milk9111/quarrel/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex < 0 {
				return
			}
			if !DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("DestroyEntity should return true for alive entity")
			}
			if IsAlive(w, ents[c.destroyIndex]) {
				t.Fatalf("entity should not be alive after destruction")
			}
			if DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("second DestroyEntity should return false")
			}
		})
	}
}

func TestWorldReusesSlotWithNewGeneration(t *testing.T) {
	w := NewWorld()
	first := CreateEntity(w)
	DestroyEntity(w, first)

	second := CreateEntity(w)
	if second.Index() != first.Index() {
		t.Fatalf("expected slot %d to be reused, got %d", first.Index(), second.Index())
	}
	if second == first {
		t.Fatalf("reused slot must carry a new generation")
	}
	if IsAlive(w, first) {
		t.Fatalf("stale handle reported alive")
	}
	if !second.Valid() {
		t.Fatalf("expected valid entity")
	}
	if Entity(0).Valid() {
		t.Fatalf("zero entity must be invalid")
	}
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()

	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name  string
		run   func() error
		check func(t *testing.T)
	}{
		{
			name: "add_and_mutate_through_pointer",
			run:  func() error { return Add(w, e1, ints.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, ints.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				*v = 11
				again, _ := Get(w, e1, ints.Kind())
				if *again != 11 {
					t.Fatalf("expected write-through, got %d", *again)
				}
			},
		},
		{
			name: "add_to_both",
			run: func() error {
				if err := Add(w, e1, strs.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, strs.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, strs.Kind()) || !Has(w, e2, strs.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
			},
		},
		{
			name: "remove",
			run:  func() error { return nil },
			check: func(t *testing.T) {
				if !Remove(w, e2, strs.Kind()) {
					t.Fatalf("expected removal")
				}
				if Has(w, e2, strs.Kind()) {
					t.Fatalf("component still present after removal")
				}
				if !Has(w, e1, strs.Kind()) {
					t.Fatalf("removal leaked into another entity")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.run(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
		})
	}
}

func TestWorldAddErrors(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()
	e := CreateEntity(w)

	if err := Add(w, e, k, nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	if err := Add(w, e, component.ComponentKind[int]{}, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	DestroyEntity(w, e)
	if err := Add(w, e, k, intPtr(1)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
	if err := Add(w, e, component.TransformComponent.Kind(), nil); err == nil || !strings.Contains(err.Error(), "Transform") {
		t.Fatalf("error should name the component, got %v", err)
	}
}

func TestDestroyDropsComponents(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()
	e := CreateEntity(w)
	if err := Add(w, e, k, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, e)

	reused := CreateEntity(w)
	if Has(w, reused, k) {
		t.Fatalf("reused slot inherited a component from a dead entity")
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e1, k, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e3, k, intPtr(3)); err != nil {
		t.Fatal(err)
	}

	var ents []Entity
	ForEach(w, k, func(e Entity, _ *int) { ents = append(ents, e) })
	set := toSet(ents)

	if _, ok := set[e1]; !ok {
		t.Fatalf("expected e1 in ForEach result")
	}
	if _, ok := set[e3]; !ok {
		t.Fatalf("expected e3 in ForEach result")
	}
	if _, ok := set[e2]; ok {
		t.Fatalf("did not expect e2 in ForEach result")
	}
}

func TestForEachToleratesDestroyDuringIteration(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()
	var ents []Entity
	for i := 0; i < 4; i++ {
		e := CreateEntity(w)
		if err := Add(w, e, k, intPtr(i)); err != nil {
			t.Fatal(err)
		}
		ents = append(ents, e)
	}

	visited := 0
	ForEach(w, k, func(e Entity, _ *int) {
		visited++
		for _, other := range ents {
			if other != e {
				DestroyEntity(w, other)
			}
		}
	})
	if visited != 1 {
		t.Fatalf("expected destroyed entities to be skipped, visited %d", visited)
	}
}

func TestForEachN(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()
				kd := component.NewComponentKind[int]()

				for _, add := range []struct {
					e Entity
					k component.ComponentKind[int]
				}{{e1, ka}, {e2, ka}, {e2, kb}, {e2, kc}, {e2, kd}, {e3, kb}, {e3, kc}} {
					if err := Add(w, add.e, add.k, intPtr(1)); err != nil {
						t.Fatal(err)
					}
				}

				var res2, res3, res4 []Entity
				ForEach2(w, kb, kc, func(e Entity, _, _ *int) { res2 = append(res2, e) })
				ForEach3(w, ka, kb, kc, func(e Entity, _, _, _ *int) { res3 = append(res3, e) })
				ForEach4(w, ka, kb, kc, kd, func(e Entity, _, _, _, _ *int) { res4 = append(res4, e) })
				if len(res2) != 2 {
					t.Fatalf("expected e2 and e3 for ForEach2, got %v", res2)
				}
				if len(res3) != 1 || res3[0] != e2 {
					t.Fatalf("expected only e2 for ForEach3, got %v", res3)
				}
				if len(res4) != 1 || res4[0] != e2 {
					t.Fatalf("expected only e2 for ForEach4, got %v", res4)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				for _, k := range []component.ComponentKind[int]{ka, kb, kc} {
					if err := Add(w, e, k, intPtr(1)); err != nil {
						t.Fatal(err)
					}
				}
				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _, _, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store_returns_nil",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()

				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if res := w.Query(ka, kb); len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestFirst(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[string]()
	if _, _, ok := First(w, k); ok {
		t.Fatalf("expected no match in empty world")
	}

	CreateEntity(w)
	e := CreateEntity(w)
	if err := Add(w, e, k, stringPtr("player")); err != nil {
		t.Fatal(err)
	}
	got, v, ok := First(w, k)
	if !ok || got != e || *v != "player" {
		t.Fatalf("unexpected First result: %v %v %v", got, v, ok)
	}
}

type countingSystem struct{ calls int }

func (s *countingSystem) Update(*World) { s.calls++ }

func TestSchedulerPause(t *testing.T) {
	w := NewWorld()
	sys := &countingSystem{}
	s := NewScheduler(sys)
	s.Add(nil)

	s.Update(w)
	s.SetPaused(true)
	s.Update(w)
	s.SetPaused(false)
	s.Update(w)

	if sys.calls != 2 {
		t.Fatalf("expected 2 updates, got %d", sys.calls)
	}
	if len(s.Systems()) != 1 {
		t.Fatalf("nil system should not be scheduled")
	}
}

func TestEventQueueDrain(t *testing.T) {
	w := NewWorld()
	w.Events().Push(Event{Type: EventLevelRequested, Data: "levels/next.yaml"})
	if w.Events().Len() != 1 {
		t.Fatalf("expected one pending event")
	}

	evts := w.Events().Drain()
	if len(evts) != 1 || evts[0].Data != "levels/next.yaml" {
		t.Fatalf("unexpected events: %v", evts)
	}
	if w.Events().Drain() != nil {
		t.Fatalf("queue should be empty after drain")
	}

	var nilQueue *EventQueue
	nilQueue.Push(Event{Type: EventLevelRequested})
	if nilQueue.Len() != 0 || nilQueue.Drain() != nil {
		t.Fatalf("nil queue should drop events")
	}
}
