package entity

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/milk9111/quarrel/actor"
	"github.com/milk9111/quarrel/behavior"
	"github.com/milk9111/quarrel/ecs"
	"github.com/milk9111/quarrel/ecs/component"
	"github.com/milk9111/quarrel/levels"
)

func TestBuildPlayer(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewPlayerAt(w, actor.NewRegistry(), 3, 4)
	if err != nil {
		t.Fatalf("build player: %v", err)
	}

	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || tr.X != 3 || tr.Y != 4 {
		t.Fatalf("unexpected transform %+v", tr)
	}
	for name, has := range map[string]bool{
		"player_tag":      ecs.Has(w, e, component.PlayerTagComponent.Kind()),
		"player_input":    ecs.Has(w, e, component.PlayerInputComponent.Kind()),
		"camera":          ecs.Has(w, e, component.CameraComponent.Kind()),
		"audio":           ecs.Has(w, e, component.AudioComponent.Kind()),
		"physics_body":    ecs.Has(w, e, component.PhysicsBodyComponent.Kind()),
		"collision_layer": ecs.Has(w, e, component.CollisionLayerComponent.Kind()),
	} {
		if !has {
			t.Fatalf("player is missing %s", name)
		}
	}

	layer, _ := ecs.Get(w, e, component.CollisionLayerComponent.Kind())
	if layer.Category != component.CategoryPlayer || layer.Mask != component.CategoryAll {
		t.Fatalf("unexpected layer %+v", layer)
	}

	p, _ := ecs.Get(w, e, component.PersistentComponent.Kind())
	if _, err := uuid.Parse(p.ID); err != nil || p.Prefab != "player.yaml" {
		t.Fatalf("unexpected persistent %+v", p)
	}

	host, ok := ecs.Get(w, e, behavior.HostComponent.Kind())
	if !ok {
		t.Fatalf("player has no behavior host")
	}
	player, ok := host.Current.(*actor.Player)
	if !ok {
		t.Fatalf("expected a Player behavior, got %T", host.Current)
	}
	if player.Speed().Base != 5 {
		t.Fatalf("move speed not decoded: %+v", player.Speed())
	}
	if s := player.Quiver.Slots[1]; s == nil || s.Type.Name != "Fire" || s.CooldownTime != 0.75 {
		t.Fatalf("quiver not decoded: %+v", s)
	}
}

func TestBuildEnemyStartsDormantClip(t *testing.T) {
	w := ecs.NewWorld()
	e, err := BuildEntity(w, "enemy.yaml", actor.NewRegistry())
	if err != nil {
		t.Fatalf("build enemy: %v", err)
	}
	anim, ok := ecs.Get(w, e, component.AnimatorComponent.Kind())
	if !ok || anim.Current != "dormant" || anim.Repeat != component.RepeatForever {
		t.Fatalf("unexpected animator %+v", anim)
	}
	sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	if sprite.Tint != component.White || sprite.Colour.R != 0xc0 {
		t.Fatalf("unexpected sprite %+v", sprite)
	}
}

func TestBuildEntityFailures(t *testing.T) {
	tests := []struct {
		name   string
		prefab string
		reg    *behavior.Registry
		is     error
	}{
		{name: "missing prefab", prefab: "ghost.yaml", reg: actor.NewRegistry()},
		{name: "no registry", prefab: "enemy.yaml", is: ErrNoRegistry},
		{name: "unknown behavior", prefab: "enemy.yaml", reg: behavior.NewRegistry(), is: behavior.ErrUnknownBehavior},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			_, err := BuildEntity(w, tt.prefab, tt.reg)
			if err == nil {
				t.Fatalf("expected an error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Fatalf("expected %v, got %v", tt.is, err)
			}
			if n := len(w.Entities()); n != 0 {
				t.Fatalf("failed build left %d entities", n)
			}
		})
	}
}

func TestBuildEntityStaticWithoutBehavior(t *testing.T) {
	w := ecs.NewWorld()
	e, err := BuildEntity(w, "wall.yaml", nil)
	if err != nil {
		t.Fatalf("build wall: %v", err)
	}
	pb, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !pb.Static || pb.Radius != 1 {
		t.Fatalf("unexpected wall body %+v", pb)
	}
	if ecs.Has(w, e, behavior.HostComponent.Kind()) {
		t.Fatalf("wall should not have a behavior")
	}
}

func TestLoadLevelToWorld(t *testing.T) {
	lvl, err := levels.Load("arena.yaml")
	if err != nil {
		t.Fatalf("load level: %v", err)
	}
	lvl.Entities = append(lvl.Entities,
		levels.Entity{ID: "ghost", Prefab: "ghost.yaml"},
		levels.Entity{ID: "broken", Prefab: "enemy.yaml", X: 2, Behavior: &behavior.Doc{Type: "Nope"}},
	)

	w := ecs.NewWorld()
	if err := LoadLevelToWorld(w, lvl, actor.NewRegistry()); err != nil {
		t.Fatalf("apply level: %v", err)
	}
	if len(lvl.Errors) != 2 {
		t.Fatalf("expected two entity errors, got %v", lvl.Errors)
	}
	if n := len(w.Entities()); n != len(lvl.Entities)-1 {
		t.Fatalf("expected %d entities, got %d", len(lvl.Entities)-1, n)
	}

	var exit *actor.WorldExit
	var broken ecs.Entity
	ecs.ForEach(w, component.PersistentComponent.Kind(), func(e ecs.Entity, p *component.Persistent) {
		switch p.ID {
		case "6f1d3c2a-5b7e-4d0a-9c3e-1a2b3c4d5e04":
			host, _ := ecs.Get(w, e, behavior.HostComponent.Kind())
			exit, _ = host.Current.(*actor.WorldExit)
		case "broken":
			broken = e
		}
	})
	if exit == nil || exit.Level != "cellar.yaml" {
		t.Fatalf("level behavior should override the prefab's, got %+v", exit)
	}
	if !broken.Valid() || ecs.Has(w, broken, behavior.HostComponent.Kind()) {
		t.Fatalf("entity with a bad behavior should load without one")
	}
}

func TestSnapshotLevel(t *testing.T) {
	lvl, err := levels.Load("cellar.yaml")
	if err != nil {
		t.Fatalf("load level: %v", err)
	}
	w := ecs.NewWorld()
	if err := LoadLevelToWorld(w, lvl, actor.NewRegistry()); err != nil {
		t.Fatalf("apply level: %v", err)
	}

	snap, err := SnapshotLevel(w, "cellar")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(snap.Entities) != len(lvl.Entities) {
		t.Fatalf("expected %d entities, got %d", len(lvl.Entities), len(snap.Entities))
	}
	byID := make(map[string]levels.Entity, len(snap.Entities))
	for _, e := range snap.Entities {
		byID[e.ID] = e
	}
	for _, want := range lvl.Entities {
		got, ok := byID[want.ID]
		if !ok {
			t.Fatalf("entity %s missing from snapshot", want.ID)
		}
		if got.Prefab != want.Prefab || got.X != want.X || got.Y != want.Y {
			t.Fatalf("entity changed: %+v != %+v", got, want)
		}
		if got.Behavior == nil {
			t.Fatalf("entity %s lost its behavior", want.ID)
		}
	}

	// The snapshot must load back into an equivalent world.
	again := ecs.NewWorld()
	if err := LoadLevelToWorld(again, snap, actor.NewRegistry()); err != nil || len(snap.Errors) != 0 {
		t.Fatalf("reload snapshot: %v %v", err, snap.Errors)
	}
}

func TestSnapshotKeepsDetachedHostDetached(t *testing.T) {
	lvl := &levels.Level{Name: "yard", Entities: []levels.Entity{{ID: "corpse", Prefab: "enemy.yaml"}}}
	w := ecs.NewWorld()
	if err := LoadLevelToWorld(w, lvl, actor.NewRegistry()); err != nil || len(lvl.Errors) != 0 {
		t.Fatalf("apply level: %v %v", err, lvl.Errors)
	}
	e, ok := w.First(component.PersistentComponent.Kind())
	if !ok {
		t.Fatalf("enemy not placed")
	}
	host, ok := ecs.Get(w, e, behavior.HostComponent.Kind())
	if !ok || host.Current == nil {
		t.Fatalf("enemy should start with its prefab behavior")
	}
	host.Current = nil

	snap, err := SnapshotLevel(w, "yard")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(snap.Entities) != 1 || !snap.Entities[0].Detached || snap.Entities[0].Behavior != nil {
		t.Fatalf("expected a detached entry, got %+v", snap.Entities)
	}

	data, err := snap.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	parsed, err := levels.Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	again := ecs.NewWorld()
	if err := LoadLevelToWorld(again, parsed, actor.NewRegistry()); err != nil || len(parsed.Errors) != 0 {
		t.Fatalf("reload snapshot: %v %v", err, parsed.Errors)
	}
	e, ok = again.First(component.PersistentComponent.Kind())
	if !ok {
		t.Fatalf("corpse not placed")
	}
	host, ok = ecs.Get(again, e, behavior.HostComponent.Kind())
	if !ok || host.Current != nil {
		t.Fatalf("reloaded corpse should stay detached, got %+v", host)
	}
}
