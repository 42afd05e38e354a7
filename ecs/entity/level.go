package entity

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/milk9111/quarrel/behavior"
	"github.com/milk9111/quarrel/ecs"
	"github.com/milk9111/quarrel/ecs/component"
	"github.com/milk9111/quarrel/levels"
)

// LoadLevelToWorld places every entity of lvl into the world. An entity
// whose prefab can't be built is skipped, and one whose behavior can't be
// decoded is placed without a behavior. Both are recorded in lvl.Errors.
// A detached entity gets an empty host instead of its prefab's behavior.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level, reg *behavior.Registry) error {
	if w == nil || lvl == nil {
		return fmt.Errorf("load level: world and level are required")
	}
	if reg == nil {
		return ErrNoRegistry
	}

	lvl.Errors = lvl.Errors[:0]
	for _, placed := range lvl.Entities {
		log := slog.With("id", placed.ID, "prefab", placed.Prefab)

		ctx := &buildContext{PrefabPath: placed.Prefab, Registry: reg, deferBehavior: true}
		e, err := build(w, placed.Prefab, ctx)
		if err != nil {
			log.Error("level entity not built", "err", err)
			lvl.Errors = append(lvl.Errors, fmt.Errorf("entity %s: %w", placed.ID, err))
			continue
		}
		if err := SetEntityTransform(w, e, placed.X, placed.Y, placed.Rotation); err != nil {
			w.DestroyEntity(e)
			lvl.Errors = append(lvl.Errors, fmt.Errorf("entity %s: %w", placed.ID, err))
			continue
		}
		if p, ok := ecs.Get(w, e, component.PersistentComponent.Kind()); ok {
			p.ID = placed.ID
		}

		if placed.Detached {
			if err := ecs.Add(w, e, behavior.HostComponent.Kind(), &behavior.Host{}); err != nil {
				lvl.Errors = append(lvl.Errors, fmt.Errorf("entity %s: %w", placed.ID, err))
			}
			continue
		}

		doc := ctx.doc
		if placed.Behavior != nil {
			doc = placed.Behavior
		}
		if doc == nil {
			continue
		}
		b, err := reg.Decode(*doc)
		if err != nil {
			log.Warn("level entity loaded without behavior", "behavior", doc.Type, "err", err)
			lvl.Errors = append(lvl.Errors, fmt.Errorf("entity %s: %w", placed.ID, err))
			continue
		}
		if err := ecs.Add(w, e, behavior.HostComponent.Kind(), &behavior.Host{Current: b}); err != nil {
			lvl.Errors = append(lvl.Errors, fmt.Errorf("entity %s: %w", placed.ID, err))
		}
	}
	return nil
}

// SnapshotLevel captures every persistent entity in the world as a level
// document, ordered by id.
func SnapshotLevel(w *ecs.World, name string) (*levels.Level, error) {
	lvl := &levels.Level{Name: name}
	var err error
	ecs.ForEach2(w, component.PersistentComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, p *component.Persistent, t *component.Transform) {
			if err != nil {
				return
			}
			placed := levels.Entity{
				ID:       p.ID,
				Prefab:   p.Prefab,
				X:        t.X,
				Y:        t.Y,
				Rotation: t.Rotation,
			}
			host, ok := ecs.Get(w, e, behavior.HostComponent.Kind())
			switch {
			case ok && host.Current == nil:
				placed.Detached = true
			case ok:
				doc, encErr := behavior.Encode(host.Current)
				if encErr != nil {
					err = fmt.Errorf("snapshot %s: %w", p.ID, encErr)
					return
				}
				placed.Behavior = &doc
			}
			lvl.Entities = append(lvl.Entities, placed)
		})
	if err != nil {
		return nil, err
	}
	sort.Slice(lvl.Entities, func(i, j int) bool {
		return lvl.Entities[i].ID < lvl.Entities[j].ID
	})
	return lvl, nil
}
