package entity

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"github.com/google/uuid"
	"github.com/milk9111/quarrel/behavior"
	"github.com/milk9111/quarrel/ecs"
	"github.com/milk9111/quarrel/ecs/component"
	"github.com/milk9111/quarrel/prefabs"
)

var ErrNoRegistry = errors.New("build entity: behavior needs a registry")

type buildContext struct {
	PrefabPath string
	Registry   *behavior.Registry

	// deferBehavior stores the behavior document in doc instead of
	// installing it, so the caller can decide what to do with bad ones.
	deferBehavior bool
	doc           *behavior.Doc
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":      addPlayerTag,
	"player_input":    addPlayerInput,
	"persistent":      addPersistent,
	"transform":       addTransform,
	"sprite":          addSprite,
	"camera":          addCamera,
	"animation":       addAnimation,
	"audio":           addAudio,
	"collision_layer": addCollisionLayer,
	"physics_body":    addPhysicsBody,
	"behavior":        addBehavior,
}

var componentBuildOrder = []string{
	"player_tag",
	"player_input",
	"persistent",
	"transform",
	"sprite",
	"camera",
	"animation",
	"audio",
	"collision_layer",
	"physics_body",
	"behavior",
}

// BuildEntity creates an entity from a prefab. A half-built entity is
// destroyed before the error is returned.
func BuildEntity(w *ecs.World, prefabPath string, reg *behavior.Registry) (ecs.Entity, error) {
	return build(w, prefabPath, &buildContext{PrefabPath: prefabPath, Registry: reg})
}

func build(w *ecs.World, prefabPath string, ctx *buildContext) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	var unknown []string
	for name := range spec.Components {
		if _, ok := componentRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return 0, fmt.Errorf("build entity: %q: no builder for components %v", prefabPath, unknown)
	}

	e := w.CreateEntity()
	for _, name := range componentBuildOrder {
		raw, ok := spec.Components[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			w.DestroyEntity(e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addPlayerInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerInputComponent.Kind(), &component.PlayerInput{})
}

func addPersistent(w *ecs.World, e ecs.Entity, _ any, ctx *buildContext) error {
	return ecs.Add(w, e, component.PersistentComponent.Kind(), &component.Persistent{
		ID:     uuid.NewString(),
		Prefab: ctx.PrefabPath,
	})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		Rotation: spec.Rotation,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	colour := component.White
	if spec.Colour.A != 0 {
		colour = color.NRGBA(spec.Colour)
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Image:  spec.Image,
		Radius: spec.Radius,
		Colour: colour,
		Tint:   component.White,
		Layer:  spec.Layer,
	})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Zoom == 0 {
		spec.Zoom = 1
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		Height: spec.Height,
		Zoom:   spec.Zoom,
	})
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}

	anim := &component.Animator{
		Clips:    make(map[string]component.AnimationClip, len(spec.Clips)),
		QueueCap: spec.QueueCap,
	}
	for name, clip := range spec.Clips {
		if clip.Frames <= 0 || clip.FPS <= 0 {
			return fmt.Errorf("animation clip %q needs frames and fps", name)
		}
		anim.Clips[name] = component.AnimationClip{Frames: clip.Frames, FPS: clip.FPS}
	}
	if spec.Current != "" {
		repeat := component.RepeatNever
		if spec.Loop {
			repeat = component.RepeatForever
		}
		if !anim.Play(spec.Current, repeat) {
			return fmt.Errorf("animation: unknown current clip %q", spec.Current)
		}
	}
	return ecs.Add(w, e, component.AnimatorComponent.Kind(), anim)
}

type audioSpec = prefabs.AudioComponentSpec

func addAudio(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[audioSpec](raw)
	if err != nil {
		return fmt.Errorf("decode audio spec: %w", err)
	}

	audio := &component.Audio{
		Names:  make([]string, 0, len(spec.Clips)),
		Files:  make([]string, 0, len(spec.Clips)),
		Volume: make([]float64, 0, len(spec.Clips)),
		Play:   make([]bool, len(spec.Clips)),
		Stop:   make([]bool, len(spec.Clips)),
	}
	for _, clip := range spec.Clips {
		volume := clip.Volume
		if volume == 0 {
			volume = 1
		}
		audio.Names = append(audio.Names, clip.Name)
		audio.Files = append(audio.Files, clip.File)
		audio.Volume = append(audio.Volume, volume)
	}
	return ecs.Add(w, e, component.AudioComponent.Kind(), audio)
}

type collisionLayerSpec = prefabs.CollisionLayerComponentSpec

func addCollisionLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[collisionLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collision layer spec: %w", err)
	}
	category, mask, err := spec.Bits()
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Category: category,
		Mask:     mask,
	})
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	if spec.Radius <= 0 {
		return fmt.Errorf("physics body radius must be positive, got %v", spec.Radius)
	}
	if !spec.Static && spec.Mass <= 0 {
		spec.Mass = 1
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Radius: spec.Radius,
		Mass:   spec.Mass,
		Static: spec.Static,
		Sensor: spec.Sensor,
	})
}

func addBehavior(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	doc, err := prefabs.DecodeComponentSpec[behavior.Doc](raw)
	if err != nil {
		return fmt.Errorf("decode behavior spec: %w", err)
	}
	if ctx.deferBehavior {
		ctx.doc = &doc
		return nil
	}
	if ctx.Registry == nil {
		return ErrNoRegistry
	}
	b, err := ctx.Registry.Decode(doc)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, behavior.HostComponent.Kind(), &behavior.Host{Current: b})
}
