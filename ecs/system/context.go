package system

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/quarrel/behavior"
	"github.com/milk9111/quarrel/ecs"
	"github.com/milk9111/quarrel/ecs/component"
)

type entityBody struct {
	ps *PhysicsSystem
	w  *ecs.World
	e  ecs.Entity
}

func (b *entityBody) dynamic() (*bodyInfo, bool) {
	info, ok := b.ps.info(b.e)
	if !ok || info.static {
		return nil, false
	}
	return info, true
}

func (b *entityBody) Position() cp.Vector {
	pos, _ := b.ps.position(b.w, b.e)
	return pos
}

func (b *entityBody) Velocity() cp.Vector {
	if info, ok := b.dynamic(); ok {
		return info.body.Velocity()
	}
	return cp.Vector{}
}

func (b *entityBody) SetVelocity(v cp.Vector) {
	if info, ok := b.dynamic(); ok {
		info.body.SetVelocityVector(v)
	}
}

func (b *entityBody) ApplyImpulse(impulse cp.Vector) {
	if info, ok := b.dynamic(); ok {
		info.body.ApplyImpulseAtWorldPoint(impulse, info.body.Position())
	}
}

func (b *entityBody) Angle() float64 {
	if info, ok := b.dynamic(); ok {
		return info.body.Angle()
	}
	if tf, ok := ecs.Get(b.w, b.e, component.TransformComponent.Kind()); ok {
		return tf.Rotation
	}
	return 0
}

func (b *entityBody) SetAngle(angle float64) {
	if info, ok := b.dynamic(); ok {
		info.body.SetAngle(angle)
	}
	if tf, ok := ecs.Get(b.w, b.e, component.TransformComponent.Kind()); ok {
		tf.Rotation = angle
	}
}

func (b *entityBody) SetFilter(category, mask uint) {
	if layer, ok := ecs.Get(b.w, b.e, component.CollisionLayerComponent.Kind()); ok {
		layer.Category, layer.Mask = category, mask
	} else {
		_ = ecs.Add(b.w, b.e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: category, Mask: mask})
	}
	info, ok := b.ps.info(b.e)
	if !ok {
		return
	}
	info.main.SetFilter(filterFor(b.e, category, mask))
	b.ps.reinsert(info.main)
	meta := b.ps.shapes[info.main]
	meta.category, meta.mask = category, mask
	b.ps.shapes[info.main] = meta
}

func (b *entityBody) AddSensor(radius float64, category, mask uint) *cp.Shape {
	info, ok := b.ps.info(b.e)
	if !ok {
		return nil
	}
	offset := cp.Vector{}
	if info.static {
		offset = info.centre
	}
	shape := b.ps.addCircle(b.e, info.body, radius, offset, true, category, mask)
	info.shapes = append(info.shapes, shape)
	if pb, ok := ecs.Get(b.w, b.e, component.PhysicsBodyComponent.Kind()); ok {
		pb.Extra = append(pb.Extra, shape)
	}
	return shape
}

func (b *entityBody) RemoveShape(shape *cp.Shape) {
	info, ok := b.ps.info(b.e)
	if !ok || shape == nil || shape == info.main {
		return
	}
	for i, s := range info.shapes {
		if s != shape {
			continue
		}
		b.ps.space.RemoveShape(shape)
		delete(b.ps.shapes, shape)
		info.shapes = append(info.shapes[:i], info.shapes[i+1:]...)
		break
	}
	if pb, ok := ecs.Get(b.w, b.e, component.PhysicsBodyComponent.Kind()); ok {
		for i, s := range pb.Extra {
			if s == shape {
				pb.Extra = append(pb.Extra[:i], pb.Extra[i+1:]...)
				break
			}
		}
	}
}

func (b *entityBody) Freeze() {
	if pb, ok := ecs.Get(b.w, b.e, component.PhysicsBodyComponent.Kind()); ok {
		pb.Sensor = true
		pb.VelocityX, pb.VelocityY = 0, 0
	}
	info, ok := b.ps.info(b.e)
	if !ok {
		return
	}
	info.main.SetSensor(true)
	b.ps.reinsert(info.main)
	if !info.static {
		info.body.SetVelocity(0, 0)
	}
}

func (b *entityBody) RayCast(to cp.Vector, ignore uint) (behavior.RayHit, bool) {
	from := b.Position()
	return b.ps.rayCast(b.e, from, to, ignore)
}

type entityView struct {
	w   *ecs.World
	e   ecs.Entity
	log *slog.Logger
}

func (v *entityView) SetAnimation(clip string, repeat component.Repeat) bool {
	anim, ok := ecs.Get(v.w, v.e, component.AnimatorComponent.Kind())
	if !ok {
		return false
	}
	return anim.Play(clip, repeat)
}

func (v *entityView) QueueAnimation(clip string, repeat component.Repeat) bool {
	anim, ok := ecs.Get(v.w, v.e, component.AnimatorComponent.Kind())
	if !ok {
		return false
	}
	return anim.Enqueue(clip, repeat)
}

func (v *entityView) CurrentAnimation() string {
	anim, ok := ecs.Get(v.w, v.e, component.AnimatorComponent.Kind())
	if !ok {
		return ""
	}
	return anim.Current
}

func (v *entityView) SetTint(c color.NRGBA) {
	if sprite, ok := ecs.Get(v.w, v.e, component.SpriteComponent.Kind()); ok {
		sprite.Tint = c
	}
}

func (v *entityView) PlaySound(name string) {
	audio, ok := ecs.Get(v.w, v.e, component.AudioComponent.Kind())
	if !ok || !audio.Request(name) {
		v.log.Warn("sound not found", "entity", v.e, "sound", name)
	}
}

func (v *entityView) StopSound(name string) {
	audio, ok := ecs.Get(v.w, v.e, component.AudioComponent.Kind())
	if !ok || !audio.Halt(name) {
		v.log.Warn("sound not found", "entity", v.e, "sound", name)
	}
}

type worldAccess struct {
	w  *ecs.World
	ps *PhysicsSystem
}

func (a *worldAccess) Spawn(spec behavior.SpawnSpec) (ecs.Entity, error) {
	if spec.Radius <= 0 {
		return 0, fmt.Errorf("%w: radius %v", behavior.ErrSpawnFailed, spec.Radius)
	}
	e := a.w.CreateEntity()
	fail := func(err error) (ecs.Entity, error) {
		a.w.DestroyEntity(e)
		return 0, fmt.Errorf("%w: %v", behavior.ErrSpawnFailed, err)
	}

	if err := ecs.Add(a.w, e, component.TransformComponent.Kind(), &component.Transform{
		X: spec.Position.X, Y: spec.Position.Y, Rotation: spec.Angle,
	}); err != nil {
		return fail(err)
	}
	if err := ecs.Add(a.w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Radius:    spec.Radius,
		Mass:      0.1,
		VelocityX: spec.Velocity.X,
		VelocityY: spec.Velocity.Y,
	}); err != nil {
		return fail(err)
	}
	if err := ecs.Add(a.w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Category: spec.Category, Mask: spec.Mask,
	}); err != nil {
		return fail(err)
	}
	if err := ecs.Add(a.w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Image: spec.Image, Radius: spec.Radius, Colour: spec.Colour, Tint: component.White,
	}); err != nil {
		return fail(err)
	}
	if len(spec.Clips) > 0 {
		if err := ecs.Add(a.w, e, component.AnimatorComponent.Kind(), &component.Animator{Clips: spec.Clips}); err != nil {
			return fail(err)
		}
	}
	if spec.Behavior != nil {
		if err := ecs.Add(a.w, e, behavior.HostComponent.Kind(), &behavior.Host{Current: spec.Behavior}); err != nil {
			return fail(err)
		}
	}
	return e, nil
}

func (a *worldAccess) IsAlive(e ecs.Entity) bool {
	return a.w.IsAlive(e)
}

func (a *worldAccess) TypeNameOf(e ecs.Entity) string {
	return a.host(e).TypeName()
}

func (a *worldAccess) BehaviorOf(e ecs.Entity) behavior.Behavior {
	h := a.host(e)
	if h == nil {
		return nil
	}
	return h.Current
}

func (a *worldAccess) host(e ecs.Entity) *behavior.Host {
	h, ok := ecs.Get(a.w, e, behavior.HostComponent.Kind())
	if !ok {
		return nil
	}
	return h
}

func (a *worldAccess) PositionOf(e ecs.Entity) (cp.Vector, bool) {
	if !a.w.IsAlive(e) {
		return cp.Vector{}, false
	}
	return a.ps.position(a.w, e)
}

func (a *worldAccess) Teleport(e ecs.Entity, to cp.Vector) bool {
	return a.ps.teleport(a.w, e, to)
}

func (a *worldAccess) RequestLevel(path string) {
	a.w.Events().Push(ecs.Event{Type: ecs.EventLevelRequested, Data: path})
}
