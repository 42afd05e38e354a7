package system

import (
	"log/slog"

	"github.com/milk9111/quarrel/behavior"
	"github.com/milk9111/quarrel/ecs"
	"github.com/milk9111/quarrel/ecs/component"
)

// BehaviorSystem steps every hosted behavior once per update and delivers
// contacts from the physics system.
type BehaviorSystem struct {
	physics *PhysicsSystem
	log     *slog.Logger
	now     float64
	dt      float64
}

// NewBehaviorSystem hooks the system up to ps so contacts reach behaviors.
func NewBehaviorSystem(ps *PhysicsSystem, log *slog.Logger) *BehaviorSystem {
	if log == nil {
		log = slog.Default()
	}
	bs := &BehaviorSystem{physics: ps, log: log, dt: DefaultStep}
	if ps != nil {
		ps.OnContact = bs.HandleContact
	}
	return bs
}

// Now is the simulation clock in seconds.
func (bs *BehaviorSystem) Now() float64 {
	return bs.now
}

func (bs *BehaviorSystem) Update(w *ecs.World) {
	if bs == nil || w == nil {
		return
	}
	bs.now += bs.dt

	ecs.ForEach(w, behavior.HostComponent.Kind(), func(e ecs.Entity, host *behavior.Host) {
		if host.Current == nil {
			return
		}
		ctx := bs.Context(w, e)
		bs.resolve(w, e, host.Step(ctx, bs.dt))
	})
}

// Context builds the collaborator bundle for e.
func (bs *BehaviorSystem) Context(w *ecs.World, e ecs.Entity) *behavior.Context {
	ctx := &behavior.Context{
		Entity: e,
		Now:    bs.now,
		Log:    bs.log,
		View:   &entityView{w: w, e: e, log: bs.log},
		World:  &worldAccess{w: w, ps: bs.physics},
	}
	if bs.physics != nil {
		ctx.Body = bs.physics.Body(w, e)
	}
	if input, ok := ecs.Get(w, e, component.PlayerInputComponent.Kind()); ok {
		ctx.Input = input
	}
	if camera, ok := ecs.Get(w, e, component.CameraComponent.Kind()); ok {
		ctx.Camera = camera
	}
	return ctx
}

// HandleContact hands one begin or end contact to both entities. Both
// contacts are built before either side runs so a callback that destroys
// its entity cannot change what the other side sees.
func (bs *BehaviorSystem) HandleContact(w *ecs.World, ev ContactEvent) {
	a := bs.contact(w, ev.A, ev.B)
	b := bs.contact(w, ev.B, ev.A)
	bs.dispatch(w, ev.A.entity, ev.Begin, a)
	bs.dispatch(w, ev.B.entity, ev.Begin, b)
}

func (bs *BehaviorSystem) contact(w *ecs.World, self, other shapeMeta) behavior.Contact {
	c := behavior.Contact{
		Other:           other.entity,
		Self:            self.shape,
		OtherShape:      other.shape,
		OtherCategories: other.category,
	}
	if host, ok := ecs.Get(w, other.entity, behavior.HostComponent.Kind()); ok {
		c.OtherTypeName = host.TypeName()
	}
	return c
}

func (bs *BehaviorSystem) dispatch(w *ecs.World, e ecs.Entity, begin bool, c behavior.Contact) {
	if !w.IsAlive(e) {
		return
	}
	host, ok := ecs.Get(w, e, behavior.HostComponent.Kind())
	if !ok || host.Current == nil {
		return
	}
	ctx := bs.Context(w, e)
	if begin {
		bs.resolve(w, e, host.BeginContact(ctx, c))
		return
	}
	bs.resolve(w, e, host.EndContact(ctx, c))
}

func (bs *BehaviorSystem) resolve(w *ecs.World, e ecs.Entity, out behavior.Outcome) {
	if !out.DestroyEntity {
		return
	}
	bs.log.Debug("behavior destroyed entity", "entity", e)
	w.DestroyEntity(e)
}
