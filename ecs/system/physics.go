package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/quarrel/behavior"
	"github.com/milk9111/quarrel/ecs"
	"github.com/milk9111/quarrel/ecs/component"
)

// DefaultStep is the fixed simulation step in seconds.
const DefaultStep = 1.0 / 60.0

const collisionTypeEntity cp.CollisionType = 1

// ContactEvent is a begin or end contact recorded during a space step.
type ContactEvent struct {
	Begin bool
	A, B  shapeMeta
}

type shapeMeta struct {
	shape    *cp.Shape
	entity   ecs.Entity
	category uint
	mask     uint
}

type bodyInfo struct {
	body   *cp.Body
	main   *cp.Shape
	shapes []*cp.Shape
	static bool
	// centre is the position of a static shape, which sits on the space's
	// shared static body.
	centre cp.Vector
}

// PhysicsSystem owns the Chipmunk space. Contacts reported while the space
// is stepping are buffered and handed to OnContact once Step has returned,
// so handlers are free to add and remove bodies.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool
	step          float64

	entities map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]shapeMeta
	pending  []ContactEvent

	OnContact func(w *ecs.World, ev ContactEvent)
}

func NewPhysicsSystem() *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 10
	return &PhysicsSystem{
		space:    space,
		step:     DefaultStep,
		entities: make(map[ecs.Entity]*bodyInfo),
		shapes:   make(map[*cp.Shape]shapeMeta),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.ensureHandlers()
	ps.cleanupEntities(w)
	ps.syncEntities(w)

	ps.space.Step(ps.step)

	ps.syncTransforms(w)
	ps.flushContacts(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}

	handler := ps.space.NewCollisionHandler(collisionTypeEntity, collisionTypeEntity)
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		a, b := arb.Shapes()
		sys.record(true, a, b)
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return
		}
		a, b := arb.Shapes()
		sys.record(false, a, b)
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) record(begin bool, a, b *cp.Shape) {
	metaA, okA := ps.shapes[a]
	metaB, okB := ps.shapes[b]
	if !okA || !okB {
		return
	}
	ps.pending = append(ps.pending, ContactEvent{Begin: begin, A: metaA, B: metaB})
}

func (ps *PhysicsSystem) flushContacts(w *ecs.World) {
	events := ps.pending
	ps.pending = nil
	if ps.OnContact == nil {
		return
	}
	for _, ev := range events {
		ps.OnContact(w, ev)
	}
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, tf *component.Transform, pb *component.PhysicsBody) {
		if _, ok := ps.entities[e]; ok {
			return
		}
		layer := component.CollisionLayer{}
		if l, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok {
			layer = *l
		}
		info := ps.createBodyInfo(e, *tf, *pb, layer)
		ps.entities[e] = info
		pb.Body = info.body
		pb.Shape = info.main
	})
}

func (ps *PhysicsSystem) createBodyInfo(e ecs.Entity, tf component.Transform, pb component.PhysicsBody, layer component.CollisionLayer) *bodyInfo {
	radius := pb.Radius
	if radius <= 0 {
		radius = 0.5
	}
	category, mask := layer.Resolved()
	info := &bodyInfo{static: pb.Static}

	if pb.Static {
		centre := cp.Vector{X: tf.X, Y: tf.Y}
		info.body = ps.space.StaticBody
		info.centre = centre
		info.main = ps.addCircle(e, ps.space.StaticBody, radius, centre, pb.Sensor, category, mask)
		info.shapes = []*cp.Shape{info.main}
		return info
	}

	mass := pb.Mass
	if mass <= 0 {
		mass = 1
	}
	// Rotation is driven directly by behaviors, never by contacts.
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: tf.X, Y: tf.Y})
	body.SetAngle(tf.Rotation)
	body.SetVelocity(pb.VelocityX, pb.VelocityY)
	body.UserData = e
	ps.space.AddBody(body)

	info.body = body
	info.main = ps.addCircle(e, body, radius, cp.Vector{}, pb.Sensor, category, mask)
	info.shapes = []*cp.Shape{info.main}
	return info
}

func (ps *PhysicsSystem) addCircle(e ecs.Entity, body *cp.Body, radius float64, offset cp.Vector, sensor bool, category, mask uint) *cp.Shape {
	shape := cp.NewCircle(body, radius, offset)
	shape.SetSensor(sensor)
	shape.SetCollisionType(collisionTypeEntity)
	shape.SetFilter(filterFor(e, category, mask))
	shape.UserData = e
	ps.space.AddShape(shape)
	ps.shapes[shape] = shapeMeta{shape: shape, entity: e, category: category, mask: mask}
	return shape
}

// reinsert drops shape's arbiters so anything still overlapping it gets a
// separate now and a fresh begin on the next step under the shape's new
// filter or sensor flag.
func (ps *PhysicsSystem) reinsert(shape *cp.Shape) {
	if !ps.space.ContainsShape(shape) {
		return
	}
	ps.space.RemoveShape(shape)
	ps.space.AddShape(shape)
}

// filterFor puts every shape of an entity in one group so they never
// collide with each other and ray casts from the entity skip them.
func filterFor(e ecs.Entity, category, mask uint) cp.ShapeFilter {
	return cp.ShapeFilter{Group: uint(e.Index()), Categories: category, Mask: mask}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, tf *component.Transform, pb *component.PhysicsBody) {
		info, ok := ps.entities[e]
		if !ok || info.static {
			return
		}
		pos := info.body.Position()
		vel := info.body.Velocity()
		tf.X = pos.X
		tf.Y = pos.Y
		tf.Rotation = info.body.Angle()
		pb.VelocityX = vel.X
		pb.VelocityY = vel.Y
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		ps.removeEntity(e, info)
	}
}

func (ps *PhysicsSystem) removeEntity(e ecs.Entity, info *bodyInfo) {
	for _, shape := range info.shapes {
		ps.space.RemoveShape(shape)
		delete(ps.shapes, shape)
	}
	if !info.static {
		ps.space.RemoveBody(info.body)
	}
	delete(ps.entities, e)
}

// Body returns a handle on e's physics body for behavior callbacks.
func (ps *PhysicsSystem) Body(w *ecs.World, e ecs.Entity) behavior.Body {
	return &entityBody{ps: ps, w: w, e: e}
}

func (ps *PhysicsSystem) info(e ecs.Entity) (*bodyInfo, bool) {
	if ps == nil {
		return nil, false
	}
	info, ok := ps.entities[e]
	return info, ok
}

// position reports where e is, falling back to its transform before its
// body has been created.
func (ps *PhysicsSystem) position(w *ecs.World, e ecs.Entity) (cp.Vector, bool) {
	if info, ok := ps.info(e); ok {
		if info.static {
			return info.centre, true
		}
		return info.body.Position(), true
	}
	if tf, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		return cp.Vector{X: tf.X, Y: tf.Y}, true
	}
	return cp.Vector{}, false
}

func (ps *PhysicsSystem) teleport(w *ecs.World, e ecs.Entity, to cp.Vector) bool {
	if !w.IsAlive(e) {
		return false
	}
	if tf, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		tf.X = to.X
		tf.Y = to.Y
	}
	info, ok := ps.info(e)
	if !ok {
		return true
	}
	if info.static {
		return false
	}
	info.body.SetPosition(to)
	return true
}

// rayCast returns the nearest non-sensor shape on the segment that is not
// in e's group and has no category in ignore.
func (ps *PhysicsSystem) rayCast(e ecs.Entity, from, to cp.Vector, ignore uint) (behavior.RayHit, bool) {
	filter := cp.ShapeFilter{Group: uint(e.Index()), Categories: component.CategoryAll, Mask: component.CategoryAll &^ ignore}
	info := ps.space.SegmentQueryFirst(from, to, 0, filter)
	if info.Shape == nil {
		return behavior.RayHit{}, false
	}
	meta, ok := ps.shapes[info.Shape]
	if !ok {
		return behavior.RayHit{}, false
	}
	return behavior.RayHit{Point: info.Point, Entity: meta.entity, Categories: meta.category}, true
}
