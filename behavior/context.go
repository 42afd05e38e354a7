package behavior

//go:generate go tool mockgen -source=context.go -destination=mocks/mock_context.go -package=mocks

import (
	"errors"
	"image/color"
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/quarrel/ecs"
	"github.com/milk9111/quarrel/ecs/component"
)

var ErrSpawnFailed = errors.New("behavior: spawn failed")

// Context is handed to every callback. Collaborators are narrow interfaces
// so actors can be driven without a physics space or a window.
type Context struct {
	Entity ecs.Entity
	// Now is simulation time in seconds.
	Now float64
	Log *slog.Logger

	Body  Body
	View  Presenter
	World World

	// Input and Camera are nil for entities without those components.
	Input  *component.PlayerInput
	Camera *component.Camera
}

// Logger returns ctx.Log or the default logger, tagged with the entity.
func (ctx *Context) Logger() *slog.Logger {
	l := ctx.Log
	if l == nil {
		l = slog.Default()
	}
	return l.With("entity", ctx.Entity)
}

// RayHit is the nearest shape struck by a ray cast.
type RayHit struct {
	Point      cp.Vector
	Entity     ecs.Entity
	Categories uint
}

// Body is the entity's physics body.
type Body interface {
	Position() cp.Vector
	Velocity() cp.Vector
	SetVelocity(v cp.Vector)
	ApplyImpulse(impulse cp.Vector)
	Angle() float64
	SetAngle(angle float64)
	// SetFilter changes the category and mask of the main shape.
	SetFilter(category, mask uint)
	// AddSensor attaches a circular sensor centred on the body.
	AddSensor(radius float64, category, mask uint) *cp.Shape
	RemoveShape(shape *cp.Shape)
	// Freeze stops the body where it is and turns its main shape into a
	// sensor.
	Freeze()
	// RayCast finds the nearest shape between the body and to, skipping the
	// body's own shapes and any shape with a category in ignore.
	RayCast(to cp.Vector, ignore uint) (RayHit, bool)
}

// Presenter is the entity's animation, tint and sound.
type Presenter interface {
	SetAnimation(clip string, repeat component.Repeat) bool
	QueueAnimation(clip string, repeat component.Repeat) bool
	CurrentAnimation() string
	SetTint(c color.NRGBA)
	PlaySound(name string)
	StopSound(name string)
}

// World is the part of the entity container behaviors may touch.
type World interface {
	Spawn(spec SpawnSpec) (ecs.Entity, error)
	IsAlive(e ecs.Entity) bool
	TypeNameOf(e ecs.Entity) string
	BehaviorOf(e ecs.Entity) Behavior
	PositionOf(e ecs.Entity) (cp.Vector, bool)
	Teleport(e ecs.Entity, to cp.Vector) bool
	RequestLevel(path string)
}

// SpawnSpec describes a dynamic circular entity created at runtime.
type SpawnSpec struct {
	Position cp.Vector
	Angle    float64
	Velocity cp.Vector
	Radius   float64
	Category uint
	Mask     uint
	Colour   color.NRGBA
	Image    string
	// Clips gives the entity an animator when non-empty.
	Clips    map[string]component.AnimationClip
	Behavior Behavior
}
