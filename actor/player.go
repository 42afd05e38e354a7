package actor

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/quarrel/behavior"
	"github.com/milk9111/quarrel/common"
	"github.com/milk9111/quarrel/ecs"
	"github.com/milk9111/quarrel/ecs/component"
	"github.com/milk9111/quarrel/effect"
	"github.com/milk9111/quarrel/quiver"
	"gopkg.in/yaml.v3"
)

const (
	playerMaxDamage       = 100
	playerMoveSpeed       = 5.0
	enemyAttackDamage     = 30
	enemyAttackImpulse    = 5.0
	enemyProjectileDamage = 20

	// turnSpeed is in radians per second.
	turnSpeed       = 3.14
	stickyAimFactor = 0.5
	stickyAimRange  = 20.0
	debugDamageRate = 20.0
	cameraZoomTime  = 0.1

	knockbackDecayTime = 0.25

	boltSpeed       = 25.0
	boltRadius      = 0.1
	boltSpawnOffset = 1.0
)

const stickyAimIgnore = component.CategoryRenderOnly | component.CategoryProjectile |
	component.CategoryFire | component.CategorySensor

// Player turns input into movement and bolts, and hands the camera to a
// DeadPlayer when it dies.
type Player struct {
	behavior.Base

	Library   quiver.Library
	Quiver    quiver.Quiver
	CannotDie bool

	speed    effect.MovementSpeed
	damage   effect.DamageCount
	effects  effect.Set
	fires    effect.FiresInContact[ecs.Entity]
	selected int
}

func NewPlayer() *Player {
	return &Player{
		Quiver: quiver.Default(),
		speed:  effect.NewMovementSpeed(playerMoveSpeed),
		damage: effect.NewDamageCount(playerMaxDamage),
	}
}

func (p *Player) TypeName() string { return TypePlayer }

// SetLibrary swaps the library and refreshes every equipped slot whose
// quarrel type the new library still has. Cooldowns in progress carry on.
func (p *Player) SetLibrary(lib quiver.Library) {
	p.Library = lib
	for _, s := range p.Quiver.Slots {
		if s == nil {
			continue
		}
		t, ok := lib.Lookup(s.Type.Name)
		if !ok {
			continue
		}
		s.Type = t
		s.CooldownTime = t.CooldownTime
		s.CooldownRemaining = min(s.CooldownRemaining, t.CooldownTime)
	}
}

func (p *Player) Damage() effect.DamageCount { return p.damage }

func (p *Player) Effects() *effect.Set { return &p.effects }

func (p *Player) Speed() effect.MovementSpeed { return p.speed }

// Selected is the quiver slot the next bolt comes from.
func (p *Player) Selected() int { return p.selected }

func (p *Player) Attach(ctx *behavior.Context) {
	ctx.Body.SetFilter(component.CategoryPlayer, component.CategoryAll)
}

func (p *Player) Step(ctx *behavior.Context, dt float64) behavior.Transition {
	p.Quiver.Step(dt)
	p.fires.Prune(ctx.World.IsAlive)

	// Effects go first so input sees this frame's speed multiplier.
	effect.Advance(&p.effects, &p.fires, effect.Target{
		Damage: &p.damage,
		Speed:  &p.speed,
		Tint:   ctx.View.SetTint,
	}, dt)

	if ctx.Input != nil {
		p.handleInput(ctx, dt)
	}

	if p.damage.Exceeded() && !p.CannotDie {
		ctx.Logger().Debug("player took too much damage", "damage", p.damage.Damage, "max", p.damage.Max)
		return behavior.Replace(&DeadPlayer{})
	}

	p.followCamera(ctx, dt)
	return behavior.Continue()
}

func (p *Player) handleInput(ctx *behavior.Context, dt float64) {
	in := ctx.Input

	p.move(ctx, in.MoveX, in.MoveY, dt)

	if turn := in.Turn; turn != 0 {
		if p.enemyAhead(ctx) {
			turn *= stickyAimFactor
		}
		ctx.Body.SetAngle(ctx.Body.Angle() + turn*turnSpeed*dt)
	}

	debug := int(math.Ceil(debugDamageRate * dt))
	if in.DebugDamage {
		p.damage.Add(debug)
	}
	if in.DebugHeal {
		p.damage.Remove(debug)
	}
	if in.ToggleCannotDie {
		p.CannotDie = !p.CannotDie
		ctx.Logger().Info("cannot die toggled", "enabled", p.CannotDie)
	}

	if in.SelectSlot >= 1 && in.SelectSlot <= quiver.MaxEquipped {
		p.selected = in.SelectSlot - 1
	}
	if in.Fire {
		p.fire(ctx)
	}
}

// move drives the body at the effective speed. No input or a frozen player
// means standing still; knockback faster than walking bleeds off over
// knockbackDecayTime.
func (p *Player) move(ctx *behavior.Context, x, y, dt float64) {
	speed := p.speed.Get()
	dir := cp.Vector{X: x, Y: y}
	if dir.LengthSq() > 1 {
		dir = dir.Normalize()
	}
	target := dir.Rotate(cp.ForAngle(ctx.Body.Angle())).Mult(speed)

	vel := ctx.Body.Velocity()
	if speed > 0 && vel.Length() > p.speed.Base {
		target = vel.Lerp(target, common.Clamp01(dt/knockbackDecayTime))
	}
	if target != vel {
		ctx.Body.SetVelocity(target)
	}
}

func (p *Player) enemyAhead(ctx *behavior.Context) bool {
	forward := cp.ForAngle(ctx.Body.Angle())
	to := ctx.Body.Position().Add(forward.Mult(stickyAimRange))
	hit, ok := ctx.Body.RayCast(to, stickyAimIgnore)
	return ok && hit.Categories&component.CategoryEnemy != 0
}

// fire spends the selected slot on a bolt. The slot is refunded if the bolt
// can't be spawned.
func (p *Player) fire(ctx *behavior.Context) {
	t, ok := quiver.Take(&p.Quiver, p.selected)
	if !ok {
		return
	}

	dir := cp.ForAngle(ctx.Body.Angle())
	_, err := ctx.World.Spawn(behavior.SpawnSpec{
		Position: ctx.Body.Position().Add(dir.Mult(boltSpawnOffset)),
		Angle:    ctx.Body.Angle(),
		Velocity: dir.Mult(boltSpeed),
		Radius:   boltRadius,
		Category: component.CategoryCrossbowBolt,
		Mask:     component.CategoryAll &^ component.CategoryPlayer,
		Colour:   t.Colour,
		Clips:    boltClips,
		Behavior: &CrossbowBolt{Type: t, Firer: ctx.Entity},
	})
	if err != nil {
		ctx.Logger().Warn("bolt not spawned, refunding", "quarrel", t.Name, "err", err)
		quiver.PutBack(&p.Quiver, t)
		return
	}
	ctx.View.PlaySound(SoundCrossbowShoot)
}

func (p *Player) followCamera(ctx *behavior.Context, dt float64) {
	if ctx.Camera == nil {
		return
	}
	pos := ctx.Body.Position()
	ctx.Camera.X, ctx.Camera.Y = pos.X, pos.Y
	ctx.Camera.Rotation = ctx.Body.Angle()
	ctx.Camera.Zoom = common.Lerp(ctx.Camera.Zoom, 1, common.Clamp01(dt/cameraZoomTime))
}

func (p *Player) BeginContact(ctx *behavior.Context, c behavior.Contact) behavior.Transition {
	log := ctx.Logger()

	if c.OtherCategories&component.CategoryEnemyAttack != 0 {
		log.Debug("player hit by enemy attack")
		p.damage.Add(enemyAttackDamage)
		if from, ok := ctx.World.PositionOf(c.Other); ok {
			away := ctx.Body.Position().Sub(from).Normalize()
			ctx.Body.ApplyImpulse(away.Mult(enemyAttackImpulse))
		}
	}

	if c.OtherTypeName != "" {
		log.Debug("player contact", "other", c.OtherTypeName)
	}
	if c.OtherTypeName == TypeEnemyProjectile {
		p.damage.Add(enemyProjectileDamage)
	}

	if c.OtherCategories&component.CategoryFire != 0 {
		p.fires.Enter(c.Other)
	}
	return behavior.Continue()
}

func (p *Player) EndContact(_ *behavior.Context, c behavior.Contact) behavior.Transition {
	p.fires.Leave(c.Other)
	return behavior.Continue()
}

type playerDoc struct {
	MoveSpeed *float64        `yaml:"move_speed,omitempty"`
	Library   *quiver.Library `yaml:"quarrel_library,omitempty"`
	Quiver    *quiver.Quiver  `yaml:"quiver,omitempty"`
}

func (p *Player) MarshalYAML() (any, error) {
	speed := p.speed.Base
	lib := p.Library
	q := p.Quiver
	return playerDoc{MoveSpeed: &speed, Library: &lib, Quiver: &q}, nil
}

// Decode keeps the current speed, library and quiver for anything the
// document leaves out.
func (p *Player) Decode(node *yaml.Node) error {
	var doc playerDoc
	if err := node.Decode(&doc); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	if doc.MoveSpeed != nil {
		p.speed = effect.NewMovementSpeed(*doc.MoveSpeed)
	}
	if doc.Library != nil {
		p.Library = *doc.Library
	}
	if doc.Quiver != nil {
		p.Quiver = *doc.Quiver
	}
	return nil
}

func (p *Player) Inspector() behavior.Inspector {
	return behavior.NewFieldSet().
		Float("Move Speed", &p.speed.Base).
		Bool("Cannot Die", &p.CannotDie)
}

// DeadPlayer keeps the camera on the body after the player dies.
type DeadPlayer struct {
	behavior.Base
}

func (*DeadPlayer) TypeName() string { return TypeDeadPlayer }

func (d *DeadPlayer) Attach(ctx *behavior.Context) {
	if ctx.Camera != nil {
		ctx.Camera.Height = 0
	}
}

func (d *DeadPlayer) Step(ctx *behavior.Context, _ float64) behavior.Transition {
	if ctx.Camera == nil {
		return behavior.Continue()
	}
	pos := ctx.Body.Position()
	ctx.Camera.X, ctx.Camera.Y = pos.X, pos.Y
	ctx.Camera.Rotation = ctx.Body.Angle()
	return behavior.Continue()
}
