package actor

import (
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/quarrel/behavior"
	"github.com/milk9111/quarrel/ecs"
	"github.com/milk9111/quarrel/ecs/component"
	"github.com/milk9111/quarrel/effect"
	"gopkg.in/yaml.v3"
)

const (
	enemyMaxDamage     = 10
	enemySensorRadius  = 5.0
	enemyShotInterval  = 1.0
	enemyShotSpeed     = 20.0
	enemyShotRadius    = 0.1
	enemyShotSpawnDist = 1.0
)

// enemySightIgnore lists categories that never block an enemy's view.
const enemySightIgnore = component.CategorySensor | component.CategoryProjectile |
	component.CategoryCrossbowBolt | component.CategoryFire | component.CategoryRenderOnly

type EnemyState int

const (
	Dormant EnemyState = iota
	Waking
	Active
)

func (s EnemyState) String() string {
	switch s {
	case Dormant:
		return "dormant"
	case Waking:
		return "waking"
	case Active:
		return "active"
	default:
		return fmt.Sprintf("EnemyState(%d)", int(s))
	}
}

// Enemy sleeps until something wanders into its sensor or shoots it, then
// fires at its target whenever it can see it.
type Enemy struct {
	behavior.Base

	RunAnim   string
	ShootAnim string
	IdleAnim  string
	DieAnim   string
	AwakeAnim string

	state   EnemyState
	damage  effect.DamageCount
	effects effect.Set
	fires   effect.FiresInContact[ecs.Entity]

	sensor   *cp.Shape
	target   ecs.Entity
	lastShot float64
	hasShot  bool
}

func NewEnemy() *Enemy {
	return &Enemy{damage: effect.NewDamageCount(enemyMaxDamage)}
}

func (e *Enemy) TypeName() string { return TypeEnemy }

func (e *Enemy) State() EnemyState { return e.state }

func (e *Enemy) Damage() effect.DamageCount { return e.damage }

func (e *Enemy) Effects() *effect.Set { return &e.effects }

func (e *Enemy) Target() ecs.Entity { return e.target }

func (e *Enemy) Attach(ctx *behavior.Context) {
	ctx.Body.SetFilter(component.CategoryEnemy, component.CategoryAll)
	e.sensor = ctx.Body.AddSensor(enemySensorRadius, component.CategorySensor, component.CategoryPlayer)
}

func (e *Enemy) Step(ctx *behavior.Context, dt float64) behavior.Transition {
	log := ctx.Logger()

	e.fires.Prune(ctx.World.IsAlive)
	dead := effect.Advance(&e.effects, &e.fires, effect.Target{
		Damage: &e.damage,
		Tint:   ctx.View.SetTint,
	}, dt)
	if dead {
		log.Debug("enemy dying", "damage", e.damage.Damage, "max", e.damage.Max)
		playChain(ctx, clip{e.DieAnim, component.RepeatNever})
		ctx.View.StopSound(SoundCrossbowShoot)
		if e.sensor != nil {
			ctx.Body.RemoveShape(e.sensor)
			e.sensor = nil
		}
		return behavior.Detach()
	}

	if e.state == Waking {
		if ctx.View.CurrentAnimation() != e.AwakeAnim {
			playChain(ctx,
				clip{e.AwakeAnim, component.RepeatNever},
				clip{e.IdleAnim, component.RepeatForever},
			)
		}
		e.state = Active
		log.Debug("enemy awake")
	}

	if e.target.Valid() && ctx.World.IsAlive(e.target) {
		if at, ok := e.lineOfSight(ctx); ok && e.canShoot(ctx) {
			log.Debug("enemy firing", "x", at.X, "y", at.Y)
			e.shoot(ctx, at)
		}
	}
	return behavior.Continue()
}

// lineOfSight returns where the target is if nothing solid is in the way.
func (e *Enemy) lineOfSight(ctx *behavior.Context) (cp.Vector, bool) {
	to, ok := ctx.World.PositionOf(e.target)
	if !ok {
		return cp.Vector{}, false
	}
	hit, ok := ctx.Body.RayCast(to, enemySightIgnore)
	if !ok || hit.Entity != e.target {
		return cp.Vector{}, false
	}
	return hit.Point, true
}

func (e *Enemy) canShoot(ctx *behavior.Context) bool {
	if current := ctx.View.CurrentAnimation(); current != "" &&
		(current == e.AwakeAnim || current == e.ShootAnim) {
		return false
	}
	return !e.hasShot || ctx.Now-e.lastShot > enemyShotInterval
}

func (e *Enemy) shoot(ctx *behavior.Context, at cp.Vector) {
	e.lastShot = ctx.Now
	e.hasShot = true

	playChain(ctx,
		clip{e.ShootAnim, component.RepeatNever},
		clip{e.IdleAnim, component.RepeatForever},
	)
	ctx.View.PlaySound(SoundCrossbowShoot)

	pos := ctx.Body.Position()
	dir := at.Sub(pos).Normalize()
	_, err := ctx.World.Spawn(behavior.SpawnSpec{
		Position: pos.Add(dir.Mult(enemyShotSpawnDist)),
		Angle:    dir.ToAngle(),
		Velocity: dir.Mult(enemyShotSpeed),
		Radius:   enemyShotRadius,
		Category: component.CategoryProjectile,
		Mask:     component.CategoryAll,
		Colour:   color.NRGBA{R: 255, A: 255},
		Behavior: &EnemyProjectile{},
	})
	if err != nil {
		ctx.Logger().Warn("enemy projectile not spawned", "err", err)
	}
}

func (e *Enemy) BeginContact(ctx *behavior.Context, c behavior.Contact) behavior.Transition {
	wake := false

	switch {
	case c.Self != nil && c.Self == e.sensor:
		ctx.Logger().Debug("target entered sensor", "target", c.Other)
		e.target = c.Other
		wake = true
	case c.OtherCategories&component.CategoryCrossbowBolt != 0:
		if bolt, ok := ctx.World.BehaviorOf(c.Other).(*CrossbowBolt); ok {
			bolt.Hit(&e.damage, &e.effects)
			if bolt.Firer.Valid() && ctx.World.IsAlive(bolt.Firer) {
				e.target = bolt.Firer
			}
		}
		wake = true
	case c.OtherCategories&component.CategoryFire != 0:
		e.fires.Enter(c.Other)
	}

	if wake && e.state == Dormant {
		e.state = Waking
	}
	return behavior.Continue()
}

func (e *Enemy) EndContact(ctx *behavior.Context, c behavior.Contact) behavior.Transition {
	if c.Self != nil && c.Self == e.sensor {
		ctx.Logger().Debug("target left sensor", "target", c.Other)
	}
	e.fires.Leave(c.Other)
	return behavior.Continue()
}

type enemyDoc struct {
	RunAnim   string `yaml:"run_anim,omitempty"`
	ShootAnim string `yaml:"shoot_anim,omitempty"`
	IdleAnim  string `yaml:"idle_anim,omitempty"`
	DieAnim   string `yaml:"die_anim,omitempty"`
	AwakeAnim string `yaml:"awake_anim,omitempty"`
}

func (e *Enemy) MarshalYAML() (any, error) {
	return enemyDoc{
		RunAnim:   e.RunAnim,
		ShootAnim: e.ShootAnim,
		IdleAnim:  e.IdleAnim,
		DieAnim:   e.DieAnim,
		AwakeAnim: e.AwakeAnim,
	}, nil
}

// Decode reads the clip names. Clips missing from the document keep their
// current values.
func (e *Enemy) Decode(node *yaml.Node) error {
	doc := enemyDoc{
		RunAnim:   e.RunAnim,
		ShootAnim: e.ShootAnim,
		IdleAnim:  e.IdleAnim,
		DieAnim:   e.DieAnim,
		AwakeAnim: e.AwakeAnim,
	}
	if err := node.Decode(&doc); err != nil {
		return fmt.Errorf("enemy: %w", err)
	}
	e.RunAnim = doc.RunAnim
	e.ShootAnim = doc.ShootAnim
	e.IdleAnim = doc.IdleAnim
	e.DieAnim = doc.DieAnim
	e.AwakeAnim = doc.AwakeAnim
	return nil
}

func (e *Enemy) Inspector() behavior.Inspector {
	return behavior.NewFieldSet().
		Text("Run Animation", &e.RunAnim).
		Text("Idle Animation", &e.IdleAnim).
		Text("Shoot Animation", &e.ShootAnim).
		Text("Die Animation", &e.DieAnim).
		Text("Awake Animation", &e.AwakeAnim)
}
