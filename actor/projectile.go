package actor

import (
	"fmt"

	"github.com/milk9111/quarrel/behavior"
	"github.com/milk9111/quarrel/ecs"
	"github.com/milk9111/quarrel/ecs/component"
	"github.com/milk9111/quarrel/effect"
	"github.com/milk9111/quarrel/quiver"
	"gopkg.in/yaml.v3"
)

// FireLifetime is how long a fire left by a burning bolt lasts.
const FireLifetime = 10.0

// boltClips lets a burning bolt turn into a fire in place.
var boltClips = map[string]component.AnimationClip{
	ClipFire: {Frames: 4, FPS: 8},
}

// EnemyProjectile vanishes on its first contact. The player recognises it
// by type name and takes the damage.
type EnemyProjectile struct {
	behavior.Base
}

func (*EnemyProjectile) TypeName() string { return TypeEnemyProjectile }

func (*EnemyProjectile) BeginContact(*behavior.Context, behavior.Contact) behavior.Transition {
	return behavior.Destroy()
}

// CrossbowBolt is a player's bolt in flight. It carries a copy of the
// quarrel type it was fired from.
type CrossbowBolt struct {
	behavior.Base

	Type  quiver.QuarrelType
	Firer ecs.Entity

	collided bool
}

func (*CrossbowBolt) TypeName() string { return TypeCrossbowBolt }

// Hit transfers the bolt's damage and status effect.
func (b *CrossbowBolt) Hit(damage *effect.DamageCount, effects *effect.Set) {
	damage.Add(b.Type.Effect.ImmediateDamage)
	effect.Add(b.Type.Effect.AppliesEffect, effects)
}

func (b *CrossbowBolt) BeginContact(*behavior.Context, behavior.Contact) behavior.Transition {
	b.collided = true
	return behavior.Continue()
}

// Step resolves a collision one frame after it happened, once every other
// entity has seen the bolt.
func (b *CrossbowBolt) Step(ctx *behavior.Context, _ float64) behavior.Transition {
	if !b.collided {
		return behavior.Continue()
	}

	if b.Type.Effect.AppliesEffect == effect.Burning {
		ctx.Body.Freeze()
		ctx.Body.SetFilter(component.CategoryFire, component.CategoryEnemy|component.CategoryPlayer)
		if !ctx.View.SetAnimation(ClipFire, component.RepeatForever) {
			ctx.Logger().Warn("couldn't set animation", "clip", ClipFire)
		}
		ctx.View.SetTint(component.White)
		return behavior.Replace(NewFire())
	}

	if b.Type.Effect.SpecialEffect == quiver.SpecialTeleport {
		// Only a live player is moved. A dead player's body stays put.
		firer := ctx.World.TypeNameOf(b.Firer)
		if firer != TypePlayer || !ctx.World.Teleport(b.Firer, ctx.Body.Position()) {
			ctx.Logger().Debug("teleport bolt lost its firer", "firer", b.Firer, "type", firer)
		}
	}
	return behavior.Destroy()
}

// Fire burns in place for a while and then goes out.
type Fire struct {
	behavior.Base

	Lifetime float64
}

func NewFire() *Fire {
	return &Fire{Lifetime: FireLifetime}
}

func (*Fire) TypeName() string { return TypeFire }

func (f *Fire) Step(_ *behavior.Context, dt float64) behavior.Transition {
	f.Lifetime -= dt
	if f.Lifetime < 0 {
		return behavior.Destroy()
	}
	return behavior.Continue()
}

type fireDoc struct {
	Lifetime float64 `yaml:"lifetime"`
}

func (f *Fire) MarshalYAML() (any, error) {
	return fireDoc{Lifetime: f.Lifetime}, nil
}

func (f *Fire) Decode(node *yaml.Node) error {
	doc := fireDoc{Lifetime: f.Lifetime}
	if err := node.Decode(&doc); err != nil {
		return fmt.Errorf("fire: %w", err)
	}
	f.Lifetime = doc.Lifetime
	return nil
}

func (f *Fire) Inspector() behavior.Inspector {
	return behavior.NewFieldSet().Float("Lifetime", &f.Lifetime)
}
