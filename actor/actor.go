// Package actor holds the concrete behaviors: the player, enemies, bolts
// and the things they leave behind.
package actor

import (
	"github.com/milk9111/quarrel/behavior"
	"github.com/milk9111/quarrel/ecs/component"
	"github.com/milk9111/quarrel/prefabs"
)

const (
	TypePlayer          = "Player"
	TypeDeadPlayer      = "DeadPlayer"
	TypeEnemy           = "Enemy"
	TypeEnemyProjectile = "EnemyProjectile"
	TypeCrossbowBolt    = "CrossbowBolt"
	TypeFire            = "Fire"
	TypeWorldExit       = "WorldExit"
	TypeScript          = "Script"
)

// SoundCrossbowShoot is played by anything firing a crossbow.
const SoundCrossbowShoot = "crossbow_shoot"

// ClipFire is the clip a bolt switches to when it turns into a fire.
const ClipFire = "fire"

// NewRegistry returns a registry with every actor type registered.
func NewRegistry() *behavior.Registry {
	r := behavior.NewRegistry()
	r.Register(TypePlayer, func() behavior.Behavior { return NewPlayer() })
	r.Register(TypeDeadPlayer, func() behavior.Behavior { return &DeadPlayer{} })
	r.Register(TypeEnemy, func() behavior.Behavior { return NewEnemy() })
	r.Register(TypeEnemyProjectile, func() behavior.Behavior { return &EnemyProjectile{} })
	r.Register(TypeCrossbowBolt, func() behavior.Behavior { return &CrossbowBolt{} })
	r.Register(TypeFire, func() behavior.Behavior { return NewFire() })
	r.Register(TypeWorldExit, func() behavior.Behavior { return &WorldExit{} })
	r.Register(TypeScript, func() behavior.Behavior {
		return &Script{registry: r, load: prefabs.LoadScript}
	})
	return r
}

type clip struct {
	name   string
	repeat component.Repeat
}

// playChain starts the first clip and queues the rest behind it. Clips with
// no name are skipped.
func playChain(ctx *behavior.Context, chain ...clip) {
	if len(chain) == 0 {
		return
	}
	log := ctx.Logger()
	first := chain[0]
	if first.name != "" && !ctx.View.SetAnimation(first.name, first.repeat) {
		log.Warn("couldn't set animation", "clip", first.name)
	}
	for _, next := range chain[1:] {
		if next.name == "" {
			continue
		}
		if !ctx.View.QueueAnimation(next.name, next.repeat) {
			log.Warn("couldn't queue animation", "clip", next.name)
			continue
		}
		log.Debug("queued animation", "clip", next.name)
	}
}
