package system

import (
	"github.com/milk9111/quarrel/ecs"
	"github.com/milk9111/quarrel/ecs/component"
)

type AnimationSystem struct {
	dt float64
}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{dt: DefaultStep}
}

func (s *AnimationSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.AnimatorComponent.Kind(), func(e ecs.Entity, anim *component.Animator) {
		anim.Advance(s.dt)
	})
}
