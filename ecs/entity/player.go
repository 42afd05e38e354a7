package entity

import (
	"fmt"

	"github.com/milk9111/quarrel/behavior"
	"github.com/milk9111/quarrel/ecs"
)

func NewPlayerAt(w *ecs.World, reg *behavior.Registry, x, y float64) (ecs.Entity, error) {
	entity, err := BuildEntity(w, "player.yaml", reg)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, entity, x, y, 0); err != nil {
		w.DestroyEntity(entity)
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	return entity, nil
}
