package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/quarrel/ecs/component"
)

// keys is the keyboard as seen by readInput.
type keys interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

var slotKeys = [...]ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

func axis(k keys, negative, positive ebiten.Key) float64 {
	v := 0.0
	if k.Pressed(negative) {
		v--
	}
	if k.Pressed(positive) {
		v++
	}
	return v
}

// readInput maps the keyboard onto one frame of player input. W and S move
// along the facing, A and D strafe, the arrows or Q and E turn.
func readInput(k keys) component.PlayerInput {
	in := component.PlayerInput{
		MoveX: axis(k, ebiten.KeyS, ebiten.KeyW),
		MoveY: axis(k, ebiten.KeyA, ebiten.KeyD),
		Turn:  axis(k, ebiten.KeyLeft, ebiten.KeyRight) + axis(k, ebiten.KeyQ, ebiten.KeyE),
		Fire:  k.Pressed(ebiten.KeySpace),

		ToggleCannotDie: k.JustPressed(ebiten.KeyF1),
		DebugDamage:     k.Pressed(ebiten.KeyF2),
		DebugHeal:       k.Pressed(ebiten.KeyF3),
	}
	in.Turn = max(-1, min(1, in.Turn))
	for i, key := range slotKeys {
		if k.JustPressed(key) {
			in.SelectSlot = i + 1
		}
	}
	return in
}
