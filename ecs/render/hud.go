package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/quarrel/actor"
	"github.com/milk9111/quarrel/behavior"
	"github.com/milk9111/quarrel/ecs"
	"github.com/milk9111/quarrel/ecs/component"
	"github.com/milk9111/quarrel/quiver"
)

const (
	hudSlotSize   = 40
	hudSlotGap    = 8
	hudMargin     = 12
	hudBarHeight  = 6
	hudOutline    = 2
	hudDamageBarW = 3*hudSlotSize + 2*hudSlotGap
)

var (
	hudBackground = color.NRGBA{R: 20, G: 20, B: 20, A: 200}
	hudCooling    = color.NRGBA{A: 160}
	hudSelected   = color.NRGBA{R: 255, G: 220, B: 80, A: 255}
	hudDamage     = color.NRGBA{R: 200, G: 40, B: 40, A: 255}
)

// SlotRects lays the quiver slots out along the bottom left of the screen.
func SlotRects(screenHeight int) [quiver.MaxEquipped]image.Rectangle {
	var rects [quiver.MaxEquipped]image.Rectangle
	y := screenHeight - hudMargin - hudSlotSize
	for i := range rects {
		x := hudMargin + i*(hudSlotSize+hudSlotGap)
		rects[i] = image.Rect(x, y, x+hudSlotSize, y+hudSlotSize)
	}
	return rects
}

// CoolingHeight is how much of a slot box is shaded while it recharges.
func CoolingHeight(s *quiver.Slot) int {
	if s == nil {
		return 0
	}
	return int(s.CooldownRatio()*hudSlotSize + 0.5)
}

// DrawHUD draws the player's quiver and damage. Nothing is drawn once the
// player behavior is gone.
func DrawHUD(w *ecs.World, screen *ebiten.Image) {
	e, _, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	host, ok := ecs.Get(w, e, behavior.HostComponent.Kind())
	if !ok {
		return
	}
	p, ok := host.Current.(*actor.Player)
	if !ok {
		return
	}

	rects := SlotRects(screen.Bounds().Dy())
	for i, r := range rects {
		slot := p.Quiver.Slots[i]
		x, y := float32(r.Min.X), float32(r.Min.Y)
		size := float32(r.Dx())

		vector.DrawFilledRect(screen, x, y, size, size, hudBackground, false)
		if slot != nil {
			vector.DrawFilledRect(screen, x+4, y+4, size-8, size-8, slot.Type.Colour, false)
			if h := CoolingHeight(slot); h > 0 {
				vector.DrawFilledRect(screen, x, y, size, float32(h), hudCooling, false)
			}
		}
		if i == p.Selected() {
			vector.StrokeRect(screen, x, y, size, size, hudOutline, hudSelected, false)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprint(i+1), r.Min.X+2, r.Min.Y)
	}

	damage := p.Damage()
	if damage.Max <= 0 {
		return
	}
	y := float32(rects[0].Min.Y - hudSlotGap - hudBarHeight)
	filled := float32(hudDamageBarW) * float32(min(damage.Damage, damage.Max)) / float32(damage.Max)
	vector.DrawFilledRect(screen, hudMargin, y, hudDamageBarW, hudBarHeight, hudBackground, false)
	vector.DrawFilledRect(screen, hudMargin, y, filled, hudBarHeight, hudDamage, false)
}
