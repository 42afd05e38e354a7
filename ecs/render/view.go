// Package render draws the world and plays its sounds with ebiten. Nothing
// here feeds back into gameplay.
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/quarrel/ecs/component"
)

// DefaultPixelsPerUnit is the screen size of one world unit at zoom 1.
const DefaultPixelsPerUnit = 24.0

// View maps world units onto the screen. The camera's facing points up.
type View struct {
	Camera        component.Camera
	PixelsPerUnit float64
	Width         int
	Height        int
}

func (v View) scale() float64 {
	ppu := v.PixelsPerUnit
	if ppu <= 0 {
		ppu = DefaultPixelsPerUnit
	}
	zoom := v.Camera.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return ppu * zoom
}

// GeoM is the world to screen transform.
func (v View) GeoM() ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-v.Camera.X, -v.Camera.Y)
	m.Rotate(-v.Camera.Rotation - math.Pi/2)
	m.Scale(v.scale(), v.scale())
	m.Translate(float64(v.Width)/2, float64(v.Height)/2)
	return m
}

func (v View) ToScreen(p cp.Vector) (float64, float64) {
	m := v.GeoM()
	return m.Apply(p.X, p.Y)
}

// Modulate multiplies two colours channel by channel.
func Modulate(a, b color.NRGBA) color.NRGBA {
	mul := func(x, y uint8) uint8 {
		return uint8((uint16(x)*uint16(y) + 127) / 255)
	}
	return color.NRGBA{R: mul(a.R, b.R), G: mul(a.G, b.G), B: mul(a.B, b.B), A: mul(a.A, b.A)}
}
