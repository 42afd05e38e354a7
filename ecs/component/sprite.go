package component

import "image/color"

// Sprite is a flat-shaded disc. Image names an optional texture looked up
// by the renderer; Tint multiplies Colour and is driven by status effects.
type Sprite struct {
	Image  string
	Radius float64
	Colour color.NRGBA
	Tint   color.NRGBA
	Layer  int
}

var SpriteComponent = NewComponent[Sprite]()

// White is the identity tint.
var White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
