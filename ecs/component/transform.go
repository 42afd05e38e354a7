package component

// Transform is the rendered pose of an entity in world units. Entities with
// a physics body have it overwritten from the body every physics step.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
