package component

// Camera follows its entity. Height is the eye height above the floor and
// drops to zero when the owner dies.
type Camera struct {
	X        float64
	Y        float64
	Rotation float64
	Height   float64
	Zoom     float64
}

var CameraComponent = NewComponent[Camera]()
