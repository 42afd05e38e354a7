package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Body and Shape are filled in by the physics system on first sight.
type PhysicsBody struct {
	Body      *cp.Body
	Shape     *cp.Shape
	Radius    float64
	Mass      float64
	Static    bool
	Sensor    bool
	VelocityX float64
	VelocityY float64

	// Extra holds shapes attached after creation, such as detection sensors.
	Extra []*cp.Shape
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
