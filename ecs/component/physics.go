package component

import "github.com/jakecoffman/cp"

// PhysicsBody holds Chipmunk2D runtime data plus the collider configuration
// the physics system builds the body from. Body and Shape stay nil until
// the physics system syncs the entity into the space.
//
// For circle colliders Radius is authoritative: when it drifts from the
// live shape's radius (a growing ball), the physics system swaps the shape
// so future contacts see the current footprint.
type PhysicsBody struct {
	Body  *cp.Body
	Shape *cp.Shape

	// Circle collider.
	Radius float64

	// Box collider, used when Radius is zero.
	Width  float64
	Height float64

	Mass       float64
	Friction   float64
	Elasticity float64
	Static     bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// GravityScale scales world gravity for a dynamic body. 1 = normal.
type GravityScale struct {
	Scale float64
}

var GravityScaleComponent = NewComponent[GravityScale]()
