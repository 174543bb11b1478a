package component

import "github.com/jakecoffman/cp"

// RigidBody is the slice of a physics body the controller needs. *cp.Body
// satisfies it.
type RigidBody interface {
	Position() cp.Vector
	Velocity() cp.Vector
	SetVelocityVector(v cp.Vector)
	ApplyImpulseAtLocalPoint(impulse, point cp.Vector)
}

// PhysicsBody stores Chipmunk2D runtime data and collider size.
type PhysicsBody struct {
	Body   RigidBody
	Shape  *cp.Shape
	Width  float64
	Height float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
