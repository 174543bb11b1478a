package component

// Transform is the world-space centre of an entity. Physics-driven entities
// have it overwritten from their body after every step.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
