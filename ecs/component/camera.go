package component

// Camera is the state of a camera that may follow one target entity.
// Target is stored as a raw entity handle; zero means not following.
type Camera struct {
	X, Y, Z float64

	Target  uint64
	OffsetX float64
	OffsetY float64
	// Depth is substituted for Z whenever the camera follows a target.
	Depth        float64
	LerpToObject bool
	LerpSpeed    float64
}

var CameraComponent = NewComponent[Camera]()
