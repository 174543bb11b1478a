package component

// GroundProbeResult is the outcome of one downward probe. It is recomputed
// every tick.
type GroundProbeResult struct {
	Hit      bool
	Distance float64
}

// GroundSensor configures the downward probe cast from the entity's
// transform each tick.
type GroundSensor struct {
	MaxDistance float64
	Mask        uint
	Last        GroundProbeResult
}

var GroundSensorComponent = NewComponent[GroundSensor]()
