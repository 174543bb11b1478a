package component

// Animator receives per-tick animation parameters. Calls are fire and
// forget.
type Animator interface {
	SetFloat(name string, value float64)
	SetTrigger(name string)
}

const (
	AnimParamSpeed            = "speed"
	AnimParamDirection        = "direction"
	AnimParamVerticalVelocity = "verticalVelocity"
	AnimTriggerJump           = "jump"
	AnimTriggerLand           = "land"
)

// AnimatorParams is an in-process Animator. Triggers stay set until
// consumed with TakeTrigger.
type AnimatorParams struct {
	Floats   map[string]float64
	Triggers map[string]bool
}

func NewAnimatorParams() *AnimatorParams {
	return &AnimatorParams{
		Floats:   make(map[string]float64),
		Triggers: make(map[string]bool),
	}
}

func (a *AnimatorParams) SetFloat(name string, value float64) {
	if a.Floats == nil {
		a.Floats = make(map[string]float64)
	}
	a.Floats[name] = value
}

func (a *AnimatorParams) SetTrigger(name string) {
	if a.Triggers == nil {
		a.Triggers = make(map[string]bool)
	}
	a.Triggers[name] = true
}

// Float returns a parameter value, zero when unset.
func (a *AnimatorParams) Float(name string) float64 {
	return a.Floats[name]
}

// TakeTrigger reports whether the trigger fired and clears it.
func (a *AnimatorParams) TakeTrigger(name string) bool {
	fired := a.Triggers[name]
	delete(a.Triggers, name)
	return fired
}

// AnimatorRef attaches an Animator collaborator to an entity.
type AnimatorRef struct {
	Animator Animator
}

var AnimatorComponent = NewComponent[AnimatorRef]()
