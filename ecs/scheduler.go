package ecs

// Phase orders systems within a tick: sense before decide before apply
// before present.
type Phase int

const (
	PhaseInput Phase = iota
	PhaseSense
	PhaseDecide
	PhaseApply
	PhaseSimulate
	PhasePresent
	phaseCount
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseSense:
		return "sense"
	case PhaseDecide:
		return "decide"
	case PhaseApply:
		return "apply"
	case PhaseSimulate:
		return "simulate"
	case PhasePresent:
		return "present"
	default:
		return "unknown"
	}
}

type Scheduler struct {
	phases [phaseCount][]System
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add appends a system to a phase. Systems within a phase run in the order
// they were added.
func (s *Scheduler) Add(phase Phase, system System) {
	if system == nil || phase < 0 || phase >= phaseCount {
		return
	}
	s.phases[phase] = append(s.phases[phase], system)
}

func (s *Scheduler) Update(w *World) {
	for _, systems := range s.phases {
		for _, system := range systems {
			system.Update(w)
		}
	}
}

// Systems returns a copy of the run order.
func (s *Scheduler) Systems() []System {
	var systems []System
	for _, phase := range s.phases {
		systems = append(systems, phase...)
	}
	return systems
}
