package input

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

var scriptVars = [ActionCount]string{
	ActionLeft:  "left",
	ActionRight: "right",
	ActionRun:   "run",
	ActionJump:  "jump",
}

// ScriptKeys drives input from a tengo script. The script is run once per
// tick with the global `tick` set and must assign the booleans `left`,
// `right`, `run` and `jump`. An optional float `axis` supplies analog
// intensity.
type ScriptKeys struct {
	compiled *tengo.Compiled
	levels   [ActionCount]bool
	axis     float64
}

func NewScriptKeys(src []byte) (*ScriptKeys, error) {
	script := tengo.NewScript(src)
	_ = script.Add("tick", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input: compile script: %w", err)
	}
	for _, name := range scriptVars {
		if !compiled.IsDefined(name) {
			return nil, fmt.Errorf("input: script does not define %q", name)
		}
	}
	return &ScriptKeys{compiled: compiled}, nil
}

func (s *ScriptKeys) Poll(tick uint64) error {
	if err := s.compiled.Set("tick", int64(tick)); err != nil {
		return fmt.Errorf("input: set tick: %w", err)
	}
	if err := s.compiled.Run(); err != nil {
		return fmt.Errorf("input: run script at tick %d: %w", tick, err)
	}
	for a, name := range scriptVars {
		s.levels[a] = s.compiled.Get(name).Bool()
	}
	s.axis = 0
	if s.compiled.IsDefined("axis") {
		s.axis = s.compiled.Get("axis").Float()
	}
	return nil
}

func (s *ScriptKeys) Pressed(a Action) bool {
	if a < 0 || a >= ActionCount {
		return false
	}
	return s.levels[a]
}

func (s *ScriptKeys) Axis() float64 {
	return s.axis
}
