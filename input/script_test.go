package input

import (
	"testing"

	"github.com/milk9111/platformer/prefabs"
)

func TestScriptKeysPoll(t *testing.T) {
	keys, err := NewScriptKeys([]byte(`
left := tick < 2
right := tick >= 2
run := tick == 3
jump := false
axis := tick >= 2 ? 0.5 : 0.0
`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	tests := []struct {
		tick        uint64
		left, right bool
		run         bool
		axis        float64
	}{
		{0, true, false, false, 0},
		{2, false, true, false, 0.5},
		{3, false, true, true, 0.5},
	}

	for _, tc := range tests {
		if err := keys.Poll(tc.tick); err != nil {
			t.Fatalf("poll %d: %v", tc.tick, err)
		}
		if keys.Pressed(ActionLeft) != tc.left || keys.Pressed(ActionRight) != tc.right || keys.Pressed(ActionRun) != tc.run {
			t.Fatalf("tick %d: unexpected levels %v", tc.tick, keys.levels)
		}
		if keys.Axis() != tc.axis {
			t.Fatalf("tick %d: expected axis %v, got %v", tc.tick, tc.axis, keys.Axis())
		}
	}
}

func TestScriptKeysRequiresBindings(t *testing.T) {
	if _, err := NewScriptKeys([]byte(`left := true`)); err == nil {
		t.Fatal("expected error for script missing bindings")
	}
}

func TestEmbeddedScriptsCompile(t *testing.T) {
	for _, name := range []string{"demo_run", "back_and_forth"} {
		t.Run(name, func(t *testing.T) {
			src, err := prefabs.LoadScript(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			keys, err := NewScriptKeys(src)
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			if err := keys.Poll(0); err != nil {
				t.Fatalf("poll: %v", err)
			}
		})
	}
}

func TestParseAction(t *testing.T) {
	for a := Action(0); a < ActionCount; a++ {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Fatalf("round trip failed for %v", a)
		}
	}
	if _, ok := ParseAction("dash"); ok {
		t.Fatal("expected unknown action")
	}
}
