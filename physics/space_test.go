package physics

import "testing"

func TestCharacterFallsOntoFloor(t *testing.T) {
	space := NewSpace(testLevel(), DefaultGravity)
	body, _ := space.AddCharacter(50, 100, 28, 56, 1)

	for i := 0; i < 180; i++ {
		space.Step(1.0 / 60.0)
	}

	// floor top is 400, half height 28
	if y := body.Position().Y; y < 368 || y > 373 {
		t.Fatalf("expected to rest near y=372, got %v", y)
	}
	if body.Angle() != 0 {
		t.Fatalf("character must not rotate, got %v", body.Angle())
	}
}
