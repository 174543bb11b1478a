package physics

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/level"
)

func testLevel() *level.Level {
	return &level.Level{
		Name:   "test",
		Width:  640,
		Height: 480,
		Solids: []level.Rect{
			{X: 0, Y: 400, W: 640, H: 80},
			{X: 200, Y: 300, W: 100, H: 16, Platform: true},
		},
	}
}

func TestCasters(t *testing.T) {
	lvl := testLevel()
	space := NewSpace(lvl, DefaultGravity)

	casters := map[string]Caster{
		"chipmunk": NewSpaceCaster(space),
		"resolv":   NewResolvCaster(lvl),
	}

	tests := []struct {
		name     string
		origin   cp.Vector
		max      float64
		mask     uint
		wantHit  bool
		wantDist float64
	}{
		{"floor_in_range", cp.Vector{X: 50, Y: 380}, 32, CategorySolid, true, 20},
		{"floor_out_of_range", cp.Vector{X: 50, Y: 300}, 32, CategorySolid, false, 0},
		{"platform_masked_out", cp.Vector{X: 250, Y: 290}, 32, CategorySolid, false, 0},
		{"platform_in_mask", cp.Vector{X: 250, Y: 290}, 32, CategorySolid | CategoryPlatform, true, 10},
		{"nearest_wins", cp.Vector{X: 250, Y: 290}, 200, CategorySolid | CategoryPlatform, true, 10},
		{"character_only_mask", cp.Vector{X: 50, Y: 380}, 32, CategoryCharacter, false, 0},
	}

	for name, caster := range casters {
		for _, tc := range tests {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				got := caster.Cast(tc.origin, Down, tc.max, tc.mask)
				if got.Hit != tc.wantHit {
					t.Fatalf("expected hit=%v, got %+v", tc.wantHit, got)
				}
				if tc.wantHit && math.Abs(got.Distance-tc.wantDist) > 0.01 {
					t.Fatalf("expected distance %v, got %v", tc.wantDist, got.Distance)
				}
			})
		}
	}
}

func TestSpaceCasterIgnoresCharacters(t *testing.T) {
	space := NewSpace(testLevel(), DefaultGravity)
	space.AddCharacter(50, 350, 28, 56, 1)

	got := NewSpaceCaster(space).Cast(cp.Vector{X: 50, Y: 350}, Down, 60, CategorySolid|CategoryPlatform)
	if !got.Hit || math.Abs(got.Distance-50) > 0.01 {
		t.Fatalf("expected floor at 50 past own collider, got %+v", got)
	}
}

func TestNilCasters(t *testing.T) {
	var sc *SpaceCaster
	var rc *ResolvCaster
	if sc.Cast(cp.Vector{}, Down, 10, CategorySolid).Hit || rc.Cast(cp.Vector{}, Down, 10, CategorySolid).Hit {
		t.Fatal("nil casters must miss")
	}
}

func TestParseMask(t *testing.T) {
	tests := []struct {
		names   []string
		want    uint
		wantErr bool
	}{
		{nil, CategorySolid | CategoryPlatform, false},
		{[]string{"solid"}, CategorySolid, false},
		{[]string{" Platform ", "solid"}, CategorySolid | CategoryPlatform, false},
		{[]string{"lava"}, 0, true},
	}

	for _, tc := range tests {
		got, err := ParseMask(tc.names)
		if (err != nil) != tc.wantErr {
			t.Fatalf("%v: unexpected error %v", tc.names, err)
		}
		if got != tc.want {
			t.Fatalf("%v: expected %b, got %b", tc.names, tc.want, got)
		}
	}

	tags := MaskTags(CategorySolid | CategoryPlatform)
	if len(tags) != 2 || tags[0] != "platform" || tags[1] != "solid" {
		t.Fatalf("unexpected tags %v", tags)
	}
}
