package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

var (
	// Down is screen-space down; gravity is positive Y.
	Down = cp.Vector{X: 0, Y: 1}
	Up   = cp.Vector{X: 0, Y: -1}
)

// CastResult reports the first obstacle along a cast.
type CastResult struct {
	Hit      bool
	Distance float64
}

// Caster casts a segment of length maxDistance from origin along dir
// against shapes whose category is in mask.
type Caster interface {
	Cast(origin, dir cp.Vector, maxDistance float64, mask uint) CastResult
}

// SpaceCaster casts against a Chipmunk space.
type SpaceCaster struct {
	space *cp.Space
}

func NewSpaceCaster(space *Space) *SpaceCaster {
	if space == nil {
		return &SpaceCaster{}
	}
	return &SpaceCaster{space: space.Space()}
}

func (c *SpaceCaster) Cast(origin, dir cp.Vector, maxDistance float64, mask uint) CastResult {
	if c == nil || c.space == nil || maxDistance <= 0 {
		return CastResult{}
	}
	end := origin.Add(dir.Normalize().Mult(maxDistance))
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, mask)
	info := c.space.SegmentQueryFirst(origin, end, 0, filter)
	if info.Shape == nil {
		return CastResult{}
	}
	return CastResult{Hit: true, Distance: info.Alpha * maxDistance}
}

// segmentAABBHit is a slab test of the segment origin+t*(dx,dy), t in [0,1],
// against an axis-aligned box. It returns the entry parameter.
func segmentAABBHit(x0, y0, dx, dy, minX, minY, maxX, maxY float64) (bool, float64) {
	tmin := 0.0
	tmax := 1.0

	if dx != 0 {
		invD := 1.0 / dx
		t1 := (minX - x0) * invD
		t2 := (maxX - x0) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	} else if x0 < minX || x0 > maxX {
		return false, 0
	}

	if dy != 0 {
		invD := 1.0 / dy
		t1 := (minY - y0) * invD
		t2 := (maxY - y0) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	} else if y0 < minY || y0 > maxY {
		return false, 0
	}

	if tmax >= tmin {
		return true, tmin
	}
	return false, 0
}
