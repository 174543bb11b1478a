package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/level"
	"github.com/solarlune/resolv"
)

const (
	resolvCellSize = 16
	probeTag       = "probe"
)

// ResolvCaster casts against an AABB space built from level rectangles. It
// uses resolv's cell grid as the broad phase and an exact slab test on the
// candidates. Only axis-aligned level geometry is supported.
type ResolvCaster struct {
	space *resolv.Space
	probe *resolv.Object
}

// NewResolvCaster builds a resolv space holding the level's solids.
func NewResolvCaster(lvl *level.Level) *ResolvCaster {
	w, h := 1, 1
	if lvl != nil {
		w = int(math.Ceil(lvl.Width))
		h = int(math.Ceil(lvl.Height))
	}
	space := resolv.NewSpace(w, h, resolvCellSize, resolvCellSize)
	if lvl != nil {
		for _, r := range lvl.Solids {
			tag := CategoryTag(CategorySolid)
			if r.Platform {
				tag = CategoryTag(CategoryPlatform)
			}
			obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tag)
			obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
			space.Add(obj)
		}
	}
	probe := resolv.NewObject(0, 0, 1, 1, probeTag)
	space.Add(probe)
	return &ResolvCaster{space: space, probe: probe}
}

func (c *ResolvCaster) Cast(origin, dir cp.Vector, maxDistance float64, mask uint) CastResult {
	if c == nil || c.space == nil || maxDistance <= 0 {
		return CastResult{}
	}
	tags := MaskTags(mask)
	if len(tags) == 0 {
		return CastResult{}
	}
	d := dir.Normalize().Mult(maxDistance)

	// the probe spans the cast's bounding box so the cell check sees every
	// object the segment could cross
	const halfWidth = 0.5
	c.probe.X = math.Min(origin.X, origin.X+d.X) - halfWidth
	c.probe.Y = math.Min(origin.Y, origin.Y+d.Y) - halfWidth
	c.probe.W = math.Abs(d.X) + 2*halfWidth
	c.probe.H = math.Abs(d.Y) + 2*halfWidth
	c.probe.Update()

	check := c.probe.Check(0, 0, tags...)
	if check == nil {
		return CastResult{}
	}

	best := math.Inf(1)
	for _, obj := range check.ObjectsByTags(tags...) {
		hit, t := segmentAABBHit(origin.X, origin.Y, d.X, d.Y, obj.X, obj.Y, obj.X+obj.W, obj.Y+obj.H)
		if hit && t < best {
			best = t
		}
	}
	if math.IsInf(best, 1) {
		return CastResult{}
	}
	return CastResult{Hit: true, Distance: best * maxDistance}
}
