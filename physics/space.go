package physics

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/level"
)

const (
	DefaultGravity  = 1800.0
	solverIters     = 20
	surfaceFriction = 0.8
)

// Space owns the Chipmunk space and the static level geometry.
type Space struct {
	space *cp.Space
}

// NewSpace creates a space with downward gravity and the level's solids.
func NewSpace(lvl *level.Level, gravity float64) *Space {
	space := cp.NewSpace()
	space.Iterations = solverIters
	space.SetGravity(cp.Vector{X: 0, Y: gravity})

	s := &Space{space: space}
	if lvl != nil {
		for _, r := range lvl.Solids {
			s.AddStatic(r)
		}
		s.addBounds(lvl)
		log.Printf("physics: built space with %d solids, %.0fx%.0f bounds", len(lvl.Solids), lvl.Width, lvl.Height)
	}
	return s
}

// Space returns the underlying Chipmunk space.
func (s *Space) Space() *cp.Space {
	if s == nil {
		return nil
	}
	return s.space
}

// AddStatic adds one static box to the space.
func (s *Space) AddStatic(r level.Rect) *cp.Shape {
	if s == nil || s.space == nil || r.W <= 0 || r.H <= 0 {
		return nil
	}
	category := CategorySolid
	if r.Platform {
		category = CategoryPlatform
	}
	bb := cp.BB{L: r.X, B: r.Y, R: r.X + r.W, T: r.Y + r.H}
	shape := cp.NewBox2(s.space.StaticBody, bb, 0)
	shape.SetFriction(surfaceFriction)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, category, cp.ALL_CATEGORIES))
	s.space.AddShape(shape)
	return shape
}

// AddCharacter creates a dynamic, non-rotating box body centred on (x, y).
func (s *Space) AddCharacter(x, y, w, h, mass float64) (*cp.Body, *cp.Shape) {
	if s == nil || s.space == nil {
		return nil, nil
	}
	if mass <= 0 {
		mass = 1
	}
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: x, Y: y})
	shape := cp.NewBox(body, w, h, 0)
	// zero friction so horizontal velocity is owned by the controller.
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, CategoryCharacter, cp.ALL_CATEGORIES))
	s.space.AddBody(body)
	s.space.AddShape(shape)
	return body, shape
}

// Step advances the simulation by dt seconds.
func (s *Space) Step(dt float64) {
	if s == nil || s.space == nil || dt <= 0 {
		return
	}
	s.space.Step(dt)
}

func (s *Space) addBounds(lvl *level.Level) {
	worldW, worldH := lvl.Width, lvl.Height
	if worldW <= 0 || worldH <= 0 {
		return
	}
	const thickness = 1.0
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}},
		{a: cp.Vector{X: 0, Y: worldH}, b: cp.Vector{X: worldW, Y: worldH}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldH}},
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldH}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(s.space.StaticBody, seg.a, seg.b, thickness)
		shape.SetFriction(surfaceFriction)
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, CategorySolid, cp.ALL_CATEGORIES))
		s.space.AddShape(shape)
	}
}
