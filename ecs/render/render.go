package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/level"
	"golang.org/x/image/colornames"
)

// View maps world coordinates to the screen. The camera position is the
// world point drawn at the screen centre.
type View struct {
	CamX, CamY    float64
	Width, Height float64
}

// CameraView builds a view from the first camera in the world.
func CameraView(w *ecs.World, width, height float64) View {
	v := View{Width: width, Height: height, CamX: width / 2, CamY: height / 2}
	e, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return v
	}
	if cam, ok := ecs.Get(w, e, component.CameraComponent); ok {
		v.CamX, v.CamY = cam.X, cam.Y
	}
	return v
}

func (v View) ToScreen(x, y float64) (float64, float64) {
	return x - v.CamX + v.Width/2, y - v.CamY + v.Height/2
}

// DrawLevel fills the level's solids; platforms get a lighter colour.
func DrawLevel(screen *ebiten.Image, lvl *level.Level, view View) {
	if lvl == nil {
		return
	}
	for _, r := range lvl.Solids {
		clr := colornames.Slategray
		if r.Platform {
			clr = colornames.Lightsteelblue
		}
		x, y := view.ToScreen(r.X, r.Y)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(r.W), float32(r.H), clr, false)
	}
}

// DrawCharacters draws every character's collider, tinted by mode.
func DrawCharacters(screen *ebiten.Image, w *ecs.World, view View) {
	ecs.ForEach2(w, component.CharacterComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, ch *component.Character, pb *component.PhysicsBody) {
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			return
		}
		clr := colornames.Crimson
		switch ch.State.Mode {
		case component.ModeWalk:
			clr = colornames.Orange
		case component.ModeRun:
			clr = colornames.Gold
		}
		x, y := view.ToScreen(t.X-pb.Width/2, t.Y-pb.Height/2)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(pb.Width), float32(pb.Height), clr, false)
		if !ch.State.Grounded {
			vector.StrokeRect(screen, float32(x), float32(y), float32(pb.Width), float32(pb.Height), 2, colornames.White, false)
		}
	})
}
