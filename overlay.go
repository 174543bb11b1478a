package main

import (
	"image/color"
	"log"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/platformer/ecs/component"
)

// NewTuningUI builds the pause panel. Each button flips one controller
// setting of the player; the current values are printed by the HUD.
func NewTuningUI(g *Game) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("Paused", &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(centered),
	)

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(centered),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	toggle := func(label string, flag func(cfg *component.CharacterConfig) *bool) *widget.Button {
		return button(label, func() {
			ch := g.scene.Character()
			if ch == nil {
				return
			}
			v := flag(&ch.Config)
			*v = !*v
		})
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth/3, baseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(toggle("Smooth movement", func(c *component.CharacterConfig) *bool { return &c.SmoothMovementChange }))
	panel.AddChild(toggle("Stop slide when idle", func(c *component.CharacterConfig) *bool { return &c.StopSlideWhenIdle }))
	panel.AddChild(toggle("Air control", func(c *component.CharacterConfig) *bool { return &c.CanControlMovementInAir }))
	panel.AddChild(toggle("Run in air", func(c *component.CharacterConfig) *bool { return &c.CanRunWhenNotGrounded }))
	panel.AddChild(toggle("Jump in air", func(c *component.CharacterConfig) *bool { return &c.CanJumpWhenNotGrounded }))
	panel.AddChild(button("Swap ground caster", func() {
		if _, err := g.scene.ToggleCaster(); err != nil {
			log.Printf("overlay: %v", err)
		}
	}))
	panel.AddChild(button("Resume", func() {
		g.paused = false
	}))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
