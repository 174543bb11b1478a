package main

import (
	"fmt"
	"log"
	"path"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/ecs/render"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/scene"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	frames int
	debug  bool
	paused bool

	scene   *scene.Scene
	keys    *keyboardKeys
	script  string
	watcher *prefabs.Watcher
	changes changeSource
	ui      *ebitenui.UI
}

// changeSource reports the base names of prefab files edited on disk.
type changeSource interface {
	Pending() []string
}

// pollEvery is how many frames pass between mod-time polls when fsnotify is
// unavailable.
const pollEvery = 30

type gameOptions struct {
	level  string
	script string
	caster string
	watch  bool
	debug  bool
}

func NewGame(opts gameOptions) (*Game, error) {
	inputSpec, err := prefabs.LoadInputSpec()
	if err != nil {
		return nil, err
	}
	keys, err := newKeyboardKeys(inputSpec)
	if err != nil {
		return nil, err
	}

	var source input.KeySource = keys
	if opts.script != "" {
		if source, err = loadScriptKeys(opts.script); err != nil {
			return nil, err
		}
	}

	sc, err := scene.New(scene.Options{Level: opts.level, Caster: opts.caster, Keys: source})
	if err != nil {
		return nil, err
	}
	sc.World.SetTimeStep(1 / float64(ebiten.TPS()))

	g := &Game{
		debug:  opts.debug,
		scene:  sc,
		keys:   keys,
		script: opts.script,
	}
	g.ui = NewTuningUI(g)

	if opts.watch {
		g.watcher, err = prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
		if err == nil {
			g.changes = g.watcher
		} else {
			log.Printf("watch: fsnotify unavailable, polling mod times: %v", err)
			g.watcher = nil
			names := []string{prefabs.CharacterFile, prefabs.CameraFile, prefabs.InputFile}
			if opts.script != "" {
				names = append(names, path.Join("scripts", strings.TrimSuffix(opts.script, ".tengo")+".tengo"))
			}
			g.changes = prefabs.NewModTimePoller(names...)
		}
	}
	return g, nil
}

func loadScriptKeys(name string) (*input.ScriptKeys, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", name, err)
	}
	return input.NewScriptKeys(src)
}

func (g *Game) Update() error {
	g.frames++
	g.reloadChanged()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	g.scene.Step()
	return nil
}

func (g *Game) reloadChanged() {
	if g.changes == nil {
		return
	}
	if g.watcher != nil {
		select {
		case err := <-g.watcher.Errors:
			log.Printf("watch: %v", err)
		default:
		}
	} else if g.frames%pollEvery != 0 {
		return
	}

	for _, name := range g.changes.Pending() {
		switch {
		case name == prefabs.InputFile:
			spec, err := prefabs.LoadInputSpec()
			if err == nil {
				var keys *keyboardKeys
				if keys, err = newKeyboardKeys(spec); err == nil {
					*g.keys = *keys
				}
			}
			if err != nil {
				log.Printf("watch: reload %s: %v", name, err)
			}
		case g.script != "" && filepath.Ext(name) == ".tengo":
			keys, err := loadScriptKeys(g.script)
			if err != nil {
				log.Printf("watch: reload %s: %v", name, err)
				continue
			}
			g.scene.Input.SetSource(keys)
		default:
			if err := g.scene.Reload(name); err != nil {
				log.Printf("watch: reload %s: %v", name, err)
			}
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	view := render.CameraView(g.scene.World, baseWidth, baseHeight)
	render.DrawLevel(screen, g.scene.Level, view)
	render.DrawCharacters(screen, g.scene.World, view)

	if g.debug {
		render.DrawPhysicsDebug(g.scene.Space.Space(), view, screen)
		render.DrawProbe(g.scene.World, g.scene.Player, view, screen)
		render.DrawCharacterDebug(g.scene.World, g.scene.Player, screen)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  caster: %s  [Esc] tune  [F3] debug", ebiten.ActualFPS(), g.scene.CasterName()))

	if g.paused {
		if ch := g.scene.Character(); ch != nil {
			c := ch.Config
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("smooth=%v stopSlide=%v airControl=%v runInAir=%v jumpInAir=%v",
				c.SmoothMovementChange, c.StopSlideWhenIdle, c.CanControlMovementInAir, c.CanRunWhenNotGrounded, c.CanJumpWhenNotGrounded), 10, baseHeight-20)
		}
		g.ui.Draw(screen)
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
