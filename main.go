package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug drawing")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "demo", "level name in level/levels/ (basename, .tmx optional); a copy on disk there overrides the embedded one")
	script := flag.String("script", "", "drive input from prefabs/scripts/<name>.tengo instead of the keyboard")
	watch := flag.Bool("watch", false, "reload prefabs and scripts when they change on disk")
	caster := flag.String("caster", "cp", "ground probe backend: cp or resolv")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("platformer")

	game, err := NewGame(gameOptions{
		level:  *levelName,
		script: *script,
		caster: *caster,
		watch:  *watch,
		debug:  *debug,
	})
	if err != nil {
		log.Fatalf("platformer: %v", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
