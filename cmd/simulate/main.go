// Command simulate runs a level headless for a fixed number of ticks with a
// tengo script standing in for the keyboard, logging the character state.
package main

import (
	"flag"
	"log"

	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/scene"
)

func main() {
	ticks := flag.Int("ticks", 300, "number of ticks to simulate")
	script := flag.String("script", "demo_run", "input script in prefabs/scripts/")
	every := flag.Int("every", 10, "log state every n ticks (0 logs only the final tick)")
	levelName := flag.String("level", "demo", "level name in level/levels/")
	caster := flag.String("caster", scene.CasterChipmunk, "ground probe backend: cp or resolv")
	tps := flag.Int("tps", 60, "simulated ticks per second")
	flag.Parse()

	src, err := prefabs.LoadScript(*script)
	if err != nil {
		log.Fatalf("simulate: %v", err)
	}
	keys, err := input.NewScriptKeys(src)
	if err != nil {
		log.Fatalf("simulate: %v", err)
	}

	sc, err := scene.New(scene.Options{Level: *levelName, Caster: *caster, Keys: keys})
	if err != nil {
		log.Fatalf("simulate: %v", err)
	}
	if *tps > 0 {
		sc.World.SetTimeStep(1 / float64(*tps))
	}

	for i := 1; i <= *ticks; i++ {
		sc.Step()
		if (*every > 0 && i%*every == 0) || i == *ticks {
			logState(i, sc)
		}
	}
}

func logState(tick int, sc *scene.Scene) {
	ch := sc.Character()
	tf := sc.Transform()
	cam := sc.CameraState()
	if ch == nil || tf == nil {
		log.Printf("tick %4d: player missing", tick)
		return
	}
	st := ch.State
	line := "tick %4d: pos=(%7.1f, %7.1f) dir=%2d mode=%-4s speed=%7.1f grounded=%v"
	args := []any{tick, tf.X, tf.Y, st.Direction, st.Mode, st.SmoothedSpeed, st.Grounded}
	if cam != nil {
		line += " cam=(%.1f, %.1f)"
		args = append(args, cam.X, cam.Y)
	}
	log.Printf(line, args...)
}
