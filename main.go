package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	scene := flag.String("scene", "", "scene yaml to load (defaults to the embedded prefabs/scene.yaml)")
	debug := flag.Bool("debug", false, "show the debug overlay (toggle with F3)")
	watch := flag.Bool("watch", false, "rebuild the session when the scene file changes")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("bridgefall")
	// One tick per displayed frame.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	game, err := NewGame(*scene, float64(w), float64(h), *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
