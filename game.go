package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/bridgefall/obj"
	"github.com/milk9111/bridgefall/prefabs"
	"github.com/milk9111/bridgefall/render/ebitensurface"
	"github.com/milk9111/bridgefall/system"
)

type Game struct {
	scenePath string
	debug     bool

	spec    *prefabs.SceneSpec
	input   *obj.InputState
	loop    *system.Loop
	surface *ebitensurface.EbitenSurface
	watcher *prefabs.Watcher
	// sceneMod is the mtime of the scene file the session was built from.
	sceneMod time.Time

	width, height float64
}

// NewGame loads the scene and builds the first session for a viewport of
// width x height. With watch set, edits to the scene file rebuild the session.
func NewGame(scenePath string, width, height float64, debug, watch bool) (*Game, error) {
	spec, err := prefabs.LoadSceneSpec(scenePath)
	if err != nil {
		return nil, err
	}
	log.Printf("scene %q loaded: %d platforms", spec.Name, len(spec.Platforms))

	input := obj.NewInputState()
	g := &Game{
		scenePath: scenePath,
		debug:     debug,
		spec:      spec,
		input:     input,
		surface:   ebitensurface.NewEbitenSurface(nil),
		width:     width,
		height:    height,
	}
	g.loop = system.NewLoop(g.newWorld())
	g.sceneMod, _ = prefabs.ModTime(g.sceneFile())

	if watch {
		w, err := prefabs.NewWatcher(g.watchDir())
		if err != nil {
			log.Printf("scene watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) newWorld() *system.World {
	return system.NewWorld(g.spec, g.input, system.Viewport{Width: g.width, Height: g.height})
}

func (g *Game) sceneFile() string {
	if g.scenePath == "" {
		return filepath.Join("prefabs", prefabs.DefaultScene)
	}
	return g.scenePath
}

func (g *Game) watchDir() string {
	return filepath.Dir(g.sceneFile())
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}

	g.drainWatcher()
	pollInput(g.input)
	return nil
}

func (g *Game) reset() {
	g.loop.Reset(g.newWorld())
	log.Printf("scene %q reset", g.spec.Name)
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if filepath.Base(name) != filepath.Base(g.sceneFile()) {
				continue
			}
			g.reload()
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("scene watch: %v", err)
			}
		default:
			return
		}
	}
}

// reload keeps the running session when the edited scene does not load.
// Events that leave the file's mtime unchanged are ignored.
func (g *Game) reload() {
	mod, changed := prefabs.Changed(g.sceneFile(), g.sceneMod)
	if !changed {
		return
	}
	g.sceneMod = mod

	spec, err := prefabs.LoadSceneSpec(g.scenePath)
	if err != nil {
		log.Printf("scene reload failed: %v", err)
		return
	}
	g.spec = spec
	g.loop.Reset(g.newWorld())
	log.Printf("scene %q reloaded", spec.Name)
}

// Draw is the per-frame tick: the loop draws the previous state and then
// advances physics and the bridge.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Target(screen)
	g.loop.Tick(g.surface)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f\n%s", ebiten.ActualFPS(), system.DebugText(g.loop.World)))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.loop.World.SetViewport(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
