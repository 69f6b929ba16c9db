// Command termplay runs the game in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/bridgefall/obj"
	"github.com/milk9111/bridgefall/prefabs"
	"github.com/milk9111/bridgefall/render"
	"github.com/milk9111/bridgefall/system"
)

type options struct {
	scene      string
	cellWidth  float64
	cellHeight float64
	hold       int
	fps        int
	logFile    string
}

func main() {
	if err := realMain(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "termplay:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("termplay", flag.ContinueOnError)
	fs.StringVar(&opts.scene, "scene", "", "scene yaml to load (defaults to the embedded prefabs/scene.yaml)")
	fs.Float64Var(&opts.cellWidth, "cell-w", 8, "world units per terminal column")
	fs.Float64Var(&opts.cellHeight, "cell-h", 16, "world units per terminal row")
	fs.IntVar(&opts.hold, "hold", 20, "ticks a key stays held after its last press")
	fs.IntVar(&opts.fps, "fps", 60, "ticks per second")
	fs.StringVar(&opts.logFile, "log", "", "write logs to this file instead of discarding them")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

// realMain returns startup and run errors so main can print them once the
// terminal has been restored. Logging is only redirected after the screen
// is up.
func realMain(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	spec, err := prefabs.LoadSceneSpec(opts.scene)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	restore, err := setupLog(opts.logFile)
	if err != nil {
		return err
	}
	defer restore()

	return run(screen, spec, opts.cellWidth, opts.cellHeight, opts.hold, opts.fps)
}

// The terminal is the display, so logs go to a file or nowhere. The returned
// func puts the previous writer back.
func setupLog(path string) (func(), error) {
	prev := log.Writer()
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(prev) }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(prev)
		_ = f.Close()
	}, nil
}

func run(screen tcell.Screen, spec *prefabs.SceneSpec, cellWidth, cellHeight float64, hold, fps int) error {
	if fps < 1 {
		fps = 60
	}
	surface := render.NewTerminalSurface(screen, cellWidth, cellHeight)
	input := obj.NewInputState()
	latch := newKeyLatch(input, hold)

	newWorld := func() *system.World {
		w, h := surface.Viewport()
		return system.NewWorld(spec, input, system.Viewport{Width: w, Height: h})
	}
	loop := system.NewLoop(newWorld())
	log.Printf("scene %q loaded: %d platforms", spec.Name, len(spec.Platforms))

	quit := make(chan struct{})
	reset := make(chan struct{}, 1)
	resized := make(chan struct{}, 1)
	go func() {
		defer close(quit)
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventResize:
				select {
				case resized <- struct{}{}:
				default:
				}
			case *tcell.EventKey:
				cmd, action := translateKey(ev)
				switch cmd {
				case commandQuit:
					return
				case commandReset:
					select {
					case reset <- struct{}{}:
					default:
					}
				case commandAction:
					latch.press(action)
				}
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	for {
		select {
		case <-quit:
			return nil
		case <-reset:
			latch.releaseAll()
			loop.Reset(newWorld())
			log.Printf("scene %q reset", spec.Name)
		case <-resized:
			screen.Sync()
			loop.World.SetViewport(surface.Viewport())
		case <-ticker.C:
			latch.tick()
			loop.Tick(surface)
			screen.Show()
		}
	}
}
