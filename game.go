package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/roadgrid/ecs"
	"github.com/milk9111/roadgrid/ecs/entity"
	"github.com/milk9111/roadgrid/ecs/system"
	"github.com/milk9111/roadgrid/layouts"
	"github.com/milk9111/roadgrid/screen"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

var backgroundColor = color.NRGBA{R: 0x14, G: 0x15, B: 0x1c, A: 0xff}

type Game struct {
	frames int
	debug  bool

	world   *ecs.World
	input   *system.InputSystem
	screens map[screen.State]screen.Screen
	current screen.State
	next    *screen.State
	entered bool

	viewportW float64
	viewportH float64

	watcher    *layouts.Watcher
	layoutName string
	layoutMod  time.Time
}

func NewGame(start screen.State, layoutName string, debug bool) (*Game, error) {
	g := &Game{
		debug:      debug,
		world:      ecs.NewWorld(),
		current:    start,
		viewportW:  baseWidth,
		viewportH:  baseHeight,
		layoutName: layoutName,
	}
	g.layoutMod, _ = layouts.ModTime(layoutName)

	if _, err := entity.NewPointer(g.world); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	g.input = system.NewInputSystem(system.EbitenPointer{ViewportFunc: g.viewport})

	g.screens = map[screen.State]screen.Screen{
		screen.StateLevelSelect: screen.NewLevelSelect(g.SwitchTo),
		screen.StateEditor:      screen.NewEditor(layoutName, debug, g.SwitchTo),
	}
	return g, nil
}

// WatchLayouts re-enters the editor whenever a layout file in dir changes.
func (g *Game) WatchLayouts(dir string) error {
	w, err := layouts.NewWatcher(dir)
	if err != nil {
		return fmt.Errorf("game: watch %s: %w", dir, err)
	}
	g.watcher = w
	return nil
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

// SwitchTo queues a screen change for the start of the next frame.
func (g *Game) SwitchTo(next screen.State) {
	g.next = &next
}

func (g *Game) viewport() (float64, float64) {
	return g.viewportW, g.viewportH
}

func (g *Game) Update() error {
	g.frames++

	if !g.entered {
		if err := g.screens[g.current].Enter(g.world); err != nil {
			return err
		}
		g.entered = true
	}

	if g.next != nil && *g.next != g.current {
		next := *g.next
		g.next = nil
		g.screens[g.current].Exit(g.world)
		if err := g.screens[next].Enter(g.world); err != nil {
			return err
		}
		log.Printf("game: %s -> %s", g.current, next)
		g.current = next
	}
	g.next = nil

	g.pollLayouts()

	g.input.Update(g.world)
	g.screens[g.current].Update(g.world)
	return nil
}

func (g *Game) pollLayouts() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("game: layout watcher: %v", err)
		}
	default:
	}
	names := g.watcher.Poll()
	if g.current != screen.StateEditor || !g.layoutChanged(names) {
		return
	}
	ed := g.screens[screen.StateEditor]
	ed.Exit(g.world)
	if err := ed.Enter(g.world); err != nil {
		log.Printf("game: reload layout: %v", err)
		return
	}
	log.Printf("game: reloaded editor layout")
}

// layoutChanged reports whether names include the editor's layout and its
// file on disk is newer than the last load. A missing file counts as a change
// so the embedded copy is picked up again.
func (g *Game) layoutChanged(names []string) bool {
	want := filepath.Base(filepath.FromSlash(g.layoutName))
	found := false
	for _, name := range names {
		if name == want {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	mod, ok := layouts.ModTime(g.layoutName)
	if ok && mod.Equal(g.layoutMod) {
		return false
	}
	g.layoutMod = mod
	return true
}

func (g *Game) Draw(dst *ebiten.Image) {
	dst.Fill(backgroundColor)
	g.screens[g.current].Draw(g.world, dst)
	if g.debug {
		ebitenutil.DebugPrint(dst, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	g.viewportW, g.viewportH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
