package screen

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/roadgrid/drag"
	"github.com/milk9111/roadgrid/ecs"
	"github.com/milk9111/roadgrid/ecs/component"
	"github.com/milk9111/roadgrid/ecs/entity"
	"github.com/milk9111/roadgrid/ecs/system"
	"github.com/milk9111/roadgrid/layouts"
)

var defaultBarColor = color.NRGBA{R: 0x1f, G: 0x20, B: 0x29, A: 0xff}

// Editor is the drag-and-drop editing screen. It owns the drag tracker for
// the lifetime of one visit.
type Editor struct {
	LayoutName string
	Debug      bool

	switchTo  Switcher
	buildUI   func(barHeight int, barColor color.Color, onExit func()) *ebitenui.UI
	tracker   *drag.Tracker[ecs.Entity]
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	ui        *ebitenui.UI
	layout    *layouts.EditorLayout
}

func NewEditor(layoutName string, debug bool, switchTo Switcher) *Editor {
	return &Editor{
		LayoutName: layoutName,
		Debug:      debug,
		switchTo:   switchTo,
		buildUI:    buildEditorUI,
		tracker:    drag.NewTracker[ecs.Entity](),
		render:     system.NewRenderSystem(),
	}
}

// Tracker exposes the drag state, mostly for tests and debug overlays.
func (e *Editor) Tracker() *drag.Tracker[ecs.Entity] {
	return e.tracker
}

// Enter spawns the grid, the bottom bar and the draggable elements.
func (e *Editor) Enter(w *ecs.World) error {
	e.tracker.Reset()

	layout, err := layouts.LoadEditorLayout(e.LayoutName)
	if err != nil {
		return fmt.Errorf("editor: %w", err)
	}
	e.layout = layout

	if _, err := entity.SpawnGrid(w, layout.Grid); err != nil {
		e.Exit(w)
		return fmt.Errorf("editor: spawn grid: %w", err)
	}
	for i, spec := range layout.Elements {
		if _, err := entity.NewDraggable(w, spec, i); err != nil {
			e.Exit(w)
			return fmt.Errorf("editor: spawn %s: %w", spec.Name, err)
		}
	}

	systems := []ecs.System{system.NewDragSystem(e.tracker)}
	if e.Debug {
		systems = append(systems, system.NewDragLogSystem())
	}
	e.scheduler = ecs.NewScheduler(systems...)

	if e.buildUI != nil {
		e.ui = e.buildUI(int(layout.BottomBar.Height), layouts.ParseColor(layout.BottomBar.Color, defaultBarColor), func() {
			if e.switchTo != nil {
				e.switchTo(StateLevelSelect)
			}
		})
	}

	log.Printf("editor: entered with %d elements from %s", len(layout.Elements), layout.Name)
	return nil
}

// Exit destroys everything the editor spawned and forces the drag state
// back to idle so no handle outlives the screen.
func (e *Editor) Exit(w *ecs.World) {
	e.tracker.Reset()
	for _, ent := range w.Query(component.EditorScreenComponent.Kind()) {
		w.DestroyEntity(ent)
	}
	e.scheduler = nil
	e.ui = nil
}

func (e *Editor) Update(w *ecs.World) {
	if e.ui != nil {
		e.ui.Update()
	}
	if e.scheduler != nil {
		e.scheduler.Update(w)
	}
}

func (e *Editor) Draw(w *ecs.World, dst *ebiten.Image) {
	e.render.Draw(w, dst)
	if e.ui != nil {
		e.ui.Draw(dst)
	}
}
