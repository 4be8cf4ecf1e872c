package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/roadgrid/ecs"
	"github.com/milk9111/roadgrid/ecs/component"
)

// PointerSource supplies one frame of mouse state.
type PointerSource interface {
	Cursor() (x, y float64)
	JustPressed() bool
	JustReleased() bool
	Viewport() (w, h float64)
}

// EbitenPointer reads the left mouse button from ebiten. Viewport reports
// the logical screen size the game laid out last.
type EbitenPointer struct {
	ViewportFunc func() (w, h float64)
}

func (p EbitenPointer) Cursor() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (p EbitenPointer) JustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (p EbitenPointer) JustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

func (p EbitenPointer) Viewport() (float64, float64) {
	if p.ViewportFunc == nil {
		return 0, 0
	}
	return p.ViewportFunc()
}

type InputSystem struct {
	source PointerSource
}

func NewInputSystem(source PointerSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.source == nil {
		return
	}

	x, y := i.source.Cursor()
	vw, vh := i.source.Viewport()
	inWindow := x >= 0 && y >= 0 && x < vw && y < vh
	pressed := i.source.JustPressed()
	released := i.source.JustReleased()

	ecs.ForEach(w, component.PointerComponent, func(e ecs.Entity, p *component.Pointer) {
		p.X = x
		p.Y = y
		p.Pressed = pressed
		p.Released = released
		p.InWindow = inWindow
		p.ViewportW = vw
		p.ViewportH = vh
	})
}
