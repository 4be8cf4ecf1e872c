package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/roadgrid/ecs"
	"github.com/milk9111/roadgrid/ecs/component"
)

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Draw paints every Shape entity. Transform entities are mapped from world
// space (origin at screen center, y up); UINode entities are drawn as-is.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	bounds := screen.Bounds()
	vw, vh := viewportOf(w, float64(bounds.Dx()), float64(bounds.Dy()))

	entities := w.Query(component.ShapeComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		shape, _ := ecs.Get(w, e, component.ShapeComponent)
		x, y, width, height, ok := screenRect(w, e, vw, vh)
		if !ok {
			continue
		}
		fill := shape.Fill
		if fill == nil {
			fill = color.White
		}
		if shape.Radius > 0 {
			vector.DrawFilledCircle(screen, float32(x+width/2), float32(y+height/2), float32(shape.Radius), fill, true)
			continue
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), fill, false)
	}
}

// screenRect returns the entity's top-left corner and size in screen pixels.
func screenRect(w *ecs.World, e ecs.Entity, vw, vh float64) (x, y, width, height float64, ok bool) {
	if size, has := ecs.Get(w, e, component.SizeComponent); has {
		width, height = size.Width, size.Height
	}
	if node, has := ecs.Get(w, e, component.UINodeComponent); has {
		if width == 0 && height == 0 {
			width, height = node.Width, node.Height
		}
		return node.Left, node.Top(vh), width, height, true
	}
	if t, has := ecs.Get(w, e, component.TransformComponent); has {
		cx := vw/2 + t.X
		cy := vh/2 - t.Y
		return cx - width/2, cy - height/2, width, height, true
	}
	return 0, 0, 0, 0, false
}

// viewportOf returns the viewport the pointer was sampled against so drawn
// and dragged origins agree. The image size is used until input has run.
func viewportOf(w *ecs.World, fallbackW, fallbackH float64) (float64, float64) {
	pe, ok := w.First(component.PointerComponent.Kind())
	if !ok {
		return fallbackW, fallbackH
	}
	p, ok := ecs.Get(w, pe, component.PointerComponent)
	if !ok || p.ViewportW <= 0 || p.ViewportH <= 0 {
		return fallbackW, fallbackH
	}
	return p.ViewportW, p.ViewportH
}
