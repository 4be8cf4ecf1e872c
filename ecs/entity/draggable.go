package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/roadgrid/drag"
	"github.com/milk9111/roadgrid/ecs"
	"github.com/milk9111/roadgrid/ecs/component"
	"github.com/milk9111/roadgrid/layouts"
)

var defaultDraggableColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0x66}

// NewDraggable builds one editor element from its layout spec. order sets
// the hit-test priority.
func NewDraggable(w *ecs.World, spec layouts.ElementSpec, order int) (ecs.Entity, error) {
	kind, err := spec.Kind()
	if err != nil {
		return 0, err
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.NameComponent, &component.Name{Value: spec.Name}); err != nil {
		return 0, fmt.Errorf("draggable %s: add name: %w", spec.Name, err)
	}
	if err := ecs.Add(w, e, component.SizeComponent, &component.Size{Width: spec.Width, Height: spec.Height}); err != nil {
		return 0, fmt.Errorf("draggable %s: add size: %w", spec.Name, err)
	}

	switch kind {
	case drag.KindWorld:
		err = ecs.Add(w, e, component.TransformComponent, &component.Transform{X: spec.X, Y: spec.Y})
	default:
		err = ecs.Add(w, e, component.UINodeComponent, &component.UINode{
			Left:   spec.Left,
			Bottom: spec.Bottom,
			Width:  spec.Width,
			Height: spec.Height,
		})
	}
	if err != nil {
		return 0, fmt.Errorf("draggable %s: add position: %w", spec.Name, err)
	}

	if err := ecs.Add(w, e, component.DraggableComponent, &component.Draggable{Kind: kind, Order: order}); err != nil {
		return 0, fmt.Errorf("draggable %s: add draggable: %w", spec.Name, err)
	}
	if err := ecs.Add(w, e, component.ShapeComponent, &component.Shape{Fill: layouts.ParseColor(spec.Color, defaultDraggableColor)}); err != nil {
		return 0, fmt.Errorf("draggable %s: add shape: %w", spec.Name, err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: component.LayerDraggable}); err != nil {
		return 0, fmt.Errorf("draggable %s: add render layer: %w", spec.Name, err)
	}
	if err := ecs.Add(w, e, component.EditorScreenComponent, &component.EditorScreen{}); err != nil {
		return 0, fmt.Errorf("draggable %s: add screen tag: %w", spec.Name, err)
	}
	return e, nil
}
