package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/roadgrid/ecs"
	"github.com/milk9111/roadgrid/ecs/component"
	"github.com/milk9111/roadgrid/layouts"
)

var defaultGridColor = color.NRGBA{R: 0x5c, G: 0x5f, B: 0x73, A: 0xff}

// SpawnGrid places a dot at every grid intersection in world space, from
// -HalfCols..HalfCols and -HalfRows..HalfRows cells around the origin.
func SpawnGrid(w *ecs.World, spec layouts.GridSpec) ([]ecs.Entity, error) {
	fill := layouts.ParseColor(spec.Color, defaultGridColor)
	out := make([]ecs.Entity, 0, (2*spec.HalfCols+1)*(2*spec.HalfRows+1))
	for col := -spec.HalfCols; col <= spec.HalfCols; col++ {
		for row := -spec.HalfRows; row <= spec.HalfRows; row++ {
			e := ecs.CreateEntity(w)
			if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{
				X: float64(col) * spec.Size,
				Y: float64(row) * spec.Size,
			}); err != nil {
				return out, fmt.Errorf("grid: add transform: %w", err)
			}
			if err := ecs.Add(w, e, component.ShapeComponent, &component.Shape{Fill: fill, Radius: spec.DotRadius}); err != nil {
				return out, fmt.Errorf("grid: add shape: %w", err)
			}
			if err := ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: component.LayerGrid}); err != nil {
				return out, fmt.Errorf("grid: add render layer: %w", err)
			}
			if err := ecs.Add(w, e, component.GridPointComponent, &component.GridPoint{}); err != nil {
				return out, fmt.Errorf("grid: add grid tag: %w", err)
			}
			if err := ecs.Add(w, e, component.EditorScreenComponent, &component.EditorScreen{}); err != nil {
				return out, fmt.Errorf("grid: add screen tag: %w", err)
			}
			out = append(out, e)
		}
	}
	return out, nil
}
