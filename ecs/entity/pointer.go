package entity

import (
	"fmt"

	"github.com/milk9111/roadgrid/ecs"
	"github.com/milk9111/roadgrid/ecs/component"
)

// NewPointer creates the single entity InputSystem writes mouse state into.
func NewPointer(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PointerComponent, &component.Pointer{}); err != nil {
		return 0, fmt.Errorf("pointer: add pointer: %w", err)
	}
	return e, nil
}
