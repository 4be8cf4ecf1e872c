package component

import "github.com/milk9111/roadgrid/drag"

// Draggable marks an entity the pointer can pick up. Kind selects whether
// its position lives in a UINode (pixel) or a Transform (world). Order is the
// hit-test priority: lower values are tested first.
type Draggable struct {
	Kind  drag.Kind
	Order int
}

var DraggableComponent = NewComponent[Draggable]()
