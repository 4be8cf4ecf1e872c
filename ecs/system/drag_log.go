package system

import (
	"log"

	"github.com/milk9111/roadgrid/ecs"
	"github.com/milk9111/roadgrid/ecs/component"
)

// DragLogSystem prints drag events. It is only scheduled in debug mode.
type DragLogSystem struct {
	logf func(format string, args ...any)
}

func NewDragLogSystem() *DragLogSystem {
	return &DragLogSystem{logf: log.Printf}
}

func (s *DragLogSystem) Update(w *ecs.World) {
	for _, evt := range w.Events().Drain() {
		de, ok := evt.Data.(ecs.DragEvent)
		if !ok {
			continue
		}
		name := de.Entity.String()
		if n, ok := ecs.Get(w, de.Entity, component.NameComponent); ok && n.Value != "" {
			name = n.Value
		}
		s.logf("drag: %s %s at (%.1f, %.1f)", de.Kind, name, de.X, de.Y)
	}
}
