package system

import (
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/roadgrid/drag"
	"github.com/milk9111/roadgrid/ecs"
	"github.com/milk9111/roadgrid/ecs/component"
)

// DragSystem moves at most one Draggable entity per frame. The tracker is
// owned by the screen and survives across frames.
type DragSystem struct {
	tracker *drag.Tracker[ecs.Entity]
}

func NewDragSystem(tracker *drag.Tracker[ecs.Entity]) *DragSystem {
	return &DragSystem{tracker: tracker}
}

func (d *DragSystem) Update(w *ecs.World) {
	if w == nil || d.tracker == nil {
		return
	}

	pointerEntity, ok := w.First(component.PointerComponent.Kind())
	if !ok {
		panic("drag system: no pointer entity")
	}
	p, _ := ecs.Get(w, pointerEntity, component.PointerComponent)
	if p.ViewportW <= 0 || p.ViewportH <= 0 {
		panic("drag system: no viewport")
	}
	if !p.InWindow {
		return
	}

	sample := drag.Sample{
		Pressed:  p.Pressed,
		Released: p.Released,
		InWindow: p.InWindow,
		Cursor:   cp.Vector{X: p.X, Y: p.Y},
		Viewport: cp.Vector{X: p.ViewportW, Y: p.ViewportH},
	}
	arena := &worldArena{w: w, viewportH: p.ViewportH}

	before, _, _ := d.tracker.Held()
	switch d.tracker.Step(sample, arena) {
	case drag.TransitionStarted:
		held, _, _ := d.tracker.Held()
		d.push(w, arena, held, ecs.DragEventStarted)
	case drag.TransitionReleased:
		d.push(w, arena, before, ecs.DragEventReleased)
	}
}

func (d *DragSystem) push(w *ecs.World, arena *worldArena, e ecs.Entity, kind ecs.DragEventKind) {
	evt := ecs.DragEvent{Entity: e, Kind: kind}
	if el, ok := arena.Resolve(e); ok {
		evt.X, evt.Y = el.Anchor.X, el.Anchor.Y
	}
	w.Events().Push(ecs.Event{Type: string(kind), Data: evt})
}

// worldArena exposes Draggable entities to the drag engine. Pixel entities
// are read from and written to their UINode (converted to a top-left anchor);
// world entities use their Transform center.
type worldArena struct {
	w         *ecs.World
	viewportH float64
}

func (a *worldArena) Elements() []drag.Element[ecs.Entity] {
	ents := a.w.Query(component.DraggableComponent.Kind(), component.SizeComponent.Kind())
	order := func(e ecs.Entity) int {
		dr, _ := ecs.Get(a.w, e, component.DraggableComponent)
		return dr.Order
	}
	sort.SliceStable(ents, func(i, j int) bool {
		oi, oj := order(ents[i]), order(ents[j])
		if oi != oj {
			return oi < oj
		}
		return uint64(ents[i]) < uint64(ents[j])
	})

	out := make([]drag.Element[ecs.Entity], 0, len(ents))
	for _, e := range ents {
		if el, ok := a.Resolve(e); ok {
			out = append(out, el)
		}
	}
	return out
}

func (a *worldArena) Resolve(e ecs.Entity) (drag.Element[ecs.Entity], bool) {
	if !a.w.IsAlive(e) {
		return drag.Element[ecs.Entity]{}, false
	}
	dr, ok := ecs.Get(a.w, e, component.DraggableComponent)
	if !ok {
		return drag.Element[ecs.Entity]{}, false
	}
	size, ok := ecs.Get(a.w, e, component.SizeComponent)
	if !ok {
		return drag.Element[ecs.Entity]{}, false
	}

	el := drag.Element[ecs.Entity]{
		ID:   e,
		Size: cp.Vector{X: size.Width, Y: size.Height},
		Kind: dr.Kind,
	}
	switch dr.Kind {
	case drag.KindWorld:
		t, ok := ecs.Get(a.w, e, component.TransformComponent)
		if !ok {
			return drag.Element[ecs.Entity]{}, false
		}
		el.Anchor = cp.Vector{X: t.X, Y: t.Y}
	default:
		node, ok := ecs.Get(a.w, e, component.UINodeComponent)
		if !ok {
			return drag.Element[ecs.Entity]{}, false
		}
		el.Anchor = cp.Vector{X: node.Left, Y: node.Top(a.viewportH)}
	}
	return el, true
}

func (a *worldArena) SetAnchor(e ecs.Entity, anchor cp.Vector) {
	dr, ok := ecs.Get(a.w, e, component.DraggableComponent)
	if !ok {
		return
	}
	switch dr.Kind {
	case drag.KindWorld:
		if t, ok := ecs.Get(a.w, e, component.TransformComponent); ok {
			t.X = anchor.X
			t.Y = anchor.Y
		}
	default:
		if node, ok := ecs.Get(a.w, e, component.UINodeComponent); ok {
			node.Left = anchor.X
			node.SetTop(anchor.Y, a.viewportH)
		}
	}
}
