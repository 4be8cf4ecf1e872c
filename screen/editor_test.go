package screen

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/roadgrid/drag"
	"github.com/milk9111/roadgrid/ecs"
	"github.com/milk9111/roadgrid/ecs/component"
	"github.com/milk9111/roadgrid/ecs/entity"
)

func newTestEditor(t *testing.T) (*Editor, *ecs.World, *component.Pointer) {
	t.Helper()
	w := ecs.NewWorld()
	pe, err := entity.NewPointer(w)
	if err != nil {
		t.Fatal(err)
	}
	p, _ := ecs.Get(w, pe, component.PointerComponent)
	p.ViewportW, p.ViewportH = 800, 600

	ed := NewEditor("", false, nil)
	ed.buildUI = nil
	return ed, w, p
}

func draggables(w *ecs.World) map[string]ecs.Entity {
	out := map[string]ecs.Entity{}
	ecs.ForEach2(w, component.DraggableComponent, component.NameComponent, func(e ecs.Entity, _ *component.Draggable, n *component.Name) {
		out[n.Value] = e
	})
	return out
}

func TestEditorEnterSpawnsLayout(t *testing.T) {
	ed, w, _ := newTestEditor(t)
	if err := ed.Enter(w); err != nil {
		t.Fatalf("enter: %v", err)
	}

	ds := draggables(w)
	for _, name := range []string{"PreviewSquare", "OutTerminus", "InTerminus", "Junction"} {
		if _, ok := ds[name]; !ok {
			t.Fatalf("missing draggable %s", name)
		}
	}
	grid := w.Query(component.GridPointComponent.Kind())
	if want := 51 * 31; len(grid) != want {
		t.Fatalf("expected %d grid points, got %d", want, len(grid))
	}
	if ed.Tracker().State() != drag.Idle {
		t.Fatalf("expected idle tracker after enter")
	}
}

func TestEditorExitResetsDrag(t *testing.T) {
	ed, w, p := newTestEditor(t)
	if err := ed.Enter(w); err != nil {
		t.Fatalf("enter: %v", err)
	}
	terminus := draggables(w)["OutTerminus"]
	n, _ := ecs.Get(w, terminus, component.UINodeComponent)

	// Grab the terminus through its center.
	p.X = n.Left + n.Width/2
	p.Y = n.Top(p.ViewportH) + n.Height/2
	p.Pressed, p.InWindow = true, true
	ed.Update(w)

	held, _, ok := ed.Tracker().Held()
	if !ok || held != terminus {
		t.Fatalf("expected terminus held, got %v ok=%v", held, ok)
	}

	ed.Exit(w)
	if ed.Tracker().State() != drag.Idle {
		t.Fatalf("exit must force idle")
	}
	if w.IsAlive(terminus) {
		t.Fatalf("exit must destroy editor entities")
	}
	if len(w.Query(component.EditorScreenComponent.Kind())) != 0 {
		t.Fatalf("editor entities survived exit")
	}
	if _, ok := w.First(component.PointerComponent.Kind()); !ok {
		t.Fatalf("exit destroyed the shared pointer entity")
	}

	if err := ed.Enter(w); err != nil {
		t.Fatalf("re-enter: %v", err)
	}
	if ed.Tracker().State() != drag.Idle {
		t.Fatalf("re-enter must start idle")
	}
}

func TestEditorMovesWorldElement(t *testing.T) {
	ed, w, p := newTestEditor(t)
	if err := ed.Enter(w); err != nil {
		t.Fatalf("enter: %v", err)
	}
	junction := draggables(w)["Junction"]
	tr, _ := ecs.Get(w, junction, component.TransformComponent)
	start := cp.Vector{X: tr.X, Y: tr.Y}

	conv := drag.World(cp.Vector{X: p.ViewportW, Y: p.ViewportH})
	grab := conv.ToPointer(start.Add(cp.Vector{X: 5, Y: -5}))
	p.X, p.Y = grab.X, grab.Y
	p.Pressed, p.InWindow = true, true
	ed.Update(w)

	p.Pressed = false
	p.X += 64
	p.Y += 32
	ed.Update(w)

	// 32px down on screen is 32 units down in world space.
	if tr.X != start.X+64 || tr.Y != start.Y-32 {
		t.Fatalf("expected (%v,%v), got (%v,%v)", start.X+64, start.Y-32, tr.X, tr.Y)
	}
}

func TestParseState(t *testing.T) {
	cases := []struct {
		in   string
		want State
		ok   bool
	}{
		{"editor", StateEditor, true},
		{"level-select", StateLevelSelect, true},
		{"", StateLevelSelect, true},
		{"pause", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseState(c.in)
		if ok != c.ok || (ok && got != c.want) {
			t.Fatalf("ParseState(%q) = %v,%v", c.in, got, ok)
		}
	}
}
