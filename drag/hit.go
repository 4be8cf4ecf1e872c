package drag

import "github.com/jakecoffman/cp"

// Element is a draggable rectangle as seen by the drag engine.
type Element[ID comparable] struct {
	ID     ID
	Anchor cp.Vector
	Size   cp.Vector
	Kind   Kind
}

// Bounds returns the element rectangle in its own local space. Pixel
// elements extend right/down from the anchor; world elements are centered.
func (e Element[ID]) Bounds() cp.BB {
	if e.Kind == KindWorld {
		return cp.NewBBForExtents(e.Anchor, e.Size.X/2, e.Size.Y/2)
	}
	return cp.BB{L: e.Anchor.X, B: e.Anchor.Y, R: e.Anchor.X + e.Size.X, T: e.Anchor.Y + e.Size.Y}
}

// Contains reports whether local point p lies inside the element, edges
// included.
func (e Element[ID]) Contains(p cp.Vector) bool {
	return e.Bounds().ContainsVect(p)
}

// FindHit returns the first element, in slice order, containing the pointer.
// The pointer is converted into each element's own space before testing.
func FindHit[ID comparable](pointer, viewport cp.Vector, elements []Element[ID]) (ID, bool) {
	for _, e := range elements {
		local := e.Kind.Resolve(viewport).ToLocal(pointer)
		if e.Contains(local) {
			return e.ID, true
		}
	}
	var zero ID
	return zero, false
}
