package drag

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Kind tags the layout space an element's anchor is expressed in.
type Kind int

const (
	// KindPixel anchors at the top-left corner in window pixels, y down.
	KindPixel Kind = iota
	// KindWorld anchors at the center in a space whose origin is the
	// viewport center, y up.
	KindWorld
)

func (k Kind) String() string {
	switch k {
	case KindPixel:
		return "pixel"
	case KindWorld:
		return "world"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a layout name ("pixel", "world") to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "", "pixel":
		return KindPixel, true
	case "world":
		return KindWorld, true
	default:
		return 0, false
	}
}

// Convention is the affine map from pointer space to an element's local
// space: local = Scale * (pointer - Origin), component-wise. A zero Scale
// component is read as 1, so the zero Convention behaves like Pixel.
type Convention struct {
	Origin cp.Vector
	Scale  cp.Vector
}

// Pixel is the identity convention.
func Pixel() Convention {
	return Convention{Scale: cp.Vector{X: 1, Y: 1}}
}

// World centers the origin in the viewport and flips the y axis.
func World(viewport cp.Vector) Convention {
	return Convention{
		Origin: viewport.Mult(0.5),
		Scale:  cp.Vector{X: 1, Y: -1},
	}
}

// Resolve returns the concrete convention for k at the given viewport size.
func (k Kind) Resolve(viewport cp.Vector) Convention {
	if k == KindWorld {
		return World(viewport)
	}
	return Pixel()
}

// ToLocal converts a pointer-space point into local space.
func (c Convention) ToLocal(p cp.Vector) cp.Vector {
	d := p.Sub(c.Origin)
	return cp.Vector{X: axis(c.Scale.X) * d.X, Y: axis(c.Scale.Y) * d.Y}
}

// ToPointer is the inverse of ToLocal.
func (c Convention) ToPointer(l cp.Vector) cp.Vector {
	return cp.Vector{X: l.X / axis(c.Scale.X), Y: l.Y / axis(c.Scale.Y)}.Add(c.Origin)
}

func axis(s float64) float64 {
	if s == 0 {
		return 1
	}
	return s
}
