package component

import "image/color"

// Shape is a flat-colored primitive. A positive Radius draws a circle,
// otherwise the entity's Size is filled as a rectangle.
type Shape struct {
	Fill   color.Color
	Radius float64
}

var ShapeComponent = NewComponent[Shape]()
