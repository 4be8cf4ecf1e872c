package component

// Transform places an entity in world space: origin at the viewport center,
// y up. X/Y is the entity's center.
type Transform struct {
	X float64
	Y float64
	Z float64
}

var TransformComponent = NewComponent[Transform]()
