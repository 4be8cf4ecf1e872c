package component

// Pointer stores this frame's mouse state in window pixels.
type Pointer struct {
	X         float64
	Y         float64
	Pressed   bool
	Released  bool
	InWindow  bool
	ViewportW float64
	ViewportH float64
}

var PointerComponent = NewComponent[Pointer]()
