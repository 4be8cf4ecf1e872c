package component

// UINode is an absolutely positioned screen rectangle in window pixels,
// laid out from the left and bottom edges of the viewport.
type UINode struct {
	Left   float64
	Bottom float64
	Width  float64
	Height float64
}

// Top returns the node's top edge for a viewport of the given height.
func (n UINode) Top(viewportH float64) float64 {
	return viewportH - n.Bottom - n.Height
}

// SetTop moves the node so its top edge sits at top.
func (n *UINode) SetTop(top, viewportH float64) {
	n.Bottom = viewportH - top - n.Height
}

var UINodeComponent = NewComponent[UINode]()
