package component

type Size struct {
	Width  float64
	Height float64
}

var SizeComponent = NewComponent[Size]()
