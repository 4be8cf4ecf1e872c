package component

// EditorScreen marks entities owned by the editor screen; they are destroyed
// when the screen exits.
type EditorScreen struct{}

var EditorScreenComponent = NewComponent[EditorScreen]()

type GridPoint struct{}

var GridPointComponent = NewComponent[GridPoint]()
