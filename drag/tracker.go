package drag

import "github.com/jakecoffman/cp"

// Sample is one tick of pointer input in window pixel space.
type Sample struct {
	Pressed  bool
	Released bool
	InWindow bool
	Cursor   cp.Vector
	Viewport cp.Vector
}

// Arena resolves element handles. Elements must be returned in hit-test
// order; Resolve reports false for handles that no longer exist.
type Arena[ID comparable] interface {
	Elements() []Element[ID]
	Resolve(id ID) (Element[ID], bool)
	SetAnchor(id ID, anchor cp.Vector)
}

// State is the tracker's state machine position.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Transition reports what a Step did.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionStarted
	TransitionMoved
	TransitionReleased
)

// Tracker holds at most one element at a time together with the grab
// offset captured when it was picked up.
type Tracker[ID comparable] struct {
	state  State
	held   ID
	kind   Kind
	offset cp.Vector
}

// NewTracker returns an idle tracker.
func NewTracker[ID comparable]() *Tracker[ID] {
	return &Tracker[ID]{}
}

// State returns the current state.
func (t *Tracker[ID]) State() State {
	if t == nil {
		return Idle
	}
	return t.state
}

// Held returns the dragged handle and grab offset while dragging.
func (t *Tracker[ID]) Held() (ID, cp.Vector, bool) {
	var zero ID
	if t == nil || t.state != Dragging {
		return zero, cp.Vector{}, false
	}
	return t.held, t.offset, true
}

// Reset forces the tracker back to Idle.
func (t *Tracker[ID]) Reset() {
	if t == nil {
		return
	}
	var zero ID
	t.state = Idle
	t.held = zero
	t.kind = KindPixel
	t.offset = cp.Vector{}
}

// Step advances the tracker by one tick. All reads (hit-test, resolve)
// happen before the single anchor write.
func (t *Tracker[ID]) Step(s Sample, arena Arena[ID]) Transition {
	if t == nil || arena == nil || !s.InWindow {
		return TransitionNone
	}

	tr := TransitionNone
	if s.Pressed && t.state == Idle {
		if id, ok := FindHit(s.Cursor, s.Viewport, arena.Elements()); ok {
			if el, ok := arena.Resolve(id); ok {
				t.state = Dragging
				t.held = id
				t.kind = el.Kind
				t.offset = el.Anchor.Sub(el.Kind.Resolve(s.Viewport).ToLocal(s.Cursor))
				tr = TransitionStarted
			}
		}
	}

	if t.state == Dragging {
		if _, ok := arena.Resolve(t.held); ok {
			local := t.kind.Resolve(s.Viewport).ToLocal(s.Cursor)
			arena.SetAnchor(t.held, local.Add(t.offset))
			if tr == TransitionNone {
				tr = TransitionMoved
			}
		}
	}

	if s.Released && t.state == Dragging {
		t.Reset()
		tr = TransitionReleased
	}
	return tr
}
