package screen

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/roadgrid/ecs"
)

// State names the top-level screen the game is showing.
type State int

const (
	StateLevelSelect State = iota
	StateEditor
)

func (s State) String() string {
	switch s {
	case StateLevelSelect:
		return "level-select"
	case StateEditor:
		return "editor"
	default:
		return "unknown"
	}
}

// ParseState maps a flag value to a State.
func ParseState(s string) (State, bool) {
	switch s {
	case "level-select", "levelselect", "":
		return StateLevelSelect, true
	case "editor":
		return StateEditor, true
	default:
		return 0, false
	}
}

// Screen is one top-level game state. Enter and Exit bracket every visit;
// Update and Draw run once per frame in between.
type Screen interface {
	Enter(w *ecs.World) error
	Exit(w *ecs.World)
	Update(w *ecs.World)
	Draw(w *ecs.World, dst *ebiten.Image)
}

// Switcher requests a change of screen. The switch happens at the start of
// the next frame.
type Switcher func(next State)
