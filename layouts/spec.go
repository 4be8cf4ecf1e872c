package layouts

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/milk9111/roadgrid/drag"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyLayout       = errors.New("layouts: no elements")
	ErrUnknownConvention = errors.New("layouts: unknown convention")
)

const EditorLayoutName = "editor.yaml"

type EditorLayout struct {
	Name      string        `yaml:"name"`
	Grid      GridSpec      `yaml:"grid"`
	BottomBar BottomBarSpec `yaml:"bottom_bar"`
	Elements  []ElementSpec `yaml:"elements"`
}

// GridSpec describes the static dot grid drawn in world space.
type GridSpec struct {
	Size      float64 `yaml:"size"`
	HalfCols  int     `yaml:"half_cols"`
	HalfRows  int     `yaml:"half_rows"`
	DotRadius float64 `yaml:"dot_radius"`
	Color     string  `yaml:"color"`
}

type BottomBarSpec struct {
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"`
}

// ElementSpec is one draggable. Pixel elements use Left/Bottom, world
// elements use X/Y as their center.
type ElementSpec struct {
	Name       string  `yaml:"name"`
	Convention string  `yaml:"convention"`
	Left       float64 `yaml:"left"`
	Bottom     float64 `yaml:"bottom"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Color      string  `yaml:"color"`
}

// Kind returns the element's anchor convention.
func (s ElementSpec) Kind() (drag.Kind, error) {
	k, ok := drag.ParseKind(s.Convention)
	if !ok {
		return 0, fmt.Errorf("%w %q on %s", ErrUnknownConvention, s.Convention, s.Name)
	}
	return k, nil
}

func LoadEditorLayout(name string) (*EditorLayout, error) {
	if name == "" {
		name = EditorLayoutName
	}
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("layouts: load %s: %w", name, err)
	}
	layout, err := ParseEditorLayout(data)
	if err != nil {
		return nil, fmt.Errorf("layouts: parse %s: %w", name, err)
	}
	return layout, nil
}

func ParseEditorLayout(data []byte) (*EditorLayout, error) {
	var layout EditorLayout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, err
	}
	if len(layout.Elements) == 0 {
		return nil, ErrEmptyLayout
	}
	for i := range layout.Elements {
		el := &layout.Elements[i]
		if _, err := el.Kind(); err != nil {
			return nil, err
		}
		if el.Width <= 0 || el.Height <= 0 {
			return nil, fmt.Errorf("layouts: element %s has non-positive size %gx%g", el.Name, el.Width, el.Height)
		}
		if el.Name == "" {
			el.Name = fmt.Sprintf("Element%d", i)
		}
	}
	layout.Grid.applyDefaults()
	if layout.BottomBar.Height <= 0 {
		layout.BottomBar.Height = 70
	}
	return &layout, nil
}

func (g *GridSpec) applyDefaults() {
	if g.Size <= 0 {
		g.Size = 32
	}
	if g.HalfCols <= 0 {
		g.HalfCols = 25
	}
	if g.HalfRows <= 0 {
		g.HalfRows = 15
	}
	if g.DotRadius <= 0 {
		g.DotRadius = 2.5
	}
}

// ParseColor parses #rrggbb or #rrggbbaa. Anything else falls back to def.
func ParseColor(s string, def color.Color) color.Color {
	var r, g, b, a uint8
	a = 0xff
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return def
		}
	case 9:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return def
		}
	default:
		return def
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
