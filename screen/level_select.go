package screen

import (
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/roadgrid/ecs"
)

type LevelSelect struct {
	switchTo Switcher
	ui       *ebitenui.UI
}

func NewLevelSelect(switchTo Switcher) *LevelSelect {
	return &LevelSelect{switchTo: switchTo}
}

func (l *LevelSelect) Enter(w *ecs.World) error {
	l.ui = buildLevelSelectUI(func() {
		if l.switchTo != nil {
			l.switchTo(StateEditor)
		}
	})
	return nil
}

func (l *LevelSelect) Exit(w *ecs.World) {
	l.ui = nil
}

func (l *LevelSelect) Update(w *ecs.World) {
	if l.ui != nil {
		l.ui.Update()
	}
}

func (l *LevelSelect) Draw(w *ecs.World, dst *ebiten.Image) {
	if l.ui != nil {
		l.ui.Draw(dst)
	}
}
