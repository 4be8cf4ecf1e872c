package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/roadgrid/layouts"
	"github.com/milk9111/roadgrid/screen"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	startScreen := flag.String("screen", "level-select", "screen to start on (level-select, editor)")
	layoutName := flag.String("layout", layouts.EditorLayoutName, "editor layout file in the layouts directory")
	layoutDir := flag.String("layouts", layouts.Dir, "directory checked for layout overrides")
	watch := flag.Bool("watch", false, "reload the editor when a layout file changes")
	flag.Parse()

	start, ok := screen.ParseState(*startScreen)
	if !ok {
		log.Fatalf("unknown screen %q", *startScreen)
	}
	layouts.Dir = *layoutDir

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("roadgrid")

	game, err := NewGame(start, *layoutName, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if *watch {
		if err := game.WatchLayouts(layouts.Dir); err != nil {
			log.Printf("layout watch disabled: %v", err)
		}
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
