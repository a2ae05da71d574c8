package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/bingle/common"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "drop sequence seed")
	debug := flag.Bool("debug", false, "enable debug mode (prefab hot reload)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowSize(int(common.ScreenSize), int(common.ScreenSize))
	ebiten.SetWindowTitle("b i n g l e")

	game, err := NewGame(*seed, *debug)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
