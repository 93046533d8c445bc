package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mthorne/emberfx/internal/demo"
)

func main() {
	assetRoot := flag.String("assets", "assets", "root directory for sprite assets")
	flag.Parse()

	ebiten.SetWindowTitle("emberfx demo")
	ebiten.SetWindowSize(demo.ScreenWidth, demo.ScreenHeight)
	if err := ebiten.RunGame(demo.New(*assetRoot)); err != nil {
		log.Fatal(err)
	}
}
