package main

import (
	"image"
	"log"
	"os"

	"github.com/automoto/sysbreach/config"
	"github.com/automoto/sysbreach/fonts"
	"github.com/automoto/sysbreach/scenes"
	"github.com/automoto/sysbreach/systems"
	"github.com/automoto/sysbreach/trigger"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gomono"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(bus *trigger.Bus) *Game {
	fonts.LoadFont(fonts.Mono, gomono.TTF)
	fonts.LoadFontWithSize(fonts.MonoSmall, gomono.TTF, 11)
	fonts.LoadFontWithSize(fonts.MonoTitle, gomono.TTF, 22)
	fonts.LoadFontWithSize(fonts.Glyph, gomono.TTF, float64(config.Breach.CellSize))

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewBootScene(g, bus)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	systems.PreloadAllSFX()

	// Developer trigger surface: stdin console plus a loopback WebSocket
	// endpoint. Either failing is not fatal; the secret word still works.
	bus := trigger.NewBus()
	trigger.StartConsole(bus, os.Stdin)
	if _, err := trigger.StartServer(bus, config.Trigger.ListenAddr); err != nil {
		log.Printf("Warning: trigger endpoint unavailable on %s: %v", config.Trigger.ListenAddr, err)
	}

	if err := ebiten.RunGame(NewGame(bus)); err != nil {
		log.Fatal(err)
	}
}
