package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/sysbreach/config"
	"github.com/automoto/sysbreach/fonts"
	"github.com/automoto/sysbreach/systems"
	"github.com/automoto/sysbreach/trigger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// BootScene is the splash shown before the host console comes up.
type BootScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
	bus          *trigger.Bus
}

// NewBootScene creates the boot splash scene
func NewBootScene(sc SceneChanger, bus *trigger.Bus) *BootScene {
	return &BootScene{sceneChanger: sc, bus: bus}
}

func (bs *BootScene) Update() {
	bs.once.Do(bs.configure)
	bs.ecs.Update()

	input := systems.InputOf(bs.ecs)
	if systems.GetAction(input, cfg.ActionContinue).JustPressed {
		bs.sceneChanger.ChangeScene(NewHostScene(bs.sceneChanger, bs.bus))
	}
}

func (bs *BootScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if bs.ecs == nil {
		return
	}

	centerX := cfg.C.Width / 2
	centerY := cfg.C.Height / 2

	title := cfg.C.Title
	titleFont := fonts.MonoTitle.Get()
	text.Draw(screen, title, titleFont, centerX-len(title)*13/2, centerY-40,
		color.RGBA{40, 220, 120, 255})

	prompt := "press ENTER"
	text.Draw(screen, prompt, fonts.Mono.Get(), centerX-len(prompt)*8/2, centerY+20,
		color.RGBA{180, 190, 200, 255})

	hint := "ESC settings / F3 debug"
	text.Draw(screen, hint, fonts.MonoSmall.Get(), centerX-len(hint)*7/2, centerY+48,
		color.RGBA{90, 98, 110, 255})
}

func (bs *BootScene) configure() {
	bs.ecs = ecs.NewECS(donburi.NewWorld())

	bs.ecs.AddSystem(systems.UpdateAudio)
	bs.ecs.AddSystem(systems.UpdateInput)
}
