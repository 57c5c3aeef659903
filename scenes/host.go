package scenes

import (
	"image/color"
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/sysbreach/breach"
	"github.com/automoto/sysbreach/components"
	cfg "github.com/automoto/sysbreach/config"
	"github.com/automoto/sysbreach/systems"
	"github.com/automoto/sysbreach/trigger"
	"github.com/automoto/sysbreach/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HostScene runs the fake ops console and the breach sequencer on top of
// it. All drawing goes through an offscreen frame so the glitch phase can
// displace the composite without the systems knowing.
type HostScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
	bus          *trigger.Bus

	controller *breach.Controller
	settingsUI *ui.SettingsUI
	frame      *ebiten.Image

	wasOpen bool // settings overlay visibility last frame
}

// NewHostScene creates the host console scene
func NewHostScene(sc SceneChanger, bus *trigger.Bus) *HostScene {
	return &HostScene{sceneChanger: sc, bus: bus}
}

func (hs *HostScene) Update() {
	hs.once.Do(hs.configure)
	hs.ecs.Update()

	settings := systems.GetOrCreateSettings(hs.ecs)
	if settings.Open {
		hs.settingsUI.Update()
	}
	// Persist on close regardless of whether the overlay was dismissed by
	// the Close button or the Escape key
	if hs.wasOpen && !settings.Open {
		systems.SaveCurrentSettings(settings)
	}
	hs.wasOpen = settings.Open
}

func (hs *HostScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if hs.ecs == nil {
		return
	}

	if hs.frame == nil {
		hs.frame = ebiten.NewImage(cfg.C.Width, cfg.C.Height)
	}

	systems.DrawHost(hs.ecs, hs.frame)
	systems.DrawBreachOverlay(hs.ecs, hs.frame)
	systems.CompositeFrame(hs.ecs, hs.frame, screen)

	settings := systems.GetOrCreateSettings(hs.ecs)
	if settings.Open {
		hs.settingsUI.Draw(screen)
	}
	systems.DrawDebug(hs.ecs, screen)
}

func (hs *HostScene) configure() {
	hs.ecs = ecs.NewECS(donburi.NewWorld())

	hs.controller = breach.NewController(cfg.Breach, breach.SystemClock{},
		rand.New(rand.NewSource(time.Now().UnixNano())))
	hs.controller.Resize(cfg.C.Width, cfg.C.Height)
	hs.controller.OnAlarm = func() {
		systems.PlaySFX(hs.ecs, cfg.SoundBreachAlarm)
	}

	breachEntry := hs.ecs.World.Entry(hs.ecs.World.Create(components.Breach))
	components.Breach.Set(breachEntry, &components.BreachData{Controller: hs.controller})

	if hs.bus != nil {
		trigEntry := hs.ecs.World.Entry(hs.ecs.World.Create(components.Trigger))
		components.Trigger.Set(trigEntry, &components.TriggerData{Bus: hs.bus})
	}

	settings := systems.GetOrCreateSettings(hs.ecs)
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(hs.ecs, saved)
	}

	hs.settingsUI = ui.NewSettingsUI(settings,
		func() { hs.controller.Disable() },
		func() { settings.Open = false },
		func() bool { return hs.controller.Locked() },
	)

	// Input first, then the systems that read it; breach advances after
	// the host so secret-word activation lands in the same frame
	hs.ecs.AddSystem(systems.UpdateInput)
	hs.ecs.AddSystem(systems.UpdateSettings)
	hs.ecs.AddSystem(systems.UpdateHost)
	hs.ecs.AddSystem(systems.UpdateBreach)
	hs.ecs.AddSystem(systems.UpdateAudio)
}
