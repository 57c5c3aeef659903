package systems

import (
	"github.com/automoto/sysbreach/components"
	cfg "github.com/automoto/sysbreach/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the overlay/debug toggles and pushes the current
// settings into the audio and display layers every frame. Pushing is
// idempotent, so the UI callbacks only need to mutate SettingsData.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionSettings).JustPressed {
		settings.Open = !settings.Open
	}
	if GetAction(input, cfg.ActionDebugOverlay).JustPressed {
		settings.Debug = !settings.Debug
	}

	SetAlarmVolume(settings.AlarmVolume)
	SetMuted(settings.Muted)

	if ebiten.IsFullscreen() != settings.Fullscreen {
		ebiten.SetFullscreen(settings.Fullscreen)
	}
	if !settings.Fullscreen {
		res := cfg.SettingsMenu.Resolutions[settings.ResolutionIndex]
		w, h := ebiten.WindowSize()
		if w != res.Width || h != res.Height {
			ebiten.SetWindowSize(res.Width, res.Height)
		}
	}
}

// GetOrCreateSettings returns the singleton settings state, creating it
// with defaults if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.Set(entry, &components.SettingsData{
			AlarmVolume:     cfg.Audio.DefaultAlarmVol,
			ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
		})
	}
	return components.Settings.Get(entry)
}
