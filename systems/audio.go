package systems

import (
	"log"
	"sync"

	"github.com/automoto/sysbreach/assets"
	"github.com/automoto/sysbreach/components"
	cfg "github.com/automoto/sysbreach/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalAlarmVolume  float64 = cfg.Audio.DefaultAlarmVol
	globalMuted        bool
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX decodes all clips at startup to avoid lag on first play.
// A missing or corrupt clip is tolerated; playback will log the failure.
func PreloadAllSFX() {
	initGlobalAudio()

	for _, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			log.Printf("Warning: could not preload %s: %v", path, err)
		}
	}
}

// UpdateAudio drains sound effects queued during the update pass.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// PlaySFX queues a sound effect for the next UpdateAudio pass.
func PlaySFX(e *ecs.ECS, id cfg.SoundID) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
	}
	audioData := components.Audio.Get(entry)
	audioData.PendingSFX = append(audioData.PendingSFX, id)
}

// playSFX starts playback immediately. Failure is logged and swallowed -
// the breach sequence never depends on the alarm actually sounding.
func playSFX(soundID cfg.SoundID) {
	if globalMuted || globalAlarmVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		log.Printf("Warning: alarm playback blocked: %v", err)
		return
	}

	volume := globalAlarmVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}

// SetAlarmVolume adjusts playback volume for subsequent clips.
func SetAlarmVolume(v float64) { globalAlarmVolume = v }

// SetMuted silences all playback without touching the volume setting.
func SetMuted(m bool) { globalMuted = m }
