package components

import "github.com/yohamta/donburi"

// SettingsData is the singleton user-facing settings state. Persisted
// fields are mirrored to disk by the persistence system; Open and Debug
// are session-only.
type SettingsData struct {
	AlarmVolume     float64
	Muted           bool
	Fullscreen      bool
	ResolutionIndex int

	Open  bool // settings overlay visible
	Debug bool // debug readout visible
}

var Settings = donburi.NewComponentType[SettingsData]()
