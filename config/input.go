package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionContinue
	ActionSettings
	ActionDebugOverlay
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key bindings for an action. The app is
// keyboard-only; the secret activation word is read from typed characters,
// not from an action binding.
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionContinue: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
			},
			ActionSettings: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
			ActionDebugOverlay: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
		},
	}
}
