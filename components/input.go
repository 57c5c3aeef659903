package components

import (
	cfg "github.com/automoto/sysbreach/config"
	"github.com/yohamta/donburi"
)

// ActionState describes one action for the current frame
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData is the singleton input snapshot. Typed holds the printable
// characters entered this frame; the host system scans it for the secret
// activation word.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Typed    []rune
}

var Input = donburi.NewComponentType[InputData]()
