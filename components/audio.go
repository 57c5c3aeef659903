package components

import (
	cfg "github.com/automoto/sysbreach/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects requested during the update pass; the
// audio system drains the queue once per frame.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
