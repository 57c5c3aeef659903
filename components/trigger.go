package components

import (
	"github.com/automoto/sysbreach/trigger"
	"github.com/yohamta/donburi"
)

// TriggerData carries the external trigger bus into the ECS so the host
// scene can drain it on the update goroutine.
type TriggerData struct {
	Bus *trigger.Bus
}

var Trigger = donburi.NewComponentType[TriggerData]()
