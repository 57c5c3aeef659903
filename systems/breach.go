package systems

import (
	"github.com/automoto/sysbreach/breach"
	"github.com/automoto/sysbreach/components"
	cfg "github.com/automoto/sysbreach/config"
	"github.com/automoto/sysbreach/trigger"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBreach drains the external trigger bus, keeps the controller's
// viewport current and advances the sequence by one frame. Bus commands
// are applied here, on the update goroutine, so controller state never
// sees concurrent writers.
func UpdateBreach(e *ecs.ECS) {
	ctrl := controllerOf(e)
	if ctrl == nil {
		return
	}

	if trigEntry, ok := components.Trigger.First(e.World); ok {
		bus := components.Trigger.Get(trigEntry).Bus
		bus.Drain(func(cmd trigger.Command) {
			switch cmd {
			case trigger.CmdActivate:
				ctrl.Activate()
			case trigger.CmdDisable:
				ctrl.Disable()
			}
		})
	}

	ctrl.Resize(cfg.C.Width, cfg.C.Height)
	ctrl.Advance()
}

// controllerOf returns the scene's effect controller, or nil before the
// scene has configured one.
func controllerOf(e *ecs.ECS) *breach.Controller {
	entry, ok := components.Breach.First(e.World)
	if !ok {
		return nil
	}
	return components.Breach.Get(entry).Controller
}
