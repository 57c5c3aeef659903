package components

import (
	"github.com/automoto/sysbreach/breach"
	"github.com/yohamta/donburi"
)

// BreachData holds the singleton effect controller for the scene.
type BreachData struct {
	Controller *breach.Controller
}

var Breach = donburi.NewComponentType[BreachData]()
