package components

import "github.com/yohamta/donburi"

// HostData is the host surface state: the fake ops console the breach
// effect eventually corrupts.
type HostData struct {
	Feed      []string // visible feed window, newest last
	NextLine  int      // index into config.Host.FeedLines
	FeedTimer int      // frames until the next line
	Uptime    int      // frames since the scene started

	SecretProgress int // matched prefix length of the secret word
}

var Host = donburi.NewComponentType[HostData]()
