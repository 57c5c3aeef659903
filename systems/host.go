package systems

import (
	"fmt"
	"unicode"

	"github.com/automoto/sysbreach/components"
	cfg "github.com/automoto/sysbreach/config"
	"github.com/automoto/sysbreach/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hostHeaderHeight = 28
	hostMargin       = 16
	hostLineHeight   = 18
)

// UpdateHost scrolls the fake status feed and watches typed input for
// the secret activation word.
func UpdateHost(e *ecs.ECS) {
	host := getOrCreateHost(e)
	host.Uptime++

	host.FeedTimer--
	if host.FeedTimer <= 0 {
		line := cfg.Host.FeedLines[host.NextLine%len(cfg.Host.FeedLines)]
		host.NextLine++
		host.Feed = append(host.Feed, line)
		if len(host.Feed) > cfg.Host.MaxFeed {
			host.Feed = host.Feed[len(host.Feed)-cfg.Host.MaxFeed:]
		}
		host.FeedTimer = cfg.Host.FeedPeriod
	}

	matchSecretWord(e, host)
}

// matchSecretWord advances the matched prefix with each typed character
// and fires the breach trigger when the whole word lands.
func matchSecretWord(e *ecs.ECS, host *components.HostData) {
	input := getOrCreateInput(e)
	secret := cfg.Trigger.SecretWord
	if secret == "" {
		return
	}

	for _, r := range input.Typed {
		r = unicode.ToLower(r)
		switch {
		case host.SecretProgress < len(secret) && r == rune(secret[host.SecretProgress]):
			host.SecretProgress++
		case r == rune(secret[0]):
			host.SecretProgress = 1
		default:
			host.SecretProgress = 0
		}

		if host.SecretProgress == len(secret) {
			host.SecretProgress = 0
			if ctrl := controllerOf(e); ctrl != nil {
				ctrl.Activate()
			}
		}
	}
}

// getOrCreateHost returns the singleton host surface state
func getOrCreateHost(e *ecs.ECS) *components.HostData {
	entry, ok := components.Host.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Host))
		components.Host.Set(entry, &components.HostData{
			FeedTimer: 1, // first line lands immediately
		})
	}
	return components.Host.Get(entry)
}

// DrawHost paints the ops console onto the offscreen frame.
func DrawHost(e *ecs.ECS, frame *ebiten.Image) {
	host := getOrCreateHost(e)
	width := float32(frame.Bounds().Dx())
	height := float32(frame.Bounds().Dy())

	vector.DrawFilledRect(frame, 0, 0, width, height, cfg.Host.BackgroundColor, false)

	// Header bar with uptime on the right
	vector.DrawFilledRect(frame, 0, 0, width, hostHeaderHeight, darken(cfg.Host.BackgroundColor, 0.6), false)
	headerFont := fonts.Mono.Get()
	text.Draw(frame, cfg.Host.Header, headerFont, hostMargin, 19, cfg.Host.HeaderColor)

	seconds := host.Uptime / 60
	uptime := fmt.Sprintf("uptime %02d:%02d:%02d", seconds/3600, (seconds/60)%60, seconds%60)
	uptimeWidth := len(uptime) * 8
	text.Draw(frame, uptime, headerFont, int(width)-uptimeWidth-hostMargin, 19, cfg.Host.DimTextColor)

	// Status line
	text.Draw(frame, "status: "+cfg.Host.StatusLine, headerFont,
		hostMargin, hostHeaderHeight+hostLineHeight+4, cfg.Host.AccentColor)

	// Scrolling feed
	feedFont := fonts.MonoSmall.Get()
	baseY := hostHeaderHeight + 2*hostLineHeight + 12
	for i, line := range host.Feed {
		c := cfg.Host.DimTextColor
		if i == len(host.Feed)-1 {
			c = cfg.Host.TextColor // newest line stands out
		}
		text.Draw(frame, "> "+line, feedFont, hostMargin, baseY+i*hostLineHeight, c)
	}
}
