package config

import (
	"image/color"

	"github.com/automoto/sysbreach/breach"
)

// ScreenConfig contains the logical render resolution. The window may be
// scaled by the settings screen; systems always draw at this size.
type ScreenConfig struct {
	Width  int
	Height int
	Title  string
}

// HostConfig styles the host surface the effect corrupts: a fake ops
// console scrolling canned status lines.
type HostConfig struct {
	BackgroundColor color.RGBA
	HeaderColor     color.RGBA
	TextColor       color.RGBA
	DimTextColor    color.RGBA
	AccentColor     color.RGBA

	Header     string
	StatusLine string
	FeedLines  []string
	FeedPeriod int // frames between feed lines
	MaxFeed    int // visible feed window
}

// WarningPanelConfig styles the phase-1 breach warning overlay.
type WarningPanelConfig struct {
	PanelWidth  float64
	PanelHeight float64
	DimAlpha    uint8 // backdrop darkening over the host surface

	BorderColor color.RGBA
	PanelColor  color.RGBA
	TitleColor  color.RGBA
	TextColor   color.RGBA

	Title string
	Body  []string

	// Border pulse tween: alpha swings between min and max over Period seconds
	PulseMin    float32
	PulseMax    float32
	PulsePeriod float32
}

// RainStyleConfig styles the phase-3 glyph rain. The trail effect comes
// from painting FadeAlpha black over the canvas every step.
type RainStyleConfig struct {
	GlyphColor color.RGBA
	FadeAlpha  uint8
}

// TriggerConfig configures the developer trigger surface.
type TriggerConfig struct {
	ListenAddr string // loopback-only WebSocket trigger endpoint
	SecretWord string // typing this on the host scene activates the breach
}

var C ScreenConfig
var Host HostConfig
var Warning WarningPanelConfig
var RainStyle RainStyleConfig
var Trigger TriggerConfig

// Breach holds the sequence tuning; see breach.Config for the knobs.
var Breach = breach.DefaultConfig()

func init() {
	C = ScreenConfig{
		Width:  960,
		Height: 540,
		Title:  "sysbreach",
	}

	Host = HostConfig{
		BackgroundColor: color.RGBA{10, 12, 16, 255},
		HeaderColor:     color.RGBA{90, 200, 250, 255},
		TextColor:       color.RGBA{180, 190, 200, 255},
		DimTextColor:    color.RGBA{90, 98, 110, 255},
		AccentColor:     color.RGBA{40, 220, 120, 255},

		Header:     "OPS CONSOLE // node-07",
		StatusLine: "all services nominal",
		FeedLines: []string{
			"health check passed (12/12 services)",
			"cache hit ratio 97.4%",
			"tls certificates valid for 71 days",
			"deploy queue empty",
			"backup snapshot verified",
			"ingress p99 latency 41ms",
			"zero alerts in the last 24h",
			"log volume within budget",
		},
		FeedPeriod: 90,
		MaxFeed:    12,
	}

	Warning = WarningPanelConfig{
		PanelWidth:  520,
		PanelHeight: 180,
		DimAlpha:    160,

		BorderColor: color.RGBA{255, 60, 60, 255},
		PanelColor:  color.RGBA{24, 8, 8, 240},
		TitleColor:  color.RGBA{255, 80, 80, 255},
		TextColor:   color.RGBA{255, 210, 210, 255},

		Title: "!! SYSTEM BREACH DETECTED !!",
		Body: []string{
			"unauthorized access in progress",
			"containment has failed",
			"do not power off this terminal",
		},

		PulseMin:    0.35,
		PulseMax:    1.0,
		PulsePeriod: 0.6,
	}

	RainStyle = RainStyleConfig{
		GlyphColor: color.RGBA{0, 255, 70, 255},
		FadeAlpha:  13, // ~0.05 opacity black, matches the trail feel
	}

	Trigger = TriggerConfig{
		ListenAddr: "127.0.0.1:7311",
		SecretWord: "breach",
	}
}
