package systems

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/automoto/sysbreach/breach"
	cfg "github.com/automoto/sysbreach/config"
	"github.com/automoto/sysbreach/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// Renderer-local state. Everything here is cosmetic; the controller owns
// all sequence state, so none of this affects timing or phase decisions.
var (
	warningPulse   *gween.Tween
	warningPulseUp bool

	rainCanvas     *ebiten.Image
	rainSeqPainted uint64

	// Seeded independently of the controller's rng so slice jitter can't
	// perturb the deterministic sequence.
	glitchRng = rand.New(rand.NewSource(0x5f3c))
)

// DrawBreachOverlay paints the current phase's overlay onto the frame.
func DrawBreachOverlay(e *ecs.ECS, frame *ebiten.Image) {
	ctrl := controllerOf(e)
	if ctrl == nil {
		return
	}

	switch ctrl.State() {
	case breach.StateWarning:
		drawWarningPanel(frame)
	case breach.StateGlitching:
		drawGlitchMarkers(frame, ctrl.Glitch())
	case breach.StateRaining:
		drawRain(frame, ctrl)
	}
}

// drawWarningPanel dims the host surface and centers the pulsing alert box.
func drawWarningPanel(frame *ebiten.Image) {
	width := float32(frame.Bounds().Dx())
	height := float32(frame.Bounds().Dy())

	dim := cfg.Warning.DimAlpha
	vector.DrawFilledRect(frame, 0, 0, width, height, color.RGBA{0, 0, 0, dim}, false)

	pw := float32(cfg.Warning.PanelWidth)
	ph := float32(cfg.Warning.PanelHeight)
	px := (width - pw) / 2
	py := (height - ph) / 2

	vector.DrawFilledRect(frame, px, py, pw, ph, cfg.Warning.PanelColor, false)

	// Pulsing border, four thin rects
	border := scaleAlpha(cfg.Warning.BorderColor, warningPulseAlpha())
	const bw = 3
	vector.DrawFilledRect(frame, px, py, pw, bw, border, false)
	vector.DrawFilledRect(frame, px, py+ph-bw, pw, bw, border, false)
	vector.DrawFilledRect(frame, px, py, bw, ph, border, false)
	vector.DrawFilledRect(frame, px+pw-bw, py, bw, ph, border, false)

	titleFont := fonts.MonoTitle.Get()
	titleWidth := len(cfg.Warning.Title) * 13
	text.Draw(frame, cfg.Warning.Title, titleFont,
		int(px+pw/2)-titleWidth/2, int(py)+44, cfg.Warning.TitleColor)

	bodyFont := fonts.Mono.Get()
	for i, line := range cfg.Warning.Body {
		lineWidth := len(line) * 8
		text.Draw(frame, line, bodyFont,
			int(px+pw/2)-lineWidth/2, int(py)+84+i*22, cfg.Warning.TextColor)
	}
}

// warningPulseAlpha steps the border tween and returns the current alpha.
// The tween runs min to max and back, reversing each time it completes.
func warningPulseAlpha() float32 {
	if warningPulse == nil {
		warningPulse = gween.New(cfg.Warning.PulseMin, cfg.Warning.PulseMax,
			cfg.Warning.PulsePeriod, ease.InOutQuad)
		warningPulseUp = true
	}

	v, done := warningPulse.Update(1.0 / 60)
	if done {
		from, to := cfg.Warning.PulseMax, cfg.Warning.PulseMin
		if !warningPulseUp {
			from, to = to, from
		}
		warningPulse = gween.New(from, to, cfg.Warning.PulsePeriod, ease.InOutQuad)
		warningPulseUp = !warningPulseUp
	}
	return v
}

// drawGlitchMarkers paints the in-frame part of phase 2: scanlines all
// through, plus brighter interference bands while a heavy burst is live.
// Frame displacement happens later, in CompositeFrame.
func drawGlitchMarkers(frame *ebiten.Image, g breach.GlitchState) {
	width := float32(frame.Bounds().Dx())
	height := int(frame.Bounds().Dy())

	for y := 0; y < height; y += 4 {
		vector.DrawFilledRect(frame, 0, float32(y), width, 1, color.RGBA{0, 0, 0, 30}, false)
	}

	if g.Heavy {
		for i := 0; i < 3; i++ {
			y := float32(glitchRng.Intn(height))
			h := float32(2 + glitchRng.Intn(6))
			vector.DrawFilledRect(frame, 0, y, width, h, color.RGBA{40, 255, 80, 46}, false)
		}
	}
}

// drawRain paints the glyph rain. The canvas persists between frames so
// old glyphs decay under repeated low-alpha black fills, which is what
// produces the trails. Repainting is keyed on the controller's frame
// sequence so a paused update loop doesn't keep fading the canvas.
func drawRain(frame *ebiten.Image, ctrl *breach.Controller) {
	b := frame.Bounds()
	if rainCanvas == nil || !rainCanvas.Bounds().Eq(b) {
		old := rainCanvas
		rainCanvas = ebiten.NewImage(b.Dx(), b.Dy())
		rainCanvas.Fill(color.Black)
		if old != nil {
			rainCanvas.DrawImage(old, nil) // keep trails across a resize
		}
	}

	glyphs, seq := ctrl.RainFrame()
	if seq != rainSeqPainted {
		rainSeqPainted = seq

		width := float32(b.Dx())
		height := float32(b.Dy())
		vector.DrawFilledRect(rainCanvas, 0, 0, width, height,
			color.RGBA{0, 0, 0, cfg.RainStyle.FadeAlpha}, false)

		face := fonts.Glyph.Get()
		cell := ctrl.Rain().CellSize()
		for _, g := range glyphs {
			text.Draw(rainCanvas, string(g.R), face, g.Col*cell, g.Row*cell, cfg.RainStyle.GlyphColor)
		}
	}

	frame.DrawImage(rainCanvas, nil)
}

// CompositeFrame blits the offscreen frame to the screen, applying the
// controller's current displacement. Heavy bursts get the full slice
// treatment; otherwise the whole frame shifts by the active offset.
func CompositeFrame(e *ecs.ECS, frame, screen *ebiten.Image) {
	ctrl := controllerOf(e)

	var g breach.GlitchState
	glitching := false
	if ctrl != nil {
		g = ctrl.Glitch()
		glitching = ctrl.State() == breach.StateGlitching
	}

	if glitching && g.Heavy {
		compositeHeavy(frame, screen, g)
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(g.OffsetX, g.OffsetY)
	screen.DrawImage(frame, op)
}

// compositeHeavy redraws the frame as horizontal slices, each jittered
// sideways, with a green ghost copy underneath for the split look.
func compositeHeavy(frame, screen *ebiten.Image, g breach.GlitchState) {
	b := frame.Bounds()
	width := b.Dx()
	height := b.Dy()

	ghost := &ebiten.DrawImageOptions{}
	ghost.GeoM.Translate(g.OffsetX-3, g.OffsetY)
	ghost.ColorScale.Scale(0.2, 0.9, 0.3, 0.35)
	screen.DrawImage(frame, ghost)

	const sliceCount = 12
	sliceH := height/sliceCount + 1
	for y := 0; y < height; y += sliceH {
		bottom := y + sliceH
		if bottom > height {
			bottom = height
		}
		sub := frame.SubImage(image.Rect(0, y, width, bottom)).(*ebiten.Image)

		op := &ebiten.DrawImageOptions{}
		jitter := (glitchRng.Float64()*2 - 1) * 6
		op.GeoM.Translate(g.OffsetX+jitter, g.OffsetY+float64(y))
		screen.DrawImage(sub, op)
	}
}

// scaleAlpha scales a premultiplied color's channels uniformly.
func scaleAlpha(c color.RGBA, f float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * f),
		G: uint8(float32(c.G) * f),
		B: uint8(float32(c.B) * f),
		A: uint8(float32(c.A) * f),
	}
}

// darken scales a color's RGB toward black, keeping alpha.
func darken(c color.RGBA, f float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * f),
		G: uint8(float32(c.G) * f),
		B: uint8(float32(c.B) * f),
		A: c.A,
	}
}
