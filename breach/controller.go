package breach

import (
	"log"
	"math/rand"
	"time"
)

// State identifies where the breach sequence currently is.
type State int

const (
	StateIdle      State = iota // nothing has happened yet
	StateWarning                // warning panel on screen
	StateGlitching              // glitch markers and offsets firing
	StateRaining                // terminal: glyph rain until exit
	StateLocked                 // disabled before the sequence ever ran
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWarning:
		return "warning"
	case StateGlitching:
		return "glitching"
	case StateRaining:
		return "raining"
	case StateLocked:
		return "locked"
	}
	return "unknown"
}

// GlitchState is the renderer-visible output of the glitch phase.
// OffsetX/OffsetY displace the whole composited frame while a burst is
// live and are zero otherwise.
type GlitchState struct {
	Heavy   bool
	OffsetX float64
	OffsetY float64
}

// Controller owns the one-shot breach sequence: the activation lock, the
// phase timing, the glitch perturbations and the rain field. It never
// blocks; every phase boundary happens inside Advance, which the host
// scene calls once per frame. All methods must be called from the update
// goroutine - the controller does no locking of its own.
type Controller struct {
	cfg   Config
	clock Clock
	rng   *rand.Rand

	state      State
	locked     bool
	phaseStart time.Time

	// glitch phase; ticksDone is non-zero only while glitching
	ticksDone   int
	heavyUntil  time.Time
	offsetUntil time.Time
	glitch      GlitchState

	// rain phase
	width, height int
	rain          *RainField
	rainFrame     []Glyph
	rainSeq       uint64

	// Optional hooks, invoked synchronously from Activate and Advance.
	OnPhase func(prev, next State)
	OnAlarm func()
}

// NewController wires a controller to its time and randomness sources.
// Pass SystemClock and a time-seeded rand for real use; tests inject a
// manual clock and a fixed seed.
func NewController(cfg Config, clock Clock, rng *rand.Rand) *Controller {
	return &Controller{cfg: cfg, clock: clock, rng: rng}
}

const activationBanner = `
[breach] ╔═══════════════════════════════════════╗
[breach] ║   !!  SYSTEM BREACH IN PROGRESS  !!   ║
[breach] ║   unauthorized access detected        ║
[breach] ║   containment ........... FAILED      ║
[breach] ║   visual integrity ...... DEGRADING   ║
[breach] ╚═══════════════════════════════════════╝`

// Activate starts the breach sequence. The activation lock is set
// synchronously before anything else happens, so a second call - even one
// arriving in the same frame - only logs that the sequence is spent.
func (c *Controller) Activate() {
	if c.locked {
		log.Printf("[breach] activation refused: trigger is locked for this run")
		return
	}
	c.locked = true
	log.Print(activationBanner)

	// Alarm playback is best-effort; the adapter logs and swallows failure.
	if c.OnAlarm != nil {
		c.OnAlarm()
	}

	c.phaseStart = c.clock.Now()
	c.setState(StateWarning)
}

// Disable permanently locks activation. A sequence that is already
// running is left alone. Idempotent.
func (c *Controller) Disable() {
	c.locked = true
	if c.state == StateIdle {
		c.setState(StateLocked)
	}
	log.Printf("[breach] trigger disabled")
}

// Resize records the drawable viewport. During the rain phase the field
// recomputes its column count in place.
func (c *Controller) Resize(width, height int) {
	c.width, c.height = width, height
	if c.rain != nil {
		c.rain.Resize(width, height)
	}
}

// Advance drives every timed transition. Call once per frame.
func (c *Controller) Advance() {
	now := c.clock.Now()
	switch c.state {
	case StateWarning:
		if now.Sub(c.phaseStart) >= c.cfg.WarningDwell {
			c.phaseStart = now
			c.ticksDone = 0
			c.setState(StateGlitching)
		}
	case StateGlitching:
		c.advanceGlitch(now)
	case StateRaining:
		c.rainFrame = c.rain.Step(c.rng)
		c.rainSeq++
	}
}

func (c *Controller) advanceGlitch(now time.Time) {
	// Expire live bursts before possibly firing new ones.
	if c.glitch.Heavy && now.After(c.heavyUntil) {
		c.glitch.Heavy = false
	}
	if (c.glitch.OffsetX != 0 || c.glitch.OffsetY != 0) && now.After(c.offsetUntil) {
		c.glitch.OffsetX, c.glitch.OffsetY = 0, 0
	}

	elapsed := now.Sub(c.phaseStart)
	due := int(elapsed / c.cfg.GlitchTick)
	for ; c.ticksDone < due; c.ticksDone++ {
		// Two independent rolls: both, either or neither may fire.
		if c.rng.Float64() > c.cfg.HeavyThreshold {
			c.glitch.Heavy = true
			c.heavyUntil = now.Add(c.cfg.BurstLength)
		}
		if c.rng.Float64() > c.cfg.OffsetThreshold {
			c.glitch.OffsetX = (c.rng.Float64()*2 - 1) * c.cfg.OffsetMaxX
			c.glitch.OffsetY = (c.rng.Float64()*2 - 1) * c.cfg.OffsetMaxY
			c.offsetUntil = now.Add(c.cfg.BurstLength)
		}
	}

	if elapsed >= c.cfg.GlitchTotal {
		c.endGlitch(now)
	}
}

// endGlitch clears every marker and offset exactly once, even when the
// final tick fired a burst during the same frame, then hands over to the
// rain phase.
func (c *Controller) endGlitch(now time.Time) {
	c.glitch = GlitchState{}
	c.ticksDone = 0
	c.phaseStart = now
	c.rain = NewRainField(c.cfg, c.width, c.height)
	c.setState(StateRaining)
}

func (c *Controller) setState(next State) {
	prev := c.state
	c.state = next
	if c.OnPhase != nil {
		c.OnPhase(prev, next)
	}
}

// State reports the current phase.
func (c *Controller) State() State { return c.state }

// Locked reports whether activation is spent or disabled.
func (c *Controller) Locked() bool { return c.locked }

// Glitch returns the live glitch markers and offsets.
func (c *Controller) Glitch() GlitchState { return c.glitch }

// Rain returns the rain field, non-nil only once StateRaining is entered.
func (c *Controller) Rain() *RainField { return c.rain }

// RainFrame returns the glyphs produced by the latest Advance and a
// sequence number that increments once per step, letting the renderer
// skip frames it has already painted onto the trail canvas.
func (c *Controller) RainFrame() ([]Glyph, uint64) { return c.rainFrame, c.rainSeq }
