package breach

import (
	"io"
	"log"
	"math/rand"
	"testing"
	"time"
)

func init() {
	// Diagnostics go to the developer console in the app; keep test output clean.
	log.SetOutput(io.Discard)
}

type manualClock struct{ now time.Time }

func (m *manualClock) Now() time.Time          { return m.now }
func (m *manualClock) advance(d time.Duration) { m.now = m.now.Add(d) }

func newTestController(cfg Config, seed int64) (*Controller, *manualClock) {
	clk := &manualClock{now: time.Unix(1000, 0)}
	c := NewController(cfg, clk, rand.New(rand.NewSource(seed)))
	c.Resize(280, 200)
	return c, clk
}

func TestActivateRunsSequenceAtMostOnce(t *testing.T) {
	c, _ := newTestController(DefaultConfig(), 1)

	var entered []State
	alarms := 0
	c.OnPhase = func(_, next State) { entered = append(entered, next) }
	c.OnAlarm = func() { alarms++ }

	c.Activate()
	c.Activate()

	if got := c.State(); got != StateWarning {
		t.Fatalf("state after double activate = %v, want %v", got, StateWarning)
	}
	if len(entered) != 1 || entered[0] != StateWarning {
		t.Fatalf("phase transitions = %v, want exactly one into warning", entered)
	}
	if alarms != 1 {
		t.Fatalf("alarm fired %d times, want 1", alarms)
	}
	if !c.Locked() {
		t.Fatal("lock not set by activation")
	}
}

func TestDisableBeforeActivateBlocksForever(t *testing.T) {
	c, clk := newTestController(DefaultConfig(), 1)

	c.Disable()
	if got := c.State(); got != StateLocked {
		t.Fatalf("state after disable = %v, want %v", got, StateLocked)
	}

	for i := 0; i < 3; i++ {
		c.Activate()
		clk.advance(time.Second)
		c.Advance()
	}
	if got := c.State(); got != StateLocked {
		t.Fatalf("activate after disable moved state to %v", got)
	}
}

func TestDisableDoesNotRewindRunningSequence(t *testing.T) {
	cfg := DefaultConfig()
	c, clk := newTestController(cfg, 1)

	c.Activate()
	clk.advance(cfg.WarningDwell)
	c.Advance()
	if got := c.State(); got != StateGlitching {
		t.Fatalf("state = %v, want %v", got, StateGlitching)
	}

	c.Disable()
	if got := c.State(); got != StateGlitching {
		t.Fatalf("disable rewound a running sequence to %v", got)
	}
}

func TestGlitchBurstsExpireAfterBurstLength(t *testing.T) {
	cfg := DefaultConfig()
	// Force both sub-effects to fire on every tick, and space ticks far
	// apart so expiry is observable between them.
	cfg.HeavyThreshold = -1
	cfg.OffsetThreshold = -1
	cfg.GlitchTick = 500 * time.Millisecond
	cfg.GlitchTotal = 5 * time.Second
	c, clk := newTestController(cfg, 7)

	c.Activate()
	clk.advance(cfg.WarningDwell)
	c.Advance()

	clk.advance(cfg.GlitchTick)
	c.Advance()
	g := c.Glitch()
	if !g.Heavy {
		t.Fatal("heavy burst did not fire on a forced tick")
	}
	if g.OffsetX == 0 && g.OffsetY == 0 {
		t.Fatal("offset burst did not fire on a forced tick")
	}

	clk.advance(cfg.BurstLength + 10*time.Millisecond)
	c.Advance()
	g = c.Glitch()
	if g.Heavy || g.OffsetX != 0 || g.OffsetY != 0 {
		t.Fatalf("burst survived past its lifetime: %+v", g)
	}
}

func TestGlitchExitLeavesNoMarkersOrOffsets(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HeavyThreshold = -1 // every tick fires, including the last one
	cfg.OffsetThreshold = -1
	c, clk := newTestController(cfg, 3)

	c.Activate()
	clk.advance(cfg.WarningDwell)
	c.Advance()

	clk.advance(cfg.GlitchTotal)
	c.Advance()

	if got := c.State(); got != StateRaining {
		t.Fatalf("state after glitch duration = %v, want %v", got, StateRaining)
	}
	if g := c.Glitch(); g.Heavy || g.OffsetX != 0 || g.OffsetY != 0 {
		t.Fatalf("glitch residue after phase exit: %+v", g)
	}
}

func TestFullSequenceEndToEnd(t *testing.T) {
	cfg := DefaultConfig()
	c, clk := newTestController(cfg, 42)

	c.Activate()
	if got := c.State(); got != StateWarning {
		t.Fatalf("phase 1: state = %v, want %v", got, StateWarning)
	}
	if c.Rain() != nil {
		t.Fatal("rain field exists before the rain phase")
	}

	// Warning dwell elapses in small steps; nothing may skip the phase early.
	clk.advance(cfg.WarningDwell / 2)
	c.Advance()
	if got := c.State(); got != StateWarning {
		t.Fatalf("warning ended early at %v", got)
	}
	clk.advance(cfg.WarningDwell / 2)
	c.Advance()
	if got := c.State(); got != StateGlitching {
		t.Fatalf("phase 2: state = %v, want %v", got, StateGlitching)
	}

	// Drive the glitch phase tick by tick to its end.
	for elapsed := time.Duration(0); elapsed < cfg.GlitchTotal; elapsed += cfg.GlitchTick {
		clk.advance(cfg.GlitchTick)
		c.Advance()
	}
	if got := c.State(); got != StateRaining {
		t.Fatalf("phase 3: state = %v, want %v", got, StateRaining)
	}

	// Rain persists and keeps stepping.
	_, seqBefore := c.RainFrame()
	for i := 0; i < 100; i++ {
		clk.advance(16 * time.Millisecond)
		c.Advance()
	}
	frame, seqAfter := c.RainFrame()
	if got := c.State(); got != StateRaining {
		t.Fatalf("rain phase terminated at %v", got)
	}
	if seqAfter != seqBefore+100 {
		t.Fatalf("rain stepped %d times, want 100", seqAfter-seqBefore)
	}
	if len(frame) != c.Rain().Columns() {
		t.Fatalf("frame has %d glyphs for %d columns", len(frame), c.Rain().Columns())
	}
}

func TestResizeDuringRainRecomputesColumns(t *testing.T) {
	cfg := DefaultConfig()
	c, clk := newTestController(cfg, 9)

	c.Activate()
	clk.advance(cfg.WarningDwell)
	c.Advance()
	clk.advance(cfg.GlitchTotal)
	c.Advance()

	want := 280 / cfg.CellSize
	if got := c.Rain().Columns(); got != want {
		t.Fatalf("columns = %d, want %d", got, want)
	}

	c.Resize(280*2, 200)
	if got := c.Rain().Columns(); got != want*2 {
		t.Fatalf("columns after resize = %d, want %d", got, want*2)
	}
}
