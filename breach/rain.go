package breach

import "math/rand"

// Glyph is one character to paint this frame, in cell coordinates.
type Glyph struct {
	Col, Row int
	R        rune
}

// RainField tracks one fall position per column of the glyph rain.
// Positions are in cells, not pixels; the renderer multiplies by the
// cell size when painting.
type RainField struct {
	cell        int
	alphabet    []rune
	resetChance float64

	width, height int
	drops         []int // fall position per column, in cells

	frame []Glyph // reused between steps
}

// dropStart is where fresh columns begin, one cell below the top edge so
// the first painted glyph is fully visible.
const dropStart = 1

// NewRainField creates a field sized to the given viewport.
func NewRainField(cfg Config, width, height int) *RainField {
	f := &RainField{
		cell:        cfg.CellSize,
		alphabet:    cfg.Alphabet,
		resetChance: cfg.ResetChance,
	}
	f.Resize(width, height)
	return f
}

// Resize recomputes the column count for a new viewport without
// interrupting the animation: surviving columns keep their fall position,
// new columns start near the top.
func (f *RainField) Resize(width, height int) {
	f.width, f.height = width, height
	cols := width / f.cell
	if cols < 0 {
		cols = 0
	}
	if cols <= len(f.drops) {
		f.drops = f.drops[:cols]
		return
	}
	for len(f.drops) < cols {
		f.drops = append(f.drops, dropStart)
	}
}

// Step advances every column by one cell and returns the glyphs to paint
// this frame. A column that has fallen past the bottom restarts from the
// top with a small random chance, which keeps the streams ragged instead
// of synchronized. The returned slice is reused by the next Step.
func (f *RainField) Step(rng *rand.Rand) []Glyph {
	f.frame = f.frame[:0]
	for i := range f.drops {
		g := f.alphabet[rng.Intn(len(f.alphabet))]
		f.frame = append(f.frame, Glyph{Col: i, Row: f.drops[i], R: g})

		if f.drops[i]*f.cell > f.height && rng.Float64() < f.resetChance {
			f.drops[i] = 0
		}
		f.drops[i]++
	}
	return f.frame
}

// Columns reports the current column count.
func (f *RainField) Columns() int { return len(f.drops) }

// CellSize reports the glyph cell edge in pixels.
func (f *RainField) CellSize() int { return f.cell }

// Position reports the fall position of one column, in cells.
func (f *RainField) Position(col int) int { return f.drops[col] }
