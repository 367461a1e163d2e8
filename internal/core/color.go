package core

import (
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a colour with 8-bit channels and a fractional alpha in [0, 1].
// Values are immutable by convention; build a new one for every draw call.
type RGBA struct {
	R, G, B uint8
	A       float64
}

// Predefined colours.
var (
	White = RGBA{R: 255, G: 255, B: 255, A: 1}
	Black = RGBA{A: 1}
)

// WithAlpha returns a copy of c with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = ClampF(a, 0, 1)
	return c
}

// String formats the colour as a CSS style string, e.g. "rgba(255,255,255,0.5)".
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B,
		strconv.FormatFloat(c.A, 'f', -1, 64))
}

// Hex returns the colour channels as "#rrggbb", ignoring alpha.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA8 returns the channels as non-premultiplied 8-bit values.
func (c RGBA) RGBA8() (r, g, b, a uint8) {
	return c.R, c.G, c.B, uint8(ClampF(c.A, 0, 1)*255 + 0.5)
}

// ParseHex parses a "#rrggbb" (or "#rgb") colour with full opacity.
func ParseHex(s string) (RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGBA{R: r, G: g, B: b, A: 1}, nil
}

// Grey returns an opaque grey with the given 8-bit level.
func Grey(level uint8) RGBA {
	return RGBA{R: level, G: level, B: level, A: 1}
}
