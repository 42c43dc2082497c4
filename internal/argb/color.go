// Package argb holds the 8-bit ARGB colour value used by the renderer and
// the parser for the colour strings accepted at the API boundary.
package argb

import "image/color"

// Color is a non-premultiplied 8-bit ARGB colour.
type Color struct {
	A, R, G, B uint8
}

var (
	Black = Color{A: 0xff}
	White = Color{A: 0xff, R: 0xff, G: 0xff, B: 0xff}
)

// New builds a colour from its alpha, red, green and blue channels.
func New(a, r, g, b uint8) Color {
	return Color{A: a, R: r, G: g, B: b}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
