package imagepkg

import (
	"strings"

	"github.com/youruser/helpcard/internal/argb"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// TextParams describes one single-style paragraph. Rect.W is the wrap width;
// Rect.H is nominal and text may run past it. A non-empty Clip cuts off
// anything drawn outside it.
type TextParams struct {
	Rect     Rect
	FontSize float64
	Color    argb.Color
	Family   string
	Align    Align
	Clip     Rect
}

// DrawText lays out text wrapped to p.Rect.W and paints it from the rect's
// top-left. Glyphs are rasterised at device resolution so they stay sharp
// under supersampling.
func (c *Canvas) DrawText(text string, p TextParams) {
	if text == "" {
		return
	}
	x, y := c.dc.TransformPoint(p.Rect.X, p.Rect.Y)
	width := p.Rect.W * c.scale

	c.dc.Push()
	defer c.dc.Pop()
	if p.Clip.W > 0 && p.Clip.H > 0 {
		c.dc.DrawRectangle(p.Clip.X, p.Clip.Y, p.Clip.W, p.Clip.H)
		c.dc.Clip()
		defer c.dc.ResetClip()
	}
	c.dc.Identity()
	c.dc.SetFontFace(c.faces.face(p.Family, p.FontSize*c.scale))
	c.dc.SetColor(p.Color)

	ax := 0.0
	if p.Align == AlignCenter {
		ax, x = 0.5, x+width/2
	}
	for _, line := range c.wrap(text, width) {
		c.dc.DrawStringAnchored(line, x, y, ax, 1)
		y += c.dc.FontHeight()
	}
}

// MeasureText reports the wrapped size of text in logical units.
func (c *Canvas) MeasureText(text string, p TextParams) (w, h float64) {
	c.dc.Push()
	defer c.dc.Pop()
	c.dc.SetFontFace(c.faces.face(p.Family, p.FontSize*c.scale))
	lines := c.wrap(text, p.Rect.W*c.scale)
	w, h = c.dc.MeasureMultilineString(strings.Join(lines, "\n"), 1)
	return w / c.scale, h / c.scale
}

// wrap splits text into lines in device units with the current face.
func (c *Canvas) wrap(text string, width float64) []string {
	return wrapLines(text, width, func(s string) float64 {
		w, _ := c.dc.MeasureString(s)
		return w
	})
}

