package imagepkg

import (
	"bytes"
	"image"
	"image/png"

	"github.com/fogleman/gg"
)

// maxPixels bounds the device surface so absurd inputs fail instead of
// exhausting memory.
const maxPixels = 1 << 26

// Canvas is a supersampled drawing surface. Callers work in logical units;
// the context is scaled to device pixels once at creation.
type Canvas struct {
	dc            *gg.Context
	width, height float64
	scale         float64
	faces         faceCache
}

// NewCanvas allocates a width x height logical canvas rendered at scale.
func NewCanvas(width, height int, scale float64, fonts *FontSet) (*Canvas, error) {
	dw, dh := int(float64(width)*scale), int(float64(height)*scale)
	if width <= 0 || height <= 0 || dw <= 0 || dh <= 0 || dw*dh > maxPixels {
		return nil, ErrEncode
	}
	dc := gg.NewContext(dw, dh)
	dc.Scale(scale, scale)
	return &Canvas{
		dc:     dc,
		width:  float64(width),
		height: float64(height),
		scale:  scale,
		faces:  faceCache{fonts: fonts},
	}, nil
}

// DeviceSize is the surface size in pixels.
func (c *Canvas) DeviceSize() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG snapshots the surface as PNG.
func (c *Canvas) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.dc.Image()); err != nil {
		return nil, ErrEncode
	}
	return buf.Bytes(), nil
}

// Close releases the font faces opened for this canvas.
func (c *Canvas) Close() {
	c.faces.close()
}

// drawDevice composites img in device pixels, ignoring the logical scale
// but honouring the current clip. Sub-images land at their own bounds.
func (c *Canvas) drawDevice(img image.Image, x, y int) {
	c.dc.Push()
	c.dc.Identity()
	c.dc.DrawImage(img, x, y)
	c.dc.Pop()
}
