package imagepkg

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/youruser/helpcard/internal/argb"
)

// blurDownsample is the factor the frosted plate is blurred at. A Gaussian
// this wide loses nothing visible at quarter resolution.
const blurDownsample = 4

// Backdrop is a decoded background image shared by every card of a render.
// Cards sample it through their own clip as if looking through glass at the
// full canvas background.
type Backdrop struct {
	src  image.Image
	crop image.Rectangle

	// plate is the blurred full-canvas cover fit, built on first use.
	plate      image.Image
	plateSigma float64
}

// DrawBackground paints the base layer. With no image data the canvas is
// cleared to fill and nil is returned. Otherwise the image is decoded and
// cover-fitted onto the whole canvas, and a Backdrop for card blur is
// returned.
func (c *Canvas) DrawBackground(data []byte, fill argb.Color) (*Backdrop, error) {
	if len(data) == 0 {
		c.dc.SetColor(fill)
		c.dc.Clear()
		return nil, nil
	}

	src, err := decodeRaster(data)
	if err != nil {
		return nil, err
	}
	bd := &Backdrop{
		src:  src,
		crop: coverCrop(src.Bounds(), c.width, c.height),
	}

	dw, dh := c.DeviceSize()
	c.drawDevice(bd.cover(dw, dh, imaging.Lanczos), 0, 0)
	return bd, nil
}

// Crop is the centred source rectangle used for the cover fit.
func (b *Backdrop) Crop() image.Rectangle {
	return b.crop
}

func (b *Backdrop) cover(w, h int, filter imaging.ResampleFilter) *image.NRGBA {
	return imaging.Resize(imaging.Crop(b.src, b.crop), w, h, filter)
}

// frosted returns the cover fit blurred with sigma device pixels, scaled to
// w x h.
func (b *Backdrop) frosted(w, h int, sigma float64) image.Image {
	if b.plate != nil && b.plateSigma == sigma {
		return b.plate
	}
	sw := max(1, w/blurDownsample)
	sh := max(1, h/blurDownsample)
	small := imaging.Blur(b.cover(sw, sh, imaging.Box), sigma/blurDownsample)
	b.plate = imaging.Resize(small, w, h, imaging.Linear)
	b.plateSigma = sigma
	return b.plate
}
