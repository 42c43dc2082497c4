package imagepkg

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/youruser/helpcard/internal/argb"
)

// CardStyle holds the fixed look of a card, in logical units.
type CardStyle struct {
	Radius     float64
	BlurSigma  float64
	ShadowBlur float64
	Shadow     argb.Color
}

// DrawCard draws one rounded card at r: the frosted backdrop clipped to the
// card shape (skipped when bd is nil), then a soft shadow, then the
// translucent fill.
func (c *Canvas) DrawCard(r Rect, fill argb.Color, bd *Backdrop, st CardStyle) {
	if bd != nil {
		dw, dh := c.DeviceSize()
		plate := bd.frosted(dw, dh, st.BlurSigma*c.scale)

		c.dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, st.Radius)
		c.dc.Clip()
		c.drawDevice(subImage(plate, r.Scale(c.scale).Bounds()), 0, 0)
		c.dc.ResetClip()
	}

	c.drawShadow(r, st)

	c.dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, st.Radius)
	c.dc.SetColor(fill)
	c.dc.Fill()
}

// shadowDownsample is the reduction applied to the shadow mask before it is
// blurred; the blur hides the lost detail.
const shadowDownsample = 2

// drawShadow renders the card shape into a scratch mask, blurs it with a
// Gaussian of standard deviation st.ShadowBlur and composites it under where
// the fill will go.
func (c *Canvas) drawShadow(r Rect, st CardStyle) {
	d := r.Scale(c.scale)
	sigma := st.ShadowBlur * c.scale
	margin := int(math.Ceil(3 * sigma))
	x0, y0 := math.Floor(d.X), math.Floor(d.Y)

	w := int(math.Ceil(d.Right()-x0)) + 2*margin
	h := int(math.Ceil(d.Bottom()-y0)) + 2*margin
	mw := (w + shadowDownsample - 1) / shadowDownsample
	mh := (h + shadowDownsample - 1) / shadowDownsample
	mask := gg.NewContext(mw, mh)
	mask.Scale(1.0/shadowDownsample, 1.0/shadowDownsample)
	mask.DrawRoundedRectangle(d.X-x0+float64(margin), d.Y-y0+float64(margin), d.W, d.H, st.Radius*c.scale)
	mask.SetColor(st.Shadow)
	mask.Fill()

	// bild weights taps by exp(-x²/(4r)), so r = σ²/2 gives a true Gaussian.
	s := sigma / shadowDownsample
	soft := blur.Gaussian(mask.Image(), s*s/2)
	shadow := imaging.Resize(soft, mw*shadowDownsample, mh*shadowDownsample, imaging.Linear)
	c.drawDevice(shadow, int(x0)-margin, int(y0)-margin)
}

func subImage(img image.Image, r image.Rectangle) image.Image {
	if s, ok := img.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		return s.SubImage(r)
	}
	return img
}
