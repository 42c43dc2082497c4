package imagepkg

import (
	"image"
	"math"
)

// Rect is a rectangle in logical canvas units.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Scale(s float64) Rect {
	return Rect{X: r.X * s, Y: r.Y * s, W: r.W * s, H: r.H * s}
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Bounds rounds r outward to whole pixels.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())),
	)
}

// CoverRect returns the source crop of an srcW x srcH image that, stretched
// over a dstW x dstH destination, fills it without gaps while keeping the
// aspect ratio. The crop is centred on the source.
func CoverRect(srcW, srcH, dstW, dstH float64) Rect {
	scale := math.Max(dstW/srcW, dstH/srcH)
	w := dstW / scale
	h := dstH / scale
	return Rect{X: (srcW - w) / 2, Y: (srcH - h) / 2, W: w, H: h}
}

// coverCrop is CoverRect rounded to a pixel rectangle inside b.
func coverCrop(b image.Rectangle, dstW, dstH float64) image.Rectangle {
	r := CoverRect(float64(b.Dx()), float64(b.Dy()), dstW, dstH)
	crop := image.Rect(
		int(math.Round(r.X)), int(math.Round(r.Y)),
		int(math.Round(r.Right())), int(math.Round(r.Bottom())),
	).Add(b.Min).Intersect(b)
	if crop.Empty() {
		return b
	}
	return crop
}
