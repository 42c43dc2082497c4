package imagepkg

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"math"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

var errNotSVG = errors.New("not an svg document")

// NormalizeIcon turns icon bytes into a size x size PNG.
//
// SVG input is rasterised with a uniform scale so the larger side exactly
// fills the square; the other side under-fills from the top-left and the
// rest stays transparent. Raster input is resized to exactly size x size with
// a Lanczos filter, stretching if the aspect ratio differs.
func NormalizeIcon(data []byte, size int) ([]byte, error) {
	if size <= 0 || size*size > maxPixels {
		return nil, ErrEncode
	}

	var img image.Image
	if icon, err := rasterizeSVG(data, size); err == nil {
		img = icon
	} else {
		src, err := decodeRaster(data)
		if err != nil {
			return nil, err
		}
		img = imaging.Resize(src, size, size, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, ErrEncode
	}
	return buf.Bytes(), nil
}

// looksLikeSVG reports whether data may be a vector document: it carries no
// raster signature and has an <svg element anywhere, however long the prolog.
func looksLikeSVG(data []byte) bool {
	return !filetype.IsImage(data) && bytes.Contains(data, []byte("<svg"))
}

func rasterizeSVG(data []byte, size int) (*image.RGBA, error) {
	if !looksLikeSVG(data) {
		return nil, errNotSVG
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	w, h := icon.ViewBox.W, icon.ViewBox.H
	if !(w > 0 && h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return nil, errNotSVG
	}

	scale := float64(size) / math.Max(w, h)
	icon.SetTarget(0, 0, w*scale, h*scale)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

// DrawIcon decodes a normalised icon and draws it into dst. Icons already at
// device resolution are copied pixel for pixel.
func (c *Canvas) DrawIcon(icon []byte, dst Rect) error {
	img, err := png.Decode(bytes.NewReader(icon))
	if err != nil {
		return ErrDecode
	}
	d := dst.Scale(c.scale)
	w, h := int(math.Round(d.W)), int(math.Round(d.H))
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		img = imaging.Resize(img, w, h, imaging.Linear)
	}
	c.drawDevice(img, int(math.Round(d.X)), int(math.Round(d.Y)))
	return nil
}
