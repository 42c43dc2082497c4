package imagepkg

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"

	_ "golang.org/x/image/webp"
)

// decodeRaster sniffs data by magic bytes and decodes it. PNG, JPEG, GIF,
// BMP, TIFF and WebP are supported.
func decodeRaster(data []byte) (image.Image, error) {
	if !filetype.IsImage(data) {
		return nil, ErrDecode
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrDecode
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrDecode
	}
	return img, nil
}
