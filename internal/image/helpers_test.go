package imagepkg

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/youruser/helpcard/internal/argb"
)

// pngBytes encodes a w x h image whose columns are painted left to right
// with the given colours in equal bands.
func pngBytes(t *testing.T, w, h int, bands ...color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		c := bands[x*len(bands)/w]
		for y := 0; y < h; y++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodePNG(t *testing.T, b []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	return img
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

var (
	white     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	whiteARGB = argb.White
)

// assertColor checks every channel of got is within 2 of want.
func assertColor(t *testing.T, want, got color.NRGBA, msgAndArgs ...any) {
	t.Helper()
	near := func(a, b uint8) bool {
		d := int(a) - int(b)
		return d >= -2 && d <= 2
	}
	if !(near(want.R, got.R) && near(want.G, got.G) && near(want.B, got.B) && near(want.A, got.A)) {
		t.Errorf("colour %v, want %v %v", got, want, msgAndArgs)
	}
}
