package imagepkg

import (
	"strings"
	"testing"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wideSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="40" height="20" viewBox="0 0 40 20">
  <rect x="0" y="0" width="40" height="20" fill="#ff0000"/>
</svg>`

func TestNormalizeIconSVGKeepsAspect(t *testing.T) {
	out, err := NormalizeIcon([]byte(wideSVG), 20)
	require.NoError(t, err)

	img := decodePNG(t, out)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())

	// the 2:1 rect fills the top half only
	assertColor(t, red, nrgbaAt(img, 10, 4))
	assertColor(t, red, nrgbaAt(img, 0, 0))
	assert.Equal(t, uint8(0), nrgbaAt(img, 10, 15).A)
	assert.Equal(t, uint8(0), nrgbaAt(img, 19, 19).A)
}

func paddedSVG() []byte {
	return []byte(`<?xml version="1.0" encoding="UTF-8"?>
<!-- ` + strings.Repeat("x", 5000) + ` -->
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect width="10" height="10" fill="#ff0000"/></svg>`)
}

func TestNormalizeIconSVGAfterLongProlog(t *testing.T) {
	out, err := NormalizeIcon(paddedSVG(), 20)
	require.NoError(t, err)

	img := decodePNG(t, out)
	assertColor(t, red, nrgbaAt(img, 10, 10))
	assertColor(t, red, nrgbaAt(img, 18, 18))
}

func TestNormalizeIconRasterStretches(t *testing.T) {
	out, err := NormalizeIcon(pngBytes(t, 40, 20, green), 20)
	require.NoError(t, err)

	img := decodePNG(t, out)
	require.Equal(t, 20, img.Bounds().Dx())
	require.Equal(t, 20, img.Bounds().Dy())
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			c := nrgbaAt(img, x, y)
			assert.Equal(t, uint8(255), c.A)
			assert.Greater(t, c.G, uint8(250))
		}
	}
}

func TestNormalizeIconRasterFormats(t *testing.T) {
	qr, err := qrcode.Encode("https://example.com/help", qrcode.Medium, 64)
	require.NoError(t, err)

	out, err := NormalizeIcon(qr, 40)
	require.NoError(t, err)
	img := decodePNG(t, out)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 40, img.Bounds().Dy())
}

func TestNormalizeIconDecodeErrors(t *testing.T) {
	valid := pngBytes(t, 8, 8, red)
	cases := map[string][]byte{
		"garbage":   []byte("this is not an image"),
		"truncated": valid[:24],
		"bad svg":   []byte("<svg><<<"),
		"empty svg": []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`),
	}
	for name, data := range cases {
		_, err := NormalizeIcon(data, 20)
		assert.ErrorIs(t, err, ErrDecode, name)
	}
}

func TestNormalizeIconBadSize(t *testing.T) {
	_, err := NormalizeIcon(pngBytes(t, 8, 8, red), 0)
	assert.ErrorIs(t, err, ErrEncode)
}

func TestNormalizeIconDeterministic(t *testing.T) {
	a, err := NormalizeIcon([]byte(wideSVG), 40)
	require.NoError(t, err)
	b, err := NormalizeIcon([]byte(wideSVG), 40)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDrawIcon(t *testing.T) {
	cv, err := NewCanvas(40, 40, 2, nil)
	require.NoError(t, err)
	_, err = cv.DrawBackground(nil, whiteARGB)
	require.NoError(t, err)

	icon, err := NormalizeIcon(pngBytes(t, 4, 4, blue), 40)
	require.NoError(t, err)
	require.NoError(t, cv.DrawIcon(icon, Rect{X: 10, Y: 10, W: 20, H: 20}))

	img := cv.Image()
	assertColor(t, blue, nrgbaAt(img, 40, 40))
	assertColor(t, blue, nrgbaAt(img, 20, 20))
	assertColor(t, white, nrgbaAt(img, 19, 19))
	assertColor(t, white, nrgbaAt(img, 60, 60))

	assert.ErrorIs(t, cv.DrawIcon([]byte("nope"), Rect{W: 20, H: 20}), ErrDecode)
}
