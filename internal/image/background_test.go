package imagepkg

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/youruser/helpcard/internal/argb"
)

func TestDrawBackgroundSolid(t *testing.T) {
	cv, err := NewCanvas(50, 30, 2, nil)
	require.NoError(t, err)

	bd, err := cv.DrawBackground(nil, argb.New(255, 10, 128, 200))
	require.NoError(t, err)
	assert.Nil(t, bd)

	w, h := cv.DeviceSize()
	assert.Equal(t, 100, w)
	assert.Equal(t, 60, h)
	want := color.NRGBA{R: 10, G: 128, B: 200, A: 255}
	for _, p := range []image.Point{{0, 0}, {99, 59}, {50, 30}} {
		assert.Equal(t, want, nrgbaAt(cv.Image(), p.X, p.Y))
	}
}

func TestDrawBackgroundCover(t *testing.T) {
	// 200x100 source, bands green|red red|blue; a square canvas must only
	// show the red middle.
	src := pngBytes(t, 200, 100, green, red, red, blue)

	cv, err := NewCanvas(100, 100, 2, nil)
	require.NoError(t, err)
	bd, err := cv.DrawBackground(src, argb.White)
	require.NoError(t, err)
	require.NotNil(t, bd)
	assert.Equal(t, image.Rect(50, 0, 150, 100), bd.Crop())

	img := cv.Image()
	for _, p := range []image.Point{{0, 0}, {199, 0}, {0, 199}, {199, 199}, {100, 100}} {
		assertColor(t, red, nrgbaAt(img, p.X, p.Y), p)
	}
}

func TestDrawBackgroundDecodeError(t *testing.T) {
	cv, err := NewCanvas(10, 10, 2, nil)
	require.NoError(t, err)
	_, err = cv.DrawBackground([]byte("GIF89a but not really"), argb.White)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestNewCanvasLimits(t *testing.T) {
	_, err := NewCanvas(0, 10, 2, nil)
	assert.ErrorIs(t, err, ErrEncode)
	_, err = NewCanvas(600, 1<<20, 2, nil)
	assert.ErrorIs(t, err, ErrEncode)
}

func TestEncodePNG(t *testing.T) {
	cv, err := NewCanvas(12, 8, 2, nil)
	require.NoError(t, err)
	_, err = cv.DrawBackground(nil, argb.Black)
	require.NoError(t, err)

	out, err := cv.EncodePNG()
	require.NoError(t, err)
	img := decodePNG(t, out)
	assert.Equal(t, image.Rect(0, 0, 24, 16), img.Bounds())
}
