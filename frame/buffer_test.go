package frame

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamakit/spritec/rgb565"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, c)
		}
	}
	return m
}

func TestFromPixelsDimensionMismatch(t *testing.T) {
	_, err := FromPixels(make([]uint16, 10), 4, 4)
	require.Error(t, err)

	derr, ok := err.(*DimensionError)
	require.True(t, ok)
	assert.Equal(t, 4, derr.Width)
	assert.Equal(t, 4, derr.Height)
	assert.Equal(t, 10, derr.Pixels)
}

func TestFromPixelsCopies(t *testing.T) {
	pix := []uint16{1, 2, 3, 4}
	b, err := FromPixels(pix, 2, 2)
	require.NoError(t, err)

	pix[0] = 99
	assert.Equal(t, uint16(1), b.At(0, 0))
}

func TestFromImageColorKey(t *testing.T) {
	// One magenta pixel plus one opaque red pixel; with an explicit
	// 255,0,255 key the first becomes the sentinel and the second the
	// quantized red.
	m := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	m.SetNRGBA(0, 0, color.NRGBA{255, 0, 255, 255})
	m.SetNRGBA(1, 0, color.NRGBA{255, 60, 60, 255})

	b := FromImage(m, &ColorKey{255, 0, 255})
	require.Equal(t, 2, b.Len())

	assert.True(t, rgb565.IsTransparent(b.At(0, 0)))

	want, err := rgb565.Encode(255, 60, 60)
	require.NoError(t, err)
	assert.Equal(t, want, b.At(1, 0))
}

func TestFromImageAlphaThreshold(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	m.SetNRGBA(0, 0, color.NRGBA{10, 20, 30, 0})
	m.SetNRGBA(1, 0, color.NRGBA{10, 20, 30, 127})
	m.SetNRGBA(2, 0, color.NRGBA{10, 20, 30, 128})

	b := FromImage(m, nil)

	assert.True(t, rgb565.IsTransparent(b.At(0, 0)))
	assert.True(t, rgb565.IsTransparent(b.At(1, 0)))
	assert.False(t, rgb565.IsTransparent(b.At(2, 0)))
}

func TestFromImageKeyWinsOverOpaqueAlpha(t *testing.T) {
	// Fully opaque magenta still keys out when the key is supplied.
	m := solid(1, 1, color.NRGBA{255, 0, 255, 255})
	b := FromImage(m, &ColorKey{255, 0, 255})
	assert.True(t, rgb565.IsTransparent(b.At(0, 0)))

	// Without a key, opaque magenta is perturbed but stays opaque.
	b = FromImage(m, nil)
	assert.False(t, rgb565.IsTransparent(b.At(0, 0)))
}

func TestFromImageSemiTransparentStraightColor(t *testing.T) {
	// Alpha in [128,255) keeps the straight source color: magenta still
	// matches the key and red encodes without premultiplied darkening,
	// whatever the source pixel format.
	for name, m := range map[string]image.Image{
		"nrgba": func() image.Image {
			m := image.NewNRGBA(image.Rect(0, 0, 2, 1))
			m.SetNRGBA(0, 0, color.NRGBA{255, 0, 255, 200})
			m.SetNRGBA(1, 0, color.NRGBA{255, 60, 60, 200})
			return m
		}(),
		"rgba": func() image.Image {
			m := image.NewRGBA(image.Rect(0, 0, 2, 1))
			m.Set(0, 0, color.NRGBA{255, 0, 255, 200})
			m.Set(1, 0, color.NRGBA{255, 60, 60, 200})
			return m
		}(),
	} {
		b := FromImage(m, &ColorKey{255, 0, 255})

		assert.True(t, rgb565.IsTransparent(b.At(0, 0)), name)

		r, _, _ := rgb565.Decode(b.At(1, 0))
		assert.True(t, r >= 248, "%s: red channel darkened to %d", name, r)
	}
}

func TestImageRoundTrip(t *testing.T) {
	blue, err := rgb565.Encode(80, 120, 248)
	require.NoError(t, err)

	pix := []uint16{rgb565.Transparent, blue, blue, rgb565.Transparent}
	b, err := FromPixels(pix, 2, 2)
	require.NoError(t, err)

	m := b.Image()

	assert.Equal(t, uint8(0), m.NRGBAAt(0, 0).A)
	assert.Equal(t, uint8(0xff), m.NRGBAAt(1, 0).A)

	// Converting the rendered image back yields an identical buffer;
	// decoded channel values re-encode to the same packed pixels.
	again := FromImage(m, nil)
	assert.True(t, b.Equal(again))
}

func TestEqual(t *testing.T) {
	a, err := FromPixels([]uint16{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	b, err := FromPixels([]uint16{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	c, err := FromPixels([]uint16{1, 2, 3, 5}, 2, 2)
	require.NoError(t, err)
	d, err := FromPixels([]uint16{1, 2, 3, 4}, 4, 1)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}

func TestParseColorKey(t *testing.T) {
	key, err := ParseColorKey("255,0,255")
	require.NoError(t, err)
	assert.Equal(t, &ColorKey{255, 0, 255}, key)

	_, err = ParseColorKey("255,0")
	assert.Error(t, err)

	_, err = ParseColorKey("300,0,0")
	assert.Error(t, err)
}
