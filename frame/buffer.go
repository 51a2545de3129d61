/*
Package frame implements fixed-size RGB565 animation frames and the
spritesheet layout that packs several frames into a single raster image.

A frame is an ordered, row-major sequence of packed color values. Frames
are immutable once constructed; producers build a plain pixel slice or a
raster image first and freeze it into a Buffer.
*/
package frame

import (
	"fmt"
	"image"
	"image/color"

	"github.com/tamakit/spritec/rgb565"
)

// Source pixels with an 8-bit alpha below this are treated as transparent.
const alphaThreshold = 128

// DimensionError reports a pixel count that does not match the requested
// frame dimensions.
type DimensionError struct {
	Width, Height, Pixels int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("frame: %d pixels for a %dx%d frame, want %d",
		e.Pixels, e.Width, e.Height, e.Width*e.Height)
}

// ColorKey is an exact RGB triple treated as transparent in addition to
// alpha-channel transparency.
type ColorKey struct {
	R, G, B uint8
}

// ParseColorKey parses a "R,G,B" string such as "255,0,255".
func ParseColorKey(s string) (*ColorKey, error) {
	var r, g, b int
	if n, err := fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b); n != 3 || err != nil {
		return nil, fmt.Errorf("frame: color key %q is not of the form R,G,B", s)
	}
	for _, c := range []int{r, g, b} {
		if c < 0 || c > 255 {
			return nil, rgb565.ComponentError(c)
		}
	}
	return &ColorKey{uint8(r), uint8(g), uint8(b)}, nil
}

// String renders the key in the same R,G,B form ParseColorKey accepts.
func (k *ColorKey) String() string {
	return fmt.Sprintf("%d,%d,%d", k.R, k.G, k.B)
}

// Buffer is one immutable animation frame of packed RGB565 pixels, row-major
// from the top-left corner.
type Buffer struct {
	width, height int
	pix           []uint16
}

// FromPixels freezes a row-major pixel slice into a Buffer. The slice is
// copied, so the caller may keep mutating its own copy.
func FromPixels(pix []uint16, width, height int) (*Buffer, error) {
	if len(pix) != width*height {
		return nil, &DimensionError{Width: width, Height: height, Pixels: len(pix)}
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    append([]uint16(nil), pix...),
	}, nil
}

// packPixel classifies one source pixel: color-key match or translucent
// alpha becomes the transparency sentinel, everything else is encoded.
// Keying and encoding use straight (non-premultiplied) components so a
// translucent pixel keeps its source color.
func packPixel(c color.Color, key *ColorKey) uint16 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)

	if key != nil && n.R == key.R && n.G == key.G && n.B == key.B {
		return rgb565.Transparent
	}
	if n.A < alphaThreshold {
		return rgb565.Transparent
	}

	// Components are 8-bit here so Encode cannot fail.
	v, _ := rgb565.Encode(int(n.R), int(n.G), int(n.B))
	return v
}

// FromImage converts an entire raster image into a single frame. An
// optional color key marks exact-matching pixels transparent regardless of
// their alpha.
func FromImage(m image.Image, key *ColorKey) *Buffer {
	bounds := m.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	pix := make([]uint16, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix = append(pix, packPixel(m.At(bounds.Min.X+x, bounds.Min.Y+y), key))
		}
	}

	return &Buffer{width: w, height: h, pix: pix}
}

// Image renders the frame as an NRGBA image. The transparency sentinel
// becomes a fully transparent pixel, every other value decodes at full
// opacity.
func (b *Buffer) Image() *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			v := b.pix[y*b.width+x]
			if rgb565.IsTransparent(v) {
				continue // zero value is already fully transparent
			}
			r, g, bl := rgb565.Decode(v)
			m.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: bl, A: 0xff})
		}
	}
	return m
}

// Width returns the frame width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the frame height in pixels.
func (b *Buffer) Height() int { return b.height }

// Len returns the number of pixels.
func (b *Buffer) Len() int { return len(b.pix) }

// At returns the packed pixel at (x, y).
func (b *Buffer) At(x, y int) uint16 {
	return b.pix[y*b.width+x]
}

// Pix returns a copy of the row-major pixel data.
func (b *Buffer) Pix() []uint16 {
	return append([]uint16(nil), b.pix...)
}

// Equal reports structural equality over dimensions and pixel values.
func (b *Buffer) Equal(o *Buffer) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i, v := range b.pix {
		if o.pix[i] != v {
			return false
		}
	}
	return true
}
