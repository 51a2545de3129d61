/*
Package rgb565 implements the packed 16-bit color encoding used by the
sprite data format; 5 bits of red, 6 bits of green and 5 bits of blue.

One value is reserved as the transparency sentinel, 0xF81F which is pure
magenta. Any opaque color that would legitimately quantize to the sentinel
is nudged one bit of blue away so that no opaque pixel ever serializes as
transparent.
*/
package rgb565

import "fmt"

const (
	// Transparent is the reserved sentinel meaning "no pixel".
	Transparent uint16 = 0xf81f

	// opaqueFallback is substituted for any opaque color that would
	// otherwise encode to the sentinel. It is a slightly different
	// magenta, one step of blue away.
	opaqueFallback uint16 = 0xf81e
)

// ComponentError reports a color component outside the range [0, 255].
type ComponentError int

func (e ComponentError) Error() string {
	return fmt.Sprintf("rgb565: color component %d outside [0, 255]", int(e))
}

// Encode quantizes an 8-bit RGB triple to a packed RGB565 value by
// truncating the low-order bits of each component. The returned value is
// never equal to Transparent.
func Encode(r, g, b int) (uint16, error) {
	for _, c := range []int{r, g, b} {
		if c < 0 || c > 255 {
			return 0, ComponentError(c)
		}
	}

	v := uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
	if v == Transparent {
		v = opaqueFallback
	}

	return v, nil
}

// Decode unpacks a RGB565 value back to an 8-bit RGB triple. The truncated
// low-order bits are filled by replicating the high-order bits so repeated
// conversions stay stable. Callers must check IsTransparent first; the
// sentinel does not represent a color.
func Decode(v uint16) (r, g, b uint8) {
	r = uint8(v>>11&0x1f) << 3
	g = uint8(v>>5&0x3f) << 2
	b = uint8(v&0x1f) << 3

	r |= r >> 5
	g |= g >> 6
	b |= b >> 5

	return
}

// IsTransparent reports whether v is the transparency sentinel.
func IsTransparent(v uint16) bool {
	return v == Transparent
}
