package art

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamakit/spritec/rgb565"
)

func TestPlaceholders(t *testing.T) {
	sprites, err := Placeholders()
	require.NoError(t, err)
	require.Len(t, sprites, 12)

	names := make([]string, 0, len(sprites))
	for _, s := range sprites {
		names = append(names, s.Name)

		require.NotEmpty(t, s.Frames, s.Name)
		assert.True(t, len(s.Frames) >= 2, "%s should animate", s.Name)
		for i, f := range s.Frames {
			assert.Equal(t, Size, f.Width(), "%s frame %d", s.Name, i)
			assert.Equal(t, Size, f.Height(), "%s frame %d", s.Name, i)
			assert.Equal(t, Size*Size, f.Len(), "%s frame %d", s.Name, i)
		}
	}

	assert.Equal(t, []string{
		"egg_idle", "baby_idle", "teen_idle", "adult_idle", "elder_idle",
		"ghost", "sick", "happy", "sad", "eating", "playing", "sleeping",
	}, names)
}

func TestFramesDifferWithinSprite(t *testing.T) {
	// Every placeholder animates; at least one pixel must change between
	// the first two frames.
	sprites, err := Placeholders()
	require.NoError(t, err)

	for _, s := range sprites {
		assert.False(t, s.Frames[0].Equal(s.Frames[1]), "%s frames identical", s.Name)
	}
}

func TestBodiesHaveOpaquePixelsAndTransparentCorners(t *testing.T) {
	sprites, err := Placeholders()
	require.NoError(t, err)

	for _, s := range sprites {
		for i, f := range s.Frames {
			opaque := 0
			for y := 0; y < Size; y++ {
				for x := 0; x < Size; x++ {
					if !rgb565.IsTransparent(f.At(x, y)) {
						opaque++
					}
				}
			}
			assert.True(t, opaque > 50, "%s frame %d looks empty", s.Name, i)

			// All bodies are centered shapes; corners stay clear.
			assert.True(t, rgb565.IsTransparent(f.At(0, 0)), "%s frame %d corner", s.Name, i)
			assert.True(t, rgb565.IsTransparent(f.At(Size-1, Size-1)), "%s frame %d corner", s.Name, i)
		}
	}
}
