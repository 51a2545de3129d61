/*
Package header reads and writes the generated sprite data header; many
literal uint16_t pixel arrays named sprite_<name>_frame<N>, one AnimFrame
aggregate per sprite, and a final AnimatedSprite table whose rows follow
the catalog's slot order.

The parser side recovers frame data from such text with no schema other
than the naming convention, which is how round-trip reconstruction of the
original PNG art works.
*/
package header

import (
	"fmt"
	"io"

	"github.com/tamakit/spritec/catalog"
	"github.com/tamakit/spritec/rgb565"
)

const arrayPrefix = "sprite_"

type writer struct {
	w   io.Writer
	err error
}

func (w *writer) printf(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
}

// array emits one frame as a literal array, wrapped to one image row per
// source line.
func (w *writer) array(name string, idx int, pix []uint16, width int) {
	w.printf("constexpr uint16_t %s%s_frame%d[%d] = {\n", arrayPrefix, name, idx, len(pix))
	for start := 0; start < len(pix); start += width {
		end := start + width
		if end > len(pix) {
			end = len(pix)
		}
		w.printf("    ")
		for i, v := range pix[start:end] {
			if i > 0 {
				w.printf(", ")
			}
			w.printf("0x%04X", v)
		}
		w.printf(",\n")
	}
	w.printf("};\n")
}

// Write serializes the catalog as a complete SpriteData.h. Missing slots
// become explicit null table rows so the table stays aligned with the
// sprite-identifier enumeration.
func Write(wr io.Writer, c *catalog.Catalog, frameWidth, frameHeight int) error {
	w := &writer{w: wr}

	w.printf("/**\n")
	w.printf(" * @file SpriteData.h\n")
	w.printf(" * @brief %dx%d RGB565 sprite data\n", frameWidth, frameHeight)
	w.printf(" *\n")
	w.printf(" * Auto-generated by spritec\n")
	w.printf(" * Re-generate with: spritec gen <sprites_dir> -o SpriteData.h\n")
	w.printf(" */\n")
	w.printf("#pragma once\n")
	w.printf("\n")
	w.printf("#include \"Sprites.h\"\n")
	w.printf("\n")

	for _, s := range c.Slots() {
		if s.Missing() {
			continue
		}
		for i, f := range s.Entry.Frames {
			w.array(s.Name, i, f.Pix(), frameWidth)
			w.printf("\n")
		}
	}

	for _, s := range c.Slots() {
		if s.Missing() {
			continue
		}
		w.printf("constexpr AnimFrame frames_%s[] = { ", s.Name)
		for i := range s.Entry.Frames {
			if i > 0 {
				w.printf(", ")
			}
			w.printf("{%s%s_frame%d}", arrayPrefix, s.Name, i)
		}
		w.printf(" };\n")
	}
	w.printf("\n")

	w.printf("const AnimatedSprite animatedSprites[PET_SPRITE_COUNT] = {\n")
	for _, s := range c.Slots() {
		if s.Missing() {
			w.printf("    {nullptr, 0, 0, false},  // %s MISSING\n", s.Name)
			continue
		}
		w.printf("    {frames_%s, %d, %d, %t},\n",
			s.Name, len(s.Entry.Frames), s.Entry.DelayMs, s.Entry.Loop)
	}
	w.printf("};\n")

	return w.err
}

// WriteSprite serializes a single entry as a standalone header holding only
// its frame arrays.
func WriteSprite(wr io.Writer, e *catalog.Entry, frameWidth, frameHeight int) error {
	w := &writer{w: wr}

	w.printf("// Auto-generated by spritec - %s\n", e.Name)
	w.printf("// %d frame(s), %dx%d RGB565\n", len(e.Frames), frameWidth, frameHeight)
	w.printf("// Transparent color key: 0x%04X (magenta)\n", rgb565.Transparent)
	w.printf("\n")
	w.printf("#pragma once\n")
	w.printf("#include <cstdint>\n")
	w.printf("\n")

	for i, f := range e.Frames {
		w.array(e.Name, i, f.Pix(), frameWidth)
		w.printf("\n")
	}

	return w.err
}
