package spritec

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/tamakit/spritec/frame"
	"github.com/tamakit/spritec/header"
)

// ExtractOptions controls header to PNG reconstruction.
type ExtractOptions struct {
	FrameWidth  int
	FrameHeight int
	// Scale enlarges output PNGs by an integer factor for easier
	// editing.
	Scale int
	// Individual writes one PNG per frame array instead of one
	// spritesheet per sprite.
	Individual bool
	// Paletted quantizes output PNGs to an indexed palette.
	Paletted bool
}

// Extract reconstructs PNG art from a generated sprite data header. By
// default each sprite becomes one horizontal spritesheet; sprites whose
// arrays fail validation are logged and skipped while the rest continue.
func (s *Spritec) Extract(headerPath, outDir string, opts ExtractOptions) error {
	if opts.FrameWidth <= 0 {
		opts.FrameWidth = DefaultFrameSize
	}
	if opts.FrameHeight <= 0 {
		opts.FrameHeight = DefaultFrameSize
	}

	b, err := ioutil.ReadFile(headerPath)
	if err != nil {
		return err
	}
	text := string(b)

	arrays := header.ExtractArrays(text)
	if len(arrays) == 0 {
		return errors.New("spritec: no sprite arrays found in " + headerPath)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	if opts.Individual {
		expected := opts.FrameWidth * opts.FrameHeight
		for _, a := range arrays {
			if len(a.Values) != expected {
				s.logger.Printf("SKIP %s: %d pixels, want %d\n", a.Name, len(a.Values), expected)
				continue
			}
			f, err := frame.FromPixels(a.Values, opts.FrameWidth, opts.FrameHeight)
			if err != nil {
				return err
			}
			if err := s.writePNG(filepath.Join(outDir, a.Name+".png"), f.Image(), opts); err != nil {
				return err
			}
			s.logger.Printf("%s.png\n", a.Name)
		}
		return nil
	}

	sprites, errs := header.Parse(text, opts.FrameWidth, opts.FrameHeight)
	for _, err := range errs {
		s.logger.Printf("SKIP: %v\n", err)
	}

	for _, sp := range sprites {
		sheet, err := frame.Compose(sp.Frames)
		if err != nil {
			return err
		}
		if err := s.writePNG(filepath.Join(outDir, sp.Name+".png"), sheet, opts); err != nil {
			return err
		}
		s.logger.Printf("%s.png (%d frame(s))\n", sp.Name, len(sp.Frames))
	}

	return nil
}

func (s *Spritec) writePNG(path string, m image.Image, opts ExtractOptions) error {
	if opts.Scale > 1 {
		m = frame.Scale(m, opts.Scale)
	}

	if opts.Paletted {
		q := quantize.MedianCutQuantizer{AddTransparent: true}
		p := q.Quantize(make(color.Palette, 0, 256), m)
		pm := image.NewPaletted(m.Bounds(), p)
		draw.Draw(pm, m.Bounds(), m, m.Bounds().Min, draw.Src)
		m = pm
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, m)
}
