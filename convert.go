package spritec

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/tamakit/spritec/art"
	"github.com/tamakit/spritec/catalog"
	"github.com/tamakit/spritec/header"
)

// Convert converts one PNG, a single frame or a horizontal spritesheet,
// into a standalone sprite header written to w. An empty name defaults to
// the file name without its extension.
func (s *Spritec) Convert(pngPath, name string, w io.Writer, opts GenerateOptions) error {
	opts.setDefaults()

	if name == "" {
		name = strings.TrimSuffix(filepath.Base(pngPath), filepath.Ext(pngPath))
	}

	frames, err := s.convertSheet(name, pngPath, opts)
	if err != nil {
		return err
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = DefaultAnimConfig()
	}
	p := cfg.Get(name)

	e := &catalog.Entry{
		Name:    name,
		Frames:  frames,
		DelayMs: p.DelayMs,
		Loop:    p.Loop,
	}

	s.logger.Printf("%s: %d frame(s) from %s\n", name, len(frames), filepath.Base(pngPath))

	return header.WriteSprite(w, e, opts.FrameWidth, opts.FrameHeight)
}

// Placeholders draws the procedural placeholder sprite set and writes it
// as a complete sprite data header.
func (s *Spritec) Placeholders(w io.Writer, cfg AnimConfig) error {
	if cfg == nil {
		cfg = DefaultAnimConfig()
	}

	sprites, err := art.Placeholders()
	if err != nil {
		return err
	}

	cat := catalog.New(SpriteNames...)
	total := 0
	for _, sp := range sprites {
		p := cfg.Get(sp.Name)
		if err := cat.Put(&catalog.Entry{
			Name:    sp.Name,
			Frames:  sp.Frames,
			DelayMs: p.DelayMs,
			Loop:    p.Loop,
		}); err != nil {
			return err
		}
		total += len(sp.Frames)
	}

	s.logger.Printf("%d sprites, %d total frames\n", len(sprites), total)

	return header.Write(w, cat, art.Size, art.Size)
}
