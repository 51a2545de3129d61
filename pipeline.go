package spritec

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"image"
	_ "image/png"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/tamakit/spritec/catalog"
	"github.com/tamakit/spritec/frame"
	"github.com/tamakit/spritec/header"
)

// GenerateOptions controls a batch conversion run.
type GenerateOptions struct {
	FrameWidth  int
	FrameHeight int
	// Columns limits how many sheet columns are read from each PNG; zero
	// infers the count from the image width.
	Columns  int
	ColorKey *frame.ColorKey
	// Names fixes catalog slot order; nil means the canonical
	// enumeration.
	Names []string
	// Config overrides the animation metadata table; nil loads the
	// built-in defaults plus the directory's sprite_config.txt.
	Config  AnimConfig
	Workers int
}

func (o *GenerateOptions) setDefaults() {
	if o.FrameWidth <= 0 {
		o.FrameWidth = DefaultFrameSize
	}
	if o.FrameHeight <= 0 {
		o.FrameHeight = DefaultFrameSize
	}
	if o.Workers <= 0 {
		o.Workers = 4
	}
}

type spriteJob struct {
	index int
	name  string
	path  string
}

func fileDigest(b []byte) string {
	sum := sha1.Sum(b)
	return hex.EncodeToString(sum[:])
}

// convertSheet converts one spritesheet PNG into its ordered frames,
// consulting and maintaining the conversion cache when one is attached.
func (s *Spritec) convertSheet(name, path string, opts GenerateOptions) ([]*frame.Buffer, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sum := fileDigest(b)

	if s.db != nil {
		frames, err := s.db.Find(name, sum, opts.FrameWidth, opts.FrameHeight, opts.Columns, opts.ColorKey)
		if err != nil {
			return nil, err
		}
		if frames != nil {
			return frames, nil
		}
	}

	m, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	frames, err := frame.Split(m, opts.FrameWidth, opts.FrameHeight, opts.Columns, opts.ColorKey)
	if err != nil {
		return nil, err
	}

	if s.db != nil {
		if err := s.db.Store(name, sum, opts.Columns, opts.ColorKey, frames); err != nil {
			return nil, err
		}
	}

	return frames, nil
}

// findSprites feeds one job per canonical name whose PNG exists; missing
// files only get a warning, their slot stays a placeholder.
func (s *Spritec) findSprites(ctx context.Context, dir string, names []string) (<-chan spriteJob, <-chan error) {
	out := make(chan spriteJob)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		for i, name := range names {
			path := filepath.Join(dir, name+".png")
			if _, err := os.Stat(path); err != nil {
				s.logger.Printf("WARNING: %s.png not found, skipping\n", name)
				continue
			}

			select {
			case out <- spriteJob{index: i, name: name, path: path}:
			case <-ctx.Done():
				errc <- errors.New("generate cancelled")
				return
			}
		}
	}()
	return out, errc
}

// spriteWorker converts jobs until the channel drains. Each job writes a
// distinct element of entries, so workers share no mutable state. A
// sprite that fails to convert is logged and left missing; it never stops
// the batch.
func (s *Spritec) spriteWorker(in <-chan spriteJob, entries []*catalog.Entry, cfg AnimConfig, opts GenerateOptions) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for j := range in {
			frames, err := s.convertSheet(j.name, j.path, opts)
			if err != nil {
				s.logger.Printf("%s: %v\n", j.name, err)
				continue
			}

			p := cfg.Get(j.name)
			entries[j.index] = &catalog.Entry{
				Name:    j.name,
				Frames:  frames,
				DelayMs: p.DelayMs,
				Loop:    p.Loop,
			}
			s.logger.Printf("%s: %d frame(s) from %s\n", j.name, len(frames), filepath.Base(j.path))
		}
	}()
	return errc
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Generate converts a directory of sprite PNGs into a complete sprite
// data header written to w. Sprites are converted concurrently; one that
// fails or has no PNG becomes an explicit missing table row while the
// rest of the batch continues.
func (s *Spritec) Generate(dir string, w io.Writer, opts GenerateOptions) error {
	opts.setDefaults()

	names := opts.Names
	if names == nil {
		names = SpriteNames
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = DefaultAnimConfig()
		if f, err := os.Open(filepath.Join(dir, ConfigFilename)); err == nil {
			err = cfg.Load(f, s.logger)
			f.Close()
			if err != nil {
				return err
			}
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	entries := make([]*catalog.Entry, len(names))

	jobs, errc := s.findSprites(ctx, dir, names)
	errcList := []<-chan error{errc}

	for i := 0; i < opts.Workers; i++ {
		errcList = append(errcList, s.spriteWorker(jobs, entries, cfg, opts))
	}

	if err := waitForPipeline(errcList...); err != nil {
		return err
	}

	cat := catalog.New(names...)
	for _, e := range entries {
		if e == nil {
			continue
		}
		if err := cat.Put(e); err != nil {
			return err
		}
	}

	s.logger.Printf("%d of %d sprites converted\n", cat.Produced(), cat.Len())

	return header.Write(w, cat, opts.FrameWidth, opts.FrameHeight)
}
