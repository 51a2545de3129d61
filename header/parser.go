package header

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/tamakit/spritec/frame"
)

// Array is one named literal array recovered from source text.
type Array struct {
	Name   string
	Values []uint16
}

var (
	// A typed literal-array declaration with a flat brace-delimited
	// element list.
	arrayPattern = regexp.MustCompile(`(?:constexpr\s+|const\s+)?uint16_t\s+(\w+)\s*\[\s*\d*\s*\]\s*=\s*\{([^{}]*)\}\s*;`)

	// Hexadecimal or decimal integer literals.
	literalPattern = regexp.MustCompile(`0[xX][0-9A-Fa-f]+|\d+`)

	// <prefix>_<spriteName>_frame<N>; the prefix is everything before
	// the first underscore, the sprite name may itself contain
	// underscores.
	framePattern = regexp.MustCompile(`^[^_]+_(.+)_frame([0-9]+)$`)
)

// FrameSizeMismatchError reports an array whose element count does not
// match the expected frame size.
type FrameSizeMismatchError struct {
	Array     string
	Got, Want int
}

func (e *FrameSizeMismatchError) Error() string {
	return fmt.Sprintf("header: array %s has %d pixels, want %d", e.Array, e.Got, e.Want)
}

// MissingFrameIndexError reports a gap in one sprite's frame indices. The
// sprite is rejected rather than silently compacted, so a missing frame
// can never shift later frames into the wrong position.
type MissingFrameIndexError struct {
	Sprite string
	Index  int
}

func (e *MissingFrameIndexError) Error() string {
	return fmt.Sprintf("header: sprite %s is missing frame %d", e.Sprite, e.Index)
}

// ExtractArrays scans text for literal uint16_t array declarations and
// returns them in first-to-last textual order. This is a discovery scan,
// not a strict parse; declarations that do not match the convention, or
// whose literals do not fit in 16 bits, are skipped silently.
func ExtractArrays(text string) []Array {
	var arrays []Array

	for _, m := range arrayPattern.FindAllStringSubmatch(text, -1) {
		lits := literalPattern.FindAllString(m[2], -1)
		if len(lits) == 0 {
			continue
		}

		values := make([]uint16, 0, len(lits))
		for _, l := range lits {
			v, err := strconv.ParseUint(l, 0, 16)
			if err != nil {
				values = nil
				break
			}
			values = append(values, uint16(v))
		}
		if values == nil {
			continue
		}

		arrays = append(arrays, Array{Name: m[1], Values: values})
	}

	return arrays
}

// Group is one sprite's frames in ascending frame-index order.
type Group struct {
	Name   string
	Frames [][]uint16
}

// GroupFrames groups arrays following the <prefix>_<sprite>_frame<N>
// convention into per-sprite frame sequences ordered by N, regardless of
// the order the arrays appeared in the source text. Group order follows
// each sprite's first appearance. A positive pixelsPerFrame enables
// per-array size validation.
//
// Failures are isolated per sprite: a wrong-sized array or a gap in frame
// indices rejects that sprite and is reported in errs while the remaining
// sprites are still returned.
func GroupFrames(arrays []Array, pixelsPerFrame int) (groups []Group, errs []error) {
	type accum struct {
		frames [][]uint16
		failed bool
	}

	var order []string
	acc := make(map[string]*accum)

	for _, a := range arrays {
		m := framePattern.FindStringSubmatch(a.Name)
		if m == nil {
			continue
		}
		sprite := m[1]
		idx, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}

		s, ok := acc[sprite]
		if !ok {
			s = &accum{}
			acc[sprite] = s
			order = append(order, sprite)
		}
		if s.failed {
			continue
		}

		if pixelsPerFrame > 0 && len(a.Values) != pixelsPerFrame {
			errs = append(errs, &FrameSizeMismatchError{Array: a.Name, Got: len(a.Values), Want: pixelsPerFrame})
			s.failed = true
			continue
		}

		for len(s.frames) <= idx {
			s.frames = append(s.frames, nil)
		}
		s.frames[idx] = a.Values
	}

	for _, sprite := range order {
		s := acc[sprite]
		if s.failed {
			continue
		}

		gap := -1
		for i, f := range s.frames {
			if f == nil {
				gap = i
				break
			}
		}
		if gap >= 0 {
			errs = append(errs, &MissingFrameIndexError{Sprite: sprite, Index: gap})
			continue
		}

		groups = append(groups, Group{Name: sprite, Frames: s.frames})
	}

	return groups, errs
}

// ParsedSprite is one sprite recovered from header text, its frames frozen
// into immutable buffers.
type ParsedSprite struct {
	Name   string
	Frames []*frame.Buffer
}

// Parse extracts, groups and freezes every sprite in text whose frames are
// exactly frameWidth by frameHeight. Per-sprite failures are reported in
// errs; the remaining sprites are still returned.
func Parse(text string, frameWidth, frameHeight int) ([]ParsedSprite, []error) {
	groups, errs := GroupFrames(ExtractArrays(text), frameWidth*frameHeight)

	sprites := make([]ParsedSprite, 0, len(groups))
	for _, g := range groups {
		frames := make([]*frame.Buffer, 0, len(g.Frames))
		for _, pix := range g.Frames {
			b, err := frame.FromPixels(pix, frameWidth, frameHeight)
			if err != nil {
				// Unreachable after size validation, but keep the
				// sprite-level isolation if it ever trips.
				errs = append(errs, fmt.Errorf("header: sprite %s: %w", g.Name, err))
				frames = nil
				break
			}
			frames = append(frames, b)
		}
		if frames == nil {
			continue
		}
		sprites = append(sprites, ParsedSprite{Name: g.Name, Frames: frames})
	}

	return sprites, errs
}
