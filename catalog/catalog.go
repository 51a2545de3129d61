/*
Package catalog holds the ordered set of named animation entries produced by
one sprite build.

Order matters; the generated animation table is indexed positionally by an
external sprite-identifier enumeration, so a sprite that was never produced
keeps its slot as an explicit missing placeholder instead of being omitted.
*/
package catalog

import (
	"errors"

	"github.com/tamakit/spritec/frame"
)

// ErrNotFound means the requested sprite has no entry in the catalog. It is
// a normal, recoverable condition for callers.
var ErrNotFound = errors.New("catalog: sprite not found")

// Entry is one named animation; a non-empty ordered frame sequence plus its
// playback metadata. Entries are replaced whole, never mutated in place.
type Entry struct {
	Name    string
	Frames  []*frame.Buffer
	DelayMs int
	Loop    bool
}

// Slot pairs a canonical sprite name with its entry. A nil Entry marks a
// name that appears in the enumeration but was never produced.
type Slot struct {
	Name  string
	Entry *Entry
}

// Missing reports whether the slot is a placeholder.
func (s Slot) Missing() bool {
	return s.Entry == nil
}

// Catalog is an ordered mapping from sprite name to animation entry.
type Catalog struct {
	slots []Slot
	index map[string]int
}

// New returns a catalog pre-seeded with one missing slot per name, in the
// given order. With no names the catalog grows in insertion order instead.
func New(names ...string) *Catalog {
	c := &Catalog{
		slots: make([]Slot, 0, len(names)),
		index: make(map[string]int, len(names)),
	}
	for _, name := range names {
		if _, ok := c.index[name]; ok {
			continue
		}
		c.index[name] = len(c.slots)
		c.slots = append(c.slots, Slot{Name: name})
	}
	return c
}

// Put fills the slot named by the entry, appending a new slot if the name
// is not part of the seeded enumeration. The whole entry is reassigned,
// replacing any previous one.
func (c *Catalog) Put(e *Entry) error {
	if e == nil || e.Name == "" {
		return errors.New("catalog: entry has no name")
	}
	if len(e.Frames) == 0 {
		return errors.New("catalog: entry has no frames")
	}

	w, h := e.Frames[0].Width(), e.Frames[0].Height()
	for _, f := range e.Frames[1:] {
		if f.Width() != w || f.Height() != h {
			return errors.New("catalog: frames differ in size")
		}
	}

	if i, ok := c.index[e.Name]; ok {
		c.slots[i].Entry = e
		return nil
	}

	c.index[e.Name] = len(c.slots)
	c.slots = append(c.slots, Slot{Name: e.Name, Entry: e})
	return nil
}

// Lookup returns the entry for name, or ErrNotFound when the name is
// unknown or still a missing placeholder.
func (c *Catalog) Lookup(name string) (*Entry, error) {
	i, ok := c.index[name]
	if !ok || c.slots[i].Entry == nil {
		return nil, ErrNotFound
	}
	return c.slots[i].Entry, nil
}

// Slots returns the ordered slots, placeholders included.
func (c *Catalog) Slots() []Slot {
	return append([]Slot(nil), c.slots...)
}

// Len returns the number of slots, placeholders included.
func (c *Catalog) Len() int {
	return len(c.slots)
}

// Produced returns the number of slots holding a real entry.
func (c *Catalog) Produced() (n int) {
	for _, s := range c.slots {
		if !s.Missing() {
			n++
		}
	}
	return
}
