package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamakit/spritec/frame"
)

func buffer(t *testing.T, w, h int) *frame.Buffer {
	t.Helper()
	b, err := frame.FromPixels(make([]uint16, w*h), w, h)
	require.NoError(t, err)
	return b
}

func TestSeededSlotsKeepOrder(t *testing.T) {
	c := New("egg_idle", "baby_idle", "ghost")

	require.Equal(t, 3, c.Len())
	assert.Equal(t, 0, c.Produced())

	// Fill out of order; slot positions must not move.
	require.NoError(t, c.Put(&Entry{Name: "ghost", Frames: []*frame.Buffer{buffer(t, 2, 2)}, DelayMs: 500, Loop: true}))
	require.NoError(t, c.Put(&Entry{Name: "egg_idle", Frames: []*frame.Buffer{buffer(t, 2, 2)}, DelayMs: 800, Loop: true}))

	slots := c.Slots()
	assert.Equal(t, "egg_idle", slots[0].Name)
	assert.False(t, slots[0].Missing())
	assert.Equal(t, "baby_idle", slots[1].Name)
	assert.True(t, slots[1].Missing())
	assert.Equal(t, "ghost", slots[2].Name)
	assert.False(t, slots[2].Missing())
	assert.Equal(t, 2, c.Produced())
}

func TestPutAppendsUnknownName(t *testing.T) {
	c := New("egg_idle")
	require.NoError(t, c.Put(&Entry{Name: "extra", Frames: []*frame.Buffer{buffer(t, 2, 2)}}))

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "extra", c.Slots()[1].Name)
}

func TestPutReplacesWholeEntry(t *testing.T) {
	c := New("egg_idle")
	require.NoError(t, c.Put(&Entry{Name: "egg_idle", Frames: []*frame.Buffer{buffer(t, 2, 2)}, DelayMs: 800}))
	require.NoError(t, c.Put(&Entry{Name: "egg_idle", Frames: []*frame.Buffer{buffer(t, 2, 2), buffer(t, 2, 2)}, DelayMs: 400}))

	e, err := c.Lookup("egg_idle")
	require.NoError(t, err)
	assert.Len(t, e.Frames, 2)
	assert.Equal(t, 400, e.DelayMs)
	assert.Equal(t, 1, c.Len())
}

func TestPutRejectsInvalidEntries(t *testing.T) {
	c := New()

	assert.Error(t, c.Put(nil))
	assert.Error(t, c.Put(&Entry{Name: "", Frames: []*frame.Buffer{buffer(t, 2, 2)}}))
	assert.Error(t, c.Put(&Entry{Name: "empty"}))
	assert.Error(t, c.Put(&Entry{Name: "mixed", Frames: []*frame.Buffer{buffer(t, 2, 2), buffer(t, 4, 4)}}))
}

func TestLookup(t *testing.T) {
	c := New("egg_idle", "ghost")
	require.NoError(t, c.Put(&Entry{Name: "ghost", Frames: []*frame.Buffer{buffer(t, 2, 2)}}))

	_, err := c.Lookup("ghost")
	assert.NoError(t, err)

	// Unknown name and unfilled placeholder both report ErrNotFound.
	_, err = c.Lookup("nope")
	assert.Equal(t, ErrNotFound, err)
	_, err = c.Lookup("egg_idle")
	assert.Equal(t, ErrNotFound, err)
}
