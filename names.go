package spritec

// DefaultFrameSize is the edge length of a standard sprite frame in pixels.
const DefaultFrameSize = 24

// SpriteNames is the canonical sprite identifier enumeration. Its order
// fixes the row order of the generated animation table and must match the
// sprite id enum compiled into the firmware; sprites missing from a source
// directory keep their row as an explicit placeholder.
var SpriteNames = []string{
	"egg_idle",
	"baby_idle",
	"teen_idle",
	"adult_idle",
	"elder_idle",
	"ghost",
	"sick",
	"happy",
	"sad",
	"eating",
	"playing",
	"sleeping",
}
