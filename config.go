package spritec

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"
)

// ConfigFilename is the optional per-directory animation override file.
const ConfigFilename = "sprite_config.txt"

// AnimParams is the playback metadata for one sprite.
type AnimParams struct {
	DelayMs int
	Loop    bool
}

// Used for names absent from the table.
var fallbackParams = AnimParams{DelayMs: 500, Loop: true}

// AnimConfig maps sprite name to playback metadata.
type AnimConfig map[string]AnimParams

// DefaultAnimConfig returns a fresh copy of the built-in animation table,
// so callers can overlay their own values without affecting each other.
func DefaultAnimConfig() AnimConfig {
	return AnimConfig{
		"egg_idle":   {800, true},
		"baby_idle":  {600, true},
		"teen_idle":  {500, true},
		"adult_idle": {400, true},
		"elder_idle": {700, true},
		"ghost":      {500, true},
		"sick":       {1000, true},
		"happy":      {400, true},
		"sad":        {800, true},
		"eating":     {300, false},
		"playing":    {300, false},
		"sleeping":   {1000, true},
	}
}

// Get returns the parameters for name, falling back to 500 ms looping for
// names outside the table.
func (c AnimConfig) Get(name string) AnimParams {
	if p, ok := c[name]; ok {
		return p
	}
	return fallbackParams
}

// Load overlays "name,delayMs,loop" lines from r onto the config. Blank
// lines and #-comments are skipped. A malformed line is logged as a
// warning and ignored, leaving that sprite at its previous value.
func (c AnimConfig) Load(r io.Reader, logger *log.Logger) error {
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			logger.Printf("WARNING: malformed config line %q\n", line)
			continue
		}

		delay, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || delay <= 0 {
			logger.Printf("WARNING: invalid delay in config line %q\n", line)
			continue
		}

		name := strings.TrimSpace(parts[0])
		loop := strings.ToLower(strings.TrimSpace(parts[2])) == "true"
		c[name] = AnimParams{DelayMs: delay, Loop: loop}
	}
	return s.Err()
}
