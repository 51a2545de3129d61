/*
Package spritec converts between PNG sprite art and the packed RGB565
header format used by the pet simulation firmware. The same codec and
framing rules run in three directions: procedural placeholder generation,
PNG to header conversion, and header back to PNG reconstruction.
*/
package spritec

import "log"

// Spritec ties the optional conversion cache and a logger to the batch
// operations.
type Spritec struct {
	db     *SpriteDB
	logger *log.Logger
}

// New returns a Spritec. file names the optional sqlite conversion cache;
// an empty string disables caching.
func New(file string, logger *log.Logger) (*Spritec, error) {
	s := &Spritec{
		logger: logger,
	}

	if file != "" {
		db, err := NewSpriteDB(file)
		if err != nil {
			return nil, err
		}
		s.db = db
	}

	return s, nil
}

// Close releases the conversion cache, if any.
func (s *Spritec) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
