package spritec

import (
	"database/sql"
	"encoding/binary"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tamakit/spritec/frame"
)

// SpriteDB is the sqlite conversion cache. Converted frame data is stored
// against the SHA-1 of the source PNG together with the conversion
// options, so a sprite whose art and options have not changed is not
// reconverted on the next run.
type SpriteDB struct {
	db *sql.DB
}

// NewSpriteDB opens, creating if necessary, a conversion cache.
func NewSpriteDB(file string) (*SpriteDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS sprite (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, sha1 TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL, cols INTEGER NOT NULL, colorkey TEXT NOT NULL)"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS frame (sprite_id INTEGER NOT NULL, idx INTEGER NOT NULL, data BLOB NOT NULL, PRIMARY KEY (sprite_id, idx), FOREIGN KEY (sprite_id) REFERENCES sprite(id))"); err != nil {
		return nil, err
	}

	return &SpriteDB{
		db: db,
	}, nil
}

// Close closes the underlying database.
func (d *SpriteDB) Close() error {
	return d.db.Close()
}

func packPixels(b *frame.Buffer) []byte {
	pix := b.Pix()
	out := make([]byte, len(pix)*2)
	for i, v := range pix {
		binary.LittleEndian.PutUint16(out[i*2:], v)
	}
	return out
}

func unpackPixels(data []byte, width, height int) (*frame.Buffer, error) {
	if len(data) != width*height*2 {
		return nil, fmt.Errorf("spritec: cached frame is %d bytes, want %d", len(data), width*height*2)
	}
	pix := make([]uint16, width*height)
	for i := range pix {
		pix[i] = binary.LittleEndian.Uint16(data[i*2:])
	}
	return frame.FromPixels(pix, width, height)
}

func colorKeyText(key *frame.ColorKey) string {
	if key == nil {
		return ""
	}
	return key.String()
}

// Store records the converted frames for name against the given source
// digest and conversion options, replacing any previous record.
func (d *SpriteDB) Store(name, sum string, cols int, key *frame.ColorKey, frames []*frame.Buffer) error {
	if len(frames) == 0 {
		return fmt.Errorf("spritec: no frames to store for %q", name)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRow("SELECT id FROM sprite WHERE name = ?", name).Scan(&id)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		return err
	default:
		if _, err = tx.Exec("DELETE FROM frame WHERE sprite_id = ?", id); err != nil {
			return err
		}
		if _, err = tx.Exec("DELETE FROM sprite WHERE id = ?", id); err != nil {
			return err
		}
	}

	res, err := tx.Exec("INSERT INTO sprite (name, sha1, width, height, cols, colorkey) VALUES (?, ?, ?, ?, ?, ?)",
		name, sum, frames[0].Width(), frames[0].Height(), cols, colorKeyText(key))
	if err != nil {
		return err
	}
	if id, err = res.LastInsertId(); err != nil {
		return err
	}

	for i, f := range frames {
		if _, err = tx.Exec("INSERT INTO frame (sprite_id, idx, data) VALUES (?, ?, ?)", id, i, packPixels(f)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Find returns the cached frames for name provided the recorded source
// digest, frame dimensions, column count and color key all still match, or
// nil on a cache miss.
func (d *SpriteDB) Find(name, sum string, width, height, cols int, key *frame.ColorKey) ([]*frame.Buffer, error) {
	var id int64
	err := d.db.QueryRow("SELECT id FROM sprite WHERE name = ? AND sha1 = ? AND width = ? AND height = ? AND cols = ? AND colorkey = ?",
		name, sum, width, height, cols, colorKeyText(key)).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := d.db.Query("SELECT data FROM frame WHERE sprite_id = ? ORDER BY idx", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var frames []*frame.Buffer
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		f, err := unpackPixels(data, width, height)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}

	return frames, rows.Err()
}
