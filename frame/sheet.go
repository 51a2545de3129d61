package frame

import (
	"errors"
	"fmt"
	"image"
)

// ErrEmptySheet means the source image is smaller than a single frame cell.
var ErrEmptySheet = errors.New("frame: image is smaller than one frame cell")

// Split partitions a spritesheet image into equal-sized frame cells,
// enumerated row-major; all columns of the first row, then the next row.
// If cols is zero or negative it is inferred from the image width; an
// explicit count is clamped to the columns the image actually holds. Rows
// are always inferred from the image height.
func Split(m image.Image, frameWidth, frameHeight, cols int, key *ColorKey) ([]*Buffer, error) {
	bounds := m.Bounds()

	rows := bounds.Dy() / frameHeight
	if max := bounds.Dx() / frameWidth; cols <= 0 || cols > max {
		cols = max
	}
	if cols == 0 || rows == 0 {
		return nil, ErrEmptySheet
	}

	frames := make([]*Buffer, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			pix := make([]uint16, 0, frameWidth*frameHeight)
			for y := 0; y < frameHeight; y++ {
				for x := 0; x < frameWidth; x++ {
					c := m.At(bounds.Min.X+col*frameWidth+x, bounds.Min.Y+row*frameHeight+y)
					pix = append(pix, packPixel(c, key))
				}
			}
			frames = append(frames, &Buffer{width: frameWidth, height: frameHeight, pix: pix})
		}
	}

	return frames, nil
}

// Compose lays frames out as a single horizontal strip; width is frame
// width times frame count, height is one frame. A single frame produces a
// plain one-cell image. Compose is the exact inverse of Split over a
// single-row sheet.
func Compose(frames []*Buffer) (*image.NRGBA, error) {
	if len(frames) == 0 {
		return nil, errors.New("frame: no frames to compose")
	}

	w, h := frames[0].width, frames[0].height
	for i, f := range frames[1:] {
		if f.width != w || f.height != h {
			return nil, fmt.Errorf("frame: frame %d is %dx%d, want %dx%d", i+1, f.width, f.height, w, h)
		}
	}

	sheet := image.NewNRGBA(image.Rect(0, 0, w*len(frames), h))
	for i, f := range frames {
		cell := f.Image()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				sheet.SetNRGBA(i*w+x, y, cell.NRGBAAt(x, y))
			}
		}
	}

	return sheet, nil
}

// Scale returns m enlarged by an integer factor using nearest-neighbor
// sampling, which keeps pixel art crisp. A factor below two returns a plain
// copy.
func Scale(m image.Image, factor int) *image.NRGBA {
	if factor < 1 {
		factor = 1
	}

	bounds := m.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	dst := image.NewNRGBA(image.Rect(0, 0, w*factor, h*factor))
	for y := 0; y < h*factor; y++ {
		for x := 0; x < w*factor; x++ {
			dst.Set(x, y, m.At(bounds.Min.X+x/factor, bounds.Min.Y+y/factor))
		}
	}

	return dst
}
