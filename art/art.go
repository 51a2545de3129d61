/*
Package art procedurally draws the placeholder pet sprites; colored 24x24
versions of the original designs with 2 or 3 frame bounce animations. The
drawing helpers mutate a plain pixel grid which is only frozen into an
immutable frame at the very end, so every generator is a pure function of
its parameters.
*/
package art

import (
	"fmt"
	"math"

	"github.com/tamakit/spritec/frame"
	"github.com/tamakit/spritec/rgb565"
)

// Size is the fixed placeholder frame edge length in pixels.
const Size = 24

func mustEncode(r, g, b int) uint16 {
	v, err := rgb565.Encode(r, g, b)
	if err != nil {
		panic(err)
	}
	return v
}

var (
	white   = mustEncode(255, 255, 255)
	cream   = mustEncode(255, 240, 220)
	lgray   = mustEncode(200, 200, 200)
	dgray   = mustEncode(80, 80, 80)
	black   = mustEncode(20, 20, 20)
	red     = mustEncode(255, 60, 60)
	dred    = mustEncode(180, 30, 30)
	green   = mustEncode(60, 200, 60)
	blue    = mustEncode(80, 120, 255)
	lblue   = mustEncode(150, 200, 255)
	yellow  = mustEncode(255, 220, 50)
	orange  = mustEncode(255, 160, 40)
	pink    = mustEncode(255, 150, 180)
	lpink   = mustEncode(255, 200, 220)
	purple  = mustEncode(180, 100, 255)
	lpurple = mustEncode(220, 180, 255)
	cyan    = mustEncode(80, 220, 220)
	brown   = mustEncode(160, 100, 40)
	lbrown  = mustEncode(200, 140, 80)
	teal    = mustEncode(50, 180, 160)
)

// grid is mutable working pixel storage, indexed [y][x].
type grid [][]uint16

func newGrid() grid {
	g := make(grid, Size)
	for y := range g {
		row := make([]uint16, Size)
		for x := range row {
			row[x] = rgb565.Transparent
		}
		g[y] = row
	}
	return g
}

func (g grid) set(x, y int, c uint16) {
	if x >= 0 && x < Size && y >= 0 && y < Size {
		g[y][x] = c
	}
}

func (g grid) flatten() []uint16 {
	pix := make([]uint16, 0, Size*Size)
	for _, row := range g {
		pix = append(pix, row...)
	}
	return pix
}

// oval draws a filled ellipse with a one-ring outline onto a fresh grid.
func oval(cx, cy int, rx, ry float64, body, outline uint16) grid {
	g := newGrid()
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			dx := float64(x-cx) / rx
			dy := float64(y-cy) / ry
			switch dist := dx*dx + dy*dy; {
			case dist <= 0.85:
				g[y][x] = body
			case dist <= 1.0:
				g[y][x] = outline
			}
		}
	}
	return g
}

func drawEyes(g grid, cx, cy int, c, highlight uint16) {
	lx, rx := cx-4, cx+3
	ey := cy - 2
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			g.set(lx+dx, ey+dy, c)
			g.set(rx+dx, ey+dy, c)
		}
	}
	g.set(lx, ey, highlight)
	g.set(rx, ey, highlight)
}

func drawMouthSmile(g grid, cx, cy int) {
	y := cy + 2
	for dx := -2; dx <= 2; dx++ {
		g.set(cx+dx, y, black)
	}
	g.set(cx-3, y-1, black)
	g.set(cx+3, y-1, black)
}

func drawMouthFrown(g grid, cx, cy int) {
	y := cy + 3
	for dx := -2; dx <= 2; dx++ {
		g.set(cx+dx, y, black)
	}
	g.set(cx-3, y+1, black)
	g.set(cx+3, y+1, black)
}

func drawMouthOpen(g grid, cx, cy int) {
	y := cy + 2
	for dy := 0; dy < 3; dy++ {
		for dx := -2; dx <= 2; dx++ {
			g.set(cx+dx, y+dy, black)
		}
	}
	for dx := -1; dx <= 1; dx++ {
		g.set(cx+dx, y+1, red)
	}
}

func drawXEyes(g grid, cx, cy int) {
	lx, rx := cx-5, cx+2
	ey := cy - 2
	for i := 0; i < 3; i++ {
		g.set(lx+i, ey+i, black)
		g.set(lx+2-i, ey+i, black)
		g.set(rx+i, ey+i, black)
		g.set(rx+2-i, ey+i, black)
	}
}

func drawClosedEyes(g grid, cx, cy int) {
	lx, rx := cx-5, cx+2
	ey := cy - 1
	for dx := 0; dx < 3; dx++ {
		g.set(lx+dx, ey, black)
		g.set(rx+dx, ey, black)
	}
}

func makeEgg() []grid {
	var frames []grid
	for _, bounce := range []int{0, 1} {
		g := oval(12, 12, 8, 10, cream, lbrown)
		for _, p := range [][2]int{{10, 5}, {11, 6}, {12, 5}, {13, 6}, {14, 5}} {
			g.set(p[0], p[1]+bounce, brown)
		}
		g.set(8, 10+bounce, lbrown)
		g.set(15, 14+bounce, lbrown)
		frames = append(frames, g)
	}
	return frames
}

func makeBaby() []grid {
	var frames []grid
	for _, bounce := range []int{0, 1} {
		g := oval(12, 13-bounce, 7, 7, pink, dred)
		drawEyes(g, 12, 12-bounce, black, white)
		for x := 11; x <= 13; x++ {
			g.set(x, 15-bounce, black)
		}
		g.set(7, 14-bounce, lpink)
		g.set(16, 14-bounce, lpink)
		frames = append(frames, g)
	}
	return frames
}

func makeTeen() []grid {
	var frames []grid
	for _, bounce := range []int{0, 1} {
		g := oval(12, 13-bounce, 8, 8, lblue, blue)
		drawEyes(g, 12, 12-bounce, black, white)
		drawMouthSmile(g, 12, 12-bounce)
		for _, x := range []int{9, 12, 15} {
			g.set(x, 4-bounce, blue)
			g.set(x, 3-bounce, blue)
		}
		frames = append(frames, g)
	}
	return frames
}

func makeAdult() []grid {
	var frames []grid
	for _, bounce := range []int{0, 1, 0} {
		g := oval(12, 12-bounce, 9, 9, green, teal)
		drawEyes(g, 12, 11-bounce, black, white)
		drawMouthSmile(g, 12, 11-bounce)
		g.set(7, 2-bounce, teal)
		g.set(16, 2-bounce, teal)
		g.set(7, 3-bounce, green)
		g.set(16, 3-bounce, green)
		frames = append(frames, g)
	}
	return frames
}

func makeElder() []grid {
	var frames []grid
	for _, bounce := range []int{0, 1} {
		g := oval(12, 12-bounce, 9, 9, lpurple, purple)
		drawEyes(g, 12, 11-bounce, black, white)
		y := 14 - bounce
		for _, x := range []int{7, 8, 15, 16} {
			g.set(x, y, purple)
		}
		for x := 11; x <= 13; x++ {
			g.set(x, 15-bounce, black)
		}
		frames = append(frames, g)
	}
	return frames
}

func makeGhost() []grid {
	var frames []grid
	for _, phase := range []int{0, 1, 2} {
		g := newGrid()
		for y := 4; y < 18; y++ {
			for x := 4; x < 20; x++ {
				dx := float64(x-12) / 8
				dy := float64(y-10) / 8
				if dx*dx+dy*dy <= 1.0 {
					g[y][x] = white
				}
			}
		}
		// Wavy skirt
		for x := 4; x < 20; x++ {
			wave := int(math.Sin(float64(x+phase)*1.2) * 1.5)
			for dy := 0; dy < 3; dy++ {
				c := white
				if dy == 2 {
					c = lgray
				}
				g.set(x, 17+dy+wave, c)
			}
		}
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				g.set(8+dx, 10+dy, black)
				g.set(13+dx, 10+dy, black)
			}
		}
		g.set(11, 14, dgray)
		g.set(12, 14, dgray)
		g.set(11, 15, dgray)
		g.set(12, 15, dgray)
		frames = append(frames, g)
	}
	return frames
}

func makeSick() []grid {
	var frames []grid
	for _, bounce := range []int{0, 1} {
		g := oval(12, 12, 9, 9, mustEncode(180, 220, 150), mustEncode(100, 150, 80))
		drawXEyes(g, 12, 12)
		for dx := -2; dx <= 2; dx++ {
			y := 16
			if dx%2 == 0 {
				y++
			}
			g.set(12+dx, y, black)
		}
		// Sweat drop
		g.set(18, 5+bounce, lblue)
		g.set(18, 6+bounce, blue)
		frames = append(frames, g)
	}
	return frames
}

func makeHappy() []grid {
	var frames []grid
	for _, bounce := range []int{0, 1} {
		g := oval(12, 12-bounce, 9, 9, yellow, orange)
		drawEyes(g, 12, 11-bounce, black, white)
		drawMouthSmile(g, 12, 11-bounce)
		g.set(6, 14-bounce, orange)
		g.set(17, 14-bounce, orange)
		if bounce == 0 {
			g.set(4, 3, white)
			g.set(19, 3, white)
		} else {
			g.set(3, 4, white)
			g.set(20, 4, white)
		}
		frames = append(frames, g)
	}
	return frames
}

func makeSad() []grid {
	var frames []grid
	for _, bounce := range []int{0, 1} {
		g := oval(12, 12, 9, 9, lblue, blue)
		drawEyes(g, 12, 11, black, white)
		drawMouthFrown(g, 12, 11)
		g.set(7, 14+bounce, cyan)
		g.set(7, 15+bounce, blue)
		frames = append(frames, g)
	}
	return frames
}

func makeEating() []grid {
	var frames []grid
	for _, phase := range []int{0, 1, 2} {
		g := oval(12, 12, 9, 9, orange, brown)
		drawEyes(g, 12, 11, black, white)
		if phase == 1 {
			for x := 11; x <= 13; x++ {
				g.set(x, 15, black)
			}
		} else {
			drawMouthOpen(g, 12, 11)
		}
		if phase == 0 {
			g.set(4, 10, green)
			g.set(4, 11, green)
			g.set(5, 10, green)
		}
		frames = append(frames, g)
	}
	return frames
}

func makePlaying() []grid {
	var frames []grid
	for _, phase := range []int{0, 1, 2} {
		offset := []int{0, -2, -1}[phase]
		g := oval(12, 12-offset, 9, 8, cyan, teal)
		drawEyes(g, 12, 11-offset, black, yellow)
		y := 14 - offset
		for dx := -3; dx <= 3; dx++ {
			g.set(12+dx, y, black)
		}
		g.set(8, y-1, black)
		g.set(16, y-1, black)
		if phase == 1 {
			g.set(3, 6, lgray)
			g.set(2, 7, lgray)
			g.set(20, 6, lgray)
			g.set(21, 7, lgray)
		}
		frames = append(frames, g)
	}
	return frames
}

func makeSleeping() []grid {
	var frames []grid
	for _, phase := range []int{0, 1} {
		g := oval(12, 14, 9, 8, lpurple, purple)
		drawClosedEyes(g, 12, 13)
		for x := 11; x <= 13; x++ {
			g.set(x, 16, black)
		}
		// Floating Z's
		zx, zy := 18+phase, 5-phase
		g.set(zx, zy, white)
		g.set(zx+1, zy, white)
		g.set(zx, zy+1, white)
		g.set(16, 3, lgray)
		frames = append(frames, g)
	}
	return frames
}

// Sprite is one procedurally drawn placeholder animation.
type Sprite struct {
	Name   string
	Frames []*frame.Buffer
}

// Placeholders generates every canonical placeholder sprite in
// enumeration order.
func Placeholders() ([]Sprite, error) {
	generators := []struct {
		name string
		make func() []grid
	}{
		{"egg_idle", makeEgg},
		{"baby_idle", makeBaby},
		{"teen_idle", makeTeen},
		{"adult_idle", makeAdult},
		{"elder_idle", makeElder},
		{"ghost", makeGhost},
		{"sick", makeSick},
		{"happy", makeHappy},
		{"sad", makeSad},
		{"eating", makeEating},
		{"playing", makePlaying},
		{"sleeping", makeSleeping},
	}

	sprites := make([]Sprite, 0, len(generators))
	for _, g := range generators {
		s := Sprite{Name: g.name}
		for _, fr := range g.make() {
			b, err := frame.FromPixels(fr.flatten(), Size, Size)
			if err != nil {
				return nil, fmt.Errorf("art: %s: %w", g.name, err)
			}
			s.Frames = append(s.Frames, b)
		}
		sprites = append(sprites, s)
	}

	return sprites, nil
}
