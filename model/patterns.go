package model

import "github.com/pkg/errors"

// gliderFootprint is the padded region InsertGlider overwrites: the 3×3
// pattern plus a one-cell dead border on every side.
const gliderFootprint = 5

// glider is the canonical 5-cell spaceship. It translates one cell
// diagonally every 4 generations.
var glider = [3][3]uint8{
	{0, 1, 0},
	{0, 0, 1},
	{1, 1, 1},
}

// InsertGlider writes the glider under a uniformly random 90° rotation at a
// uniformly random offset that keeps the padded 5×5 footprint fully inside
// the grid. The footprint is a pure overwrite; cells outside it are
// untouched.
func (b *Board) InsertGlider() error {
	if b.size < gliderFootprint {
		return errors.Wrapf(ErrInvalidArgument,
			"[InsertGlider] board size %d is smaller than the %dx%d pattern footprint",
			b.size, gliderFootprint, gliderFootprint)
	}
	var (
		pattern = rotateGlider(b.rng.IntN(4))
		offX    = b.rng.IntN(b.size - gliderFootprint + 1)
		offY    = b.rng.IntN(b.size - gliderFootprint + 1)
	)
	b.insertGliderAt(pattern, offX, offY)
	return nil
}

// insertGliderAt overwrites the 5×5 region at (offX, offY) with the pattern
// centered in a dead border. The caller guarantees the region is in bounds.
func (b *Board) insertGliderAt(pattern [3][3]uint8, offX, offY int) {
	for y := 0; y < gliderFootprint; y++ {
		for x := 0; x < gliderFootprint; x++ {
			v := uint8(0)
			if x >= 1 && x <= 3 && y >= 1 && y <= 3 {
				v = pattern[y-1][x-1]
			}
			b.cells[(offY+y)*b.size+offX+x] = v
		}
	}
}

// rotateGlider returns the glider rotated clockwise by the given number of
// quarter turns.
func rotateGlider(quarters int) [3][3]uint8 {
	p := glider
	for i := 0; i < quarters; i++ {
		var r [3][3]uint8
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				r[y][x] = p[2-x][y]
			}
		}
		p = r
	}
	return p
}

// InsertBlinker sets a horizontal 3-cell blinker with its left cell at
// (x, y). Handy for seeding a known oscillator.
func (b *Board) InsertBlinker(x, y int) {
	b.Set(x, y, true)
	b.Set(x+1, y, true)
	b.Set(x+2, y, true)
}
