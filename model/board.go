package model

import (
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

const (
	// MaxHistory bounds the snapshot ring used for stability detection.
	MaxHistory = 10

	// DefaultDensity is the fraction of cells Randomize sets alive when the
	// caller has no opinion.
	DefaultDensity = 0.5
)

// ErrInvalidArgument is returned for sizes and patterns that cannot produce
// a well-formed board.
var ErrInvalidArgument = errors.New("invalid argument")

// Board is the Game of Life state machine: a square toroidal grid stored
// row-major in a contiguous buffer, a generation counter, and a bounded ring
// of past snapshots for stability detection.
type Board struct {
	size    int
	cells   []uint8
	scratch []uint8
	step    int
	history *snapshotRing
	rng     *rand.Rand
}

// NewBoard creates a cleared size×size board seeded from the clock.
func NewBoard(size int) (*Board, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "[NewBoard] size must be positive, got %d", size)
	}
	return &Board{
		size:    size,
		cells:   make([]uint8, size*size),
		scratch: make([]uint8, size*size),
		history: newSnapshotRing(MaxHistory),
		rng:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}, nil
}

// Reseed makes subsequent Randomize and InsertGlider calls deterministic.
func (b *Board) Reseed(seed int64) {
	b.rng = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Size returns the grid dimension; the board is always Size×Size.
func (b *Board) Size() int {
	return b.size
}

// Step returns the number of generations advanced so far.
func (b *Board) Step() int {
	return b.step
}

// Resize reallocates the board as a cleared size×size grid and drops the
// history. The step counter keeps its value.
func (b *Board) Resize(size int) error {
	if size <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "[Resize] size must be positive, got %d", size)
	}
	b.size = size
	b.cells = make([]uint8, size*size)
	b.scratch = make([]uint8, size*size)
	b.history.reset()
	return nil
}

// Alive returns whether the cell at (x, y) is alive. Out-of-range
// coordinates read as dead.
func (b *Board) Alive(x, y int) bool {
	if x < 0 || x >= b.size || y < 0 || y >= b.size {
		return false
	}
	return b.cells[y*b.size+x] == 1
}

// Set sets the cell at (x, y) to alive or dead. Out-of-range coordinates
// are ignored.
func (b *Board) Set(x, y int, alive bool) {
	if x < 0 || x >= b.size || y < 0 || y >= b.size {
		return
	}
	b.cells[y*b.size+x] = 0
	if alive {
		b.cells[y*b.size+x] = 1
	}
}

// Clear kills every cell and drops the history.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = 0
	}
	b.history.reset()
}

// IsEmpty reports whether every cell is dead.
func (b *Board) IsEmpty() bool {
	for _, c := range b.cells {
		if c != 0 {
			return false
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells.
func (b *Board) CountLivingCells() (count int) {
	for _, c := range b.cells {
		count += int(c)
	}
	return
}

// NeighborCounts returns, for every cell, the number of live cells among
// its 8 neighbors, with toroidal wrap-around at the edges. Values range
// 0 through 8.
func (b *Board) NeighborCounts() [][]int {
	counts := make([][]int, b.size)
	for y := range counts {
		counts[y] = make([]int, b.size)
		for x := range counts[y] {
			counts[y][x] = b.neighborCount(x, y)
		}
	}
	return counts
}

// neighborCount sums the 8 neighbors of (x, y) with modular indexing.
func (b *Board) neighborCount(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + b.size) % b.size
			ny := (y + dy + b.size) % b.size
			n += int(b.cells[ny*b.size+nx])
		}
	}
	return n
}

// Advance records the current grid into the history, applies the transition
// rule to every cell simultaneously from the pre-transition neighbor
// counts, and increments the step counter.
func (b *Board) Advance() {
	b.history.push(b.cells)
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			idx := y*b.size + x
			b.scratch[idx] = 0
			if rules.NextState(b.cells[idx] == 1, b.neighborCount(x, y)) {
				b.scratch[idx] = 1
			}
		}
	}
	// All rules read the old buffer; swapping in the new one keeps the
	// update free of read-after-write hazards.
	b.cells, b.scratch = b.scratch, b.cells
	b.step++
}

// Evolve advances the board by the given number of generations.
func (b *Board) Evolve(steps int) {
	for i := 0; i < steps; i++ {
		b.Advance()
	}
}

// IsStable reports whether the current grid has recurred within the last
// MaxHistory generations, catching fixed points and short oscillators. It
// never reports true before the history ring is full.
func (b *Board) IsStable() bool {
	return b.history.full() && b.history.contains(b.cells)
}

// Randomize fills every cell independently as Bernoulli(density). Densities
// outside [0, 1] are clamped.
func (b *Board) Randomize(density float64) {
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	for i := range b.cells {
		b.cells[i] = 0
		if b.rng.Float64() < density {
			b.cells[i] = 1
		}
	}
}
