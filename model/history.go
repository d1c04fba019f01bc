package model

import "bytes"

// snapshotRing is a bounded FIFO of deep-copied grid states used for
// equality-based stability detection. Snapshots are full copies, so later
// mutation of the live grid never changes a stored entry.
type snapshotRing struct {
	capacity int
	snaps    [][]uint8
	spare    [][]uint8 // evicted buffers, reused for future snapshots
}

func newSnapshotRing(capacity int) *snapshotRing {
	return &snapshotRing{capacity: capacity}
}

// push appends a copy of cells, evicting the oldest snapshot once the ring
// is at capacity.
func (r *snapshotRing) push(cells []uint8) {
	var buf []uint8
	if n := len(r.spare); n > 0 {
		buf = r.spare[n-1]
		r.spare = r.spare[:n-1]
	}
	if len(buf) != len(cells) {
		buf = make([]uint8, len(cells))
	}
	copy(buf, cells)

	r.snaps = append(r.snaps, buf)
	if len(r.snaps) > r.capacity {
		r.spare = append(r.spare, r.snaps[0])
		r.snaps = r.snaps[1:]
	}
}

func (r *snapshotRing) len() int {
	return len(r.snaps)
}

func (r *snapshotRing) full() bool {
	return len(r.snaps) == r.capacity
}

// contains reports whether cells equals any stored snapshot cell-for-cell.
func (r *snapshotRing) contains(cells []uint8) bool {
	for _, s := range r.snaps {
		if bytes.Equal(s, cells) {
			return true
		}
	}
	return false
}

func (r *snapshotRing) reset() {
	r.spare = append(r.spare, r.snaps...)
	r.snaps = nil
}
