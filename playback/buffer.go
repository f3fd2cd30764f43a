// SPDX-License-Identifier: EPL-2.0

package playback

import "sync/atomic"

// DoubleBuffer holds two equally sized frames. One is active (being played),
// the other is filling (being decoded into). Swap exchanges the roles with a
// single atomic increment, so it may be called from another goroutine than
// the one filling as long as it does not overlap a write into Filling.
type DoubleBuffer struct {
	bufs   [2][]int16
	active atomic.Uint32
}

func NewDoubleBuffer(frameSamples int) *DoubleBuffer {
	return &DoubleBuffer{
		bufs: [2][]int16{
			make([]int16, frameSamples),
			make([]int16, frameSamples),
		},
	}
}

func (d *DoubleBuffer) Active() []int16 {
	return d.bufs[d.active.Load()&1]
}

func (d *DoubleBuffer) Filling() []int16 {
	return d.bufs[(d.active.Load()+1)&1]
}

// Swap makes the filling buffer active and returns it.
func (d *DoubleBuffer) Swap() []int16 {
	return d.bufs[d.active.Add(1)&1]
}

// Index of the active buffer, 0 or 1.
func (d *DoubleBuffer) Index() int {
	return int(d.active.Load() & 1)
}

func (d *DoubleBuffer) FrameSamples() int { return len(d.bufs[0]) }

func silence(buf []int16) {
	clear(buf)
}
