// SPDX-License-Identifier: EPL-2.0

package catalog

// View is a read-only window on one compressed track. The bytes belong to the
// archive; callers must not modify what Bytes or Slice return.
type View struct {
	name string
	data []byte
}

func NewView(name string, data []byte) View {
	return View{name: name, data: data}
}

func (v View) Name() string { return v.name }
func (v View) Len() int     { return len(v.data) }

// Bytes returns the whole track. A zero View returns nil.
func (v View) Bytes() []byte { return v.data }

// Slice returns up to n bytes starting at off, clipped to the end of the
// track. Out of range offsets yield an empty slice.
func (v View) Slice(off, n int) []byte {
	if off < 0 || n <= 0 || off >= len(v.data) {
		return v.data[:0:0]
	}
	end := min(off+n, len(v.data))
	return v.data[off:end:end]
}

// At returns the byte at i, or 0 outside the track.
func (v View) At(i int) byte {
	if i < 0 || i >= len(v.data) {
		return 0
	}
	return v.data[i]
}
