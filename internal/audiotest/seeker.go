// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
)

// WriteSeekBuffer is an in-memory io.WriteSeeker, for encoders that patch
// their headers once the data length is known.
type WriteSeekBuffer struct {
	data   []byte
	offset int64
}

func (b *WriteSeekBuffer) Write(p []byte) (int, error) {
	end := b.offset + int64(len(p))
	if end > int64(len(b.data)) {
		b.data = append(b.data, make([]byte, end-int64(len(b.data)))...)
	}
	copy(b.data[b.offset:], p)
	b.offset = end
	return len(p), nil
}

func (b *WriteSeekBuffer) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = b.offset + offset
	case io.SeekEnd:
		next = int64(len(b.data)) + offset
	default:
		return 0, errors.New("invalid whence")
	}

	if next < 0 {
		return 0, errors.New("negative position")
	}

	b.offset = next
	return next, nil
}

func (b *WriteSeekBuffer) Bytes() []byte { return b.data }
