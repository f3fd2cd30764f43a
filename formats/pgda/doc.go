// SPDX-License-Identifier: EPL-2.0

// Package pgda decodes PGDA, a one-byte-per-sample delta coded 8-bit audio
// format.
//
// # File Layout
//
// All integers are little-endian:
//
//	offset  size  field
//	0       4     magic "FQWT"
//	4       4     sample rate, 4000..8000 Hz
//	8       4     delta count, at most 5,000,000
//	12      1     first sample (int8)
//	13      n     signed deltas, one per sample
//
// # Decoding
//
// A Stream keeps a cursor and the running 8-bit sample. Each delta is added
// to the running sample and the result is clamped to [-128, 127]:
//
//	st, err := pgda.NewStream(data)
//	if err != nil {
//	    // pgda.ErrInvalidMagic, ErrInvalidSampleRate, ErrTooLarge, ErrNullInput
//	}
//	buf := make([]int16, pgda.BufferSize)
//	for {
//	    n := st.Decode(buf, len(buf))
//	    if n == 0 {
//	        break // end of stream
//	    }
//	    play(buf[:n])
//	}
//
// Decode never fails once the stream is initialized; zero samples is the end
// of stream signal.
//
// # Output Scaling
//
// Two output widths exist for this format. ScaleWide (the default) shifts the
// 8-bit sample left by 8 into the int16 range; ScaleNone stores the 8-bit
// value as is. Pick one per build with WithScaling.
//
// The Decoder type adapts a PGDA file to audio.Source for offline rendering.
package pgda
