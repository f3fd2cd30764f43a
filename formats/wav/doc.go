// SPDX-License-Identifier: EPL-2.0

// Package wav exports decoded tracks as WAV files.
//
// It uses github.com/go-audio/wav for the RIFF container. Output is always
// mono 16-bit PCM at the rate of the source:
//
//	f, err := os.Create("intro.wav")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	src, err := pgda.Decoder{}.Decode(track)
//	if err != nil {
//	    return err
//	}
//	n, err := wav.Write(f, src)
//
// Frames captured from the playback engine are already int16 and go through
// WriteInt16 instead.
//
// The encoder seeks back to fill in chunk sizes, so the destination must be
// an io.WriteSeeker. Writing to a pipe is not supported.
package wav
