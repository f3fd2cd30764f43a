// SPDX-License-Identifier: EPL-2.0

// Package audio holds the primitives shared by the codecs and the export path.
//
//   - Source, a pull interface for mono float32 PCM
//   - Decoder, which turns an io.Reader into a Source
//   - Registry, mapping format names and file extensions to decoders
//   - Resampler, cubic sample rate conversion for mono sources
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Both codec packages return a Source from their Decoder, so a decoded track
// can be resampled and handed to the WAV or AIFF writers without knowing
// which format it came from.
//
// # Resampling
//
// PGDA tracks are recorded at 4-8 kHz and 8AD at about 18 kHz. The Resampler
// converts either to a common output rate:
//
//	r, err := audio.NewResampler(source, 44100)
//	if err != nil {
//	    return err
//	}
//	n, err := r.ReadSamples(buf)
//
// Only mono sources are accepted; NewResampler returns ErrNotMono otherwise.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("pgda", pgda.Decoder{})
//	registry.Register("8ad", eightad.Decoder{}, "adpcm8")
//	decoder, ok := registry.ForPath("intro.8ad")
//
// Keys are case folded.
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0]. An 8-bit value v maps to v/128 and a
// 16-bit value to v/32768.
//
// # Error Handling
//
// ReadSamples returns io.EOF once the stream is exhausted, possibly together
// with the last samples:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n]
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
