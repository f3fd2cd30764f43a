// SPDX-License-Identifier: EPL-2.0

package pgda

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/retropbx/internal/audiotest"
)

func readAll(t *testing.T, dec Decoder, data []byte) []float32 {
	t.Helper()

	src, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	var out []float32
	buf := make([]float32, 100)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestDecoder_BothScalingsNormalizeAlike(t *testing.T) {
	t.Parallel()

	data := audiotest.PGDAFromSamples(6750, 0, audiotest.SineInt8(1500, 40, 100))

	wide := readAll(t, Decoder{Scaling: ScaleWide}, data)
	none := readAll(t, Decoder{Scaling: ScaleNone}, data)

	if len(wide) != 1500 || len(none) != 1500 {
		t.Fatalf("lengths %d/%d, want 1500", len(wide), len(none))
	}
	for i := range wide {
		if wide[i] != none[i] {
			t.Fatalf("sample %d: wide %v, none %v", i, wide[i], none[i])
		}
	}
}

func TestDecoder_Metadata(t *testing.T) {
	t.Parallel()

	src, err := Decoder{}.Decode(bytes.NewReader(audiotest.BuildPGDA(4000, 0, []int8{1})))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 4000 || src.Channels() != 1 {
		t.Errorf("SampleRate/Channels = %d/%d", src.SampleRate(), src.Channels())
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("not a pgda file at all")))
	if !errors.Is(err, ErrInvalidMagic) {
		t.Errorf("Decode() error = %v, want ErrInvalidMagic", err)
	}
	if err != nil && err.Error() != ErrInvalidMagic.Error() {
		t.Errorf("Decode() error = %q, want the bare header error", err)
	}
}
