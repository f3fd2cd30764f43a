// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"testing"

	goaiff "github.com/go-audio/aiff"

	"github.com/ik5/retropbx/formats/eightad"
	"github.com/ik5/retropbx/internal/audiotest"
)

func TestWrite_RoundTrip(t *testing.T) {
	t.Parallel()

	track := audiotest.Pattern(500)
	src, err := eightad.Decoder{}.Decode(bytes.NewReader(track))
	if err != nil {
		t.Fatal(err)
	}

	var out audiotest.WriteSeekBuffer
	n, err := Write(&out, src)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != 1000 {
		t.Errorf("Write() = %d samples, want 1000", n)
	}

	dec := goaiff.NewDecoder(bytes.NewReader(out.Bytes()))
	if !dec.IsValidFile() {
		t.Fatal("go-audio rejected the written file")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer() error = %v", err)
	}

	if buf.Format.SampleRate != eightad.DefaultSampleRate || buf.Format.NumChannels != 1 {
		t.Errorf("format = %+v", *buf.Format)
	}
	if len(buf.Data) != 1000 {
		t.Fatalf("decoded %d samples, want 1000", len(buf.Data))
	}

	var ref eightad.State
	want := make([]int8, 1000)
	ref.Decode(want, track, len(want))
	for i := range want {
		if d := buf.Data[i] - int(want[i])<<8; d < -256 || d > 256 {
			t.Errorf("sample %d = %d, want ≈%d", i, buf.Data[i], int(want[i])<<8)
		}
	}
}

func TestWrite_Errors(t *testing.T) {
	t.Parallel()

	var out audiotest.WriteSeekBuffer
	if _, err := Write(&out, audiotest.NewConstantSource(-5, 4, 0)); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("bad rate: err = %v", err)
	}
	if _, err := Write(&out, audiotest.NewConstantSource(8000, 0, 0)); !errors.Is(err, ErrNoSamples) {
		t.Errorf("empty: err = %v", err)
	}
}
