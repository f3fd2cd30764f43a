// SPDX-License-Identifier: EPL-2.0

package retropbx_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/retropbx"
	"github.com/ik5/retropbx/formats/eightad"
	"github.com/ik5/retropbx/formats/pgda"
	"github.com/ik5/retropbx/internal/audiotest"
)

// ExampleRenderPCM16 decodes a PGDA track at its own rate.
func ExampleRenderPCM16() {
	track := audiotest.BuildPGDA(8000, 0, []int8{64, -32, -32})
	src, err := pgda.Decoder{Scaling: pgda.ScaleNone}.Decode(bytes.NewReader(track))
	if err != nil {
		fmt.Println(err)
		return
	}

	samples, rate, err := retropbx.RenderPCM16(src, 0, 1024)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(rate, samples)
	// Output:
	// 8000 [16383 8191 0]
}

// Example_resampled brings one second of 8AD audio down to 8 kHz.
func Example_resampled() {
	track := audiotest.Pattern(eightad.DefaultSampleRate / 2)
	src, err := eightad.Decoder{}.Decode(bytes.NewReader(track))
	if err != nil {
		fmt.Println(err)
		return
	}

	samples, rate, err := retropbx.RenderPCM16(src, 8000, 4096)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d Hz, about %.1f s\n", rate, float64(len(samples))/float64(rate))
	// Output:
	// 8000 Hz, about 1.0 s
}

// ExampleNewRegistry lists how tracks are matched to decoders.
func ExampleNewRegistry() {
	reg := retropbx.NewRegistry()

	for _, path := range []string{"intro.pgda", "loop.8AD", "boss.adpcm8", "notes.txt"} {
		_, ok := reg.ForPath(path)
		fmt.Println(path, ok)
	}
	// Output:
	// intro.pgda true
	// loop.8AD true
	// boss.adpcm8 true
	// notes.txt false
}
