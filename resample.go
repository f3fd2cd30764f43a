// SPDX-License-Identifier: EPL-2.0

package retropbx

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/retropbx/audio"
	"github.com/ik5/retropbx/utils"
)

// RenderPCM16 reads src to the end, resampled to targetRate, and returns the
// samples as 16-bit PCM together with the output rate. A targetRate of 0, or
// one equal to the source rate, skips resampling.
//
// The whole track is held in memory. For long tracks or streaming output use
// audio.NewResampler and read it directly.
//
//	src, _ := eightad.Decoder{}.Decode(file)
//	pcm, rate, err := retropbx.RenderPCM16(src, 8000, 4096)
func RenderPCM16(src audio.Source, targetRate int, bufferSize int) ([]int16, int, error) {
	if bufferSize <= 0 {
		bufferSize = src.BufSize()
	}

	var pipeline audio.Source = src
	if targetRate != 0 && targetRate != src.SampleRate() {
		r, err := audio.NewResampler(src, targetRate)
		if err != nil {
			return nil, 0, fmt.Errorf("%w", err)
		}
		pipeline = r
	}

	// Start with room for about two seconds and let append grow it.
	pcm16 := make([]int16, 0, pipeline.SampleRate()*2)
	buf := make([]float32, bufferSize)

	for {
		n, err := pipeline.ReadSamples(buf)
		for _, v := range buf[:n] {
			pcm16 = append(pcm16, utils.Float32ToInt16(v))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, pipeline.SampleRate(), fmt.Errorf("%w", err)
		}
	}

	return pcm16, pipeline.SampleRate(), nil
}
