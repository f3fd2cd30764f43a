// SPDX-License-Identifier: EPL-2.0

package eightad

// State is the adaptive decoder memory carried between Decode calls.
type State struct {
	Running   int32 // accumulator, always in int16 range after a decode
	StepIndex int32 // may sit outside [0, MaxStepIndex] between calls
}

// Reset returns the decoder to silence at the smallest step.
func (s *State) Reset() {
	s.Running = 0
	s.StepIndex = 0
}

// rescale turns a 4-bit code into a signed difference for step.
// Code c in 0..6 yields (2c+1)/8 of step; 7 is stretched to 19/8.
func rescale(step int32, code uint8) int32 {
	diff := step >> 3
	if code&1 != 0 {
		diff += step >> 2
	}
	if code&2 != 0 {
		diff += step >> 1
	}
	if code&4 != 0 {
		diff += step
	}
	if code&7 == 7 {
		diff += step >> 1
	}
	if code&8 != 0 {
		diff = -diff
	}
	return diff
}

// Decode produces n samples into dst from the nibbles in src and returns the
// number of source bytes consumed.
//
// The parity of the remaining count picks the nibble: an even count fetches
// the next byte and uses its low nibble, an odd count uses the high nibble of
// the byte fetched last. A call with odd n therefore starts on the high
// nibble of an empty latch (code 0). Missing source bytes read as zero and
// missing dst slots are skipped, so Decode never indexes out of range.
func (s *State) Decode(dst []int8, src []byte, n int) int {
	running := s.Running
	index := s.StepIndex
	var latch uint8
	consumed := 0

	for i, remaining := 0, n; remaining > 0; i, remaining = i+1, remaining-1 {
		index = max(0, min(index, int32(MaxStepIndex)))
		step := int32(stepTable[index])

		var code uint8
		if remaining&1 != 0 {
			code = latch >> 4
		} else {
			latch = 0
			if consumed < len(src) {
				latch = src[consumed]
			}
			consumed++
			code = latch & 0x0f
		}

		running += rescale(step, code)
		index += int32(indexTable[code&7])

		if running < -32768 {
			running = -32768
		} else if running > 32767 {
			running = 32767
		}

		if i < len(dst) {
			dst[i] = int8(running >> 8)
		}
	}

	s.Running = running
	s.StepIndex = index

	return min(consumed, len(src))
}

// BytesForSamples is the number of source bytes n samples occupy.
func BytesForSamples(n int) int {
	return (n + 1) / 2
}

// SamplesForBytes is the number of samples held by n source bytes.
func SamplesForBytes(n int) int {
	return n * 2
}
