// SPDX-License-Identifier: EPL-2.0

package eightad

// stepTable holds the 89 quantizer step magnitudes.
var stepTable = [89]uint16{
	7, 8, 9, 10, 11, 12, 13, 14, 16, 17,
	19, 21, 23, 25, 28, 31, 34, 37, 41, 45,
	50, 55, 60, 66, 73, 80, 88, 97, 107, 118,
	130, 143, 157, 173, 190, 209, 230, 253, 279, 307,
	337, 371, 408, 449, 494, 544, 598, 658, 724, 796,
	876, 963, 1060, 1166, 1282, 1411, 1552, 1707, 1878, 2066,
	2272, 2499, 2749, 3024, 3327, 3660, 4026, 4428, 4871, 5358,
	5894, 6484, 7132, 7845, 8630, 9493, 10442, 11487, 12635, 13899,
	15289, 16818, 18500, 20350, 22385, 24623, 27086, 29794, 32767,
}

// indexTable is the step index adjustment per code. Both halves are equal;
// only code&7 is used to index it.
var indexTable = [16]int8{
	-1, -1, -1, -1, 2, 4, 7, 12,
	-1, -1, -1, -1, 2, 4, 7, 12,
}

const (
	MaxStepIndex = len(stepTable) - 1

	// DefaultSampleRate is the playback rate of 8AD material: a 924 cycle
	// timer reload on a 16.78 MHz clock.
	DefaultSampleRate = 16777216 / 924
)

// Step returns the quantizer step for index, clamped to [0, MaxStepIndex].
func Step(index int) uint16 {
	return stepTable[max(0, min(index, MaxStepIndex))]
}

// IndexAdjust returns the step index change that follows code. Only the low
// three bits of code matter.
func IndexAdjust(code uint8) int8 {
	return indexTable[code&7]
}
