// SPDX-License-Identifier: EPL-2.0

package audiotest

// Steps and indexAdjust mirror the 8AD tables; EncodeADPCM8 keeps its own
// copy so it stays an independent reference for decoder tests.
var steps = [89]int32{
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

var indexAdjust = [8]int32{-1, -1, -1, -1, 2, 4, 7, 12}

func diffFor(step int32, code int32) int32 {
	mag := step >> 3
	mag += (code & 1) * (step >> 2)
	mag += ((code >> 1) & 1) * (step >> 1)
	mag += ((code >> 2) & 1) * step
	if code&7 == 7 {
		mag += step >> 1
	}
	if code&8 != 0 {
		return -mag
	}
	return mag
}

// EncodeADPCM8 greedily encodes 16-bit samples into 8AD nibbles, low nibble
// first, starting from a zero accumulator at step index 0. An odd sample
// count leaves the final high nibble as 0.
func EncodeADPCM8(samples []int16) []byte {
	out := make([]byte, (len(samples)+1)/2)
	var running, index int32

	for i, target := range samples {
		index = max(0, min(index, 88))
		step := steps[index]

		best, bestErr := int32(0), int64(-1)
		for code := int32(0); code < 16; code++ {
			v := max(-32768, min(32767, running+diffFor(step, code)))
			e := int64(v) - int64(target)
			if e < 0 {
				e = -e
			}
			if bestErr < 0 || e < bestErr {
				best, bestErr = code, e
			}
		}

		running = max(-32768, min(32767, running+diffFor(step, best)))
		index += indexAdjust[best&7]

		if i%2 == 0 {
			out[i/2] |= byte(best)
		} else {
			out[i/2] |= byte(best) << 4
		}
	}

	return out
}
