// SPDX-License-Identifier: EPL-2.0

package utils

// Int8ToFloat32 maps an 8-bit sample to [-1, 1).
func Int8ToFloat32(v int8) float32 {
	return float32(v) / 128.0
}

// Int16ToFloat32 maps a 16-bit sample to [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// Float32ToInt16 clamps x to [-1, 1] and scales it to int16.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}

// Widen8 shifts an 8-bit sample into the int16 range.
func Widen8(v int8) int16 {
	return int16(v) << 8
}

// Narrow16 returns the top 8 bits of a 16-bit sample.
func Narrow16(v int16) int8 {
	return int8(v >> 8)
}

// ClampInt clamps v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
