// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"math"
)

// BuildPGDA assembles a PGDA file from raw header fields and deltas.
func BuildPGDA(rate uint32, first int8, deltas []int8) []byte {
	return BuildPGDAMagic([4]byte{'F', 'Q', 'W', 'T'}, rate, uint32(len(deltas)), first, deltas)
}

// BuildPGDAMagic assembles a PGDA file with arbitrary magic and declared
// count, for header validation tests.
func BuildPGDAMagic(magic [4]byte, rate, count uint32, first int8, deltas []int8) []byte {
	out := make([]byte, 0, 13+len(deltas))
	out = append(out, magic[:]...)
	out = binary.LittleEndian.AppendUint32(out, rate)
	out = binary.LittleEndian.AppendUint32(out, count)
	out = append(out, byte(first))
	for _, d := range deltas {
		out = append(out, byte(d))
	}
	return out
}

// PGDAFromSamples delta-codes samples against first. Steps larger than an
// int8 are clamped, so the decoded output may lag steep edges.
func PGDAFromSamples(rate uint32, first int8, samples []int8) []byte {
	deltas := make([]int8, len(samples))
	prev := int(first)
	for i, s := range samples {
		d := max(-128, min(127, int(s)-prev))
		deltas[i] = int8(d)
		prev = max(-128, min(127, prev+d))
	}
	return BuildPGDA(rate, first, deltas)
}

// SineInt8 returns n samples of a sine with the given period and amplitude.
func SineInt8(n int, period float64, amplitude float64) []int8 {
	out := make([]int8, n)
	for i := range out {
		v := amplitude * math.Sin(2*math.Pi*float64(i)/period)
		out[i] = int8(max(-128, min(127, math.Round(v))))
	}
	return out
}

// SineInt16 is SineInt8 in the 16-bit domain.
func SineInt16(n int, period float64, amplitude float64) []int16 {
	out := make([]int16, n)
	for i := range out {
		v := amplitude * math.Sin(2*math.Pi*float64(i)/period)
		out[i] = int16(max(-32768, min(32767, math.Round(v))))
	}
	return out
}

// Pattern returns n bytes cycling through seed, for 8AD payloads whose
// content does not matter.
func Pattern(n int, seed ...byte) []byte {
	if len(seed) == 0 {
		seed = []byte{0x34, 0x9b, 0x07, 0xf1}
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = seed[i%len(seed)]
	}
	return out
}
