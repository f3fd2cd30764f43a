// SPDX-License-Identifier: EPL-2.0

// Package eightad decodes 8AD, a 4-bit adaptive differential audio stream.
//
// 8AD has no header. Each byte carries two codes, low nibble first, so a
// stream of n bytes holds 2n samples. The accumulator is 16 bits wide and
// every output sample is its top 8 bits.
//
//	var st eightad.State
//	out := make([]int8, 304)
//	consumed := st.Decode(out, data[pos:], len(out))
//	pos += consumed
//
// Step sizes come from a fixed 89 entry table (see Step), indexed by a step
// index that is clamped to [0, 88] before each lookup and adjusted by
// IndexAdjust after it.
package eightad
