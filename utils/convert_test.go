// SPDX-License-Identifier: EPL-2.0

package utils

import "testing"

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float32
		want int16
	}{
		{0, 0},
		{1, 32767},
		{-1, -32767},
		{2.5, 32767},
		{-7, -32767},
		{0.5, 16383},
	}

	for _, tt := range tests {
		if got := Float32ToInt16(tt.in); got != tt.want {
			t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestWidenNarrowRoundTrip(t *testing.T) {
	t.Parallel()

	for v := -128; v <= 127; v++ {
		w := Widen8(int8(v))
		if int(w) != v*256 {
			t.Fatalf("Widen8(%d) = %d, want %d", v, w, v*256)
		}
		if n := Narrow16(w); int(n) != v {
			t.Fatalf("Narrow16(%d) = %d, want %d", w, n, v)
		}
	}
}

func TestInt8ToFloat32Range(t *testing.T) {
	t.Parallel()

	if got := Int8ToFloat32(-128); got != -1 {
		t.Errorf("Int8ToFloat32(-128) = %v, want -1", got)
	}
	if got := Int8ToFloat32(127); got >= 1 {
		t.Errorf("Int8ToFloat32(127) = %v, want < 1", got)
	}
	if got := Int16ToFloat32(-32768); got != -1 {
		t.Errorf("Int16ToFloat32(-32768) = %v, want -1", got)
	}
}

func TestClampInt(t *testing.T) {
	t.Parallel()

	if got := ClampInt(-5, 0, 88); got != 0 {
		t.Errorf("ClampInt(-5) = %d", got)
	}
	if got := ClampInt(100, 0, 88); got != 88 {
		t.Errorf("ClampInt(100) = %d", got)
	}
	if got := ClampInt(42, 0, 88); got != 42 {
		t.Errorf("ClampInt(42) = %d", got)
	}
}
