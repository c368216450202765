// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cputick

import (
	"math"
	"testing"
)

// TestSinceWraps verifies the tick difference tolerates counter
// wraparound: a reading that wrapped past zero still yields the
// forward distance.
func TestSinceWraps(t *testing.T) {
	tests := []struct {
		now, earlier uint64
		want         delta
	}{
		{100, 40, 60},
		{40, 40, 0},
		{5, math.MaxUint64 - 9, 15}, // wrapped between reads
		{0, math.MaxUint64, 1},
	}
	for _, tt := range tests {
		if got := since(tt.now, tt.earlier); got != tt.want {
			t.Fatalf("since(%d, %d): got %d, want %d", tt.now, tt.earlier, got, tt.want)
		}
	}
}

// TestDeltaSatAdd verifies accumulation pins at the maximum instead of
// wrapping.
func TestDeltaSatAdd(t *testing.T) {
	if got := delta(40).satAdd(2); got != 42 {
		t.Fatalf("satAdd: got %d, want 42", got)
	}
	if got := delta(math.MaxUint64).satAdd(1); got != math.MaxUint64 {
		t.Fatalf("satAdd at ceiling: got %d, want max", got)
	}
	if got := delta(math.MaxUint64 - 1).satAdd(5); got != math.MaxUint64 {
		t.Fatalf("satAdd over ceiling: got %d, want max", got)
	}
	if got := delta(math.MaxUint64 - 1).satAdd(1); got != math.MaxUint64 {
		t.Fatalf("satAdd to ceiling: got %d, want max", got)
	}
}
