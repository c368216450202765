// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cputick_test

import (
	"math"
	"testing"

	"code.hybscloud.com/cputick"
)

// =============================================================================
// Value / Count Representations
// =============================================================================

// TestSatAddUnsigned tests the saturating fold at and around each
// unsigned width's ceiling.
func TestSatAddUnsigned(t *testing.T) {
	t.Run("U8", func(t *testing.T) {
		tests := []struct {
			v     cputick.U8
			ticks uint64
			want  cputick.U8
		}{
			{0, 0, 0},
			{0, 10, 10},
			{250, 5, 255},
			{250, 6, 255},
			{255, 1, 255},
			{255, math.MaxUint64, 255},
			{0, math.MaxUint64, 255},
		}
		for _, tt := range tests {
			if got := tt.v.SatAdd(tt.ticks); got != tt.want {
				t.Fatalf("U8(%d).SatAdd(%d): got %d, want %d",
					tt.v, tt.ticks, got, tt.want)
			}
		}
	})
	t.Run("U16", func(t *testing.T) {
		if got := cputick.U16(math.MaxUint16 - 1).SatAdd(2); got != math.MaxUint16 {
			t.Fatalf("SatAdd over ceiling: got %d, want %d", got, math.MaxUint16)
		}
		if got := cputick.U16(math.MaxUint16 - 1).SatAdd(1); got != math.MaxUint16 {
			t.Fatalf("SatAdd to ceiling: got %d, want %d", got, math.MaxUint16)
		}
	})
	t.Run("U32", func(t *testing.T) {
		if got := cputick.U32(math.MaxUint32).SatAdd(1); got != math.MaxUint32 {
			t.Fatalf("SatAdd at ceiling: got %d, want %d", got, uint32(math.MaxUint32))
		}
	})
	t.Run("U64", func(t *testing.T) {
		if got := cputick.U64(math.MaxUint64).SatAdd(1); got != math.MaxUint64 {
			t.Fatalf("SatAdd at ceiling: got %d, want %d", got, uint64(math.MaxUint64))
		}
		if got := cputick.U64(1).SatAdd(math.MaxUint64); got != math.MaxUint64 {
			t.Fatalf("SatAdd overflow: got %d, want %d", got, uint64(math.MaxUint64))
		}
		if got := cputick.U64(40).SatAdd(2); got != 42 {
			t.Fatalf("SatAdd: got %d, want 42", got)
		}
	})
	t.Run("Uint", func(t *testing.T) {
		max := ^cputick.Uint(0)
		if got := max.SatAdd(1); got != max {
			t.Fatalf("SatAdd at ceiling: got %d, want %d", got, max)
		}
		if got := (max - 1).SatAdd(1); got != max {
			t.Fatalf("SatAdd to ceiling: got %d, want %d", got, max)
		}
	})
}

// TestSatAddFloat verifies floats fold with plain addition and no
// ceiling.
func TestSatAddFloat(t *testing.T) {
	if got := cputick.F32(1.5).SatAdd(2); got != 3.5 {
		t.Fatalf("F32 SatAdd: got %v, want 3.5", got)
	}
	if got := cputick.F64(1.5).SatAdd(2); got != 3.5 {
		t.Fatalf("F64 SatAdd: got %v, want 3.5", got)
	}
}

// TestIncSaturates tests the saturating increment per representation.
func TestIncSaturates(t *testing.T) {
	if got := cputick.U8(254).Inc(); got != 255 {
		t.Fatalf("U8 Inc: got %d, want 255", got)
	}
	if got := cputick.U8(255).Inc(); got != 255 {
		t.Fatalf("U8 Inc at ceiling: got %d, want 255", got)
	}
	if got := cputick.U64(math.MaxUint64).Inc(); got != math.MaxUint64 {
		t.Fatalf("U64 Inc at ceiling: got %d, want max", got)
	}
	if got := cputick.F64(2).Inc(); got != 3 {
		t.Fatalf("F64 Inc: got %v, want 3", got)
	}
}

// TestConversions tests Ticks and Index reporting.
func TestConversions(t *testing.T) {
	if got := cputick.U32(7).Ticks(); got != 7 {
		t.Fatalf("U32 Ticks: got %d, want 7", got)
	}
	if got := cputick.U16(9).Index(); got != 9 {
		t.Fatalf("U16 Index: got %d, want 9", got)
	}
	if got := cputick.F64(3.9).Ticks(); got != 3 {
		t.Fatalf("F64 Ticks truncation: got %d, want 3", got)
	}
}

// TestNop verifies the unit representation elides every operation.
func TestNop(t *testing.T) {
	var n cputick.Nop
	if got := n.SatAdd(math.MaxUint64); got != (cputick.Nop{}) {
		t.Fatalf("Nop SatAdd: got %v, want unit", got)
	}
	if got := n.Inc(); got != (cputick.Nop{}) {
		t.Fatalf("Nop Inc: got %v, want unit", got)
	}
	if n.Ticks() != 0 || n.Index() != 0 {
		t.Fatalf("Nop conversions: got %d/%d, want 0/0", n.Ticks(), n.Index())
	}
}
