// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cputick

import "math"

// Value is the capability constraint for accumulator slot values: a
// representation that tick deltas can be folded into. The zero value
// is the default; SatAdd folds one more elapsed-tick count in.
//
// Implemented by [U8], [U16], [U32], [U64] and [Uint] (saturating at
// the width's maximum), [F32] and [F64] (plain addition — floats have
// no meaningful saturation ceiling), and [Nop] (a true no-op that
// disables accumulation at zero cost).
//
// The constraint is sealed so the saturation semantics stay closed and
// auditable; it is not open to caller-defined representations.
type Value[T any] interface {
	// SatAdd returns the value with ticks folded in, saturating.
	SatAdd(ticks uint64) T
	// Ticks reports the value as a raw tick count.
	Ticks() uint64

	sealedNumeric()
}

// Count is the capability constraint for occurrence counters. The zero
// value is the default; Inc adds one occurrence.
//
// Implemented by the same representation set as [Value]: unsigned
// widths saturate at their maximum, floats add one unconditionally,
// and [Nop] disables counting entirely.
type Count[C any] interface {
	// Inc returns the counter advanced by one, saturating.
	Inc() C
	// Index reports the counter as an array index.
	Index() int

	sealedNumeric()
}

// U8 is an 8-bit accumulator/counter representation.
type U8 uint8

// U16 is a 16-bit accumulator/counter representation.
type U16 uint16

// U32 is a 32-bit accumulator/counter representation.
type U32 uint32

// U64 is a 64-bit accumulator/counter representation.
type U64 uint64

// Uint is a native-word accumulator/counter representation.
type Uint uint

// F32 is a single-precision float accumulator/counter representation.
// Folding and counting use plain addition; large accumulations trade
// precision for range instead of saturating.
type F32 float32

// F64 is a double-precision float accumulator/counter representation.
type F64 float64

// Nop is the unit representation: every operation is a no-op and the
// type is zero-sized, so instrumentation structured around it compiles
// down to the bare timer calls. Use it as the value type to disable
// accumulation, as the count type to disable counting, or both.
type Nop struct{}

// SatAdd returns v with ticks folded in, pinning at the 8-bit maximum.
func (v U8) SatAdd(ticks uint64) U8 {
	if ticks > math.MaxUint8-uint64(v) {
		return math.MaxUint8
	}
	return v + U8(ticks)
}

// Inc returns v advanced by one, pinning at the 8-bit maximum.
func (v U8) Inc() U8 {
	if v == math.MaxUint8 {
		return v
	}
	return v + 1
}

// Ticks reports v as a raw tick count.
func (v U8) Ticks() uint64 { return uint64(v) }

// Index reports v as an array index.
func (v U8) Index() int { return int(v) }

func (U8) sealedNumeric() {}

// SatAdd returns v with ticks folded in, pinning at the 16-bit maximum.
func (v U16) SatAdd(ticks uint64) U16 {
	if ticks > math.MaxUint16-uint64(v) {
		return math.MaxUint16
	}
	return v + U16(ticks)
}

// Inc returns v advanced by one, pinning at the 16-bit maximum.
func (v U16) Inc() U16 {
	if v == math.MaxUint16 {
		return v
	}
	return v + 1
}

// Ticks reports v as a raw tick count.
func (v U16) Ticks() uint64 { return uint64(v) }

// Index reports v as an array index.
func (v U16) Index() int { return int(v) }

func (U16) sealedNumeric() {}

// SatAdd returns v with ticks folded in, pinning at the 32-bit maximum.
func (v U32) SatAdd(ticks uint64) U32 {
	if ticks > math.MaxUint32-uint64(v) {
		return math.MaxUint32
	}
	return v + U32(ticks)
}

// Inc returns v advanced by one, pinning at the 32-bit maximum.
func (v U32) Inc() U32 {
	if v == math.MaxUint32 {
		return v
	}
	return v + 1
}

// Ticks reports v as a raw tick count.
func (v U32) Ticks() uint64 { return uint64(v) }

// Index reports v as an array index.
func (v U32) Index() int { return int(v) }

func (U32) sealedNumeric() {}

// SatAdd returns v with ticks folded in, pinning at the 64-bit maximum.
func (v U64) SatAdd(ticks uint64) U64 {
	if s := uint64(v) + ticks; s >= uint64(v) {
		return U64(s)
	}
	return math.MaxUint64
}

// Inc returns v advanced by one, pinning at the 64-bit maximum.
func (v U64) Inc() U64 {
	if v == math.MaxUint64 {
		return v
	}
	return v + 1
}

// Ticks reports v as a raw tick count.
func (v U64) Ticks() uint64 { return uint64(v) }

// Index reports v as an array index.
func (v U64) Index() int { return int(v) }

func (U64) sealedNumeric() {}

// SatAdd returns v with ticks folded in, pinning at the word maximum.
func (v Uint) SatAdd(ticks uint64) Uint {
	if ticks > uint64(^Uint(0))-uint64(v) {
		return ^Uint(0)
	}
	return v + Uint(ticks)
}

// Inc returns v advanced by one, pinning at the word maximum.
func (v Uint) Inc() Uint {
	if v == ^Uint(0) {
		return v
	}
	return v + 1
}

// Ticks reports v as a raw tick count.
func (v Uint) Ticks() uint64 { return uint64(v) }

// Index reports v as an array index.
func (v Uint) Index() int { return int(v) }

func (Uint) sealedNumeric() {}

// SatAdd returns v plus ticks. Floats do not saturate.
func (v F32) SatAdd(ticks uint64) F32 { return v + F32(ticks) }

// Inc returns v plus one. Floats do not saturate.
func (v F32) Inc() F32 { return v + 1 }

// Ticks reports v truncated to a raw tick count.
func (v F32) Ticks() uint64 { return uint64(v) }

// Index reports v truncated to an array index.
func (v F32) Index() int { return int(v) }

func (F32) sealedNumeric() {}

// SatAdd returns v plus ticks. Floats do not saturate.
func (v F64) SatAdd(ticks uint64) F64 { return v + F64(ticks) }

// Inc returns v plus one. Floats do not saturate.
func (v F64) Inc() F64 { return v + 1 }

// Ticks reports v truncated to a raw tick count.
func (v F64) Ticks() uint64 { return uint64(v) }

// Index reports v truncated to an array index.
func (v F64) Index() int { return int(v) }

func (F64) sealedNumeric() {}

// SatAdd discards ticks and returns the unit value.
func (Nop) SatAdd(uint64) Nop { return Nop{} }

// Inc returns the unit value; occurrences are not counted.
func (Nop) Inc() Nop { return Nop{} }

// Ticks always reports zero.
func (Nop) Ticks() uint64 { return 0 }

// Index always reports zero.
func (Nop) Index() int { return 0 }

func (Nop) sealedNumeric() {}
