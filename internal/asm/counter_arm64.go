// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build arm64

package asm

// Counter reads the virtual counter via ISB; MRS CNTVCT_EL0.
// The ISB keeps the read from being hoisted over earlier work.
// Implemented in counter_arm64.s.
//
// CNTVCT_EL0 ticks at the fixed system counter frequency, which is
// much coarser than the CPU clock on most parts (for example 24MHz on
// Apple silicon), so small regions can legitimately measure zero.
//
//go:noescape
func Counter() uint64

// HasCounter reports whether Counter is backed by a hardware counter
// rather than the Nanotime fallback.
const HasCounter = true
