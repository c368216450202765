// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package asm provides architecture-specific tick counter reads.
//
// Counter reads the raw hardware tick counter in a single serialized
// instruction sequence: RDTSC on amd64 (LFENCE-ordered) and CNTVCT_EL0
// on arm64 (ISB-ordered). On architectures without a counter
// implementation, Counter falls back to Nanotime, the runtime's
// monotonic clock, so the symbol is always available and callers never
// branch at runtime.
//
// Counter values are raw moduli: only the wrapping difference between
// two close-in-time reads on one core is meaningful, and the unit is
// whatever the counter ticks in, not seconds.
package asm
