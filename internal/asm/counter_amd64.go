// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build amd64

package asm

// Counter reads the time stamp counter via LFENCE; RDTSC.
// The LFENCE keeps earlier loads from drifting past the read.
// Implemented in counter_amd64.s.
//
//go:noescape
func Counter() uint64

// HasCounter reports whether Counter is backed by a hardware counter
// rather than the Nanotime fallback.
const HasCounter = true
