// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !amd64 && !arm64

package asm

// Counter falls back to the monotonic clock on architectures without
// a hardware counter implementation, so the hardware-selected strategy
// stays well-defined everywhere.
func Counter() uint64 {
	return Nanotime()
}

// HasCounter reports whether Counter is backed by a hardware counter
// rather than the Nanotime fallback.
const HasCounter = false
