// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asm

import (
	_ "unsafe" // for go:linkname
)

//go:linkname nanotime runtime.nanotime
func nanotime() int64

// Nanotime returns the runtime's monotonic clock in nanoseconds since
// an unspecified start point. It is the portable tick source and the
// fallback for Counter on architectures without a hardware counter.
func Nanotime() uint64 {
	return uint64(nanotime())
}
