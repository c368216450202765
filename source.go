// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cputick

import "code.hybscloud.com/cputick/internal/asm"

// Source is the tick source strategy selected per instantiation.
//
// Every timer and container in this package takes a Source as a type
// parameter, so the choice between the hardware counter and the
// portable clock is made at compile time and costs nothing at run
// time — there is no flag and no dynamic dispatch on the hot path.
//
// The two strategies are [CPU] and [Std]. The interface is sealed:
// tick values from different sources are not comparable, so the
// strategy set is closed to this package.
type Source interface {
	// Now returns the current tick value. Tick values are opaque
	// moduli; only the wrapping difference between two reads from
	// the same Source is meaningful. Reading never fails.
	Now() uint64

	sealedSource()
}

// CPU reads the hardware tick counter: RDTSC on amd64, CNTVCT_EL0 on
// arm64. On architectures without a counter implementation it silently
// falls back to the same monotonic clock as [Std], so CPU-typed
// instantiations stay portable.
//
// Hardware counter values are in counter ticks, not seconds, and the
// granularity is platform-specific. Values are only meaningful between
// two close-in-time reads on an unmigrated thread; nothing here
// detects descheduling or core migration.
type CPU struct{}

// Now returns the current hardware counter value.
func (CPU) Now() uint64 { return asm.Counter() }

func (CPU) sealedSource() {}

// Std reads the runtime's monotonic clock. Ticks are nanoseconds since
// an unspecified start point. Available on every architecture, with a
// somewhat higher per-read overhead than the hardware counter.
type Std struct{}

// Now returns the current monotonic clock reading in nanoseconds.
func (Std) Now() uint64 { return asm.Nanotime() }

func (Std) sealedSource() {}
