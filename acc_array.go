// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cputick

import (
	"fmt"
	"strings"
)

// AccArray accumulates elapsed ticks into a fixed set of slots that
// share one start mark. Each slot pairs an accumulated value with an
// occurrence count; a slot is typically assigned to one branch or
// stage of the instrumented code.
//
// The usage model is Start once, then AccN(i) whenever branch i
// completes: the ticks elapsed since Start are folded into slot i and
// its count advances. AccN does not move the start mark, so several
// slots can be accumulated against the same Start. AccNRestart does
// move the mark, which chains independent consecutive intervals:
//
//	a := cputick.NewAccArray[cputick.CPU, cputick.U64, cputick.U32](3)
//	for range runs {
//		a.Start()
//		stageOne()
//		a.AccNRestart(0)
//		stageTwo()
//		a.AccNRestart(1)
//		stageThree()
//		a.AccNRestart(2)
//	}
//
// Out-of-range indices are a silent no-op: indices often come from
// data-dependent control flow, and a fallible path on every hot call
// would defeat a low-overhead primitive.
//
// An AccArray is owned by a single logical caller. It has no internal
// synchronization; give each goroutine its own instance and merge the
// results afterward.
type AccArray[S Source, T Value[T], C Count[C]] struct {
	base baseTimer[S]
	accs []T
	cnts []C
}

// NewAccArray creates an AccArray with n slots, all at their default
// value, with the timer marked at creation. Panics if n is negative.
func NewAccArray[S Source, T Value[T], C Count[C]](n int) *AccArray[S, T, C] {
	if n < 0 {
		panic("cputick: slot count must be >= 0")
	}
	a := &AccArray[S, T, C]{
		accs: make([]T, n),
		cnts: make([]C, n),
	}
	a.base.Start()
	return a
}

// Clear resets every slot to its default value and remarks the timer.
func (a *AccArray[S, T, C]) Clear() {
	clear(a.accs)
	clear(a.cnts)
	a.base.Start()
}

// Start marks the shared timer. Accumulating without a prior Start
// measures from construction or the last Clear.
func (a *AccArray[S, T, C]) Start() {
	a.base.Start()
}

// AccN folds the ticks elapsed since Start into slot index and
// advances its count. The start mark is left untouched. Out-of-range
// indices do nothing.
func (a *AccArray[S, T, C]) AccN(index int) {
	if index < 0 || index >= len(a.accs) {
		return
	}
	d := uint64(a.base.elapsed())
	a.accs[index] = a.accs[index].SatAdd(d)
	a.cnts[index] = a.cnts[index].Inc()
}

// AccNRestart folds the ticks elapsed since Start into slot index,
// advances its count, and remarks the timer in the same step, so the
// next accumulation measures from this call. Out-of-range indices do
// nothing.
func (a *AccArray[S, T, C]) AccNRestart(index int) {
	if index < 0 || index >= len(a.accs) {
		return
	}
	d := uint64(a.base.elapsedAndUpdate())
	a.accs[index] = a.accs[index].SatAdd(d)
	a.cnts[index] = a.cnts[index].Inc()
}

// Accs returns the accumulated values. The slice is a view of the
// array's backing storage; treat it as read-only.
func (a *AccArray[S, T, C]) Accs() []T {
	return a.accs
}

// Cnts returns the occurrence counts. The slice is a view of the
// array's backing storage; treat it as read-only.
func (a *AccArray[S, T, C]) Cnts() []C {
	return a.cnts
}

// String renders each slot as (acc, cnt, avg), with "-" for the
// average of a slot that was never accumulated into.
func (a *AccArray[S, T, C]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range a.accs {
		if i != 0 {
			sb.WriteString(", ")
		}
		writeAccCnt(&sb, a.accs[i], a.cnts[i])
	}
	sb.WriteByte(']')
	return sb.String()
}

// writeAccCnt renders one (value, count) pair for the container String
// methods.
func writeAccCnt[T Value[T], C Count[C]](sb *strings.Builder, acc T, cnt C) {
	if n := cnt.Index(); n > 0 {
		fmt.Fprintf(sb, "(%v, %v, %d)", acc, cnt, acc.Ticks()/uint64(n))
	} else {
		fmt.Fprintf(sb, "(%v, %v, -)", acc, cnt)
	}
}
