// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cputick

import "strings"

// AccCnt is one growable-vector slot: an accumulated tick value paired
// with an occurrence count.
type AccCnt[T Value[T], C Count[C]] struct {
	Acc T
	Cnt C
}

// AccVec is the growable counterpart of [AccArray]: the same
// fold-and-count semantics over an append-growable sequence of slots,
// plus push operations driven by a per-start cursor.
//
// The cursor is reset to 0 by every Start. AccPush accumulates into
// the slot at the cursor when one exists — so pre-populated or
// previously grown slots are reused positionally across episodes — and
// appends a brand-new slot otherwise. AccCnts returns only the prefix
// touched since the last Start; AllAccCnts returns every slot,
// including ones from earlier episodes beyond the current cursor.
//
//	v := cputick.NewAccVec[cputick.CPU, cputick.U32, cputick.U32](0)
//	for range runs {
//		v.Start()
//		parse()
//		v.AccPushRestart()
//		execute()
//		v.AccPushRestart()
//	}
//	// v.AllAccCnts()[0] and [1] hold per-stage totals over all runs
//
// The indexed operations differ from [AccArray] in one deliberate way:
// AccN on an out-of-range index is a pure no-op, but AccNRestart on an
// out-of-range index still remarks the timer even though the elapsed
// measurement is discarded. Restart-based pipelines therefore keep
// measuring adjacent intervals even when writing into exhausted
// capacity, instead of silently stretching the next interval.
//
// Like every container here, an AccVec is owned by a single logical
// caller and has no internal synchronization.
type AccVec[S Source, T Value[T], C Count[C]] struct {
	base    baseTimer[S]
	index   int
	accCnts []AccCnt[T, C]
}

// NewAccVec creates an AccVec with n live slots at their default
// value, with the timer marked at creation. n is a starting
// population, not a reservation: the slots exist immediately and are
// reused positionally by the push operations. Pass 0 for an empty
// vector that grows on demand. Panics if n is negative.
func NewAccVec[S Source, T Value[T], C Count[C]](n int) *AccVec[S, T, C] {
	if n < 0 {
		panic("cputick: slot count must be >= 0")
	}
	v := &AccVec[S, T, C]{
		accCnts: make([]AccCnt[T, C], n),
	}
	v.base.Start()
	return v
}

// Clear empties the sequence, resets the cursor, and remarks the
// timer. Capacity is retained for reuse.
func (v *AccVec[S, T, C]) Clear() {
	v.index = 0
	v.accCnts = v.accCnts[:0]
	v.base.Start()
}

// Start marks the shared timer and resets the push cursor to 0.
func (v *AccVec[S, T, C]) Start() {
	v.base.Start()
	v.index = 0
}

// AccN folds the ticks elapsed since Start into slot index and
// advances its count, leaving the start mark untouched. Indices beyond
// the current length (or negative) do nothing at all.
func (v *AccVec[S, T, C]) AccN(index int) {
	if index < 0 || index >= len(v.accCnts) {
		return
	}
	d := uint64(v.base.elapsed())
	ac := &v.accCnts[index]
	ac.Acc = ac.Acc.SatAdd(d)
	ac.Cnt = ac.Cnt.Inc()
}

// AccNRestart folds the ticks elapsed since Start into slot index,
// advances its count, and remarks the timer in the same step. An
// out-of-range index discards the measurement but still remarks the
// timer, so a chain of restart calls never stalls.
func (v *AccVec[S, T, C]) AccNRestart(index int) {
	if index < 0 || index >= len(v.accCnts) {
		v.base.Start()
		return
	}
	d := uint64(v.base.elapsedAndUpdate())
	ac := &v.accCnts[index]
	ac.Acc = ac.Acc.SatAdd(d)
	ac.Cnt = ac.Cnt.Inc()
}

// AccPush accumulates the current elapsed ticks into the slot at the
// cursor, appending a fresh slot when the cursor is past the current
// length, and advances the cursor. It returns the index used.
func (v *AccVec[S, T, C]) AccPush() int {
	n := v.index
	if n < len(v.accCnts) {
		v.AccN(n)
	} else {
		d := uint64(v.base.elapsed())
		v.push(d)
	}
	v.index = n + 1
	return n
}

// AccPushRestart is AccPush with the restart measurement: the elapsed
// ticks are taken and the timer remarked in one step, both when
// reusing a slot and when growing.
func (v *AccVec[S, T, C]) AccPushRestart() int {
	n := v.index
	if n < len(v.accCnts) {
		v.AccNRestart(n)
	} else {
		d := uint64(v.base.elapsedAndUpdate())
		v.push(d)
	}
	v.index = n + 1
	return n
}

// push appends a brand-new slot holding d ticks and one occurrence.
func (v *AccVec[S, T, C]) push(d uint64) {
	var zeroT T
	var zeroC C
	v.accCnts = append(v.accCnts, AccCnt[T, C]{
		Acc: zeroT.SatAdd(d),
		Cnt: zeroC.Inc(),
	})
}

// AccCnts returns the slots touched since the last Start: the prefix
// of the sequence up to the push cursor. The slice is a view; treat it
// as read-only.
func (v *AccVec[S, T, C]) AccCnts() []AccCnt[T, C] {
	return v.accCnts[:v.index]
}

// AllAccCnts returns every slot, including slots beyond the current
// cursor from earlier episodes. The slice is a view; treat it as
// read-only.
func (v *AccVec[S, T, C]) AllAccCnts() []AccCnt[T, C] {
	return v.accCnts
}

// String renders each slot as (acc, cnt, avg), with "-" for the
// average of a slot that was never accumulated into.
func (v *AccVec[S, T, C]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range v.accCnts {
		if i != 0 {
			sb.WriteString(", ")
		}
		writeAccCnt(&sb, v.accCnts[i].Acc, v.accCnts[i].Cnt)
	}
	sb.WriteByte(']')
	return sb.String()
}
