// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cputick

// Timer is the simplest timer: a single start mark with elapsed reads.
//
// The zero value is ready to use; until the first Start call, elapsed
// values are measured from the source's epoch.
//
//	var t cputick.Timer[cputick.CPU]
//	t.Start()
//	// region to time
//	ticks := t.Elapsed()
type Timer[S Source] struct {
	base baseTimer[S]
}

// Start records the current tick value.
func (t *Timer[S]) Start() {
	t.base.Start()
}

// Elapsed returns the ticks since the last Start without touching the
// mark.
func (t *Timer[S]) Elapsed() uint64 {
	return uint64(t.base.elapsed())
}

// ElapsedAndUpdate returns the ticks since the last Start and restarts
// the timer in the same step, so consecutive calls measure adjacent
// intervals.
func (t *Timer[S]) ElapsedAndUpdate() uint64 {
	return uint64(t.base.elapsedAndUpdate())
}

// DeltaTimer records the tick delta between a start and a stop of one
// region. Start and Stop bracket the region; Value then reports the
// recorded delta until the next Stop.
//
// The zero value is ready to use.
type DeltaTimer[S Source] struct {
	base  baseTimer[S]
	delta delta
}

// Clear resets the recorded delta and remarks the timer.
func (t *DeltaTimer[S]) Clear() {
	t.delta = 0
	t.base.Start()
}

// Start records the ticks at entry to the region.
func (t *DeltaTimer[S]) Start() {
	t.base.Start()
}

// Delta returns the ticks since Start without recording them.
func (t *DeltaTimer[S]) Delta() uint64 {
	return uint64(t.base.elapsed())
}

// Stop records the ticks since Start.
func (t *DeltaTimer[S]) Stop() {
	t.delta = t.base.elapsed()
}

// Value returns the delta recorded by the last Stop.
func (t *DeltaTimer[S]) Value() uint64 {
	return uint64(t.delta)
}

// AccTimer accumulates the delta of repeated start-stop brackets, for
// finding hotspots or averaging a region over many invocations. The
// accumulator saturates at the maximum tick count instead of wrapping.
//
// The zero value is ready to use.
//
//	var t cputick.AccTimer[cputick.CPU]
//	for range 100 {
//		t.Start()
//		// region to time
//		t.Stop()
//	}
//	avg := t.AccValue() / 100
type AccTimer[S Source] struct {
	base  baseTimer[S]
	delta delta
	acc   delta
}

// Clear resets the last delta and the accumulator and remarks the
// timer.
func (t *AccTimer[S]) Clear() {
	t.delta = 0
	t.acc = 0
	t.base.Start()
}

// Start records the ticks at entry to the region.
func (t *AccTimer[S]) Start() {
	t.base.Start()
}

// Stop records the ticks since Start and folds them into the
// accumulator.
func (t *AccTimer[S]) Stop() {
	t.delta = t.base.elapsed()
	t.acc = t.acc.satAdd(t.delta)
}

// LastDelta returns the ticks between the last Start and Stop.
func (t *AccTimer[S]) LastDelta() uint64 {
	return uint64(t.delta)
}

// AccValue returns the accumulated ticks across all Stops since the
// last Clear.
func (t *AccTimer[S]) AccValue() uint64 {
	return uint64(t.acc)
}
