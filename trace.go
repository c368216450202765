// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cputick

// Trace records the per-step deltas of one pass through a pipeline of
// sub-regions. Start marks the entry; each Next call stores the ticks
// since the previous Next (or since Start for the first step) and
// advances to the following step.
//
//	tr := cputick.NewTrace[cputick.CPU, cputick.U32](3)
//	tr.Start()
//	stageOne()
//	tr.Next()
//	stageTwo()
//	tr.Next()
//	stageThree()
//	tr.Next()
//	// tr.Steps() holds the three stage deltas
//
// Next calls beyond the step count do nothing; a full trace is a
// terminal state, not an error. Unwritten steps hold the default
// value.
type Trace[S Source, T Value[T]] struct {
	base  baseTimer[S]
	index int
	steps []T
}

// NewTrace creates a Trace with n steps, with the timer marked at
// creation. Panics if n is negative.
func NewTrace[S Source, T Value[T]](n int) *Trace[S, T] {
	if n < 0 {
		panic("cputick: step count must be >= 0")
	}
	t := &Trace[S, T]{steps: make([]T, n)}
	t.base.Start()
	return t
}

// Clear resets every step to its default value, resets the step
// cursor, and remarks the timer.
func (t *Trace[S, T]) Clear() {
	clear(t.steps)
	t.index = 0
	t.base.Start()
}

// Start marks the timer and resets the step cursor. Up to n Next
// calls afterwards store individual step deltas.
func (t *Trace[S, T]) Start() {
	t.base.Start()
	t.index = 0
}

// Next stores the ticks since the last Start or Next in the current
// step and advances, remarking the timer in the same measurement. Once
// the trace is full, Next does nothing.
func (t *Trace[S, T]) Next() {
	if t.index >= len(t.steps) {
		return
	}
	d := uint64(t.base.elapsedAndUpdate())
	var zero T
	t.steps[t.index] = zero.SatAdd(d)
	t.index++
}

// Steps returns the full backing array regardless of how many steps
// have been written; the unwritten tail holds default values. The
// slice is a view; treat it as read-only.
func (t *Trace[S, T]) Steps() []T {
	return t.steps
}

// AccTrace accumulates a [Trace] across many episodes: each position's
// step delta is summed into a parallel accumulator of the same shape.
//
// Start and Next delegate to the embedded trace. The accumulator is
// only updated by an explicit Acc call, once per completed episode;
// neither Start nor Next touches it.
//
//	at := cputick.NewAccTrace[cputick.CPU, cputick.U32](4)
//	for range runs {
//		at.Start()
//		phaseA()
//		at.Next()
//		phaseB()
//		at.Next()
//		phaseC()
//		at.Next()
//		phaseD()
//		at.Next()
//		at.Acc()
//	}
//	// at.Total() holds the per-phase tick totals over all runs
type AccTrace[S Source, T Value[T]] struct {
	trace Trace[S, T]
	acc   []T
}

// NewAccTrace creates an AccTrace with n steps, with the timer marked
// at creation. Panics if n is negative.
func NewAccTrace[S Source, T Value[T]](n int) *AccTrace[S, T] {
	if n < 0 {
		panic("cputick: step count must be >= 0")
	}
	t := &AccTrace[S, T]{
		trace: Trace[S, T]{steps: make([]T, n)},
		acc:   make([]T, n),
	}
	t.trace.base.Start()
	return t
}

// Clear resets the embedded trace and the accumulator to their default
// values.
func (t *AccTrace[S, T]) Clear() {
	t.trace.Clear()
	clear(t.acc)
}

// Start marks the timer and resets the embedded trace's step cursor.
func (t *AccTrace[S, T]) Start() {
	t.trace.Start()
}

// Next stores the current step delta in the embedded trace.
func (t *AccTrace[S, T]) Next() {
	t.trace.Next()
}

// Acc folds every position of the current trace into the accumulator,
// saturating. Call it once per completed episode; it is never invoked
// implicitly.
func (t *AccTrace[S, T]) Acc() {
	for i := range t.acc {
		t.acc[i] = t.acc[i].SatAdd(t.trace.steps[i].Ticks())
	}
}

// Last returns the most recent, possibly partially filled, trace. The
// slice is a view; treat it as read-only.
func (t *AccTrace[S, T]) Last() []T {
	return t.trace.Steps()
}

// Total returns the accumulated per-step values across all Acc calls
// since the last Clear. The slice is a view; treat it as read-only.
func (t *AccTrace[S, T]) Total() []T {
	return t.acc
}
