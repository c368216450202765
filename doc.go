// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cputick provides low-overhead timers and accumulators over
// raw hardware tick counters, for precise timing of short code
// regions.
//
// Values are CPU "ticks", not seconds: useful for comparing the cost
// of different parts of a program, while leaving any tick-to-seconds
// mapping to the caller. The timers are not resilient to a thread
// being descheduled or migrated between cores; they are meant for
// short sections where those constraints are understood.
//
// # Quick Start
//
// Every type takes a tick source as its first type parameter: [CPU]
// for the hardware counter, [Std] for the portable monotonic clock.
// The choice is made at compile time per instantiation; there is no
// runtime flag and no dispatch on the hot path.
//
//	var t cputick.Timer[cputick.CPU]
//	t.Start()
//	// region to time
//	fmt.Println(t.Elapsed(), "ticks")
//
//	var t cputick.Timer[cputick.Std]
//	t.Start()
//	// region to time
//	fmt.Println(t.Elapsed(), "nanoseconds")
//
// On architectures without a hardware counter implementation, [CPU]
// silently falls back to the same clock as [Std], so CPU-typed code
// stays portable.
//
// # Timers
//
// Three single-region timers share one base:
//
//	Timer      - Start / Elapsed / ElapsedAndUpdate
//	DeltaTimer - Start / Stop bracket, Value reads the recorded delta
//	AccTimer   - start-stop brackets accumulated across invocations
//
// All are plain value types whose zero value is ready to use.
//
// # Accumulator Containers
//
// [AccArray] holds a fixed number of (value, count) slots sharing one
// start mark; [AccVec] is its growable counterpart with push
// operations and a per-start cursor. Both fold elapsed ticks into a
// slot and count the occurrences, either against a common Start
// (AccN) or chaining interval-to-interval (AccNRestart):
//
//	a := cputick.NewAccArray[cputick.CPU, cputick.U64, cputick.U32](8)
//	a.Start()
//	for _, w := range words {
//		process(w)
//		a.AccNRestart(len(w)) // slot per word length
//	}
//
// Out-of-range indices are silent no-ops, so unchecked indices derived
// from runtime data need no fallible path. [AccVec.AccNRestart] still
// remarks the timer on an out-of-range index; see its documentation.
//
// # Traces
//
// [Trace] records per-step deltas through a pipeline of sub-regions;
// [AccTrace] sums traces positionally across episodes via an explicit
// Acc call:
//
//	tr := cputick.NewTrace[cputick.CPU, cputick.U32](3)
//	tr.Start()
//	stageOne()
//	tr.Next()
//	stageTwo()
//	tr.Next()
//	stageThree()
//	tr.Next()
//	fmt.Println(tr.Steps()) // three per-stage deltas
//
// # Value and Count Representations
//
// Accumulator values and occurrence counts are chosen per
// instantiation from a closed set: [U8], [U16], [U32], [U64], [Uint]
// (saturating at the width's maximum), [F32], [F64] (plain addition),
// and [Nop] (zero-sized, all operations elided). Accumulation
// saturates rather than wraps: a pinned maximum is a recognizable
// "this got very large" signal, where wraparound would produce a
// misleadingly small number. Narrow widths trade precision for
// container size.
//
// Choosing Nop disables accumulation or counting entirely at zero
// cost, which keeps permanently embedded instrumentation free when it
// is not wanted:
//
//	// counts only, no tick accumulation
//	a := cputick.NewAccArray[cputick.CPU, cputick.Nop, cputick.U32](8)
//
// # Precision
//
// The hardware counter's granularity is platform-specific. RDTSC on
// x86-64 ticks at a fine grain; CNTVCT_EL0 on arm64 ticks at the fixed
// system counter frequency, which is far coarser than the CPU clock on
// most parts, so very short regions can legitimately measure zero
// ticks. Per-read overhead is not compensated for; it is normally
// small against the regions being measured.
//
// # Thread Safety
//
// None, by design. Every timer and container is a plain value with no
// internal synchronization, and every operation is a synchronous read
// and update of a few machine words. One logical owner must invoke
// operations in program order; for concurrent measurement, give each
// goroutine its own instance and merge the results afterward. The tick
// sources themselves are stateless and safe to read from any number of
// owners.
package cputick
