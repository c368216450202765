// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cputick

import "math"

// delta is a tick count derived from the difference of two tick
// values. It keeps the two arithmetic disciplines apart: wrapping
// arithmetic for the tick difference itself (counter wraparound is
// well-defined, never an error) and saturating addition for
// cross-invocation accumulation (pinning at the maximum beats
// corrupting the sum with wraparound).
type delta uint64

// since returns the wrapping difference now - earlier. A counter that
// wrapped between the two reads still yields the forward distance.
func since(now, earlier uint64) delta {
	return delta(now - earlier)
}

// satAdd is the saturating addition used when folding a fresh delta
// into a longer-lived accumulator.
func (d delta) satAdd(other delta) delta {
	if s := d + other; s >= d {
		return s
	}
	return math.MaxUint64
}
