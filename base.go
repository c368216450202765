// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cputick

// baseTimer holds one start mark from a tick source. Every timer and
// container in the package is built on it.
//
// The zero value's mark is the source's epoch; constructors and Clear
// remark it so "never started" measures from construction or the last
// clear rather than from an arbitrary point.
type baseTimer[S Source] struct {
	start uint64
}

func (t *baseTimer[S]) now() uint64 {
	var src S
	return src.Now()
}

// Start overwrites the mark with the current tick value.
func (t *baseTimer[S]) Start() {
	t.start = t.now()
}

// elapsed returns the wrapping delta between now and the mark without
// mutating the mark.
func (t *baseTimer[S]) elapsed() delta {
	return since(t.now(), t.start)
}

// elapsedAndUpdate returns the wrapping delta between now and the mark
// and replaces the mark with the same reading, as one logical step.
// There is no window where the mark holds neither value.
func (t *baseTimer[S]) elapsedAndUpdate() delta {
	now := t.now()
	d := since(now, t.start)
	t.start = now
	return d
}
