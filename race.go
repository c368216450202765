// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package cputick

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent-ownership tests whose atomix
// episode tallies trigger false positives under the detector.
const RaceEnabled = true
