// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cputick_test

import (
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/cputick"
)

// TestPerGoroutineOwnership exercises the documented concurrency
// pattern: one container per goroutine, results merged after the
// join. The merged totals must match the episode tally exactly; the
// containers themselves need no synchronization because nothing is
// shared between owners.
func TestPerGoroutineOwnership(t *testing.T) {
	if cputick.RaceEnabled {
		t.Skip("skip: atomix tallies appear as plain accesses to the race detector")
	}

	const workers = 4
	const episodes = 50

	var tally atomix.Int64
	arrays := make([]*cputick.AccArray[cputick.Std, cputick.U64, cputick.U32], workers)
	for i := range arrays {
		arrays[i] = cputick.NewAccArray[cputick.Std, cputick.U64, cputick.U32](2)
	}

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func(a *cputick.AccArray[cputick.Std, cputick.U64, cputick.U32]) {
			defer wg.Done()
			for range episodes {
				a.Start()
				spinFor(10 * time.Microsecond)
				a.AccNRestart(0)
				spinFor(10 * time.Microsecond)
				a.AccNRestart(1)
				tally.Add(1)
			}
		}(arrays[w])
	}
	wg.Wait()

	var merged [2]int64
	for _, a := range arrays {
		for i, c := range a.Cnts() {
			merged[i] += int64(c)
		}
		for i, v := range a.Accs() {
			if v == 0 {
				t.Fatalf("worker slot %d: got 0, want > 0", i)
			}
		}
	}

	want := tally.Load()
	if want != workers*episodes {
		t.Fatalf("episode tally: got %d, want %d", want, workers*episodes)
	}
	if merged[0] != want || merged[1] != want {
		t.Fatalf("merged counts: got [%d %d], want [%d %d]",
			merged[0], merged[1], want, want)
	}
}
