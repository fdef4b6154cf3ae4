// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bianyuanop/cousin-store-contract/counter"
)

func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if 0 != c1.Uint64() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	c1.Increment()
	c1.Increment()
	if n := c1.Increment(); 3 != n {
		t.Errorf("increment returned: %d  expected: 3", n)
	}

	if 3 != c1.Uint64() {
		t.Errorf("counter is not 3 after incrementing: %d", c1.Uint64())
	}
}

func TestCounterConcurrentIncrement(t *testing.T) {

	var c1 counter.Counter
	var wg sync.WaitGroup

	const workers = 8
	const each = 1000

	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < each; j += 1 {
				c1.Increment()
			}
		}()
	}
	wg.Wait()

	if workers*each != c1.Uint64() {
		t.Errorf("counter: %d  expected: %d", c1.Uint64(), workers*each)
	}
}
