// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"

	"github.com/bitmark-inc/exodusd/background"
)

// drains a work channel until shutdown
type drain struct {
	work chan int
	done chan int
}

func (d *drain) Run(args interface{}, shutdown <-chan struct{}) {
	total := 0
	for {
		select {
		case <-shutdown:
			d.done <- total
			return
		case n := <-d.work:
			total += n
		}
	}
}

func Example() {
	d := &drain{
		work: make(chan int),
		done: make(chan int, 1),
	}

	p := background.Start(background.Processes{d}, nil)
	for i := 1; i <= 4; i += 1 {
		d.work <- i
	}
	p.Stop()

	fmt.Printf("total: %d\n", <-d.done)
	// Output: total: 10
}
