// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/exodusd/messagebus"
	"github.com/bitmark-inc/exodusd/rpc"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodic memory and connection figures for the "memory" log channel
func memstats() {

	log := logger.New("memory")

	for {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		a := m.Alloc / mega
		t := m.TotalAlloc / mega
		s := m.Sys / mega
		log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M  GC cycles: %d", a, t, s, m.NumGC)
		log.Infof("goroutines: %d  rpc connections: %d  dropped events: %d",
			runtime.NumGoroutine(),
			rpc.Connections(),
			messagebus.Bus.Broadcast.Dropped(),
		)

		time.Sleep(statsDelay)
	}
}
