// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pending

import (
	"time"

	"github.com/bitmark-inc/logger"
)

// expiry background
type expiryData struct {
	log      *logger.L
	interval time.Duration
}

// Run - expiry loop
func (state *expiryData) Run(args interface{}, shutdown <-chan struct{}) {

	log := state.log
	s := args.(*Store)

	log.Info("starting…")

loop:
	for {
		log.Debug("waiting…")
		select {
		case <-shutdown:
			break loop

		case <-time.After(state.interval):
			s.expire(time.Now())
		}
	}
}

// drop effects older than the timeout
func (s *Store) expire(now time.Time) int {
	count := 0
	for i := 0; i < shards; i += 1 {
		s.cache[i].Lock()
		for k, effect := range s.cache[i].table {
			if now.Sub(effect.Timestamp) > s.timeout {
				s.log.Infof("expired: %s", k)
				delete(s.cache[i].table, k)
				count += 1
			}
		}
		s.cache[i].Unlock()
	}
	return count
}
