// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/exodusd/fault"
)

// Limit - delay a single request until the limiter allows it
func Limit(limiter *rate.Limiter) error {
	return reserve(limiter, 1)
}

// LimitN - delay a request that returns count items
//
// an invalid count is charged as a single request and rejected
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count > 0 && count <= maximumCount {
		return reserve(limiter, count)
	}

	if err := reserve(limiter, 1); nil != err {
		return err
	}
	return fault.InvalidCount
}

// tokens beyond the burst size can never be granted
func reserve(limiter *rate.Limiter, n int) error {
	r := limiter.ReserveN(time.Now(), n)
	if !r.OK() {
		return fault.RateLimiting
	}
	if delay := r.Delay(); delay > 0 {
		time.Sleep(delay)
	}
	return nil
}
