// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txbuilder

import (
	"sync"
)

// FeeRate - base units per 1000 bytes of transaction
type FeeRate int64

// size in bytes assumed for a DEx accept when converting its fee
const acceptSize = 225

// FeePolicy - the fee rate used for new transactions
type FeePolicy struct {
	sync.Mutex
	rate FeeRate
}

// NewFeePolicy - policy with a default rate
func NewFeePolicy(rate FeeRate) *FeePolicy {
	return &FeePolicy{
		rate: rate,
	}
}

// Current - the rate in effect
func (p *FeePolicy) Current() FeeRate {
	p.Lock()
	defer p.Unlock()
	return p.rate
}

// Set - change the default rate
func (p *FeePolicy) Set(rate FeeRate) {
	p.Lock()
	p.rate = rate
	p.Unlock()
}

// Override - replace the rate until restore is called
//
// restore is idempotent
func (p *FeePolicy) Override(rate FeeRate) func() {
	p.Lock()
	previous := p.rate
	p.rate = rate
	p.Unlock()

	once := sync.Once{}
	return func() {
		once.Do(func() {
			p.Lock()
			p.rate = previous
			p.Unlock()
		})
	}
}

// FeeRateFromAcceptFee - rate that pays minFee for an accept transaction
func FeeRateFromAcceptFee(minFee int64) FeeRate {
	return FeeRate(minFee * 1000 / acceptSize)
}
