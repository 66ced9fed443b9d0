// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sigma

import (
	"fmt"
	"math"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/property"
)

// MintRequest - number of mints wanted of one denomination
type MintRequest struct {
	Denomination Denomination `json:"id"`
	Count        uint8        `json:"amount"`
}

// Batch - mints created for a single transaction
type Batch struct {
	wallet   Wallet
	property property.Id
	mints    []MintId
}

// Expand - one denomination entry per requested mint, in request order
func Expand(requests []MintRequest) []Denomination {
	n := 0
	for _, r := range requests {
		n += int(r.Count)
	}
	denominations := make([]Denomination, 0, n)
	for _, r := range requests {
		for i := 0; i < int(r.Count); i += 1 {
			denominations = append(denominations, r.Denomination)
		}
	}
	return denominations
}

// Sum - total value of the requested mints
func Sum(values []int64, requests []MintRequest) (int64, error) {
	total := int64(0)
	for _, r := range requests {
		if int(r.Denomination) >= len(values) {
			return 0, fault.DenominationNotFound
		}
		v := values[r.Denomination]
		if 0 != r.Count && v > (math.MaxInt64-total)/int64(r.Count) {
			return 0, fault.AmountOutOfRange
		}
		total += v * int64(r.Count)
	}
	return total, nil
}

// NewMintBatch - create the secrets for all requested mints
//
// if the wallet fails part way the mints already created are erased
// before returning
func NewMintBatch(log *logger.L, wallet Wallet, id property.Id, requests []MintRequest) (*Batch, error) {
	mints, err := wallet.CreateMints(id, Expand(requests))
	b := &Batch{
		wallet:   wallet,
		property: id,
		mints:    mints,
	}
	if nil != err {
		b.Rollback(log)
		return nil, fmt.Errorf("%w: %s", fault.ShieldedWalletFailure, err)
	}
	return b, nil
}

// Mints - identifiers in creation order
func (b *Batch) Mints() []MintId {
	return b.mints
}

// Rollback - erase the mints newest first
//
// erase failures are logged and the remaining mints are still
// attempted; returns the number actually erased and the number the
// batch held, the batch is empty afterwards
func (b *Batch) Rollback(log *logger.L) (erased int, total int) {
	total = len(b.mints)
	for i := len(b.mints) - 1; i >= 0; i -= 1 {
		m := b.mints[i]
		err := b.wallet.EraseMint(m)
		if nil != err {
			if nil != log {
				log.Errorf("erase mint: %s  denomination: %d  error: %s", m.PublicKey, m.Denomination, err)
			}
			continue
		}
		erased += 1
	}
	b.mints = nil
	return erased, total
}
