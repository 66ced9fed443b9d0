// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package precondition

import (
	"github.com/bitmark-inc/exodusd/address"
	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/ledger"
	"github.com/bitmark-inc/exodusd/property"
)

// limits on user supplied values that are legal but almost
// certainly a mistake
const (
	MaxSaneReferenceAmount  = property.Coin / 100 // 0.01 coin
	MaxSaneDExFee           = property.Coin / 100 // 0.01 coin
	MinSaneDExPaymentWindow = 10                  // blocks
)

// Reservations - amounts held back by unconfirmed transactions
type Reservations interface {
	Reserved(owner string, id property.Id) int64
}

// RequireBalance - sender can cover the amount
//
// first against the confirmed balance then against the balance
// remaining after unconfirmed transactions
func RequireBalance(s ledger.Snapshot, r Reservations, sender address.Address, id property.Id, amount int64) error {
	if amount <= 0 {
		return nil
	}

	balance := s.Balance(sender, id)
	if balance < amount {
		return fault.InsufficientBalance
	}

	if nil != r {
		available := balance - r.Reserved(sender.String(), id)
		if available < amount {
			return fault.InsufficientBalancePending
		}
	}
	return nil
}

// RequireSaneReferenceAmount - reference output is not excessive
func RequireSaneReferenceAmount(amount int64) error {
	if amount > MaxSaneReferenceAmount {
		return fault.ReferenceAmountNotSane
	}
	return nil
}
