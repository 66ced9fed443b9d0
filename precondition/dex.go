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

// RequireNoOtherDExOffer - a new offer needs a free (seller, property) slot
func RequireNoOtherDExOffer(s ledger.Snapshot, seller address.Address, id property.Id) error {
	if _, ok := s.Offer(seller, id); ok {
		return fault.DExOfferExists
	}
	return nil
}

// RequireMatchingDExOffer - update, cancel and accept need a live offer
func RequireMatchingDExOffer(s ledger.Snapshot, seller address.Address, id property.Id) error {
	if _, ok := s.Offer(seller, id); !ok {
		return fault.DExOfferNotFound
	}
	return nil
}

// RequireSaneDExFee - the accept fee demanded by the offer is not excessive
func RequireSaneDExFee(s ledger.Snapshot, seller address.Address, id property.Id) error {
	offer, ok := s.Offer(seller, id)
	if !ok {
		return fault.DExOfferNotFound
	}
	if offer.MinFee > MaxSaneDExFee {
		return fault.DExFeeNotSane
	}
	return nil
}

// RequireSaneDExPaymentWindow - the buyer has enough blocks to pay
func RequireSaneDExPaymentWindow(s ledger.Snapshot, seller address.Address, id property.Id) error {
	offer, ok := s.Offer(seller, id)
	if !ok {
		return fault.DExOfferNotFound
	}
	if offer.PaymentWindow < MinSaneDExPaymentWindow {
		return fault.DExPaymentWindowNotSane
	}
	return nil
}
