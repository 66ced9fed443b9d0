// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/exodusd/address"
	"github.com/bitmark-inc/exodusd/property"
)

// Offer - a standing sell order on the distributed exchange
//
// keyed by (Seller, Property); at most one exists per key
type Offer struct {
	Seller        address.Address `json:"seller"`
	Property      property.Id     `json:"propertyId"`
	AmountForSale int64           `json:"amountForSale"`
	AmountDesired int64           `json:"amountDesired"`
	PaymentWindow uint8           `json:"paymentWindow"`
	MinFee        int64           `json:"minFee"`
}

// Snapshot - read only view of the token ledger state
type Snapshot interface {
	PropertyExists(property.Id) bool
	PropertyInfo(property.Id) (*property.Info, error)
	Balance(address.Address, property.Id) int64
	Offer(address.Address, property.Id) (*Offer, bool)
	Denominations(property.Id) ([]int64, error)
	DenominationRemainingConfirmations(id property.Id, denomination uint8, minConfirms int) (int, error)
}
