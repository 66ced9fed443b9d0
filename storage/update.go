// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/exodusd/address"
	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/ledger"
	"github.com/bitmark-inc/exodusd/property"
)

// PutProperty - create or replace a property
//
// the Denominations field is ignored, use AddDenomination
func (d *DB) PutProperty(id property.Id, info *property.Info) error {
	if nil == info {
		return fault.MissingPropertyInfo
	}
	return d.Pool.Properties.Put(propertyKey(id), packInfo(info))
}

// SetBalance - record a confirmed balance; zero removes the entry
func (d *DB) SetBalance(owner address.Address, id property.Id, amount int64) error {
	if amount < 0 {
		return fault.AmountOutOfRange
	}
	key := ownerKey(owner, id)
	if 0 == amount {
		return d.Pool.Balances.Delete(key)
	}
	return d.Pool.Balances.PutN(key, uint64(amount))
}

// PutOffer - create or replace the offer of (seller, property)
func (d *DB) PutOffer(offer *ledger.Offer) error {
	if nil == offer {
		return fault.NilRequest
	}
	record := packOffer(offer)
	return d.Pool.Offers.Put(ownerKey(offer.Seller, offer.Property), record)
}

// DeleteOffer - remove a closed offer
func (d *DB) DeleteOffer(seller address.Address, id property.Id) error {
	return d.Pool.Offers.Delete(ownerKey(seller, id))
}

// AddDenomination - append a denomination created at the given height
func (d *DB) AddDenomination(id property.Id, value int64, height uint64) (uint8, error) {
	d.writeLock.Lock()
	defer d.writeLock.Unlock()

	if !d.PropertyExists(id) {
		return 0, fault.PropertyNotFound
	}

	denominations, err := d.denominations(id)
	if nil != err {
		return 0, err
	}
	if len(denominations) >= property.MaxDenominations {
		return 0, fault.TooManyDenominations
	}
	for _, dn := range denominations {
		if dn.value == value {
			return 0, fault.DenominationValueExists
		}
	}

	denominations = append(denominations, denomination{
		value:  value,
		height: height,
	})
	err = d.Pool.Denominations.Put(propertyKey(id), packDenominations(denominations))
	if nil != err {
		return 0, err
	}
	return uint8(len(denominations) - 1), nil
}

// SetHeight - move the chain tip
func (d *DB) SetHeight(height uint64) error {
	return d.Pool.Heights.PutN(tipKey, height)
}
