// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/bitmark-inc/exodusd/address"
	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/ledger"
	"github.com/bitmark-inc/exodusd/property"
	"github.com/bitmark-inc/exodusd/util"
)

var tipKey = []byte("tip")

// one denomination of a property with the block it was created in
type denomination struct {
	value  int64
	height uint64
}

// PropertyExists - true if the property has been issued
func (d *DB) PropertyExists(id property.Id) bool {
	return d.Pool.Properties.Has(propertyKey(id))
}

// PropertyInfo - issuance details of a property
//
// returns nil, nil when the property does not exist
func (d *DB) PropertyInfo(id property.Id) (*property.Info, error) {
	buffer := d.Pool.Properties.Get(propertyKey(id))
	if nil == buffer {
		return nil, nil
	}
	info, err := unpackInfo(buffer)
	if nil != err {
		return nil, err
	}

	denominations, err := d.denominations(id)
	if nil != err {
		return nil, err
	}
	for _, dn := range denominations {
		info.Denominations = append(info.Denominations, dn.value)
	}
	return info, nil
}

// Balance - confirmed balance, zero if never funded
func (d *DB) Balance(owner address.Address, id property.Id) int64 {
	n, ok := d.Pool.Balances.GetN(ownerKey(owner, id))
	if !ok {
		return 0
	}
	return int64(n)
}

// Offer - the live sell offer of a seller for a property
func (d *DB) Offer(seller address.Address, id property.Id) (*ledger.Offer, bool) {
	buffer := d.Pool.Offers.Get(ownerKey(seller, id))
	if nil == buffer {
		return nil, false
	}

	r := util.NewReader(buffer)
	offer := &ledger.Offer{
		Seller:        seller,
		Property:      id,
		AmountForSale: r.Int64(),
		AmountDesired: r.Int64(),
		PaymentWindow: uint8(r.Uint64()),
		MinFee:        r.Int64(),
	}
	if nil != r.Err() {
		d.log.Errorf("offer: %s/%d  error: %s", seller, id, r.Err())
		return nil, false
	}
	return offer, true
}

// Denominations - values in creation order
func (d *DB) Denominations(id property.Id) ([]int64, error) {
	denominations, err := d.denominations(id)
	if nil != err {
		return nil, err
	}
	values := make([]int64, 0, len(denominations))
	for _, dn := range denominations {
		values = append(values, dn.value)
	}
	return values, nil
}

// DenominationRemainingConfirmations - blocks still needed before
// mints of the denomination may be created
func (d *DB) DenominationRemainingConfirmations(id property.Id, index uint8, minConfirms int) (int, error) {
	denominations, err := d.denominations(id)
	if nil != err {
		return 0, err
	}
	if int(index) >= len(denominations) {
		return 0, fault.DenominationNotFound
	}

	confirmations := 0
	tip := d.Height()
	created := denominations[index].height
	if tip >= created {
		confirmations = int(tip-created) + 1
	}
	if confirmations >= minConfirms {
		return 0, nil
	}
	return minConfirms - confirmations, nil
}

// Height - the current block height
func (d *DB) Height() uint64 {
	n, _ := d.Pool.Heights.GetN(tipKey)
	return n
}

func (d *DB) denominations(id property.Id) ([]denomination, error) {
	buffer := d.Pool.Denominations.Get(propertyKey(id))
	if nil == buffer {
		return nil, nil
	}
	r := util.NewReader(buffer)
	n := r.Uint64()
	if n > property.MaxDenominations {
		return nil, fault.RecordTruncated
	}
	denominations := make([]denomination, 0, n)
	for i := uint64(0); i < n; i += 1 {
		denominations = append(denominations, denomination{
			value:  r.Int64(),
			height: r.Uint64(),
		})
	}
	if nil != r.Err() {
		return nil, r.Err()
	}
	return denominations, nil
}

func packDenominations(denominations []denomination) util.Record {
	record := util.Record{}.AppendUint64(uint64(len(denominations)))
	for _, dn := range denominations {
		record = record.AppendInt64(dn.value).AppendUint64(dn.height)
	}
	return record
}

func packInfo(info *property.Info) util.Record {
	return util.Record{}.
		AppendString(info.Name).
		AppendBytes(info.Issuer.Payload()).
		AppendBool(info.Divisible).
		AppendBool(info.Fixed).
		AppendBool(info.Managed).
		AppendBool(info.Crowdsale).
		AppendBool(info.CrowdsaleActive).
		AppendBool(info.FreezingEnabled).
		AppendUint64(uint64(info.Sigma))
}

func unpackInfo(buffer []byte) (*property.Info, error) {
	r := util.NewReader(buffer)
	info := &property.Info{
		Name: r.String(),
	}
	issuer := r.Bytes()
	info.Divisible = r.Bool()
	info.Fixed = r.Bool()
	info.Managed = r.Bool()
	info.Crowdsale = r.Bool()
	info.CrowdsaleActive = r.Bool()
	info.FreezingEnabled = r.Bool()
	info.Sigma = property.SigmaStatus(r.Uint64())
	if nil != r.Err() {
		return nil, r.Err()
	}

	a, err := address.FromPayload(issuer)
	if nil != err {
		return nil, err
	}
	info.Issuer = a
	return info, nil
}

func propertyKey(id property.Id) []byte {
	key := make([]byte, 4)
	binary.BigEndian.PutUint32(key, uint32(id))
	return key
}

func ownerKey(owner address.Address, id property.Id) []byte {
	return append(owner.Payload(), propertyKey(id)...)
}

func packOffer(offer *ledger.Offer) util.Record {
	return util.Record{}.
		AppendInt64(offer.AmountForSale).
		AppendInt64(offer.AmountDesired).
		AppendUint64(uint64(offer.PaymentWindow)).
		AppendInt64(offer.MinFee)
}
