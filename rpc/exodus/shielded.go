// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package exodus

import (
	"encoding/json"

	"github.com/bitmark-inc/exodusd/dispatch"
	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/mode"
	"github.com/bitmark-inc/exodusd/rpc/ratelimit"
	"github.com/bitmark-inc/exodusd/sigma"
)

// Shielded value
// --------------

// CreateDenominationArguments - arguments for SendCreateDenomination
type CreateDenominationArguments struct {
	From       string `json:"fromAddress"`
	PropertyId int64  `json:"propertyId"`
	Value      string `json:"value"`
}

// MintArguments - arguments for SendMint
//
// Denominations is an object of denomination id to number of mints
type MintArguments struct {
	From             string          `json:"fromAddress"`
	PropertyId       int64           `json:"propertyId"`
	Denominations    json.RawMessage `json:"denominations"`
	MinConfirmations *int            `json:"denomMinConf"`
}

// SpendArguments - arguments for SendSpend
type SpendArguments struct {
	To              string `json:"toAddress"`
	PropertyId      int64  `json:"propertyId"`
	Denomination    int64  `json:"denomination"`
	ReferenceAmount string `json:"referenceAmount"`
}

// SendCreateDenomination - add a shielded face value to a property
func (exodus *Exodus) SendCreateDenomination(arguments *CreateDenominationArguments, reply *Reply) error {
	return exodus.submit("SendCreateDenomination", arguments, func() (dispatch.Request, error) {
		from, id, err := exodus.parseProperty(arguments.From, arguments.PropertyId)
		if nil != err {
			return nil, err
		}
		value, err := ParseAmount(arguments.Value, exodus.divisible(id))
		if nil != err {
			return nil, err
		}
		return &dispatch.CreateDenomination{
			From:     from,
			Property: id,
			Value:    value,
		}, nil
	}, reply)
}

// SendMint - convert tokens into shielded mints
func (exodus *Exodus) SendMint(arguments *MintArguments, reply *Reply) error {
	return exodus.submit("SendMint", arguments, func() (dispatch.Request, error) {
		minConfirmations := exodus.MintConfirmations
		if nil != arguments.MinConfirmations {
			minConfirmations = *arguments.MinConfirmations
			if minConfirmations < 1 {
				return nil, fault.MintConfirmationsOutOfRange
			}
		}
		from, id, err := exodus.parseProperty(arguments.From, arguments.PropertyId)
		if nil != err {
			return nil, err
		}
		requests, err := ParseMintDenominations(arguments.Denominations)
		if nil != err {
			return nil, err
		}
		return &dispatch.Mint{
			From:             from,
			Property:         id,
			Denominations:    requests,
			MinConfirmations: minConfirmations,
		}, nil
	}, reply)
}

// SendSpend - spend one shielded mint to an address
func (exodus *Exodus) SendSpend(arguments *SpendArguments, reply *Reply) error {
	return exodus.submit("SendSpend", arguments, func() (dispatch.Request, error) {
		to, err := ParseAddress(exodus.ChainName, arguments.To)
		if nil != err {
			return nil, err
		}
		id, err := ParsePropertyId(arguments.PropertyId)
		if nil != err {
			return nil, err
		}
		denomination, err := ParseSigmaDenomination(arguments.Denomination)
		if nil != err {
			return nil, err
		}
		reference, err := ParseReferenceAmount(arguments.ReferenceAmount)
		if nil != err {
			return nil, err
		}
		return &dispatch.Spend{
			To:              to,
			Property:        id,
			Denomination:    denomination,
			ReferenceAmount: reference,
		}, nil
	}, reply)
}

// ListMintsArguments - arguments for ListMints
type ListMintsArguments struct {
	PropertyId int64 `json:"propertyId"`
}

// ListMintsReply - stored mints of a property
type ListMintsReply struct {
	Mints []sigma.MintInfo `json:"mints"`
}

// ListMints - mints held by the local shielded wallet
func (exodus *Exodus) ListMints(arguments *ListMintsArguments, reply *ListMintsReply) error {
	if err := ratelimit.Limit(exodus.Limiter); err != nil {
		return err
	}

	exodus.Log.Infof("Exodus.ListMints: %+v", arguments)

	if !exodus.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	if nil == exodus.Mints {
		return replyError(fault.ShieldedWalletFailure)
	}

	id, err := ParsePropertyId(arguments.PropertyId)
	if nil != err {
		return replyError(err)
	}

	mints, err := exodus.Mints.List(id)
	if nil != err {
		exodus.Log.Errorf("list mints: %s", err)
		return replyError(fault.ShieldedWalletFailure)
	}

	reply.Mints = mints
	return nil
}
