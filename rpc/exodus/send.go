// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package exodus

import (
	"github.com/bitmark-inc/exodusd/dispatch"
)

// Raw payload
// -----------

// RawTxArguments - arguments for SendRawTx
type RawTxArguments struct {
	From            string `json:"fromAddress"`
	Data            string `json:"rawTransaction"`
	To              string `json:"referenceAddress"`
	Redeem          string `json:"redeemAddress"`
	ReferenceAmount string `json:"referenceAmount"`
}

// SendRawTx - broadcast a caller encoded payload
func (exodus *Exodus) SendRawTx(arguments *RawTxArguments, reply *Reply) error {
	return exodus.submit("SendRawTx", arguments, func() (dispatch.Request, error) {
		from, err := ParseAddress(exodus.ChainName, arguments.From)
		if nil != err {
			return nil, err
		}
		data, err := ParseHex(arguments.Data)
		if nil != err {
			return nil, err
		}
		to, err := ParseAddressOrEmpty(exodus.ChainName, arguments.To)
		if nil != err {
			return nil, err
		}
		redeem, err := ParseAddressOrEmpty(exodus.ChainName, arguments.Redeem)
		if nil != err {
			return nil, err
		}
		reference, err := ParseReferenceAmount(arguments.ReferenceAmount)
		if nil != err {
			return nil, err
		}
		return &dispatch.RawTx{
			From:            from,
			To:              to,
			Redeem:          redeem,
			ReferenceAmount: reference,
			Payload:         data,
		}, nil
	}, reply)
}

// Simple send
// -----------

// SendArguments - arguments for Send
type SendArguments struct {
	From            string `json:"fromAddress"`
	To              string `json:"toAddress"`
	PropertyId      int64  `json:"propertyId"`
	Amount          string `json:"amount"`
	Redeem          string `json:"redeemAddress"`
	ReferenceAmount string `json:"referenceAmount"`
}

// Send - transfer tokens of one property
func (exodus *Exodus) Send(arguments *SendArguments, reply *Reply) error {
	return exodus.submit("Send", arguments, func() (dispatch.Request, error) {
		from, err := ParseAddress(exodus.ChainName, arguments.From)
		if nil != err {
			return nil, err
		}
		to, err := ParseAddress(exodus.ChainName, arguments.To)
		if nil != err {
			return nil, err
		}
		id, err := ParsePropertyId(arguments.PropertyId)
		if nil != err {
			return nil, err
		}
		amount, err := ParseAmount(arguments.Amount, exodus.divisible(id))
		if nil != err {
			return nil, err
		}
		redeem, err := ParseAddressOrEmpty(exodus.ChainName, arguments.Redeem)
		if nil != err {
			return nil, err
		}
		reference, err := ParseReferenceAmount(arguments.ReferenceAmount)
		if nil != err {
			return nil, err
		}
		return &dispatch.SimpleSend{
			From:            from,
			To:              to,
			Redeem:          redeem,
			Property:        id,
			Amount:          amount,
			ReferenceAmount: reference,
		}, nil
	}, reply)
}

// Send all
// --------

// SendAllArguments - arguments for SendAll
type SendAllArguments struct {
	From            string `json:"fromAddress"`
	To              string `json:"toAddress"`
	Ecosystem       int64  `json:"ecosystem"`
	Redeem          string `json:"redeemAddress"`
	ReferenceAmount string `json:"referenceAmount"`
}

// SendAll - transfer every token of an ecosystem
func (exodus *Exodus) SendAll(arguments *SendAllArguments, reply *Reply) error {
	return exodus.submit("SendAll", arguments, func() (dispatch.Request, error) {
		from, err := ParseAddress(exodus.ChainName, arguments.From)
		if nil != err {
			return nil, err
		}
		to, err := ParseAddress(exodus.ChainName, arguments.To)
		if nil != err {
			return nil, err
		}
		ecosystem, err := ParseEcosystem(arguments.Ecosystem)
		if nil != err {
			return nil, err
		}
		redeem, err := ParseAddressOrEmpty(exodus.ChainName, arguments.Redeem)
		if nil != err {
			return nil, err
		}
		reference, err := ParseReferenceAmount(arguments.ReferenceAmount)
		if nil != err {
			return nil, err
		}
		return &dispatch.SendAll{
			From:            from,
			To:              to,
			Redeem:          redeem,
			Ecosystem:       ecosystem,
			ReferenceAmount: reference,
		}, nil
	}, reply)
}

// Send to owners
// --------------

// STOArguments - arguments for SendSTO
//
// Distribution defaults to the property being sent
type STOArguments struct {
	From         string `json:"fromAddress"`
	PropertyId   int64  `json:"propertyId"`
	Amount       string `json:"amount"`
	Redeem       string `json:"redeemAddress"`
	Distribution *int64 `json:"distributionProperty"`
}

// SendSTO - pay every holder of the distribution property pro rata
func (exodus *Exodus) SendSTO(arguments *STOArguments, reply *Reply) error {
	return exodus.submit("SendSTO", arguments, func() (dispatch.Request, error) {
		from, err := ParseAddress(exodus.ChainName, arguments.From)
		if nil != err {
			return nil, err
		}
		id, err := ParsePropertyId(arguments.PropertyId)
		if nil != err {
			return nil, err
		}
		amount, err := ParseAmount(arguments.Amount, exodus.divisible(id))
		if nil != err {
			return nil, err
		}
		redeem, err := ParseAddressOrEmpty(exodus.ChainName, arguments.Redeem)
		if nil != err {
			return nil, err
		}
		distribution := id
		if nil != arguments.Distribution {
			distribution, err = ParsePropertyId(*arguments.Distribution)
			if nil != err {
				return nil, err
			}
		}
		return &dispatch.SendToOwners{
			From:         from,
			Redeem:       redeem,
			Property:     id,
			Amount:       amount,
			Distribution: distribution,
		}, nil
	}, reply)
}
