// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package exodus

import (
	"github.com/bitmark-inc/exodusd/dispatch"
	"github.com/bitmark-inc/exodusd/payload"
	"github.com/bitmark-inc/exodusd/property"
)

// Distributed exchange
// --------------------

// DExSellArguments - arguments for SendDExSell
//
// amounts, window and fee are ignored for a cancel
type DExSellArguments struct {
	From              string `json:"fromAddress"`
	PropertyIdForSale int64  `json:"propertyIdForSale"`
	AmountForSale     string `json:"amountForSale"`
	AmountDesired     string `json:"amountDesired"`
	PaymentWindow     int64  `json:"paymentWindow"`
	MinAcceptFee      string `json:"minAcceptFee"`
	Action            int64  `json:"action"`
}

// SendDExSell - place, update or cancel a sell offer of a primary token
func (exodus *Exodus) SendDExSell(arguments *DExSellArguments, reply *Reply) error {
	return exodus.submit("SendDExSell", arguments, func() (dispatch.Request, error) {
		from, err := ParseAddress(exodus.ChainName, arguments.From)
		if nil != err {
			return nil, err
		}
		id, err := ParsePropertyId(arguments.PropertyIdForSale)
		if nil != err {
			return nil, err
		}
		action, err := ParseDExAction(arguments.Action)
		if nil != err {
			return nil, err
		}

		request := &dispatch.DExSell{
			From:     from,
			Property: id,
			Action:   action,
		}
		if action > payload.DExUpdate {
			return request, nil
		}

		// both sides of the offer are divisible
		request.AmountForSale, err = ParseAmount(arguments.AmountForSale, true)
		if nil != err {
			return nil, err
		}
		request.AmountDesired, err = ParseAmount(arguments.AmountDesired, true)
		if nil != err {
			return nil, err
		}
		request.PaymentWindow, err = ParseDExPaymentWindow(arguments.PaymentWindow)
		if nil != err {
			return nil, err
		}
		request.MinFee, err = ParseDExFee(arguments.MinAcceptFee)
		if nil != err {
			return nil, err
		}
		return request, nil
	}, reply)
}

// DExAcceptArguments - arguments for SendDExAccept
//
// Override skips the fee and payment window sanity checks
type DExAcceptArguments struct {
	From       string `json:"fromAddress"`
	To         string `json:"toAddress"`
	PropertyId int64  `json:"propertyId"`
	Amount     string `json:"amount"`
	Override   bool   `json:"override"`
}

// SendDExAccept - accept an open sell offer
func (exodus *Exodus) SendDExAccept(arguments *DExAcceptArguments, reply *Reply) error {
	return exodus.submit("SendDExAccept", arguments, func() (dispatch.Request, error) {
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
		amount, err := ParseAmount(arguments.Amount, true)
		if nil != err {
			return nil, err
		}
		return &dispatch.DExAccept{
			From:     from,
			To:       to,
			Property: id,
			Amount:   amount,
			Override: arguments.Override,
		}, nil
	}, reply)
}

// Metadex
// -------

// TradeArguments - arguments for SendTrade and SendCancelTradesByPrice
type TradeArguments struct {
	From              string `json:"fromAddress"`
	PropertyIdForSale int64  `json:"propertyIdForSale"`
	AmountForSale     string `json:"amountForSale"`
	PropertyIdDesired int64  `json:"propertyIdDesired"`
	AmountDesired     string `json:"amountDesired"`
}

// LegacyTradeArguments - arguments for Trade
type LegacyTradeArguments struct {
	TradeArguments
	Action int64 `json:"action"`
}

// PairArguments - arguments for SendCancelTradesByPair
type PairArguments struct {
	From              string `json:"fromAddress"`
	PropertyIdForSale int64  `json:"propertyIdForSale"`
	PropertyIdDesired int64  `json:"propertyIdDesired"`
}

// EcosystemArguments - arguments for SendCancelAllTrades
type EcosystemArguments struct {
	From      string `json:"fromAddress"`
	Ecosystem int64  `json:"ecosystem"`
}

// Trade - older combined entry forwarding on the action value
func (exodus *Exodus) Trade(arguments *LegacyTradeArguments, reply *Reply) error {
	action, err := ParseMetaDExAction(arguments.Action)
	if nil != err {
		return replyError(err)
	}

	switch action {
	case MetaDExAdd:
		return exodus.SendTrade(&arguments.TradeArguments, reply)

	case MetaDExCancelAtPrice:
		return exodus.SendCancelTradesByPrice(&arguments.TradeArguments, reply)

	case MetaDExCancelPair:
		pair := &PairArguments{
			From:              arguments.From,
			PropertyIdForSale: arguments.PropertyIdForSale,
			PropertyIdDesired: arguments.PropertyIdDesired,
		}
		return exodus.SendCancelTradesByPair(pair, reply)

	default:
		// ids outside the uint32 range fall into neither ecosystem
		// and are rejected by the ecosystem parser
		ecosystem := property.Ecosystem(0)
		forSale, errForSale := ParsePropertyId(arguments.PropertyIdForSale)
		desired, errDesired := ParsePropertyId(arguments.PropertyIdDesired)
		if nil == errForSale && nil == errDesired {
			ecosystem = property.EcosystemOfPair(forSale, desired)
		}
		all := &EcosystemArguments{
			From:      arguments.From,
			Ecosystem: int64(ecosystem),
		}
		return exodus.SendCancelAllTrades(all, reply)
	}
}

// SendTrade - place an offer on the token exchange
func (exodus *Exodus) SendTrade(arguments *TradeArguments, reply *Reply) error {
	return exodus.submit("SendTrade", arguments, func() (dispatch.Request, error) {
		t, err := exodus.parseTrade(arguments)
		if nil != err {
			return nil, err
		}
		return t, nil
	}, reply)
}

// SendCancelTradesByPrice - cancel offers at one exact price
func (exodus *Exodus) SendCancelTradesByPrice(arguments *TradeArguments, reply *Reply) error {
	return exodus.submit("SendCancelTradesByPrice", arguments, func() (dispatch.Request, error) {
		t, err := exodus.parseTrade(arguments)
		if nil != err {
			return nil, err
		}
		return (*dispatch.CancelTradesByPrice)(t), nil
	}, reply)
}

// SendCancelTradesByPair - cancel every offer of a property pair
func (exodus *Exodus) SendCancelTradesByPair(arguments *PairArguments, reply *Reply) error {
	return exodus.submit("SendCancelTradesByPair", arguments, func() (dispatch.Request, error) {
		from, err := ParseAddress(exodus.ChainName, arguments.From)
		if nil != err {
			return nil, err
		}
		forSale, err := ParsePropertyId(arguments.PropertyIdForSale)
		if nil != err {
			return nil, err
		}
		desired, err := ParsePropertyId(arguments.PropertyIdDesired)
		if nil != err {
			return nil, err
		}
		return &dispatch.CancelTradesByPair{
			From:            from,
			PropertyForSale: forSale,
			PropertyDesired: desired,
		}, nil
	}, reply)
}

// SendCancelAllTrades - cancel every offer in an ecosystem
func (exodus *Exodus) SendCancelAllTrades(arguments *EcosystemArguments, reply *Reply) error {
	return exodus.submit("SendCancelAllTrades", arguments, func() (dispatch.Request, error) {
		from, err := ParseAddress(exodus.ChainName, arguments.From)
		if nil != err {
			return nil, err
		}
		ecosystem, err := ParseEcosystem(arguments.Ecosystem)
		if nil != err {
			return nil, err
		}
		return &dispatch.CancelAllTrades{
			From:      from,
			Ecosystem: ecosystem,
		}, nil
	}, reply)
}

// fields shared by add and cancel-at-price
func (exodus *Exodus) parseTrade(arguments *TradeArguments) (*dispatch.Trade, error) {
	from, err := ParseAddress(exodus.ChainName, arguments.From)
	if nil != err {
		return nil, err
	}
	forSale, err := ParsePropertyId(arguments.PropertyIdForSale)
	if nil != err {
		return nil, err
	}
	amountForSale, err := ParseAmount(arguments.AmountForSale, exodus.divisible(forSale))
	if nil != err {
		return nil, err
	}
	desired, err := ParsePropertyId(arguments.PropertyIdDesired)
	if nil != err {
		return nil, err
	}
	amountDesired, err := ParseAmount(arguments.AmountDesired, exodus.divisible(desired))
	if nil != err {
		return nil, err
	}
	return &dispatch.Trade{
		From:            from,
		PropertyForSale: forSale,
		AmountForSale:   amountForSale,
		PropertyDesired: desired,
		AmountDesired:   amountDesired,
	}, nil
}
