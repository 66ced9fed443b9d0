// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/exodusd/rpc/exodus"
)

func runDExSell(c *cli.Context) error {
	if err := checkRequired(c, "from", "for-sale"); nil != err {
		return err
	}

	return transaction(c, "SendDExSell", &exodus.DExSellArguments{
		From:              c.String("from"),
		PropertyIdForSale: c.Int64("for-sale"),
		AmountForSale:     c.String("amount-for-sale"),
		AmountDesired:     c.String("amount-desired"),
		PaymentWindow:     c.Int64("window"),
		MinAcceptFee:      c.String("fee"),
		Action:            c.Int64("action"),
	})
}

func runDExAccept(c *cli.Context) error {
	if err := checkRequired(c, "from", "to", "property", "amount"); nil != err {
		return err
	}

	return transaction(c, "SendDExAccept", &exodus.DExAcceptArguments{
		From:       c.String("from"),
		To:         c.String("to"),
		PropertyId: c.Int64("property"),
		Amount:     c.String("amount"),
		Override:   c.Bool("override"),
	})
}

// new offers and cancel by price share one argument shape
func runTrade(method string) cli.ActionFunc {
	return func(c *cli.Context) error {
		if err := checkRequired(c, "from", "for-sale", "amount-for-sale", "desired", "amount-desired"); nil != err {
			return err
		}

		return transaction(c, method, &exodus.TradeArguments{
			From:              c.String("from"),
			PropertyIdForSale: c.Int64("for-sale"),
			AmountForSale:     c.String("amount-for-sale"),
			PropertyIdDesired: c.Int64("desired"),
			AmountDesired:     c.String("amount-desired"),
		})
	}
}

func runCancelPair(c *cli.Context) error {
	if err := checkRequired(c, "from", "for-sale", "desired"); nil != err {
		return err
	}

	return transaction(c, "SendCancelTradesByPair", &exodus.PairArguments{
		From:              c.String("from"),
		PropertyIdForSale: c.Int64("for-sale"),
		PropertyIdDesired: c.Int64("desired"),
	})
}

func runCancelAll(c *cli.Context) error {
	if err := checkRequired(c, "from", "ecosystem"); nil != err {
		return err
	}

	return transaction(c, "SendCancelAllTrades", &exodus.EcosystemArguments{
		From:      c.String("from"),
		Ecosystem: c.Int64("ecosystem"),
	})
}
