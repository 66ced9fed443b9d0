// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/exodusd/rpc/exodus"
)

func runSendRawTx(c *cli.Context) error {
	if err := checkRequired(c, "from", "payload"); nil != err {
		return err
	}

	return transaction(c, "SendRawTx", &exodus.RawTxArguments{
		From:            c.String("from"),
		Data:            c.String("payload"),
		To:              c.String("reference"),
		Redeem:          c.String("redeem"),
		ReferenceAmount: c.String("reference-amount"),
	})
}

func runSend(c *cli.Context) error {
	if err := checkRequired(c, "from", "to", "property", "amount"); nil != err {
		return err
	}

	return transaction(c, "Send", &exodus.SendArguments{
		From:            c.String("from"),
		To:              c.String("to"),
		PropertyId:      c.Int64("property"),
		Amount:          c.String("amount"),
		Redeem:          c.String("redeem"),
		ReferenceAmount: c.String("reference-amount"),
	})
}

func runSendAll(c *cli.Context) error {
	if err := checkRequired(c, "from", "to", "ecosystem"); nil != err {
		return err
	}

	return transaction(c, "SendAll", &exodus.SendAllArguments{
		From:            c.String("from"),
		To:              c.String("to"),
		Ecosystem:       c.Int64("ecosystem"),
		Redeem:          c.String("redeem"),
		ReferenceAmount: c.String("reference-amount"),
	})
}

func runSendSTO(c *cli.Context) error {
	if err := checkRequired(c, "from", "property", "amount"); nil != err {
		return err
	}

	return transaction(c, "SendSTO", &exodus.STOArguments{
		From:         c.String("from"),
		PropertyId:   c.Int64("property"),
		Amount:       c.String("amount"),
		Redeem:       c.String("redeem"),
		Distribution: optionalInt64(c, "distribution"),
	})
}
