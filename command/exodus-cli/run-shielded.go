// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/exodusd/rpc/exodus"
)

func runCreateDenomination(c *cli.Context) error {
	if err := checkRequired(c, "from", "property", "value"); nil != err {
		return err
	}

	return transaction(c, "SendCreateDenomination", &exodus.CreateDenominationArguments{
		From:       c.String("from"),
		PropertyId: c.Int64("property"),
		Value:      c.String("value"),
	})
}

func runMint(c *cli.Context) error {
	if err := checkRequired(c, "from", "property", "denominations"); nil != err {
		return err
	}

	arguments := &exodus.MintArguments{
		From:          c.String("from"),
		PropertyId:    c.Int64("property"),
		Denominations: json.RawMessage(c.String("denominations")),
	}
	if c.IsSet("confirmations") {
		n := c.Int("confirmations")
		arguments.MinConfirmations = &n
	}

	return transaction(c, "SendMint", arguments)
}

func runSpend(c *cli.Context) error {
	if err := checkRequired(c, "to", "property", "denomination"); nil != err {
		return err
	}

	return transaction(c, "SendSpend", &exodus.SpendArguments{
		To:              c.String("to"),
		PropertyId:      c.Int64("property"),
		Denomination:    c.Int64("denomination"),
		ReferenceAmount: c.String("reference-amount"),
	})
}
