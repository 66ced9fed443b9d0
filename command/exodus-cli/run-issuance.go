// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/exodusd/rpc/exodus"
)

func getMetadata(c *cli.Context) (exodus.MetadataArguments, error) {
	if err := checkRequired(c, "from", "ecosystem", "type", "name"); nil != err {
		return exodus.MetadataArguments{}, err
	}

	return exodus.MetadataArguments{
		From:        c.String("from"),
		Ecosystem:   c.Int64("ecosystem"),
		Type:        c.Int64("type"),
		PreviousId:  c.Int64("previous-id"),
		Category:    c.String("category"),
		Subcategory: c.String("subcategory"),
		Name:        c.String("name"),
		URL:         c.String("url"),
		Data:        c.String("data"),
	}, nil
}

func runCrowdsale(c *cli.Context) error {
	m, err := getMetadata(c)
	if nil != err {
		return err
	}
	if err := checkRequired(c, "desired", "tokens-per-unit", "deadline"); nil != err {
		return err
	}

	return transaction(c, "SendIssuanceCrowdsale", &exodus.CrowdsaleArguments{
		MetadataArguments: m,
		PropertyIdDesired: c.Int64("desired"),
		TokensPerUnit:     c.String("tokens-per-unit"),
		Deadline:          c.Int64("deadline"),
		EarlyBonus:        c.Int64("early-bonus"),
		IssuerPercentage:  c.Int64("issuer-percentage"),
	})
}

func runFixed(c *cli.Context) error {
	m, err := getMetadata(c)
	if nil != err {
		return err
	}
	if err := checkRequired(c, "amount"); nil != err {
		return err
	}

	return transaction(c, "SendIssuanceFixed", &exodus.FixedArguments{
		MetadataArguments: m,
		Amount:            c.String("amount"),
		Sigma:             optionalInt64(c, "sigma"),
	})
}

func runManaged(c *cli.Context) error {
	m, err := getMetadata(c)
	if nil != err {
		return err
	}

	return transaction(c, "SendIssuanceManaged", &exodus.ManagedArguments{
		MetadataArguments: m,
		Sigma:             optionalInt64(c, "sigma"),
	})
}

func runGrant(c *cli.Context) error {
	if err := checkRequired(c, "from", "property", "amount"); nil != err {
		return err
	}

	return transaction(c, "SendGrant", &exodus.GrantArguments{
		From:       c.String("from"),
		To:         c.String("to"),
		PropertyId: c.Int64("property"),
		Amount:     c.String("amount"),
		Memo:       c.String("memo"),
	})
}

func runRevoke(c *cli.Context) error {
	if err := checkRequired(c, "from", "property", "amount"); nil != err {
		return err
	}

	return transaction(c, "SendRevoke", &exodus.RevokeArguments{
		From:       c.String("from"),
		PropertyId: c.Int64("property"),
		Amount:     c.String("amount"),
		Memo:       c.String("memo"),
	})
}

// administration commands naming only a property
func runProperty(method string) cli.ActionFunc {
	return func(c *cli.Context) error {
		if err := checkRequired(c, "from", "property"); nil != err {
			return err
		}

		return transaction(c, method, &exodus.PropertyArguments{
			From:       c.String("from"),
			PropertyId: c.Int64("property"),
		})
	}
}

func runChangeIssuer(c *cli.Context) error {
	if err := checkRequired(c, "from", "to", "property"); nil != err {
		return err
	}

	return transaction(c, "SendChangeIssuer", &exodus.ChangeIssuerArguments{
		From:       c.String("from"),
		To:         c.String("to"),
		PropertyId: c.Int64("property"),
	})
}

func runFreeze(method string) cli.ActionFunc {
	return func(c *cli.Context) error {
		if err := checkRequired(c, "from", "to", "property", "amount"); nil != err {
			return err
		}

		return transaction(c, method, &exodus.FreezeArguments{
			From:       c.String("from"),
			Target:     c.String("to"),
			PropertyId: c.Int64("property"),
			Amount:     c.String("amount"),
		})
	}
}
