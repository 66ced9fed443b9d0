// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/exodusd/rpc/exodus"
)

func runActivation(c *cli.Context) error {
	if err := checkRequired(c, "from", "feature", "block", "min-client-version"); nil != err {
		return err
	}

	return transaction(c, "SendActivation", &exodus.ActivationArguments{
		From:             c.String("from"),
		FeatureId:        uint16(c.Uint("feature")),
		Block:            uint32(c.Uint("block")),
		MinClientVersion: uint32(c.Uint("min-client-version")),
	})
}

func runDeactivation(c *cli.Context) error {
	if err := checkRequired(c, "from", "feature"); nil != err {
		return err
	}

	return transaction(c, "SendDeactivation", &exodus.DeactivationArguments{
		From:      c.String("from"),
		FeatureId: uint16(c.Uint("feature")),
	})
}

func runAlert(c *cli.Context) error {
	if err := checkRequired(c, "from", "type", "expiry", "message"); nil != err {
		return err
	}

	return transaction(c, "SendAlert", &exodus.AlertArguments{
		From:      c.String("from"),
		AlertType: c.Int64("type"),
		Expiry:    c.Int64("expiry"),
		Message:   c.String("message"),
	})
}
