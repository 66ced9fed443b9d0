// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/exodusd/command/exodus-cli/rpccalls"
)

func runInfo(c *cli.Context) error {
	return runCall(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.GetInfo()
	})
}

func runPending(c *cli.Context) error {
	count := c.Int("count")
	return runCall(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.ListPending(count)
	})
}

func runMints(c *cli.Context) error {
	if err := checkRequired(c, "property"); nil != err {
		return err
	}

	propertyId := c.Int64("property")
	return runCall(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.ListMints(propertyId)
	})
}
