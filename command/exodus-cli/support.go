// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/exodusd/command/exodus-cli/rpccalls"
)

// connect, run one call and print its reply
func runCall(c *cli.Context, call func(client *rpccalls.Client) (interface{}, error)) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.fingerprint, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := call(client)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

// a transaction creating call
func transaction(c *cli.Context, method string, arguments interface{}) error {
	return runCall(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.Transaction(method, arguments)
	})
}

func checkRequired(c *cli.Context, names ...string) error {
	for _, name := range names {
		if !c.IsSet(name) {
			return fmt.Errorf("%s is required", name)
		}
	}
	return nil
}

// optional integer flag left out of the request when not given
func optionalInt64(c *cli.Context, name string) *int64 {
	if !c.IsSet(name) {
		return nil
	}
	n := c.Int64(name)
	return &n
}

func printJson(handle io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	_, err = fmt.Fprintf(handle, "%s\n", b)
	return err
}
