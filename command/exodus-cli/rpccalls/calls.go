// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/exodusd/rpc/exodus"
	"github.com/bitmark-inc/exodusd/rpc/node"
)

// TransactionReply - result of a transaction creating call
type TransactionReply struct {
	Method string `json:"method"`
	Result string `json:"result"`
}

// ErrorReply - a failed call with its result code
type ErrorReply struct {
	Method string `json:"method"`
	Error  *exodus.Error
}

func (client *Client) call(method string, arguments interface{}, reply interface{}) error {
	if err := client.trace(method+" Request", arguments); nil != err {
		return err
	}

	if err := client.client.Call(method, arguments, reply); nil != err {
		e := exodus.ParseError(err.Error())
		_ = client.trace(method+" Error", ErrorReply{Method: method, Error: e})
		return e
	}

	return client.trace(method+" Reply", reply)
}

// Transaction - invoke one of the transaction creating methods
//
// the result is a txid when the server commits, otherwise raw hex
func (client *Client) Transaction(method string, arguments interface{}) (*TransactionReply, error) {
	var reply exodus.Reply
	if err := client.call("Exodus."+method, arguments, &reply); nil != err {
		return nil, err
	}

	return &TransactionReply{
		Method: method,
		Result: reply.Result,
	}, nil
}

// GetInfo - request status from exodusd
func (client *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.call("Node.Info", node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

// ListPending - the oldest unconfirmed effects
func (client *Client) ListPending(count int) (*exodus.ListPendingReply, error) {
	var reply exodus.ListPendingReply
	if err := client.call("Exodus.ListPending", exodus.ListPendingArguments{Count: count}, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

// ListMints - the shielded mints of a property held by the server wallet
func (client *Client) ListMints(propertyId int64) (*exodus.ListMintsReply, error) {
	var reply exodus.ListMintsReply
	if err := client.call("Exodus.ListMints", exodus.ListMintsArguments{PropertyId: propertyId}, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

// in verbose mode show each request and reply as it happens
func (client *Client) trace(title string, message interface{}) error {
	if !client.verbose {
		return nil
	}

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(client.handle, "%s:\n%s\n", title, b)
	return nil
}
