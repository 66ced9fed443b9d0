// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package basenode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/pkg/errors"
)

// for encoding the RPC arguments
type rpcArguments struct {
	Id     uint64        `json:"id"`
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
}

// rpcError - the error member of a reply
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("base node error: %d: %s", e.Code, e.Message)
}

// for decoding the RPC reply
type rpcReply struct {
	Id     int64       `json:"id"`
	Result interface{} `json:"result"`
	Error  *rpcError   `json:"error"`
}

// high level call
func (c *Client) call(method string, params []interface{}, reply interface{}) error {
	c.Lock()
	c.id += 1
	arguments := rpcArguments{
		Id:     c.id,
		Method: method,
		Params: params,
	}
	c.Unlock()

	if nil == arguments.Params {
		arguments.Params = []interface{}{}
	}

	response := rpcReply{
		Result: reply,
	}
	c.log.Debugf("rpc call: %s", method)
	err := c.rpc(&arguments, &response)
	if nil != err {
		c.log.Tracef("rpc returned error: %v", err)
		return errors.Wrapf(err, "call: %s", method)
	}

	if nil != response.Error {
		return response.Error
	}
	return nil
}

// basic RPC
//
// an HTTP error status still carries a JSON reply with the error
func (c *Client) rpc(arguments *rpcArguments, reply *rpcReply) error {
	s, err := json.Marshal(arguments)
	if nil != err {
		return err
	}

	c.log.Tracef("rpc send: %s", s)

	request, err := http.NewRequest("POST", c.url, bytes.NewBuffer(s))
	if nil != err {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	if "" != c.username {
		request.SetBasicAuth(c.username, c.password)
	}

	response, err := c.client.Do(request)
	if nil != err {
		return err
	}
	defer response.Body.Close()

	body, err := ioutil.ReadAll(response.Body)
	if nil != err {
		return err
	}

	c.log.Tracef("rpc response body: %s", body)

	err = json.Unmarshal(body, reply)
	if nil != err {
		return errors.Wrapf(err, "http status: %s", response.Status)
	}
	return nil
}
