// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"crypto/tls"
	"encoding/hex"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"

	"github.com/bitmark-inc/exodusd/rpc/certificate"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to an exodusd
//
// the self signed server certificate is accepted when fingerprint is
// empty, otherwise its SHA3-256 must match the hex fingerprint
func NewClient(connect string, fingerprint string, verbose bool, handle io.Writer) (*Client, error) {

	var expected []byte
	if "" != fingerprint {
		var err error
		expected, err = hex.DecodeString(strings.TrimSpace(fingerprint))
		if nil != err {
			return nil, fmt.Errorf("fingerprint: %q is not hex: %s", fingerprint, err)
		}
	}

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	if nil != expected {
		state := conn.ConnectionState()
		if 0 == len(state.PeerCertificates) {
			conn.Close()
			return nil, fmt.Errorf("connect: %s  no server certificate", connect)
		}
		actual := certificate.Fingerprint(state.PeerCertificates[0].Raw)
		if !bytes.Equal(expected, actual[:]) {
			conn.Close()
			return nil, fmt.Errorf("connect: %s  certificate fingerprint: %x does not match", connect, actual)
		}
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the exodusd connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}
