// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"crypto/tls"
	"encoding/hex"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/exodusd/command/exodus-cli/rpccalls"
	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/fixtures"
	"github.com/bitmark-inc/exodusd/pending"
	"github.com/bitmark-inc/exodusd/rpc/certificate"
	"github.com/bitmark-inc/exodusd/rpc/exodus"
	"github.com/bitmark-inc/exodusd/rpc/node"
	"github.com/bitmark-inc/logger"
)

// Exodus - stand in for the server side service
type Exodus struct{}

func (e *Exodus) Send(arguments *exodus.SendArguments, reply *exodus.Reply) error {
	if fixtures.SenderAddress != arguments.From {
		return &exodus.Error{Code: fault.CodeInvalidAddress, Message: "invalid address"}
	}
	reply.Result = "00ff"
	return nil
}

func (e *Exodus) ListPending(arguments *exodus.ListPendingArguments, reply *exodus.ListPendingReply) error {
	reply.Pending = make([]pending.Effect, arguments.Count)
	return nil
}

// Node - stand in for the server side status
type Node struct{}

func (n *Node) Info(arguments *node.InfoArguments, reply *node.InfoReply) error {
	reply.Chain = "testing"
	reply.Height = 7
	return nil
}

func setup(t *testing.T) (string, string) {
	fixtures.SetupTestLogger()

	crt, key, err := fixtures.Certificate()
	if nil != err {
		t.Fatalf("certificate error: %s", err)
	}

	tlsConfig, fingerprint, err := certificate.Get(logger.New(fixtures.LogCategory), "test", crt, key)
	if nil != err {
		t.Fatalf("tls configuration error: %s", err)
	}

	server := rpc.NewServer()
	_ = server.Register(&Exodus{})
	_ = server.Register(&Node{})

	l, err := tls.Listen("tcp", "127.0.0.1:0", tlsConfig)
	if nil != err {
		t.Fatalf("listen error: %s", err)
	}
	t.Cleanup(func() {
		l.Close()
		fixtures.TeardownTestLogger()
	})

	go func() {
		for {
			conn, err := l.Accept()
			if nil != err {
				return
			}
			go server.ServeCodec(jsonrpc.NewServerCodec(conn))
		}
	}()

	return l.Addr().String(), hex.EncodeToString(fingerprint[:])
}

func TestTransaction(t *testing.T) {
	connect, fingerprint := setup(t)

	client, err := rpccalls.NewClient(connect, fingerprint, false, nil)
	assert.Nil(t, err, "wrong NewClient")
	defer client.Close()

	reply, err := client.Transaction("Send", &exodus.SendArguments{From: fixtures.SenderAddress})
	assert.Nil(t, err, "wrong Transaction")
	assert.Equal(t, "Send", reply.Method, "wrong method")
	assert.Equal(t, "00ff", reply.Result, "wrong result")
}

func TestTransactionError(t *testing.T) {
	connect, _ := setup(t)

	client, err := rpccalls.NewClient(connect, "", false, nil)
	assert.Nil(t, err, "wrong NewClient")
	defer client.Close()

	_, err = client.Transaction("Send", &exodus.SendArguments{From: fixtures.ReceiverAddress})
	assert.Equal(t, &exodus.Error{Code: fault.CodeInvalidAddress, Message: "invalid address"}, err, "wrong error")
}

func TestQueries(t *testing.T) {
	connect, _ := setup(t)

	var trace bytes.Buffer
	client, err := rpccalls.NewClient(connect, "", true, &trace)
	assert.Nil(t, err, "wrong NewClient")
	defer client.Close()

	info, err := client.GetInfo()
	assert.Nil(t, err, "wrong GetInfo")
	assert.Equal(t, "testing", info.Chain, "wrong chain")
	assert.Equal(t, uint64(7), info.Height, "wrong height")

	p, err := client.ListPending(3)
	assert.Nil(t, err, "wrong ListPending")
	assert.Equal(t, 3, len(p.Pending), "wrong pending count")

	assert.Contains(t, trace.String(), "Node.Info Request:", "missing request trace")
	assert.Contains(t, trace.String(), "Exodus.ListPending Reply:", "missing reply trace")
}

func TestFingerprintMismatch(t *testing.T) {
	connect, _ := setup(t)

	_, err := rpccalls.NewClient(connect, "0011", false, nil)
	assert.NotNil(t, err, "wrong fingerprint accepted")

	_, err = rpccalls.NewClient(connect, "not-hex", false, nil)
	assert.NotNil(t, err, "bad fingerprint accepted")
}

func TestConnectFailure(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if nil != err {
		t.Fatalf("listen error: %s", err)
	}
	addr := l.Addr().String()
	l.Close()

	_, err = rpccalls.NewClient(addr, "", false, nil)
	assert.NotNil(t, err, "connect to closed port succeeded")
}
