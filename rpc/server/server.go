// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/exodusd/counter"
	"github.com/bitmark-inc/exodusd/ledger"
	"github.com/bitmark-inc/exodusd/mode"
	"github.com/bitmark-inc/exodusd/pending"
	"github.com/bitmark-inc/exodusd/rpc/exodus"
	"github.com/bitmark-inc/exodusd/rpc/node"
	"github.com/bitmark-inc/logger"
)

// Dispatcher - the request pipeline as seen by the RPC services
type Dispatcher interface {
	exodus.Dispatcher
	AutoCommit() bool
}

// Ledger - state read by the RPC services
type Ledger interface {
	ledger.Snapshot
	node.Heighter
}

// Services - collaborators exposed through RPC
//
// Mints is nil when no shielded wallet is configured
type Services struct {
	Version    string
	Ledger     Ledger
	Dispatcher Dispatcher
	Pending    pending.Ledger
	Mints      exodus.MintLister

	MintConfirmations int
}

// Create - register all services on a new RPC server
func Create(log *logger.L, services *Services, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	e := exodus.New(
		log,
		mode.Is,
		mode.ChainName(),
		services.Ledger,
		services.Dispatcher,
		services.Pending,
		services.Mints,
	)
	if services.MintConfirmations > 0 {
		e.MintConfirmations = services.MintConfirmations
	}
	_ = server.Register(e)
	_ = server.Register(node.New(
		log,
		start,
		services.Version,
		rpcCount,
		services.Ledger,
		services.Pending,
		services.Dispatcher.AutoCommit,
	))

	return server
}
