// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"

	"github.com/bitmark-inc/exodusd/counter"
	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/rpc/certificate"
	"github.com/bitmark-inc/exodusd/rpc/listeners"
	"github.com/bitmark-inc/exodusd/rpc/server"
	"github.com/bitmark-inc/logger"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener listeners.Listener
	count    counter.Counter

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the client JSON RPC listeners
//
// the certificate and private key are file names
func Initialise(configuration *listeners.RPCConfiguration, services *server.Services) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	if nil == log {
		return fault.InvalidLoggerChannel
	}
	globalData.log = log
	log.Info("starting…")

	if nil == services || nil == services.Ledger || nil == services.Dispatcher || nil == services.Pending {
		log.Error("missing services")
		return fault.MissingParameters
	}

	tlsConfig, certificateFingerprint, err := certificate.Load(log, tlsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		configuration,
		log,
		&globalData.count,
		server.Create(log, services, &globalData.count),
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		_ = rpcListener.Close()
		return err
	}
	globalData.listener = rpcListener

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop accepting connections
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	if err := globalData.listener.Close(); nil != err {
		globalData.log.Errorf("close listener error: %s", err)
	}
	globalData.listener = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Connections - number of open client connections
func Connections() uint64 {
	return globalData.count.Uint64()
}
