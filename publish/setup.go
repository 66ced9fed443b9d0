// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/exodusd/background"
	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/messagebus"
	"github.com/bitmark-inc/exodusd/zmqutil"
)

// Configuration - a block of configuration data
// this is read from the Lua configuration file
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

// globals for background proccess
type publishData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	brdc broadcaster // for broadcasting committed transactions

	// for background
	background *background.T

	// set once during initialise
	initialised bool
	enabled     bool
}

// global data
var globalData publishData

// Initialise - start publishing the messages of queue
//
// publishing is disabled when no broadcast address is configured
func Initialise(configuration *Configuration, queue *messagebus.Queue) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("publish")
	if nil == log {
		return fault.InvalidLoggerChannel
	}
	globalData.log = log
	log.Info("starting…")

	if nil == configuration || 0 == len(configuration.Broadcast) {
		log.Info("no broadcast addresses: disabled")
		globalData.initialised = true
		globalData.enabled = false
		return nil
	}
	if nil == queue {
		return fault.MissingParameters
	}

	// read the keys
	privateKey, err := zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
	if nil != err {
		log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
		return err
	}
	publicKey, err := zmqutil.ReadPublicKeyFile(configuration.PublicKey)
	if nil != err {
		log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
		return err
	}
	log.Tracef("public key:  %x", publicKey)

	if err := zmqutil.StartAuthentication(); nil != err {
		log.Errorf("zmq authentication error: %s", err)
		return err
	}

	if err := globalData.brdc.initialise(privateKey, publicKey, configuration.Broadcast, queue); nil != err {
		return err
	}

	// all data initialised
	globalData.initialised = true
	globalData.enabled = true

	// start background processes
	log.Info("start background…")

	processes := background.Processes{
		&globalData.brdc,
	}

	globalData.background = background.Start(processes, log)

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	if globalData.enabled {
		globalData.background.Stop()
	}

	// finally...
	globalData.initialised = false
	globalData.enabled = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Enabled - true if messages are being published
func Enabled() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.enabled
}
