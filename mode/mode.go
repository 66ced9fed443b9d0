// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/exodusd/chain"
	"github.com/bitmark-inc/exodusd/fault"
)

// Mode - whether requests can be served from the ledger snapshot
type Mode int

// all possible modes
const (
	Stopped Mode = iota
	Resynchronise
	Normal
	maximum
)

var names = [maximum]string{
	Stopped:       "Stopped",
	Resynchronise: "Resynchronise",
	Normal:        "Normal",
}

var globalData struct {
	sync.RWMutex
	log     *logger.L
	current Mode
	chain   string

	initialised bool
}

// Initialise - select the chain and start in Resynchronise
//
// the base node poller moves to Normal once the snapshot is at the
// base chain tip
func Initialise(chainName string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("mode")
	if nil == log {
		return fault.InvalidLoggerChannel
	}
	globalData.log = log

	if !chain.Valid(chainName) {
		log.Criticalf("unsupported chain: %q", chainName)
		return fault.InvalidChain
	}

	globalData.chain = chainName
	globalData.current = Resynchronise
	globalData.initialised = true

	log.Infof("chain: %s  mode: %s", chainName, globalData.current)
	return nil
}

// Finalise - enter Stopped and release the mode system
func Finalise() error {
	Set(Stopped)

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()
	return nil
}

// Set - change mode, out of range values are ignored
func Set(mode Mode) {
	globalData.Lock()
	defer globalData.Unlock()

	log := globalData.log
	if mode < Stopped || mode >= maximum {
		if nil != log {
			log.Errorf("ignore invalid mode: %d", mode)
		}
		return
	}

	previous := globalData.current
	globalData.current = mode

	if previous != mode && nil != log {
		log.Infof("%s -> %s", previous, mode)
	}
}

func get() Mode {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.current
}

// Is - detect mode
func Is(mode Mode) bool {
	return mode == get()
}

// IsNot - detect mode
func IsNot(mode Mode) bool {
	return mode != get()
}

// IsTesting - any chain other than main
func IsTesting() bool {
	return chain.IsTesting(ChainName())
}

// ChainName - name of the current chain
func ChainName() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.chain
}

// String - current mode represented as a string
func String() string {
	return get().String()
}

func (m Mode) String() string {
	if m < Stopped || m >= maximum {
		return "*Unknown*"
	}
	return names[m]
}
