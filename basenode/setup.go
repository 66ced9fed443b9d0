// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package basenode

import (
	"net/http"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/exodusd/chain"
	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/txbuilder"
)

const defaultTimeout = 30 * time.Second

// Configuration - a block of configuration data
// this is read from the Lua configuration file
type Configuration struct {
	URL        string `gluamapper:"url" json:"url"`
	Username   string `gluamapper:"username" json:"username"`
	Password   string `gluamapper:"password" json:"-"`
	MinFeeRate int64  `gluamapper:"min_fee_rate" json:"min_fee_rate"`
}

// Client - connection to the base node wallet
type Client struct {
	sync.Mutex // serialises request ids

	log *logger.L

	// connection to base node
	client   *http.Client
	url      string
	username string
	password string

	chain      string
	minFeeRate txbuilder.FeeRate

	id uint64
}

// New - create a client, no connection is made until the first call
func New(configuration *Configuration, chainName string) (*Client, error) {
	log := logger.New("basenode")
	if nil == log {
		return nil, fault.InvalidLoggerChannel
	}
	if !chain.Valid(chainName) {
		return nil, fault.InvalidChain
	}
	if nil == configuration || "" == configuration.URL {
		return nil, fault.MissingParameters
	}

	log.Infof("base node: %s", configuration.URL)

	return &Client{
		log: log,
		client: &http.Client{
			Timeout: defaultTimeout,
		},
		url:        configuration.URL,
		username:   configuration.Username,
		password:   configuration.Password,
		chain:      chainName,
		minFeeRate: txbuilder.FeeRate(configuration.MinFeeRate),
	}, nil
}
