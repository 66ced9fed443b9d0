// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package basenode

import (
	"time"

	"github.com/bitmark-inc/exodusd/background"
	"github.com/bitmark-inc/exodusd/mode"
)

// HeightRecorder - receives the base chain tip
type HeightRecorder interface {
	SetHeight(uint64) error
}

type chainInfo struct {
	Chain                string `json:"chain"`
	Blocks               uint64 `json:"blocks"`
	Headers              uint64 `json:"headers"`
	InitialBlockDownload bool   `json:"initialblockdownload"`
}

type poller struct {
	client   *Client
	heights  HeightRecorder
	interval time.Duration
}

// Poller - background process tracking the base node synchronisation
func (c *Client) Poller(heights HeightRecorder, interval time.Duration) background.Process {
	return &poller{
		client:   c,
		heights:  heights,
		interval: interval,
	}
}

// Run - poll until shutdown
func (p *poller) Run(args interface{}, shutdown <-chan struct{}) {
	log := p.client.log
	log.Info("starting…")

	p.poll()

loop:
	for {
		log.Debug("waiting…")
		select {
		case <-shutdown:
			break loop
		case <-time.After(p.interval):
			p.poll()
		}
	}

	log.Info("stopped")
}

func (p *poller) poll() {
	log := p.client.log

	var info chainInfo
	err := p.client.call("getblockchaininfo", nil, &info)
	if nil != err {
		log.Errorf("chain info: error: %s", err)
		mode.Set(mode.Resynchronise)
		return
	}

	log.Debugf("chain info: %+v", info)

	if nil != p.heights {
		err = p.heights.SetHeight(info.Blocks)
		if nil != err {
			log.Errorf("set height: %d  error: %s", info.Blocks, err)
		}
	}

	if info.InitialBlockDownload || info.Blocks < info.Headers {
		mode.Set(mode.Resynchronise)
	} else {
		mode.Set(mode.Normal)
	}
}
