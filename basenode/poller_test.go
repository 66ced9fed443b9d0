// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package basenode_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/exodusd/background"
	"github.com/bitmark-inc/exodusd/chain"
	"github.com/bitmark-inc/exodusd/mode"
)

type heights struct {
	ch chan uint64
}

func (h *heights) SetHeight(n uint64) error {
	h.ch <- n
	return nil
}

func TestPoller(t *testing.T) {
	node, server, c := setupNode(t)
	defer teardownNode(server)

	err := mode.Initialise(chain.Test)
	assert.Nil(t, err, "mode")
	defer mode.Finalise()

	node.Lock()
	node.chain = map[string]interface{}{
		"chain":                "test",
		"blocks":               120,
		"headers":              120,
		"initialblockdownload": false,
	}
	node.Unlock()

	h := &heights{ch: make(chan uint64, 4)}
	processes := background.Processes{c.Poller(h, time.Hour)}
	b := background.Start(processes, nil)

	select {
	case n := <-h.ch:
		assert.Equal(t, uint64(120), n, "height")
	case <-time.After(5 * time.Second):
		t.Fatal("no height recorded")
	}
	b.Stop()

	assert.True(t, mode.Is(mode.Normal), "caught up")
}
