// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/exodusd/counter"
	"github.com/bitmark-inc/exodusd/mode"
	"github.com/bitmark-inc/exodusd/pending"
	"github.com/bitmark-inc/exodusd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Heighter - the ledger tip as last seen by the indexer
type Heighter interface {
	Height() uint64
}

// Node - type for RPC calls
type Node struct {
	Log        *logger.L
	Limiter    *rate.Limiter
	Start      time.Time
	Version    string
	Tip        Heighter
	Pending    pending.Ledger
	AutoCommit func() bool
	counter    *counter.Counter
}

// New - create the node information service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, tip Heighter, pendingLedger pending.Ledger, autoCommit func() bool) *Node {
	return &Node{
		Log:        log,
		Limiter:    rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:      start,
		Version:    version,
		Tip:        tip,
		Pending:    pendingLedger,
		AutoCommit: autoCommit,
		counter:    counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain      string `json:"chain"`
	Mode       string `json:"mode"`
	Height     uint64 `json:"height"`
	Pending    int    `json:"pending"`
	AutoCommit bool   `json:"autoCommit"`
	RPCs       uint64 `json:"rpcs"`
	Version    string `json:"version"`
	Uptime     string `json:"uptime"`
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.Height = node.Tip.Height()
	reply.Pending = len(node.Pending.List())
	reply.AutoCommit = node.AutoCommit()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()

	return nil
}
