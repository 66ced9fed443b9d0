// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package exodus

import (
	"sort"

	"github.com/bitmark-inc/exodusd/pending"
	"github.com/bitmark-inc/exodusd/rpc/ratelimit"
)

const (
	maximumPendingCount = 1000
)

// ListPendingArguments - arguments for ListPending
type ListPendingArguments struct {
	Count int `json:"count"`
}

// ListPendingReply - committed effects not yet confirmed, oldest first
type ListPendingReply struct {
	Pending []pending.Effect `json:"pending"`
}

// ListPending - the effects reserved by committed transactions
func (exodus *Exodus) ListPending(arguments *ListPendingArguments, reply *ListPendingReply) error {
	if err := ratelimit.LimitN(exodus.ListLimiter, arguments.Count, maximumPendingCount); err != nil {
		return err
	}

	exodus.Log.Infof("Exodus.ListPending: %+v", arguments)

	effects := exodus.Pending.List()
	sort.Slice(effects, func(i, j int) bool {
		return effects[i].Timestamp.Before(effects[j].Timestamp)
	})
	if len(effects) > arguments.Count {
		effects = effects[:arguments.Count]
	}

	reply.Pending = effects
	return nil
}
