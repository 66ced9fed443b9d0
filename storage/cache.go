// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - read through cache in front of the database
//
// absent keys are cached too so repeated misses for unknown
// properties and empty balances stay off the disk
type Cache interface {
	Lookup(key string) (value []byte, present bool, hit bool)
	Present(key string, value []byte)
	Absent(key string)
	Clear()
}

const (
	cacheExpiry  = 2 * time.Minute
	cacheCleanup = time.Minute
)

// nil marks a key known to be absent
type entry struct {
	value []byte
}

type ledgerCache struct {
	entries *cache.Cache
}

func newCache() Cache {
	return &ledgerCache{
		entries: cache.New(cacheExpiry, cacheCleanup),
	}
}

func (c *ledgerCache) Lookup(key string) ([]byte, bool, bool) {
	item, hit := c.entries.Get(key)
	if !hit {
		return nil, false, false
	}
	e := item.(entry)
	return e.value, nil != e.value, true
}

func (c *ledgerCache) Present(key string, value []byte) {
	if nil == value {
		value = []byte{}
	}
	c.entries.SetDefault(key, entry{value: value})
}

func (c *ledgerCache) Absent(key string) {
	c.entries.SetDefault(key, entry{})
}

func (c *ledgerCache) Clear() {
	c.entries.Flush()
}
