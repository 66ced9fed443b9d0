// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pending

import (
	"sort"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/exodusd/background"
	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/payload"
	"github.com/bitmark-inc/exodusd/property"
	"github.com/bitmark-inc/exodusd/txid"
)

// SpendAddress - owner recorded for shielded spends
const SpendAddress = "Spend"

// DefaultTimeout - the maximum time an unconfirmed effect is kept
const DefaultTimeout = 72 * time.Hour

// number of table shards must be a power of 2
// and mask is the corresponding bit mask
// only the first byte of the key is used
const (
	shards = 16         // maximum value: 256
	mask   = shards - 1 // bit mask
)

// Effect - a balance change of a committed but unconfirmed transaction
type Effect struct {
	TxId      txid.Digest  `json:"txId"`
	Address   string       `json:"address"`
	Type      payload.Type `json:"type"`
	Property  property.Id  `json:"propertyId"`
	Amount    int64        `json:"amount"`
	Subtract  bool         `json:"subtract"`
	Timestamp time.Time    `json:"timestamp"`
}

// Ledger - the operations the request pipeline needs
type Ledger interface {
	Insert(Effect) error
	Remove(txid.Digest) (Effect, bool)
	Get(txid.Digest) (Effect, bool)
	Reserved(owner string, id property.Id) int64
	List() []Effect
}

// lockable map
type lockable struct {
	sync.RWMutex
	table map[txid.Digest]Effect
}

// Store - in memory pending effects with expiry and file backup
type Store struct {
	log      *logger.L
	filename string
	timeout  time.Duration
	cache    [shards]lockable

	expiry     expiryData
	background *background.T
}

// New - create an empty store
//
// an empty filename disables the file backup
func New(filename string, timeout time.Duration) (*Store, error) {
	log := logger.New("pending")
	if nil == log {
		return nil, fault.InvalidLoggerChannel
	}
	log.Info("starting…")

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	s := &Store{
		log:      log,
		filename: filename,
		timeout:  timeout,
	}
	s.expiry.log = log
	s.expiry.interval = timeout / 10

	for i := 0; i < shards; i += 1 {
		s.cache[i] = lockable{
			table: make(map[txid.Digest]Effect, 100),
		}
	}
	return s, nil
}

// Start - begin background expiry
func (s *Store) Start() {
	s.log.Info("start background…")

	processes := background.Processes{
		&s.expiry,
	}
	s.background = background.Start(processes, s)
}

// Stop - stop background expiry
func (s *Store) Stop() {
	s.background.Stop()
	s.log.Info("stopped")
	s.log.Flush()
}

// Insert - store an effect
//
// a txid can only be inserted once
func (s *Store) Insert(effect Effect) error {
	if effect.Timestamp.IsZero() {
		effect.Timestamp = time.Now()
	}

	n := effect.TxId[0] & mask

	s.cache[n].Lock()
	_, ok := s.cache[n].table[effect.TxId]
	if !ok {
		s.cache[n].table[effect.TxId] = effect
	}
	s.cache[n].Unlock()

	if ok {
		return fault.DuplicatePendingEffect
	}

	s.log.Debugf("insert: %s  address: %s  type: %s  property: %d  amount: %d  subtract: %t",
		effect.TxId, effect.Address, effect.Type, effect.Property, effect.Amount, effect.Subtract)
	return nil
}

// Remove - delete an effect once its transaction confirmed or was evicted
func (s *Store) Remove(id txid.Digest) (Effect, bool) {
	n := id[0] & mask

	s.cache[n].Lock()
	effect, ok := s.cache[n].table[id]
	delete(s.cache[n].table, id)
	s.cache[n].Unlock()

	return effect, ok
}

// Get - read an effect
func (s *Store) Get(id txid.Digest) (Effect, bool) {
	n := id[0] & mask

	s.cache[n].RLock()
	effect, ok := s.cache[n].table[id]
	s.cache[n].RUnlock()

	return effect, ok
}

// Reserved - total amount of subtracting effects for an owner
func (s *Store) Reserved(owner string, id property.Id) int64 {
	total := int64(0)
	for i := 0; i < shards; i += 1 {
		s.cache[i].RLock()
		for _, effect := range s.cache[i].table {
			if effect.Subtract && effect.Address == owner && effect.Property == id {
				total += effect.Amount
			}
		}
		s.cache[i].RUnlock()
	}
	return total
}

// List - all effects, oldest first
func (s *Store) List() []Effect {
	effects := make([]Effect, 0, 100)
	for i := 0; i < shards; i += 1 {
		s.cache[i].RLock()
		for _, effect := range s.cache[i].table {
			effects = append(effects, effect)
		}
		s.cache[i].RUnlock()
	}

	sort.Slice(effects, func(i, j int) bool {
		return effects[i].Timestamp.Before(effects[j].Timestamp)
	})
	return effects
}
