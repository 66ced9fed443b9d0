// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/exodusd/fault"
)

// PoolHandle - one key prefix inside the database
type PoolHandle struct {
	prefix byte
	limit  []byte
	db     *DB
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair to the database
func (p *PoolHandle) Put(key []byte, value []byte) error {
	p.db.RLock()
	defer p.db.RUnlock()
	if nil == p.db.database {
		return fault.NotInitialised
	}
	if p.db.readOnly {
		return fault.DatabaseIsReadOnly
	}
	k := p.prefixKey(key)
	err := p.db.database.Put(k, value, nil)
	if nil != err {
		return err
	}
	p.db.cache.Present(string(k), append([]byte{}, value...))
	return nil
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key []byte) error {
	p.db.RLock()
	defer p.db.RUnlock()
	if nil == p.db.database {
		return fault.NotInitialised
	}
	if p.db.readOnly {
		return fault.DatabaseIsReadOnly
	}
	k := p.prefixKey(key)
	err := p.db.database.Delete(k, nil)
	if nil != err {
		return err
	}
	p.db.cache.Absent(string(k))
	return nil
}

// Get - read a value for a given key
//
// nil if the key does not exist
func (p *PoolHandle) Get(key []byte) []byte {
	p.db.RLock()
	defer p.db.RUnlock()
	if nil == p.db.database {
		return nil
	}

	k := p.prefixKey(key)
	if value, found, hit := p.db.cache.Lookup(string(k)); hit {
		if !found {
			return nil
		}
		return value
	}

	value, err := p.db.database.Get(k, nil)
	if leveldb.ErrNotFound == err {
		p.db.cache.Absent(string(k))
		return nil
	}
	fault.PanicIfError("pool.Get", err)
	p.db.cache.Present(string(k), value)
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		fault.Panicf("pool.GetN truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

// PutN - store a big endian uint64
func (p *PoolHandle) PutN(key []byte, n uint64) error {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	return p.Put(key, buffer)
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	return nil != p.Get(key)
}

// Elements - every item of the pool in key order
//
// keys are returned without the prefix
func (p *PoolHandle) Elements() []Element {
	p.db.RLock()
	defer p.db.RUnlock()
	if nil == p.db.database {
		return nil
	}

	maxRange := ldb_util.Range{
		Start: []byte{p.prefix},
		Limit: p.limit,
	}
	iter := p.db.database.NewIterator(&maxRange, nil)
	defer iter.Release()

	elements := make([]Element, 0, 16)
	for iter.Next() {
		elements = append(elements, Element{
			Key:   append([]byte{}, iter.Key()[1:]...),
			Value: append([]byte{}, iter.Value()...),
		})
	}
	fault.PanicIfError("pool.Elements", iter.Error())
	return elements
}
