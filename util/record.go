// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/bitmark-inc/exodusd/fault"
)

// Record - a packed sequence of Varint64 prefixed fields
type Record []byte

// AppendUint64 - append a Varint64
func (r Record) AppendUint64(value uint64) Record {
	return append(r, ToVarint64(value)...)
}

// AppendInt64 - append a signed value as its two's complement
func (r Record) AppendInt64(value int64) Record {
	return r.AppendUint64(uint64(value))
}

// AppendBool - append a single byte flag
func (r Record) AppendBool(value bool) Record {
	if value {
		return append(r, 1)
	}
	return append(r, 0)
}

// AppendBytes - append a Varint64(length) prefixed byte field
func (r Record) AppendBytes(data []byte) Record {
	r = r.AppendUint64(uint64(len(data)))
	return append(r, data...)
}

// AppendString - append a Varint64(length) prefixed string
func (r Record) AppendString(s string) Record {
	return r.AppendBytes([]byte(s))
}

// Reader - sequential field access for a Record
//
// the first failure is sticky and reported by Err
type Reader struct {
	buffer []byte
	err    error
}

// NewReader - start reading a record
func NewReader(r Record) *Reader {
	return &Reader{buffer: r}
}

// Uint64 - next Varint64 field
func (r *Reader) Uint64() uint64 {
	if nil != r.err {
		return 0
	}
	value, n := FromVarint64(r.buffer)
	if 0 == n {
		r.err = fault.RecordTruncated
		return 0
	}
	r.buffer = r.buffer[n:]
	return value
}

// Int64 - next signed field
func (r *Reader) Int64() int64 {
	return int64(r.Uint64())
}

// Bool - next flag byte
func (r *Reader) Bool() bool {
	if nil != r.err {
		return false
	}
	if 0 == len(r.buffer) {
		r.err = fault.RecordTruncated
		return false
	}
	b := r.buffer[0]
	r.buffer = r.buffer[1:]
	return 0 != b
}

// Bytes - next length prefixed field
func (r *Reader) Bytes() []byte {
	n := r.Uint64()
	if nil != r.err {
		return nil
	}
	if uint64(len(r.buffer)) < n {
		r.err = fault.RecordTruncated
		return nil
	}
	data := make([]byte, n)
	copy(data, r.buffer[:n])
	r.buffer = r.buffer[n:]
	return data
}

// String - next length prefixed string
func (r *Reader) String() string {
	return string(r.Bytes())
}

// Err - the first failure, or nil
func (r *Reader) Err() error {
	return r.err
}

// Remaining - count of unread bytes
func (r *Reader) Remaining() int {
	return len(r.buffer)
}
