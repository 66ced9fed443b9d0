// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payload

import (
	"encoding/binary"
	"encoding/hex"
)

// Packed - an encoded payload
type Packed []byte

// String - hex form
func (p Packed) String() string {
	return hex.EncodeToString(p)
}

// start a payload with its version and type
func header(version uint16, t Type, size int) Packed {
	buffer := make(Packed, 0, 4+size)
	buffer = appendUint16(buffer, version)
	return appendUint16(buffer, uint16(t))
}

func appendUint8(buffer Packed, value uint8) Packed {
	return append(buffer, value)
}

func appendUint16(buffer Packed, value uint16) Packed {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, value)
	return append(buffer, b...)
}

func appendUint32(buffer Packed, value uint32) Packed {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, value)
	return append(buffer, b...)
}

func appendUint64(buffer Packed, value uint64) Packed {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, value)
	return append(buffer, b...)
}

func appendInt64(buffer Packed, value int64) Packed {
	return appendUint64(buffer, uint64(value))
}

// append a NUL terminated string
//
// the text is cut to MaxTextLength bytes first
func appendString(buffer Packed, s string) Packed {
	buffer = append(buffer, Truncate(s)...)
	return append(buffer, 0)
}

// Truncate - apply the free text length policy
func Truncate(s string) string {
	if len(s) > MaxTextLength {
		return s[:MaxTextLength]
	}
	return s
}
