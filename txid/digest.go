// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txid

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/bitmark-inc/exodusd/fault"
)

// DigestLength - number of bytes in the digest
const DigestLength = 32

// Digest - base chain transaction id
//
// stored as little endian byte array
// represented as big endian hex value for print and JSON encoding
// to convert to bytes just use d[:]
type Digest [DigestLength]byte

// NewDigest - double SHA-256 of a serialised transaction
func NewDigest(record []byte) Digest {
	first := sha256.Sum256(record)
	return sha256.Sum256(first[:])
}

// internal function to return a reversed byte order copy of a digest
func reversed(d Digest) []byte {
	result := make([]byte, DigestLength)
	for i := 0; i < DigestLength; i += 1 {
		result[i] = d[DigestLength-1-i]
	}
	return result
}

// String - convert a binary digest to hex string for use by the fmt package (for %s)
//
// the stored version is in little endian, but the output string is big endian
func (digest Digest) String() string {
	return hex.EncodeToString(reversed(digest))
}

// GoString - convert a binary digest to big endian hex string for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<txid:" + hex.EncodeToString(reversed(digest)) + ">"
}

// IsZero - true for the all zero digest
func (digest Digest) IsZero() bool {
	return digest == Digest{}
}

// MarshalText - convert digest to big endian hex text
func (digest Digest) MarshalText() ([]byte, error) {
	return []byte(digest.String()), nil
}

// UnmarshalText - convert big endian hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	d, err := FromHex(string(s))
	if nil != err {
		return err
	}
	*digest = d
	return nil
}

// FromHex - parse the big endian hex form returned by the base node
func FromHex(s string) (Digest, error) {
	var digest Digest
	if DigestLength != hex.DecodedLen(len(s)) {
		return digest, fault.InvalidTxId
	}
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return digest, fault.InvalidTxId
	}
	for i, v := range buffer {
		digest[DigestLength-1-i] = v
	}
	return digest, nil
}

// FromBytes - convert and validate little endian binary byte slice to a digest
func FromBytes(digest *Digest, buffer []byte) error {
	if DigestLength != len(buffer) {
		return fault.InvalidTxId
	}
	copy(digest[:], buffer)
	return nil
}
