// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"bytes"
	"crypto/sha256"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/exodusd/chain"
	"github.com/bitmark-inc/exodusd/fault"
)

// miscellaneous constants
const (
	checksumLength = 4
	hashLength     = 20

	// PayloadLength - version byte followed by the hash
	PayloadLength = 1 + hashLength
)

// Kind - the script type an address pays to
type Kind int

// address kinds
const (
	PubKeyHash Kind = iota
	ScriptHash
)

// Address - a decoded base chain address
//
// comparable so it can be used as a map key
type Address struct {
	Version byte
	Hash    [hashLength]byte
}

// Parse - decode a Base58Check address and check it belongs to the chain
func Parse(chainName string, text string) (Address, error) {
	var a Address

	versions, ok := chain.AddressVersions(chainName)
	if !ok {
		return a, fault.WrongNetworkForAddress
	}

	decoded, err := base58.Decode(text)
	if nil != err || PayloadLength+checksumLength != len(decoded) {
		return a, fault.InvalidAddress
	}

	checksumStart := len(decoded) - checksumLength
	checksum := doubleHash(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return a, fault.InvalidAddressChecksum
	}

	a.Version = decoded[0]
	if a.Version != versions.PubKeyHash && a.Version != versions.ScriptHash {
		return a, fault.WrongNetworkForAddress
	}
	copy(a.Hash[:], decoded[1:checksumStart])

	return a, nil
}

// Kind - determine the script type from the version byte
func (a Address) Kind(chainName string) Kind {
	versions, _ := chain.AddressVersions(chainName)
	if a.Version == versions.ScriptHash {
		return ScriptHash
	}
	return PubKeyHash
}

// Payload - the version and hash as embedded in transaction payloads
func (a Address) Payload() []byte {
	buffer := make([]byte, 0, PayloadLength)
	buffer = append(buffer, a.Version)
	return append(buffer, a.Hash[:]...)
}

// FromPayload - inverse of Payload
func FromPayload(buffer []byte) (Address, error) {
	var a Address
	if PayloadLength != len(buffer) {
		return a, fault.InvalidAddress
	}
	a.Version = buffer[0]
	copy(a.Hash[:], buffer[1:])
	return a, nil
}

// IsZero - true if the address was never set
func (a Address) IsZero() bool {
	return a == Address{}
}

// String - Base58Check encoding
func (a Address) String() string {
	if a.IsZero() {
		return ""
	}
	buffer := a.Payload()
	checksum := doubleHash(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert address to Base58Check for JSON
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func doubleHash(data []byte) [sha256.Size]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}
