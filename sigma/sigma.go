// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sigma

import (
	"encoding/hex"

	"github.com/bitmark-inc/exodusd/property"
	"github.com/bitmark-inc/exodusd/txid"
)

// PublicKeyLength - bytes in a serialised commitment
const PublicKeyLength = 32

// MaxMints - a mint payload stores its count in a single byte
const MaxMints = 255

// Denomination - index into the denominations of a property
type Denomination uint8

// PublicKey - the public commitment of a mint
type PublicKey [PublicKeyLength]byte

// MintId - identifies one locally created mint
type MintId struct {
	Property     property.Id  `json:"propertyId"`
	Denomination Denomination `json:"denomination"`
	PublicKey    PublicKey    `json:"publicKey"`
}

// Spend - a proof of ownership of one mint inside an anonymity group
type Spend struct {
	Mint      MintId
	Group     uint32
	GroupSize uint32
	Proof     []byte
}

// Wallet - local store of shielded secrets
//
// CreateMints returns the identifiers in the order of the
// denominations argument; on error the identifiers of any mints
// already created are returned alongside it
type Wallet interface {
	CreateMints(property.Id, []Denomination) ([]MintId, error)
	EraseMint(MintId) error
	CreateSpend(property.Id, Denomination) (*Spend, error)
	MarkUsed(MintId, txid.Digest) error
}

// String - hex form of the commitment
func (pk PublicKey) String() string {
	return hex.EncodeToString(pk[:])
}

// MarshalText - hex form for JSON
func (pk PublicKey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}
