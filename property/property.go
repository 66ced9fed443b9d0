// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package property

import (
	"strconv"

	"github.com/bitmark-inc/exodusd/address"
)

// Id - token property identifier
type Id uint32

// well known properties
const (
	Exodus  Id = 1
	TExodus Id = 2

	// first identifier assigned in the test ecosystem
	TestEcosystemStart Id = 0x80000000
)

// Ecosystem - one of the two disjoint property partitions
type Ecosystem uint8

// the ecosystems
const (
	MainEcosystem Ecosystem = 1
	TestEcosystem Ecosystem = 2
)

// Type - divisibility selector used by issuance
type Type uint16

// property types
const (
	Indivisible Type = 1
	Divisible   Type = 2
)

// MaxDenominations - upper bound on denominations per property
const MaxDenominations = 255

// Info - the ledger view of a property
type Info struct {
	Name            string          `json:"name"`
	Issuer          address.Address `json:"issuer"`
	Divisible       bool            `json:"divisible"`
	Fixed           bool            `json:"fixed"`
	Managed         bool            `json:"managed"`
	Crowdsale       bool            `json:"crowdsale"`
	CrowdsaleActive bool            `json:"crowdsaleActive"`
	FreezingEnabled bool            `json:"freezingEnabled"`
	Sigma           SigmaStatus     `json:"sigma"`
	Denominations   []int64         `json:"denominations"`
}

// Ecosystem - the ecosystem a property id belongs to
func (id Id) Ecosystem() Ecosystem {
	if TExodus == id || id >= TestEcosystemStart {
		return TestEcosystem
	}
	return MainEcosystem
}

// IsPrimaryToken - true for the two ecosystem base tokens
func (id Id) IsPrimaryToken() bool {
	return Exodus == id || TExodus == id
}

// String - decimal representation
func (id Id) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Valid - check ecosystem is one of the two known values
func (e Ecosystem) Valid() bool {
	return MainEcosystem == e || TestEcosystem == e
}

// PrimaryToken - the base token of an ecosystem
func (e Ecosystem) PrimaryToken() Id {
	if TestEcosystem == e {
		return TExodus
	}
	return Exodus
}

// EcosystemOfPair - the ecosystem shared by both ids
//
// returns zero if the ids are in different ecosystems
func EcosystemOfPair(a Id, b Id) Ecosystem {
	e := a.Ecosystem()
	if e != b.Ecosystem() {
		return 0
	}
	return e
}

// Valid - check type is one of the two known values
func (t Type) Valid() bool {
	return Indivisible == t || Divisible == t
}

// IsDivisible - type selects eight decimal places
func (t Type) IsDivisible() bool {
	return Divisible == t
}

// HasDenomination - search the denominations for a value
func (info *Info) HasDenomination(value int64) bool {
	for _, d := range info.Denominations {
		if d == value {
			return true
		}
	}
	return false
}
