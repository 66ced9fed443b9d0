// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

// names of all chains
const (
	Main    = "main"
	Test    = "test"
	Regtest = "regtest"
)

// Versions - base58 address version bytes for a chain
type Versions struct {
	PubKeyHash byte
	ScriptHash byte
}

var versions = map[string]Versions{
	Main:    {PubKeyHash: 82, ScriptHash: 7},
	Test:    {PubKeyHash: 65, ScriptHash: 178},
	Regtest: {PubKeyHash: 65, ScriptHash: 178},
}

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Main, Test, Regtest:
		return true
	default:
		return false
	}
}

// IsTesting - true for any chain other than main
func IsTesting(name string) bool {
	return Main != name
}

// AddressVersions - the address versions for a chain name
//
// returns false for an unknown chain
func AddressVersions(name string) (Versions, bool) {
	v, ok := versions[name]
	return v, ok
}
