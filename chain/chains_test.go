// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/exodusd/chain"
)

func TestValid(t *testing.T) {
	assert.True(t, chain.Valid(chain.Main), "main")
	assert.True(t, chain.Valid(chain.Test), "test")
	assert.True(t, chain.Valid(chain.Regtest), "regtest")
	assert.False(t, chain.Valid("bitmark"), "foreign chain")
	assert.False(t, chain.Valid(""), "empty chain")
}

func TestAddressVersions(t *testing.T) {
	v, ok := chain.AddressVersions(chain.Main)
	assert.True(t, ok, "main versions")
	assert.Equal(t, byte(82), v.PubKeyHash, "main pubkey hash version")
	assert.Equal(t, byte(7), v.ScriptHash, "main script hash version")

	v, ok = chain.AddressVersions(chain.Test)
	assert.True(t, ok, "test versions")
	assert.Equal(t, byte(65), v.PubKeyHash, "test pubkey hash version")

	_, ok = chain.AddressVersions("nonsense")
	assert.False(t, ok, "unknown chain")

	assert.False(t, chain.IsTesting(chain.Main), "main is not testing")
	assert.True(t, chain.IsTesting(chain.Regtest), "regtest is testing")
}
