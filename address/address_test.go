// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/exodusd/address"
	"github.com/bitmark-inc/exodusd/chain"
	"github.com/bitmark-inc/exodusd/fault"
)

func TestParseValid(t *testing.T) {
	items := []struct {
		chain   string
		text    string
		version byte
		hash    string
		kind    address.Kind
	}{
		{chain.Test, "TA4Y62o6YC2Zsck9rZVGTvqW1AQ7X9zTnj", 65, "0102030405060708090a0b0c0d0e0f1011121314", address.PubKeyHash},
		{chain.Regtest, "TDisDrQngvcMNfYurnQLW4oRnh9PzwDFxh", 65, "292a2b2c2d2e2f303132333435363738393a3b3c", address.PubKeyHash},
		{chain.Test, "2EkaMcwi353Z9Hh7TdQxRLNXFhE1Gu2xmVT", 178, "5152535455565758595a5b5c5d5e5f6061626364", address.ScriptHash},
		{chain.Main, "ZzonpsrzcFuTmz7dGh9gi4Tshjn9ZK3z91", 82, "0102030405060708090a0b0c0d0e0f1011121314", address.PubKeyHash},
	}

	for i, item := range items {
		a, err := address.Parse(item.chain, item.text)
		assert.Nil(t, err, "%d: parse error", i)
		assert.Equal(t, item.version, a.Version, "%d: version", i)
		assert.Equal(t, item.hash, hex.EncodeToString(a.Hash[:]), "%d: hash", i)
		assert.Equal(t, item.kind, a.Kind(item.chain), "%d: kind", i)
		assert.Equal(t, item.text, a.String(), "%d: round trip", i)

		payload := a.Payload()
		assert.Equal(t, address.PayloadLength, len(payload), "%d: payload length", i)
		assert.Equal(t, item.version, payload[0], "%d: payload version", i)
	}
}

func TestParseInvalid(t *testing.T) {
	items := []struct {
		chain string
		text  string
		err   error
	}{
		{chain.Test, "", fault.InvalidAddress},
		{chain.Test, "0OIl", fault.InvalidAddress},
		{chain.Test, "TA4Y62o6YC2Zsck9rZVGTvqW1AQ7X9zTnk", fault.InvalidAddressChecksum},
		{chain.Main, "TA4Y62o6YC2Zsck9rZVGTvqW1AQ7X9zTnj", fault.WrongNetworkForAddress},
		{chain.Test, "ZzonpsrzcFuTmz7dGh9gi4Tshjn9ZK3z91", fault.WrongNetworkForAddress},
		{"bitmark", "TA4Y62o6YC2Zsck9rZVGTvqW1AQ7X9zTnj", fault.WrongNetworkForAddress},
	}

	for i, item := range items {
		_, err := address.Parse(item.chain, item.text)
		assert.Equal(t, item.err, err, "%d: wrong error for: %q", i, item.text)
	}
}

func TestZero(t *testing.T) {
	var a address.Address
	assert.True(t, a.IsZero(), "zero value")
	assert.Equal(t, "", a.String(), "zero value string")
}

func TestFromPayload(t *testing.T) {
	a, err := address.Parse(chain.Test, "TA4Y62o6YC2Zsck9rZVGTvqW1AQ7X9zTnj")
	assert.Nil(t, err, "parse")

	b, err := address.FromPayload(a.Payload())
	assert.Nil(t, err, "from payload")
	assert.Equal(t, a, b, "round trip")

	_, err = address.FromPayload(a.Payload()[1:])
	assert.Equal(t, fault.InvalidAddress, err, "short payload")
}
