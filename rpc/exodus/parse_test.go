// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package exodus_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/exodusd/address"
	"github.com/bitmark-inc/exodusd/chain"
	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/fixtures"
	"github.com/bitmark-inc/exodusd/payload"
	"github.com/bitmark-inc/exodusd/property"
	"github.com/bitmark-inc/exodusd/rpc/exodus"
	"github.com/bitmark-inc/exodusd/sigma"
)

func TestParseAddress(t *testing.T) {
	a, err := exodus.ParseAddress(chain.Test, " "+fixtures.SenderAddress+" ")
	assert.Nil(t, err, "valid address")
	assert.Equal(t, fixtures.Sender, a, "wrong address")

	_, err = exodus.ParseAddress(chain.Test, "")
	assert.Equal(t, fault.InvalidAddress, err, "blank address")

	_, err = exodus.ParseAddress(chain.Main, fixtures.SenderAddress)
	assert.Equal(t, fault.WrongNetworkForAddress, err, "test address on main")

	a, err = exodus.ParseAddressOrEmpty(chain.Test, "  ")
	assert.Nil(t, err, "blank optional address")
	assert.Equal(t, address.Address{}, a, "blank is zero")

	_, err = exodus.ParseAddressOrEmpty(chain.Test, "not-an-address")
	assert.Equal(t, fault.InvalidAddress, err, "garbage optional address")
}

func TestParseAmounts(t *testing.T) {
	n, err := exodus.ParseAmount("1.5", true)
	assert.Nil(t, err, "divisible")
	assert.Equal(t, int64(150000000), n, "wrong divisible amount")

	n, err = exodus.ParseAmount("7", false)
	assert.Nil(t, err, "indivisible")
	assert.Equal(t, int64(7), n, "wrong indivisible amount")

	_, err = exodus.ParseAmount("0", false)
	assert.Equal(t, fault.AmountNotPositive, err, "zero amount")

	n, err = exodus.ParseReferenceAmount("")
	assert.Nil(t, err, "default reference amount")
	assert.Equal(t, int64(0), n, "default is minimal")

	n, err = exodus.ParseReferenceAmount("0.0001")
	assert.Nil(t, err, "reference amount")
	assert.Equal(t, int64(10000), n, "wrong reference amount")

	n, err = exodus.ParseDExFee("0")
	assert.Nil(t, err, "zero fee")
	assert.Equal(t, int64(0), n, "wrong zero fee")

	n, err = exodus.ParseDExFee("0.0005")
	assert.Nil(t, err, "fee")
	assert.Equal(t, int64(50000), n, "wrong fee")

	_, err = exodus.ParseDExFee("-0.1")
	assert.Equal(t, fault.DExFeeNegative, err, "negative fee")

	_, err = exodus.ParseDExFee("abc")
	assert.Equal(t, fault.DExFeeNegative, err, "garbage fee")
}

func TestParseRanges(t *testing.T) {
	type parser func(int64) error

	wrap8 := func(f func(int64) (uint8, error)) parser {
		return func(n int64) error { _, err := f(n); return err }
	}

	tests := []struct {
		name    string
		parse   parser
		valid   []int64
		invalid []int64
		err     error
	}{
		{
			name:    "property id",
			parse:   func(n int64) error { _, err := exodus.ParsePropertyId(n); return err },
			valid:   []int64{1, 2, 4294967295},
			invalid: []int64{0, -1, 4294967296},
			err:     fault.PropertyIdOutOfRange,
		},
		{
			name:    "ecosystem",
			parse:   func(n int64) error { _, err := exodus.ParseEcosystem(n); return err },
			valid:   []int64{1, 2},
			invalid: []int64{0, 3, -1, 257},
			err:     fault.EcosystemOutOfRange,
		},
		{
			name:    "property type",
			parse:   func(n int64) error { _, err := exodus.ParsePropertyType(n); return err },
			valid:   []int64{1, 2},
			invalid: []int64{0, 3, 65537},
			err:     fault.PropertyTypeOutOfRange,
		},
		{
			name:    "previous property id",
			parse:   func(n int64) error { _, err := exodus.ParsePreviousPropertyId(n); return err },
			valid:   []int64{0},
			invalid: []int64{1, 5},
			err:     fault.PreviousPropertyIdNotZero,
		},
		{
			name:    "deadline",
			parse:   func(n int64) error { _, err := exodus.ParseDeadline(n); return err },
			valid:   []int64{0, 1483228800},
			invalid: []int64{-1},
			err:     fault.DeadlineOutOfRange,
		},
		{
			name:    "early bird bonus",
			parse:   wrap8(exodus.ParseEarlyBirdBonus),
			valid:   []int64{0, 255},
			invalid: []int64{-1, 256},
			err:     fault.EarlyBirdBonusOutOfRange,
		},
		{
			name:    "issuer bonus",
			parse:   wrap8(exodus.ParseIssuerBonus),
			valid:   []int64{0, 255},
			invalid: []int64{-1, 256},
			err:     fault.IssuerBonusOutOfRange,
		},
		{
			name:    "dex action",
			parse:   func(n int64) error { _, err := exodus.ParseDExAction(n); return err },
			valid:   []int64{1, 2, 3},
			invalid: []int64{0, 4, 257},
			err:     fault.DExActionOutOfRange,
		},
		{
			name:    "dex payment window",
			parse:   wrap8(exodus.ParseDExPaymentWindow),
			valid:   []int64{1, 255},
			invalid: []int64{0, 256},
			err:     fault.DExPaymentWindowOutOfRange,
		},
		{
			name:    "metadex action",
			parse:   wrap8(exodus.ParseMetaDExAction),
			valid:   []int64{1, 2, 3, 4},
			invalid: []int64{0, 5},
			err:     fault.MetaDExActionOutOfRange,
		},
		{
			name:    "sigma denomination",
			parse:   func(n int64) error { _, err := exodus.ParseSigmaDenomination(n); return err },
			valid:   []int64{0, 255},
			invalid: []int64{-1, 256},
			err:     fault.DenominationOutOfRange,
		},
		{
			name:    "alert type",
			parse:   func(n int64) error { _, err := exodus.ParseAlertType(n); return err },
			valid:   []int64{1, 65535},
			invalid: []int64{0, 65536},
			err:     fault.AlertTypeOutOfRange,
		},
		{
			name:    "alert expiry",
			parse:   func(n int64) error { _, err := exodus.ParseAlertExpiry(n); return err },
			valid:   []int64{1, 4294967295},
			invalid: []int64{0, 4294967296},
			err:     fault.AlertExpiryOutOfRange,
		},
	}

	for _, test := range tests {
		for _, n := range test.valid {
			assert.Nil(t, test.parse(n), "%s: %d rejected", test.name, n)
		}
		for _, n := range test.invalid {
			assert.Equal(t, test.err, test.parse(n), "%s: %d accepted", test.name, n)
		}
	}
}

func TestParseConversions(t *testing.T) {
	e, _ := exodus.ParseEcosystem(2)
	assert.Equal(t, property.TestEcosystem, e, "wrong ecosystem")

	p, _ := exodus.ParsePropertyType(2)
	assert.Equal(t, property.Divisible, p, "wrong type")

	a, _ := exodus.ParseDExAction(3)
	assert.Equal(t, payload.DExCancel, a, "wrong action")

	d, _ := exodus.ParseSigmaDenomination(7)
	assert.Equal(t, sigma.Denomination(7), d, "wrong denomination")

	s, err := exodus.ParseSigmaStatus(nil)
	assert.Nil(t, err, "absent sigma status")
	assert.Nil(t, s, "absent sigma status is nil")

	n := int64(1)
	s, err = exodus.ParseSigmaStatus(&n)
	assert.Nil(t, err, "valid sigma status")
	assert.Equal(t, property.SoftEnabled, *s, "wrong sigma status")

	n = 4
	_, err = exodus.ParseSigmaStatus(&n)
	assert.Equal(t, fault.SigmaStatusInvalid, err, "invalid sigma status")
}

func TestParseText(t *testing.T) {
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'x'
	}
	assert.Equal(t, 255, len(exodus.ParseText(string(long))), "text not truncated")
	assert.Equal(t, "Quantum Miner", exodus.ParseText("Quantum Miner"), "short text changed")
}

func TestParseHex(t *testing.T) {
	b, err := exodus.ParseHex("000000000000000100000000017d7840")
	assert.Nil(t, err, "valid hex")
	assert.Equal(t, 16, len(b), "wrong length")

	_, err = exodus.ParseHex("")
	assert.Equal(t, fault.HexDataInvalid, err, "empty hex")

	_, err = exodus.ParseHex("0g")
	assert.Equal(t, fault.HexDataInvalid, err, "invalid hex")
}

func TestParseMintDenominations(t *testing.T) {
	requests, err := exodus.ParseMintDenominations(json.RawMessage(`{"2": 1, "0": 3, "1": 0}`))
	assert.Nil(t, err, "valid denominations")
	assert.Equal(t, []sigma.MintRequest{
		{Denomination: 2, Count: 1},
		{Denomination: 0, Count: 3},
		{Denomination: 1, Count: 0},
	}, requests, "request order not kept")

	requests, err = exodus.ParseMintDenominations(json.RawMessage(`{}`))
	assert.Nil(t, err, "empty object")
	assert.Equal(t, 0, len(requests), "empty object gives no requests")

	tests := []struct {
		raw string
		err error
	}{
		{`[1, 2]`, fault.DenominationsNotObject},
		{`"0"`, fault.DenominationsNotObject},
		{``, fault.DenominationsNotObject},
		{`{"0": 1`, fault.DenominationsNotObject},
		{`{"256": 1}`, fault.DenominationOutOfRange},
		{`{"-1": 1}`, fault.DenominationOutOfRange},
		{`{"a": 1}`, fault.DenominationOutOfRange},
		{`{"0": 256}`, fault.MintCountOutOfRange},
		{`{"0": -1}`, fault.MintCountOutOfRange},
		{`{"0": 1.5}`, fault.MintCountOutOfRange},
		{`{"0": "1"}`, fault.MintCountOutOfRange},
	}
	for _, test := range tests {
		_, err := exodus.ParseMintDenominations(json.RawMessage(test.raw))
		assert.Equal(t, test.err, err, "denominations: %s", test.raw)
	}
}
