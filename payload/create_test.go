// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payload_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/exodusd/address"
	"github.com/bitmark-inc/exodusd/chain"
	"github.com/bitmark-inc/exodusd/payload"
	"github.com/bitmark-inc/exodusd/property"
	"github.com/bitmark-inc/exodusd/sigma"
)

func TestFixedLayouts(t *testing.T) {
	items := []struct {
		name     string
		packed   payload.Packed
		expected string
	}{
		{
			"simple send",
			payload.CreateSimpleSend(1, 10000000000),
			"00000000" + "00000001" + "00000002540be400",
		},
		{
			"send all",
			payload.CreateSendAll(property.TestEcosystem),
			"00000004" + "02",
		},
		{
			"dex sell",
			payload.CreateDExSell(1, 100000000, 20000000, 10, 10000, payload.DExNew),
			"00010014" + "00000001" + "0000000005f5e100" + "0000000001312d00" + "0a" + "0000000000002710" + "01",
		},
		{
			"dex accept",
			payload.CreateDExAccept(2, 1),
			"00000016" + "00000002" + "0000000000000001",
		},
		{
			"send to owners same property",
			payload.CreateSendToOwners(3, 10, 3),
			"00000003" + "00000003" + "000000000000000a",
		},
		{
			"send to owners other property",
			payload.CreateSendToOwners(3, 10, 5),
			"00010003" + "00000003" + "000000000000000a" + "00000005",
		},
		{
			"trade",
			payload.CreateMetaDExTrade(3, 5, 4, 6),
			"00000019" + "00000003" + "0000000000000005" + "00000004" + "0000000000000006",
		},
		{
			"cancel price",
			payload.CreateMetaDExCancelPrice(3, 5, 4, 6),
			"0000001a" + "00000003" + "0000000000000005" + "00000004" + "0000000000000006",
		},
		{
			"cancel pair",
			payload.CreateMetaDExCancelPair(3, 4),
			"0000001b" + "00000003" + "00000004",
		},
		{
			"cancel ecosystem",
			payload.CreateMetaDExCancelEcosystem(property.MainEcosystem),
			"0000001c" + "01",
		},
		{
			"close crowdsale",
			payload.CreateCloseCrowdsale(7),
			"00000035" + "00000007",
		},
		{
			"grant",
			payload.CreateGrant(7, 1, "hi"),
			"00000037" + "00000007" + "0000000000000001" + "686900",
		},
		{
			"revoke without memo",
			payload.CreateRevoke(7, 1, ""),
			"00000038" + "00000007" + "0000000000000001" + "00",
		},
		{
			"change issuer",
			payload.CreateChangeIssuer(7),
			"00000046" + "00000007",
		},
		{
			"enable freezing",
			payload.CreateEnableFreezing(7),
			"00000047" + "00000007",
		},
		{
			"disable freezing",
			payload.CreateDisableFreezing(7),
			"00000048" + "00000007",
		},
		{
			"deactivation",
			payload.CreateDeactivation(3),
			"0000fffd" + "0003",
		},
		{
			"activation",
			payload.CreateActivation(3, 500000, 1000000),
			"0000fffe" + "0003" + "0007a120" + "000f4240",
		},
		{
			"alert",
			payload.CreateAlert(1, 100, "hi"),
			"0000ffff" + "0001" + "00000064" + "686900",
		},
		{
			"create denomination",
			payload.CreateCreateDenomination(3, 100000000),
			"00000401" + "00000003" + "0000000005f5e100",
		},
	}

	for _, item := range items {
		assert.Equal(t, item.expected, item.packed.String(), item.name)
	}
}

func TestFreeze(t *testing.T) {
	target, err := address.Parse(chain.Test, "TA4Y62o6YC2Zsck9rZVGTvqW1AQ7X9zTnj")
	assert.Nil(t, err, "address error")

	expected := "00000003" + "0000000000000001" + "41" + "0102030405060708090a0b0c0d0e0f1011121314"
	assert.Equal(t, "000000b9"+expected, payload.CreateFreeze(3, 1, target).String(), "freeze")
	assert.Equal(t, "000000ba"+expected, payload.CreateUnfreeze(3, 1, target).String(), "unfreeze")
}

func TestIssuance(t *testing.T) {
	m := payload.Metadata{
		Ecosystem:   property.MainEcosystem,
		Type:        property.Divisible,
		PreviousId:  0,
		Category:    "a",
		Subcategory: "b",
		Name:        "c",
		URL:         "d",
		Data:        "e",
	}
	strs := "6100" + "6200" + "6300" + "6400" + "6500"

	fixed := payload.CreateIssuanceFixed(m, 1000, nil)
	assert.Equal(t, "00000032"+"01"+"0002"+"00000000"+strs+"00000000000003e8", fixed.String(), "fixed")

	status := property.SoftEnabled
	fixedSigma := payload.CreateIssuanceFixed(m, 1000, &status)
	assert.Equal(t, "00010032"+"01"+"0002"+"00000000"+strs+"00000000000003e8"+"01", fixedSigma.String(), "fixed with sigma")

	managed := payload.CreateIssuanceManaged(m, nil)
	assert.Equal(t, "00000036"+"01"+"0002"+"00000000"+strs, managed.String(), "managed")

	variable := payload.CreateIssuanceVariable(m, 1, 100, 1600000000, 10, 5)
	assert.Equal(t, "00000033"+"01"+"0002"+"00000000"+strs+"00000001"+"0000000000000064"+"000000005f5e1000"+"0a"+"05", variable.String(), "crowdsale")
}

func TestTextTruncation(t *testing.T) {
	long := strings.Repeat("x", 300)

	packed := payload.CreateAlert(1, 1, long)
	assert.Equal(t, 4+2+4+payload.MaxTextLength+1, len(packed), "alert length")
	assert.Equal(t, byte(0), packed[len(packed)-1], "terminator")

	assert.Equal(t, payload.MaxTextLength, len(payload.Truncate(long)), "truncate")
	assert.Equal(t, "short", payload.Truncate("short"), "no truncation")
}

func TestMintAndSpend(t *testing.T) {
	var pk1, pk2 sigma.PublicKey
	copy(pk1[:], bytes.Repeat([]byte{0x01}, sigma.PublicKeyLength))
	copy(pk2[:], bytes.Repeat([]byte{0x02}, sigma.PublicKeyLength))

	mints := []sigma.MintId{
		{Property: 3, Denomination: 0, PublicKey: pk1},
		{Property: 3, Denomination: 1, PublicKey: pk2},
	}
	expected := "00000402" + "00000003" + "02" +
		"00" + strings.Repeat("01", sigma.PublicKeyLength) +
		"01" + strings.Repeat("02", sigma.PublicKeyLength)
	assert.Equal(t, expected, payload.CreateSimpleMint(3, mints).String(), "mint")

	spend := &sigma.Spend{
		Mint:      mints[1],
		Group:     2,
		GroupSize: 100,
		Proof:     []byte{0xab, 0xcd},
	}
	assert.Equal(t, "00000403"+"00000003"+"01"+"00000002"+"00000064"+"abcd", payload.CreateSimpleSpend(spend).String(), "spend")
}

func TestTypeNames(t *testing.T) {
	assert.Equal(t, "Simple Send", payload.SimpleSend.String(), "simple send")
	assert.Equal(t, "Simple Mint", payload.SimpleMint.String(), "simple mint")
	assert.Equal(t, "*unknown*", payload.Type(9999).String(), "unknown")
	assert.True(t, payload.DExCancel.Valid(), "cancel valid")
	assert.False(t, payload.DExAction(4).Valid(), "4 invalid")
}
