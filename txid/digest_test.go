// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txid_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/txid"
)

const bigEndian = "00000000000000000000000000000000000000000000000000000000000001ff"

func TestFromHex(t *testing.T) {
	d, err := txid.FromHex(bigEndian)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, byte(0xff), d[0], "little endian storage")
	assert.Equal(t, byte(0x01), d[1], "little endian storage")
	assert.Equal(t, bigEndian, d.String(), "round trip")
	assert.Equal(t, 64, len(d.String()), "hex length")
	assert.False(t, d.IsZero(), "not zero")

	_, err = txid.FromHex("01ff")
	assert.Equal(t, fault.InvalidTxId, err, "short")

	_, err = txid.FromHex("zz000000000000000000000000000000000000000000000000000000000001ff")
	assert.Equal(t, fault.InvalidTxId, err, "not hex")
}

func TestJSON(t *testing.T) {
	d, _ := txid.FromHex(bigEndian)
	buffer, err := json.Marshal(d)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `"`+bigEndian+`"`, string(buffer), "json form")

	var back txid.Digest
	err = json.Unmarshal(buffer, &back)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, d, back, "json round trip")
}

func TestNewDigest(t *testing.T) {
	// double SHA-256 of the empty string
	d := txid.NewDigest([]byte{})
	assert.Equal(t, "56944c5d3f98413ef45cf54545538103cc9f298e0575820ad3591376e2e0f65d", d.String(), "empty record")

	var e txid.Digest
	assert.Equal(t, fault.InvalidTxId, txid.FromBytes(&e, []byte{1, 2}), "short buffer")
	assert.True(t, e.IsZero(), "unchanged")
}
