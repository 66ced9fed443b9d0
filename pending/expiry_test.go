// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pending

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/exodusd/fixtures"
	"github.com/bitmark-inc/exodusd/txid"
)

func TestExpire(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s, err := New("", time.Hour)
	assert.Nil(t, err, "new")

	now := time.Now()
	_ = s.Insert(Effect{TxId: txid.Digest{1}, Amount: 1, Timestamp: now.Add(-2 * time.Hour)})
	_ = s.Insert(Effect{TxId: txid.Digest{2}, Amount: 2, Timestamp: now.Add(-30 * time.Minute)})

	assert.Equal(t, 1, s.expire(now), "expired count")
	_, ok := s.Get(txid.Digest{1})
	assert.False(t, ok, "old effect removed")
	_, ok = s.Get(txid.Digest{2})
	assert.True(t, ok, "recent effect kept")
}

func TestCorruptFile(t *testing.T) {
	buffer := &bytes.Buffer{}
	assert.Nil(t, writeRecord(buffer, taggedBOF, []byte("something else")), "write")

	tag, packed, err := readRecord(buffer)
	assert.Nil(t, err, "read")
	assert.Equal(t, taggedBOF, tag, "tag")
	assert.Equal(t, []byte("something else"), packed, "data")

	_, _, err = readRecord(buffer)
	assert.NotNil(t, err, "read past end")

	_, err = unpackEffect([]byte{1, 2, 3})
	assert.NotNil(t, err, "short effect")
}
