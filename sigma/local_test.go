// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sigma_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/fixtures"
	"github.com/bitmark-inc/exodusd/sigma"
	"github.com/bitmark-inc/exodusd/storage"
	"github.com/bitmark-inc/exodusd/txid"
)

var _ sigma.Wallet = (*sigma.LocalWallet)(nil)

func setupWallet(t *testing.T) (*storage.DB, *sigma.LocalWallet) {
	fixtures.SetupTestLogger()

	db, err := storage.Open(fixtures.TempFile("wallet.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	w, err := sigma.NewLocalWallet(db, nil)
	if nil != err {
		t.Fatalf("wallet error: %s", err)
	}
	return db, w
}

func teardownWallet(db *storage.DB) {
	db.Close()
	fixtures.TeardownTestLogger()
}

func TestLocalWalletMintAndSpend(t *testing.T) {
	db, w := setupWallet(t)
	defer teardownWallet(db)

	mints, err := w.CreateMints(3, []sigma.Denomination{0, 0, 1})
	assert.Nil(t, err, "create mints")
	assert.Equal(t, 3, len(mints), "mint count")
	assert.NotEqual(t, mints[0].PublicKey, mints[1].PublicKey, "distinct commitments")
	assert.Equal(t, sigma.Denomination(1), mints[2].Denomination, "denomination order")

	spend, err := w.CreateSpend(3, 0)
	assert.Nil(t, err, "first spend")
	assert.Equal(t, uint32(2), spend.GroupSize, "group of same denomination")
	assert.Equal(t, 2*sigma.PublicKeyLength, len(spend.Proof), "proof length")

	tx := txid.NewDigest([]byte("spend one"))
	err = w.MarkUsed(spend.Mint, tx)
	assert.Nil(t, err, "mark used")

	second, err := w.CreateSpend(3, 0)
	assert.Nil(t, err, "second spend")
	assert.NotEqual(t, spend.Mint, second.Mint, "used mint skipped")

	err = w.MarkUsed(second.Mint, txid.NewDigest([]byte("spend two")))
	assert.Nil(t, err, "mark second used")

	_, err = w.CreateSpend(3, 0)
	assert.Equal(t, fault.InsufficientShieldedFunds, err, "all used")
	assert.Equal(t, fault.CodeInsufficientFunds, fault.ResultCode(err), "code")

	_, err = w.CreateSpend(4, 1)
	assert.Equal(t, fault.InsufficientShieldedFunds, err, "other property")
}

func TestLocalWalletErase(t *testing.T) {
	db, w := setupWallet(t)
	defer teardownWallet(db)

	mints, err := w.CreateMints(3, []sigma.Denomination{2})
	assert.Nil(t, err, "create mint")

	err = w.EraseMint(mints[0])
	assert.Nil(t, err, "erase")

	err = w.EraseMint(mints[0])
	assert.Equal(t, fault.MintNotFound, err, "erase twice")

	_, err = w.CreateSpend(3, 2)
	assert.Equal(t, fault.InsufficientShieldedFunds, err, "erased mint not spendable")

	err = w.MarkUsed(mints[0], txid.Digest{})
	assert.Equal(t, fault.MintNotFound, err, "mark erased")
}

func TestLocalWalletListAndBalance(t *testing.T) {
	db, w := setupWallet(t)
	defer teardownWallet(db)

	values := []int64{100, 500}

	_, err := w.CreateMints(3, []sigma.Denomination{0, 1, 1})
	assert.Nil(t, err, "create mints")
	_, err = w.CreateMints(4, []sigma.Denomination{0})
	assert.Nil(t, err, "create other property")

	mints, err := w.List(3)
	assert.Nil(t, err, "list")
	assert.Equal(t, 3, len(mints), "listed")

	total, err := w.Balance(3, values)
	assert.Nil(t, err, "balance")
	assert.Equal(t, int64(1100), total, "unused total")

	spend, err := w.CreateSpend(3, 1)
	assert.Nil(t, err, "spend")
	err = w.MarkUsed(spend.Mint, txid.NewDigest([]byte("used")))
	assert.Nil(t, err, "mark used")

	total, err = w.Balance(3, values)
	assert.Nil(t, err, "balance after spend")
	assert.Equal(t, int64(600), total, "after spend")

	_, err = w.Balance(3, values[:1])
	assert.Equal(t, fault.DenominationNotFound, err, "missing denomination value")
}
