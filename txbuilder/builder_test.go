// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txbuilder_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/fixtures"
	"github.com/bitmark-inc/exodusd/txbuilder"
	"github.com/bitmark-inc/exodusd/txbuilder/mocks"
	"github.com/bitmark-inc/exodusd/txid"
)

const defaultRate txbuilder.FeeRate = 1000

func setupBuilder(t *testing.T) (*gomock.Controller, *mocks.MockBackend, *txbuilder.Builder) {
	fixtures.SetupTestLogger()

	ctl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctl)
	b, err := txbuilder.New(backend, txbuilder.NewFeePolicy(defaultRate))
	if nil != err {
		t.Fatalf("builder error: %s", err)
	}
	return ctl, backend, b
}

func teardownBuilder(ctl *gomock.Controller) {
	ctl.Finish()
	fixtures.TeardownTestLogger()
}

func TestBuildCommit(t *testing.T) {
	ctl, backend, b := setupBuilder(t)
	defer teardownBuilder(ctl)

	tx := txid.NewDigest([]byte("committed"))
	request := &txbuilder.Request{
		From:    fixtures.Sender,
		To:      fixtures.Receiver,
		Payload: []byte{0, 0, 0, 0},
		Commit:  true,
	}
	backend.EXPECT().Build(request, defaultRate).Return(fault.CodeSuccess, tx, "")

	result, err := b.Build(request)
	assert.Nil(t, err, "build")
	assert.Equal(t, tx, result.TxId, "txid")
	assert.Equal(t, "", result.RawHex, "no raw")
}

func TestBuildRaw(t *testing.T) {
	ctl, backend, b := setupBuilder(t)
	defer teardownBuilder(ctl)

	request := &txbuilder.Request{
		From:    fixtures.Sender,
		Payload: []byte{0, 0, 0, 4},
	}
	backend.EXPECT().Build(request, defaultRate).Return(fault.CodeSuccess, txid.Digest{}, "0100abcd")

	result, err := b.Build(request)
	assert.Nil(t, err, "build")
	assert.True(t, result.TxId.IsZero(), "no txid")
	assert.Equal(t, "0100abcd", result.RawHex, "raw")
}

func TestBuildFailures(t *testing.T) {
	ctl, backend, b := setupBuilder(t)
	defer teardownBuilder(ctl)

	tx := txid.NewDigest([]byte("should be dropped"))
	items := []struct {
		code   fault.Code
		err    error
		commit bool
	}{
		{fault.CodeInputSelection, fault.BuilderInputSelection, true},
		{fault.CodeSignTx, fault.BuilderSignTransaction, false},
		{fault.CodeCommitTx, fault.BroadcastRejected, true},
		{fault.CodeInsufficientFunds, fault.BuilderInsufficientFunds, true},
		{-999, fault.BuilderUnknown, true},
	}

	for i, item := range items {
		request := &txbuilder.Request{
			From:   fixtures.Sender,
			Commit: item.commit,
		}
		backend.EXPECT().Build(request, defaultRate).Return(item.code, tx, "ff")

		result, err := b.Build(request)
		assert.Nil(t, result, "%d: result with error", i)
		assert.Equal(t, item.err, err, "%d: error", i)
		assert.True(t, fault.IsErrRollback(err), "%d: rollback class", i)
	}
}

func TestBuildIncompleteSuccess(t *testing.T) {
	ctl, backend, b := setupBuilder(t)
	defer teardownBuilder(ctl)

	commit := &txbuilder.Request{Commit: true}
	raw := &txbuilder.Request{Commit: false}
	backend.EXPECT().Build(commit, defaultRate).Return(fault.CodeSuccess, txid.Digest{}, "")
	backend.EXPECT().Build(raw, defaultRate).Return(fault.CodeSuccess, txid.Digest{}, "")

	_, err := b.Build(commit)
	assert.Equal(t, fault.CommittedWithoutTxId, err, "commit without txid")
	assert.False(t, fault.IsErrRollback(err), "commit without txid must not roll back")

	_, err = b.Build(raw)
	assert.Equal(t, fault.BuilderUnknown, err, "raw without hex")

	_, err = b.Build(nil)
	assert.Equal(t, fault.NilRequest, err, "nil request")
}

func TestBuildWithFeeRestores(t *testing.T) {
	ctl, backend, b := setupBuilder(t)
	defer teardownBuilder(ctl)

	accept := txbuilder.FeeRateFromAcceptFee(5000)
	assert.Equal(t, txbuilder.FeeRate(22222), accept, "accept rate")

	ok := &txbuilder.Request{From: fixtures.Sender, To: fixtures.Seller, Commit: true}
	bad := &txbuilder.Request{From: fixtures.Receiver, To: fixtures.Seller, Commit: true}

	gomock.InOrder(
		backend.EXPECT().Build(ok, accept).Return(fault.CodeSuccess, txid.NewDigest([]byte("accept")), ""),
		backend.EXPECT().Build(bad, accept).Return(fault.CodeInputSelection, txid.Digest{}, ""),
		backend.EXPECT().Build(ok, defaultRate).Return(fault.CodeSuccess, txid.NewDigest([]byte("after")), ""),
	)

	_, err := b.BuildWithFee(accept, ok)
	assert.Nil(t, err, "override success")
	assert.Equal(t, defaultRate, b.Fees().Current(), "restored after success")

	_, err = b.BuildWithFee(accept, bad)
	assert.Equal(t, fault.BuilderInputSelection, err, "override failure")
	assert.Equal(t, defaultRate, b.Fees().Current(), "restored after failure")

	_, err = b.Build(ok)
	assert.Nil(t, err, "default rate build")
}

func TestBuildWithFeeRestoresOnPanic(t *testing.T) {
	ctl, backend, b := setupBuilder(t)
	defer teardownBuilder(ctl)

	request := &txbuilder.Request{Commit: true}
	backend.EXPECT().Build(request, txbuilder.FeeRate(7)).Do(func(*txbuilder.Request, txbuilder.FeeRate) {
		panic("backend crashed")
	})

	assert.Panics(t, func() { _, _ = b.BuildWithFee(7, request) }, "panic propagates")
	assert.Equal(t, defaultRate, b.Fees().Current(), "restored after panic")
}

func TestFeeOverrideIdempotentRestore(t *testing.T) {
	p := txbuilder.NewFeePolicy(10)
	restore := p.Override(20)
	assert.Equal(t, txbuilder.FeeRate(20), p.Current(), "overridden")

	restore()
	p.Set(30)
	restore()
	assert.Equal(t, txbuilder.FeeRate(30), p.Current(), "second restore is a no-op")
}
