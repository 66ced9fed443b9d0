// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sigma_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/property"
	"github.com/bitmark-inc/exodusd/sigma"
	"github.com/bitmark-inc/exodusd/sigma/mocks"
)

func mintId(d sigma.Denomination, n byte) sigma.MintId {
	m := sigma.MintId{
		Property:     3,
		Denomination: d,
	}
	m.PublicKey[0] = n
	return m
}

func TestExpand(t *testing.T) {
	requests := []sigma.MintRequest{
		{Denomination: 0, Count: 2},
		{Denomination: 1, Count: 0},
		{Denomination: 2, Count: 1},
	}
	assert.Equal(t, []sigma.Denomination{0, 0, 2}, sigma.Expand(requests), "expanded")
	assert.Equal(t, []sigma.Denomination{}, sigma.Expand(nil), "empty")
}

func TestSum(t *testing.T) {
	values := []int64{100, 500, 1000}

	total, err := sigma.Sum(values, []sigma.MintRequest{{0, 2}, {2, 1}})
	assert.Nil(t, err, "sum error")
	assert.Equal(t, int64(1200), total, "sum")

	_, err = sigma.Sum(values, []sigma.MintRequest{{3, 1}})
	assert.Equal(t, fault.DenominationNotFound, err, "undefined denomination")

	_, err = sigma.Sum([]int64{1 << 62}, []sigma.MintRequest{{0, 4}})
	assert.Equal(t, fault.AmountOutOfRange, err, "overflow")
}

func TestBatchRollbackOrder(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mints := []sigma.MintId{mintId(0, 1), mintId(0, 2), mintId(1, 3)}

	w := mocks.NewMockWallet(ctl)
	w.EXPECT().CreateMints(property.Id(3), []sigma.Denomination{0, 0, 1}).Return(mints, nil)
	gomock.InOrder(
		w.EXPECT().EraseMint(mints[2]).Return(nil),
		w.EXPECT().EraseMint(mints[1]).Return(errors.New("disk full")),
		w.EXPECT().EraseMint(mints[0]).Return(nil),
	)

	b, err := sigma.NewMintBatch(nil, w, 3, []sigma.MintRequest{{0, 2}, {1, 1}})
	assert.Nil(t, err, "new batch")
	assert.Equal(t, mints, b.Mints(), "creation order")

	erased, total := b.Rollback(nil)
	assert.Equal(t, 2, erased, "erased despite failure")
	assert.Equal(t, 3, total, "count taken before the batch is cleared")
	assert.Nil(t, b.Mints(), "forgotten")

	erased, total = b.Rollback(nil)
	assert.Equal(t, 0, erased, "second rollback erased")
	assert.Equal(t, 0, total, "second rollback total")
}

func TestBatchCreateFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	partial := []sigma.MintId{mintId(0, 1)}

	w := mocks.NewMockWallet(ctl)
	w.EXPECT().CreateMints(property.Id(3), []sigma.Denomination{0, 0}).Return(partial, fmt.Errorf("wallet locked"))
	w.EXPECT().EraseMint(partial[0]).Return(nil)

	b, err := sigma.NewMintBatch(nil, w, 3, []sigma.MintRequest{{0, 2}})
	assert.Nil(t, b, "no batch")
	assert.True(t, errors.Is(err, fault.ShieldedWalletFailure), "wallet failure")
	assert.Equal(t, fault.CodeWalletError, fault.ResultCode(err), "code")
}
