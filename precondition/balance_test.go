// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package precondition_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/fixtures"
	"github.com/bitmark-inc/exodusd/ledger/mocks"
	pendingmocks "github.com/bitmark-inc/exodusd/pending/mocks"
	"github.com/bitmark-inc/exodusd/precondition"
	"github.com/bitmark-inc/exodusd/property"
)

func TestRequireBalance(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockSnapshot(ctl)
	r := pendingmocks.NewMockLedger(ctl)

	s.EXPECT().Balance(fixtures.Sender, mainProperty).Return(int64(1000)).AnyTimes()
	r.EXPECT().Reserved(fixtures.SenderAddress, mainProperty).Return(int64(600)).AnyTimes()

	assert.Nil(t, precondition.RequireBalance(s, r, fixtures.Sender, mainProperty, 400), "within available")
	assert.Equal(t, fault.InsufficientBalancePending, precondition.RequireBalance(s, r, fixtures.Sender, mainProperty, 401), "covered only by confirmed")
	assert.Equal(t, fault.InsufficientBalance, precondition.RequireBalance(s, r, fixtures.Sender, mainProperty, 1001), "over confirmed")
	assert.Nil(t, precondition.RequireBalance(s, nil, fixtures.Sender, mainProperty, 1000), "no reservations")
}

func TestRequireBalanceZeroAmount(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// no calls expected
	s := mocks.NewMockSnapshot(ctl)
	r := pendingmocks.NewMockLedger(ctl)

	assert.Nil(t, precondition.RequireBalance(s, r, fixtures.Sender, mainProperty, 0), "zero amount")
}

func TestRequireSaneReferenceAmount(t *testing.T) {
	assert.Nil(t, precondition.RequireSaneReferenceAmount(0), "zero")
	assert.Nil(t, precondition.RequireSaneReferenceAmount(property.Coin/100), "limit")
	assert.Equal(t, fault.ReferenceAmountNotSane, precondition.RequireSaneReferenceAmount(property.Coin/100+1), "over limit")
}
