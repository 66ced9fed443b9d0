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
	"github.com/bitmark-inc/exodusd/ledger"
	"github.com/bitmark-inc/exodusd/ledger/mocks"
	"github.com/bitmark-inc/exodusd/precondition"
	"github.com/bitmark-inc/exodusd/property"
)

func TestDExOffers(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	sane := &ledger.Offer{
		Seller:        fixtures.Seller,
		Property:      property.Exodus,
		AmountForSale: 100,
		AmountDesired: 20,
		PaymentWindow: 10,
		MinFee:        precondition.MaxSaneDExFee,
	}
	risky := &ledger.Offer{
		Seller:        fixtures.Seller,
		Property:      property.TExodus,
		AmountForSale: 100,
		AmountDesired: 20,
		PaymentWindow: 9,
		MinFee:        precondition.MaxSaneDExFee + 1,
	}

	s := mocks.NewMockSnapshot(ctl)
	s.EXPECT().Offer(fixtures.Seller, property.Exodus).Return(sane, true).AnyTimes()
	s.EXPECT().Offer(fixtures.Seller, property.TExodus).Return(risky, true).AnyTimes()
	s.EXPECT().Offer(fixtures.Sender, gomock.Any()).Return(nil, false).AnyTimes()

	assert.Nil(t, precondition.RequireMatchingDExOffer(s, fixtures.Seller, property.Exodus), "matching")
	assert.Equal(t, fault.DExOfferNotFound, precondition.RequireMatchingDExOffer(s, fixtures.Sender, property.Exodus), "no offer")

	assert.Nil(t, precondition.RequireNoOtherDExOffer(s, fixtures.Sender, property.Exodus), "free slot")
	assert.Equal(t, fault.DExOfferExists, precondition.RequireNoOtherDExOffer(s, fixtures.Seller, property.Exodus), "slot taken")

	assert.Nil(t, precondition.RequireSaneDExFee(s, fixtures.Seller, property.Exodus), "sane fee")
	assert.Equal(t, fault.DExFeeNotSane, precondition.RequireSaneDExFee(s, fixtures.Seller, property.TExodus), "high fee")

	assert.Nil(t, precondition.RequireSaneDExPaymentWindow(s, fixtures.Seller, property.Exodus), "sane window")
	assert.Equal(t, fault.DExPaymentWindowNotSane, precondition.RequireSaneDExPaymentWindow(s, fixtures.Seller, property.TExodus), "short window")
}
