// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package precondition_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/ledger/mocks"
	"github.com/bitmark-inc/exodusd/precondition"
	"github.com/bitmark-inc/exodusd/property"
	"github.com/bitmark-inc/exodusd/sigma"
)

func TestRequireSigma(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockSnapshot(ctl)
	s.EXPECT().PropertyInfo(property.Id(10)).Return(&property.Info{Sigma: property.SoftEnabled}, nil)
	s.EXPECT().PropertyInfo(property.Id(11)).Return(&property.Info{Sigma: property.HardEnabled}, nil)
	s.EXPECT().PropertyInfo(property.Id(12)).Return(&property.Info{Sigma: property.SoftDisabled}, nil)

	assert.Nil(t, precondition.RequireSigma(s, 10), "soft enabled")
	assert.Nil(t, precondition.RequireSigma(s, 11), "hard enabled")
	assert.Equal(t, fault.SigmaNotEnabled, precondition.RequireSigma(s, 12), "disabled")
}

func TestRequireSigmaStatus(t *testing.T) {
	for s := property.SoftDisabled; s <= property.HardEnabled; s += 1 {
		assert.Nil(t, precondition.RequireSigmaStatus(s), "status: %d", s)
	}
	assert.Equal(t, fault.SigmaStatusNotAllowed, precondition.RequireSigmaStatus(4), "undefined status")
}

func TestDenominations(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	full := make([]int64, property.MaxDenominations)
	for i := range full {
		full[i] = int64(i + 1)
	}

	s := mocks.NewMockSnapshot(ctl)
	s.EXPECT().Denominations(property.Id(10)).Return([]int64{100, 500}, nil).AnyTimes()
	s.EXPECT().Denominations(property.Id(11)).Return(full, nil).AnyTimes()

	assert.Nil(t, precondition.RequireExistingDenomination(s, 10, 1), "second denomination")
	assert.Equal(t, fault.DenominationNotFound, precondition.RequireExistingDenomination(s, 10, 2), "past end")

	assert.Nil(t, precondition.RequireDenominationCapacity(s, 10), "room")
	assert.Equal(t, fault.TooManyDenominations, precondition.RequireDenominationCapacity(s, 11), "full")

	assert.Nil(t, precondition.RequireUniqueDenomination(s, 10, 200, false), "new value")
	err := precondition.RequireUniqueDenomination(s, 10, 500, true)
	assert.True(t, errors.Is(err, fault.DenominationValueExists), "duplicate value")
	assert.Contains(t, err.Error(), "0.00000500", "formatted value")
}

func TestRequireMatureDenomination(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockSnapshot(ctl)
	s.EXPECT().DenominationRemainingConfirmations(property.Id(10), uint8(0), 6).Return(0, nil)
	s.EXPECT().DenominationRemainingConfirmations(property.Id(10), uint8(1), 6).Return(2, nil)

	assert.Nil(t, precondition.RequireMatureDenomination(s, 10, 0, 6), "mature")

	err := precondition.RequireMatureDenomination(s, 10, 1, 6)
	assert.True(t, errors.Is(err, fault.DenominationNotConfirmed), "immature")
	assert.True(t, fault.IsErrPrecondition(err), "class")
}

func TestRequireMintCount(t *testing.T) {
	assert.Nil(t, precondition.RequireMintCount(nil), "no mints")
	assert.Nil(t, precondition.RequireMintCount([]sigma.MintRequest{{Denomination: 0, Count: 200}, {Denomination: 1, Count: 55}}), "at limit")

	err := precondition.RequireMintCount([]sigma.MintRequest{{Denomination: 0, Count: 255}, {Denomination: 1, Count: 1}})
	assert.True(t, errors.Is(err, fault.TooManyMints), "over limit: %v", err)
	assert.True(t, fault.IsErrParameter(err), "class")
}
