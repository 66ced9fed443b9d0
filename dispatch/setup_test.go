// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dispatch_test

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/bitmark-inc/exodusd/address"
	"github.com/bitmark-inc/exodusd/dispatch"
	"github.com/bitmark-inc/exodusd/fixtures"
	"github.com/bitmark-inc/exodusd/ledger"
	"github.com/bitmark-inc/exodusd/pending"
	"github.com/bitmark-inc/exodusd/property"
	"github.com/bitmark-inc/exodusd/sigma"
	sigmamocks "github.com/bitmark-inc/exodusd/sigma/mocks"
	"github.com/bitmark-inc/exodusd/storage"
	"github.com/bitmark-inc/exodusd/txbuilder"
	buildermocks "github.com/bitmark-inc/exodusd/txbuilder/mocks"
)

const (
	databaseFileName = "dispatch.leveldb"
	defaultRate      = txbuilder.FeeRate(1000)
)

// properties created by setupLedger
const (
	managedId   property.Id = 3
	fixedId     property.Id = 4
	crowdsaleId property.Id = 5
	testId      property.Id = property.TestEcosystemStart + 3
	missingId   property.Id = 99
)

type environment struct {
	ctl        *gomock.Controller
	db         *storage.DB
	pending    *pending.Store
	wallet     *sigmamocks.MockWallet
	backend    *buildermocks.MockBackend
	fees       *txbuilder.FeePolicy
	dispatcher *dispatch.Dispatcher
}

func setupTestEnvironment(t *testing.T, autoCommit bool) *environment {
	fixtures.SetupTestLogger()

	db, err := storage.Open(fixtures.TempFile(databaseFileName), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	setupLedger(t, db)

	store, err := pending.New("", pending.DefaultTimeout)
	if nil != err {
		t.Fatalf("pending error: %s", err)
	}

	ctl := gomock.NewController(t)
	wallet := sigmamocks.NewMockWallet(ctl)
	backend := buildermocks.NewMockBackend(ctl)
	fees := txbuilder.NewFeePolicy(defaultRate)

	builder, err := txbuilder.New(backend, fees)
	if nil != err {
		t.Fatalf("builder error: %s", err)
	}

	d, err := dispatch.New(db, store, wallet, builder, autoCommit)
	if nil != err {
		t.Fatalf("dispatcher error: %s", err)
	}

	return &environment{
		ctl:        ctl,
		db:         db,
		pending:    store,
		wallet:     wallet,
		backend:    backend,
		fees:       fees,
		dispatcher: d,
	}
}

func teardownTestEnvironment(env *environment) {
	env.ctl.Finish()
	env.db.Close()
	fixtures.TeardownTestLogger()
}

// ledger contents:
//   denominations of managedId: 0 = 1 coin (mature), 1 = 2 coins
//   (3 confirmations), 2 = 5 coins (mature)
//   Seller has a sane offer on Exodus and an offer with an excessive
//   fee on TExodus; Receiver has an offer with a short window on TExodus
func setupLedger(t *testing.T, db *storage.DB) {
	properties := map[property.Id]*property.Info{
		property.Exodus: {
			Name:      "Exodus",
			Divisible: true,
			Fixed:     true,
		},
		property.TExodus: {
			Name:      "Test Exodus",
			Divisible: true,
			Fixed:     true,
		},
		managedId: {
			Name:      "Quantum Miner",
			Issuer:    fixtures.Issuer,
			Divisible: true,
			Managed:   true,
			Sigma:     property.SoftEnabled,
		},
		fixedId: {
			Name:      "Fixed Coin",
			Issuer:    fixtures.Issuer,
			Divisible: true,
			Fixed:     true,
		},
		crowdsaleId: {
			Name:      "Crowd",
			Issuer:    fixtures.Issuer,
			Divisible: true,
			Crowdsale: true,
		},
		testId: {
			Name:      "Test Token",
			Issuer:    fixtures.Issuer,
			Divisible: true,
			Managed:   true,
		},
	}
	for id, info := range properties {
		if err := db.PutProperty(id, info); nil != err {
			t.Fatalf("put property: %d  error: %s", id, err)
		}
	}

	balances := []struct {
		owner  address.Address
		id     property.Id
		amount int64
	}{
		{fixtures.Sender, property.Exodus, 10 * property.Coin},
		{fixtures.Sender, managedId, 1000 * property.Coin},
		{fixtures.Sender, fixedId, 50 * property.Coin},
		{fixtures.Seller, property.Exodus, 5 * property.Coin},
		{fixtures.Issuer, managedId, 10 * property.Coin},
	}
	for _, b := range balances {
		if err := db.SetBalance(b.owner, b.id, b.amount); nil != err {
			t.Fatalf("set balance error: %s", err)
		}
	}

	offers := []*ledger.Offer{
		{
			Seller:        fixtures.Seller,
			Property:      property.Exodus,
			AmountForSale: property.Coin,
			AmountDesired: property.Coin / 2,
			PaymentWindow: 20,
			MinFee:        5000,
		},
		{
			Seller:        fixtures.Seller,
			Property:      property.TExodus,
			AmountForSale: property.Coin,
			AmountDesired: property.Coin / 2,
			PaymentWindow: 20,
			MinFee:        property.Coin,
		},
		{
			Seller:        fixtures.Receiver,
			Property:      property.TExodus,
			AmountForSale: property.Coin,
			AmountDesired: property.Coin / 2,
			PaymentWindow: 5,
			MinFee:        1000,
		},
	}
	for _, offer := range offers {
		if err := db.PutOffer(offer); nil != err {
			t.Fatalf("put offer error: %s", err)
		}
	}

	denominations := []struct {
		value  int64
		height uint64
	}{
		{property.Coin, 100},
		{2 * property.Coin, 108},
		{5 * property.Coin, 100},
	}
	for _, d := range denominations {
		if _, err := db.AddDenomination(managedId, d.value, d.height); nil != err {
			t.Fatalf("add denomination error: %s", err)
		}
	}
	if err := db.SetHeight(110); nil != err {
		t.Fatalf("set height error: %s", err)
	}
}

func mintId(d sigma.Denomination, n byte) sigma.MintId {
	m := sigma.MintId{
		Property:     managedId,
		Denomination: d,
	}
	m.PublicKey[0] = n
	m.PublicKey[1] = byte(d)
	return m
}
