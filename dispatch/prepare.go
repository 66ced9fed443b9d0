// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dispatch

import (
	"errors"
	"fmt"

	"github.com/bitmark-inc/exodusd/address"
	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/payload"
	"github.com/bitmark-inc/exodusd/pending"
	"github.com/bitmark-inc/exodusd/precondition"
	"github.com/bitmark-inc/exodusd/property"
	"github.com/bitmark-inc/exodusd/sigma"
	"github.com/bitmark-inc/exodusd/txbuilder"
)

type check func() error

// run checks in order, stopping at the first failure
func require(checks ...check) error {
	for _, c := range checks {
		if err := c(); nil != err {
			return err
		}
	}
	return nil
}

// build from sender with no receiver, redeem or reference output
func senderOnly(from address.Address, packed payload.Packed) *plan {
	return &plan{
		build: txbuilder.Request{
			From:    from,
			Payload: packed,
		},
	}
}

func effect(owner address.Address, t payload.Type, id property.Id, amount int64, subtract bool) *pending.Effect {
	return &pending.Effect{
		Address:  owner.String(),
		Type:     t,
		Property: id,
		Amount:   amount,
		Subtract: subtract,
	}
}

func (d *Dispatcher) prepare(request Request) (*plan, error) {
	switch r := request.(type) {
	case *RawTx:
		return d.prepareRawTx(r)
	case *SimpleSend:
		return d.prepareSimpleSend(r)
	case *SendAll:
		return d.prepareSendAll(r)
	case *DExSell:
		return d.prepareDExSell(r)
	case *DExAccept:
		return d.prepareDExAccept(r)
	case *Trade:
		return d.prepareTrade(r)
	case *CancelTradesByPrice:
		return d.prepareCancelTradesByPrice(r)
	case *CancelTradesByPair:
		return d.prepareCancelTradesByPair(r)
	case *CancelAllTrades:
		return d.prepareCancelAllTrades(r)
	case *SendToOwners:
		return d.prepareSendToOwners(r)
	case *IssuanceCrowdsale:
		return d.prepareIssuanceCrowdsale(r)
	case *IssuanceFixed:
		return d.prepareIssuanceFixed(r)
	case *IssuanceManaged:
		return d.prepareIssuanceManaged(r)
	case *Grant:
		return d.prepareGrant(r)
	case *Revoke:
		return d.prepareRevoke(r)
	case *CloseCrowdsale:
		return d.prepareCloseCrowdsale(r)
	case *ChangeIssuer:
		return d.prepareChangeIssuer(r)
	case *EnableFreezing:
		return d.prepareIssuerAction(r.From, r.Property, payload.CreateEnableFreezing(r.Property))
	case *DisableFreezing:
		return d.prepareIssuerAction(r.From, r.Property, payload.CreateDisableFreezing(r.Property))
	case *Freeze:
		return d.prepareIssuerAction(r.From, r.Property, payload.CreateFreeze(r.Property, r.Amount, r.Target))
	case *Unfreeze:
		return d.prepareIssuerAction(r.From, r.Property, payload.CreateUnfreeze(r.Property, r.Amount, r.Target))
	case *Activation:
		return senderOnly(r.From, payload.CreateActivation(r.FeatureId, r.Block, r.MinClientVersion)), nil
	case *Deactivation:
		return senderOnly(r.From, payload.CreateDeactivation(r.FeatureId)), nil
	case *Alert:
		return d.prepareAlert(r)
	case *CreateDenomination:
		return d.prepareCreateDenomination(r)
	case *Mint:
		return d.prepareMint(r)
	case *Spend:
		return d.prepareSpend(r)
	default:
		return nil, fault.UnknownAction
	}
}

func (d *Dispatcher) prepareRawTx(r *RawTx) (*plan, error) {
	if 0 == len(r.Payload) {
		return nil, fault.HexDataInvalid
	}
	return &plan{
		build: txbuilder.Request{
			From:            r.From,
			To:              r.To,
			Redeem:          r.Redeem,
			ReferenceAmount: r.ReferenceAmount,
			Payload:         payload.Packed(r.Payload),
		},
	}, nil
}

func (d *Dispatcher) prepareSimpleSend(r *SimpleSend) (*plan, error) {
	err := require(
		func() error { return precondition.RequireExistingProperty(d.snapshot, r.Property) },
		func() error { return precondition.RequireBalance(d.snapshot, d.pending, r.From, r.Property, r.Amount) },
		func() error { return precondition.RequireSaneReferenceAmount(r.ReferenceAmount) },
	)
	if nil != err {
		return nil, err
	}
	return &plan{
		build: txbuilder.Request{
			From:            r.From,
			To:              r.To,
			Redeem:          r.Redeem,
			ReferenceAmount: r.ReferenceAmount,
			Payload:         payload.CreateSimpleSend(r.Property, r.Amount),
		},
		effect: effect(r.From, payload.SimpleSend, r.Property, r.Amount, true),
	}, nil
}

// no pending effect, the amount is not known until confirmation
func (d *Dispatcher) prepareSendAll(r *SendAll) (*plan, error) {
	err := precondition.RequireSaneReferenceAmount(r.ReferenceAmount)
	if nil != err {
		return nil, err
	}
	return &plan{
		build: txbuilder.Request{
			From:            r.From,
			To:              r.To,
			Redeem:          r.Redeem,
			ReferenceAmount: r.ReferenceAmount,
			Payload:         payload.CreateSendAll(r.Ecosystem),
		},
	}, nil
}

func (d *Dispatcher) prepareDExSell(r *DExSell) (*plan, error) {
	amountForSale := r.AmountForSale
	amountDesired := r.AmountDesired
	paymentWindow := r.PaymentWindow
	minFee := r.MinFee

	var err error
	switch r.Action {
	case payload.DExNew:
		err = require(
			func() error { return precondition.RequirePrimaryToken(r.Property) },
			func() error { return precondition.RequireBalance(d.snapshot, d.pending, r.From, r.Property, amountForSale) },
			func() error { return precondition.RequireNoOtherDExOffer(d.snapshot, r.From, r.Property) },
		)
	case payload.DExUpdate:
		err = require(
			func() error { return precondition.RequirePrimaryToken(r.Property) },
			func() error { return precondition.RequireBalance(d.snapshot, d.pending, r.From, r.Property, amountForSale) },
			func() error { return precondition.RequireMatchingDExOffer(d.snapshot, r.From, r.Property) },
		)
	case payload.DExCancel:
		amountForSale = 0
		amountDesired = 0
		paymentWindow = 0
		minFee = 0
		err = require(
			func() error { return precondition.RequirePrimaryToken(r.Property) },
			func() error { return precondition.RequireMatchingDExOffer(d.snapshot, r.From, r.Property) },
		)
	default:
		return nil, fault.DExActionOutOfRange
	}
	if nil != err {
		return nil, err
	}

	p := senderOnly(r.From, payload.CreateDExSell(r.Property, amountForSale, amountDesired, paymentWindow, minFee, r.Action))
	p.effect = effect(r.From, payload.TradeOffer, r.Property, amountForSale, r.Action <= payload.DExUpdate)
	return p, nil
}

// the fee rate is raised so the transaction pays the minimum fee the
// seller asked for
func (d *Dispatcher) prepareDExAccept(r *DExAccept) (*plan, error) {
	err := require(
		func() error { return precondition.RequirePrimaryToken(r.Property) },
		func() error { return precondition.RequireMatchingDExOffer(d.snapshot, r.To, r.Property) },
	)
	if nil != err {
		return nil, err
	}
	if !r.Override {
		err = require(
			func() error { return precondition.RequireSaneDExFee(d.snapshot, r.To, r.Property) },
			func() error { return precondition.RequireSaneDExPaymentWindow(d.snapshot, r.To, r.Property) },
		)
		if nil != err {
			return nil, err
		}
	}

	offer, ok := d.snapshot.Offer(r.To, r.Property)
	if !ok {
		return nil, fault.DExOfferNotFound
	}
	rate := txbuilder.FeeRateFromAcceptFee(offer.MinFee)

	return &plan{
		build: txbuilder.Request{
			From:    r.From,
			To:      r.To,
			Payload: payload.CreateDExAccept(r.Property, r.Amount),
		},
		feeRate: &rate,
	}, nil
}

func (d *Dispatcher) prepareTrade(r *Trade) (*plan, error) {
	err := require(
		func() error { return precondition.RequireExistingProperty(d.snapshot, r.PropertyForSale) },
		func() error { return precondition.RequireExistingProperty(d.snapshot, r.PropertyDesired) },
		func() error {
			return precondition.RequireBalance(d.snapshot, d.pending, r.From, r.PropertyForSale, r.AmountForSale)
		},
		func() error { return precondition.RequireSameEcosystem(r.PropertyForSale, r.PropertyDesired) },
		func() error { return precondition.RequireDifferentIds(r.PropertyForSale, r.PropertyDesired) },
	)
	if nil != err {
		return nil, err
	}
	p := senderOnly(r.From, payload.CreateMetaDExTrade(r.PropertyForSale, r.AmountForSale, r.PropertyDesired, r.AmountDesired))
	p.effect = effect(r.From, payload.MetaDExTrade, r.PropertyForSale, r.AmountForSale, true)
	return p, nil
}

func (d *Dispatcher) prepareCancelTradesByPrice(r *CancelTradesByPrice) (*plan, error) {
	err := d.requirePair(r.PropertyForSale, r.PropertyDesired)
	if nil != err {
		return nil, err
	}
	p := senderOnly(r.From, payload.CreateMetaDExCancelPrice(r.PropertyForSale, r.AmountForSale, r.PropertyDesired, r.AmountDesired))
	p.effect = effect(r.From, payload.MetaDExCancelPrice, r.PropertyForSale, r.AmountForSale, false)
	return p, nil
}

func (d *Dispatcher) prepareCancelTradesByPair(r *CancelTradesByPair) (*plan, error) {
	err := d.requirePair(r.PropertyForSale, r.PropertyDesired)
	if nil != err {
		return nil, err
	}
	p := senderOnly(r.From, payload.CreateMetaDExCancelPair(r.PropertyForSale, r.PropertyDesired))
	p.effect = effect(r.From, payload.MetaDExCancelPair, r.PropertyForSale, 0, false)
	return p, nil
}

// the ecosystem is recorded in the property field of the effect
func (d *Dispatcher) prepareCancelAllTrades(r *CancelAllTrades) (*plan, error) {
	p := senderOnly(r.From, payload.CreateMetaDExCancelEcosystem(r.Ecosystem))
	p.effect = effect(r.From, payload.MetaDExCancelEcosystem, property.Id(r.Ecosystem), 0, false)
	return p, nil
}

func (d *Dispatcher) requirePair(forSale property.Id, desired property.Id) error {
	return require(
		func() error { return precondition.RequireExistingProperty(d.snapshot, forSale) },
		func() error { return precondition.RequireExistingProperty(d.snapshot, desired) },
		func() error { return precondition.RequireSameEcosystem(forSale, desired) },
		func() error { return precondition.RequireDifferentIds(forSale, desired) },
	)
}

func (d *Dispatcher) prepareSendToOwners(r *SendToOwners) (*plan, error) {
	err := precondition.RequireBalance(d.snapshot, d.pending, r.From, r.Property, r.Amount)
	if nil != err {
		return nil, err
	}
	distribution := r.Distribution
	if 0 == distribution {
		distribution = r.Property
	}
	return &plan{
		build: txbuilder.Request{
			From:    r.From,
			Redeem:  r.Redeem,
			Payload: payload.CreateSendToOwners(r.Property, r.Amount, distribution),
		},
		effect: effect(r.From, payload.SendToOwners, r.Property, r.Amount, true),
	}, nil
}

func (d *Dispatcher) prepareIssuanceCrowdsale(r *IssuanceCrowdsale) (*plan, error) {
	err := require(
		func() error { return precondition.RequirePropertyName(r.Metadata.Name) },
		func() error { return precondition.RequireExistingProperty(d.snapshot, r.PropertyDesired) },
		func() error { return precondition.RequireEcosystem(r.Metadata.Ecosystem, r.PropertyDesired) },
	)
	if nil != err {
		return nil, err
	}
	packed := payload.CreateIssuanceVariable(r.Metadata, r.PropertyDesired, r.TokensPerUnit, r.Deadline, r.EarlyBonus, r.IssuerPercentage)
	return senderOnly(r.From, packed), nil
}

func (d *Dispatcher) prepareIssuanceFixed(r *IssuanceFixed) (*plan, error) {
	err := d.requireIssuance(r.Metadata.Name, r.Sigma)
	if nil != err {
		return nil, err
	}
	return senderOnly(r.From, payload.CreateIssuanceFixed(r.Metadata, r.Amount, r.Sigma)), nil
}

func (d *Dispatcher) prepareIssuanceManaged(r *IssuanceManaged) (*plan, error) {
	err := d.requireIssuance(r.Metadata.Name, r.Sigma)
	if nil != err {
		return nil, err
	}
	return senderOnly(r.From, payload.CreateIssuanceManaged(r.Metadata, r.Sigma)), nil
}

func (d *Dispatcher) requireIssuance(name string, status *property.SigmaStatus) error {
	err := precondition.RequirePropertyName(name)
	if nil != err {
		return err
	}
	if nil != status {
		return precondition.RequireSigmaStatus(*status)
	}
	return nil
}

func (d *Dispatcher) requireManagedIssuer(from address.Address, id property.Id) error {
	return require(
		func() error { return precondition.RequireExistingProperty(d.snapshot, id) },
		func() error { return precondition.RequireManagedProperty(d.snapshot, id) },
		func() error { return precondition.RequireTokenIssuer(d.snapshot, from, id) },
	)
}

func (d *Dispatcher) prepareGrant(r *Grant) (*plan, error) {
	err := d.requireManagedIssuer(r.From, r.Property)
	if nil != err {
		return nil, err
	}
	return &plan{
		build: txbuilder.Request{
			From:    r.From,
			To:      r.To,
			Payload: payload.CreateGrant(r.Property, r.Amount, r.Memo),
		},
	}, nil
}

func (d *Dispatcher) prepareRevoke(r *Revoke) (*plan, error) {
	err := require(
		func() error { return d.requireManagedIssuer(r.From, r.Property) },
		func() error { return precondition.RequireBalance(d.snapshot, d.pending, r.From, r.Property, r.Amount) },
	)
	if nil != err {
		return nil, err
	}
	return senderOnly(r.From, payload.CreateRevoke(r.Property, r.Amount, r.Memo)), nil
}

func (d *Dispatcher) prepareCloseCrowdsale(r *CloseCrowdsale) (*plan, error) {
	err := require(
		func() error { return precondition.RequireExistingProperty(d.snapshot, r.Property) },
		func() error { return precondition.RequireCrowdsale(d.snapshot, r.Property) },
		func() error { return precondition.RequireActiveCrowdsale(d.snapshot, r.Property) },
		func() error { return precondition.RequireTokenIssuer(d.snapshot, r.From, r.Property) },
	)
	if nil != err {
		return nil, err
	}
	return senderOnly(r.From, payload.CreateCloseCrowdsale(r.Property)), nil
}

func (d *Dispatcher) prepareChangeIssuer(r *ChangeIssuer) (*plan, error) {
	err := require(
		func() error { return precondition.RequireExistingProperty(d.snapshot, r.Property) },
		func() error { return precondition.RequireTokenIssuer(d.snapshot, r.From, r.Property) },
	)
	if nil != err {
		return nil, err
	}
	return &plan{
		build: txbuilder.Request{
			From:    r.From,
			To:      r.To,
			Payload: payload.CreateChangeIssuer(r.Property),
		},
	}, nil
}

// freezing controls share the managed issuer checks
func (d *Dispatcher) prepareIssuerAction(from address.Address, id property.Id, packed payload.Packed) (*plan, error) {
	err := d.requireManagedIssuer(from, id)
	if nil != err {
		return nil, err
	}
	return senderOnly(from, packed), nil
}

func (d *Dispatcher) prepareAlert(r *Alert) (*plan, error) {
	if 0 == r.AlertType {
		return nil, fault.AlertTypeOutOfRange
	}
	if 0 == r.Expiry {
		return nil, fault.AlertExpiryOutOfRange
	}
	return senderOnly(r.From, payload.CreateAlert(r.AlertType, r.Expiry, r.Message)), nil
}

func (d *Dispatcher) prepareCreateDenomination(r *CreateDenomination) (*plan, error) {
	err := require(
		func() error { return precondition.RequireExistingProperty(d.snapshot, r.Property) },
		func() error { return precondition.RequireTokenIssuer(d.snapshot, r.From, r.Property) },
		func() error { return precondition.RequireSigma(d.snapshot, r.Property) },
		func() error { return precondition.RequireDenominationCapacity(d.snapshot, r.Property) },
		func() error {
			info, err := d.snapshot.PropertyInfo(r.Property)
			if nil != err {
				return err
			}
			if nil == info {
				return fault.MissingPropertyInfo
			}
			return precondition.RequireUniqueDenomination(d.snapshot, r.Property, r.Value, info.Divisible)
		},
	)
	if nil != err {
		return nil, err
	}
	return senderOnly(r.From, payload.CreateCreateDenomination(r.Property, r.Value)), nil
}

// mints are created only after every check has passed
func (d *Dispatcher) prepareMint(r *Mint) (*plan, error) {
	if nil == d.wallet {
		return nil, fmt.Errorf("%w: no wallet", fault.ShieldedWalletFailure)
	}

	err := require(
		func() error { return precondition.RequireMintCount(r.Denominations) },
		func() error { return precondition.RequireExistingProperty(d.snapshot, r.Property) },
		func() error { return precondition.RequireSigma(d.snapshot, r.Property) },
	)
	if nil != err {
		return nil, err
	}
	for _, m := range r.Denominations {
		err := precondition.RequireMatureDenomination(d.snapshot, r.Property, m.Denomination, r.MinConfirmations)
		if nil != err {
			return nil, err
		}
	}

	values, err := d.snapshot.Denominations(r.Property)
	if nil != err {
		return nil, err
	}
	total, err := sigma.Sum(values, r.Denominations)
	if nil != err {
		return nil, err
	}
	err = precondition.RequireBalance(d.snapshot, d.pending, r.From, r.Property, total)
	if nil != err {
		return nil, err
	}

	batch, err := sigma.NewMintBatch(d.log, d.wallet, r.Property, r.Denominations)
	if nil != err {
		return nil, err
	}

	p := senderOnly(r.From, payload.CreateSimpleMint(r.Property, batch.Mints()))
	p.batch = batch
	p.effect = effect(r.From, payload.SimpleMint, r.Property, total, true)
	return p, nil
}

// funded from any wallet output so the spend is not linked to an address
func (d *Dispatcher) prepareSpend(r *Spend) (*plan, error) {
	if nil == d.wallet {
		return nil, fmt.Errorf("%w: no wallet", fault.ShieldedWalletFailure)
	}

	err := require(
		func() error { return precondition.RequireExistingProperty(d.snapshot, r.Property) },
		func() error { return precondition.RequireExistingDenomination(d.snapshot, r.Property, r.Denomination) },
		func() error { return precondition.RequireSaneReferenceAmount(r.ReferenceAmount) },
	)
	if nil != err {
		return nil, err
	}

	values, err := d.snapshot.Denominations(r.Property)
	if nil != err {
		return nil, err
	}

	spend, err := d.wallet.CreateSpend(r.Property, r.Denomination)
	if nil != err {
		if errors.Is(err, fault.InsufficientShieldedFunds) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s", fault.ShieldedWalletFailure, err)
	}

	return &plan{
		build: txbuilder.Request{
			To:              r.To,
			ReferenceAmount: r.ReferenceAmount,
			Payload:         payload.CreateSimpleSpend(spend),
			InputMode:       txbuilder.InputSigma,
		},
		effect: &pending.Effect{
			Address:  pending.SpendAddress,
			Type:     payload.SimpleSpend,
			Property: r.Property,
			Amount:   values[r.Denomination],
			Subtract: false,
		},
		spend: spend,
	}, nil
}
