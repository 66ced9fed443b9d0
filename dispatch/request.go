// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dispatch

import (
	"github.com/bitmark-inc/exodusd/address"
	"github.com/bitmark-inc/exodusd/payload"
	"github.com/bitmark-inc/exodusd/property"
	"github.com/bitmark-inc/exodusd/sigma"
)

// DefaultMintConfirmations - confirmations a denomination needs
// before it can be minted when the request does not specify
const DefaultMintConfirmations = 6

// Request - a parsed and type checked action
//
// all amounts are already in the smallest unit of their property
type Request interface {
	Kind() Kind
}

// RawTx - broadcast a caller supplied payload without any checks
type RawTx struct {
	From            address.Address
	To              address.Address // optional
	Redeem          address.Address // optional
	ReferenceAmount int64
	Payload         []byte
}

// SimpleSend - transfer tokens to another address
type SimpleSend struct {
	From            address.Address
	To              address.Address
	Redeem          address.Address // optional
	Property        property.Id
	Amount          int64
	ReferenceAmount int64
}

// SendAll - transfer every token of an ecosystem
type SendAll struct {
	From            address.Address
	To              address.Address
	Redeem          address.Address // optional
	Ecosystem       property.Ecosystem
	ReferenceAmount int64
}

// DExSell - place, update or cancel a sell offer of a primary token
//
// for a cancel only From, Property and Action are used
type DExSell struct {
	From          address.Address
	Property      property.Id
	AmountForSale int64
	AmountDesired int64
	PaymentWindow uint8
	MinFee        int64
	Action        payload.DExAction
}

// DExAccept - accept the sell offer made by To
//
// Override skips the minimum fee and payment window sanity checks
type DExAccept struct {
	From     address.Address
	To       address.Address
	Property property.Id
	Amount   int64
	Override bool
}

// Trade - place an offer on the token exchange
type Trade struct {
	From            address.Address
	PropertyForSale property.Id
	AmountForSale   int64
	PropertyDesired property.Id
	AmountDesired   int64
}

// CancelTradesByPrice - cancel offers at exactly the given price
type CancelTradesByPrice struct {
	From            address.Address
	PropertyForSale property.Id
	AmountForSale   int64
	PropertyDesired property.Id
	AmountDesired   int64
}

// CancelTradesByPair - cancel all offers of a property pair
type CancelTradesByPair struct {
	From            address.Address
	PropertyForSale property.Id
	PropertyDesired property.Id
}

// CancelAllTrades - cancel every offer in an ecosystem
type CancelAllTrades struct {
	From      address.Address
	Ecosystem property.Ecosystem
}

// SendToOwners - distribute tokens to the holders of Distribution
type SendToOwners struct {
	From         address.Address
	Redeem       address.Address // optional
	Property     property.Id
	Amount       int64
	Distribution property.Id
}

// IssuanceCrowdsale - create a property sold for another property
type IssuanceCrowdsale struct {
	From             address.Address
	Metadata         payload.Metadata
	PropertyDesired  property.Id
	TokensPerUnit    int64
	Deadline         int64
	EarlyBonus       uint8
	IssuerPercentage uint8
}

// IssuanceFixed - create a property with a fixed supply
type IssuanceFixed struct {
	From     address.Address
	Metadata payload.Metadata
	Amount   int64
	Sigma    *property.SigmaStatus // optional
}

// IssuanceManaged - create a property whose supply the issuer controls
type IssuanceManaged struct {
	From     address.Address
	Metadata payload.Metadata
	Sigma    *property.SigmaStatus // optional
}

// Grant - issue new tokens of a managed property
type Grant struct {
	From     address.Address
	To       address.Address // optional, sender receives the tokens when zero
	Property property.Id
	Amount   int64
	Memo     string
}

// Revoke - destroy tokens of a managed property
type Revoke struct {
	From     address.Address
	Property property.Id
	Amount   int64
	Memo     string
}

// CloseCrowdsale - end an active crowdsale early
type CloseCrowdsale struct {
	From     address.Address
	Property property.Id
}

// ChangeIssuer - hand a property over to a new issuer
type ChangeIssuer struct {
	From     address.Address
	To       address.Address
	Property property.Id
}

// EnableFreezing - allow the issuer to freeze balances
type EnableFreezing struct {
	From     address.Address
	Property property.Id
}

// DisableFreezing - disallow freezing and unfreeze everything
type DisableFreezing struct {
	From     address.Address
	Property property.Id
}

// Freeze - freeze the balance of Target
//
// the amount is encoded but not interpreted by the protocol
type Freeze struct {
	From     address.Address
	Target   address.Address
	Property property.Id
	Amount   int64
}

// Unfreeze - unfreeze the balance of Target
type Unfreeze struct {
	From     address.Address
	Target   address.Address
	Property property.Id
	Amount   int64
}

// Activation - schedule a protocol feature
type Activation struct {
	From             address.Address
	FeatureId        uint16
	Block            uint32
	MinClientVersion uint32
}

// Deactivation - withdraw a protocol feature
type Deactivation struct {
	From      address.Address
	FeatureId uint16
}

// Alert - broadcast a protocol alert
type Alert struct {
	From      address.Address
	AlertType uint16
	Expiry    uint32
	Message   string
}

// CreateDenomination - add a shielded denomination to a property
type CreateDenomination struct {
	From     address.Address
	Property property.Id
	Value    int64
}

// Mint - convert tokens into shielded mints
//
// every denomination used must have at least MinConfirmations
// confirmations; the value is applied as given
type Mint struct {
	From             address.Address
	Property         property.Id
	Denominations    []sigma.MintRequest
	MinConfirmations int
}

// Spend - redeem one shielded mint to To
type Spend struct {
	To              address.Address
	Property        property.Id
	Denomination    sigma.Denomination
	ReferenceAmount int64
}

func (*RawTx) Kind() Kind               { return KindRawTx }
func (*SimpleSend) Kind() Kind          { return KindSimpleSend }
func (*SendAll) Kind() Kind             { return KindSendAll }
func (*DExSell) Kind() Kind             { return KindDExSell }
func (*DExAccept) Kind() Kind           { return KindDExAccept }
func (*Trade) Kind() Kind               { return KindTrade }
func (*CancelTradesByPrice) Kind() Kind { return KindCancelTradesByPrice }
func (*CancelTradesByPair) Kind() Kind  { return KindCancelTradesByPair }
func (*CancelAllTrades) Kind() Kind     { return KindCancelAllTrades }
func (*SendToOwners) Kind() Kind        { return KindSendToOwners }
func (*IssuanceCrowdsale) Kind() Kind   { return KindIssuanceCrowdsale }
func (*IssuanceFixed) Kind() Kind       { return KindIssuanceFixed }
func (*IssuanceManaged) Kind() Kind     { return KindIssuanceManaged }
func (*Grant) Kind() Kind               { return KindGrant }
func (*Revoke) Kind() Kind              { return KindRevoke }
func (*CloseCrowdsale) Kind() Kind      { return KindCloseCrowdsale }
func (*ChangeIssuer) Kind() Kind        { return KindChangeIssuer }
func (*EnableFreezing) Kind() Kind      { return KindEnableFreezing }
func (*DisableFreezing) Kind() Kind     { return KindDisableFreezing }
func (*Freeze) Kind() Kind              { return KindFreeze }
func (*Unfreeze) Kind() Kind            { return KindUnfreeze }
func (*Activation) Kind() Kind          { return KindActivation }
func (*Deactivation) Kind() Kind        { return KindDeactivation }
func (*Alert) Kind() Kind               { return KindAlert }
func (*CreateDenomination) Kind() Kind  { return KindCreateDenomination }
func (*Mint) Kind() Kind                { return KindMint }
func (*Spend) Kind() Kind               { return KindSpend }
