// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payload

// Type - the transaction type field of a payload
type Type uint16

// transaction types - keep in numeric order
const (
	SimpleSend             Type = 0
	SendToOwners           Type = 3
	SendAll                Type = 4
	TradeOffer             Type = 20
	AcceptOffer            Type = 22
	MetaDExTrade           Type = 25
	MetaDExCancelPrice     Type = 26
	MetaDExCancelPair      Type = 27
	MetaDExCancelEcosystem Type = 28
	CreatePropertyFixed    Type = 50
	CreatePropertyVariable Type = 51
	CloseCrowdsale         Type = 53
	CreatePropertyManaged  Type = 54
	GrantPropertyTokens    Type = 55
	RevokePropertyTokens   Type = 56
	ChangeIssuerAddress    Type = 70
	EnableFreezing         Type = 71
	DisableFreezing        Type = 72
	FreezePropertyTokens   Type = 185
	UnfreezePropertyTokens Type = 186
	CreateDenomination     Type = 1025
	SimpleMint             Type = 1026
	SimpleSpend            Type = 1027
	Deactivation           Type = 65533
	Activation             Type = 65534
	Alert                  Type = 65535
)

// DEx sub actions
type DExAction uint8

// sell offer sub actions
const (
	DExNew    DExAction = 1
	DExUpdate DExAction = 2
	DExCancel DExAction = 3
)

// MaxTextLength - free text fields are cut to this many bytes
const MaxTextLength = 255

var typeNames = map[Type]string{
	SimpleSend:             "Simple Send",
	SendToOwners:           "Send To Owners",
	SendAll:                "Send All",
	TradeOffer:             "DEx Sell Offer",
	AcceptOffer:            "DEx Accept Offer",
	MetaDExTrade:           "MetaDEx trade",
	MetaDExCancelPrice:     "MetaDEx cancel-price",
	MetaDExCancelPair:      "MetaDEx cancel-pair",
	MetaDExCancelEcosystem: "MetaDEx cancel-ecosystem",
	CreatePropertyFixed:    "Create Property - Fixed",
	CreatePropertyVariable: "Create Property - Variable",
	CloseCrowdsale:         "Close Crowdsale",
	CreatePropertyManaged:  "Create Property - Manual",
	GrantPropertyTokens:    "Grant Property Tokens",
	RevokePropertyTokens:   "Revoke Property Tokens",
	ChangeIssuerAddress:    "Change Issuer Address",
	EnableFreezing:         "Enable Freezing",
	DisableFreezing:        "Disable Freezing",
	FreezePropertyTokens:   "Freeze Property Tokens",
	UnfreezePropertyTokens: "Unfreeze Property Tokens",
	CreateDenomination:     "Create Denomination",
	SimpleMint:             "Simple Mint",
	SimpleSpend:            "Simple Spend",
	Deactivation:           "Feature Deactivation",
	Activation:             "Feature Activation",
	Alert:                  "ALERT",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "*unknown*"
}

// Valid - sell offer sub action in range
func (a DExAction) Valid() bool {
	return a >= DExNew && a <= DExCancel
}
