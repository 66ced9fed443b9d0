// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payload

import (
	"github.com/bitmark-inc/exodusd/address"
	"github.com/bitmark-inc/exodusd/property"
	"github.com/bitmark-inc/exodusd/sigma"
)

// Metadata - descriptive fields shared by all issuance types
type Metadata struct {
	Ecosystem   property.Ecosystem `json:"ecosystem"`
	Type        property.Type      `json:"type"`
	PreviousId  property.Id        `json:"previousId"`
	Category    string             `json:"category"`
	Subcategory string             `json:"subcategory"`
	Name        string             `json:"name"`
	URL         string             `json:"url"`
	Data        string             `json:"data"`
}

// CreateSimpleSend - transfer an amount of a single property
func CreateSimpleSend(id property.Id, amount int64) Packed {
	buffer := header(0, SimpleSend, 12)
	buffer = appendUint32(buffer, uint32(id))
	return appendInt64(buffer, amount)
}

// CreateSendAll - transfer every token of an ecosystem
func CreateSendAll(ecosystem property.Ecosystem) Packed {
	buffer := header(0, SendAll, 1)
	return appendUint8(buffer, uint8(ecosystem))
}

// CreateDExSell - place, update or cancel a sell offer
func CreateDExSell(id property.Id, amountForSale int64, amountDesired int64, paymentWindow uint8, minFee int64, action DExAction) Packed {
	buffer := header(1, TradeOffer, 30)
	buffer = appendUint32(buffer, uint32(id))
	buffer = appendInt64(buffer, amountForSale)
	buffer = appendInt64(buffer, amountDesired)
	buffer = appendUint8(buffer, paymentWindow)
	buffer = appendInt64(buffer, minFee)
	return appendUint8(buffer, uint8(action))
}

// CreateDExAccept - accept a sell offer
func CreateDExAccept(id property.Id, amount int64) Packed {
	buffer := header(0, AcceptOffer, 12)
	buffer = appendUint32(buffer, uint32(id))
	return appendInt64(buffer, amount)
}

// CreateSendToOwners - distribute an amount to all holders of a property
//
// the distribution property is only encoded when it differs
func CreateSendToOwners(id property.Id, amount int64, distribution property.Id) Packed {
	if distribution == id {
		buffer := header(0, SendToOwners, 12)
		buffer = appendUint32(buffer, uint32(id))
		return appendInt64(buffer, amount)
	}
	buffer := header(1, SendToOwners, 16)
	buffer = appendUint32(buffer, uint32(id))
	buffer = appendInt64(buffer, amount)
	return appendUint32(buffer, uint32(distribution))
}

// CreateIssuanceFixed - new property with a fixed supply
func CreateIssuanceFixed(m Metadata, amount int64, status *property.SigmaStatus) Packed {
	buffer := issuanceHeader(m, CreatePropertyFixed, status)
	buffer = appendInt64(buffer, amount)
	return appendSigma(buffer, status)
}

// CreateIssuanceVariable - new property issued through a crowdsale
func CreateIssuanceVariable(m Metadata, desired property.Id, tokensPerUnit int64, deadline int64, earlyBonus uint8, issuerPercentage uint8) Packed {
	buffer := issuanceHeader(m, CreatePropertyVariable, nil)
	buffer = appendUint32(buffer, uint32(desired))
	buffer = appendInt64(buffer, tokensPerUnit)
	buffer = appendInt64(buffer, deadline)
	buffer = appendUint8(buffer, earlyBonus)
	return appendUint8(buffer, issuerPercentage)
}

// CreateIssuanceManaged - new property with issuer controlled supply
func CreateIssuanceManaged(m Metadata, status *property.SigmaStatus) Packed {
	buffer := issuanceHeader(m, CreatePropertyManaged, status)
	return appendSigma(buffer, status)
}

// CreateCloseCrowdsale - end an active crowdsale
func CreateCloseCrowdsale(id property.Id) Packed {
	return propertyOnly(CloseCrowdsale, id)
}

// CreateGrant - issue new tokens of a managed property
func CreateGrant(id property.Id, amount int64, memo string) Packed {
	buffer := header(0, GrantPropertyTokens, 13+len(memo))
	buffer = appendUint32(buffer, uint32(id))
	buffer = appendInt64(buffer, amount)
	return appendString(buffer, memo)
}

// CreateRevoke - destroy tokens of a managed property
func CreateRevoke(id property.Id, amount int64, memo string) Packed {
	buffer := header(0, RevokePropertyTokens, 13+len(memo))
	buffer = appendUint32(buffer, uint32(id))
	buffer = appendInt64(buffer, amount)
	return appendString(buffer, memo)
}

// CreateChangeIssuer - move issuer rights to the reference output
func CreateChangeIssuer(id property.Id) Packed {
	return propertyOnly(ChangeIssuerAddress, id)
}

// CreateEnableFreezing - allow the issuer to freeze addresses
func CreateEnableFreezing(id property.Id) Packed {
	return propertyOnly(EnableFreezing, id)
}

// CreateDisableFreezing - revoke freezing and unfreeze everything
func CreateDisableFreezing(id property.Id) Packed {
	return propertyOnly(DisableFreezing, id)
}

// CreateFreeze - freeze the tokens held by an address
//
// the amount field is carried for compatibility only
func CreateFreeze(id property.Id, amount int64, target address.Address) Packed {
	return freezeLike(FreezePropertyTokens, id, amount, target)
}

// CreateUnfreeze - release a frozen address
func CreateUnfreeze(id property.Id, amount int64, target address.Address) Packed {
	return freezeLike(UnfreezePropertyTokens, id, amount, target)
}

// CreateMetaDExTrade - place a token for token offer
func CreateMetaDExTrade(forSale property.Id, amountForSale int64, desired property.Id, amountDesired int64) Packed {
	return metaDEx(MetaDExTrade, forSale, amountForSale, desired, amountDesired)
}

// CreateMetaDExCancelPrice - cancel offers at an exact price
func CreateMetaDExCancelPrice(forSale property.Id, amountForSale int64, desired property.Id, amountDesired int64) Packed {
	return metaDEx(MetaDExCancelPrice, forSale, amountForSale, desired, amountDesired)
}

// CreateMetaDExCancelPair - cancel all offers for a pair
func CreateMetaDExCancelPair(forSale property.Id, desired property.Id) Packed {
	buffer := header(0, MetaDExCancelPair, 8)
	buffer = appendUint32(buffer, uint32(forSale))
	return appendUint32(buffer, uint32(desired))
}

// CreateMetaDExCancelEcosystem - cancel all offers in an ecosystem
func CreateMetaDExCancelEcosystem(ecosystem property.Ecosystem) Packed {
	buffer := header(0, MetaDExCancelEcosystem, 1)
	return appendUint8(buffer, uint8(ecosystem))
}

// CreateDeactivation - disable a consensus feature
func CreateDeactivation(featureId uint16) Packed {
	buffer := header(0, Deactivation, 2)
	return appendUint16(buffer, featureId)
}

// CreateActivation - schedule a consensus feature
func CreateActivation(featureId uint16, block uint32, minClientVersion uint32) Packed {
	buffer := header(0, Activation, 10)
	buffer = appendUint16(buffer, featureId)
	buffer = appendUint32(buffer, block)
	return appendUint32(buffer, minClientVersion)
}

// CreateAlert - network wide alert message
func CreateAlert(alertType uint16, expiry uint32, message string) Packed {
	buffer := header(0, Alert, 7+len(message))
	buffer = appendUint16(buffer, alertType)
	buffer = appendUint32(buffer, expiry)
	return appendString(buffer, message)
}

// CreateCreateDenomination - add a shielded face value to a property
func CreateCreateDenomination(id property.Id, value int64) Packed {
	buffer := header(0, CreateDenomination, 12)
	buffer = appendUint32(buffer, uint32(id))
	return appendInt64(buffer, value)
}

// CreateSimpleMint - publish the commitments of new mints
//
// mints are encoded in the given order; the caller ensures there
// are at most sigma.MaxMints of them
func CreateSimpleMint(id property.Id, mints []sigma.MintId) Packed {
	buffer := header(0, SimpleMint, 5+len(mints)*(1+sigma.PublicKeyLength))
	buffer = appendUint32(buffer, uint32(id))
	buffer = appendUint8(buffer, uint8(len(mints)))
	for _, m := range mints {
		buffer = appendUint8(buffer, uint8(m.Denomination))
		buffer = append(buffer, m.PublicKey[:]...)
	}
	return buffer
}

// CreateSimpleSpend - spend one mint through its proof
func CreateSimpleSpend(spend *sigma.Spend) Packed {
	buffer := header(0, SimpleSpend, 13+len(spend.Proof))
	buffer = appendUint32(buffer, uint32(spend.Mint.Property))
	buffer = appendUint8(buffer, uint8(spend.Mint.Denomination))
	buffer = appendUint32(buffer, spend.Group)
	buffer = appendUint32(buffer, spend.GroupSize)
	return append(buffer, spend.Proof...)
}

// the sigma status selects version 1 of an issuance
func issuanceHeader(m Metadata, t Type, status *property.SigmaStatus) Packed {
	version := uint16(0)
	if nil != status {
		version = 1
	}
	size := 7 + len(m.Category) + len(m.Subcategory) + len(m.Name) + len(m.URL) + len(m.Data) + 5 + 26
	buffer := header(version, t, size)
	buffer = appendUint8(buffer, uint8(m.Ecosystem))
	buffer = appendUint16(buffer, uint16(m.Type))
	buffer = appendUint32(buffer, uint32(m.PreviousId))
	buffer = appendString(buffer, m.Category)
	buffer = appendString(buffer, m.Subcategory)
	buffer = appendString(buffer, m.Name)
	buffer = appendString(buffer, m.URL)
	return appendString(buffer, m.Data)
}

func appendSigma(buffer Packed, status *property.SigmaStatus) Packed {
	if nil == status {
		return buffer
	}
	return appendUint8(buffer, uint8(*status))
}

func propertyOnly(t Type, id property.Id) Packed {
	buffer := header(0, t, 4)
	return appendUint32(buffer, uint32(id))
}

func freezeLike(t Type, id property.Id, amount int64, target address.Address) Packed {
	buffer := header(0, t, 12+address.PayloadLength)
	buffer = appendUint32(buffer, uint32(id))
	buffer = appendInt64(buffer, amount)
	return append(buffer, target.Payload()...)
}

func metaDEx(t Type, forSale property.Id, amountForSale int64, desired property.Id, amountDesired int64) Packed {
	buffer := header(0, t, 24)
	buffer = appendUint32(buffer, uint32(forSale))
	buffer = appendInt64(buffer, amountForSale)
	buffer = appendUint32(buffer, uint32(desired))
	return appendInt64(buffer, amountDesired)
}
