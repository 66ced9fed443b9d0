// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package exodus

import (
	"github.com/bitmark-inc/exodusd/address"
	"github.com/bitmark-inc/exodusd/dispatch"
	"github.com/bitmark-inc/exodusd/payload"
	"github.com/bitmark-inc/exodusd/property"
)

// Property issuance
// -----------------

// MetadataArguments - fields common to all issuance methods
type MetadataArguments struct {
	From        string `json:"fromAddress"`
	Ecosystem   int64  `json:"ecosystem"`
	Type        int64  `json:"type"`
	PreviousId  int64  `json:"previousId"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Data        string `json:"data"`
}

// CrowdsaleArguments - arguments for SendIssuanceCrowdsale
type CrowdsaleArguments struct {
	MetadataArguments
	PropertyIdDesired int64  `json:"propertyIdDesired"`
	TokensPerUnit     string `json:"tokensPerUnit"`
	Deadline          int64  `json:"deadline"`
	EarlyBonus        int64  `json:"earlyBonus"`
	IssuerPercentage  int64  `json:"issuerPercentage"`
}

// FixedArguments - arguments for SendIssuanceFixed
type FixedArguments struct {
	MetadataArguments
	Amount string `json:"amount"`
	Sigma  *int64 `json:"sigma"`
}

// ManagedArguments - arguments for SendIssuanceManaged
type ManagedArguments struct {
	MetadataArguments
	Sigma *int64 `json:"sigma"`
}

// SendIssuanceCrowdsale - create a property sold for another property
func (exodus *Exodus) SendIssuanceCrowdsale(arguments *CrowdsaleArguments, reply *Reply) error {
	return exodus.submit("SendIssuanceCrowdsale", arguments, func() (dispatch.Request, error) {
		from, metadata, err := exodus.parseMetadata(&arguments.MetadataArguments)
		if nil != err {
			return nil, err
		}
		desired, err := ParsePropertyId(arguments.PropertyIdDesired)
		if nil != err {
			return nil, err
		}
		tokens, err := ParseAmount(arguments.TokensPerUnit, metadata.Type.IsDivisible())
		if nil != err {
			return nil, err
		}
		deadline, err := ParseDeadline(arguments.Deadline)
		if nil != err {
			return nil, err
		}
		earlyBonus, err := ParseEarlyBirdBonus(arguments.EarlyBonus)
		if nil != err {
			return nil, err
		}
		issuerPercentage, err := ParseIssuerBonus(arguments.IssuerPercentage)
		if nil != err {
			return nil, err
		}
		return &dispatch.IssuanceCrowdsale{
			From:             from,
			Metadata:         metadata,
			PropertyDesired:  desired,
			TokensPerUnit:    tokens,
			Deadline:         deadline,
			EarlyBonus:       earlyBonus,
			IssuerPercentage: issuerPercentage,
		}, nil
	}, reply)
}

// SendIssuanceFixed - create a property with a fixed supply
func (exodus *Exodus) SendIssuanceFixed(arguments *FixedArguments, reply *Reply) error {
	return exodus.submit("SendIssuanceFixed", arguments, func() (dispatch.Request, error) {
		from, metadata, err := exodus.parseMetadata(&arguments.MetadataArguments)
		if nil != err {
			return nil, err
		}
		amount, err := ParseAmount(arguments.Amount, metadata.Type.IsDivisible())
		if nil != err {
			return nil, err
		}
		status, err := ParseSigmaStatus(arguments.Sigma)
		if nil != err {
			return nil, err
		}
		return &dispatch.IssuanceFixed{
			From:     from,
			Metadata: metadata,
			Amount:   amount,
			Sigma:    status,
		}, nil
	}, reply)
}

// SendIssuanceManaged - create a property whose supply the issuer controls
func (exodus *Exodus) SendIssuanceManaged(arguments *ManagedArguments, reply *Reply) error {
	return exodus.submit("SendIssuanceManaged", arguments, func() (dispatch.Request, error) {
		from, metadata, err := exodus.parseMetadata(&arguments.MetadataArguments)
		if nil != err {
			return nil, err
		}
		status, err := ParseSigmaStatus(arguments.Sigma)
		if nil != err {
			return nil, err
		}
		return &dispatch.IssuanceManaged{
			From:     from,
			Metadata: metadata,
			Sigma:    status,
		}, nil
	}, reply)
}

func (exodus *Exodus) parseMetadata(arguments *MetadataArguments) (address.Address, payload.Metadata, error) {
	var m payload.Metadata

	from, err := ParseAddress(exodus.ChainName, arguments.From)
	if nil != err {
		return from, m, err
	}
	m.Ecosystem, err = ParseEcosystem(arguments.Ecosystem)
	if nil != err {
		return from, m, err
	}
	m.Type, err = ParsePropertyType(arguments.Type)
	if nil != err {
		return from, m, err
	}
	m.PreviousId, err = ParsePreviousPropertyId(arguments.PreviousId)
	if nil != err {
		return from, m, err
	}
	m.Category = ParseText(arguments.Category)
	m.Subcategory = ParseText(arguments.Subcategory)
	m.Name = ParseText(arguments.Name)
	m.URL = ParseText(arguments.URL)
	m.Data = ParseText(arguments.Data)

	return from, m, nil
}

// Managed property administration
// -------------------------------

// GrantArguments - arguments for SendGrant
//
// a blank To grants to the sender
type GrantArguments struct {
	From       string `json:"fromAddress"`
	To         string `json:"toAddress"`
	PropertyId int64  `json:"propertyId"`
	Amount     string `json:"amount"`
	Memo       string `json:"memo"`
}

// RevokeArguments - arguments for SendRevoke
type RevokeArguments struct {
	From       string `json:"fromAddress"`
	PropertyId int64  `json:"propertyId"`
	Amount     string `json:"amount"`
	Memo       string `json:"memo"`
}

// PropertyArguments - arguments for methods acting on a whole property
type PropertyArguments struct {
	From       string `json:"fromAddress"`
	PropertyId int64  `json:"propertyId"`
}

// ChangeIssuerArguments - arguments for SendChangeIssuer
type ChangeIssuerArguments struct {
	From       string `json:"fromAddress"`
	To         string `json:"toAddress"`
	PropertyId int64  `json:"propertyId"`
}

// FreezeArguments - arguments for SendFreeze and SendUnfreeze
type FreezeArguments struct {
	From       string `json:"fromAddress"`
	Target     string `json:"toAddress"`
	PropertyId int64  `json:"propertyId"`
	Amount     string `json:"amount"`
}

// SendGrant - issue new tokens of a managed property
func (exodus *Exodus) SendGrant(arguments *GrantArguments, reply *Reply) error {
	return exodus.submit("SendGrant", arguments, func() (dispatch.Request, error) {
		from, err := ParseAddress(exodus.ChainName, arguments.From)
		if nil != err {
			return nil, err
		}
		to, err := ParseAddressOrEmpty(exodus.ChainName, arguments.To)
		if nil != err {
			return nil, err
		}
		id, err := ParsePropertyId(arguments.PropertyId)
		if nil != err {
			return nil, err
		}
		amount, err := ParseAmount(arguments.Amount, exodus.divisible(id))
		if nil != err {
			return nil, err
		}
		return &dispatch.Grant{
			From:     from,
			To:       to,
			Property: id,
			Amount:   amount,
			Memo:     ParseText(arguments.Memo),
		}, nil
	}, reply)
}

// SendRevoke - destroy tokens of a managed property
func (exodus *Exodus) SendRevoke(arguments *RevokeArguments, reply *Reply) error {
	return exodus.submit("SendRevoke", arguments, func() (dispatch.Request, error) {
		from, id, err := exodus.parseProperty(arguments.From, arguments.PropertyId)
		if nil != err {
			return nil, err
		}
		amount, err := ParseAmount(arguments.Amount, exodus.divisible(id))
		if nil != err {
			return nil, err
		}
		return &dispatch.Revoke{
			From:     from,
			Property: id,
			Amount:   amount,
			Memo:     ParseText(arguments.Memo),
		}, nil
	}, reply)
}

// SendCloseCrowdsale - end an active crowdsale early
func (exodus *Exodus) SendCloseCrowdsale(arguments *PropertyArguments, reply *Reply) error {
	return exodus.submit("SendCloseCrowdsale", arguments, func() (dispatch.Request, error) {
		from, id, err := exodus.parseProperty(arguments.From, arguments.PropertyId)
		if nil != err {
			return nil, err
		}
		return &dispatch.CloseCrowdsale{From: from, Property: id}, nil
	}, reply)
}

// SendChangeIssuer - hand a property over to a new issuer
func (exodus *Exodus) SendChangeIssuer(arguments *ChangeIssuerArguments, reply *Reply) error {
	return exodus.submit("SendChangeIssuer", arguments, func() (dispatch.Request, error) {
		from, id, err := exodus.parseProperty(arguments.From, arguments.PropertyId)
		if nil != err {
			return nil, err
		}
		to, err := ParseAddress(exodus.ChainName, arguments.To)
		if nil != err {
			return nil, err
		}
		return &dispatch.ChangeIssuer{From: from, To: to, Property: id}, nil
	}, reply)
}

// SendEnableFreezing - allow the issuer to freeze balances
func (exodus *Exodus) SendEnableFreezing(arguments *PropertyArguments, reply *Reply) error {
	return exodus.submit("SendEnableFreezing", arguments, func() (dispatch.Request, error) {
		from, id, err := exodus.parseProperty(arguments.From, arguments.PropertyId)
		if nil != err {
			return nil, err
		}
		return &dispatch.EnableFreezing{From: from, Property: id}, nil
	}, reply)
}

// SendDisableFreezing - stop freezing and release frozen balances
func (exodus *Exodus) SendDisableFreezing(arguments *PropertyArguments, reply *Reply) error {
	return exodus.submit("SendDisableFreezing", arguments, func() (dispatch.Request, error) {
		from, id, err := exodus.parseProperty(arguments.From, arguments.PropertyId)
		if nil != err {
			return nil, err
		}
		return &dispatch.DisableFreezing{From: from, Property: id}, nil
	}, reply)
}

// SendFreeze - freeze the balance of an address
func (exodus *Exodus) SendFreeze(arguments *FreezeArguments, reply *Reply) error {
	return exodus.submit("SendFreeze", arguments, func() (dispatch.Request, error) {
		from, target, id, amount, err := exodus.parseFreeze(arguments)
		if nil != err {
			return nil, err
		}
		return &dispatch.Freeze{From: from, Target: target, Property: id, Amount: amount}, nil
	}, reply)
}

// SendUnfreeze - release a frozen balance
func (exodus *Exodus) SendUnfreeze(arguments *FreezeArguments, reply *Reply) error {
	return exodus.submit("SendUnfreeze", arguments, func() (dispatch.Request, error) {
		from, target, id, amount, err := exodus.parseFreeze(arguments)
		if nil != err {
			return nil, err
		}
		return &dispatch.Unfreeze{From: from, Target: target, Property: id, Amount: amount}, nil
	}, reply)
}

func (exodus *Exodus) parseProperty(fromText string, propertyId int64) (address.Address, property.Id, error) {
	from, err := ParseAddress(exodus.ChainName, fromText)
	if nil != err {
		return from, 0, err
	}
	id, err := ParsePropertyId(propertyId)
	return from, id, err
}

func (exodus *Exodus) parseFreeze(arguments *FreezeArguments) (address.Address, address.Address, property.Id, int64, error) {
	var target address.Address

	from, id, err := exodus.parseProperty(arguments.From, arguments.PropertyId)
	if nil != err {
		return from, target, id, 0, err
	}
	target, err = ParseAddress(exodus.ChainName, arguments.Target)
	if nil != err {
		return from, target, id, 0, err
	}
	amount, err := ParseAmount(arguments.Amount, exodus.divisible(id))
	return from, target, id, amount, err
}
