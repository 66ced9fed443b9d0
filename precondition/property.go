// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package precondition

import (
	"github.com/bitmark-inc/exodusd/address"
	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/ledger"
	"github.com/bitmark-inc/exodusd/property"
)

// RequireExistingProperty - property must exist
func RequireExistingProperty(s ledger.Snapshot, id property.Id) error {
	if !s.PropertyExists(id) {
		return fault.PropertyNotFound
	}
	return nil
}

// RequirePrimaryToken - only the ecosystem base tokens are allowed
func RequirePrimaryToken(id property.Id) error {
	if !id.IsPrimaryToken() {
		return fault.NotPrimaryToken
	}
	return nil
}

// RequirePropertyName - issuance must name the property
func RequirePropertyName(name string) error {
	if "" == name {
		return fault.PropertyNameEmpty
	}
	return nil
}

// RequireSameEcosystem - both properties in one ecosystem
func RequireSameEcosystem(a property.Id, b property.Id) error {
	if a.Ecosystem() != b.Ecosystem() {
		return fault.DifferentEcosystems
	}
	return nil
}

// RequireEcosystem - property belongs to the given ecosystem
func RequireEcosystem(e property.Ecosystem, id property.Id) error {
	if e != id.Ecosystem() {
		return fault.DifferentEcosystems
	}
	return nil
}

// RequireDifferentIds - a pair must not trade a property for itself
func RequireDifferentIds(a property.Id, b property.Id) error {
	if a == b {
		return fault.SameProperty
	}
	return nil
}

// RequireManagedProperty - property supply is issuer controlled
func RequireManagedProperty(s ledger.Snapshot, id property.Id) error {
	info, err := info(s, id)
	if nil != err {
		return err
	}
	if info.Fixed || !info.Managed {
		return fault.NotManagedProperty
	}
	return nil
}

// RequireCrowdsale - property was issued by a crowdsale
func RequireCrowdsale(s ledger.Snapshot, id property.Id) error {
	info, err := info(s, id)
	if nil != err {
		return err
	}
	if info.Fixed || info.Managed || !info.Crowdsale {
		return fault.NotCrowdsale
	}
	return nil
}

// RequireActiveCrowdsale - the crowdsale still accepts purchases
func RequireActiveCrowdsale(s ledger.Snapshot, id property.Id) error {
	info, err := info(s, id)
	if nil != err {
		return err
	}
	if !info.CrowdsaleActive {
		return fault.CrowdsaleNotActive
	}
	return nil
}

// RequireTokenIssuer - sender is the current issuer
func RequireTokenIssuer(s ledger.Snapshot, sender address.Address, id property.Id) error {
	info, err := info(s, id)
	if nil != err {
		return err
	}
	if sender != info.Issuer {
		return fault.NotIssuer
	}
	return nil
}

// info of a property already checked to exist
func info(s ledger.Snapshot, id property.Id) (*property.Info, error) {
	info, err := s.PropertyInfo(id)
	if nil != err {
		return nil, err
	}
	if nil == info {
		return nil, fault.MissingPropertyInfo
	}
	return info, nil
}
