// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package precondition

import (
	"fmt"

	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/ledger"
	"github.com/bitmark-inc/exodusd/property"
	"github.com/bitmark-inc/exodusd/sigma"
)

// RequireSigma - property accepts shielded mints
func RequireSigma(s ledger.Snapshot, id property.Id) error {
	info, err := info(s, id)
	if nil != err {
		return err
	}
	if !info.Sigma.IsEnabled() {
		return fault.SigmaNotEnabled
	}
	return nil
}

// RequireSigmaStatus - an issuance may only request a defined status
func RequireSigmaStatus(status property.SigmaStatus) error {
	if !status.Valid() {
		return fault.SigmaStatusNotAllowed
	}
	return nil
}

// RequireExistingDenomination - denomination index is defined for the property
func RequireExistingDenomination(s ledger.Snapshot, id property.Id, denomination sigma.Denomination) error {
	values, err := s.Denominations(id)
	if nil != err {
		return err
	}
	if int(denomination) >= len(values) {
		return fault.DenominationNotFound
	}
	return nil
}

// RequireDenominationCapacity - there is room for another denomination
func RequireDenominationCapacity(s ledger.Snapshot, id property.Id) error {
	values, err := s.Denominations(id)
	if nil != err {
		return err
	}
	if len(values) >= property.MaxDenominations {
		return fault.TooManyDenominations
	}
	return nil
}

// RequireUniqueDenomination - no other denomination has the value
func RequireUniqueDenomination(s ledger.Snapshot, id property.Id, value int64, divisible bool) error {
	values, err := s.Denominations(id)
	if nil != err {
		return err
	}
	for _, v := range values {
		if v == value {
			return fmt.Errorf("%w: %s", fault.DenominationValueExists, property.FormatAmount(value, divisible))
		}
	}
	return nil
}

// RequireMintCount - the requested mints fit in one payload
func RequireMintCount(requests []sigma.MintRequest) error {
	n := 0
	for _, r := range requests {
		n += int(r.Count)
	}
	if n > sigma.MaxMints {
		return fmt.Errorf("%w: requested: %d  limit: %d", fault.TooManyMints, n, sigma.MaxMints)
	}
	return nil
}

// RequireMatureDenomination - the denomination was created at least
// minConfirms blocks ago
func RequireMatureDenomination(s ledger.Snapshot, id property.Id, denomination sigma.Denomination, minConfirms int) error {
	remaining, err := s.DenominationRemainingConfirmations(id, uint8(denomination), minConfirms)
	if nil != err {
		return err
	}
	if 0 != remaining {
		return fmt.Errorf("%w: denomination: %d  remaining: %d", fault.DenominationNotConfirmed, denomination, remaining)
	}
	return nil
}
