// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package exodus

import (
	"encoding/hex"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/exodusd/address"
	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/payload"
	"github.com/bitmark-inc/exodusd/property"
	"github.com/bitmark-inc/exodusd/sigma"
)

// MetaDEx trade sub actions accepted by the legacy Trade method
const (
	MetaDExAdd             = 1
	MetaDExCancelAtPrice   = 2
	MetaDExCancelPair      = 3
	MetaDExCancelEcosystem = 4
)

// ParseAddress - a required address on the configured chain
func ParseAddress(chainName string, text string) (address.Address, error) {
	return address.Parse(chainName, strings.TrimSpace(text))
}

// ParseAddressOrEmpty - an optional address, zero when blank
func ParseAddressOrEmpty(chainName string, text string) (address.Address, error) {
	if "" == strings.TrimSpace(text) {
		return address.Address{}, nil
	}
	return ParseAddress(chainName, text)
}

// ParseAmount - a positive amount scaled by divisibility
func ParseAmount(text string, divisible bool) (int64, error) {
	return property.ParseAmount(text, divisible)
}

// ParseReferenceAmount - optional base chain amount, zero selects the minimum
func ParseReferenceAmount(text string) (int64, error) {
	if "" == strings.TrimSpace(text) {
		return 0, nil
	}
	return property.ParseAmount(text, true)
}

// ParsePropertyId - identifier in the range 1..4294967295
func ParsePropertyId(n int64) (property.Id, error) {
	if n < 1 || n > math.MaxUint32 {
		return 0, fault.PropertyIdOutOfRange
	}
	return property.Id(n), nil
}

// ParseEcosystem - main (1) or test (2)
func ParseEcosystem(n int64) (property.Ecosystem, error) {
	e := property.Ecosystem(n)
	if n < 0 || n > math.MaxUint8 || !e.Valid() {
		return 0, fault.EcosystemOutOfRange
	}
	return e, nil
}

// ParsePropertyType - indivisible (1) or divisible (2)
func ParsePropertyType(n int64) (property.Type, error) {
	t := property.Type(n)
	if n < 0 || n > math.MaxUint16 || !t.Valid() {
		return 0, fault.PropertyTypeOutOfRange
	}
	return t, nil
}

// ParsePreviousPropertyId - only zero is currently accepted
func ParsePreviousPropertyId(n int64) (property.Id, error) {
	if 0 != n {
		return 0, fault.PreviousPropertyIdNotZero
	}
	return 0, nil
}

// ParseText - free text cut to the encodable length
func ParseText(text string) string {
	return payload.Truncate(text)
}

// ParseDeadline - crowdsale end as a unix timestamp
func ParseDeadline(n int64) (int64, error) {
	if n < 0 {
		return 0, fault.DeadlineOutOfRange
	}
	return n, nil
}

// ParseEarlyBirdBonus - percent per week, 0..255
func ParseEarlyBirdBonus(n int64) (uint8, error) {
	if n < 0 || n > math.MaxUint8 {
		return 0, fault.EarlyBirdBonusOutOfRange
	}
	return uint8(n), nil
}

// ParseIssuerBonus - percent, 0..255
func ParseIssuerBonus(n int64) (uint8, error) {
	if n < 0 || n > math.MaxUint8 {
		return 0, fault.IssuerBonusOutOfRange
	}
	return uint8(n), nil
}

// ParseDExAction - new (1), update (2) or cancel (3)
func ParseDExAction(n int64) (payload.DExAction, error) {
	a := payload.DExAction(n)
	if n < 0 || n > math.MaxUint8 || !a.Valid() {
		return 0, fault.DExActionOutOfRange
	}
	return a, nil
}

// ParseDExPaymentWindow - blocks, 1..255
func ParseDExPaymentWindow(n int64) (uint8, error) {
	if n < 1 || n > math.MaxUint8 {
		return 0, fault.DExPaymentWindowOutOfRange
	}
	return uint8(n), nil
}

// ParseDExFee - minimum accept fee in base chain units, zero allowed
func ParseDExFee(text string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if nil != err {
		return 0, fault.DExFeeNegative
	}
	d = d.Shift(property.Scale).Truncate(0)
	if d.IsNegative() {
		return 0, fault.DExFeeNegative
	}
	if d.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return 0, fault.AmountOutOfRange
	}
	return d.IntPart(), nil
}

// ParseMetaDExAction - legacy trade action, 1..4
func ParseMetaDExAction(n int64) (uint8, error) {
	if n < MetaDExAdd || n > MetaDExCancelEcosystem {
		return 0, fault.MetaDExActionOutOfRange
	}
	return uint8(n), nil
}

// ParseSigmaDenomination - denomination index, 0..255
func ParseSigmaDenomination(n int64) (sigma.Denomination, error) {
	if n < 0 || n > math.MaxUint8 {
		return 0, fault.DenominationOutOfRange
	}
	return sigma.Denomination(n), nil
}

// ParseSigmaStatus - optional shielded status of a new property
func ParseSigmaStatus(n *int64) (*property.SigmaStatus, error) {
	if nil == n {
		return nil, nil
	}
	s := property.SigmaStatus(*n)
	if *n < 0 || *n > math.MaxUint8 || !s.Valid() {
		return nil, fault.SigmaStatusInvalid
	}
	return &s, nil
}

// ParseAlertType - 1..65535
func ParseAlertType(n int64) (uint16, error) {
	if n < 1 || n > math.MaxUint16 {
		return 0, fault.AlertTypeOutOfRange
	}
	return uint16(n), nil
}

// ParseAlertExpiry - 1..4294967295
func ParseAlertExpiry(n int64) (uint32, error) {
	if n < 1 || n > math.MaxUint32 {
		return 0, fault.AlertExpiryOutOfRange
	}
	return uint32(n), nil
}

// ParseHex - raw payload bytes
func ParseHex(text string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimSpace(text))
	if nil != err || 0 == len(b) {
		return nil, fault.HexDataInvalid
	}
	return b, nil
}
