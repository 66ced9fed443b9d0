// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package property

// SigmaStatus - shielded value support of a property
type SigmaStatus uint8

// sigma status values
const (
	SoftDisabled SigmaStatus = 0
	SoftEnabled  SigmaStatus = 1
	HardDisabled SigmaStatus = 2
	HardEnabled  SigmaStatus = 3
)

// Valid - one of the defined values
func (s SigmaStatus) Valid() bool {
	return s <= HardEnabled
}

// IsEnabled - property accepts mints and spends
func (s SigmaStatus) IsEnabled() bool {
	return SoftEnabled == s || HardEnabled == s
}

func (s SigmaStatus) String() string {
	switch s {
	case SoftDisabled:
		return "SoftDisabled"
	case SoftEnabled:
		return "SoftEnabled"
	case HardDisabled:
		return "HardDisabled"
	case HardEnabled:
		return "HardEnabled"
	default:
		return "*unknown*"
	}
}
