// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package exodus

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/sigma"
)

// ParseMintDenominations - decode {"<denomination id>": <count>, ...}
//
// mints are created in the order the keys appear in the request
func ParseMintDenominations(raw json.RawMessage) ([]sigma.MintRequest, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	if t, err := decoder.Token(); nil != err || json.Delim('{') != t {
		return nil, fault.DenominationsNotObject
	}

	requests := make([]sigma.MintRequest, 0, 4)
	for decoder.More() {
		t, err := decoder.Token()
		if nil != err {
			return nil, fault.DenominationsNotObject
		}
		key, ok := t.(string)
		if !ok {
			return nil, fault.DenominationsNotObject
		}
		id, err := strconv.ParseUint(key, 10, 64)
		if nil != err || id > math.MaxUint8 {
			return nil, fault.DenominationOutOfRange
		}

		t, err = decoder.Token()
		if nil != err {
			return nil, fault.DenominationsNotObject
		}
		number, ok := t.(json.Number)
		if !ok {
			return nil, fault.MintCountOutOfRange
		}
		count, err := number.Int64()
		if nil != err || count < 0 || count > math.MaxUint8 {
			return nil, fault.MintCountOutOfRange
		}

		requests = append(requests, sigma.MintRequest{
			Denomination: sigma.Denomination(id),
			Count:        uint8(count),
		})
	}

	if t, err := decoder.Token(); nil != err || json.Delim('}') != t {
		return nil, fault.DenominationsNotObject
	}
	return requests, nil
}
