// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package property

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/exodusd/fault"
)

// Scale - decimal places of a divisible amount
const Scale = 8

// Coin - one whole divisible unit
const Coin int64 = 100000000

var maxAmount = decimal.NewFromInt(math.MaxInt64)

// ParseAmount - convert a decimal string to base units
//
// digits beyond the scale are dropped, an indivisible amount drops
// any fraction; the result must be at least one base unit
func ParseAmount(text string, divisible bool) (int64, error) {
	text = strings.TrimSpace(text)
	if "" == text {
		return 0, fault.AmountNotPositive
	}

	d, err := decimal.NewFromString(text)
	if nil != err {
		return 0, fault.AmountNotPositive
	}
	if divisible {
		d = d.Shift(Scale)
	}
	d = d.Truncate(0)

	if d.GreaterThan(maxAmount) {
		return 0, fault.AmountOutOfRange
	}
	if d.LessThan(decimal.NewFromInt(1)) {
		return 0, fault.AmountNotPositive
	}
	return d.IntPart(), nil
}

// FormatAmount - convert base units to a decimal string
func FormatAmount(amount int64, divisible bool) string {
	if !divisible {
		return strconv.FormatInt(amount, 10)
	}
	return decimal.New(amount, -Scale).StringFixed(Scale)
}
