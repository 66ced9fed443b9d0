// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package basenode

import (
	"encoding/hex"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/exodusd/address"
	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/property"
	"github.com/bitmark-inc/exodusd/txbuilder"
	"github.com/bitmark-inc/exodusd/txid"
)

// protocol constants
const (
	markerHex        = "65786f647573" // "exodus"
	dustThreshold    = 546
	minConfirmations = 1
	maxConfirmations = 9999999
)

// transaction size estimates in bytes
const (
	baseSize   = 10
	inputSize  = 148
	outputSize = 34
	dataSize   = 11 // value, script length and OP_RETURN push
)

// base node wallet error codes with a specific meaning
const (
	walletInsufficientFunds = -6
	walletUnlockNeeded      = -13
)

type unspent struct {
	TxId          string          `json:"txid"`
	Vout          uint32          `json:"vout"`
	Address       string          `json:"address"`
	Amount        decimal.Decimal `json:"amount"`
	Confirmations int64           `json:"confirmations"`
	Spendable     bool            `json:"spendable"`
}

type input struct {
	TxId string `json:"txid"`
	Vout uint32 `json:"vout"`
}

type fundReply struct {
	Hex string          `json:"hex"`
	Fee decimal.Decimal `json:"fee"`
}

type signReply struct {
	Hex      string `json:"hex"`
	Complete bool   `json:"complete"`
}

// one payment output of the transaction
type output struct {
	address string
	value   int64
}

// Build - fund, sign and optionally broadcast a payload transaction
//
// outputs are created as change to the sender, then the reference
// output, then the payload; Redeem is only checked since payloads
// are always carried by OP_RETURN
func (c *Client) Build(request *txbuilder.Request, feeRate txbuilder.FeeRate) (fault.Code, txid.Digest, string) {
	var none txid.Digest

	if 0 == len(request.Payload) {
		return fault.CodeEncoding, none, ""
	}
	if !request.Redeem.IsZero() && address.ScriptHash == request.Redeem.Kind(c.chain) {
		return fault.CodeRedeemIllegal, none, ""
	}
	if feeRate < c.minFeeRate {
		feeRate = c.minFeeRate
	}

	data := markerHex + hex.EncodeToString(request.Payload)

	var reference *output
	if !request.To.IsZero() {
		value := request.ReferenceAmount
		if value < dustThreshold {
			value = dustThreshold
		}
		reference = &output{address: request.To.String(), value: value}
	}

	var code fault.Code
	var rawHex string
	switch request.InputMode {
	case txbuilder.InputSigma:
		code, rawHex = c.fundFromWallet(reference, data, feeRate)
	default:
		code, rawHex = c.fundFromSender(request, reference, data, feeRate)
	}
	if fault.CodeSuccess != code {
		return code, none, ""
	}

	var signed signReply
	err := c.call("signrawtransaction", []interface{}{rawHex}, &signed)
	if nil != err {
		return c.classify(err, fault.CodeSignTx), none, ""
	}
	if !signed.Complete {
		c.log.Errorf("incomplete signature for: %s", request.From)
		return fault.CodeSignTx, none, ""
	}

	if !request.Commit {
		return fault.CodeSuccess, none, signed.Hex
	}

	var id string
	err = c.call("sendrawtransaction", []interface{}{signed.Hex}, &id)
	if nil != err {
		return c.classify(err, fault.CodeCommitTx), none, ""
	}

	tx, err := txid.FromHex(id)
	if nil != err {
		c.log.Criticalf("broadcast returned invalid txid: %q", id)
		return fault.CodeCommitTx, none, ""
	}
	return fault.CodeSuccess, tx, ""
}

// select confirmed outputs of the sender until the reference
// output and fee are covered
func (c *Client) fundFromSender(request *txbuilder.Request, reference *output, data string, feeRate txbuilder.FeeRate) (fault.Code, string) {
	if request.From.IsZero() {
		return fault.CodeInputSelection, ""
	}
	from := request.From.String()

	var unspents []unspent
	err := c.call("listunspent", []interface{}{minConfirmations, maxConfirmations, []string{from}}, &unspents)
	if nil != err {
		return c.classify(err, fault.CodeWalletAccess), ""
	}

	required := int64(0)
	payments := 1 // change
	if nil != reference {
		required = reference.value
		payments += 1
	}

	dataBytes := (len(data) / 2) + dataSize
	inputs := make([]input, 0, len(unspents))
	total := int64(0)
	fee := int64(0)
	funded := false

	for _, u := range unspents {
		if !u.Spendable || u.Confirmations < minConfirmations {
			continue
		}
		inputs = append(inputs, input{TxId: u.TxId, Vout: u.Vout})
		total += u.Amount.Shift(property.Scale).IntPart()

		size := baseSize + inputSize*len(inputs) + outputSize*payments + dataBytes
		fee = int64(size) * int64(feeRate) / 1000
		if total >= required+fee {
			funded = true
			break
		}
	}
	if 0 == len(inputs) {
		return fault.CodeInputSelection, ""
	}
	if !funded {
		c.log.Warnf("insufficient funds: %s  available: %d  required: %d", from, total, required+fee)
		return fault.CodeInsufficientFunds, ""
	}

	outputs := make([]output, 0, 2)
	change := total - required - fee
	if change >= dustThreshold {
		if nil != reference && reference.address == from {
			// the node rejects a repeated address
			reference.value += change
		} else {
			outputs = append(outputs, output{address: from, value: change})
		}
	}
	if nil != reference {
		outputs = append(outputs, *reference)
	}

	var rawHex string
	err = c.call("createrawtransaction", []interface{}{inputs, packOutputs(outputs, data)}, &rawHex)
	if nil != err {
		return c.classify(err, fault.CodeCreateTx), ""
	}
	return fault.CodeSuccess, rawHex
}

// let the wallet choose any inputs, there is no visible sender
func (c *Client) fundFromWallet(reference *output, data string, feeRate txbuilder.FeeRate) (fault.Code, string) {
	outputs := make([]output, 0, 1)
	if nil != reference {
		outputs = append(outputs, *reference)
	}

	var rawHex string
	err := c.call("createrawtransaction", []interface{}{[]input{}, packOutputs(outputs, data)}, &rawHex)
	if nil != err {
		return c.classify(err, fault.CodeCreateTx), ""
	}

	// change first keeps the reference output after it
	options := map[string]interface{}{
		"feeRate":        amount(int64(feeRate)),
		"changePosition": 0,
	}
	var funded fundReply
	err = c.call("fundrawtransaction", []interface{}{rawHex, options}, &funded)
	if nil != err {
		return c.classify(err, fault.CodeInputSelection), ""
	}
	c.log.Debugf("funded by wallet with fee: %s", funded.Fee)
	return fault.CodeSuccess, funded.Hex
}

// wallet conditions override the step that failed
func (c *Client) classify(err error, fallback fault.Code) fault.Code {
	c.log.Errorf("base node: %s", err)

	var e *rpcError
	if errors.As(err, &e) {
		switch e.Code {
		case walletInsufficientFunds:
			return fault.CodeInsufficientFunds
		case walletUnlockNeeded:
			return fault.CodeWalletLocked
		}
		return fallback
	}

	// could not reach the node at all
	return fault.CodeWalletAccess
}

// array form keeps the output order, one single key object per output
func packOutputs(outputs []output, data string) []map[string]interface{} {
	packed := make([]map[string]interface{}, 0, len(outputs)+1)
	for _, o := range outputs {
		packed = append(packed, map[string]interface{}{o.address: amount(o.value)})
	}
	return append(packed, map[string]interface{}{"data": data})
}

// coin amount as a JSON number with eight decimals
func amount(value int64) json.Number {
	return json.Number(decimal.New(value, -property.Scale).StringFixed(property.Scale))
}
