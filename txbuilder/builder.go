// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txbuilder

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/exodusd/address"
	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/payload"
	"github.com/bitmark-inc/exodusd/txid"
)

// InputMode - how the transaction is funded
type InputMode int

// funding modes
const (
	InputNormal InputMode = iota // spend outputs of the sender
	InputSigma                   // any wallet outputs, no sender
)

// Request - everything needed to build one transaction
//
// From is zero for shielded spends and To is zero when the action
// has no receiver
type Request struct {
	From            address.Address
	To              address.Address
	Redeem          address.Address
	ReferenceAmount int64
	Payload         payload.Packed
	Commit          bool
	InputMode       InputMode
}

// Result - txid when committed, otherwise the signed transaction
type Result struct {
	TxId   txid.Digest `json:"txid,omitempty"`
	RawHex string      `json:"hex,omitempty"`
}

// Backend - the base chain wallet that funds, signs and broadcasts
//
// a non-zero code means failure and the other results are ignored
type Backend interface {
	Build(request *Request, feeRate FeeRate) (fault.Code, txid.Digest, string)
}

// Builder - adapter from requests to the backend
type Builder struct {
	log     *logger.L
	backend Backend
	fees    *FeePolicy
}

// New - create a builder
func New(backend Backend, fees *FeePolicy) (*Builder, error) {
	log := logger.New("txbuilder")
	if nil == log {
		return nil, fault.InvalidLoggerChannel
	}
	return &Builder{
		log:     log,
		backend: backend,
		fees:    fees,
	}, nil
}

// Fees - the fee policy used by Build
func (b *Builder) Fees() *FeePolicy {
	return b.fees
}

// Build - fund, sign and optionally broadcast
func (b *Builder) Build(request *Request) (*Result, error) {
	if nil == request {
		return nil, fault.NilRequest
	}

	rate := b.fees.Current()
	b.log.Debugf("build: from: %s  to: %s  payload: %s  commit: %t  fee rate: %d", request.From, request.To, request.Payload, request.Commit, rate)

	code, tx, rawHex := b.backend.Build(request, rate)
	if fault.CodeSuccess != code {
		if !tx.IsZero() {
			b.log.Warnf("discard txid: %s  returned with code: %d", tx, code)
		}
		err := fault.FromResultCode(code)
		b.log.Errorf("build failed: code: %d  error: %s", code, err)
		return nil, err
	}

	if request.Commit {
		if tx.IsZero() {
			// the backend may have broadcast already, so this is not
			// a build failure
			b.log.Criticalf("commit succeeded without txid: from: %s  payload: %s", request.From, request.Payload)
			return nil, fault.CommittedWithoutTxId
		}
		b.log.Infof("committed: %s", tx)
		return &Result{TxId: tx}, nil
	}

	if "" == rawHex {
		return nil, fault.BuilderUnknown
	}
	b.log.Tracef("raw: %s", rawHex)
	return &Result{RawHex: rawHex}, nil
}

// BuildWithFee - Build with the fee rate replaced for this call only
func (b *Builder) BuildWithFee(rate FeeRate, request *Request) (*Result, error) {
	restore := b.fees.Override(rate)
	defer restore()

	return b.Build(request)
}
