// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// Code - numeric result code reported to clients
type Code int

// generic codes by class
const (
	CodeSuccess           Code = 0
	CodeMisc              Code = -1
	CodeTypeError         Code = -3
	CodeWalletError       Code = -4
	CodeInvalidAddress    Code = -5
	CodeInsufficientFunds Code = -6
	CodeInvalidParameter  Code = -8
	CodeWalletLocked      Code = -13
	CodePrecondition      Code = -25
	CodeInternal          Code = -32603
)

// codes returned by the transaction builder backend
const (
	CodeRedeemIllegal  Code = -30
	CodeWalletAccess   Code = -205
	CodeInputSelection Code = -206
	CodeCreateTx       Code = -211
	CodeSignTx         Code = -212
	CodeCommitTx       Code = -213
	CodeEncoding       Code = -250
)

// specific instances that do not use their class code
var specificCodes = map[error]Code{
	InvalidAddress:            CodeInvalidAddress,
	InvalidAddressChecksum:    CodeInvalidAddress,
	WrongNetworkForAddress:    CodeInvalidAddress,
	MetaDExActionOutOfRange:   CodeTypeError,
	HexDataInvalid:            CodeTypeError,
	BuilderRedeemIllegal:      CodeRedeemIllegal,
	BuilderWalletAccess:       CodeWalletAccess,
	BuilderInputSelection:     CodeInputSelection,
	BuilderCreateTransaction:  CodeCreateTx,
	BuilderSignTransaction:    CodeSignTx,
	BroadcastRejected:         CodeCommitTx,
	BuilderEncoding:           CodeEncoding,
	BuilderInsufficientFunds:  CodeInsufficientFunds,
	BuilderWalletLocked:       CodeWalletLocked,
	ShieldedWalletFailure:     CodeWalletError,
	InsufficientShieldedFunds: CodeInsufficientFunds,
}

// ResultCode - determine the client visible code for an error
func ResultCode(err error) Code {
	if nil == err {
		return CodeSuccess
	}

	for e := err; nil != e; e = errors.Unwrap(e) {
		switch e.(type) {
		case ParameterError, PreconditionError, BuildError, BroadcastError:
			if code, ok := specificCodes[e]; ok {
				return code
			}
		}
	}

	switch {
	case IsErrParameter(err):
		return CodeInvalidParameter
	case IsErrPrecondition(err):
		return CodePrecondition
	case IsErrBroadcast(err):
		return CodeCommitTx
	case IsErrBuild(err):
		return CodeCreateTx
	case IsErrInternal(err):
		return CodeInternal
	default:
		return CodeMisc
	}
}

// FromResultCode - convert a non-zero builder result code to an error
//
// returns nil for CodeSuccess
func FromResultCode(code Code) error {
	switch code {
	case CodeSuccess:
		return nil
	case CodeRedeemIllegal:
		return BuilderRedeemIllegal
	case CodeWalletAccess:
		return BuilderWalletAccess
	case CodeInputSelection:
		return BuilderInputSelection
	case CodeCreateTx:
		return BuilderCreateTransaction
	case CodeSignTx:
		return BuilderSignTransaction
	case CodeCommitTx:
		return BroadcastRejected
	case CodeEncoding:
		return BuilderEncoding
	case CodeInsufficientFunds:
		return BuilderInsufficientFunds
	case CodeWalletLocked:
		return BuilderWalletLocked
	default:
		return BuilderUnknown
	}
}
