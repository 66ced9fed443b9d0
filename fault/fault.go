// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// request pipeline classes
type ParameterError GenericError
type PreconditionError GenericError
type BuildError GenericError
type BroadcastError GenericError
type InternalError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised            = ProcessError("already initialised")
	CertificateFileAlreadyExists  = ExistsError("certificate file already exists")
	ConfigurationNotTable         = ProcessError("configuration must return a table")
	DatabaseIsReadOnly            = ProcessError("database is read only")
	DuplicatePendingEffect        = ExistsError("duplicate pending effect")
	InvalidChain                  = ProcessError("invalid chain")
	InvalidCount                  = ProcessError("invalid count")
	InvalidDefine                 = ProcessError("define must be NAME=VALUE")
	InvalidIpAddress              = ProcessError("invalid IP address")
	InvalidLoggerChannel          = ProcessError("invalid logger channel")
	InvalidPortNumber             = ProcessError("invalid port number")
	InvalidPrivateKeyFile         = ProcessError("invalid private key file")
	InvalidPublicKeyFile          = ProcessError("invalid public key file")
	InvalidStructPointer          = ProcessError("invalid struct pointer")
	KeyFileAlreadyExists          = ExistsError("key file already exists")
	MintNotFound                  = NotFoundError("mint not found")
	MissingParameters             = ProcessError("missing parameters")
	NotAvailableDuringSynchronise = ProcessError("not available during synchronise")
	NotInitialised                = ProcessError("not initialised")
	RateLimiting                  = ProcessError("rate limiting")
	RecordTruncated               = ProcessError("record truncated")
	WrongPendingFileFormat        = ProcessError("wrong pending file format")
)

// malformed or out of range input
var (
	AlertExpiryOutOfRange       = ParameterError("Expiry value is out of range")
	AlertTypeOutOfRange         = ParameterError("Alert type is out of range")
	AmountNotPositive           = ParameterError("Invalid amount")
	AmountOutOfRange            = ParameterError("Invalid amount: out of range")
	DeadlineOutOfRange          = ParameterError("Deadline must be positive")
	DenominationOutOfRange      = ParameterError("invalid denomination")
	DenominationsNotObject      = ParameterError("denominations must be an object of id: amount")
	DExActionOutOfRange         = ParameterError("Invalid action (1,2,3 only)")
	DExFeeNegative              = ParameterError("Mininmum accept fee must be positive")
	DExPaymentWindowOutOfRange  = ParameterError("Payment window must be within 1-255 blocks")
	EarlyBirdBonusOutOfRange    = ParameterError("Early bird bonus must be in the range of 0-255 percent per week")
	EcosystemOutOfRange         = ParameterError("Invalid ecosystem (1 = main, 2 = test only)")
	HexDataInvalid              = ParameterError("raw transaction must be hexadecimal string")
	InvalidAddress              = ParameterError("Invalid address")
	InvalidAddressChecksum      = ParameterError("Invalid address checksum")
	IssuerBonusOutOfRange       = ParameterError("Issuer bonus must be in the range of 0-255 percent")
	MetaDExActionOutOfRange     = ParameterError("Invalid action (1,2,3,4 only)")
	MintConfirmationsOutOfRange = ParameterError("Minimum denomination confirmations must be positive")
	MintCountOutOfRange         = ParameterError("invalid amount of mints")
	PreviousPropertyIdNotZero   = ParameterError("Property appendment via previous property identifier is not yet supported")
	PropertyIdOutOfRange        = ParameterError("Property identifier is out of range")
	PropertyTypeOutOfRange      = ParameterError("Invalid property type (1 = indivisible, 2 = divisible only)")
	SigmaStatusInvalid          = ParameterError("Invalid sigma status")
	TooManyMints                = ParameterError("Too many mints in one transaction")
	UnknownAction               = ParameterError("unknown action")
	WrongNetworkForAddress      = ParameterError("wrong network for address")
)

// named validator failures
var (
	CrowdsaleNotActive         = PreconditionError("The specified crowdsale is not active")
	DenominationNotConfirmed   = PreconditionError("confirmations of the denomination is less than required")
	DenominationNotFound       = PreconditionError("Denomination is not valid")
	DenominationValueExists    = PreconditionError("Denomination with the same value already exists")
	DExFeeNotSane              = PreconditionError("Minimum accept fee is higher than the maximum sane value")
	DExOfferExists             = PreconditionError("Another active sell offer from the given address already exists on the distributed exchange")
	DExOfferNotFound           = PreconditionError("No matching sell offer on the distributed exchange")
	DExPaymentWindowNotSane    = PreconditionError("Payment window is shorter than the minimum sane value")
	DifferentEcosystems        = PreconditionError("Properties must be in the same ecosystem")
	InsufficientBalance        = PreconditionError("Sender has insufficient balance")
	InsufficientBalancePending = PreconditionError("Sender has insufficient balance (due to pending transactions)")
	InsufficientShieldedFunds  = PreconditionError("no spendable mint of the requested denomination")
	NotCrowdsale               = PreconditionError("Property was not created with a crowdsale")
	NotIssuer                  = PreconditionError("Sender is not authorized to perform this action")
	NotManagedProperty         = PreconditionError("Property identifier does not refer to a managed property")
	NotPrimaryToken            = PreconditionError("Invalid property identifier (only EXODUS and TEXODUS permitted)")
	PropertyNameEmpty          = PreconditionError("Property name must not be empty")
	PropertyNotFound           = PreconditionError("Property identifier does not exist")
	ReferenceAmountNotSane     = PreconditionError("Invalid reference amount")
	SameProperty               = PreconditionError("Property for sale and desired property must not be equal")
	SigmaNotEnabled            = PreconditionError("Property has not enabled Sigma")
	SigmaStatusNotAllowed      = PreconditionError("Sigma status is not accepted")
	TooManyDenominations       = PreconditionError("No more room for new denomination")
)

// transaction builder failures
var (
	BuilderCreateTransaction = BuildError("Error creating transaction")
	BuilderEncoding          = BuildError("Error with payload encoding")
	BuilderInputSelection    = BuildError("Error choosing inputs for the send transaction")
	BuilderInsufficientFunds = BuildError("Insufficient funds in the wallet")
	BuilderRedeemIllegal     = BuildError("Error with redemption address")
	BuilderSignTransaction   = BuildError("Error signing transaction")
	BuilderUnknown           = BuildError("Unknown error building transaction")
	BuilderWalletAccess      = BuildError("Error accessing wallet")
	BuilderWalletLocked      = BuildError("Wallet is locked")
	BroadcastRejected        = BroadcastError("Error committing transaction")
	ShieldedWalletFailure    = BuildError("Error accessing shielded wallet")
)

// invariant violations
var (
	CommittedWithoutTxId = InternalError("transaction committed without a transaction id")
	MissingPropertyInfo  = InternalError("property info missing for existing property")
	NilRequest           = InternalError("nil request")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string       { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e ProcessError) Error() string      { return string(e) }
func (e ParameterError) Error() string    { return string(e) }
func (e PreconditionError) Error() string { return string(e) }
func (e BuildError) Error() string        { return string(e) }
func (e BroadcastError) Error() string    { return string(e) }
func (e InternalError) Error() string     { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool       { var t ExistsError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool     { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool      { var t ProcessError; return errors.As(e, &t) }
func IsErrParameter(e error) bool    { var t ParameterError; return errors.As(e, &t) }
func IsErrPrecondition(e error) bool { var t PreconditionError; return errors.As(e, &t) }
func IsErrBuild(e error) bool        { var t BuildError; return errors.As(e, &t) }
func IsErrBroadcast(e error) bool    { var t BroadcastError; return errors.As(e, &t) }
func IsErrInternal(e error) bool     { var t InternalError; return errors.As(e, &t) }

// IsErrRollback - true for the failures that occur after local
// shielded state may have been created
func IsErrRollback(e error) bool {
	return IsErrBuild(e) || IsErrBroadcast(e)
}
