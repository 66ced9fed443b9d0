// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package exodus

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/exodusd/dispatch"
	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/ledger"
	"github.com/bitmark-inc/exodusd/mode"
	"github.com/bitmark-inc/exodusd/pending"
	"github.com/bitmark-inc/exodusd/property"
	"github.com/bitmark-inc/exodusd/rpc/ratelimit"
	"github.com/bitmark-inc/exodusd/sigma"
	"github.com/bitmark-inc/exodusd/txbuilder"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitExodus = 100
	rateBurstExodus = 50

	// listing methods are charged per item returned
	rateLimitList = 2000
	rateBurstList = maximumPendingCount
)

// Dispatcher - runs a typed request through validation, encoding and build
type Dispatcher interface {
	Dispatch(dispatch.Request) (*txbuilder.Result, error)
}

// MintLister - read access to the shielded mint store
type MintLister interface {
	List(property.Id) ([]sigma.MintInfo, error)
}

// Exodus - type for RPC
type Exodus struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	ListLimiter  *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	ChainName    string
	Snapshot     ledger.Snapshot
	Dispatcher   Dispatcher
	Pending      pending.Ledger
	Mints        MintLister

	// confirmations a mint denomination needs when the client gives none
	MintConfirmations int
}

// New - create the transaction creation service
//
// mints may be nil when no shielded wallet is configured
func New(log *logger.L,
	isNormalMode func(mode.Mode) bool,
	chainName string,
	snapshot ledger.Snapshot,
	dispatcher Dispatcher,
	pendingLedger pending.Ledger,
	mints MintLister,
) *Exodus {
	return &Exodus{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitExodus, rateBurstExodus),
		ListLimiter:  rate.NewLimiter(rateLimitList, rateBurstList),
		IsNormalMode: isNormalMode,
		ChainName:    chainName,
		Snapshot:     snapshot,
		Dispatcher:   dispatcher,
		Pending:      pendingLedger,
		Mints:        mints,

		MintConfirmations: dispatch.DefaultMintConfirmations,
	}
}

// Reply - txid when committed, raw transaction hex otherwise
type Reply struct {
	Result string `json:"result"`
}

// Error - failure reported to the client with its result code
type Error struct {
	Code    fault.Code `json:"code"`
	Message string     `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// ParseError - recover code and message from a reply error string
//
// strings without a code are reported as CodeMisc
func ParseError(s string) *Error {
	n := strings.Index(s, ": ")
	if n > 0 {
		if code, err := strconv.Atoi(s[:n]); nil == err {
			return &Error{Code: fault.Code(code), Message: s[n+2:]}
		}
	}
	return &Error{Code: fault.CodeMisc, Message: s}
}

func replyError(err error) error {
	if nil == err {
		return nil
	}
	return &Error{
		Code:    fault.ResultCode(err),
		Message: err.Error(),
	}
}

// common entry for every transaction creating method
func (exodus *Exodus) submit(method string, arguments interface{}, parse func() (dispatch.Request, error), reply *Reply) error {
	if err := ratelimit.Limit(exodus.Limiter); err != nil {
		return err
	}

	log := exodus.Log
	log.Infof("Exodus.%s: %+v", method, arguments)

	if !exodus.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	request, err := parse()
	if nil != err {
		log.Debugf("%s: parameter error: %s", method, err)
		return replyError(err)
	}

	result, err := exodus.Dispatcher.Dispatch(request)
	if nil != err {
		log.Debugf("%s: error: %s", method, err)
		return replyError(err)
	}

	if result.TxId.IsZero() {
		reply.Result = result.RawHex
	} else {
		reply.Result = result.TxId.String()
	}
	log.Debugf("%s: result: %s", method, reply.Result)

	return nil
}

// divisibility used to scale an amount; unknown properties scale as
// divisible and are rejected later by the existence check
func (exodus *Exodus) divisible(id property.Id) bool {
	info, err := exodus.Snapshot.PropertyInfo(id)
	if nil != err || nil == info {
		return true
	}
	return info.Divisible
}
