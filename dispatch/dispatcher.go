// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dispatch

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/ledger"
	"github.com/bitmark-inc/exodusd/pending"
	"github.com/bitmark-inc/exodusd/sigma"
	"github.com/bitmark-inc/exodusd/txbuilder"
	"github.com/bitmark-inc/exodusd/txid"
)

// Notifier - receives an event for every committed transaction
//
// satisfied by *messagebus.Queue
type Notifier interface {
	Send(command string, parameters ...[]byte) bool
}

// Dispatcher - runs requests one at a time
type Dispatcher struct {
	sync.Mutex

	log      *logger.L
	snapshot ledger.Snapshot
	pending  pending.Ledger
	wallet   sigma.Wallet
	builder  *txbuilder.Builder
	commit   bool
	notifier Notifier
}

// everything decided before the build
type plan struct {
	build   txbuilder.Request
	feeRate *txbuilder.FeeRate // override for this build only
	effect  *pending.Effect    // inserted after a successful commit
	batch   *sigma.Batch       // erased if the build fails
	spend   *sigma.Spend       // marked used after a successful commit
}

// New - create a dispatcher
//
// wallet may be nil, in which case mint and spend are refused
func New(snapshot ledger.Snapshot, pendingLedger pending.Ledger, wallet sigma.Wallet, builder *txbuilder.Builder, autoCommit bool) (*Dispatcher, error) {
	log := logger.New("dispatch")
	if nil == log {
		return nil, fault.InvalidLoggerChannel
	}
	if nil == snapshot || nil == pendingLedger || nil == builder {
		return nil, fault.MissingParameters
	}
	return &Dispatcher{
		log:      log,
		snapshot: snapshot,
		pending:  pendingLedger,
		wallet:   wallet,
		builder:  builder,
		commit:   autoCommit,
	}, nil
}

// SetNotifier - enable commit events
func (d *Dispatcher) SetNotifier(n Notifier) {
	d.Lock()
	d.notifier = n
	d.Unlock()
}

// SetAutoCommit - choose between broadcasting and returning raw transactions
func (d *Dispatcher) SetAutoCommit(autoCommit bool) {
	d.Lock()
	d.commit = autoCommit
	d.Unlock()
}

// AutoCommit - true if transactions are broadcast
func (d *Dispatcher) AutoCommit() bool {
	d.Lock()
	defer d.Unlock()
	return d.commit
}

// Dispatch - check, encode, build and commit one request
//
// returns the txid when committing, otherwise the raw transaction;
// an error is never accompanied by a result
func (d *Dispatcher) Dispatch(request Request) (*txbuilder.Result, error) {
	if nil == request {
		return nil, fault.NilRequest
	}

	d.Lock()
	defer d.Unlock()

	kind := request.Kind()

	p, err := d.prepare(request)
	if nil != err {
		d.log.Debugf("%s: rejected: %s", kind, err)
		return nil, err
	}
	p.build.Commit = d.commit

	var result *txbuilder.Result
	if nil != p.feeRate {
		result, err = d.builder.BuildWithFee(*p.feeRate, &p.build)
	} else {
		result, err = d.builder.Build(&p.build)
	}
	if nil != err {
		switch {
		case !fault.IsErrRollback(err):
			// outcome unknown, mints are kept in case the
			// transaction was broadcast
			d.log.Errorf("%s: build outcome unknown: %s", kind, err)
		case nil != p.batch:
			erased, created := p.batch.Rollback(d.log)
			d.log.Warnf("%s: build failed: %s  erased %d of %d mints", kind, err, erased, created)
		default:
			d.log.Warnf("%s: build failed: %s", kind, err)
		}
		return nil, err
	}

	if !d.commit {
		d.log.Debugf("%s: built raw transaction: %d bytes", kind, len(result.RawHex)/2)
		return result, nil
	}

	d.log.Infof("%s: committed: %s", kind, result.TxId)
	d.commitEffects(kind, p, result.TxId)

	return result, nil
}

// the transaction is already broadcast so failures here are only logged
func (d *Dispatcher) commitEffects(kind Kind, p *plan, tx txid.Digest) {
	if nil != p.spend {
		err := d.wallet.MarkUsed(p.spend.Mint, tx)
		if nil != err {
			d.log.Errorf("%s: mark used: %s  tx: %s  error: %s", kind, p.spend.Mint.PublicKey, tx, err)
		}
	}

	var packed []byte
	if nil != p.effect {
		effect := *p.effect
		effect.TxId = tx
		effect.Timestamp = time.Now()
		err := d.pending.Insert(effect)
		if nil != err {
			d.log.Errorf("%s: pending insert: %s  error: %s", kind, tx, err)
		} else if packed, err = json.Marshal(effect); nil != err {
			d.log.Errorf("%s: pending marshal: %s  error: %s", kind, tx, err)
			packed = nil
		}
	}

	if nil == d.notifier {
		return
	}
	if !d.notifier.Send("transaction", []byte(tx.String()), []byte(kind.String())) {
		d.log.Warnf("%s: notification dropped: %s", kind, tx)
	}
	if nil != packed && !d.notifier.Send("pending", []byte(tx.String()), packed) {
		d.log.Warnf("%s: pending notification dropped: %s", kind, tx)
	}
}
