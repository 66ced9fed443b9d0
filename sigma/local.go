// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sigma

import (
	"crypto/rand"
	"math/big"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/iden3/go-iden3-crypto/poseidon"

	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/property"
	"github.com/bitmark-inc/exodusd/storage"
	"github.com/bitmark-inc/exodusd/txid"
	"github.com/bitmark-inc/exodusd/util"
)

// random secrets are kept below the poseidon field modulus
const secretLength = 31

// Secret - the private values behind one commitment
type Secret struct {
	Serial     *big.Int
	Randomness *big.Int
}

// Prover - produces the ownership proof for a spend
type Prover interface {
	Prove(secret Secret, group []PublicKey) ([]byte, error)
}

// LocalWallet - shielded secrets kept in the ledger database
type LocalWallet struct {
	sync.Mutex
	log    *logger.L
	pool   *storage.PoolHandle
	prover Prover
}

type mintRecord struct {
	property     property.Id
	denomination Denomination
	secret       Secret
	used         bool
	spendTx      txid.Digest
}

// NewLocalWallet - wallet over the mint pool of an open database
func NewLocalWallet(db *storage.DB, prover Prover) (*LocalWallet, error) {
	log := logger.New("sigma")
	if nil == log {
		return nil, fault.InvalidLoggerChannel
	}
	if nil == prover {
		prover = DisclosureProver{}
	}
	return &LocalWallet{
		log:    log,
		pool:   db.Pool.Mints,
		prover: prover,
	}, nil
}

// CreateMints - generate and store a secret per denomination
func (w *LocalWallet) CreateMints(id property.Id, denominations []Denomination) ([]MintId, error) {
	w.Lock()
	defer w.Unlock()

	mints := make([]MintId, 0, len(denominations))
	for _, d := range denominations {
		secret, err := newSecret()
		if nil != err {
			return mints, err
		}
		key, err := commitment(id, d, secret)
		if nil != err {
			return mints, err
		}

		r := mintRecord{
			property:     id,
			denomination: d,
			secret:       secret,
		}
		err = w.pool.Put(key[:], packMint(r))
		if nil != err {
			return mints, err
		}

		mints = append(mints, MintId{
			Property:     id,
			Denomination: d,
			PublicKey:    key,
		})
		w.log.Debugf("created mint: %s  property: %d  denomination: %d", key, id, d)
	}
	return mints, nil
}

// EraseMint - forget a mint that was never broadcast
func (w *LocalWallet) EraseMint(m MintId) error {
	w.Lock()
	defer w.Unlock()

	if !w.pool.Has(m.PublicKey[:]) {
		return fault.MintNotFound
	}
	w.log.Debugf("erase mint: %s", m.PublicKey)
	return w.pool.Delete(m.PublicKey[:])
}

// CreateSpend - prove ownership of an unused mint of the denomination
//
// the group is every known mint of the same property and denomination
func (w *LocalWallet) CreateSpend(id property.Id, d Denomination) (*Spend, error) {
	w.Lock()
	defer w.Unlock()

	var chosen *MintId
	var secret Secret
	group := make([]PublicKey, 0, 16)

	for _, element := range w.pool.Elements() {
		r, err := unpackMint(element.Value)
		if nil != err {
			return nil, err
		}
		if r.property != id || r.denomination != d {
			continue
		}

		var key PublicKey
		copy(key[:], element.Key)
		group = append(group, key)

		if nil == chosen && !r.used {
			chosen = &MintId{
				Property:     id,
				Denomination: d,
				PublicKey:    key,
			}
			secret = r.secret
		}
	}

	if nil == chosen {
		return nil, fault.InsufficientShieldedFunds
	}

	proof, err := w.prover.Prove(secret, group)
	if nil != err {
		return nil, err
	}

	return &Spend{
		Mint:      *chosen,
		Group:     0,
		GroupSize: uint32(len(group)),
		Proof:     proof,
	}, nil
}

// MarkUsed - record the transaction that spent a mint
func (w *LocalWallet) MarkUsed(m MintId, tx txid.Digest) error {
	w.Lock()
	defer w.Unlock()

	buffer := w.pool.Get(m.PublicKey[:])
	if nil == buffer {
		return fault.MintNotFound
	}
	r, err := unpackMint(buffer)
	if nil != err {
		return err
	}
	r.used = true
	r.spendTx = tx
	return w.pool.Put(m.PublicKey[:], packMint(r))
}

// MintInfo - one stored mint and its state
type MintInfo struct {
	Id      MintId      `json:"id"`
	Used    bool        `json:"used"`
	SpendTx txid.Digest `json:"spendTxId"`
}

// List - every stored mint of a property in commitment order
func (w *LocalWallet) List(id property.Id) ([]MintInfo, error) {
	w.Lock()
	defer w.Unlock()

	mints := make([]MintInfo, 0, 16)
	for _, element := range w.pool.Elements() {
		r, err := unpackMint(element.Value)
		if nil != err {
			return nil, err
		}
		if r.property != id {
			continue
		}
		info := MintInfo{
			Id: MintId{
				Property:     id,
				Denomination: r.denomination,
			},
			Used:    r.used,
			SpendTx: r.spendTx,
		}
		copy(info.Id.PublicKey[:], element.Key)
		mints = append(mints, info)
	}
	return mints, nil
}

// Balance - total value of the unused mints of a property
func (w *LocalWallet) Balance(id property.Id, values []int64) (int64, error) {
	mints, err := w.List(id)
	if nil != err {
		return 0, err
	}
	total := int64(0)
	for _, m := range mints {
		if m.Used {
			continue
		}
		if int(m.Id.Denomination) >= len(values) {
			return 0, fault.DenominationNotFound
		}
		total += values[m.Id.Denomination]
	}
	return total, nil
}

// DisclosureProver - reveals the serial and binds it to the group
//
// does not hide which group member is spent
type DisclosureProver struct{}

// Prove - serial ++ poseidon(serial, randomness, group accumulator)
func (DisclosureProver) Prove(secret Secret, group []PublicKey) ([]byte, error) {
	acc := big.NewInt(0)
	for _, key := range group {
		h, err := poseidon.Hash([]*big.Int{acc, new(big.Int).SetBytes(key[:])})
		if nil != err {
			return nil, err
		}
		acc = h
	}

	binding, err := poseidon.Hash([]*big.Int{secret.Serial, secret.Randomness, acc})
	if nil != err {
		return nil, err
	}

	proof := make([]byte, 2*PublicKeyLength)
	secret.Serial.FillBytes(proof[:PublicKeyLength])
	binding.FillBytes(proof[PublicKeyLength:])
	return proof, nil
}

func newSecret() (Secret, error) {
	buffer := make([]byte, 2*secretLength)
	_, err := rand.Read(buffer)
	if nil != err {
		return Secret{}, err
	}
	return Secret{
		Serial:     new(big.Int).SetBytes(buffer[:secretLength]),
		Randomness: new(big.Int).SetBytes(buffer[secretLength:]),
	}, nil
}

// commitment binds the secret to the property and denomination
func commitment(id property.Id, d Denomination, secret Secret) (PublicKey, error) {
	var key PublicKey
	h, err := poseidon.Hash([]*big.Int{
		secret.Serial,
		secret.Randomness,
		new(big.Int).SetUint64(uint64(id)),
		new(big.Int).SetUint64(uint64(d)),
	})
	if nil != err {
		return key, err
	}
	h.FillBytes(key[:])
	return key, nil
}

func packMint(r mintRecord) util.Record {
	return util.Record{}.
		AppendUint64(uint64(r.property)).
		AppendUint64(uint64(r.denomination)).
		AppendBytes(r.secret.Serial.Bytes()).
		AppendBytes(r.secret.Randomness.Bytes()).
		AppendBool(r.used).
		AppendBytes(r.spendTx[:])
}

func unpackMint(buffer []byte) (mintRecord, error) {
	rd := util.NewReader(buffer)
	r := mintRecord{
		property:     property.Id(rd.Uint64()),
		denomination: Denomination(rd.Uint64()),
	}
	r.secret.Serial = new(big.Int).SetBytes(rd.Bytes())
	r.secret.Randomness = new(big.Int).SetBytes(rd.Bytes())
	r.used = rd.Bool()
	spendTx := rd.Bytes()
	if nil != rd.Err() {
		return r, rd.Err()
	}
	err := txid.FromBytes(&r.spendTx, spendTx)
	return r, err
}
