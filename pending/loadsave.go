// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pending

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/payload"
	"github.com/bitmark-inc/exodusd/property"
	"github.com/bitmark-inc/exodusd/txid"
	"github.com/bitmark-inc/exodusd/util"
)

type tagType byte

// record types in pending file
const (
	taggedBOF    tagType = iota
	taggedEOF    tagType = iota
	taggedEffect tagType = iota
)

// the BOF tag to check file version
// exact match is required
var bofData = []byte("exodus-pending v1.0")

// SaveToFile - write all effects so they survive a restart
func (s *Store) SaveToFile() error {
	if "" == s.filename {
		return nil
	}

	log := s.log
	log.Info("saving…")

	f, err := os.OpenFile(s.filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if nil != err {
		return err
	}
	defer f.Close()

	// write beginning of file marker
	err = writeRecord(f, taggedBOF, bofData)
	if nil != err {
		return err
	}

	effects := s.List()
	for _, effect := range effects {
		err := writeRecord(f, taggedEffect, packEffect(effect))
		if nil != err {
			return err
		}
	}

	// end the file
	err = writeRecord(f, taggedEOF, []byte("EOF"))
	if nil != err {
		return err
	}

	log.Infof("saved: %d effects", len(effects))
	return nil
}

// LoadFromFile - restore effects saved by SaveToFile
//
// a missing file is not an error
func (s *Store) LoadFromFile() error {
	if "" == s.filename || !util.EnsureFileExists(s.filename) {
		return nil
	}

	log := s.log
	log.Infof("restore from file: %s", s.filename)

	f, err := os.Open(s.filename)
	if nil != err {
		return err
	}
	defer f.Close()

	// must have BOF record first
	tag, packed, err := readRecord(f)
	if nil != err {
		return err
	}
	if taggedBOF != tag || !bytes.Equal(bofData, packed) {
		log.Errorf("expected BOF: %q but read: %d %q", bofData, tag, packed)
		return fault.WrongPendingFileFormat
	}

	count := 0
restore_loop:
	for {
		tag, packed, err := readRecord(f)
		if nil != err {
			return err
		}
		switch tag {

		case taggedEOF:
			break restore_loop

		case taggedEffect:
			effect, err := unpackEffect(packed)
			if nil != err {
				log.Errorf("unable to unpack effect: %s", err)
				continue restore_loop
			}
			err = s.Insert(effect)
			if nil != err {
				log.Warnf("effect: %s  error: %s", effect.TxId, err)
				continue restore_loop
			}
			count += 1

		default:
			log.Errorf("read invalid tag: 0x%02x", tag)
			return fault.WrongPendingFileFormat
		}
	}

	log.Infof("restore completed: %d effects", count)
	return nil
}

func packEffect(effect Effect) []byte {
	r := util.Record(append([]byte{}, effect.TxId[:]...)).
		AppendString(effect.Address).
		AppendUint64(uint64(effect.Type)).
		AppendUint64(uint64(effect.Property)).
		AppendInt64(effect.Amount).
		AppendBool(effect.Subtract).
		AppendInt64(effect.Timestamp.UnixNano())
	return r
}

func unpackEffect(packed []byte) (Effect, error) {
	var effect Effect
	err := txid.FromBytes(&effect.TxId, packed[:min(len(packed), txid.DigestLength)])
	if nil != err {
		return effect, err
	}

	r := util.NewReader(packed[txid.DigestLength:])
	effect.Address = r.String()
	effect.Type = payload.Type(r.Uint64())
	effect.Property = property.Id(r.Uint64())
	effect.Amount = r.Int64()
	effect.Subtract = r.Bool()
	effect.Timestamp = time.Unix(0, r.Int64())

	return effect, r.Err()
}

func min(a int, b int) int {
	if a < b {
		return a
	}
	return b
}

// write a tagged record
func writeRecord(f io.Writer, tag tagType, packed []byte) error {

	if len(packed) > 65535 {
		return fmt.Errorf("write record packed length: %d > 65535", len(packed))
	}

	header := make([]byte, 3)
	header[0] = byte(tag)
	binary.BigEndian.PutUint16(header[1:], uint16(len(packed)))
	_, err := f.Write(header)
	if nil != err {
		return err
	}
	_, err = f.Write(packed)
	return err
}

func readRecord(f io.Reader) (tagType, []byte, error) {

	header := make([]byte, 3)
	_, err := io.ReadFull(f, header)
	if nil != err {
		return taggedEOF, nil, err
	}

	count := int(binary.BigEndian.Uint16(header[1:]))
	buffer := make([]byte, count)
	_, err = io.ReadFull(f, buffer)
	if nil != err {
		return taggedEOF, nil, err
	}
	return tagType(header[0]), buffer, nil
}
