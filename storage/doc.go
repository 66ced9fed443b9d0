// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - leveldb backed token ledger state
//
// each pool is a one byte key prefix inside a single database:
//
//   P  property id                       → property info record
//   B  address payload ++ property id    → balance (int64)
//   X  seller payload ++ property id     → sell offer record
//   D  property id                       → denomination list record
//   H  "tip"                             → current block height
//   M  commitment                        → local shielded mint record
//
// all integers in keys are big endian so that iteration order
// matches numeric order
package storage
