// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dispatch - runs one token transaction request from checks
// to commit
//
// every request passes through the same stages: the named checks for
// its action, shielded preparation (mint or spend only), payload
// encoding, building through the base chain wallet and finally the
// commit effects or the rollback of any shielded mints
//
// the stages run under a single lock so that the balance checks, the
// pending effects and any fee override are consistent with each other
package dispatch
