// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package precondition - named checks against the ledger state
//
// each check either returns nil or a single error instance from the
// fault package; checks never modify any state so a request that
// fails here has had no side effects
package precondition
