// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error classes, instances and result codes
//
// every failure is a single package level value so callers compare
// with == or errors.Is; the class of a value (parameter,
// precondition, build, broadcast...) tells how far a request got and
// selects the numeric code returned to RPC clients
package fault
