// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package basenode - transaction builder backend over the base chain
// wallet JSON-RPC interface
//
// the token payload travels in a data output prefixed by the
// "exodus" marker; a reference output pays the receiver when the
// action has one
package basenode
