// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dispatch

// Kind - the action requested
type Kind int

// all actions - keep in the same order as kindNames
const (
	KindRawTx Kind = iota
	KindSimpleSend
	KindSendAll
	KindDExSell
	KindDExAccept
	KindTrade
	KindCancelTradesByPrice
	KindCancelTradesByPair
	KindCancelAllTrades
	KindSendToOwners
	KindIssuanceCrowdsale
	KindIssuanceFixed
	KindIssuanceManaged
	KindGrant
	KindRevoke
	KindCloseCrowdsale
	KindChangeIssuer
	KindEnableFreezing
	KindDisableFreezing
	KindFreeze
	KindUnfreeze
	KindActivation
	KindDeactivation
	KindAlert
	KindCreateDenomination
	KindMint
	KindSpend
)

var kindNames = []string{
	"rawtx",
	"send",
	"sendall",
	"dexsell",
	"dexaccept",
	"trade",
	"canceltradesbyprice",
	"canceltradesbypair",
	"cancelalltrades",
	"sto",
	"issuancecrowdsale",
	"issuancefixed",
	"issuancemanaged",
	"grant",
	"revoke",
	"closecrowdsale",
	"changeissuer",
	"enablefreezing",
	"disablefreezing",
	"freeze",
	"unfreeze",
	"activation",
	"deactivation",
	"alert",
	"createdenomination",
	"mint",
	"spend",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "*unknown*"
	}
	return kindNames[k]
}
