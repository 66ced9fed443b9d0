// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/exodusd/address"
	"github.com/bitmark-inc/exodusd/chain"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// test chain addresses
const (
	IssuerAddress   = "TA4Y62o6YC2Zsck9rZVGTvqW1AQ7X9zTnj"
	SenderAddress   = "TBthewbwcZKTd99XrfwoUzpTtvmkoFqt9q"
	ReceiverAddress = "TDisDrQngvcMNfYurnQLW4oRnh9PzwDFxh"
	SellerAddress   = "TFZ2nmDdmHuF8BxHrtrsX8nPgTX3FfuGzz"
	ScriptAddress   = "2EkaMcwi353Z9Hh7TdQxRLNXFhE1Gu2xmVT"
)

var (
	Issuer   address.Address
	Sender   address.Address
	Receiver address.Address
	Seller   address.Address
)

func init() {
	Issuer = mustParse(IssuerAddress)
	Sender = mustParse(SenderAddress)
	Receiver = mustParse(ReceiverAddress)
	Seller = mustParse(SellerAddress)
}

func mustParse(s string) address.Address {
	a, err := address.Parse(chain.Test, s)
	if nil != err {
		panic(fmt.Sprintf("fixture address: %q  error: %s", s, err))
	}
	return a
}

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// TempFile - name of a scratch file inside the test directory
func TempFile(name string) string {
	return dir + "/" + name
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
