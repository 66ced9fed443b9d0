// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/exodusd/chain"
	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/fixtures"
	"github.com/bitmark-inc/exodusd/mode"
)

func TestModeLifecycle(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := mode.Initialise("bitmark")
	assert.Equal(t, fault.InvalidChain, err, "unknown chain")

	err = mode.Initialise(chain.Regtest)
	assert.Nil(t, err, "initialise")
	defer mode.Finalise()

	assert.Equal(t, fault.AlreadyInitialised, mode.Initialise(chain.Regtest), "twice")

	assert.True(t, mode.Is(mode.Resynchronise), "starts resynchronising")
	assert.True(t, mode.IsTesting(), "regtest is testing")
	assert.Equal(t, chain.Regtest, mode.ChainName(), "chain")

	mode.Set(mode.Normal)
	assert.True(t, mode.Is(mode.Normal), "normal")
	assert.True(t, mode.IsNot(mode.Resynchronise), "not resynchronising")
	assert.Equal(t, "Normal", mode.String(), "string")

	mode.Set(mode.Mode(99))
	assert.True(t, mode.Is(mode.Normal), "invalid set ignored")
	assert.Equal(t, "*Unknown*", mode.Mode(99).String(), "unknown string")
}
