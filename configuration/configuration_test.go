// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/exodusd/chain"
	"github.com/bitmark-inc/exodusd/configuration"
	"github.com/bitmark-inc/exodusd/fault"
)

const fullConfiguration = `
local M = {}

M.data_directory = "."
M.chain = var.chain or "test"
M.auto_commit = false
M.pending_file = "effects.cache"
M.fee_rate = 5000

M.client_rpc = {
    maximum_connections = 50,
    listen = { "127.0.0.1:2130", "[::1]:2130" },
    certificate = "client.crt",
    private_key = "client.key",
}

M.base_node = {
    url = "http://127.0.0.1:8888",
    username = "rpcuser",
    password = "rpcpass",
    min_fee_rate = 1000,
}

M.publishing = {
    broadcast = { "127.0.0.1:2135" },
}

M.sigma = {
    enabled = true,
    min_confirmations = 2,
}

M.logging = {
    size = 65536,
    count = 4,
    levels = {
        DEFAULT = "info",
        dispatch = "debug",
    },
}

return M
`

func writeFile(t *testing.T, dir string, text string) string {
	name := filepath.Join(dir, "exodusd.conf")
	if err := ioutil.WriteFile(name, []byte(text), 0600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return name
}

func tempDir(t *testing.T) (string, func()) {
	dir, err := ioutil.TempDir("", "exodusd-configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	dir, _ = filepath.EvalSymlinks(dir)
	return dir, func() { _ = os.RemoveAll(dir) }
}

func TestGet(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()

	name := writeFile(t, dir, fullConfiguration)

	c, err := configuration.Get(name, nil)
	if !assert.Nil(t, err, "wrong Get") {
		return
	}

	assert.Equal(t, filepath.Clean(dir+"/"), filepath.Clean(c.DataDirectory), "data directory")
	assert.Equal(t, chain.Test, c.Chain, "chain")
	assert.False(t, c.AutoCommit, "auto commit")
	assert.Equal(t, filepath.Join(dir, "effects.cache"), c.PendingFile, "pending file")
	assert.Equal(t, int64(5000), c.FeeRate, "fee rate")
	assert.Equal(t, filepath.Join(dir, "data"), c.Database.Directory, "database directory")
	assert.Equal(t, filepath.Join(dir, "data", "exodus-test.leveldb"), c.Database.Name, "database name")

	assert.Equal(t, uint64(50), c.ClientRPC.MaximumConnections, "rpc connections")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.ClientRPC.Listen, "rpc listen")
	assert.Equal(t, filepath.Join(dir, "client.crt"), c.ClientRPC.Certificate, "rpc certificate")
	assert.Equal(t, filepath.Join(dir, "client.key"), c.ClientRPC.PrivateKey, "rpc key")

	assert.Equal(t, "http://127.0.0.1:8888", c.BaseNode.URL, "base node url")
	assert.Equal(t, "rpcuser", c.BaseNode.Username, "base node user")
	assert.Equal(t, int64(1000), c.BaseNode.MinFeeRate, "base node fee rate")

	assert.Equal(t, []string{"127.0.0.1:2135"}, c.Publishing.Broadcast, "broadcast")
	assert.Equal(t, filepath.Join(dir, "publish.private"), c.Publishing.PrivateKey, "publish key")

	assert.True(t, c.Sigma.Enabled, "sigma enabled")
	assert.Equal(t, 2, c.Sigma.MinConfirmations, "sigma confirmations")

	assert.Equal(t, filepath.Join(dir, "log"), c.Logging.Directory, "log directory")
	assert.Equal(t, "exodusd.log", c.Logging.File, "log file")
	assert.Equal(t, 65536, c.Logging.Size, "log size")
	assert.Equal(t, "debug", c.Logging.Levels["dispatch"], "log level")

	info, err := os.Stat(c.Database.Directory)
	assert.Nil(t, err, "database directory not created")
	assert.True(t, info.IsDir(), "database directory not a directory")
}

func TestGetVariables(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()

	name := writeFile(t, dir, fullConfiguration)

	c, err := configuration.Get(name, map[string]string{"chain": "REGTEST"})
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, chain.Regtest, c.Chain, "chain not lower cased")
	assert.Equal(t, filepath.Join(dir, "data", "exodus-regtest.leveldb"), c.Database.Name, "database name")
}

func TestGetDefaults(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()

	name := writeFile(t, dir, `return { data_directory = "." }`)

	c, err := configuration.Get(name, nil)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, chain.Main, c.Chain, "chain")
	assert.True(t, c.AutoCommit, "auto commit")
	assert.False(t, c.Sigma.Enabled, "sigma enabled")
	assert.Equal(t, 6, c.Sigma.MinConfirmations, "sigma confirmations")
	assert.Equal(t, uint64(10), c.ClientRPC.MaximumConnections, "rpc connections")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), c.ClientRPC.Certificate, "rpc certificate")
	assert.Equal(t, "", c.PidFile, "pid file")
	assert.Equal(t, 0, len(c.Publishing.Broadcast), "broadcast")
}

func TestGetFailures(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()

	tests := []string{
		`return { }`,
		`return { data_directory = "/no/such/directory/exists" }`,
		`return { data_directory = ".", chain = "bitcoin" }`,
		`return { data_directory = ".", database = { name = "sub/dir.leveldb" } }`,
		`return { data_directory = ".", sigma = { min_confirmations = 0 } }`,
		`return { data_directory = ".", fee_rate = -1 }`,
		`return { data_directory = ".", logging = { file = "/var/log/exodusd.log" } }`,
		`return { data_directory = "." `,
	}

	for i, text := range tests {
		name := writeFile(t, dir, text)
		_, err := configuration.Get(name, nil)
		assert.NotNil(t, err, "%d: expected error for: %s", i, text)
	}
}

func TestParseConfigurationFile(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()

	name := writeFile(t, dir, `return 42`)

	var c configuration.Configuration
	err := configuration.ParseConfigurationFile(name, &c, nil)
	assert.Equal(t, fault.ConfigurationNotTable, err, "non table result")

	err = configuration.ParseConfigurationFile(name, c, nil)
	assert.Equal(t, fault.InvalidStructPointer, err, "not a pointer")

	n := 0
	err = configuration.ParseConfigurationFile(name, &n, nil)
	assert.Equal(t, fault.InvalidStructPointer, err, "not a struct")

	name = writeFile(t, dir, `return { chain = arg[0] }`)
	err = configuration.ParseConfigurationFile(name, &c, nil)
	assert.Nil(t, err, "wrong ParseConfigurationFile")
	assert.Equal(t, name, c.Chain, "arg[0] is the file name")
}
