// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/exodusd/basenode"
	"github.com/bitmark-inc/exodusd/chain"
	"github.com/bitmark-inc/exodusd/dispatch"
	"github.com/bitmark-inc/exodusd/publish"
	"github.com/bitmark-inc/exodusd/rpc/listeners"
	"github.com/bitmark-inc/exodusd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultPublicKeyFile  = "publish.public"
	defaultPrivateKeyFile = "publish.private"

	defaultLevelDBDirectory = "data"
	defaultPendingFile      = "pending.cache"

	defaultLogDirectory = "log"
	defaultLogFile      = "exodusd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the ledger state database
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// SigmaType - shielded wallet settings
type SigmaType struct {
	Enabled          bool `gluamapper:"enabled" json:"enabled"`
	MinConfirmations int  `gluamapper:"min_confirmations" json:"min_confirmations"`
}

// Configuration - everything read from the daemon configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Chain         string       `gluamapper:"chain" json:"chain"`
	AutoCommit    bool         `gluamapper:"auto_commit" json:"auto_commit"`
	Database      DatabaseType `gluamapper:"database" json:"database"`
	PendingFile   string       `gluamapper:"pending_file" json:"pending_file"`
	FeeRate       int64        `gluamapper:"fee_rate" json:"fee_rate"`

	ClientRPC  listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	BaseNode   basenode.Configuration     `gluamapper:"base_node" json:"base_node"`
	Publishing publish.Configuration      `gluamapper:"publishing" json:"publishing"`
	Sigma      SigmaType                  `gluamapper:"sigma" json:"sigma"`
	Logging    logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// DatabaseName - default database file for a chain
func DatabaseName(chainName string) string {
	return "exodus-" + chainName + ".leveldb"
}

// Get - read, decode and verify the configuration
func Get(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	// decoding merges into this map
	logLevels := make(map[string]string, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		logLevels[tag] = level
	}

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Main,
		AutoCommit:    true,
		PendingFile:   defaultPendingFile,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      "",
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Publishing: publish.Configuration{
			PublicKey:  defaultPublicKeyFile,
			PrivateKey: defaultPrivateKeyFile,
		},

		Sigma: SigmaType{
			Enabled:          false,
			MinConfirmations: dispatch.DefaultMintConfirmations,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    logLevels,
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	// abort if the chain name is not recognised
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("Chain: %q is not supported", options.Chain)
	}

	// if database was not set switch to the chain default
	if "" == options.Database.Name {
		options.Database.Name = DatabaseName(options.Chain)
	}

	if options.FeeRate < 0 {
		return nil, fmt.Errorf("fee_rate: %d must not be negative", options.FeeRate)
	}

	if options.Sigma.MinConfirmations < 1 {
		return nil, fmt.Errorf("Sigma: min_confirmations: %d must be positive", options.Sigma.MinConfirmations)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.Publishing.PublicKey,
		&options.Publishing.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.PendingFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// create directories if they do not already exist
	for _, d := range []string{
		options.Database.Directory,
		options.Logging.Directory,
	} {
		if err := os.MkdirAll(d, 0700); nil != err {
			return nil, err
		}
	}

	return options, nil
}
