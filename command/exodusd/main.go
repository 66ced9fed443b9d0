// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/exodusd/background"
	"github.com/bitmark-inc/exodusd/basenode"
	"github.com/bitmark-inc/exodusd/configuration"
	"github.com/bitmark-inc/exodusd/dispatch"
	"github.com/bitmark-inc/exodusd/fault"
	"github.com/bitmark-inc/exodusd/messagebus"
	"github.com/bitmark-inc/exodusd/mode"
	"github.com/bitmark-inc/exodusd/pending"
	"github.com/bitmark-inc/exodusd/publish"
	"github.com/bitmark-inc/exodusd/rpc"
	"github.com/bitmark-inc/exodusd/rpc/exodus"
	"github.com/bitmark-inc/exodusd/rpc/server"
	"github.com/bitmark-inc/exodusd/sigma"
	"github.com/bitmark-inc/exodusd/storage"
	"github.com/bitmark-inc/exodusd/txbuilder"
	"github.com/bitmark-inc/exodusd/zmqutil"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// how often the base node is asked for its chain tip
const pollInterval = 30 * time.Second

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "define", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	variables, err := parseDefines(options["define"])
	if nil != err {
		exitwithstatus.Message("%s: define error: %s", program, err)
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := configuration.Get(configurationFile, variables)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: critical log setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// set the initial system mode - before any background tasks are started
	err = mode.Initialise(theConfiguration.Chain)
	if nil != err {
		log.Criticalf("mode initialise error: %s", err)
		exitwithstatus.Message("mode initialise error: %s", err)
	}
	defer mode.Finalise()

	// general info
	log.Infof("test mode: %v", mode.IsTesting())
	log.Infof("database: %q", theConfiguration.Database)
	log.Infof("auto commit: %t", theConfiguration.AutoCommit)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "Publishing", theConfiguration.Publishing)
	log.Debugf("%s = %#v", "Sigma", theConfiguration.Sigma)

	// start the data storage
	log.Info("initialise storage")
	db, err := storage.Open(theConfiguration.Database.Name, false)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer db.Close()

	// the shielded wallet shares the ledger database
	var wallet sigma.Wallet
	var mints exodus.MintLister
	if theConfiguration.Sigma.Enabled {
		log.Info("initialise sigma wallet")
		localWallet, err := sigma.NewLocalWallet(db, nil)
		if nil != err {
			log.Criticalf("sigma wallet initialise error: %s", err)
			exitwithstatus.Message("sigma wallet initialise error: %s", err)
		}
		wallet = localWallet
		mints = localWallet
	}

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, theConfiguration, db, mints) {
		return
	}

	// restore effects of transactions not yet confirmed
	log.Info("initialise pending")
	pendingStore, err := pending.New(theConfiguration.PendingFile, pending.DefaultTimeout)
	if nil != err {
		log.Criticalf("pending initialise error: %s", err)
		exitwithstatus.Message("pending initialise error: %s", err)
	}
	err = pendingStore.LoadFromFile()
	if nil != err {
		log.Criticalf("pending reload error: %s", err)
		exitwithstatus.Message("pending reload error: %s", err)
	}
	pendingStore.Start()
	defer func() {
		pendingStore.Stop()
		if err := pendingStore.SaveToFile(); nil != err {
			log.Errorf("pending save error: %s", err)
		}
	}()

	// connection to the base node wallet
	log.Info("initialise base node")
	client, err := basenode.New(&theConfiguration.BaseNode, theConfiguration.Chain)
	if nil != err {
		log.Criticalf("base node initialise error: %s", err)
		exitwithstatus.Message("base node initialise error: %s", err)
	}
	poller := background.Start(background.Processes{
		client.Poller(db, pollInterval),
	}, nil)
	defer poller.Stop()

	builder, err := txbuilder.New(client, txbuilder.NewFeePolicy(txbuilder.FeeRate(theConfiguration.FeeRate)))
	if nil != err {
		log.Criticalf("transaction builder initialise error: %s", err)
		exitwithstatus.Message("transaction builder initialise error: %s", err)
	}

	dispatcher, err := dispatch.New(db, pendingStore, wallet, builder, theConfiguration.AutoCommit)
	if nil != err {
		log.Criticalf("dispatch initialise error: %s", err)
		exitwithstatus.Message("dispatch initialise error: %s", err)
	}

	// initialise encryption
	if 0 != len(theConfiguration.Publishing.Broadcast) {
		err = zmqutil.StartAuthentication()
		if nil != err {
			log.Criticalf("zmq.AuthStart: error: %s", err)
			exitwithstatus.Message("zmq.AuthStart: error: %s", err)
		}
	}

	// start up the publishing background processes
	err = publish.Initialise(&theConfiguration.Publishing, messagebus.Bus.Broadcast)
	if nil != err {
		log.Criticalf("publish initialise error: %s", err)
		exitwithstatus.Message("publish initialise error: %s", err)
	}
	defer publish.Finalise()

	if publish.Enabled() {
		dispatcher.SetNotifier(messagebus.Bus.Broadcast)
	}

	// start up the rpc background processes
	services := &server.Services{
		Version:           version,
		Ledger:            db,
		Dispatcher:        dispatcher,
		Pending:           pendingStore,
		Mints:             mints,
		MintConfirmations: theConfiguration.Sigma.MinConfirmations,
	}
	err = rpc.Initialise(&theConfiguration.ClientRPC, services)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// if memory logging enabled
	if len(options["memory-stats"]) > 0 {
		go memstats()
	}

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
	mode.Set(mode.Stopped)
}
