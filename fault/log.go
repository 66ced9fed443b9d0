// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// time allowed for the log file to be written before panicking
const abortDelay = 100 * time.Millisecond

// channel for the last messages before the process aborts
var critical *logger.L

// Initialise - open the critical log channel
func Initialise() error {
	if nil != critical {
		return AlreadyInitialised
	}
	critical = logger.New("critical")
	if nil == critical {
		return InvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and release the critical log channel
func Finalise() {
	if nil == critical {
		return
	}
	critical.Flush()
	critical = nil
}

// Critical - log a message tagged with the caller's location
func Critical(message string) {
	writeCritical(located(message, nil))
}

// Criticalf - formatted version of Critical
func Criticalf(format string, arguments ...interface{}) {
	writeCritical(located(format, arguments))
}

// Panicf - log a formatted message with the caller's location then abort
func Panicf(format string, arguments ...interface{}) {
	writeCritical(located(format, arguments))
	Panic("abort, see last messages in log file")
}

// Panic - log the message then abort
func Panic(message string) {
	abort(message)
}

// PanicWithError - abort because an operation returned an error
func PanicWithError(message string, err error) {
	abort(fmt.Sprintf("%s failed with error: %v", message, err))
}

// PanicIfError - abort only when err is set
func PanicIfError(message string, err error) {
	if nil != err {
		PanicWithError(message, err)
	}
}

func abort(message string) {
	writeCritical("%s", []interface{}{message})
	time.Sleep(abortDelay)
	panic(message)
}

// prefix with file and line of the exported function's caller
func located(format string, arguments []interface{}) (string, []interface{}) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return format, arguments
	}
	return "(%q:%d) " + format, append([]interface{}{file, line}, arguments...)
}

// falls back to stdout before Initialise
func writeCritical(format string, arguments []interface{}) {
	if nil == critical {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	critical.Criticalf(format, arguments...)
	critical.Flush()
}
