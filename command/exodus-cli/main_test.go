// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredFlags(t *testing.T) {
	tests := []struct {
		args    []string
		missing string
	}{
		{[]string{"send", "--to", "x", "--property", "3", "--amount", "1"}, "from is required"},
		{[]string{"send", "--from", "x", "--property", "3", "--amount", "1"}, "to is required"},
		{[]string{"mints"}, "property is required"},
		{[]string{"trade", "--from", "x", "--for-sale", "3", "--amount-for-sale", "1", "--desired", "4"}, "amount-desired is required"},
		{[]string{"fixed", "--from", "x", "--ecosystem", "1", "--type", "2"}, "name is required"},
		{[]string{"mint", "--from", "x", "--property", "3"}, "denominations is required"},
		{[]string{"spend", "--to", "x", "--property", "3"}, "denomination is required"},
		{[]string{"activation", "--from", "x", "--feature", "8"}, "block is required"},
	}

	for i, test := range tests {
		var w, e bytes.Buffer
		app := newApp()
		app.Writer = &w
		app.ErrWriter = &e

		err := app.Run(append([]string{"exodus-cli"}, test.args...))
		assert.EqualError(t, err, test.missing, "%d: wrong error", i)
		assert.Equal(t, 0, w.Len(), "%d: unexpected output", i)
	}
}

func TestVersion(t *testing.T) {
	var w bytes.Buffer
	app := newApp()
	app.Writer = &w

	err := app.Run([]string{"exodus-cli", "version"})
	assert.Nil(t, err, "wrong version error")
	assert.Equal(t, version+"\n", w.String(), "wrong version output")
}

func TestEmptyConnect(t *testing.T) {
	var w, e bytes.Buffer
	app := newApp()
	app.Writer = &w
	app.ErrWriter = &e

	err := app.Run([]string{"exodus-cli", "--connect", "", "info"})
	assert.NotNil(t, err, "empty connect accepted")
}

func TestPrintJson(t *testing.T) {
	var w bytes.Buffer
	err := printJson(&w, map[string]int{"count": 2})
	assert.Nil(t, err, "wrong printJson error")
	assert.Equal(t, "{\n  \"count\": 2\n}\n", w.String(), "wrong json")
}
