// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - resolve a relative path against directory
//
// an empty path stays empty so optional files remain unset
func EnsureAbsolute(directory string, path string) string {
	switch {
	case "" == path:
		return ""
	case filepath.IsAbs(path):
		return filepath.Clean(path)
	default:
		return filepath.Join(directory, path)
	}
}

// EnsureFileExists - true if anything exists at name
func EnsureFileExists(name string) bool {
	if _, err := os.Stat(name); nil != err {
		return false
	}
	return true
}
