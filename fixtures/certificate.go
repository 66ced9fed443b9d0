// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
)

var certificateOnce struct {
	sync.Once
	certificate string
	key         string
	err         error
}

// Certificate - PEM certificate and private key for TLS listener tests
//
// generated once per test binary
func Certificate() (string, string, error) {
	certificateOnce.Do(func() {
		validUntil := time.Now().Add(24 * time.Hour)
		cert, key, err := certgen.NewTLSCertPair("exodusd test certificate", validUntil, false, []string{"127.0.0.1"})
		certificateOnce.certificate = string(cert)
		certificateOnce.key = string(key)
		certificateOnce.err = err
	})
	return certificateOnce.certificate, certificateOnce.key, certificateOnce.err
}
