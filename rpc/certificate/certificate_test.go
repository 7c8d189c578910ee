// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/fixtures"
	"github.com/bitmark-inc/badged/rpc/certificate"
	"github.com/bitmark-inc/logger"
)

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer, key, err := fixtures.Certificate()
	assert.Nil(t, err, "certificate fixture")

	tlsConfig, fingerprint, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		cer,
		key,
	)
	assert.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair([]byte(cer), []byte(key))

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair, tlsConfig.Certificates[0], "wrong config")
}

func TestGetInvalidPair(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", "junk", "junk")
	assert.NotNil(t, err, "junk accepted")
}

func TestLoad(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer, key, err := fixtures.Certificate()
	assert.Nil(t, err, "certificate fixture")

	dir, err := ioutil.TempDir("", "certificate")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	certificateFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")

	log := logger.New(fixtures.LogCategory)

	_, _, err = certificate.Load(log, "test", certificateFile, keyFile)
	assert.Equal(t, fault.ErrInvalidPublicKeyFile, err, "missing certificate")

	_ = ioutil.WriteFile(certificateFile, []byte(cer), 0600)
	_, _, err = certificate.Load(log, "test", certificateFile, keyFile)
	assert.Equal(t, fault.ErrInvalidPrivateKeyFile, err, "missing key")

	_ = ioutil.WriteFile(keyFile, []byte(key), 0600)
	_, fingerprint, err := certificate.Load(log, "test", certificateFile, keyFile)
	assert.Nil(t, err, "wrong Load")

	_, expected, _ := certificate.Get(log, "test", cer, key)
	assert.Equal(t, expected, fingerprint, "wrong fingerprint")
}
