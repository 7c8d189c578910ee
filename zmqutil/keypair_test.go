// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/zmqutil"
)

func TestMakeKeyPair(t *testing.T) {
	dir, err := ioutil.TempDir("", "zmqutil")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	public := filepath.Join(dir, "publish.public")
	private := filepath.Join(dir, "publish.private")

	err = zmqutil.MakeKeyPair(public, private)
	assert.Nil(t, err, "make key pair error")

	publicKey, err := zmqutil.ReadPublicKeyFile(public)
	assert.Nil(t, err, "read public error")
	assert.Equal(t, 32, len(publicKey), "wrong public key length")

	privateKey, err := zmqutil.ReadPrivateKeyFile(private)
	assert.Nil(t, err, "read private error")
	assert.Equal(t, 32, len(privateKey), "wrong private key length")

	_, err = zmqutil.ReadPublicKeyFile(private)
	assert.Equal(t, fault.ErrInvalidPublicKeyFile, err, "private read as public")

	err = zmqutil.MakeKeyPair(public, private)
	assert.Equal(t, fault.ErrKeyFileExists, err, "overwrote existing keys")
}

func TestParseKey(t *testing.T) {
	hex64 := strings.Repeat("ab", 32)

	key, private, err := zmqutil.ParseKey("  PRIVATE:" + hex64 + "\n")
	assert.Nil(t, err, "parse private error")
	assert.True(t, private, "not private")
	assert.Equal(t, 32, len(key), "wrong length")

	_, private, err = zmqutil.ParseKey("PUBLIC:" + hex64)
	assert.Nil(t, err, "parse public error")
	assert.False(t, private, "not public")

	_, _, err = zmqutil.ParseKey("PUBLIC:abcd")
	assert.Equal(t, fault.ErrInvalidPublicKeyFile, err, "short key accepted")

	_, _, err = zmqutil.ParseKey("PRIVATE:zz" + hex64[2:])
	assert.Equal(t, fault.ErrInvalidPrivateKeyFile, err, "bad hex accepted")

	_, _, err = zmqutil.ParseKey(hex64)
	assert.Equal(t, fault.ErrInvalidPublicKeyFile, err, "untagged key accepted")
}
