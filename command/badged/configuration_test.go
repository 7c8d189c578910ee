// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
)

const testConfiguration = `
local M = {}
M.data_directory = "."
M.chain = "testing"
M.owner = owner or "0x00000000000000000000000000000000000000a1"
M.platform = platform
M.initialise = {
    default_mint_fee = 500000,
    default_mint_payment = "0x00000000000000000000000000000000000000f1",
    backup_owner = "0x00000000000000000000000000000000000000a2",
    fee_collector = "0x00000000000000000000000000000000000000a3",
}
M.client_rpc = {
    maximum_connections = 5,
    listen = { "127.0.0.1:2130" },
}
M.https_rpc = {
    allow = {
        details = { "127.0.0.0/8" },
    },
}
M.logging = {
    levels = {
        DEFAULT = "info",
    },
}
return M
`

func writeConfiguration(t *testing.T, content string) (string, string) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "badged.conf")
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return dir, fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, fileName := writeConfiguration(t, testConfiguration)

	options, err := getConfiguration(fileName, nil)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}

	assert.Equal(t, "testing", options.Chain, "wrong chain")
	assert.Equal(t, filepath.Join(dir, "data", "testing.leveldb"), options.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), options.ClientRPC.Certificate, "relative certificate")
	assert.Equal(t, filepath.Join(dir, "publish.private"), options.Publishing.PrivateKey, "relative publish key")
	assert.Equal(t, filepath.Join(dir, "log"), options.Logging.Directory, "relative log directory")
	assert.Equal(t, "badged.log", options.Logging.File, "log file changed")
	assert.Equal(t, "", options.PidFile, "pid file without configuration")

	assert.Equal(t, uint64(5), options.ClientRPC.MaximumConnections, "wrong client connections")
	assert.Equal(t, []string{"127.0.0.1:2130"}, options.ClientRPC.Listen, "wrong client listen")
	assert.Equal(t, uint64(defaultRPCClients), options.HttpsRPC.MaximumConnections, "default https connections lost")
	assert.Equal(t, []string{"127.0.0.0/8"}, options.HttpsRPC.Allow["details"], "wrong allow")
	assert.Equal(t, "info", options.Logging.Levels["DEFAULT"], "wrong log level")

	owner := common.HexToAddress("0x00000000000000000000000000000000000000a1")
	assert.Equal(t, owner, options.OwnerAccount(), "wrong owner")
	assert.Equal(t, crypto.CreateAddress(owner, 0), options.PlatformAccount(), "wrong default platform")

	args := options.GenesisArguments()
	assert.Equal(t, uint64(500000), args.DefaultMintFee, "wrong default fee")
	assert.Equal(t, common.HexToAddress("0x00000000000000000000000000000000000000f1"), args.DefaultMintPayment, "wrong default payment")
	assert.Equal(t, []common.Address{
		common.HexToAddress("0x00000000000000000000000000000000000000a2"),
		common.HexToAddress("0x00000000000000000000000000000000000000a3"),
	}, args.Roles, "wrong roles")
}

func TestGetConfigurationVariables(t *testing.T) {
	_, fileName := writeConfiguration(t, testConfiguration)

	options, err := getConfiguration(fileName, map[string]string{
		"platform": "0x00000000000000000000000000000000000000d1",
	})
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}
	assert.Equal(t, common.HexToAddress("0x00000000000000000000000000000000000000d1"), options.PlatformAccount(), "wrong platform")
}

func TestGetConfigurationInvalid(t *testing.T) {
	_, fileName := writeConfiguration(t, testConfiguration)

	_, err := getConfiguration(fileName, map[string]string{"owner": "not-an-account"})
	assert.NotNil(t, err, "invalid owner accepted")

	_, err = getConfiguration(fileName, map[string]string{"platform": "0x1234"})
	assert.NotNil(t, err, "invalid platform accepted")

	_, fileName = writeConfiguration(t, `return { data_directory = ".", chain = "bitmark", owner = "0x00000000000000000000000000000000000000a1" }`)
	_, err = getConfiguration(fileName, nil)
	assert.NotNil(t, err, "unknown chain accepted")

	_, fileName = writeConfiguration(t, `return { chain = "local", owner = "0x00000000000000000000000000000000000000a1" }`)
	_, err = getConfiguration(fileName, nil)
	assert.NotNil(t, err, "missing data directory accepted")
}
