// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared set up for package tests
package fixtures

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/badged/chain"
	"github.com/bitmark-inc/badged/mode"
	"github.com/bitmark-inc/badged/storage"
	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// well known accounts used throughout the tests
var (
	Owner        = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	BackupOwner  = common.HexToAddress("0x00000000000000000000000000000000000000a2")
	FeeCollector = common.HexToAddress("0x00000000000000000000000000000000000000a3")
	Platform     = common.HexToAddress("0x00000000000000000000000000000000000000d1")
	Alice        = common.HexToAddress("0x00000000000000000000000000000000000000b1")
	Bob          = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	Carol        = common.HexToAddress("0x00000000000000000000000000000000000000b3")
	Stranger     = common.HexToAddress("0x00000000000000000000000000000000000000ee")
	Badge        = common.HexToAddress("0x00000000000000000000000000000000000000c1")
	OtherBadge   = common.HexToAddress("0x00000000000000000000000000000000000000c2")
	USDC         = common.HexToAddress("0x00000000000000000000000000000000000000f1")
)

// SetupTestLogger - log to a scratch directory, critical only
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// SetupTestStorage - fresh in-memory storage context
func SetupTestStorage() error {
	storage.Finalise()
	return storage.Initialise(storage.InMemory, storage.ReadWrite)
}

// TeardownTestStorage - discard the in-memory storage context
func TeardownTestStorage() {
	storage.Finalise()
}

// SetupTestMode - testing chain in Normal mode
func SetupTestMode() {
	_ = mode.Initialise(chain.Testing)
	mode.Set(mode.Normal)
}

// TeardownTestMode - back to Stopped
func TeardownTestMode() {
	_ = mode.Finalise()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
