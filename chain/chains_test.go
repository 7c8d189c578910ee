// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/badged/chain"
)

func TestValid(t *testing.T) {
	for _, name := range []string{chain.Live, chain.Testing, chain.Local} {
		assert.True(t, chain.Valid(name), "rejected: %q", name)
	}
	for _, name := range []string{"", "bitmark", "LIVE"} {
		assert.False(t, chain.Valid(name), "accepted: %q", name)
	}
}

func TestIsTesting(t *testing.T) {
	assert.False(t, chain.IsTesting(chain.Live), "live is testing")
	assert.True(t, chain.IsTesting(chain.Testing), "testing is live")
	assert.True(t, chain.IsTesting(chain.Local), "local is live")
}

func TestDatabaseName(t *testing.T) {
	assert.Equal(t, "live.leveldb", chain.DatabaseName(chain.Live), "wrong live database")
	assert.Equal(t, "local.leveldb", chain.DatabaseName(chain.Local), "wrong local database")
	assert.Equal(t, "", chain.DatabaseName("bitmark"), "database for unknown chain")
}
