// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/badged/chain"
	"github.com/bitmark-inc/badged/counter"
	"github.com/bitmark-inc/badged/fixtures"
	"github.com/bitmark-inc/badged/rpc/node"
	"github.com/bitmark-inc/logger"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	fixtures.SetupTestMode()
	defer fixtures.TeardownTestMode()

	c := counter.Counter(3)
	deployed := func() []string {
		return []string{"BadgeManager", "DiamondCut"}
	}

	n := node.New(logger.New(fixtures.LogCategory), time.Now().Add(-time.Minute), "1.2", &c, deployed)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, chain.Testing, reply.Chain, "wrong chain")
	assert.Equal(t, "Normal", reply.Mode, "wrong mode")
	assert.Equal(t, uint64(3), reply.RPCs, "wrong rpc count")
	assert.Equal(t, []string{"BadgeManager", "DiamondCut"}, reply.Modules, "wrong modules")
	assert.Equal(t, "1.2", reply.Version, "wrong version")
	assert.NotEqual(t, "", reply.Uptime, "empty uptime")
}
