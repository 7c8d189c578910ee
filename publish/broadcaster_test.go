// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/badged/diamond"
	"github.com/bitmark-inc/badged/fixtures"
	"github.com/bitmark-inc/badged/module"
	"github.com/bitmark-inc/logger"
)

func TestPublishQueuesJSON(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	brdc := &broadcaster{
		log:   logger.New(fixtures.LogCategory),
		queue: make(chan []byte, 1),
	}

	event := diamond.Event{
		Signature: "endorse(address,uint256)",
		Selector:  module.SelectorOf("endorse(address,uint256)"),
		Module:    "BadgeEndorsement",
		Caller:    fixtures.Alice,
		Timestamp: time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC),
	}
	brdc.publish(event)

	data := <-brdc.queue

	var decoded map[string]interface{}
	assert.Nil(t, json.Unmarshal(data, &decoded), "unmarshal error")
	assert.Equal(t, "endorse(address,uint256)", decoded["signature"], "wrong signature")
	assert.Equal(t, module.SelectorOf("endorse(address,uint256)").String(), decoded["selector"], "wrong selector")
	assert.Equal(t, strings.ToLower(fixtures.Alice.Hex()), decoded["caller"], "wrong caller")
}

func TestPublishDropsWhenFull(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	brdc := &broadcaster{
		log:   logger.New(fixtures.LogCategory),
		queue: make(chan []byte, 1),
	}

	brdc.publish(diamond.Event{Signature: "first()"})
	brdc.publish(diamond.Event{Signature: "second()"})
	brdc.publish(diamond.Event{Signature: "third()"})

	assert.Equal(t, uint64(2), brdc.dropped.Uint64(), "wrong dropped count")
	assert.Equal(t, 1, len(brdc.queue), "wrong queue length")
}

func TestInitialiseWithoutBroadcast(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := Initialise(&Configuration{}, diamond.New())
	assert.Nil(t, err, "initialise error")
	assert.False(t, globalData.initialised, "publishing enabled without addresses")
}
