// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/badged/counter"
	"github.com/bitmark-inc/badged/mode"
	"github.com/bitmark-inc/badged/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	deployed func() []string
	counter  *counter.Counter
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain   string   `json:"chain"`
	Mode    string   `json:"mode"`
	RPCs    uint64   `json:"rpcs"`
	Modules []string `json:"modules"`
	Version string   `json:"version"`
	Uptime  string   `json:"uptime"`
}

// New - create the Node service
//
// deployed lists the modules known to the router
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, deployed func() []string) *Node {
	return &Node{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:    start,
		Version:  version,
		deployed: deployed,
		counter:  counter,
	}
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.RPCs = node.counter.Uint64()
	reply.Modules = node.deployed()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
