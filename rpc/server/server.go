// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/badged/counter"
	"github.com/bitmark-inc/badged/diamond"
	"github.com/bitmark-inc/badged/rpc/badge"
	rpcdiamond "github.com/bitmark-inc/badged/rpc/diamond"
	"github.com/bitmark-inc/badged/rpc/endorsement"
	"github.com/bitmark-inc/badged/rpc/node"
	"github.com/bitmark-inc/badged/rpc/owner"
	rpctoken "github.com/bitmark-inc/badged/rpc/token"
	"github.com/bitmark-inc/badged/token"
	"github.com/bitmark-inc/logger"
)

// Router - the parts of the router the services need
type Router interface {
	diamond.Dispatcher
	Deployed() []string
}

// Services - the in-process external token services
type Services struct {
	Badges   *token.Badges
	Payments *token.Payments
}

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, router Router, services Services) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(node.New(log, start, version, rpcCount, router.Deployed))
	_ = server.Register(owner.New(log, router))
	_ = server.Register(rpcdiamond.New(log, router))
	_ = server.Register(badge.New(log, router))
	_ = server.Register(endorsement.New(log, router))
	_ = server.Register(rpctoken.New(log, services.Badges, services.Payments))

	return server
}
