// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/badged/access"
	"github.com/bitmark-inc/badged/diamond"
	"github.com/bitmark-inc/badged/endorsement"
	"github.com/bitmark-inc/badged/genesis"
	"github.com/bitmark-inc/badged/mint"
	"github.com/bitmark-inc/badged/module"
	"github.com/bitmark-inc/badged/registry"
	"github.com/bitmark-inc/badged/rpc/server"
	"github.com/bitmark-inc/badged/token"
)

// create the router, deploy every module and run the first cut on a
// new database
//
// storage and mode must already be initialised
func deployPlatform(options *Configuration) (*diamond.Router, server.Services, error) {
	services := server.Services{
		Badges:   token.NewBadges(),
		Payments: token.NewPayments(),
	}

	router := diamond.New()
	modules := []module.Module{
		access.New(),
		registry.New(),
		mint.New(services.Badges, services.Payments, options.PlatformAccount()),
		endorsement.New(),
	}

	err := genesis.Deploy(router, modules, options.OwnerAccount(), options.GenesisArguments())
	if nil != err {
		return nil, services, err
	}
	return router, services, nil
}
