// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package genesis - first deployment of a new database
//
// Genesis binds the installer, then a single cut adds every standard
// module and runs InitDiamond to set the roles and the default mint
// parameters.
package genesis

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/badged/access"
	"github.com/bitmark-inc/badged/diamond"
	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/module"
	"github.com/bitmark-inc/badged/registry"
	"github.com/bitmark-inc/badged/storage"
	"github.com/bitmark-inc/logger"
)

// ModuleName - name under which the initialiser is deployed
const ModuleName = "InitDiamond"

// Arguments - initial platform settings
//
// Roles holds the backup owner then the fee collector
type Arguments struct {
	DefaultMintPayment common.Address   `json:"defaultMintPayment"`
	DefaultMintFee     uint64           `json:"defaultMintFee,string"`
	Roles              []common.Address `json:"roles"`
}

// InitDiamond - the one-shot initialiser
type InitDiamond struct {
	log *logger.L
}

// New - create the initialiser module
func New() *InitDiamond {
	return &InitDiamond{
		log: logger.New("genesis"),
	}
}

// Name - module name
func (g *InitDiamond) Name() string {
	return ModuleName
}

// Operations - none, the module only runs as an initialiser
func (g *InitDiamond) Operations() []module.Operation {
	return nil
}

// InitialiserArguments - empty argument value for decoding
func (g *InitDiamond) InitialiserArguments() interface{} {
	return &Arguments{}
}

// Initialise - record roles and default mint parameters
//
// fails with ErrAlreadyInitialised on every run after the first
func (g *InitDiamond) Initialise(call *module.Call, arguments interface{}) error {
	args, ok := arguments.(*Arguments)
	if !ok || nil == args {
		return fault.ErrInvalidArguments
	}
	if 2 != len(args.Roles) {
		return fault.ErrMissingParameters
	}

	if err := access.MarkInitialised(call.Trx); nil != err {
		return err
	}

	access.SetBackupOwner(call.Trx, args.Roles[0])
	access.SetFeeCollector(call.Trx, args.Roles[1])
	registry.SetDefaultMintParams(call.Trx, registry.MintParams{
		Payment: args.DefaultMintPayment,
		Fee:     args.DefaultMintFee,
	})

	g.log.Infof("backup owner: %s  fee collector: %s", args.Roles[0].Hex(), args.Roles[1].Hex())
	g.log.Infof("default mint payment: %s  fee: %d", args.DefaultMintPayment.Hex(), args.DefaultMintFee)
	return nil
}

// Deploy - make the initialiser and the modules available to the
// router and, on a new database, run the first cut as owner
func Deploy(r *diamond.Router, modules []module.Module, owner common.Address, arguments *Arguments) error {
	log := logger.New("genesis")

	initialiser := New()
	if err := r.Deploy(initialiser); nil != err {
		return err
	}
	for _, m := range modules {
		if err := r.Deploy(m); nil != err {
			log.Errorf("deploy: %s  error: %s", m.Name(), err)
			return err
		}
	}

	if !r.IsGenesis() {
		if err := r.Genesis(owner); nil != err {
			return err
		}
	}

	// a failed first cut leaves nothing behind, so it is retried on
	// the next start
	if isInitialised() {
		log.Info("existing database: no genesis")
		return nil
	}

	changes := make([]diamond.Change, 0, len(modules))
	for _, m := range modules {
		if 0 == len(m.Operations()) {
			continue
		}
		changes = append(changes, diamond.AddAll(m))
	}

	_, err := r.DispatchSignature(context.Background(), diamond.CutSignature, &diamond.CutArguments{
		Changes:     changes,
		Initialiser: ModuleName,
		Arguments:   arguments,
	}, owner)
	if nil != err {
		log.Criticalf("first cut error: %s", err)
		return err
	}

	log.Infof("genesis complete: modules: %d", len(changes))
	return nil
}

func isInitialised() bool {
	initialised := false
	_ = storage.Execute(func(trx storage.Transaction) error {
		initialised = access.IsInitialised(trx)
		return nil
	})
	return initialised
}
