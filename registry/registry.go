// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - per badge collection configuration
//
// The MintDefaults and BadgeConfig regions are written only through
// this package.
package registry

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/badged/access"
	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/module"
	"github.com/bitmark-inc/logger"
)

// ModuleName - name under which the registry is deployed
const ModuleName = "BadgeManager"

// operation signatures
const (
	SetMintEnabledSignature        = "setMintEnabled(address,bool)"
	SetEndorsementEnabledSignature = "setEndorsementEnabled(address,bool)"
	SetCustomMintParamsSignature   = "setCustomMintParams(address,uint256,address,bool)"
	GetMintParamsSignature         = "getMintParams(address)"
	GetBadgeConfigSignature        = "getBadgeConfig(address)"
	SetDefaultMintParamsSignature  = "setDefaultMintParams(address,uint256)"
	GetDefaultMintParamsSignature  = "getDefaultMintParams()"
)

// BadgeArguments - a badge collection
type BadgeArguments struct {
	Badge common.Address `json:"badge"`
}

// EnabledArguments - switch a gate of a badge collection
type EnabledArguments struct {
	Badge   common.Address `json:"badge"`
	Enabled bool           `json:"enabled"`
}

// CustomMintParamsArguments - per badge override of the mint parameters
type CustomMintParamsArguments struct {
	Badge   common.Address `json:"badge"`
	Fee     uint64         `json:"fee,string"`
	Payment common.Address `json:"payment"`
	Enabled bool           `json:"enabled"`
}

// Registry - badge configuration operations
type Registry struct {
	log *logger.L
}

// New - create the registry module
func New() *Registry {
	return &Registry{
		log: logger.New("registry"),
	}
}

// Name - module name
func (r *Registry) Name() string {
	return ModuleName
}

// Operations - entry points
func (r *Registry) Operations() []module.Operation {
	return []module.Operation{
		{Signature: SetMintEnabledSignature, Handler: r.setMintEnabled},
		{Signature: SetEndorsementEnabledSignature, Handler: r.setEndorsementEnabled},
		{Signature: SetCustomMintParamsSignature, Handler: r.setCustomMintParams},
		{Signature: GetMintParamsSignature, Handler: r.getMintParams},
		{Signature: GetBadgeConfigSignature, Handler: r.getBadgeConfig},
		{Signature: SetDefaultMintParamsSignature, Handler: r.setDefaultMintParams},
		{Signature: GetDefaultMintParamsSignature, Handler: r.getDefaultMintParams},
	}
}

func (r *Registry) setMintEnabled(call *module.Call, arguments interface{}) (interface{}, error) {
	if err := access.Require(call.Trx, call.Caller, access.AdminRole); nil != err {
		return nil, err
	}
	args, ok := arguments.(*EnabledArguments)
	if !ok {
		return nil, fault.ErrInvalidArguments
	}

	config, _ := readStored(call.Trx, args.Badge)
	config.MintEnabled = args.Enabled
	writeStored(call.Trx, args.Badge, config)

	r.log.Infof("badge: %s  mint enabled: %v", args.Badge.Hex(), args.Enabled)
	return nil, nil
}

func (r *Registry) setEndorsementEnabled(call *module.Call, arguments interface{}) (interface{}, error) {
	if err := access.Require(call.Trx, call.Caller, access.AdminRole); nil != err {
		return nil, err
	}
	args, ok := arguments.(*EnabledArguments)
	if !ok {
		return nil, fault.ErrInvalidArguments
	}

	config, _ := readStored(call.Trx, args.Badge)
	config.EndorsementEnabled = args.Enabled
	writeStored(call.Trx, args.Badge, config)

	r.log.Infof("badge: %s  endorsement enabled: %v", args.Badge.Hex(), args.Enabled)
	return nil, nil
}

func (r *Registry) setCustomMintParams(call *module.Call, arguments interface{}) (interface{}, error) {
	if err := access.Require(call.Trx, call.Caller, access.AdminRole); nil != err {
		return nil, err
	}
	args, ok := arguments.(*CustomMintParamsArguments)
	if !ok {
		return nil, fault.ErrInvalidArguments
	}

	config, _ := readStored(call.Trx, args.Badge)
	config.MintEnabled = args.Enabled
	config.Custom = true
	config.MintPayment = args.Payment
	config.MintFee = args.Fee
	writeStored(call.Trx, args.Badge, config)

	r.log.Infof("badge: %s  custom mint fee: %d  payment: %s  enabled: %v", args.Badge.Hex(), args.Fee, args.Payment.Hex(), args.Enabled)
	return nil, nil
}

func (r *Registry) getMintParams(call *module.Call, arguments interface{}) (interface{}, error) {
	args, ok := arguments.(*BadgeArguments)
	if !ok {
		return nil, fault.ErrInvalidArguments
	}
	return GetMintParams(call.Trx, args.Badge), nil
}

func (r *Registry) getBadgeConfig(call *module.Call, arguments interface{}) (interface{}, error) {
	args, ok := arguments.(*BadgeArguments)
	if !ok {
		return nil, fault.ErrInvalidArguments
	}
	config, _ := Read(call.Trx, args.Badge)
	return config, nil
}

func (r *Registry) setDefaultMintParams(call *module.Call, arguments interface{}) (interface{}, error) {
	if err := access.Require(call.Trx, call.Caller, access.OwnerRole); nil != err {
		return nil, err
	}
	args, ok := arguments.(*MintParams)
	if !ok {
		return nil, fault.ErrInvalidArguments
	}

	SetDefaultMintParams(call.Trx, *args)

	r.log.Infof("default mint fee: %d  payment: %s", args.Fee, args.Payment.Hex())
	return nil, nil
}

func (r *Registry) getDefaultMintParams(call *module.Call, _ interface{}) (interface{}, error) {
	return DefaultMintParams(call.Trx), nil
}
