// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/module"
	"github.com/bitmark-inc/logger"
)

// ModuleName - name under which the ownership module is deployed
const ModuleName = "Ownership"

// operation signatures
const (
	OwnerSignature             = "owner()"
	TransferOwnershipSignature = "transferOwnership(address)"
	GetRolesSignature          = "getRoles()"
	SetBackupOwnerSignature    = "setBackupOwner(address)"
	SetFeeCollectorSignature   = "setFeeCollector(address)"
	IsAuthorisedSignature      = "isAuthorized(address,uint8)"
)

// AddressArguments - single account argument
type AddressArguments struct {
	Account common.Address `json:"account"`
}

// AuthorisedArguments - capability query
type AuthorisedArguments struct {
	Account    common.Address `json:"account"`
	Capability Capability     `json:"capability"`
}

// Ownership - role maintenance operations
type Ownership struct {
	log *logger.L
}

// New - create the ownership module
func New() *Ownership {
	return &Ownership{
		log: logger.New("ownership"),
	}
}

// Name - module name
func (o *Ownership) Name() string {
	return ModuleName
}

// Operations - entry points
func (o *Ownership) Operations() []module.Operation {
	return []module.Operation{
		{Signature: OwnerSignature, Handler: o.owner},
		{Signature: TransferOwnershipSignature, Handler: o.transferOwnership},
		{Signature: GetRolesSignature, Handler: o.getRoles},
		{Signature: SetBackupOwnerSignature, Handler: o.setBackupOwner},
		{Signature: SetFeeCollectorSignature, Handler: o.setFeeCollector},
		{Signature: IsAuthorisedSignature, Handler: o.isAuthorised},
	}
}

func (o *Ownership) owner(call *module.Call, _ interface{}) (interface{}, error) {
	return Owner(call.Trx), nil
}

func (o *Ownership) transferOwnership(call *module.Call, arguments interface{}) (interface{}, error) {
	if err := Require(call.Trx, call.Caller, OwnerRole); nil != err {
		return nil, err
	}
	args, ok := arguments.(*AddressArguments)
	if !ok {
		return nil, fault.ErrInvalidArguments
	}
	if err := SetOwner(call.Trx, args.Account); nil != err {
		return nil, err
	}
	o.log.Infof("ownership transferred from: %s  to: %s", call.Caller.Hex(), args.Account.Hex())
	return nil, nil
}

func (o *Ownership) getRoles(call *module.Call, _ interface{}) (interface{}, error) {
	return Read(call.Trx), nil
}

func (o *Ownership) setBackupOwner(call *module.Call, arguments interface{}) (interface{}, error) {
	if err := Require(call.Trx, call.Caller, OwnerRole); nil != err {
		return nil, err
	}
	args, ok := arguments.(*AddressArguments)
	if !ok {
		return nil, fault.ErrInvalidArguments
	}
	SetBackupOwner(call.Trx, args.Account)
	o.log.Infof("backup owner: %s", args.Account.Hex())
	return nil, nil
}

func (o *Ownership) setFeeCollector(call *module.Call, arguments interface{}) (interface{}, error) {
	if err := Require(call.Trx, call.Caller, OwnerRole); nil != err {
		return nil, err
	}
	args, ok := arguments.(*AddressArguments)
	if !ok {
		return nil, fault.ErrInvalidArguments
	}
	SetFeeCollector(call.Trx, args.Account)
	o.log.Infof("fee collector: %s", args.Account.Hex())
	return nil, nil
}

func (o *Ownership) isAuthorised(call *module.Call, arguments interface{}) (interface{}, error) {
	args, ok := arguments.(*AuthorisedArguments)
	if !ok {
		return nil, fault.ErrInvalidArguments
	}
	if !args.Capability.Valid() {
		return nil, fault.ErrUnknownRole
	}
	return IsAuthorised(call.Trx, args.Account, args.Capability), nil
}
