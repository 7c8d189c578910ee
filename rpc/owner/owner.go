// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/badged/access"
	"github.com/bitmark-inc/badged/diamond"
	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

// Owner
// -----

const (
	rateLimitOwner = 100
	rateBurstOwner = 20
)

// Owner - type for the RPC
type Owner struct {
	Log        *logger.L
	Limiter    *rate.Limiter
	Dispatcher diamond.Dispatcher
}

// InfoArguments - empty arguments
type InfoArguments struct{}

// AccountArguments - arguments for the role changes
type AccountArguments struct {
	Caller  common.Address `json:"caller"`
	Account common.Address `json:"account"`
}

// AccountReply - a single account
type AccountReply struct {
	Account common.Address `json:"account"`
}

// AuthorisedArguments - arguments for IsAuthorised
type AuthorisedArguments struct {
	Account    common.Address    `json:"account"`
	Capability access.Capability `json:"capability"`
}

// AuthorisedReply - result of IsAuthorised
type AuthorisedReply struct {
	Authorised bool `json:"authorised"`
}

// Reply - empty reply of a committed change
type Reply struct{}

// New - create the Owner service
func New(log *logger.L, dispatcher diamond.Dispatcher) *Owner {
	return &Owner{
		Log:        log,
		Limiter:    rate.NewLimiter(rateLimitOwner, rateBurstOwner),
		Dispatcher: dispatcher,
	}
}

// Get - the current owner
func (owner *Owner) Get(_ *InfoArguments, reply *AccountReply) error {
	if err := ratelimit.Limit(owner.Limiter); nil != err {
		return err
	}

	result, err := owner.Dispatcher.DispatchSignature(context.Background(), access.OwnerSignature, nil, common.Address{})
	if nil != err {
		return err
	}
	account, ok := result.(common.Address)
	if !ok {
		return fault.ErrUnexpectedResult
	}
	reply.Account = account
	return nil
}

// Roles - all role holders
func (owner *Owner) Roles(_ *InfoArguments, reply *access.Roles) error {
	if err := ratelimit.Limit(owner.Limiter); nil != err {
		return err
	}

	result, err := owner.Dispatcher.DispatchSignature(context.Background(), access.GetRolesSignature, nil, common.Address{})
	if nil != err {
		return err
	}
	roles, ok := result.(access.Roles)
	if !ok {
		return fault.ErrUnexpectedResult
	}
	*reply = roles
	return nil
}

// Transfer - hand ownership to another account
func (owner *Owner) Transfer(arguments *AccountArguments, _ *Reply) error {
	return owner.change(access.TransferOwnershipSignature, arguments)
}

// SetBackupOwner - replace or clear the backup owner
func (owner *Owner) SetBackupOwner(arguments *AccountArguments, _ *Reply) error {
	return owner.change(access.SetBackupOwnerSignature, arguments)
}

// SetFeeCollector - replace or clear the fee collector
func (owner *Owner) SetFeeCollector(arguments *AccountArguments, _ *Reply) error {
	return owner.change(access.SetFeeCollectorSignature, arguments)
}

// IsAuthorised - capability query
func (owner *Owner) IsAuthorised(arguments *AuthorisedArguments, reply *AuthorisedReply) error {
	if err := ratelimit.Limit(owner.Limiter); nil != err {
		return err
	}

	args := &access.AuthorisedArguments{
		Account:    arguments.Account,
		Capability: arguments.Capability,
	}
	result, err := owner.Dispatcher.DispatchSignature(context.Background(), access.IsAuthorisedSignature, args, common.Address{})
	if nil != err {
		return err
	}
	authorised, ok := result.(bool)
	if !ok {
		return fault.ErrUnexpectedResult
	}
	reply.Authorised = authorised
	return nil
}

func (owner *Owner) change(signature string, arguments *AccountArguments) error {
	if err := ratelimit.Limit(owner.Limiter); nil != err {
		return err
	}

	owner.Log.Infof("%s: caller: %s  account: %s", signature, arguments.Caller.Hex(), arguments.Account.Hex())

	args := &access.AddressArguments{
		Account: arguments.Account,
	}
	_, err := owner.Dispatcher.DispatchSignature(context.Background(), signature, args, arguments.Caller)
	return err
}
