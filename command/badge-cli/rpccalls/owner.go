// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/badged/access"
	"github.com/bitmark-inc/badged/rpc/owner"
)

// RoleChange - the methods that replace one account role
var RoleChange = map[string]string{
	"owner":         "Owner.Transfer",
	"backup-owner":  "Owner.SetBackupOwner",
	"fee-collector": "Owner.SetFeeCollector",
}

// GetRoles - the owner, backup owner and fee collector
func (client *Client) GetRoles() (*access.Roles, error) {
	var reply access.Roles
	if err := client.call("Owner.Roles", owner.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ChangeRole - replace the account holding a role
func (client *Client) ChangeRole(role string, caller common.Address, account common.Address) error {
	method, ok := RoleChange[role]
	if !ok {
		return ErrUnknownRole
	}
	arguments := owner.AccountArguments{
		Caller:  caller,
		Account: account,
	}
	return client.call(method, arguments, &owner.Reply{})
}

// IsAuthorised - whether an account holds a capability
func (client *Client) IsAuthorised(account common.Address, capability access.Capability) (bool, error) {
	arguments := owner.AuthorisedArguments{
		Account:    account,
		Capability: capability,
	}
	var reply owner.AuthorisedReply
	if err := client.call("Owner.IsAuthorised", arguments, &reply); nil != err {
		return false, err
	}
	return reply.Authorised, nil
}
