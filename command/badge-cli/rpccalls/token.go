// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/ethereum/go-ethereum/common"

	rpctoken "github.com/bitmark-inc/badged/rpc/token"
)

// AmountAction - the payment token operations that move an amount
var AmountAction = map[string]string{
	"issue":    "Token.Issue",
	"approve":  "Token.Approve",
	"transfer": "Token.Transfer",
}

// CreateBadge - a new badge collection owned by the caller
func (client *Client) CreateBadge(caller common.Address, name string, symbol string) (*rpctoken.AddressReply, error) {
	arguments := rpctoken.CreateBadgeArguments{
		Caller: caller,
		Name:   name,
		Symbol: symbol,
	}
	var reply rpctoken.AddressReply
	if err := client.call("Token.CreateBadge", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// SetMinter - allow or deny a minter of a badge collection
func (client *Client) SetMinter(caller common.Address, badgeId common.Address, minter common.Address, authorised bool) error {
	arguments := rpctoken.SetAuthorisedArguments{
		Caller:     caller,
		Badge:      badgeId,
		Minter:     minter,
		Authorised: authorised,
	}
	return client.call("Token.SetAuthorised", arguments, &rpctoken.Reply{})
}

// CreatePayment - a new payment token issued by the caller
func (client *Client) CreatePayment(caller common.Address, name string, symbol string, decimals uint64) (*rpctoken.AddressReply, error) {
	arguments := rpctoken.CreatePaymentArguments{
		Caller:   caller,
		Name:     name,
		Symbol:   symbol,
		Decimals: decimals,
	}
	var reply rpctoken.AddressReply
	if err := client.call("Token.CreatePayment", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// MoveAmount - issue, approve or transfer
func (client *Client) MoveAmount(action string, caller common.Address, token common.Address, account common.Address, amount uint64) error {
	method, ok := AmountAction[action]
	if !ok {
		return ErrUnknownAction
	}
	arguments := rpctoken.AmountArguments{
		Caller:  caller,
		Token:   token,
		Account: account,
		Amount:  amount,
	}
	return client.call(method, arguments, &rpctoken.Reply{})
}

// GetBalance - payment token balance of a holder
func (client *Client) GetBalance(token common.Address, holder common.Address) (*rpctoken.AmountReply, error) {
	arguments := rpctoken.BalanceArguments{
		Token:  token,
		Holder: holder,
	}
	var reply rpctoken.AmountReply
	if err := client.call("Token.BalanceOf", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
