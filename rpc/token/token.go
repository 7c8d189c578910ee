// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - RPC access to the in-process badge and payment
// token services
//
// these services are not modules of the router, every call is its own
// unit of work on the storage context
package token

import (
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/badged/rpc/ratelimit"
	"github.com/bitmark-inc/badged/storage"
	"github.com/bitmark-inc/badged/token"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitToken = 200
	rateBurstToken = 100
)

// Token - type for the RPC
type Token struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Badges   *token.Badges
	Payments *token.Payments
}

// CreateBadgeArguments - new badge collection
type CreateBadgeArguments struct {
	Caller common.Address `json:"caller"`
	Name   string         `json:"name"`
	Symbol string         `json:"symbol"`
}

// CreatePaymentArguments - new payment token
type CreatePaymentArguments struct {
	Caller   common.Address `json:"caller"`
	Name     string         `json:"name"`
	Symbol   string         `json:"symbol"`
	Decimals uint64         `json:"decimals"`
}

// AddressReply - the address of a created token
type AddressReply struct {
	Address common.Address `json:"address"`
}

// SetAuthorisedArguments - allow or deny a minter
type SetAuthorisedArguments struct {
	Caller     common.Address `json:"caller"`
	Badge      common.Address `json:"badge"`
	Minter     common.Address `json:"minter"`
	Authorised bool           `json:"authorised"`
}

// BadgeArguments - a badge collection
type BadgeArguments struct {
	Badge common.Address `json:"badge"`
}

// BadgeTokenArguments - one token of a collection
type BadgeTokenArguments struct {
	Badge   common.Address `json:"badge"`
	TokenId uint64         `json:"tokenId,string"`
}

// OwnerReply - holder of a badge token
type OwnerReply struct {
	Owner common.Address `json:"owner"`
}

// URIReply - metadata URI of a badge token
type URIReply struct {
	TokenURI string `json:"tokenURI"`
}

// SupplyReply - number of minted tokens
type SupplyReply struct {
	TotalSupply uint64 `json:"totalSupply,string"`
}

// PaymentArguments - a payment token
type PaymentArguments struct {
	Token common.Address `json:"token"`
}

// AmountArguments - issue, approve or transfer an amount
//
// Account is the recipient for Issue and Transfer and the spender
// for Approve
type AmountArguments struct {
	Caller  common.Address `json:"caller"`
	Token   common.Address `json:"token"`
	Account common.Address `json:"account"`
	Amount  uint64         `json:"amount,string"`
}

// BalanceArguments - arguments for BalanceOf
type BalanceArguments struct {
	Token  common.Address `json:"token"`
	Holder common.Address `json:"holder"`
}

// AllowanceArguments - arguments for Allowance
type AllowanceArguments struct {
	Token   common.Address `json:"token"`
	Owner   common.Address `json:"owner"`
	Spender common.Address `json:"spender"`
}

// AmountReply - a balance or allowance
type AmountReply struct {
	Amount uint64 `json:"amount,string"`
}

// Reply - empty reply of a committed change
type Reply struct{}

// New - create the Token service
func New(log *logger.L, badges *token.Badges, payments *token.Payments) *Token {
	return &Token{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitToken, rateBurstToken),
		Badges:   badges,
		Payments: payments,
	}
}

// CreateBadge - a new collection created by the caller
func (t *Token) CreateBadge(arguments *CreateBadgeArguments, reply *AddressReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	t.Log.Infof("Token.CreateBadge: %+v", arguments)

	return storage.Execute(func(trx storage.Transaction) error {
		address, err := t.Badges.Create(trx, arguments.Caller, arguments.Name, arguments.Symbol)
		reply.Address = address
		return err
	})
}

// Badge - details of a collection
func (t *Token) Badge(arguments *BadgeArguments, reply *token.Collection) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	return storage.Execute(func(trx storage.Transaction) error {
		c, err := t.Badges.Get(trx, arguments.Badge)
		*reply = c
		return err
	})
}

// SetAuthorised - allow or deny a minter, creator only
func (t *Token) SetAuthorised(arguments *SetAuthorisedArguments, _ *Reply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	t.Log.Infof("Token.SetAuthorised: %+v", arguments)

	return storage.Execute(func(trx storage.Transaction) error {
		return t.Badges.SetAuthorised(trx, arguments.Caller, arguments.Badge, arguments.Minter, arguments.Authorised)
	})
}

// OwnerOf - holder of a badge token
func (t *Token) OwnerOf(arguments *BadgeTokenArguments, reply *OwnerReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	return storage.Execute(func(trx storage.Transaction) error {
		owner, err := t.Badges.OwnerOf(trx, arguments.Badge, arguments.TokenId)
		reply.Owner = owner
		return err
	})
}

// TokenURI - metadata URI of a badge token
func (t *Token) TokenURI(arguments *BadgeTokenArguments, reply *URIReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	return storage.Execute(func(trx storage.Transaction) error {
		uri, err := t.Badges.TokenURI(trx, arguments.Badge, arguments.TokenId)
		reply.TokenURI = uri
		return err
	})
}

// TotalSupply - number of tokens minted in a collection
func (t *Token) TotalSupply(arguments *BadgeArguments, reply *SupplyReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	return storage.Execute(func(trx storage.Transaction) error {
		n, err := t.Badges.TotalSupply(trx, arguments.Badge)
		reply.TotalSupply = n
		return err
	})
}

// CreatePayment - a new payment token issued by the caller
func (t *Token) CreatePayment(arguments *CreatePaymentArguments, reply *AddressReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	t.Log.Infof("Token.CreatePayment: %+v", arguments)

	return storage.Execute(func(trx storage.Transaction) error {
		address, err := t.Payments.Create(trx, arguments.Caller, arguments.Name, arguments.Symbol, arguments.Decimals)
		reply.Address = address
		return err
	})
}

// Payment - details of a payment token
func (t *Token) Payment(arguments *PaymentArguments, reply *token.Payment) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	return storage.Execute(func(trx storage.Transaction) error {
		p, err := t.Payments.Get(trx, arguments.Token)
		*reply = p
		return err
	})
}

// Issue - new units to an account, issuer only
func (t *Token) Issue(arguments *AmountArguments, _ *Reply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	t.Log.Infof("Token.Issue: %+v", arguments)

	return storage.Execute(func(trx storage.Transaction) error {
		return t.Payments.Issue(trx, arguments.Caller, arguments.Token, arguments.Account, arguments.Amount)
	})
}

// Approve - let a spender draw from the caller's balance
func (t *Token) Approve(arguments *AmountArguments, _ *Reply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	t.Log.Infof("Token.Approve: %+v", arguments)

	return storage.Execute(func(trx storage.Transaction) error {
		return t.Payments.Approve(trx, arguments.Token, arguments.Caller, arguments.Account, arguments.Amount)
	})
}

// Transfer - move units from the caller to an account
func (t *Token) Transfer(arguments *AmountArguments, _ *Reply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	t.Log.Infof("Token.Transfer: %+v", arguments)

	return storage.Execute(func(trx storage.Transaction) error {
		return t.Payments.Transfer(trx, arguments.Token, arguments.Caller, arguments.Account, arguments.Amount)
	})
}

// BalanceOf - units held by an account
func (t *Token) BalanceOf(arguments *BalanceArguments, reply *AmountReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	return storage.Execute(func(trx storage.Transaction) error {
		if _, err := t.Payments.Get(trx, arguments.Token); nil != err {
			return err
		}
		reply.Amount = t.Payments.BalanceOf(trx, arguments.Token, arguments.Holder)
		return nil
	})
}

// Allowance - units a spender may still draw from an owner
func (t *Token) Allowance(arguments *AllowanceArguments, reply *AmountReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	return storage.Execute(func(trx storage.Transaction) error {
		if _, err := t.Payments.Get(trx, arguments.Token); nil != err {
			return err
		}
		reply.Amount = t.Payments.Allowance(trx, arguments.Token, arguments.Owner, arguments.Spender)
		return nil
	})
}
