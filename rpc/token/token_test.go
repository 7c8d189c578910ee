// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/fixtures"
	rpctoken "github.com/bitmark-inc/badged/rpc/token"
	"github.com/bitmark-inc/badged/storage"
	"github.com/bitmark-inc/badged/token"
	"github.com/bitmark-inc/logger"
)

func setupTestService(t *testing.T) *rpctoken.Token {
	fixtures.SetupTestLogger()
	if err := fixtures.SetupTestStorage(); nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	return rpctoken.New(logger.New(fixtures.LogCategory), token.NewBadges(), token.NewPayments())
}

func teardownTestService() {
	fixtures.TeardownTestStorage()
	fixtures.TeardownTestLogger()
}

func TestBadgeCollection(t *testing.T) {
	s := setupTestService(t)
	defer teardownTestService()

	var created rpctoken.AddressReply
	err := s.CreateBadge(&rpctoken.CreateBadgeArguments{Caller: fixtures.Alice, Name: "Speaker", Symbol: "SPK"}, &created)
	assert.Nil(t, err, "wrong CreateBadge")
	assert.NotEqual(t, common.Address{}, created.Address, "zero collection address")

	var c token.Collection
	err = s.Badge(&rpctoken.BadgeArguments{Badge: created.Address}, &c)
	assert.Nil(t, err, "wrong Badge")
	assert.Equal(t, "SPK", c.Symbol, "wrong symbol")
	assert.Equal(t, fixtures.Alice, c.Creator, "wrong creator")

	arg := rpctoken.SetAuthorisedArguments{
		Caller:     fixtures.Bob,
		Badge:      created.Address,
		Minter:     fixtures.Platform,
		Authorised: true,
	}
	err = s.SetAuthorised(&arg, &rpctoken.Reply{})
	assert.Equal(t, fault.ErrUnauthorised, err, "non creator authorised a minter")

	arg.Caller = fixtures.Alice
	err = s.SetAuthorised(&arg, &rpctoken.Reply{})
	assert.Nil(t, err, "wrong SetAuthorised")

	badges := token.NewBadges()
	err = storage.Execute(func(trx storage.Transaction) error {
		_, err := badges.Mint(trx, created.Address, fixtures.Platform, fixtures.Carol, "ipfs://speaker/0")
		return err
	})
	assert.Nil(t, err, "mint")

	var supply rpctoken.SupplyReply
	err = s.TotalSupply(&rpctoken.BadgeArguments{Badge: created.Address}, &supply)
	assert.Nil(t, err, "wrong TotalSupply")
	assert.Equal(t, uint64(1), supply.TotalSupply, "wrong supply")

	var owner rpctoken.OwnerReply
	err = s.OwnerOf(&rpctoken.BadgeTokenArguments{Badge: created.Address, TokenId: 0}, &owner)
	assert.Nil(t, err, "wrong OwnerOf")
	assert.Equal(t, fixtures.Carol, owner.Owner, "wrong owner")

	var uri rpctoken.URIReply
	err = s.TokenURI(&rpctoken.BadgeTokenArguments{Badge: created.Address, TokenId: 0}, &uri)
	assert.Nil(t, err, "wrong TokenURI")
	assert.Equal(t, "ipfs://speaker/0", uri.TokenURI, "wrong uri")

	err = s.OwnerOf(&rpctoken.BadgeTokenArguments{Badge: created.Address, TokenId: 1}, &owner)
	assert.Equal(t, fault.ErrTokenNotFound, err, "wrong error")
}

func TestPaymentToken(t *testing.T) {
	s := setupTestService(t)
	defer teardownTestService()

	var created rpctoken.AddressReply
	err := s.CreatePayment(&rpctoken.CreatePaymentArguments{Caller: fixtures.Owner, Name: "USD Coin", Symbol: "USDC", Decimals: 6}, &created)
	assert.Nil(t, err, "wrong CreatePayment")
	usdc := created.Address

	var p token.Payment
	err = s.Payment(&rpctoken.PaymentArguments{Token: usdc}, &p)
	assert.Nil(t, err, "wrong Payment")
	assert.Equal(t, uint64(6), p.Decimals, "wrong decimals")

	err = s.Issue(&rpctoken.AmountArguments{Caller: fixtures.Alice, Token: usdc, Account: fixtures.Alice, Amount: 10}, &rpctoken.Reply{})
	assert.Equal(t, fault.ErrUnauthorised, err, "non issuer issued")

	err = s.Issue(&rpctoken.AmountArguments{Caller: fixtures.Owner, Token: usdc, Account: fixtures.Alice, Amount: 10}, &rpctoken.Reply{})
	assert.Nil(t, err, "wrong Issue")

	err = s.Approve(&rpctoken.AmountArguments{Caller: fixtures.Alice, Token: usdc, Account: fixtures.Platform, Amount: 4}, &rpctoken.Reply{})
	assert.Nil(t, err, "wrong Approve")

	err = s.Transfer(&rpctoken.AmountArguments{Caller: fixtures.Alice, Token: usdc, Account: fixtures.Bob, Amount: 3}, &rpctoken.Reply{})
	assert.Nil(t, err, "wrong Transfer")

	var balance rpctoken.AmountReply
	err = s.BalanceOf(&rpctoken.BalanceArguments{Token: usdc, Holder: fixtures.Alice}, &balance)
	assert.Nil(t, err, "wrong BalanceOf")
	assert.Equal(t, uint64(7), balance.Amount, "wrong Alice balance")

	err = s.BalanceOf(&rpctoken.BalanceArguments{Token: usdc, Holder: fixtures.Bob}, &balance)
	assert.Nil(t, err, "wrong BalanceOf")
	assert.Equal(t, uint64(3), balance.Amount, "wrong Bob balance")

	var allowance rpctoken.AmountReply
	err = s.Allowance(&rpctoken.AllowanceArguments{Token: usdc, Owner: fixtures.Alice, Spender: fixtures.Platform}, &allowance)
	assert.Nil(t, err, "wrong Allowance")
	assert.Equal(t, uint64(4), allowance.Amount, "wrong allowance")

	err = s.BalanceOf(&rpctoken.BalanceArguments{Token: fixtures.USDC, Holder: fixtures.Alice}, &balance)
	assert.Equal(t, fault.ErrUnknownPaymentToken, err, "unknown token accepted")
}
