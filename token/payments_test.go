// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token_test

import (
	"math"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/fixtures"
	"github.com/bitmark-inc/badged/storage"
	"github.com/bitmark-inc/badged/token"
)

func createPayment(t *testing.T, p *token.Payments) common.Address {
	var address common.Address
	err := storage.Execute(func(trx storage.Transaction) error {
		var err error
		address, err = p.Create(trx, fixtures.Owner, "USD Coin", "USDC", 6)
		if nil != err {
			return err
		}
		return p.Issue(trx, fixtures.Owner, address, fixtures.Alice, 1000000)
	})
	if nil != err {
		t.Fatalf("create payment token error: %s", err)
	}
	return address
}

func TestIssue(t *testing.T) {
	setupTestToken(t)
	defer teardownTestToken()

	p := token.NewPayments()
	usdc := createPayment(t, p)

	err := storage.Execute(func(trx storage.Transaction) error {
		assert.Equal(t, uint64(1000000), p.BalanceOf(trx, usdc, fixtures.Alice), "wrong balance")
		assert.Equal(t, uint64(0), p.BalanceOf(trx, usdc, fixtures.Bob), "wrong empty balance")

		info, err := p.Get(trx, usdc)
		assert.Nil(t, err, "get error")
		assert.Equal(t, uint64(1000000), info.TotalSupply, "wrong supply")
		assert.Equal(t, uint64(6), info.Decimals, "wrong decimals")

		err = p.Issue(trx, fixtures.Stranger, usdc, fixtures.Stranger, 5)
		assert.Equal(t, fault.ErrUnauthorised, err, "only issuer issues")

		err = p.Issue(trx, fixtures.Owner, usdc, fixtures.Alice, math.MaxUint64)
		assert.Equal(t, fault.ErrAmountOverflow, err, "overflow accepted")

		err = p.Issue(trx, fixtures.Owner, fixtures.USDC, fixtures.Alice, 1)
		assert.Equal(t, fault.ErrUnknownPaymentToken, err, "unknown token")
		return nil
	})
	assert.Nil(t, err, "execute error")
}

func TestTransferFrom(t *testing.T) {
	setupTestToken(t)
	defer teardownTestToken()

	p := token.NewPayments()
	usdc := createPayment(t, p)

	err := storage.Execute(func(trx storage.Transaction) error {
		ok, err := p.TransferFrom(trx, usdc, fixtures.Platform, fixtures.Alice, fixtures.FeeCollector, 500000)
		assert.Nil(t, err, "transfer error")
		assert.False(t, ok, "transfer without allowance")

		err = p.Approve(trx, usdc, fixtures.Alice, fixtures.Platform, 600000)
		assert.Nil(t, err, "approve error")

		ok, err = p.TransferFrom(trx, usdc, fixtures.Platform, fixtures.Alice, fixtures.FeeCollector, 500000)
		assert.Nil(t, err, "transfer error")
		assert.True(t, ok, "transfer refused")

		assert.Equal(t, uint64(500000), p.BalanceOf(trx, usdc, fixtures.Alice), "wrong payer balance")
		assert.Equal(t, uint64(500000), p.BalanceOf(trx, usdc, fixtures.FeeCollector), "wrong collector balance")
		assert.Equal(t, uint64(100000), p.Allowance(trx, usdc, fixtures.Alice, fixtures.Platform), "wrong remaining allowance")

		ok, err = p.TransferFrom(trx, usdc, fixtures.Platform, fixtures.Alice, fixtures.FeeCollector, 500000)
		assert.Nil(t, err, "transfer error")
		assert.False(t, ok, "transfer beyond allowance")
		return nil
	})
	assert.Nil(t, err, "execute error")
}

func TestTransferFromInsufficientBalance(t *testing.T) {
	setupTestToken(t)
	defer teardownTestToken()

	p := token.NewPayments()
	usdc := createPayment(t, p)

	err := storage.Execute(func(trx storage.Transaction) error {
		_ = p.Approve(trx, usdc, fixtures.Bob, fixtures.Platform, 500000)

		ok, err := p.TransferFrom(trx, usdc, fixtures.Platform, fixtures.Bob, fixtures.FeeCollector, 500000)
		assert.Nil(t, err, "transfer error")
		assert.False(t, ok, "transfer without balance")
		assert.Equal(t, uint64(500000), p.Allowance(trx, usdc, fixtures.Bob, fixtures.Platform), "allowance consumed")

		_, err = p.TransferFrom(trx, fixtures.USDC, fixtures.Platform, fixtures.Bob, fixtures.FeeCollector, 1)
		assert.Equal(t, fault.ErrUnknownPaymentToken, err, "unknown token")
		return nil
	})
	assert.Nil(t, err, "execute error")
}

func TestTransfer(t *testing.T) {
	setupTestToken(t)
	defer teardownTestToken()

	p := token.NewPayments()
	usdc := createPayment(t, p)

	err := storage.Execute(func(trx storage.Transaction) error {
		assert.Nil(t, p.Transfer(trx, usdc, fixtures.Alice, fixtures.Bob, 250), "transfer error")
		assert.Equal(t, uint64(250), p.BalanceOf(trx, usdc, fixtures.Bob), "wrong balance")

		err := p.Transfer(trx, usdc, fixtures.Bob, fixtures.Carol, 251)
		assert.Equal(t, fault.ErrInsufficientBalance, err, "overdraft")

		err = p.Transfer(trx, usdc, fixtures.Bob, common.Address{}, 1)
		assert.Equal(t, fault.ErrInvalidAddress, err, "burn by transfer")
		return nil
	})
	assert.Nil(t, err, "execute error")
}
