// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mint_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/fixtures"
	"github.com/bitmark-inc/badged/mint"
	"github.com/bitmark-inc/badged/registry"
	"github.com/bitmark-inc/badged/storage"
	"github.com/bitmark-inc/badged/token"
)

type world struct {
	badges   *token.Badges
	payments *token.Payments
	badge    common.Address
	usdc     common.Address
	mint     *mint.Mint
}

// a collection minted by the platform and a payment token held by Alice
func setupWorld(t *testing.T) *world {
	setupTestMint(t)

	w := &world{
		badges:   token.NewBadges(),
		payments: token.NewPayments(),
	}
	err := storage.Execute(func(trx storage.Transaction) error {
		var err error
		w.badge, err = w.badges.Create(trx, fixtures.Carol, "Hackathon Winner", "HACK")
		if nil != err {
			return err
		}
		if err := w.badges.SetAuthorised(trx, fixtures.Carol, w.badge, fixtures.Platform, true); nil != err {
			return err
		}
		w.usdc, err = w.payments.Create(trx, fixtures.Owner, "USD Coin", "USDC", 6)
		if nil != err {
			return err
		}
		return w.payments.Issue(trx, fixtures.Owner, w.usdc, fixtures.Alice, 2000000)
	})
	if nil != err {
		t.Fatalf("world setup error: %s", err)
	}

	_, err = fixtures.Run(registry.New(), registry.SetCustomMintParamsSignature, fixtures.Owner, &registry.CustomMintParamsArguments{
		Badge:   w.badge,
		Fee:     defaultFee,
		Payment: w.usdc,
		Enabled: true,
	})
	if nil != err {
		t.Fatalf("configure badge error: %s", err)
	}

	w.mint = mint.New(w.badges, w.payments, fixtures.Platform)
	return w
}

func (w *world) read(t *testing.T, f func(trx storage.Transaction)) {
	err := storage.Execute(func(trx storage.Transaction) error {
		f(trx)
		return nil
	})
	assert.Nil(t, err, "read error")
}

func TestMintWithPaymentThenSubsidised(t *testing.T) {
	w := setupWorld(t)
	defer teardownTestMint()

	err := fixtures.Write(func(trx storage.Transaction) {
		_ = w.payments.Approve(trx, w.usdc, fixtures.Alice, fixtures.Platform, defaultFee)
	})
	assert.Nil(t, err, "approve error")

	result, err := fixtures.Run(w.mint, mint.MintSignature, fixtures.Alice, &mint.Arguments{
		Badge:     w.badge,
		Payer:     fixtures.Alice,
		Recipient: fixtures.Alice,
		TokenURI:  "ipfs://first",
	})
	assert.Nil(t, err, "paid mint error")
	assert.Equal(t, uint64(0), result.(*mint.Result).TokenId, "wrong first token")

	w.read(t, func(trx storage.Transaction) {
		assert.Equal(t, uint64(defaultFee), w.payments.BalanceOf(trx, w.usdc, fixtures.FeeCollector), "collector not paid")
		owner, err := w.badges.OwnerOf(trx, w.badge, 0)
		assert.Nil(t, err, "owner error")
		assert.Equal(t, fixtures.Alice, owner, "wrong owner")
	})

	result, err = fixtures.Run(w.mint, mint.MintSignature, fixtures.Owner, &mint.Arguments{
		Badge:     w.badge,
		Payer:     common.Address{},
		Recipient: fixtures.Owner,
		TokenURI:  "ipfs://second",
	})
	assert.Nil(t, err, "subsidised mint error")
	assert.Equal(t, uint64(1), result.(*mint.Result).TokenId, "wrong second token")

	w.read(t, func(trx storage.Transaction) {
		assert.Equal(t, uint64(defaultFee), w.payments.BalanceOf(trx, w.usdc, fixtures.FeeCollector), "collector balance changed")
		assert.Equal(t, uint64(2000000-defaultFee), w.payments.BalanceOf(trx, w.usdc, fixtures.Alice), "payer balance changed")
		owner, _ := w.badges.OwnerOf(trx, w.badge, 1)
		assert.Equal(t, fixtures.Owner, owner, "wrong owner")
	})
}

func TestMintInsufficientAllowanceCreatesNothing(t *testing.T) {
	w := setupWorld(t)
	defer teardownTestMint()

	err := fixtures.Write(func(trx storage.Transaction) {
		_ = w.payments.Approve(trx, w.usdc, fixtures.Alice, fixtures.Platform, defaultFee-1)
	})
	assert.Nil(t, err, "approve error")

	_, err = fixtures.Run(w.mint, mint.MintSignature, fixtures.Alice, &mint.Arguments{
		Badge:     w.badge,
		Payer:     fixtures.Alice,
		Recipient: fixtures.Alice,
		TokenURI:  "ipfs://first",
	})
	assert.Equal(t, fault.ErrPaymentFailed, err, "wrong error")

	w.read(t, func(trx storage.Transaction) {
		supply, err := w.badges.TotalSupply(trx, w.badge)
		assert.Nil(t, err, "supply error")
		assert.Equal(t, uint64(0), supply, "token created")
		assert.Equal(t, uint64(0), w.payments.BalanceOf(trx, w.usdc, fixtures.FeeCollector), "collector paid")
	})
}

func TestMintUnauthorisedPlatformRollsBackPayment(t *testing.T) {
	w := setupWorld(t)
	defer teardownTestMint()

	err := fixtures.Write(func(trx storage.Transaction) {
		_ = w.payments.Approve(trx, w.usdc, fixtures.Alice, fixtures.Platform, defaultFee)
		_ = w.badges.SetAuthorised(trx, fixtures.Carol, w.badge, fixtures.Platform, false)
	})
	assert.Nil(t, err, "setup error")

	_, err = fixtures.Run(w.mint, mint.MintSignature, fixtures.Alice, &mint.Arguments{
		Badge:     w.badge,
		Payer:     fixtures.Alice,
		Recipient: fixtures.Alice,
		TokenURI:  "ipfs://first",
	})
	assert.Equal(t, fault.ErrUnauthorisedMinter, err, "wrong error")

	w.read(t, func(trx storage.Transaction) {
		assert.Equal(t, uint64(0), w.payments.BalanceOf(trx, w.usdc, fixtures.FeeCollector), "payment kept")
		assert.Equal(t, uint64(defaultFee), w.payments.Allowance(trx, w.usdc, fixtures.Alice, fixtures.Platform), "allowance consumed")
	})
}
