// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/storage"
	"github.com/bitmark-inc/badged/util"
	"github.com/bitmark-inc/logger"
)

// key in PaymentTokens for the token creation nonce
var paymentNonceKey = []byte("nonce")

// Payment - a fungible payment token
type Payment struct {
	Address     common.Address `json:"address"`
	Name        string         `json:"name"`
	Symbol      string         `json:"symbol"`
	Decimals    uint64         `json:"decimals"`
	Issuer      common.Address `json:"issuer"`
	TotalSupply uint64         `json:"totalSupply,string"`
}

// Payments - the payment token service
type Payments struct {
	log *logger.L
}

// NewPayments - create the payment token service
func NewPayments() *Payments {
	return &Payments{
		log: logger.New("paymenttoken"),
	}
}

// Create - new payment token, only its issuer can create supply
func (p *Payments) Create(trx storage.Transaction, issuer common.Address, name string, symbol string, decimals uint64) (common.Address, error) {
	if (common.Address{}) == issuer {
		return common.Address{}, fault.ErrInvalidAddress
	}
	if "" == name || "" == symbol {
		return common.Address{}, fault.ErrMissingParameters
	}

	nonce, _ := trx.GetN(storage.Pool.PaymentTokens, paymentNonceKey)
	token := crypto.CreateAddress(issuer, nonce)
	trx.PutN(storage.Pool.PaymentTokens, paymentNonceKey, nonce+1)

	if trx.Has(storage.Pool.PaymentTokens, token.Bytes()) {
		return common.Address{}, fault.ErrTokenAlreadyExists
	}

	p.write(trx, Payment{
		Address:  token,
		Name:     name,
		Symbol:   symbol,
		Decimals: decimals,
		Issuer:   issuer,
	})

	p.log.Infof("created payment token: %s  %q (%s)  issuer: %s", token.Hex(), name, symbol, issuer.Hex())
	return token, nil
}

// Get - payment token details
func (p *Payments) Get(trx storage.Transaction, token common.Address) (Payment, error) {
	record := trx.Get(storage.Pool.PaymentTokens, token.Bytes())
	if nil == record {
		return Payment{}, fault.ErrUnknownPaymentToken
	}

	u := util.NewUnpacker(record)
	t := Payment{
		Address:     token,
		Name:        u.String(),
		Symbol:      u.String(),
		Decimals:    u.Uint64(),
		Issuer:      common.BytesToAddress(u.Bytes()),
		TotalSupply: u.Uint64(),
	}
	if err := u.Err(); nil != err {
		logger.Panicf("paymenttoken: token: %s  corrupt record: %x  error: %s", token.Hex(), record, err)
	}
	return t, nil
}

// Issue - create new supply for an account, only the issuer may do this
func (p *Payments) Issue(trx storage.Transaction, caller common.Address, token common.Address, to common.Address, amount uint64) error {
	t, err := p.Get(trx, token)
	if nil != err {
		return err
	}
	if caller != t.Issuer {
		return fault.ErrUnauthorised
	}
	if (common.Address{}) == to {
		return fault.ErrInvalidAddress
	}

	if t.TotalSupply+amount < t.TotalSupply {
		return fault.ErrAmountOverflow
	}
	balance := p.BalanceOf(trx, token, to)
	if balance+amount < balance {
		return fault.ErrAmountOverflow
	}

	t.TotalSupply += amount
	p.write(trx, t)
	trx.PutN(storage.Pool.PaymentBalances, holderKey(token, to), balance+amount)

	p.log.Infof("token: %s  issued: %d  to: %s", token.Hex(), amount, to.Hex())
	return nil
}

// BalanceOf - holdings of an account
func (p *Payments) BalanceOf(trx storage.Transaction, token common.Address, holder common.Address) uint64 {
	balance, _ := trx.GetN(storage.Pool.PaymentBalances, holderKey(token, holder))
	return balance
}

// Approve - allow a spender to pull up to an amount from the owner
func (p *Payments) Approve(trx storage.Transaction, token common.Address, owner common.Address, spender common.Address, amount uint64) error {
	if _, err := p.Get(trx, token); nil != err {
		return err
	}
	if (common.Address{}) == spender {
		return fault.ErrInvalidAddress
	}
	trx.PutN(storage.Pool.PaymentAllowances, allowanceKey(token, owner, spender), amount)

	p.log.Debugf("token: %s  owner: %s  approved: %s  amount: %d", token.Hex(), owner.Hex(), spender.Hex(), amount)
	return nil
}

// Allowance - remaining amount a spender may pull from an owner
func (p *Payments) Allowance(trx storage.Transaction, token common.Address, owner common.Address, spender common.Address) uint64 {
	allowance, _ := trx.GetN(storage.Pool.PaymentAllowances, allowanceKey(token, owner, spender))
	return allowance
}

// Transfer - move an amount between accounts
func (p *Payments) Transfer(trx storage.Transaction, token common.Address, from common.Address, to common.Address, amount uint64) error {
	if _, err := p.Get(trx, token); nil != err {
		return err
	}
	return p.move(trx, token, from, to, amount)
}

// TransferFrom - spender pulls an amount from an account using its allowance
//
// returns false without changing anything if the allowance or the
// balance is insufficient
func (p *Payments) TransferFrom(trx storage.Transaction, token common.Address, spender common.Address, from common.Address, to common.Address, amount uint64) (bool, error) {
	if _, err := p.Get(trx, token); nil != err {
		return false, err
	}

	allowance := p.Allowance(trx, token, from, spender)
	if allowance < amount {
		p.log.Debugf("token: %s  from: %s  spender: %s  allowance: %d < %d", token.Hex(), from.Hex(), spender.Hex(), allowance, amount)
		return false, nil
	}
	if p.BalanceOf(trx, token, from) < amount {
		p.log.Debugf("token: %s  from: %s  balance below: %d", token.Hex(), from.Hex(), amount)
		return false, nil
	}

	if err := p.move(trx, token, from, to, amount); nil != err {
		return false, err
	}
	trx.PutN(storage.Pool.PaymentAllowances, allowanceKey(token, from, spender), allowance-amount)
	return true, nil
}

func (p *Payments) move(trx storage.Transaction, token common.Address, from common.Address, to common.Address, amount uint64) error {
	if (common.Address{}) == to {
		return fault.ErrInvalidAddress
	}

	fromBalance := p.BalanceOf(trx, token, from)
	if fromBalance < amount {
		return fault.ErrInsufficientBalance
	}
	if from == to {
		return nil
	}
	toBalance := p.BalanceOf(trx, token, to)
	if toBalance+amount < toBalance {
		return fault.ErrAmountOverflow
	}

	trx.PutN(storage.Pool.PaymentBalances, holderKey(token, from), fromBalance-amount)
	trx.PutN(storage.Pool.PaymentBalances, holderKey(token, to), toBalance+amount)

	p.log.Debugf("token: %s  from: %s  to: %s  amount: %d", token.Hex(), from.Hex(), to.Hex(), amount)
	return nil
}

func (p *Payments) write(trx storage.Transaction, t Payment) {
	record := util.Packed{}.
		PackString(t.Name).
		PackString(t.Symbol).
		PackUint64(t.Decimals).
		PackBytes(t.Issuer.Bytes()).
		PackUint64(t.TotalSupply)
	trx.Put(storage.Pool.PaymentTokens, t.Address.Bytes(), record)
}

// token ++ holder
func holderKey(token common.Address, holder common.Address) []byte {
	return append(token.Bytes(), holder.Bytes()...)
}

// token ++ owner ++ spender
func allowanceKey(token common.Address, owner common.Address, spender common.Address) []byte {
	key := append(token.Bytes(), owner.Bytes()...)
	return append(key, spender.Bytes()...)
}
