// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mint - fee gated creation of badge tokens
//
// A mint first takes the configured fee from the payer, then asks the
// badge collection to create the token. Both external calls run in the
// transaction of the dispatched operation, so a failure of either one
// leaves nothing behind.
package mint

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/badged/access"
	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/module"
	"github.com/bitmark-inc/badged/registry"
	"github.com/bitmark-inc/logger"
)

// ModuleName - name under which the mint workflow is deployed
const ModuleName = "BadgeMint"

// MintSignature - the only operation
const MintSignature = "mint(address,address,address,string)"

// Arguments - mint request
//
// a zero payer means the platform subsidises the mint
type Arguments struct {
	Badge     common.Address `json:"badge"`
	Payer     common.Address `json:"payer"`
	Recipient common.Address `json:"recipient"`
	TokenURI  string         `json:"tokenURI"`
}

// Result - the created token
type Result struct {
	Badge   common.Address `json:"badge"`
	TokenId uint64         `json:"tokenId,string"`
}

// Mint - the mint workflow module
type Mint struct {
	log      *logger.L
	badges   BadgeTokens
	payments PaymentTokens
	platform common.Address
}

// New - create the mint module
//
// platform is the identity the module presents to the external
// services as badge minter and fee spender
func New(badges BadgeTokens, payments PaymentTokens, platform common.Address) *Mint {
	return &Mint{
		log:      logger.New("mint"),
		badges:   badges,
		payments: payments,
		platform: platform,
	}
}

// Name - module name
func (m *Mint) Name() string {
	return ModuleName
}

// Operations - entry points
func (m *Mint) Operations() []module.Operation {
	return []module.Operation{
		{Signature: MintSignature, Handler: m.mint},
	}
}

func (m *Mint) mint(call *module.Call, arguments interface{}) (interface{}, error) {
	args, ok := arguments.(*Arguments)
	if !ok {
		return nil, fault.ErrInvalidArguments
	}

	if !registry.IsMintEnabled(call.Trx, args.Badge) {
		return nil, fault.ErrMintDisabled
	}
	if (common.Address{}) == args.Recipient {
		return nil, fault.ErrInvalidAddress
	}

	// everything the workflow depends on is read before the first
	// external call
	params := registry.GetMintParams(call.Trx, args.Badge)
	collector := access.FeeCollector(call.Trx)

	if (common.Address{}) != args.Payer && params.Fee > 0 {
		paid, err := m.payments.TransferFrom(call.Trx, params.Payment, m.platform, args.Payer, collector, params.Fee)
		if nil != err {
			m.log.Warnf("badge: %s  payer: %s  fee: %d  transfer error: %s", args.Badge.Hex(), args.Payer.Hex(), params.Fee, err)
			return nil, fault.ErrPaymentFailed
		}
		if !paid {
			m.log.Infof("badge: %s  payer: %s  fee: %d  transfer refused", args.Badge.Hex(), args.Payer.Hex(), params.Fee)
			return nil, fault.ErrPaymentFailed
		}
	}

	tokenId, err := m.badges.Mint(call.Trx, args.Badge, m.platform, args.Recipient, args.TokenURI)
	if nil != err {
		return nil, err
	}

	m.log.Infof("badge: %s  token: %d  recipient: %s  payer: %s", args.Badge.Hex(), tokenId, args.Recipient.Hex(), args.Payer.Hex())
	return &Result{
		Badge:   args.Badge,
		TokenId: tokenId,
	}, nil
}
