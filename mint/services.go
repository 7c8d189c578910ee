// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mint

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/badged/storage"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// BadgeTokens - the badge collection service tokens are created by
type BadgeTokens interface {
	Mint(trx storage.Transaction, badge common.Address, minter common.Address, recipient common.Address, tokenURI string) (uint64, error)
}

// PaymentTokens - the fungible token service fees are paid with
//
// TransferFrom returns false if the allowance or balance of the payer
// does not cover the amount
type PaymentTokens interface {
	TransferFrom(trx storage.Transaction, token common.Address, spender common.Address, from common.Address, to common.Address, amount uint64) (bool, error)
}
