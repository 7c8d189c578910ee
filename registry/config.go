// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/badged/storage"
	"github.com/bitmark-inc/badged/util"
	"github.com/bitmark-inc/logger"
)

// keys in the MintDefaults region
var (
	defaultPaymentKey = []byte("payment")
	defaultFeeKey     = []byte("fee")
)

// MintParams - payment token and fee charged per mint
type MintParams struct {
	Payment common.Address `json:"payment"`
	Fee     uint64         `json:"fee,string"`
}

// BadgeConfig - configuration of one badge collection
//
// when Custom is false the mint parameters are the global defaults
type BadgeConfig struct {
	MintEnabled        bool           `json:"mintEnabled"`
	EndorsementEnabled bool           `json:"endorsementEnabled"`
	Custom             bool           `json:"customMintParams"`
	MintPayment        common.Address `json:"mintPayment"`
	MintFee            uint64         `json:"mintFee,string"`
}

// DefaultMintParams - the global default mint parameters
func DefaultMintParams(trx storage.Transaction) MintParams {
	fee, _ := trx.GetN(storage.Pool.MintDefaults, defaultFeeKey)
	return MintParams{
		Payment: common.BytesToAddress(trx.Get(storage.Pool.MintDefaults, defaultPaymentKey)),
		Fee:     fee,
	}
}

// SetDefaultMintParams - replace the global default mint parameters
func SetDefaultMintParams(trx storage.Transaction, params MintParams) {
	trx.Put(storage.Pool.MintDefaults, defaultPaymentKey, params.Payment.Bytes())
	trx.PutN(storage.Pool.MintDefaults, defaultFeeKey, params.Fee)
}

// Read - effective configuration of a badge
//
// an unconfigured badge has mint and endorsement disabled and the
// default mint parameters; the second result is false in that case
func Read(trx storage.Transaction, badge common.Address) (BadgeConfig, bool) {
	config, found := readStored(trx, badge)
	if !config.Custom {
		defaults := DefaultMintParams(trx)
		config.MintPayment = defaults.Payment
		config.MintFee = defaults.Fee
	}
	return config, found
}

// GetMintParams - per badge override if present, else the defaults
func GetMintParams(trx storage.Transaction, badge common.Address) MintParams {
	config, _ := Read(trx, badge)
	return MintParams{
		Payment: config.MintPayment,
		Fee:     config.MintFee,
	}
}

// IsMintEnabled - check the mint gate of a badge
func IsMintEnabled(trx storage.Transaction, badge common.Address) bool {
	config, _ := readStored(trx, badge)
	return config.MintEnabled
}

// IsEndorsementEnabled - check the endorsement gate of a badge
func IsEndorsementEnabled(trx storage.Transaction, badge common.Address) bool {
	config, _ := readStored(trx, badge)
	return config.EndorsementEnabled
}

// the stored record without default substitution
func readStored(trx storage.Transaction, badge common.Address) (BadgeConfig, bool) {
	record := trx.Get(storage.Pool.BadgeConfig, badge.Bytes())
	if nil == record {
		return BadgeConfig{}, false
	}

	u := util.NewUnpacker(record)
	config := BadgeConfig{
		MintEnabled:        u.Bool(),
		EndorsementEnabled: u.Bool(),
		Custom:             u.Bool(),
		MintPayment:        common.BytesToAddress(u.Bytes()),
		MintFee:            u.Uint64(),
	}
	if err := u.Err(); nil != err {
		logger.Panicf("registry: badge: %s  corrupt config: %x  error: %s", badge.Hex(), record, err)
	}
	return config, true
}

func writeStored(trx storage.Transaction, badge common.Address, config BadgeConfig) {
	record := util.Packed{}.
		PackBool(config.MintEnabled).
		PackBool(config.EndorsementEnabled).
		PackBool(config.Custom).
		PackBytes(config.MintPayment.Bytes()).
		PackUint64(config.MintFee)
	trx.Put(storage.Pool.BadgeConfig, badge.Bytes(), record)
}
