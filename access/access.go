// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package access - role holders and capability checks
//
// The Roles region is written only through this package.
package access

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/storage"
)

// Capability - what a caller is allowed to do
type Capability uint8

// capabilities
const (
	AdminRole        Capability = iota + 1 // owner or backup owner
	OwnerRole                              // owner only
	FeeCollectorRole                       // fee collector only
)

// keys in the Roles region
var (
	ownerKey       = []byte("owner")
	backupKey      = []byte("backup")
	collectorKey   = []byte("collector")
	initialisedKey = []byte("initialised")
)

// Roles - the current role holders
type Roles struct {
	Owner        common.Address `json:"owner"`
	BackupOwner  common.Address `json:"backupOwner"`
	FeeCollector common.Address `json:"feeCollector"`
}

// String - capability name
func (c Capability) String() string {
	switch c {
	case AdminRole:
		return "AdminRole"
	case OwnerRole:
		return "OwnerRole"
	case FeeCollectorRole:
		return "FeeCollectorRole"
	default:
		return "*unknown*"
	}
}

// Valid - check a capability value received from outside
func (c Capability) Valid() bool {
	return c >= AdminRole && c <= FeeCollectorRole
}

// Read - fetch all role holders
func Read(trx storage.Transaction) Roles {
	return Roles{
		Owner:        get(trx, ownerKey),
		BackupOwner:  get(trx, backupKey),
		FeeCollector: get(trx, collectorKey),
	}
}

// Owner - the current owner
func Owner(trx storage.Transaction) common.Address {
	return get(trx, ownerKey)
}

// FeeCollector - destination of mint fees
func FeeCollector(trx storage.Transaction) common.Address {
	return get(trx, collectorKey)
}

// IsAuthorised - check whether an account holds a capability
//
// the zero address never holds any capability
func IsAuthorised(trx storage.Transaction, account common.Address, capability Capability) bool {
	if (common.Address{}) == account {
		return false
	}

	switch capability {
	case AdminRole:
		return account == get(trx, ownerKey) || account == get(trx, backupKey)
	case OwnerRole:
		return account == get(trx, ownerKey)
	case FeeCollectorRole:
		return account == get(trx, collectorKey)
	default:
		return false
	}
}

// Require - fail with an authorisation error unless the account holds the capability
func Require(trx storage.Transaction, account common.Address, capability Capability) error {
	if !IsAuthorised(trx, account, capability) {
		return fault.ErrUnauthorised
	}
	return nil
}

// SetOwner - record the owner
func SetOwner(trx storage.Transaction, owner common.Address) error {
	if (common.Address{}) == owner {
		return fault.ErrInvalidAddress
	}
	trx.Put(storage.Pool.Roles, ownerKey, owner.Bytes())
	return nil
}

// SetBackupOwner - record the backup owner, zero address clears it
func SetBackupOwner(trx storage.Transaction, backup common.Address) {
	put(trx, backupKey, backup)
}

// SetFeeCollector - record the fee collector, zero address clears it
func SetFeeCollector(trx storage.Transaction, collector common.Address) {
	put(trx, collectorKey, collector)
}

// MarkInitialised - set the one-shot initialisation guard
func MarkInitialised(trx storage.Transaction) error {
	if IsInitialised(trx) {
		return fault.ErrAlreadyInitialised
	}
	trx.Put(storage.Pool.Roles, initialisedKey, []byte{0x01})
	return nil
}

// IsInitialised - check the one-shot initialisation guard
func IsInitialised(trx storage.Transaction) bool {
	return trx.Has(storage.Pool.Roles, initialisedKey)
}

func get(trx storage.Transaction, key []byte) common.Address {
	return common.BytesToAddress(trx.Get(storage.Pool.Roles, key))
}

func put(trx storage.Transaction, key []byte, account common.Address) {
	if (common.Address{}) == account {
		trx.Delete(storage.Pool.Roles, key)
		return
	}
	trx.Put(storage.Pool.Roles, key, account.Bytes())
}
