// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package endorsement

import (
	"encoding/binary"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/storage"
	"github.com/bitmark-inc/badged/util"
	"github.com/bitmark-inc/logger"
)

// Status - state of one endorsement
type Status uint8

// NotSet -> Endorsed <-> Revoked
const (
	NotSet   Status = 0
	Endorsed Status = 1
	Revoked  Status = 2
)

var statusNames = map[Status]string{
	NotSet:   "NotSet",
	Endorsed: "Endorsed",
	Revoked:  "Revoked",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "*unknown*"
}

// MarshalText - status as its name
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText - status from its name
func (s *Status) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if name == string(text) {
			*s = status
			return nil
		}
	}
	return fault.ErrInvalidArguments
}

// Endorsement - one endorser's attestation of a token
//
// the zero value is the sentinel for a missing record
type Endorsement struct {
	Endorser  common.Address `json:"endorser"`
	Timestamp uint64         `json:"timestamp"`
	Status    Status         `json:"status"`
}

// Totals - record counts of a token
type Totals struct {
	Total  uint64 `json:"total"`
	Active uint64 `json:"active"`
}

// Time - timestamp as a time
func (e Endorsement) Time() time.Time {
	return time.Unix(int64(e.Timestamp), 0).UTC()
}

// badge ++ token id
func tokenKey(badge common.Address, tokenId uint64) []byte {
	key := make([]byte, common.AddressLength+8)
	copy(key, badge.Bytes())
	binary.BigEndian.PutUint64(key[common.AddressLength:], tokenId)
	return key
}

// badge ++ token id ++ endorser
func recordKey(badge common.Address, tokenId uint64, endorser common.Address) []byte {
	return append(tokenKey(badge, tokenId), endorser.Bytes()...)
}

// badge ++ token id ++ position
func indexKey(badge common.Address, tokenId uint64, n uint64) []byte {
	key := tokenKey(badge, tokenId)
	position := make([]byte, 8)
	binary.BigEndian.PutUint64(position, n)
	return append(key, position...)
}

func readRecord(trx storage.Transaction, badge common.Address, tokenId uint64, endorser common.Address) Endorsement {
	record := trx.Get(storage.Pool.Endorsements, recordKey(badge, tokenId, endorser))
	if nil == record {
		return Endorsement{}
	}

	u := util.NewUnpacker(record)
	e := Endorsement{
		Endorser:  endorser,
		Timestamp: u.Uint64(),
		Status:    Status(u.Uint64()),
	}
	if err := u.Err(); nil != err {
		logger.Panicf("endorsement: badge: %s  token: %d  endorser: %s  corrupt record: %x  error: %s", badge.Hex(), tokenId, endorser.Hex(), record, err)
	}
	return e
}

func writeRecord(trx storage.Transaction, badge common.Address, tokenId uint64, e Endorsement) {
	record := util.Packed{}.
		PackUint64(e.Timestamp).
		PackUint64(uint64(e.Status))
	trx.Put(storage.Pool.Endorsements, recordKey(badge, tokenId, e.Endorser), record)
}

func readTotals(trx storage.Transaction, badge common.Address, tokenId uint64) Totals {
	record := trx.Get(storage.Pool.EndorsementTotals, tokenKey(badge, tokenId))
	if nil == record {
		return Totals{}
	}
	if 16 != len(record) {
		logger.Panicf("endorsement: badge: %s  token: %d  corrupt totals: %x", badge.Hex(), tokenId, record)
	}
	return Totals{
		Total:  binary.BigEndian.Uint64(record[:8]),
		Active: binary.BigEndian.Uint64(record[8:]),
	}
}

func writeTotals(trx storage.Transaction, badge common.Address, tokenId uint64, totals Totals) {
	record := make([]byte, 16)
	binary.BigEndian.PutUint64(record[:8], totals.Total)
	binary.BigEndian.PutUint64(record[8:], totals.Active)
	trx.Put(storage.Pool.EndorsementTotals, tokenKey(badge, tokenId), record)
}

func readIndex(trx storage.Transaction, badge common.Address, tokenId uint64, n uint64) common.Address {
	record := trx.Get(storage.Pool.EndorsementIndex, indexKey(badge, tokenId, n))
	if common.AddressLength != len(record) {
		logger.Panicf("endorsement: badge: %s  token: %d  index: %d  corrupt entry: %x", badge.Hex(), tokenId, n, record)
	}
	return common.BytesToAddress(record)
}

func writeIndex(trx storage.Transaction, badge common.Address, tokenId uint64, n uint64, endorser common.Address) {
	trx.Put(storage.Pool.EndorsementIndex, indexKey(badge, tokenId, n), endorser.Bytes())
}
