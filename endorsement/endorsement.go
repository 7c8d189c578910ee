// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package endorsement - attestations of minted badge tokens
//
// Records are never deleted. Each (badge, token) keeps an append-only
// index of endorsers in first endorsement order and running totals so
// that both counts are available without a scan.
package endorsement

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/module"
	"github.com/bitmark-inc/badged/registry"
	"github.com/bitmark-inc/logger"
)

// ModuleName - name under which the endorsement engine is deployed
const ModuleName = "BadgeEndorsement"

// PageSize - number of entries returned by Get20Signature
const PageSize = 20

// operation signatures
const (
	EndorseSignature        = "endorse(address,uint256)"
	RevokeSignature         = "revokeEndorsement(address,uint256)"
	TotalSignature          = "getEndorsementsTotal(address,uint256)"
	InfoTotalSignature      = "getEndorsementInfoTotal(address,uint256)"
	Get20Signature          = "get20Endorsements(address,uint256,uint256,bool)"
	GetEndorsementSignature = "getEndorsement(address,uint256,address)"
)

// TokenArguments - a minted token
type TokenArguments struct {
	Badge   common.Address `json:"badge"`
	TokenId uint64         `json:"tokenId,string"`
}

// PageArguments - a page of endorsements, newest first
type PageArguments struct {
	Badge       common.Address `json:"badge"`
	TokenId     uint64         `json:"tokenId,string"`
	Offset      uint64         `json:"offset"`
	SkipRevoked bool           `json:"skipRevoked"`
}

// EndorserArguments - one endorser of a token
type EndorserArguments struct {
	Badge    common.Address `json:"badge"`
	TokenId  uint64         `json:"tokenId,string"`
	Endorser common.Address `json:"endorser"`
}

// Engine - the endorsement module
type Engine struct {
	log *logger.L
}

// New - create the endorsement module
func New() *Engine {
	return &Engine{
		log: logger.New("endorsement"),
	}
}

// Name - module name
func (e *Engine) Name() string {
	return ModuleName
}

// Operations - entry points
func (e *Engine) Operations() []module.Operation {
	return []module.Operation{
		{Signature: EndorseSignature, Handler: e.endorse},
		{Signature: RevokeSignature, Handler: e.revoke},
		{Signature: TotalSignature, Handler: e.total},
		{Signature: InfoTotalSignature, Handler: e.infoTotal},
		{Signature: Get20Signature, Handler: e.get20},
		{Signature: GetEndorsementSignature, Handler: e.getEndorsement},
	}
}

func (e *Engine) endorse(call *module.Call, arguments interface{}) (interface{}, error) {
	args, ok := arguments.(*TokenArguments)
	if !ok {
		return nil, fault.ErrInvalidArguments
	}
	if !registry.IsEndorsementEnabled(call.Trx, args.Badge) {
		return nil, fault.ErrEndorsementDisabled
	}

	// the zero address is the padding sentinel of a page
	if (common.Address{}) == call.Caller {
		return nil, fault.ErrInvalidAddress
	}

	record := readRecord(call.Trx, args.Badge, args.TokenId, call.Caller)
	totals := readTotals(call.Trx, args.Badge, args.TokenId)

	switch record.Status {
	case Endorsed:
		return nil, nil

	case NotSet:
		writeIndex(call.Trx, args.Badge, args.TokenId, totals.Total, call.Caller)
		totals.Total += 1

	case Revoked:
	}

	totals.Active += 1
	writeTotals(call.Trx, args.Badge, args.TokenId, totals)
	writeRecord(call.Trx, args.Badge, args.TokenId, Endorsement{
		Endorser:  call.Caller,
		Timestamp: uint64(call.Timestamp.Unix()),
		Status:    Endorsed,
	})

	e.log.Infof("badge: %s  token: %d  endorsed by: %s", args.Badge.Hex(), args.TokenId, call.Caller.Hex())
	return nil, nil
}

func (e *Engine) revoke(call *module.Call, arguments interface{}) (interface{}, error) {
	args, ok := arguments.(*TokenArguments)
	if !ok {
		return nil, fault.ErrInvalidArguments
	}

	record := readRecord(call.Trx, args.Badge, args.TokenId, call.Caller)
	if Endorsed != record.Status {
		return nil, fault.ErrNoEndorsementToRevoke
	}

	totals := readTotals(call.Trx, args.Badge, args.TokenId)
	totals.Active -= 1
	writeTotals(call.Trx, args.Badge, args.TokenId, totals)

	record.Status = Revoked
	record.Timestamp = uint64(call.Timestamp.Unix())
	writeRecord(call.Trx, args.Badge, args.TokenId, record)

	e.log.Infof("badge: %s  token: %d  revoked by: %s", args.Badge.Hex(), args.TokenId, call.Caller.Hex())
	return nil, nil
}

func (e *Engine) total(call *module.Call, arguments interface{}) (interface{}, error) {
	args, ok := arguments.(*TokenArguments)
	if !ok {
		return nil, fault.ErrInvalidArguments
	}
	return readTotals(call.Trx, args.Badge, args.TokenId).Active, nil
}

func (e *Engine) infoTotal(call *module.Call, arguments interface{}) (interface{}, error) {
	args, ok := arguments.(*TokenArguments)
	if !ok {
		return nil, fault.ErrInvalidArguments
	}
	return readTotals(call.Trx, args.Badge, args.TokenId).Total, nil
}

// always PageSize entries, zero sentinels after the last real one
//
// offset counts index positions back from the most recent endorser,
// revoked entries included
func (e *Engine) get20(call *module.Call, arguments interface{}) (interface{}, error) {
	args, ok := arguments.(*PageArguments)
	if !ok {
		return nil, fault.ErrInvalidArguments
	}

	page := make([]Endorsement, PageSize)
	totals := readTotals(call.Trx, args.Badge, args.TokenId)
	if args.Offset >= totals.Total {
		return page, nil
	}

	filled := 0
	for n := totals.Total - args.Offset; n > 0 && filled < PageSize; n -= 1 {
		endorser := readIndex(call.Trx, args.Badge, args.TokenId, n-1)
		record := readRecord(call.Trx, args.Badge, args.TokenId, endorser)
		if args.SkipRevoked && Revoked == record.Status {
			continue
		}
		page[filled] = record
		filled += 1
	}
	return page, nil
}

func (e *Engine) getEndorsement(call *module.Call, arguments interface{}) (interface{}, error) {
	args, ok := arguments.(*EndorserArguments)
	if !ok {
		return nil, fault.ErrInvalidArguments
	}
	return readRecord(call.Trx, args.Badge, args.TokenId, args.Endorser), nil
}
