// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package endorsement

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/badged/diamond"
	"github.com/bitmark-inc/badged/endorsement"
	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

// Endorsement
// -----------

const (
	rateLimitEndorsement = 200
	rateBurstEndorsement = 100
)

// Endorsement - type for the RPC
type Endorsement struct {
	Log        *logger.L
	Limiter    *rate.Limiter
	Dispatcher diamond.Dispatcher
}

// ChangeArguments - endorse or revoke as the caller
type ChangeArguments struct {
	Caller  common.Address `json:"caller"`
	Badge   common.Address `json:"badge"`
	TokenId uint64         `json:"tokenId,string"`
}

// TokenArguments - a minted token
type TokenArguments struct {
	Badge   common.Address `json:"badge"`
	TokenId uint64         `json:"tokenId,string"`
}

// CountReply - a total
type CountReply struct {
	Count uint64 `json:"count"`
}

// PageArguments - arguments for Get20
type PageArguments struct {
	Badge       common.Address `json:"badge"`
	TokenId     uint64         `json:"tokenId,string"`
	Offset      uint64         `json:"offset"`
	SkipRevoked bool           `json:"skipRevoked"`
}

// PageReply - always endorsement.PageSize entries, zero sentinels last
type PageReply struct {
	Endorsements []endorsement.Endorsement `json:"endorsements"`
}

// GetArguments - one endorser of a token
type GetArguments struct {
	Badge    common.Address `json:"badge"`
	TokenId  uint64         `json:"tokenId,string"`
	Endorser common.Address `json:"endorser"`
}

// Reply - empty reply of a committed change
type Reply struct{}

// New - create the Endorsement service
func New(log *logger.L, dispatcher diamond.Dispatcher) *Endorsement {
	return &Endorsement{
		Log:        log,
		Limiter:    rate.NewLimiter(rateLimitEndorsement, rateBurstEndorsement),
		Dispatcher: dispatcher,
	}
}

// Endorse - endorse a token as the caller
func (e *Endorsement) Endorse(arguments *ChangeArguments, _ *Reply) error {
	return e.change(endorsement.EndorseSignature, arguments)
}

// Revoke - withdraw the caller's endorsement of a token
func (e *Endorsement) Revoke(arguments *ChangeArguments, _ *Reply) error {
	return e.change(endorsement.RevokeSignature, arguments)
}

// Total - number of active endorsements
func (e *Endorsement) Total(arguments *TokenArguments, reply *CountReply) error {
	return e.count(endorsement.TotalSignature, arguments, reply)
}

// InfoTotal - number of endorsement records, revoked included
func (e *Endorsement) InfoTotal(arguments *TokenArguments, reply *CountReply) error {
	return e.count(endorsement.InfoTotalSignature, arguments, reply)
}

// Get20 - one page of endorsements, newest first
func (e *Endorsement) Get20(arguments *PageArguments, reply *PageReply) error {
	if err := ratelimit.LimitN(e.Limiter, endorsement.PageSize, endorsement.PageSize); nil != err {
		return err
	}

	args := &endorsement.PageArguments{
		Badge:       arguments.Badge,
		TokenId:     arguments.TokenId,
		Offset:      arguments.Offset,
		SkipRevoked: arguments.SkipRevoked,
	}
	result, err := e.Dispatcher.DispatchSignature(context.Background(), endorsement.Get20Signature, args, common.Address{})
	if nil != err {
		return err
	}
	page, ok := result.([]endorsement.Endorsement)
	if !ok {
		return fault.ErrUnexpectedResult
	}
	reply.Endorsements = page
	return nil
}

// Get - the record of one endorser
func (e *Endorsement) Get(arguments *GetArguments, reply *endorsement.Endorsement) error {
	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	args := &endorsement.EndorserArguments{
		Badge:    arguments.Badge,
		TokenId:  arguments.TokenId,
		Endorser: arguments.Endorser,
	}
	result, err := e.Dispatcher.DispatchSignature(context.Background(), endorsement.GetEndorsementSignature, args, common.Address{})
	if nil != err {
		return err
	}
	record, ok := result.(endorsement.Endorsement)
	if !ok {
		return fault.ErrUnexpectedResult
	}
	*reply = record
	return nil
}

func (e *Endorsement) change(signature string, arguments *ChangeArguments) error {
	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	e.Log.Infof("%s: caller: %s  badge: %s  token: %d", signature, arguments.Caller.Hex(), arguments.Badge.Hex(), arguments.TokenId)

	args := &endorsement.TokenArguments{
		Badge:   arguments.Badge,
		TokenId: arguments.TokenId,
	}
	_, err := e.Dispatcher.DispatchSignature(context.Background(), signature, args, arguments.Caller)
	return err
}

func (e *Endorsement) count(signature string, arguments *TokenArguments, reply *CountReply) error {
	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	args := &endorsement.TokenArguments{
		Badge:   arguments.Badge,
		TokenId: arguments.TokenId,
	}
	result, err := e.Dispatcher.DispatchSignature(context.Background(), signature, args, common.Address{})
	if nil != err {
		return err
	}
	n, ok := result.(uint64)
	if !ok {
		return fault.ErrUnexpectedResult
	}
	reply.Count = n
	return nil
}
