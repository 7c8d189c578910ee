// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/badged/endorsement"
	rpcendorsement "github.com/bitmark-inc/badged/rpc/endorsement"
)

// TotalsReply - both endorsement counts of a token
type TotalsReply struct {
	Endorsed uint64 `json:"endorsed"`
	All      uint64 `json:"all"`
}

// Endorse - endorse a badge token, or revoke a previous endorsement
func (client *Client) Endorse(caller common.Address, badgeId common.Address, tokenId uint64, revoke bool) error {
	method := "Endorsement.Endorse"
	if revoke {
		method = "Endorsement.Revoke"
	}
	arguments := rpcendorsement.ChangeArguments{
		Caller:  caller,
		Badge:   badgeId,
		TokenId: tokenId,
	}
	return client.call(method, arguments, &rpcendorsement.Reply{})
}

// GetTotals - current endorsements and all records of a token
func (client *Client) GetTotals(badgeId common.Address, tokenId uint64) (*TotalsReply, error) {
	arguments := rpcendorsement.TokenArguments{
		Badge:   badgeId,
		TokenId: tokenId,
	}

	var endorsed rpcendorsement.CountReply
	if err := client.call("Endorsement.Total", arguments, &endorsed); nil != err {
		return nil, err
	}
	var all rpcendorsement.CountReply
	if err := client.call("Endorsement.InfoTotal", arguments, &all); nil != err {
		return nil, err
	}

	return &TotalsReply{
		Endorsed: endorsed.Count,
		All:      all.Count,
	}, nil
}

// GetPage - one page of endorsements, newest first
func (client *Client) GetPage(badgeId common.Address, tokenId uint64, offset uint64, skipRevoked bool) (*rpcendorsement.PageReply, error) {
	arguments := rpcendorsement.PageArguments{
		Badge:       badgeId,
		TokenId:     tokenId,
		Offset:      offset,
		SkipRevoked: skipRevoked,
	}
	var reply rpcendorsement.PageReply
	if err := client.call("Endorsement.Get20", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetEndorsement - the record of one endorser
func (client *Client) GetEndorsement(badgeId common.Address, tokenId uint64, endorser common.Address) (*endorsement.Endorsement, error) {
	arguments := rpcendorsement.GetArguments{
		Badge:    badgeId,
		TokenId:  tokenId,
		Endorser: endorser,
	}
	var reply endorsement.Endorsement
	if err := client.call("Endorsement.Get", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
