// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/badged/mint"
	"github.com/bitmark-inc/badged/registry"
	"github.com/bitmark-inc/badged/rpc/badge"
)

// Gate - selects the mint or the endorsement switch of a badge
type Gate int

// the two switches
const (
	MintGate Gate = iota
	EndorsementGate
)

// MintData - the parameters for a mint request
type MintData struct {
	Badge     common.Address
	Payer     common.Address
	Recipient common.Address
	TokenURI  string
}

// SetEnabled - open or close minting or endorsing of a badge
func (client *Client) SetEnabled(gate Gate, caller common.Address, badgeId common.Address, enabled bool) error {
	method := "Badge.SetMintEnabled"
	if EndorsementGate == gate {
		method = "Badge.SetEndorsementEnabled"
	}
	arguments := badge.EnabledArguments{
		Caller:  caller,
		Badge:   badgeId,
		Enabled: enabled,
	}
	return client.call(method, arguments, &badge.Reply{})
}

// SetCustomMintParams - per badge fee and payment token
func (client *Client) SetCustomMintParams(caller common.Address, badgeId common.Address, params registry.MintParams, enabled bool) error {
	arguments := badge.CustomMintParamsArguments{
		Caller:  caller,
		Badge:   badgeId,
		Fee:     params.Fee,
		Payment: params.Payment,
		Enabled: enabled,
	}
	return client.call("Badge.SetCustomMintParams", arguments, &badge.Reply{})
}

// SetDefaultMintParams - fee and payment token of badges without custom params
func (client *Client) SetDefaultMintParams(caller common.Address, params registry.MintParams) error {
	arguments := badge.DefaultMintParamsArguments{
		Caller:  caller,
		Payment: params.Payment,
		Fee:     params.Fee,
	}
	return client.call("Badge.SetDefaultMintParams", arguments, &badge.Reply{})
}

// GetMintParams - the params in effect for a badge, the defaults
// when badgeId is the zero address
func (client *Client) GetMintParams(badgeId common.Address) (*registry.MintParams, error) {
	var reply registry.MintParams
	var err error
	if (common.Address{}) == badgeId {
		err = client.call("Badge.GetDefaultMintParams", badge.InfoArguments{}, &reply)
	} else {
		err = client.call("Badge.GetMintParams", badge.BadgeArguments{Badge: badgeId}, &reply)
	}
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetConfig - the full configuration of a badge
func (client *Client) GetConfig(badgeId common.Address) (*registry.BadgeConfig, error) {
	var reply registry.BadgeConfig
	if err := client.call("Badge.GetConfig", badge.BadgeArguments{Badge: badgeId}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Mint - create a badge token for the recipient
func (client *Client) Mint(caller common.Address, mintConfig *MintData) (*mint.Result, error) {
	arguments := badge.MintArguments{
		Caller:    caller,
		Badge:     mintConfig.Badge,
		Payer:     mintConfig.Payer,
		Recipient: mintConfig.Recipient,
		TokenURI:  mintConfig.TokenURI,
	}
	var reply mint.Result
	if err := client.call("Badge.Mint", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
