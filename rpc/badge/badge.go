// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package badge

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/badged/diamond"
	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/mint"
	"github.com/bitmark-inc/badged/registry"
	"github.com/bitmark-inc/badged/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

// Badge
// -----

const (
	rateLimitBadge = 200
	rateBurstBadge = 100
)

// Badge - type for the RPC
type Badge struct {
	Log        *logger.L
	Limiter    *rate.Limiter
	Dispatcher diamond.Dispatcher
}

// EnabledArguments - switch a gate of a badge collection
type EnabledArguments struct {
	Caller  common.Address `json:"caller"`
	Badge   common.Address `json:"badge"`
	Enabled bool           `json:"enabled"`
}

// CustomMintParamsArguments - override the mint parameters of a badge
type CustomMintParamsArguments struct {
	Caller  common.Address `json:"caller"`
	Badge   common.Address `json:"badge"`
	Fee     uint64         `json:"fee,string"`
	Payment common.Address `json:"payment"`
	Enabled bool           `json:"enabled"`
}

// DefaultMintParamsArguments - replace the global defaults
type DefaultMintParamsArguments struct {
	Caller  common.Address `json:"caller"`
	Payment common.Address `json:"payment"`
	Fee     uint64         `json:"fee,string"`
}

// BadgeArguments - a badge collection
type BadgeArguments struct {
	Badge common.Address `json:"badge"`
}

// InfoArguments - empty arguments
type InfoArguments struct{}

// MintArguments - mint one token
type MintArguments struct {
	Caller    common.Address `json:"caller"`
	Badge     common.Address `json:"badge"`
	Payer     common.Address `json:"payer"`
	Recipient common.Address `json:"recipient"`
	TokenURI  string         `json:"tokenURI"`
}

// Reply - empty reply of a committed change
type Reply struct{}

// New - create the Badge service
func New(log *logger.L, dispatcher diamond.Dispatcher) *Badge {
	return &Badge{
		Log:        log,
		Limiter:    rate.NewLimiter(rateLimitBadge, rateBurstBadge),
		Dispatcher: dispatcher,
	}
}

// SetMintEnabled - open or close minting for a badge
func (badge *Badge) SetMintEnabled(arguments *EnabledArguments, _ *Reply) error {
	if err := ratelimit.Limit(badge.Limiter); nil != err {
		return err
	}

	badge.Log.Infof("Badge.SetMintEnabled: %+v", arguments)

	args := &registry.EnabledArguments{
		Badge:   arguments.Badge,
		Enabled: arguments.Enabled,
	}
	_, err := badge.Dispatcher.DispatchSignature(context.Background(), registry.SetMintEnabledSignature, args, arguments.Caller)
	return err
}

// SetEndorsementEnabled - open or close endorsement for a badge
func (badge *Badge) SetEndorsementEnabled(arguments *EnabledArguments, _ *Reply) error {
	if err := ratelimit.Limit(badge.Limiter); nil != err {
		return err
	}

	badge.Log.Infof("Badge.SetEndorsementEnabled: %+v", arguments)

	args := &registry.EnabledArguments{
		Badge:   arguments.Badge,
		Enabled: arguments.Enabled,
	}
	_, err := badge.Dispatcher.DispatchSignature(context.Background(), registry.SetEndorsementEnabledSignature, args, arguments.Caller)
	return err
}

// SetCustomMintParams - per badge fee and payment token
func (badge *Badge) SetCustomMintParams(arguments *CustomMintParamsArguments, _ *Reply) error {
	if err := ratelimit.Limit(badge.Limiter); nil != err {
		return err
	}

	badge.Log.Infof("Badge.SetCustomMintParams: %+v", arguments)

	args := &registry.CustomMintParamsArguments{
		Badge:   arguments.Badge,
		Fee:     arguments.Fee,
		Payment: arguments.Payment,
		Enabled: arguments.Enabled,
	}
	_, err := badge.Dispatcher.DispatchSignature(context.Background(), registry.SetCustomMintParamsSignature, args, arguments.Caller)
	return err
}

// SetDefaultMintParams - fee and payment token of badges without an override
func (badge *Badge) SetDefaultMintParams(arguments *DefaultMintParamsArguments, _ *Reply) error {
	if err := ratelimit.Limit(badge.Limiter); nil != err {
		return err
	}

	badge.Log.Infof("Badge.SetDefaultMintParams: %+v", arguments)

	args := &registry.MintParams{
		Payment: arguments.Payment,
		Fee:     arguments.Fee,
	}
	_, err := badge.Dispatcher.DispatchSignature(context.Background(), registry.SetDefaultMintParamsSignature, args, arguments.Caller)
	return err
}

// GetMintParams - the effective mint parameters of a badge
func (badge *Badge) GetMintParams(arguments *BadgeArguments, reply *registry.MintParams) error {
	if err := ratelimit.Limit(badge.Limiter); nil != err {
		return err
	}

	args := &registry.BadgeArguments{
		Badge: arguments.Badge,
	}
	result, err := badge.Dispatcher.DispatchSignature(context.Background(), registry.GetMintParamsSignature, args, common.Address{})
	if nil != err {
		return err
	}
	params, ok := result.(registry.MintParams)
	if !ok {
		return fault.ErrUnexpectedResult
	}
	*reply = params
	return nil
}

// GetDefaultMintParams - the global defaults
func (badge *Badge) GetDefaultMintParams(_ *InfoArguments, reply *registry.MintParams) error {
	if err := ratelimit.Limit(badge.Limiter); nil != err {
		return err
	}

	result, err := badge.Dispatcher.DispatchSignature(context.Background(), registry.GetDefaultMintParamsSignature, nil, common.Address{})
	if nil != err {
		return err
	}
	params, ok := result.(registry.MintParams)
	if !ok {
		return fault.ErrUnexpectedResult
	}
	*reply = params
	return nil
}

// GetConfig - the whole configuration of a badge
func (badge *Badge) GetConfig(arguments *BadgeArguments, reply *registry.BadgeConfig) error {
	if err := ratelimit.Limit(badge.Limiter); nil != err {
		return err
	}

	args := &registry.BadgeArguments{
		Badge: arguments.Badge,
	}
	result, err := badge.Dispatcher.DispatchSignature(context.Background(), registry.GetBadgeConfigSignature, args, common.Address{})
	if nil != err {
		return err
	}
	config, ok := result.(registry.BadgeConfig)
	if !ok {
		return fault.ErrUnexpectedResult
	}
	*reply = config
	return nil
}

// Mint - charge the fee if any and create a token for the recipient
func (badge *Badge) Mint(arguments *MintArguments, reply *mint.Result) error {
	if err := ratelimit.Limit(badge.Limiter); nil != err {
		return err
	}

	badge.Log.Infof("Badge.Mint: %+v", arguments)

	args := &mint.Arguments{
		Badge:     arguments.Badge,
		Payer:     arguments.Payer,
		Recipient: arguments.Recipient,
		TokenURI:  arguments.TokenURI,
	}
	result, err := badge.Dispatcher.DispatchSignature(context.Background(), mint.MintSignature, args, arguments.Caller)
	if nil != err {
		return err
	}
	token, ok := result.(*mint.Result)
	if !ok || nil == token {
		return fault.ErrUnexpectedResult
	}
	*reply = *token
	return nil
}
