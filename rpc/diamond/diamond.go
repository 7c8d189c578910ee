// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package diamond - RPC access to the installer and the loupe
package diamond

import (
	"context"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/badged/diamond"
	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/module"
	"github.com/bitmark-inc/badged/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitDiamond = 20
	rateBurstDiamond = 5
)

// Diamond - type for the RPC
type Diamond struct {
	Log        *logger.L
	Limiter    *rate.Limiter
	Dispatcher diamond.Dispatcher
}

// CutArguments - a cut as sent by an operator
//
// Arguments is decoded into the argument type of the initialiser
type CutArguments struct {
	Caller      common.Address   `json:"caller"`
	Changes     []diamond.Change `json:"changes"`
	Initialiser string           `json:"initialiser"`
	Arguments   json.RawMessage  `json:"arguments"`
}

// Reply - empty reply of a committed change
type Reply struct{}

// InfoArguments - empty arguments
type InfoArguments struct{}

// FacetsReply - the whole operation table
type FacetsReply struct {
	Facets []diamond.Facet `json:"facets"`
}

// ModuleArguments - a module name
type ModuleArguments struct {
	Module string `json:"module"`
}

// SelectorsReply - selectors bound to one module
type SelectorsReply struct {
	Selectors []module.Selector `json:"selectors"`
}

// ModulesReply - names of the modules with bound operations
type ModulesReply struct {
	Modules []string `json:"modules"`
}

// SelectorArguments - an operation identifier
type SelectorArguments struct {
	Selector module.Selector `json:"selector"`
}

// ModuleReply - the module serving an operation, empty if none
type ModuleReply struct {
	Module string `json:"module"`
}

// New - create the Diamond service
func New(log *logger.L, dispatcher diamond.Dispatcher) *Diamond {
	return &Diamond{
		Log:        log,
		Limiter:    rate.NewLimiter(rateLimitDiamond, rateBurstDiamond),
		Dispatcher: dispatcher,
	}
}

// Cut - add, replace and remove operations in one unit of work
func (d *Diamond) Cut(arguments *CutArguments, _ *Reply) error {
	if err := ratelimit.Limit(d.Limiter); nil != err {
		return err
	}

	d.Log.Infof("Diamond.Cut: caller: %s  changes: %d  initialiser: %q", arguments.Caller.Hex(), len(arguments.Changes), arguments.Initialiser)

	args := &diamond.CutArguments{
		Changes:     arguments.Changes,
		Initialiser: arguments.Initialiser,
	}

	if "" != arguments.Initialiser {
		initArgs, err := d.initialiserArguments(arguments.Initialiser, arguments.Arguments)
		if nil != err {
			return err
		}
		args.Arguments = initArgs
	}

	_, err := d.Dispatcher.DispatchSignature(context.Background(), diamond.CutSignature, args, arguments.Caller)
	return err
}

// decode raw JSON into the value supplied by the initialiser
func (d *Diamond) initialiserArguments(name string, raw json.RawMessage) (interface{}, error) {
	m, ok := d.Dispatcher.Module(name)
	if !ok {
		return nil, fault.ErrModuleNotDeployed
	}
	initialiser, ok := m.(module.Initialiser)
	if !ok {
		return nil, fault.ErrNotInitialiser
	}

	value := initialiser.InitialiserArguments()
	if 0 == len(raw) || nil == value {
		return value, nil
	}
	if err := json.Unmarshal(raw, value); nil != err {
		d.Log.Errorf("initialiser: %q  arguments error: %s", name, err)
		return nil, fault.ErrInvalidArguments
	}
	return value, nil
}

// Facets - every module with its operations
func (d *Diamond) Facets(_ *InfoArguments, reply *FacetsReply) error {
	if err := ratelimit.Limit(d.Limiter); nil != err {
		return err
	}

	result, err := d.Dispatcher.DispatchSignature(context.Background(), diamond.FacetsSignature, nil, common.Address{})
	if nil != err {
		return err
	}
	facets, ok := result.([]diamond.Facet)
	if !ok {
		return fault.ErrUnexpectedResult
	}
	reply.Facets = facets
	return nil
}

// Selectors - the operations bound to one module
func (d *Diamond) Selectors(arguments *ModuleArguments, reply *SelectorsReply) error {
	if err := ratelimit.Limit(d.Limiter); nil != err {
		return err
	}

	args := &diamond.ModuleArguments{
		Module: arguments.Module,
	}
	result, err := d.Dispatcher.DispatchSignature(context.Background(), diamond.FacetFunctionSelectorsSignature, args, common.Address{})
	if nil != err {
		return err
	}
	selectors, ok := result.([]module.Selector)
	if !ok {
		return fault.ErrUnexpectedResult
	}
	reply.Selectors = selectors
	return nil
}

// Modules - names of all modules with bound operations
func (d *Diamond) Modules(_ *InfoArguments, reply *ModulesReply) error {
	if err := ratelimit.Limit(d.Limiter); nil != err {
		return err
	}

	result, err := d.Dispatcher.DispatchSignature(context.Background(), diamond.FacetAddressesSignature, nil, common.Address{})
	if nil != err {
		return err
	}
	modules, ok := result.([]string)
	if !ok {
		return fault.ErrUnexpectedResult
	}
	reply.Modules = modules
	return nil
}

// Module - the module serving one operation
func (d *Diamond) Module(arguments *SelectorArguments, reply *ModuleReply) error {
	if err := ratelimit.Limit(d.Limiter); nil != err {
		return err
	}

	args := &diamond.SelectorArguments{
		Selector: arguments.Selector,
	}
	result, err := d.Dispatcher.DispatchSignature(context.Background(), diamond.FacetAddressSignature, args, common.Address{})
	if nil != err {
		return err
	}
	name, ok := result.(string)
	if !ok {
		return fault.ErrUnexpectedResult
	}
	reply.Module = name
	return nil
}
