// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package diamond

import (
	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/module"
)

// LoupeModuleName - the built-in introspection module
const LoupeModuleName = "DiamondLoupe"

// loupe operation signatures
const (
	FacetsSignature                 = "facets()"
	FacetFunctionSelectorsSignature = "facetFunctionSelectors(string)"
	FacetAddressesSignature         = "facetAddresses()"
	FacetAddressSignature           = "facetAddress(bytes4)"
)

// Facet - a module and the operations bound to it
type Facet struct {
	Module     string            `json:"module"`
	Selectors  []module.Selector `json:"selectors"`
	Signatures []string          `json:"signatures"`
}

// ModuleArguments - a module name
type ModuleArguments struct {
	Module string `json:"module"`
}

// SelectorArguments - an operation identifier
type SelectorArguments struct {
	Selector module.Selector `json:"selector"`
}

type loupeModule struct{}

func (l *loupeModule) Name() string {
	return LoupeModuleName
}

func (l *loupeModule) Operations() []module.Operation {
	return []module.Operation{
		{Signature: FacetsSignature, Handler: l.facets},
		{Signature: FacetFunctionSelectorsSignature, Handler: l.facetFunctionSelectors},
		{Signature: FacetAddressesSignature, Handler: l.facetAddresses},
		{Signature: FacetAddressSignature, Handler: l.facetAddress},
	}
}

// Facets - group the operation table by module, modules in order of
// their lowest selector
func Facets() ([]Facet, error) {
	entries, err := readTable()
	if nil != err {
		return nil, err
	}

	facets := make([]Facet, 0, 8)
	index := make(map[string]int)
	for _, entry := range entries {
		i, ok := index[entry.module]
		if !ok {
			i = len(facets)
			index[entry.module] = i
			facets = append(facets, Facet{Module: entry.module})
		}
		facets[i].Selectors = append(facets[i].Selectors, entry.selector)
		facets[i].Signatures = append(facets[i].Signatures, entry.signature)
	}
	return facets, nil
}

func (l *loupeModule) facets(_ *module.Call, _ interface{}) (interface{}, error) {
	return Facets()
}

func (l *loupeModule) facetFunctionSelectors(_ *module.Call, arguments interface{}) (interface{}, error) {
	args, ok := arguments.(*ModuleArguments)
	if !ok {
		return nil, fault.ErrInvalidArguments
	}
	facets, err := Facets()
	if nil != err {
		return nil, err
	}
	for _, f := range facets {
		if f.Module == args.Module {
			return f.Selectors, nil
		}
	}
	return []module.Selector{}, nil
}

func (l *loupeModule) facetAddresses(_ *module.Call, _ interface{}) (interface{}, error) {
	facets, err := Facets()
	if nil != err {
		return nil, err
	}
	names := make([]string, len(facets))
	for i, f := range facets {
		names[i] = f.Module
	}
	return names, nil
}

// empty string when no module serves the selector
func (l *loupeModule) facetAddress(call *module.Call, arguments interface{}) (interface{}, error) {
	args, ok := arguments.(*SelectorArguments)
	if !ok {
		return nil, fault.ErrInvalidArguments
	}
	entry, _ := readEntry(call.Trx, args.Selector)
	return entry.module, nil
}
