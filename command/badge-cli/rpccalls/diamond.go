// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/badged/module"
	rpcdiamond "github.com/bitmark-inc/badged/rpc/diamond"
)

// GetFacets - every module with its operations
func (client *Client) GetFacets() (*rpcdiamond.FacetsReply, error) {
	var reply rpcdiamond.FacetsReply
	if err := client.call("Diamond.Facets", rpcdiamond.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetModule - the module serving an operation signature
func (client *Client) GetModule(signature string) (*rpcdiamond.ModuleReply, error) {
	arguments := rpcdiamond.SelectorArguments{
		Selector: module.SelectorOf(signature),
	}
	var reply rpcdiamond.ModuleReply
	if err := client.call("Diamond.Module", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Cut - apply a cut read from JSON, the caller field is replaced
func (client *Client) Cut(caller common.Address, data []byte) error {
	var arguments rpcdiamond.CutArguments
	if err := json.Unmarshal(data, &arguments); nil != err {
		return err
	}
	arguments.Caller = caller
	return client.call("Diamond.Cut", arguments, &rpcdiamond.Reply{})
}
