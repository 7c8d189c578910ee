// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package module_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/module"
)

// values agree with the ERC-165 / Solidity function selector tables
func TestSelectorOf(t *testing.T) {
	items := []struct {
		signature string
		selector  string
	}{
		{"transfer(address,uint256)", "0xa9059cbb"},
		{"transferFrom(address,address,uint256)", "0x23b872dd"},
		{"approve(address,uint256)", "0x095ea7b3"},
		{"owner()", "0x8da5cb5b"},
		{"transferOwnership(address)", "0xf2fde38b"},
		{"facets()", "0x7a0ed627"},
		{"facetAddress(bytes4)", "0xcdffacc6"},
	}

	for i, item := range items {
		s := module.SelectorOf(item.signature)
		assert.Equal(t, item.selector, s.String(), "%d: wrong selector for %q", i, item.signature)
	}
}

func TestSelectorText(t *testing.T) {
	s := module.SelectorOf("owner()")

	text, err := json.Marshal(s)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `"0x8da5cb5b"`, string(text), "wrong json")

	var decoded module.Selector
	err = json.Unmarshal(text, &decoded)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, s, decoded, "round trip mismatch")

	err = decoded.UnmarshalText([]byte("0x1234"))
	assert.Equal(t, fault.ErrInvalidSelector, err, "short selector accepted")

	err = decoded.UnmarshalText([]byte("wxyz0000"))
	assert.Equal(t, fault.ErrInvalidSelector, err, "non hex selector accepted")
}

type testModule struct{}

func (testModule) Name() string { return "Test" }
func (testModule) Operations() []module.Operation {
	return []module.Operation{
		{Signature: "one()"},
		{Signature: "two(uint256)"},
	}
}

func TestFind(t *testing.T) {
	m := testModule{}

	op, ok := module.Find(m, module.SelectorOf("two(uint256)"))
	assert.True(t, ok, "operation not found")
	assert.Equal(t, "two(uint256)", op.Signature, "wrong operation")

	_, ok = module.Find(m, module.SelectorOf("three()"))
	assert.False(t, ok, "unexpected operation")

	assert.Equal(t, []module.Selector{module.SelectorOf("one()"), module.SelectorOf("two(uint256)")}, module.Selectors(m), "wrong selectors")
}
