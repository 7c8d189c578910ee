// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package module - the types shared by the router and the modules it
// dispatches to
package module

import (
	"context"
	"encoding/hex"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/storage"
)

// SelectorLength - bytes in an operation identifier
const SelectorLength = 4

// Selector - identifies an operation
type Selector [SelectorLength]byte

// Call - the context of one dispatched operation
type Call struct {
	Context   context.Context
	Caller    common.Address
	Timestamp time.Time
	Trx       storage.Transaction
	Selector  Selector
}

// Handler - the code that runs an operation
//
// arguments are the concrete argument type declared by the module
type Handler func(call *Call, arguments interface{}) (interface{}, error)

// Operation - one entry point of a module
type Operation struct {
	Signature string
	Handler   Handler
}

// Module - a unit of logic installed into the router
type Module interface {
	Name() string
	Operations() []Operation
}

// Initialiser - a module that can run a one-shot initialisation as
// part of a cut
//
// InitialiserArguments returns a pointer to an empty value of the
// argument type, for decoding
type Initialiser interface {
	Initialise(call *Call, arguments interface{}) error
	InitialiserArguments() interface{}
}

// SelectorOf - first four bytes of the Keccak-256 of an operation signature
func SelectorOf(signature string) Selector {
	var s Selector
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(signature))
	copy(s[:], h.Sum(nil))
	return s
}

// SelectorFromBytes - convert a byte slice to a selector
func SelectorFromBytes(b []byte) (Selector, error) {
	var s Selector
	if SelectorLength != len(b) {
		return s, fault.ErrInvalidSelector
	}
	copy(s[:], b)
	return s, nil
}

// String - hex with 0x prefix
func (s Selector) String() string {
	return "0x" + hex.EncodeToString(s[:])
}

// MarshalText - convert selector to text
func (s Selector) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText - convert text into a selector
func (s *Selector) UnmarshalText(text []byte) error {
	b, err := hex.DecodeString(strings.TrimPrefix(string(text), "0x"))
	if nil != err {
		return fault.ErrInvalidSelector
	}
	selector, err := SelectorFromBytes(b)
	if nil != err {
		return err
	}
	*s = selector
	return nil
}

// Find - locate the operation of a module that has a given selector
func Find(m Module, selector Selector) (Operation, bool) {
	for _, op := range m.Operations() {
		if SelectorOf(op.Signature) == selector {
			return op, true
		}
	}
	return Operation{}, false
}

// Selectors - all the selectors of a module in declaration order
func Selectors(m Module) []Selector {
	ops := m.Operations()
	selectors := make([]Selector, len(ops))
	for i, op := range ops {
		selectors[i] = SelectorOf(op.Signature)
	}
	return selectors
}
