// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package diamond

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/badged/access"
	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/module"
	"github.com/bitmark-inc/badged/storage"
)

// CutModuleName - the built-in installer
const CutModuleName = "DiamondCut"

// CutSignature - the installer operation
const CutSignature = "diamondCut((string,uint8,bytes4[])[],string,bytes)"

// Action - what a change does to its selectors
type Action uint8

// cut actions
const (
	Add     Action = 0
	Replace Action = 1
	Remove  Action = 2
)

var actionNames = []string{"Add", "Replace", "Remove"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "*unknown*"
}

// MarshalText - action as its name
func (a Action) MarshalText() ([]byte, error) {
	if int(a) >= len(actionNames) {
		return nil, fault.ErrInvalidCutAction
	}
	return []byte(actionNames[a]), nil
}

// UnmarshalText - action from its name, case insensitive
func (a *Action) UnmarshalText(text []byte) error {
	for i, name := range actionNames {
		if strings.EqualFold(name, string(text)) {
			*a = Action(i)
			return nil
		}
	}
	return fault.ErrInvalidCutAction
}

// Change - one group of selectors for a module
//
// Module is ignored for Remove
type Change struct {
	Module    string            `json:"module"`
	Action    Action            `json:"action"`
	Selectors []module.Selector `json:"selectors"`
}

// CutArguments - a set of changes applied atomically, optionally
// followed by the initialiser of a deployed module
type CutArguments struct {
	Changes     []Change    `json:"changes"`
	Initialiser string      `json:"initialiser"`
	Arguments   interface{} `json:"arguments"`
}

// AddAll - a change that adds every operation of a module
func AddAll(m module.Module) Change {
	return Change{
		Module:    m.Name(),
		Action:    Add,
		Selectors: module.Selectors(m),
	}
}

type cutModule struct {
	router *Router
}

func (c *cutModule) Name() string {
	return CutModuleName
}

func (c *cutModule) Operations() []module.Operation {
	return []module.Operation{
		{Signature: CutSignature, Handler: c.cut},
	}
}

func (c *cutModule) cut(call *module.Call, arguments interface{}) (interface{}, error) {
	if err := access.Require(call.Trx, call.Caller, access.OwnerRole); nil != err {
		return nil, err
	}
	args, ok := arguments.(*CutArguments)
	if !ok || nil == args {
		return nil, fault.ErrInvalidArguments
	}

	for _, change := range args.Changes {
		if err := c.apply(call.Trx, change); nil != err {
			c.router.log.Errorf("cut: %s  module: %q  error: %s", change.Action, change.Module, err)
			return nil, err
		}
	}

	if "" != args.Initialiser {
		if err := c.initialise(call, args.Initialiser, args.Arguments); nil != err {
			c.router.log.Errorf("cut: initialiser: %q  error: %s", args.Initialiser, err)
			return nil, err
		}
	}

	c.router.log.Infof("cut: changes: %d  initialiser: %q  by: %s", len(args.Changes), args.Initialiser, call.Caller.Hex())
	return nil, nil
}

func (c *cutModule) apply(trx storage.Transaction, change Change) error {
	if 0 == len(change.Selectors) {
		return fault.ErrMissingParameters
	}

	switch change.Action {
	case Add, Replace:
		m, ok := c.router.Module(change.Module)
		if !ok {
			return fault.ErrModuleNotDeployed
		}
		for _, selector := range change.Selectors {
			op, ok := module.Find(m, selector)
			if !ok {
				return fault.ErrOperationNotImplemented
			}
			existing, found := readEntry(trx, selector)
			if Add == change.Action && found {
				return fault.ErrDuplicateOperation
			}
			if Replace == change.Action {
				if !found {
					return fault.ErrOperationNotFound
				}
				if existing.module == change.Module {
					return fault.ErrReplaceWithSameModule
				}
			}
			writeEntry(trx, tableEntry{
				selector:  selector,
				module:    change.Module,
				signature: op.Signature,
			})
		}

	case Remove:
		for _, selector := range change.Selectors {
			if _, found := readEntry(trx, selector); !found {
				return fault.ErrOperationNotFound
			}
			trx.Delete(storage.Pool.Operations, selector[:])
		}

	default:
		return fault.ErrInvalidCutAction
	}
	return nil
}

func (c *cutModule) initialise(call *module.Call, name string, arguments interface{}) error {
	m, ok := c.router.Module(name)
	if !ok {
		return fault.ErrModuleNotDeployed
	}
	initialiser, ok := m.(module.Initialiser)
	if !ok {
		return fault.ErrNotInitialiser
	}
	return initialiser.Initialise(call, arguments)
}

// Genesis - bind the installer and the loupe on an empty database
// and record the owner
func (r *Router) Genesis(owner common.Address) error {
	if (common.Address{}) == owner {
		return fault.ErrInvalidAddress
	}

	return storage.Execute(func(trx storage.Transaction) error {
		if _, found := readEntry(trx, module.SelectorOf(CutSignature)); found {
			return fault.ErrAlreadyInitialised
		}
		if err := access.SetOwner(trx, owner); nil != err {
			return err
		}
		for _, name := range []string{CutModuleName, LoupeModuleName} {
			m, _ := r.Module(name)
			for _, op := range m.Operations() {
				writeEntry(trx, tableEntry{
					selector:  module.SelectorOf(op.Signature),
					module:    name,
					signature: op.Signature,
				})
			}
		}
		r.log.Infof("genesis: owner: %s", owner.Hex())
		return nil
	})
}

// IsGenesis - true once Genesis has run on this database
func (r *Router) IsGenesis() bool {
	found := false
	_ = storage.Execute(func(trx storage.Transaction) error {
		_, found = readEntry(trx, module.SelectorOf(CutSignature))
		return nil
	})
	return found
}
