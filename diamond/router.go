// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package diamond

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/mode"
	"github.com/bitmark-inc/badged/module"
	"github.com/bitmark-inc/badged/storage"
	"github.com/bitmark-inc/logger"
)

// Event - a committed operation
type Event struct {
	Signature string          `json:"signature"`
	Selector  module.Selector `json:"selector"`
	Module    string          `json:"module"`
	Caller    common.Address  `json:"caller"`
	Timestamp time.Time       `json:"timestamp"`
	Arguments interface{}     `json:"arguments"`
	Result    interface{}     `json:"result"`
}

// Listener - receives every committed operation, in commit order,
// before the next operation starts; it must not dispatch
type Listener func(event Event)

// marks a context that is already inside a dispatch
type dispatchKey struct{}

// Router - resolves operations to deployed modules and runs them
// against the storage context
type Router struct {
	sync.RWMutex
	log       *logger.L
	modules   map[string]module.Module
	listeners []Listener
	clock     func() time.Time
}

// New - create a router with the cut and loupe modules deployed
func New() *Router {
	r := &Router{
		log:     logger.New("diamond"),
		modules: make(map[string]module.Module),
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	r.modules[CutModuleName] = &cutModule{router: r}
	r.modules[LoupeModuleName] = &loupeModule{}
	return r
}

// SetClock - replace the time source used for operation timestamps
func (r *Router) SetClock(clock func() time.Time) {
	r.Lock()
	r.clock = clock
	r.Unlock()
}

// Deploy - make a module available to cuts
func (r *Router) Deploy(m module.Module) error {
	r.Lock()
	defer r.Unlock()

	name := m.Name()
	if "" == name {
		return fault.ErrMissingParameters
	}
	if _, ok := r.modules[name]; ok {
		return fault.ErrModuleAlreadyDeployed
	}
	r.modules[name] = m

	r.log.Infof("deployed: %s  operations: %d", name, len(m.Operations()))
	return nil
}

// Module - a deployed module by name
func (r *Router) Module(name string) (module.Module, bool) {
	r.RLock()
	defer r.RUnlock()
	m, ok := r.modules[name]
	return m, ok
}

// Deployed - names of all deployed modules, sorted
func (r *Router) Deployed() []string {
	r.RLock()
	defer r.RUnlock()
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Subscribe - add a commit listener
func (r *Router) Subscribe(listener Listener) {
	r.Lock()
	r.listeners = append(r.listeners, listener)
	r.Unlock()
}

// DispatchSignature - dispatch by operation signature
func (r *Router) DispatchSignature(ctx context.Context, signature string, arguments interface{}, caller common.Address) (interface{}, error) {
	return r.Dispatch(ctx, module.SelectorOf(signature), arguments, caller)
}

// Dispatch - run one operation to completion as a single unit of work
//
// a dispatch from inside a running operation fails with
// ErrReentrantCall
func (r *Router) Dispatch(ctx context.Context, selector module.Selector, arguments interface{}, caller common.Address) (interface{}, error) {
	if mode.Is(mode.Stopped) {
		return nil, fault.ErrNotAvailable
	}
	if nil == ctx {
		ctx = context.Background()
	}
	if nil != ctx.Value(dispatchKey{}) {
		r.log.Warnf("re-entrant call: %s  caller: %s", selector, caller.Hex())
		return nil, fault.ErrReentrantCall
	}
	ctx = context.WithValue(ctx, dispatchKey{}, selector)

	r.RLock()
	timestamp := r.clock()
	r.RUnlock()

	var result interface{}
	var entry tableEntry
	err := storage.ExecuteThen(func(trx storage.Transaction) error {
		var found bool
		entry, found = readEntry(trx, selector)
		if !found {
			return fault.ErrUnknownOperation
		}
		m, ok := r.Module(entry.module)
		if !ok {
			return fault.ErrModuleNotDeployed
		}
		op, ok := module.Find(m, selector)
		if !ok {
			return fault.ErrOperationNotImplemented
		}

		call := &module.Call{
			Context:   ctx,
			Caller:    caller,
			Timestamp: timestamp,
			Trx:       trx,
			Selector:  selector,
		}
		var err error
		result, err = op.Handler(call, arguments)
		return err
	}, func() {
		r.notify(Event{
			Signature: entry.signature,
			Selector:  selector,
			Module:    entry.module,
			Caller:    caller,
			Timestamp: timestamp,
			Arguments: arguments,
			Result:    result,
		})
	})
	if nil != err {
		r.log.Debugf("operation: %s  caller: %s  error: %s", selector, caller.Hex(), err)
		return nil, err
	}

	r.log.Debugf("operation: %s  module: %s  caller: %s", entry.signature, entry.module, caller.Hex())

	return result, nil
}

// runs inside the serialised section so events keep commit order
func (r *Router) notify(event Event) {
	r.RLock()
	listeners := r.listeners
	r.RUnlock()
	for _, l := range listeners {
		l(event)
	}
}
