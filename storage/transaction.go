// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/bitmark-inc/badged/fault"
)

// Transaction - all writes of one operation
//
// reads see the staged writes of the same transaction first
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
}

type transaction struct {
	sync.Mutex
	inUse  bool
	access *dataAccess
}

func newTransaction(access *dataAccess) *transaction {
	return &transaction{
		inUse:  false,
		access: access,
	}
}

func (t *transaction) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.ErrTransactionAlreadyStarted
	}
	t.access.reset()
	t.inUse = true
	return nil
}

func (t *transaction) Put(handle *PoolHandle, key []byte, value []byte) {
	t.access.put(handle.prefixKey(key), value)
}

func (t *transaction) PutN(handle *PoolHandle, key []byte, value uint64) {
	t.access.put(handle.prefixKey(key), encodeN(value))
}

func (t *transaction) Delete(handle *PoolHandle, key []byte) {
	t.access.delete(handle.prefixKey(key))
}

func (t *transaction) Get(handle *PoolHandle, key []byte) []byte {
	return t.access.get(handle.prefixKey(key))
}

func (t *transaction) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(handle, key))
}

func (t *transaction) Has(handle *PoolHandle, key []byte) bool {
	return nil != t.Get(handle, key)
}

// Commit - write all staged data as a single synchronous batch
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.ErrTransactionNotStarted
	}
	t.inUse = false

	poolData.RLock()
	defer poolData.RUnlock()
	return t.access.write()
}

// Abort - discard all staged data
func (t *transaction) Abort() {
	t.Lock()
	t.inUse = false
	t.access.reset()
	t.Unlock()
}

// Execute - run one unit of work against the storage context
//
// units of work are serialised; the staged writes are committed only
// if f succeeds, otherwise none of them are applied
func Execute(f func(trx Transaction) error) error {
	return ExecuteThen(f, nil)
}

// ExecuteThen - as Execute, then run committed after a successful
// commit while the next unit of work is still held back
//
// committed sees commits in the order they were made; it must not
// call Execute
func ExecuteThen(f func(trx Transaction) error, committed func()) error {
	poolData.execution.Lock()
	defer poolData.execution.Unlock()

	poolData.RLock()
	trx := poolData.trx
	poolData.RUnlock()

	if nil == trx {
		return fault.ErrNotInitialised
	}

	if err := trx.Begin(); nil != err {
		return err
	}

	ok := false
	defer func() {
		if !ok {
			trx.Abort()
		}
	}()

	if err := f(trx); nil != err {
		return err
	}

	ok = true // prevent abort
	if err := trx.Commit(); nil != err {
		return err
	}

	if nil != committed {
		committed()
	}
	return nil
}
