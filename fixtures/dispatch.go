// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/module"
	"github.com/bitmark-inc/badged/storage"
)

// Now - the timestamp given to every operation run by Run
var Now = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// Run - execute one operation of a module directly, bypassing the
// router, as its own committed unit of work
func Run(m module.Module, signature string, caller common.Address, arguments interface{}) (interface{}, error) {
	op, ok := module.Find(m, module.SelectorOf(signature))
	if !ok {
		return nil, fault.ErrUnknownOperation
	}

	var result interface{}
	err := storage.Execute(func(trx storage.Transaction) error {
		call := &module.Call{
			Context:   context.Background(),
			Caller:    caller,
			Timestamp: Now,
			Trx:       trx,
			Selector:  module.SelectorOf(signature),
		}
		r, err := op.Handler(call, arguments)
		result = r
		return err
	})
	if nil != err {
		return nil, err
	}
	return result, nil
}

// Write - run a function in its own committed unit of work
func Write(f func(trx storage.Transaction)) error {
	return storage.Execute(func(trx storage.Transaction) error {
		f(trx)
		return nil
	})
}
