// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package diamond

import (
	"github.com/bitmark-inc/badged/module"
	"github.com/bitmark-inc/badged/storage"
	"github.com/bitmark-inc/badged/util"
	"github.com/bitmark-inc/logger"
)

// one row of the operation table
type tableEntry struct {
	selector  module.Selector
	module    string
	signature string
}

func readEntry(trx storage.Transaction, selector module.Selector) (tableEntry, bool) {
	record := trx.Get(storage.Pool.Operations, selector[:])
	if nil == record {
		return tableEntry{}, false
	}
	return unpackEntry(selector, record), true
}

func writeEntry(trx storage.Transaction, entry tableEntry) {
	record := util.Packed{}.
		PackString(entry.module).
		PackString(entry.signature)
	trx.Put(storage.Pool.Operations, entry.selector[:], record)
}

func unpackEntry(selector module.Selector, record []byte) tableEntry {
	u := util.NewUnpacker(record)
	entry := tableEntry{
		selector:  selector,
		module:    u.String(),
		signature: u.String(),
	}
	if err := u.Err(); nil != err {
		logger.Panicf("diamond: selector: %s  corrupt record: %x  error: %s", selector, record, err)
	}
	return entry
}

// all rows in selector order, from committed data
func readTable() ([]tableEntry, error) {
	entries := make([]tableEntry, 0, 32)
	cursor := storage.Pool.Operations.NewFetchCursor()
	err := cursor.Map(func(key []byte, value []byte) error {
		selector, err := module.SelectorFromBytes(key)
		if nil != err {
			return err
		}
		entries = append(entries, unpackEntry(selector, value))
		return nil
	})
	return entries, err
}
