// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
)

// every commit is flushed to disk before the operation returns
var syncWrite = &ldb_opt.WriteOptions{
	Sync: true,
}

// dataAccess - a database together with the batch and cache that
// stage the writes of the current transaction
type dataAccess struct {
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDataAccess(db *leveldb.DB) *dataAccess {
	return &dataAccess{
		db:    db,
		batch: new(leveldb.Batch),
		cache: newCache(),
	}
}

func (d *dataAccess) reset() {
	d.batch.Reset()
	d.cache.Clear()
}

func (d *dataAccess) put(key []byte, value []byte) {
	stored := make([]byte, len(value))
	copy(stored, value)
	d.batch.Put(key, stored)
	d.cache.Set(dbPut, string(key), stored)
}

func (d *dataAccess) delete(key []byte) {
	d.batch.Delete(key)
	d.cache.Set(dbDelete, string(key), nil)
}

// read through the staged writes to the committed data
func (d *dataAccess) get(key []byte) []byte {
	value, op, found := d.cache.Get(string(key))
	if found {
		if dbDelete == op {
			return nil
		}
		return value
	}
	return d.getCommitted(key)
}

func (d *dataAccess) getCommitted(key []byte) []byte {
	value, err := d.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("storage.get", err)
	return value
}

// write staged data; an empty batch is not written
func (d *dataAccess) write() error {
	if 0 == d.batch.Len() {
		return nil
	}
	err := d.db.Write(d.batch, syncWrite)
	d.reset()
	return err
}

func (d *dataAccess) iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}
