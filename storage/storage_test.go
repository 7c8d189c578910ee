// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/fixtures"
	"github.com/bitmark-inc/badged/storage"
)

var errTest = errors.New("test failure")

func setup(t *testing.T) {
	fixtures.SetupTestLogger()
	err := fixtures.SetupTestStorage()
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown() {
	fixtures.TeardownTestStorage()
	fixtures.TeardownTestLogger()
}

func TestExecuteCommits(t *testing.T) {
	setup(t)
	defer teardown()

	err := storage.Execute(func(trx storage.Transaction) error {
		trx.Put(storage.Pool.Roles, []byte("owner"), []byte{0x01})
		trx.PutN(storage.Pool.MintDefaults, []byte("fee"), 500000)

		// staged data is visible inside the transaction only
		assert.Equal(t, []byte{0x01}, trx.Get(storage.Pool.Roles, []byte("owner")), "staged value not visible")
		assert.Nil(t, storage.Pool.Roles.Get([]byte("owner")), "staged value visible outside transaction")
		return nil
	})
	assert.Nil(t, err, "execute error")

	assert.Equal(t, []byte{0x01}, storage.Pool.Roles.Get([]byte("owner")), "value not committed")
	n, found := storage.Pool.MintDefaults.GetN([]byte("fee"))
	assert.True(t, found, "number not committed")
	assert.Equal(t, uint64(500000), n, "wrong number")
}

func TestExecuteThenRunsInCommitOrder(t *testing.T) {
	setup(t)
	defer teardown()

	key := []byte("sequence")
	seen := make([]uint64, 0)

	const count = 50
	var wg sync.WaitGroup
	for i := 0; i < count; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n := uint64(0)
			err := storage.ExecuteThen(func(trx storage.Transaction) error {
				n, _ = trx.GetN(storage.Pool.MintDefaults, key)
				n += 1
				trx.PutN(storage.Pool.MintDefaults, key, n)
				return nil
			}, func() {
				seen = append(seen, n)
			})
			assert.Nil(t, err, "execute error")
		}()
	}
	wg.Wait()

	if assert.Equal(t, count, len(seen), "wrong number of callbacks") {
		for i, n := range seen {
			assert.Equal(t, uint64(i+1), n, "callback %d out of commit order", i)
		}
	}
}

func TestExecuteThenSkipsCallbackOnFailure(t *testing.T) {
	setup(t)
	defer teardown()

	called := false
	err := storage.ExecuteThen(func(trx storage.Transaction) error {
		trx.Put(storage.Pool.Roles, []byte("owner"), []byte{0x01})
		return errTest
	}, func() {
		called = true
	})
	assert.Equal(t, errTest, err, "wrong error")
	assert.False(t, called, "callback ran after abort")
	assert.Nil(t, storage.Pool.Roles.Get([]byte("owner")), "aborted write committed")
}

func TestExecuteAbortLeavesNoWrites(t *testing.T) {
	setup(t)
	defer teardown()

	err := storage.Execute(func(trx storage.Transaction) error {
		trx.Put(storage.Pool.BadgeConfig, []byte("badge"), []byte("config"))
		trx.Put(storage.Pool.Endorsements, []byte("record"), []byte("data"))
		return errTest
	})
	assert.Equal(t, errTest, err, "wrong error")

	assert.False(t, storage.Pool.BadgeConfig.Has([]byte("badge")), "aborted write committed")
	assert.False(t, storage.Pool.Endorsements.Has([]byte("record")), "aborted write committed")

	// the transaction is reusable after an abort
	err = storage.Execute(func(trx storage.Transaction) error {
		assert.Nil(t, trx.Get(storage.Pool.BadgeConfig, []byte("badge")), "aborted write still staged")
		return nil
	})
	assert.Nil(t, err, "execute after abort")
}

func TestExecuteAbortOnPanic(t *testing.T) {
	setup(t)
	defer teardown()

	func() {
		defer func() {
			_ = recover()
		}()
		_ = storage.Execute(func(trx storage.Transaction) error {
			trx.Put(storage.Pool.Roles, []byte("owner"), []byte{0x02})
			panic("handler failure")
		})
	}()

	assert.False(t, storage.Pool.Roles.Has([]byte("owner")), "write committed after panic")

	err := storage.Execute(func(trx storage.Transaction) error {
		return nil
	})
	assert.Nil(t, err, "transaction left open after panic")
}

func TestStagedDelete(t *testing.T) {
	setup(t)
	defer teardown()

	key := []byte("badge")
	err := storage.Execute(func(trx storage.Transaction) error {
		trx.Put(storage.Pool.BadgeConfig, key, []byte("config"))
		return nil
	})
	assert.Nil(t, err, "execute error")

	err = storage.Execute(func(trx storage.Transaction) error {
		trx.Delete(storage.Pool.BadgeConfig, key)
		assert.False(t, trx.Has(storage.Pool.BadgeConfig, key), "staged delete not visible")
		assert.True(t, storage.Pool.BadgeConfig.Has(key), "staged delete visible outside transaction")
		return nil
	})
	assert.Nil(t, err, "execute error")
	assert.False(t, storage.Pool.BadgeConfig.Has(key), "delete not committed")
}

func TestRegionsAreIsolated(t *testing.T) {
	setup(t)
	defer teardown()

	key := []byte("same-key")
	err := storage.Execute(func(trx storage.Transaction) error {
		trx.Put(storage.Pool.BadgeCollections, key, []byte("collection"))
		return nil
	})
	assert.Nil(t, err, "execute error")

	assert.True(t, storage.Pool.BadgeCollections.Has(key), "missing in own region")
	assert.False(t, storage.Pool.PaymentTokens.Has(key), "visible in another region")
	assert.Equal(t, "badgetoken", storage.Pool.BadgeCollections.Module(), "wrong owner")
	assert.Equal(t, "BadgeCollections", storage.Pool.BadgeCollections.Name(), "wrong name")
}

func TestFetchCursor(t *testing.T) {
	setup(t)
	defer teardown()

	keys := []string{"key-a", "key-b", "key-c", "key-d", "key-e"}
	err := storage.Execute(func(trx storage.Transaction) error {
		for _, k := range keys {
			trx.Put(storage.Pool.Operations, []byte(k), []byte("data-"+k))
		}
		// a neighbouring region must not leak into the cursor
		trx.Put(storage.Pool.MintDefaults, []byte("key-z"), []byte("other"))
		return nil
	})
	assert.Nil(t, err, "execute error")

	cursor := storage.Pool.Operations.NewFetchCursor()
	first, err := cursor.Fetch(3)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 3, len(first), "wrong first page size")
	assert.Equal(t, []byte("key-a"), first[0].Key, "wrong first key")

	second, err := cursor.Fetch(3)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 2, len(second), "wrong second page size")
	assert.Equal(t, []byte("key-d"), second[0].Key, "wrong resume key")
	assert.Equal(t, []byte("data-key-e"), second[1].Value, "wrong value")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count accepted")

	count := 0
	err = storage.Pool.Operations.NewFetchCursor().Seek([]byte("key-c")).Map(func(key []byte, value []byte) error {
		count += 1
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, 3, count, "wrong map count")
}

func TestRegions(t *testing.T) {
	setup(t)
	defer teardown()

	seen := make(map[string]string)
	for _, r := range storage.Regions() {
		owner, ok := seen[r.Prefix]
		assert.False(t, ok, "prefix %q used by %s and %s", r.Prefix, owner, r.Name)
		seen[r.Prefix] = r.Name
	}
	assert.Equal(t, "Roles", seen["R"], "roles region missing")
	assert.Equal(t, "Operations", seen["O"], "operations region missing")
}

func TestDatabaseDowngradeRefused(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	storage.Finalise()

	dir, err := ioutil.TempDir("", "badged-storage")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "test.leveldb")

	err = storage.Initialise(name, storage.ReadWrite)
	assert.Nil(t, err, "initialise error")
	storage.Finalise()

	// pretend a newer program has written the database
	db, err := leveldb.OpenFile(name, nil)
	if nil != err {
		t.Fatalf("leveldb open error: %s", err)
	}
	err = db.Put([]byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}, []byte{0x7f, 0x00, 0x00, 0x00}, nil)
	assert.Nil(t, err, "version write error")
	db.Close()

	err = storage.Initialise(name, storage.ReadWrite)
	assert.Equal(t, fault.ErrWrongDatabaseVersion, err, "downgrade not refused")
	storage.Finalise()
}

func TestExecuteNotInitialised(t *testing.T) {
	storage.Finalise()
	err := storage.Execute(func(trx storage.Transaction) error {
		return nil
	})
	assert.Equal(t, fault.ErrNotInitialised, err, "wrong error")
}
