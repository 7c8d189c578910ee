// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/logger"
)

// exported storage regions
//
// note all must be exported (i.e. initial capital) or initialisation will panic
// new regions may be added but a prefix must never be reused
type pools struct {
	Roles             *PoolHandle `prefix:"R" module:"access"`
	Operations        *PoolHandle `prefix:"O" module:"diamond"`
	MintDefaults      *PoolHandle `prefix:"D" module:"registry"`
	BadgeConfig       *PoolHandle `prefix:"B" module:"registry"`
	Endorsements      *PoolHandle `prefix:"E" module:"endorsement"`
	EndorsementIndex  *PoolHandle `prefix:"I" module:"endorsement"`
	EndorsementTotals *PoolHandle `prefix:"N" module:"endorsement"`
	BadgeCollections  *PoolHandle `prefix:"C" module:"badgetoken"`
	BadgeMinters      *PoolHandle `prefix:"M" module:"badgetoken"`
	BadgeTokens       *PoolHandle `prefix:"T" module:"badgetoken"`
	PaymentTokens     *PoolHandle `prefix:"P" module:"paymenttoken"`
	PaymentBalances   *PoolHandle `prefix:"W" module:"paymenttoken"`
	PaymentAllowances *PoolHandle `prefix:"A" module:"paymenttoken"`
}

// Pool - the set of exported regions
var Pool pools

// Region - description of one region of the storage context
type Region struct {
	Name   string `json:"name"`
	Prefix string `json:"prefix"`
	Module string `json:"module"`
}

// InMemory - database name that selects a non-persistent store
const InMemory = ":memory:"

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	execution sync.Mutex // single serialised execution stream
	database  *leveldb.DB
	trx       *transaction
	regions   []Region
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// this must be called before any region is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	ok := false

	if nil != poolData.database {
		return fault.ErrAlreadyInitialised
	}

	defer func() {
		if !ok {
			dbClose()
		}
	}()

	// check the region layout before touching any data
	poolType := reflect.TypeOf(Pool)
	regions, err := validateLayout(poolType)
	if nil != err {
		logger.Criticalf("storage region layout error: %s", err)
		return err
	}

	db, version, err := getDB(database, readOnly)
	if nil != err {
		return err
	}
	poolData.database = db

	// ensure no database downgrade
	if version > currentDBVersion {
		logger.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return fault.ErrWrongDatabaseVersion
	}

	if 0 == version && !readOnly {
		// database was empty so tag as current version
		err = putVersion(poolData.database, currentDBVersion)
		if nil != err {
			return err
		}
	}

	access := newDataAccess(poolData.database)
	poolData.trx = newTransaction(access)
	poolData.regions = regions

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)
		prefix := fieldInfo.Tag.Get("prefix")[0]

		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			name:       fieldInfo.Name,
			module:     fieldInfo.Tag.Get("module"),
			prefix:     prefix,
			limit:      limit,
			dataAccess: access,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	ok = true // prevent db close
	return nil
}

// validateLayout - each region must have a distinct single byte
// prefix and exactly one owning module
func validateLayout(poolType reflect.Type) ([]Region, error) {

	if reflect.Struct != poolType.Kind() {
		return nil, fault.ErrInvalidStructPointer
	}

	prefixes := make(map[byte]string)
	regions := make([]Region, 0, poolType.NumField())

	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)

		if fieldInfo.Type != reflect.TypeOf((*PoolHandle)(nil)) {
			return nil, fmt.Errorf("%w: %s is not a region handle", fault.ErrInvalidRegion, fieldInfo.Name)
		}

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) || 0x00 == prefixTag[0] {
			return nil, fmt.Errorf("%w: %s has invalid prefix: %q", fault.ErrInvalidRegion, fieldInfo.Name, prefixTag)
		}

		module := fieldInfo.Tag.Get("module")
		if "" == module {
			return nil, fmt.Errorf("%w: %s has no owning module", fault.ErrInvalidRegion, fieldInfo.Name)
		}

		if other, ok := prefixes[prefixTag[0]]; ok {
			return nil, fmt.Errorf("%w: %s and %s share prefix: %q", fault.ErrOverlappingRegion, other, fieldInfo.Name, prefixTag)
		}
		prefixes[prefixTag[0]] = fieldInfo.Name

		regions = append(regions, Region{
			Name:   fieldInfo.Name,
			Prefix: prefixTag,
			Module: module,
		})
	}

	sort.Slice(regions, func(i, j int) bool {
		return regions[i].Prefix < regions[j].Prefix
	})

	return regions, nil
}

// Regions - list the regions sorted by prefix
func Regions() []Region {
	poolData.RLock()
	defer poolData.RUnlock()

	result := make([]Region, len(poolData.regions))
	copy(result, poolData.regions)
	return result
}

func dbClose() {
	if nil != poolData.database {
		poolData.database.Close()
		poolData.database = nil
	}
	poolData.trx = nil
	poolData.regions = nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	dbClose()
	poolData.Unlock()
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {

	var db *leveldb.DB
	var err error

	if InMemory == name {
		db, err = leveldb.Open(ldb_storage.NewMemStorage(), nil)
	} else {
		opt := &ldb_opt.Options{
			ErrorIfExist:   false,
			ErrorIfMissing: readOnly,
			ReadOnly:       readOnly,
		}
		db, err = leveldb.OpenFile(name, opt)
	}
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
