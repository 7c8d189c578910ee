// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/badged/fault"
)

func TestValidateLayout(t *testing.T) {
	regions, err := validateLayout(reflect.TypeOf(Pool))
	assert.Nil(t, err, "layout error")
	assert.Equal(t, reflect.TypeOf(Pool).NumField(), len(regions), "wrong region count")

	for i := 1; i < len(regions); i += 1 {
		assert.True(t, regions[i-1].Prefix < regions[i].Prefix, "regions not sorted by prefix")
	}
}

func TestValidateLayoutOverlap(t *testing.T) {
	type overlapping struct {
		One *PoolHandle `prefix:"X" module:"first"`
		Two *PoolHandle `prefix:"X" module:"second"`
	}
	_, err := validateLayout(reflect.TypeOf(overlapping{}))
	assert.True(t, errors.Is(err, fault.ErrOverlappingRegion), "overlap not detected: %v", err)
}

func TestValidateLayoutMissingModule(t *testing.T) {
	type unowned struct {
		One *PoolHandle `prefix:"X"`
	}
	_, err := validateLayout(reflect.TypeOf(unowned{}))
	assert.True(t, errors.Is(err, fault.ErrInvalidRegion), "missing owner not detected: %v", err)
}

func TestValidateLayoutBadPrefix(t *testing.T) {
	type long struct {
		One *PoolHandle `prefix:"XY" module:"first"`
	}
	_, err := validateLayout(reflect.TypeOf(long{}))
	assert.True(t, errors.Is(err, fault.ErrInvalidRegion), "long prefix not detected: %v", err)

	type reserved struct {
		One *PoolHandle `prefix:"\x00" module:"first"`
	}
	_, err = validateLayout(reflect.TypeOf(reserved{}))
	assert.True(t, errors.Is(err, fault.ErrInvalidRegion), "version prefix not detected: %v", err)
}

func TestValidateLayoutWrongType(t *testing.T) {
	type wrong struct {
		One string `prefix:"X" module:"first"`
	}
	_, err := validateLayout(reflect.TypeOf(wrong{}))
	assert.True(t, errors.Is(err, fault.ErrInvalidRegion), "wrong field type not detected: %v", err)
}

func TestCacheStagesDeletes(t *testing.T) {
	c := newCache()

	_, _, found := c.Get("key")
	assert.False(t, found, "empty cache returned data")

	c.Set(dbPut, "key", []byte("value"))
	value, op, found := c.Get("key")
	assert.True(t, found, "staged put not found")
	assert.Equal(t, dbPut, op, "wrong operation")
	assert.Equal(t, []byte("value"), value, "wrong value")

	c.Set(dbDelete, "key", nil)
	_, op, found = c.Get("key")
	assert.True(t, found, "staged delete not found")
	assert.Equal(t, dbDelete, op, "wrong operation")

	c.Clear()
	_, _, found = c.Get("key")
	assert.False(t, found, "cache not cleared")
}
