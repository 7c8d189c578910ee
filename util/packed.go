// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/bitmark-inc/badged/fault"
)

// Packed - a storage record built from Varint64 numbers and
// length-prefixed byte strings
type Packed []byte

// PackUint64 - append a Varint64
func (p Packed) PackUint64(value uint64) Packed {
	return append(p, ToVarint64(value)...)
}

// PackBool - append a boolean as a single Varint64
func (p Packed) PackBool(value bool) Packed {
	if value {
		return p.PackUint64(1)
	}
	return p.PackUint64(0)
}

// PackBytes - append a Varint64 length followed by the bytes
func (p Packed) PackBytes(value []byte) Packed {
	p = p.PackUint64(uint64(len(value)))
	return append(p, value...)
}

// PackString - append a string as length-prefixed bytes
func (p Packed) PackString(value string) Packed {
	return p.PackBytes([]byte(value))
}

// Unpacker - sequential reader for a Packed record
//
// the first decode error sticks and all later reads return zero values
type Unpacker struct {
	buffer []byte
	err    error
}

// NewUnpacker - start reading a packed record
func NewUnpacker(record []byte) *Unpacker {
	return &Unpacker{
		buffer: record,
	}
}

// Uint64 - read the next Varint64
func (u *Unpacker) Uint64() uint64 {
	if nil != u.err {
		return 0
	}
	value, n := FromVarint64(u.buffer)
	if 0 == n {
		u.err = fault.ErrTruncatedRecord
		return 0
	}
	u.buffer = u.buffer[n:]
	return value
}

// Bool - read the next boolean
func (u *Unpacker) Bool() bool {
	return 0 != u.Uint64()
}

// Bytes - read the next length-prefixed byte string
//
// the result is a copy and may be retained
func (u *Unpacker) Bytes() []byte {
	length := u.Uint64()
	if nil != u.err {
		return nil
	}
	if uint64(len(u.buffer)) < length {
		u.err = fault.ErrTruncatedRecord
		return nil
	}
	value := make([]byte, length)
	copy(value, u.buffer[:length])
	u.buffer = u.buffer[length:]
	return value
}

// String - read the next length-prefixed string
func (u *Unpacker) String() string {
	return string(u.Bytes())
}

// Err - the first error encountered, or nil
func (u *Unpacker) Err() error {
	return u.err
}
