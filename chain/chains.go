// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - names of the deployments a database can belong to
package chain

// names of all chains
const (
	Live    = "live"
	Testing = "testing"
	Local   = "local"
)

// suffix of the default LevelDB directory name
const databaseSuffix = ".leveldb"

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Live, Testing, Local:
		return true
	default:
		return false
	}
}

// IsTesting - true for every chain except live
//
// callers must check Valid first
func IsTesting(name string) bool {
	return Live != name
}

// DatabaseName - default database name for a chain, blank if the
// chain is not valid
func DatabaseName(name string) string {
	if !Valid(name) {
		return ""
	}
	return name + databaseSuffix
}
