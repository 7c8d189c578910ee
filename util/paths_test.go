// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/badged/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/etc/badged/rpc.crt", util.EnsureAbsolute("/etc/badged", "rpc.crt"), "relative not joined")
	assert.Equal(t, "/var/lib/rpc.crt", util.EnsureAbsolute("/etc/badged", "/var/lib/rpc.crt"), "absolute changed")
	assert.Equal(t, "/etc/rpc.crt", util.EnsureAbsolute("/etc/badged", "../rpc.crt"), "not cleaned")
}

func TestEnsureFileExists(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "publish.public")

	assert.False(t, util.EnsureFileExists(name), "missing file found")

	err := os.WriteFile(name, []byte("key"), 0600)
	assert.Nil(t, err, "write error")
	assert.True(t, util.EnsureFileExists(name), "file not found")
}
