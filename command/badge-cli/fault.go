// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/badged/fault"
)

// common errors - keep in alphabetic order
var (
	ErrInvalidAccount    = fault.InvalidError("invalid account")
	ErrMissingAccount    = fault.InvalidError("missing account")
	ErrMissingFile       = fault.InvalidError("missing file")
	ErrMissingName       = fault.InvalidError("missing name or symbol")
	ErrMissingURI        = fault.InvalidError("missing token uri")
	ErrUnknownCapability = fault.InvalidError("capability must be one of: admin, owner, fee-collector")
)
