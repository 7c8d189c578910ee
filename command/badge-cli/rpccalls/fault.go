// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/badged/fault"
)

// client side errors
var (
	ErrUnknownAction = fault.InvalidError("action must be one of: issue, approve, transfer")
	ErrUnknownRole   = fault.InvalidError("role must be one of: owner, backup-owner, fee-collector")
)
