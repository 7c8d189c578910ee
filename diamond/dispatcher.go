// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package diamond

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/badged/module"
)

//go:generate mockgen -source=dispatcher.go -destination=mocks/mock_dispatcher.go -package=mocks

// Dispatcher - the part of the router used by the RPC services
type Dispatcher interface {
	DispatchSignature(ctx context.Context, signature string, arguments interface{}, caller common.Address) (interface{}, error)
	Module(name string) (module.Module, bool)
}
