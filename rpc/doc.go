// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - start and stop the JSON-RPC listeners of badged
//
// the services themselves live in sub-packages and are registered by
// rpc/server; any net/rpc/jsonrpc client over TLS can call them
package rpc
