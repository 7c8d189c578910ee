// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - in-process badge and payment token services
//
// These are the collaborators the mint workflow calls out to.  They
// keep their own regions of the storage context and run inside the
// transaction of the operation that calls them, so a failed mint
// leaves neither a token nor a payment behind.
//
// Badge tokens are soulbound: there is no transfer.  Collection and
// payment token addresses are derived in the same way as contract
// creation addresses, from the creator and a nonce.
package token
