// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the shared storage context
//
// A single LevelDB database split into named regions.  Each region is
// defined by a prefix byte and an owning module that are obtained from
// the tags in the struct defining the available regions.  A region is
// only ever written by the module named in its tag.
//
// Notes:
// 1. each separate region has a single byte prefix
// 2. ++        = concatenation of byte data
// 3. address   = 20 byte account or contract address
// 4. badge     = address of a badge collection
// 5. token     = token id as big endian uint64 (8 bytes)
// 6. n         = successive index value as big endian uint64 (8 bytes)
// 7. selector  = 4 byte operation identifier
// 8. packed    = Varint64 numbers and length prefixed bytes (util.Packed)
//
// Access control (module: access):
//
//   R ++ role name             - role holders: "owner", "backup", "collector"
//                                data: address
//   R ++ "initialised"         - one-shot initialiser guard
//                                data: 0x01
//
// Dispatch (module: diamond):
//
//   O ++ selector              - operation table
//                                data: packed(module name, operation signature)
//
// Badge registry (module: registry):
//
//   D ++ "payment"             - default payment token
//                                data: address
//   D ++ "fee"                 - default mint fee
//                                data: big endian uint64
//   B ++ badge                 - per badge configuration
//                                data: packed(mintEnabled, endorsementEnabled, custom, payment, fee)
//
// Endorsements (module: endorsement):
//
//   E ++ badge ++ token ++ endorser - endorsement record
//                                data: packed(status, timestamp)
//   I ++ badge ++ token ++ n   - endorsers in order of first endorsement
//                                data: address
//   N ++ badge ++ token        - counters
//                                data: total (8 bytes) ++ active (8 bytes)
//
// Badge token service (module: badgetoken):
//
//   C ++ badge                 - collection
//                                data: packed(name, symbol, creator, next token id)
//   M ++ badge ++ minter       - authorised minter
//                                data: 0x01
//   T ++ badge ++ token        - minted token
//                                data: owner ++ uri
//
// Payment token service (module: paymenttoken):
//
//   P ++ token                 - fungible token
//                                data: packed(name, symbol, decimals, issuer, total supply)
//   W ++ token ++ holder       - balance
//                                data: big endian uint64
//   A ++ token ++ holder ++ spender - allowance
//                                data: big endian uint64
package storage
