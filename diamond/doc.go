// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package diamond - the operation router
//
// The router owns the Operations region: a table from four byte
// selector to the name of the module that serves it. Modules are
// deployed into the router by name, then bound to selectors by a cut.
// The cut and loupe modules are built in and are bound by Genesis.
//
// Every dispatch is one storage transaction. Listeners see an
// operation only after it has committed.
package diamond
