// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - map a Lua configuration file onto a struct
//
// the file is an ordinary Lua chunk that must return a table; it may
// call os.getenv, read other files or use the values passed in as
// globals (see ParseConfigurationFile) to compute settings
package configuration
