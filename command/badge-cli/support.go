// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/badged/command/badge-cli/rpccalls"
)

// a required 0x hex account
func requiredAccount(name string, value string) (common.Address, error) {
	if "" == value {
		return common.Address{}, fmt.Errorf("%s: %w", name, ErrMissingAccount)
	}
	return optionalAccount(name, value)
}

// a 0x hex account, blank is the zero address
func optionalAccount(name string, value string) (common.Address, error) {
	if "" == value {
		return common.Address{}, nil
	}
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("%s: %q: %w", name, value, ErrInvalidAccount)
	}
	return common.HexToAddress(value), nil
}

// the caller is required by every state changing command
func (m *metadata) requireCaller() error {
	if (common.Address{}) == m.caller {
		return fmt.Errorf("account: %w", ErrMissingAccount)
	}
	return nil
}

func (m *metadata) client() (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.verbose, m.e)
}

func getMetadata(c *cli.Context) *metadata {
	return c.App.Metadata["config"].(*metadata)
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
