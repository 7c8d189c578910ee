// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/badged/access"
	"github.com/bitmark-inc/badged/command/badge-cli/rpccalls"
)

// names accepted by the --capability option
var capabilities = map[string]access.Capability{
	"admin":         access.AdminRole,
	"owner":         access.OwnerRole,
	"fee-collector": access.FeeCollectorRole,
}

func runRoles(c *cli.Context) error {

	m := getMetadata(c)

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	roles, err := client.GetRoles()
	if nil != err {
		return err
	}

	return printJson(m.w, roles)
}

func runSetRole(c *cli.Context) error {

	m := getMetadata(c)

	if err := m.requireCaller(); nil != err {
		return err
	}

	role := c.String("role")
	if _, ok := rpccalls.RoleChange[role]; !ok {
		return rpccalls.ErrUnknownRole
	}

	// only the owner role may not be cleared
	var to common.Address
	var err error
	if "owner" == role {
		to, err = requiredAccount("to", c.String("to"))
	} else {
		to, err = optionalAccount("to", c.String("to"))
	}
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "role: %s\n", role)
		fmt.Fprintf(m.e, "to: %s\n", to.Hex())
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	if err := client.ChangeRole(role, m.caller, to); nil != err {
		return err
	}

	roles, err := client.GetRoles()
	if nil != err {
		return err
	}
	return printJson(m.w, roles)
}

func runIsAuthorised(c *cli.Context) error {

	m := getMetadata(c)

	name := c.String("capability")
	capability, ok := capabilities[name]
	if !ok {
		return fmt.Errorf("capability: %q: %w", name, ErrUnknownCapability)
	}

	account, err := requiredAccount("holder", c.String("holder"))
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	authorised, err := client.IsAuthorised(account, capability)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Account    common.Address `json:"account"`
		Capability string         `json:"capability"`
		Authorised bool           `json:"authorised"`
	}{
		Account:    account,
		Capability: capability.String(),
		Authorised: authorised,
	})
}
