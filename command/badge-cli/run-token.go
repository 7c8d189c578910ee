// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/badged/command/badge-cli/rpccalls"
)

func runCreateBadge(c *cli.Context) error {

	m := getMetadata(c)

	if err := m.requireCaller(); nil != err {
		return err
	}

	name := c.String("name")
	symbol := c.String("symbol")
	if "" == name || "" == symbol {
		return ErrMissingName
	}
	minter, err := optionalAccount("minter", c.String("minter"))
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.CreateBadge(m.caller, name, symbol)
	if nil != err {
		return err
	}

	if (common.Address{}) != minter {
		if m.verbose {
			fmt.Fprintf(m.e, "minter: %s\n", minter.Hex())
		}
		if err := client.SetMinter(m.caller, reply.Address, minter, true); nil != err {
			return err
		}
	}

	return printJson(m.w, reply)
}

func runCreatePayment(c *cli.Context) error {

	m := getMetadata(c)

	if err := m.requireCaller(); nil != err {
		return err
	}

	name := c.String("name")
	symbol := c.String("symbol")
	if "" == name || "" == symbol {
		return ErrMissingName
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.CreatePayment(m.caller, name, symbol, c.Uint64("decimals"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runPayment(c *cli.Context) error {

	m := getMetadata(c)

	if err := m.requireCaller(); nil != err {
		return err
	}

	action := c.String("action")
	if _, ok := rpccalls.AmountAction[action]; !ok {
		return rpccalls.ErrUnknownAction
	}
	token, err := requiredAccount("token", c.String("token"))
	if nil != err {
		return err
	}
	to, err := requiredAccount("to", c.String("to"))
	if nil != err {
		return err
	}
	amount := c.Uint64("amount")

	if m.verbose {
		fmt.Fprintf(m.e, "%s: %d of %s to %s\n", action, amount, token.Hex(), to.Hex())
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	if err := client.MoveAmount(action, m.caller, token, to, amount); nil != err {
		return err
	}

	balance, err := client.GetBalance(token, m.caller)
	if nil != err {
		return err
	}
	return printJson(m.w, balance)
}

func runBalance(c *cli.Context) error {

	m := getMetadata(c)

	token, err := requiredAccount("token", c.String("token"))
	if nil != err {
		return err
	}
	holder, err := optionalAccount("holder", c.String("holder"))
	if nil != err {
		return err
	}
	if (common.Address{}) == holder {
		if err := m.requireCaller(); nil != err {
			return err
		}
		holder = m.caller
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	balance, err := client.GetBalance(token, holder)
	if nil != err {
		return err
	}
	return printJson(m.w, balance)
}
