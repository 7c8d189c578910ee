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
	"github.com/bitmark-inc/badged/registry"
)

func runEnable(c *cli.Context) error {

	m := getMetadata(c)

	if err := m.requireCaller(); nil != err {
		return err
	}

	badgeId, err := requiredAccount("badge", c.String("badge"))
	if nil != err {
		return err
	}

	gate := rpccalls.MintGate
	if c.Bool("endorsement") {
		gate = rpccalls.EndorsementGate
	}
	enabled := !c.Bool("disable")

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	if err := client.SetEnabled(gate, m.caller, badgeId, enabled); nil != err {
		return err
	}

	config, err := client.GetConfig(badgeId)
	if nil != err {
		return err
	}
	return printJson(m.w, config)
}

// without --payment only display the params in effect
func runMintParams(c *cli.Context) error {

	m := getMetadata(c)

	badgeId, err := optionalAccount("badge", c.String("badge"))
	if nil != err {
		return err
	}
	payment, err := optionalAccount("payment", c.String("payment"))
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	if (common.Address{}) != payment {

		if err := m.requireCaller(); nil != err {
			return err
		}

		params := registry.MintParams{
			Payment: payment,
			Fee:     c.Uint64("fee"),
		}
		if m.verbose {
			fmt.Fprintf(m.e, "payment: %s\n", params.Payment.Hex())
			fmt.Fprintf(m.e, "fee: %d\n", params.Fee)
		}

		if (common.Address{}) == badgeId {
			err = client.SetDefaultMintParams(m.caller, params)
		} else {
			err = client.SetCustomMintParams(m.caller, badgeId, params, c.Bool("enable"))
		}
		if nil != err {
			return err
		}
	}

	params, err := client.GetMintParams(badgeId)
	if nil != err {
		return err
	}
	return printJson(m.w, params)
}

func runConfig(c *cli.Context) error {

	m := getMetadata(c)

	badgeId, err := requiredAccount("badge", c.String("badge"))
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	config, err := client.GetConfig(badgeId)
	if nil != err {
		return err
	}
	return printJson(m.w, config)
}

func runMint(c *cli.Context) error {

	m := getMetadata(c)

	if err := m.requireCaller(); nil != err {
		return err
	}

	badgeId, err := requiredAccount("badge", c.String("badge"))
	if nil != err {
		return err
	}
	payer, err := optionalAccount("payer", c.String("payer"))
	if nil != err {
		return err
	}
	recipient, err := requiredAccount("recipient", c.String("recipient"))
	if nil != err {
		return err
	}
	uri := c.String("uri")
	if "" == uri {
		return ErrMissingURI
	}

	if m.verbose {
		fmt.Fprintf(m.e, "badge: %s\n", badgeId.Hex())
		fmt.Fprintf(m.e, "payer: %s\n", payer.Hex())
		fmt.Fprintf(m.e, "recipient: %s\n", recipient.Hex())
		fmt.Fprintf(m.e, "uri: %s\n", uri)
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	mintConfig := &rpccalls.MintData{
		Badge:     badgeId,
		Payer:     payer,
		Recipient: recipient,
		TokenURI:  uri,
	}

	result, err := client.Mint(m.caller, mintConfig)
	if nil != err {
		return err
	}
	return printJson(m.w, result)
}
