// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli"
)

func runEndorse(c *cli.Context) error {

	m := getMetadata(c)

	if err := m.requireCaller(); nil != err {
		return err
	}

	badgeId, err := requiredAccount("badge", c.String("badge"))
	if nil != err {
		return err
	}
	tokenId := c.Uint64("token")
	revoke := c.Bool("revoke")

	if m.verbose {
		fmt.Fprintf(m.e, "badge: %s\n", badgeId.Hex())
		fmt.Fprintf(m.e, "token: %d\n", tokenId)
		fmt.Fprintf(m.e, "revoke: %t\n", revoke)
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	if err := client.Endorse(m.caller, badgeId, tokenId, revoke); nil != err {
		return err
	}

	record, err := client.GetEndorsement(badgeId, tokenId, m.caller)
	if nil != err {
		return err
	}
	return printJson(m.w, record)
}

func runTotals(c *cli.Context) error {

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

	totals, err := client.GetTotals(badgeId, c.Uint64("token"))
	if nil != err {
		return err
	}
	return printJson(m.w, totals)
}

func runEndorsements(c *cli.Context) error {

	m := getMetadata(c)

	badgeId, err := requiredAccount("badge", c.String("badge"))
	if nil != err {
		return err
	}
	endorser, err := optionalAccount("endorser", c.String("endorser"))
	if nil != err {
		return err
	}
	tokenId := c.Uint64("token")

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	if (common.Address{}) != endorser {
		record, err := client.GetEndorsement(badgeId, tokenId, endorser)
		if nil != err {
			return err
		}
		return printJson(m.w, record)
	}

	page, err := client.GetPage(badgeId, tokenId, c.Uint64("offset"), c.Bool("skip-revoked"))
	if nil != err {
		return err
	}
	return printJson(m.w, page)
}
