// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func runFacets(c *cli.Context) error {

	m := getMetadata(c)

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	if signature := c.String("signature"); "" != signature {
		reply, err := client.GetModule(signature)
		if nil != err {
			return err
		}
		return printJson(m.w, reply)
	}

	facets, err := client.GetFacets()
	if nil != err {
		return err
	}
	return printJson(m.w, facets)
}

func runCut(c *cli.Context) error {

	m := getMetadata(c)

	if err := m.requireCaller(); nil != err {
		return err
	}

	fileName := c.String("file")
	if "" == fileName {
		return ErrMissingFile
	}

	data, err := os.ReadFile(fileName)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "cut file: %s\n", fileName)
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	if err := client.Cut(m.caller, data); nil != err {
		return err
	}

	facets, err := client.GetFacets()
	if nil != err {
		return err
	}
	return printJson(m.w, facets)
}
