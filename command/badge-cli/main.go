// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	caller  common.Address
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "badge-cli"
	app.Usage = "operate a badged platform over JSON-RPC"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " badged client RPC `HOST:PORT`",
			EnvVar: "BADGED_CONNECT",
		},
		cli.StringFlag{
			Name:   "account, a",
			Value:  "",
			Usage:  " caller `ACCOUNT` as 0x hex",
			EnvVar: "BADGED_ACCOUNT",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "info",
			Usage:  "display badged status",
			Action: runInfo,
		},
		{
			Name:   "roles",
			Usage:  "display owner, backup owner and fee collector",
			Action: runRoles,
		},
		{
			Name:      "set-role",
			Usage:     "replace a role holder",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "role, r",
					Value: "",
					Usage: "*`ROLE` [owner|backup-owner|fee-collector]",
				},
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*new holder `ACCOUNT`, zero clears backup-owner or fee-collector",
				},
			},
			Action: runSetRole,
		},
		{
			Name:      "is-authorised",
			Usage:     "check whether an account holds a capability",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "holder, o",
					Value: "",
					Usage: "*`ACCOUNT` to check",
				},
				cli.StringFlag{
					Name:  "capability, p",
					Value: "admin",
					Usage: " `CAPABILITY` [admin|owner|fee-collector]",
				},
			},
			Action: runIsAuthorised,
		},
		{
			Name:      "facets",
			Usage:     "list deployed modules and their operations",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "signature, s",
					Value: "",
					Usage: " only show the module serving `SIGNATURE`",
				},
			},
			Action: runFacets,
		},
		{
			Name:      "cut",
			Usage:     "add, replace or remove operations",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*JSON cut `FILE` with changes, initialiser and arguments",
				},
			},
			Action: runCut,
		},
		{
			Name:      "enable",
			Usage:     "open or close minting or endorsing of a badge",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "badge, b",
					Value: "",
					Usage: "*badge collection `ACCOUNT`",
				},
				cli.BoolFlag{
					Name:  "endorsement, e",
					Usage: " change endorsing instead of minting",
				},
				cli.BoolFlag{
					Name:  "disable, d",
					Usage: " close instead of open",
				},
			},
			Action: runEnable,
		},
		{
			Name:      "mint-params",
			Usage:     "set or display mint fee and payment token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "badge, b",
					Value: "",
					Usage: " badge collection `ACCOUNT`, blank for the defaults",
				},
				cli.StringFlag{
					Name:  "payment, p",
					Value: "",
					Usage: " payment token `ACCOUNT`, blank to display",
				},
				cli.Uint64Flag{
					Name:  "fee, f",
					Value: 0,
					Usage: " mint fee `AMOUNT`",
				},
				cli.BoolFlag{
					Name:  "enable, e",
					Usage: " also open minting of the badge",
				},
			},
			Action: runMintParams,
		},
		{
			Name:      "config",
			Usage:     "display the configuration of a badge",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "badge, b",
					Value: "",
					Usage: "*badge collection `ACCOUNT`",
				},
			},
			Action: runConfig,
		},
		{
			Name:      "mint",
			Usage:     "mint a soulbound badge token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "badge, b",
					Value: "",
					Usage: "*badge collection `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "payer, p",
					Value: "",
					Usage: " fee payer `ACCOUNT`, blank for a subsidised mint",
				},
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "*token holder `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "uri, u",
					Value: "",
					Usage: "*token metadata `URI`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "endorse",
			Usage:     "endorse a badge token as the caller",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "badge, b",
					Value: "",
					Usage: "*badge collection `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "token, t",
					Value: 0,
					Usage: "*token `ID`",
				},
				cli.BoolFlag{
					Name:  "revoke, r",
					Usage: " revoke an existing endorsement",
				},
			},
			Action: runEndorse,
		},
		{
			Name:      "totals",
			Usage:     "count endorsements of a badge token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "badge, b",
					Value: "",
					Usage: "*badge collection `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "token, t",
					Value: 0,
					Usage: "*token `ID`",
				},
			},
			Action: runTotals,
		},
		{
			Name:      "endorsements",
			Usage:     "list endorsements of a badge token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "badge, b",
					Value: "",
					Usage: "*badge collection `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "token, t",
					Value: 0,
					Usage: "*token `ID`",
				},
				cli.Uint64Flag{
					Name:  "offset, o",
					Value: 0,
					Usage: " start `COUNT` positions from the newest",
				},
				cli.BoolFlag{
					Name:  "skip-revoked, s",
					Usage: " leave out revoked endorsements",
				},
				cli.StringFlag{
					Name:  "endorser, e",
					Value: "",
					Usage: " only the record of `ACCOUNT`",
				},
			},
			Action: runEndorsements,
		},
		{
			Name:      "create-badge",
			Usage:     "create a badge collection owned by the caller",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*collection `NAME`",
				},
				cli.StringFlag{
					Name:  "symbol, s",
					Value: "",
					Usage: "*collection `SYMBOL`",
				},
				cli.StringFlag{
					Name:  "minter, m",
					Value: "",
					Usage: " also authorise `ACCOUNT` to mint",
				},
			},
			Action: runCreateBadge,
		},
		{
			Name:      "create-payment",
			Usage:     "create a payment token issued by the caller",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*token `NAME`",
				},
				cli.StringFlag{
					Name:  "symbol, s",
					Value: "",
					Usage: "*token `SYMBOL`",
				},
				cli.Uint64Flag{
					Name:  "decimals, d",
					Value: 6,
					Usage: " `DIGITS` after the decimal point",
				},
			},
			Action: runCreatePayment,
		},
		{
			Name:      "payment",
			Usage:     "issue, approve or transfer a payment token amount",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "action, x",
					Value: "",
					Usage: "*`ACTION` [issue|approve|transfer]",
				},
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*payment token `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "to, r",
					Value: "",
					Usage: "*recipient or spender `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "amount, n",
					Value: 0,
					Usage: "*`AMOUNT` in the smallest unit",
				},
			},
			Action: runPayment,
		},
		{
			Name:      "balance",
			Usage:     "display a payment token balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*payment token `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "holder, o",
					Value: "",
					Usage: " holder `ACCOUNT`, default is the caller",
				},
			},
			Action: runBalance,
		},
		{
			Name:  "version",
			Usage: "display badge-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		caller, err := optionalAccount("account", c.GlobalString("account"))
		if nil != err {
			return err
		}

		connect := c.GlobalString("connect")
		if verbose {
			fmt.Fprintf(e, "connect: %s\n", connect)
			fmt.Fprintf(e, "account: %s\n", caller.Hex())
		}

		c.App.Metadata = map[string]interface{}{
			"config": &metadata{
				connect: connect,
				caller:  caller,
				verbose: verbose,
				e:       e,
				w:       w,
			},
		}
		return nil
	}

	return app
}
