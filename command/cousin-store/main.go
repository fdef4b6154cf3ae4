// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"
)

type metadata struct {
	config  *Configuration
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// commands that do not need a configuration file
var noConfiguration = map[string]struct{}{
	"":         {},
	"generate": {},
	"help":     {},
	"h":        {},
	"version":  {},
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "cousin-store"
	app.Usage = "run messages against a commodity and order store"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	idFlag := cli.StringFlag{
		Name:  "id, i",
		Value: "",
		Usage: "*commodity or order `ID`",
	}
	descriptionFlag := cli.StringFlag{
		Name:  "description, d",
		Value: "",
		Usage: " free form `TEXT`",
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "cousin-store.conf",
			Usage: " configuration `FILE` (.conf, .lua, .yaml)",
		},
		cli.StringFlag{
			Name:  "caller, a",
			Value: "",
			Usage: " calling identity `NAME`, base58 account or hex public key",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "testing, t",
					Usage: " make a testing account",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "init",
			Usage:     "create the store, the caller becomes its owner",
			ArgsUsage: "\n   (* = required)",
			Action:    runInit,
		},
		{
			Name:   "add-commodity",
			Usage:  "add a commodity (owner only)",
			Flags:  []cli.Flag{descriptionFlag},
			Action: runAddCommodity,
		},
		{
			Name:      "alter-commodity",
			Usage:     "replace a commodity description (owner only)",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag, descriptionFlag},
			Action:    runAlterCommodity,
		},
		{
			Name:      "get-commodity",
			Usage:     "show a commodity description",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    runGetCommodity,
		},
		{
			Name:   "commodity-count",
			Usage:  "number of commodities added",
			Action: runCommodityCount,
		},
		{
			Name:   "add-order",
			Usage:  "add an order for the caller",
			Flags:  []cli.Flag{descriptionFlag},
			Action: runAddOrder,
		},
		{
			Name:      "get-order",
			Usage:     "show an order description (owner or its client)",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    runGetOrder,
		},
		{
			Name:   "order-count",
			Usage:  "number of orders added",
			Action: runOrderCount,
		},
		{
			Name:      "alter-order",
			Usage:     "replace an order description (its client only)",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag, descriptionFlag},
			Action:    runAlterOrder,
		},
		{
			Name:   "verify",
			Usage:  "check every issued id is backed by records",
			Action: runVerify,
		},
		{
			Name:  "version",
			Usage: "display version",
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

		m := &metadata{
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if _, ok := noConfiguration[command]; ok {
			return nil
		}

		file := c.GlobalString("config")
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		configuration, err := getConfiguration(file)
		if nil != err {
			return err
		}
		m.config = configuration

		// start logging
		if err := logger.Initialise(configuration.Logging); nil != err {
			return err
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if ok && nil != m.config {
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
