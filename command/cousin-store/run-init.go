// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bianyuanop/cousin-store-contract/host"
)

type initReply struct {
	Owner    string `json:"owner"`
	Database string `json:"database"`
}

func runInit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkCaller(c.GlobalString("caller"), m.config, true)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "database: %q\n", m.config.Database.Name)
	}

	h, err := host.Deploy(hostConfiguration(m.config, false), owner)
	if nil != err {
		return err
	}
	defer h.Close()

	return printJson(m.w, initReply{
		Owner:    h.Owner().String(),
		Database: m.config.Database.Name,
	})
}
