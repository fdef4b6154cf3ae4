// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bianyuanop/cousin-store-contract/host"
)

func runAddCommodity(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkCaller(c.GlobalString("caller"), m.config, true)
	if nil != err {
		return err
	}

	return runMessage(c, host.Message{
		Caller:      caller,
		Method:      host.AddCommodity,
		Description: c.String("description"),
	}, false)
}

func runAlterCommodity(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkCaller(c.GlobalString("caller"), m.config, true)
	if nil != err {
		return err
	}
	id, err := checkId(c.String("id"))
	if nil != err {
		return err
	}

	return runMessage(c, host.Message{
		Caller:      caller,
		Method:      host.AlterCommodity,
		Id:          id,
		Description: c.String("description"),
	}, false)
}

func runGetCommodity(c *cli.Context) error {
	id, err := checkId(c.String("id"))
	if nil != err {
		return err
	}

	return runMessage(c, host.Message{
		Method: host.GetCommodity,
		Id:     id,
	}, true)
}

func runCommodityCount(c *cli.Context) error {
	return runMessage(c, host.Message{
		Method: host.CommodityCount,
	}, true)
}
