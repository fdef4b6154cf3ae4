// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bianyuanop/cousin-store-contract/host"
)

func runAddOrder(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkCaller(c.GlobalString("caller"), m.config, true)
	if nil != err {
		return err
	}

	return runMessage(c, host.Message{
		Caller:      caller,
		Method:      host.AddOrder,
		Description: c.String("description"),
	}, false)
}

// without a caller nothing is visible, so one is required
func runGetOrder(c *cli.Context) error {
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
		Caller: caller,
		Method: host.GetOrder,
		Id:     id,
	}, true)
}

func runOrderCount(c *cli.Context) error {
	return runMessage(c, host.Message{
		Method: host.OrderCount,
	}, true)
}

func runAlterOrder(c *cli.Context) error {
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
		Method:      host.AlterOrder,
		Id:          id,
		Description: c.String("description"),
	}, false)
}

func runVerify(c *cli.Context) error {
	return runMessage(c, host.Message{
		Method: host.Verify,
	}, true)
}
