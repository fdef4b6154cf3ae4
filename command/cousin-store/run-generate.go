// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bianyuanop/cousin-store-contract/keypair"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	rawKeyPair, keyPair, err := keypair.MakeRawKeyPair(c.Bool("testing"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "account: %s\n", keyPair.Account)
	}

	return printJson(m.w, rawKeyPair)
}
