// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/bianyuanop/cousin-store-contract/account"
	"github.com/bianyuanop/cousin-store-contract/fault"
	"github.com/bianyuanop/cousin-store-contract/host"
	"github.com/bianyuanop/cousin-store-contract/keypair"
)

// resolve --caller as a configured identity name, a base58 account or
// a hex public key on the configured network
//
// an empty name is allowed only when the message needs no caller
func checkCaller(name string, config *Configuration, required bool) (*account.Account, error) {
	if "" == name {
		if required {
			return nil, fault.ErrMissingCaller
		}
		return nil, nil
	}

	if s, ok := config.Identities[name]; ok {
		name = s
	}

	caller, err := account.FromBase58(name)
	if nil != err {
		caller, err = keypair.AccountFromHexPublicKey(name, config.Testing)
		if nil != err {
			return nil, fault.ErrNotFoundIdentity
		}
	}
	if caller.IsTesting() != config.Testing {
		return nil, fmt.Errorf("caller: %s  testing: %t does not match configuration", caller, caller.IsTesting())
	}
	return caller, nil
}

func checkId(s string) (uint32, error) {
	if "" == s {
		return 0, fmt.Errorf("id is required")
	}
	id, err := strconv.ParseUint(s, 10, 32)
	if nil != err {
		return 0, fmt.Errorf("id: %q is not a 32 bit number", s)
	}
	return uint32(id), nil
}

func hostConfiguration(config *Configuration, readOnly bool) host.Configuration {
	return host.Configuration{
		Database: config.Database.Name,
		ReadOnly: readOnly,
	}
}

// open the store, run one message and print its result
func runMessage(c *cli.Context, message host.Message, readOnly bool) error {
	m := c.App.Metadata["config"].(*metadata)

	h, err := host.Open(hostConfiguration(m.config, readOnly))
	if nil != err {
		return err
	}
	defer h.Close()

	if m.verbose {
		fmt.Fprintf(m.e, "method: %s\n", message.Method)
		fmt.Fprintf(m.e, "caller: %v\n", message.Caller)
		fmt.Fprintf(m.e, "owner:  %s\n", h.Owner())
	}

	result, err := h.Execute(message)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "stats: %+v\n", h.Stats())
	}

	return printJson(m.w, result)
}
