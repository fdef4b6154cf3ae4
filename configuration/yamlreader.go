// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// decode a YAML document over the defaults already in config
func parseYAML(fileName string, config interface{}) error {
	f, err := os.Open(fileName)
	if nil != err {
		return err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	err = decoder.Decode(config)
	if io.EOF == err {
		return nil // empty document keeps the defaults
	}
	return err
}
