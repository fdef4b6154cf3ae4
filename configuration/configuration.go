// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/bianyuanop/cousin-store-contract/fault"
)

// ParseConfigurationFile - read a configuration file and assign the
// results to a configuration structure
//
// the parser is chosen by file extension: .lua, .conf (Lua) or .yaml, .yml
func ParseConfigurationFile(fileName string, config interface{}) error {

	// since interface{} is untyped, have to verify type compatibility at run-time
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fault.ErrInvalidStructPointer
	}
	if rv.Elem().Kind() != reflect.Struct {
		return fault.ErrInvalidStructPointer
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".lua", ".conf":
		return parseLua(fileName, config)
	case ".yaml", ".yml":
		return parseYAML(fileName, config)
	default:
		return fault.ErrUnsupportedFileType
	}
}
