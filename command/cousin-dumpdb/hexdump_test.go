// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexDump(t *testing.T) {
	buffer := &bytes.Buffer{}
	hexDump(buffer, "> ", " <", []byte("tea A\x00"))

	expected := "> 0000  74 65 61 20 41 00 " + strings.Repeat("   ", 10) + " " + strings.Repeat("   ", 16) + " |tea A.| <\n"
	assert.Equal(t, expected, buffer.String(), "single line")

	buffer.Reset()
	hexDump(buffer, "", "", make([]byte, 40))
	lines := strings.Split(strings.TrimSuffix(buffer.String(), "\n"), "\n")
	assert.Equal(t, 2, len(lines), "line count")
	assert.True(t, strings.HasPrefix(lines[1], "0020  "), "second address: %q", lines[1])

	buffer.Reset()
	hexDump(buffer, "", "", nil)
	assert.Equal(t, "", buffer.String(), "empty")
}
