// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
)

const bytesPerLine = 32

// dump hex data with an ascii column
func hexDump(w io.Writer, prefix string, suffix string, data []byte) {
	address := 0
	for i := 0; i < len(data); i += bytesPerLine {
		fmt.Fprintf(w, "%s%04x  ", prefix, address)
		address += bytesPerLine
		for j := 0; j < bytesPerLine; j += 1 {
			if bytesPerLine/2 == j {
				fmt.Fprintf(w, " ")
			}
			if i+j < len(data) {
				fmt.Fprintf(w, "%02x ", data[i+j])
			} else {
				fmt.Fprintf(w, "   ")
			}
		}
		fmt.Fprintf(w, " |")
	ascii_loop:
		for j := 0; j < bytesPerLine; j += 1 {
			if i+j >= len(data) {
				break ascii_loop
			}
			c := data[i+j]
			if c < 32 || c >= 127 {
				c = '.'
			}
			fmt.Fprintf(w, "%c", c)
		}
		fmt.Fprintf(w, "|%s\n", suffix)
	}
}
