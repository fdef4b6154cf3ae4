// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bianyuanop/cousin-store-contract/recordstore"
	"github.com/bianyuanop/cousin-store-contract/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// colours
const (
	keyColour1 = "\033[1;36m"
	keyColour2 = "\033[1;31m"
	valColour1 = "\033[1;33m"
	valColour2 = "\033[1;34m"
	endColour  = "\033[0m"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "list", HasArg: getoptions.NO_ARGUMENT, Short: 'l'},
		{Long: "verify", HasArg: getoptions.NO_ARGUMENT, Short: 'y'},
		{Long: "early", HasArg: getoptions.NO_ARGUMENT, Short: 'e'},
		{Long: "colour", HasArg: getoptions.NO_ARGUMENT, Short: 'g'},
		{Long: "ascii", HasArg: getoptions.NO_ARGUMENT, Short: 'a'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["list"]) > 0 {
		// print all available tags
		fmt.Printf(" tags:\n")
		for _, tag := range storage.PoolTags() {
			fmt.Printf("       %s → %s\n", tag[0], tag[1])
		}
		return
	}

	verify := len(options["verify"]) > 0

	if len(options["help"]) > 0 || (0 == len(arguments) && !verify) || 1 != len(options["file"]) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--count=N] [--early] [--colour] [--ascii] --file=FILE (tag [key-prefix] | --verify) [--list]", program)
	}

	// stop if prefix no longer matches
	earlyStop := len(options["early"]) > 0

	colour := len(options["colour"]) > 0
	ascii := len(options["ascii"]) > 0
	verbose := len(options["verbose"]) > 0

	count := 10
	if len(options["count"]) > 0 {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert count error: %s", program, err)
		}
		if count < 1 {
			exitwithstatus.Message("%s: invalid count: %d", program, count)
		}
	}

	filename := options["file"][0]

	logging := logger.Configuration{
		Directory: ".",
		File:      "cousin-dumpdb.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// start of main processing
	db, err := storage.Open(filename, storage.ReadOnly)
	if nil != err {
		exitwithstatus.Message("%s: storage setup failed with error: %s", program, err)
	}
	defer db.Close()

	if verify {
		store, err := recordstore.Load(db, recordstore.HandlesFor(db))
		if nil != err {
			exitwithstatus.Message("%s: load store error: %s", program, err)
		}
		fmt.Printf("owner:       %s\n", store.Owner())
		fmt.Printf("commodities: %d\n", store.CommodityCount())
		fmt.Printf("orders:      %d\n", store.OrderCount())
		problems := store.Verify()
		for _, p := range problems {
			fmt.Printf("problem: %s\n", p)
		}
		if 0 != len(problems) {
			exitwithstatus.Message("%s: %d problems", program, len(problems))
		}
		return
	}

	tag := arguments[0]
	if verbose {
		fmt.Printf("read tag: %s from file: %q\n", tag, filename)
	}

	prefix := []byte(nil)
	if len(arguments) > 1 {
		prefix, err = hex.DecodeString(arguments[1])
		if nil != err {
			exitwithstatus.Message("%s: convert prefix error: %s", program, err)
		}
	}

	p, ok := db.Pool.ByTag(tag)
	if !ok {
		exitwithstatus.Message("%s: no pool corresponding to: %q", program, tag)
	}

	cursor := p.NewFetchCursor()
	if len(prefix) > 0 {
		cursor.Seek(prefix)
	}

	data, err := cursor.Fetch(count)
	if nil != err {
		exitwithstatus.Message("%s: error on Fetch: %s", program, err)
	}

	ck1 := ""
	ck2 := ""
	cv1 := ""
	cv2 := ""
	ce := ""
	if colour {
		ck1 = keyColour1
		ck2 = keyColour2
		cv1 = valColour1
		cv2 = valColour2
		ce = endColour
	}

	l := len(prefix)
print_loop:
	for i, e := range data {
		if earlyStop && len(e.Key) >= l && !bytes.Equal(prefix, e.Key[:l]) {
			fmt.Printf("*** early stop\n")
			break print_loop
		}

		fmt.Printf("%d: %sKey: %s%x%s\n", i, ck1, ck2, e.Key, ce)
		if ascii {
			prefix := fmt.Sprintf("%d: %sVal: %s", i, cv1, cv2)
			hexDump(os.Stdout, prefix, ce, e.Value)
		} else {
			fmt.Printf("%d: %sVal: %s%x%s\n", i, cv1, cv2, e.Value, ce)
		}
	}
}
