// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bianyuanop/cousin-store-contract/storage"
)

// test database and log files
const (
	databaseFileName = "test.leveldb"
	testingDirName   = "testing"
)

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// remove all files created by test
func removeFiles() {
	os.RemoveAll(testingDirName)
	removeDatabase()
}

func removeDatabase() {
	os.RemoveAll(databaseFileName)
}

// a fresh in-memory database
func setupMemory(t *testing.T) *storage.Database {
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return db
}

// a string data item
type stringElement struct {
	key   string
	value string
}

// make an element array
func makeElements(input []stringElement) []storage.Element {
	output := make([]storage.Element, 0, len(input))
	for _, e := range input {
		output = append(output, storage.Element{
			Key:   []byte(e.key),
			Value: []byte(e.value),
		})
	}
	return output
}

// written in this order
var testElements = []stringElement{
	{"key-one", "data-one"},
	{"key-two", "data-two"},
	{"key-three", "data-three"},
	{"key-four", "data-four"},
	{"key-five", "data-five"},
	{"key-six", "data-six"},
	{"key-seven", "data-seven"},
}

// this is the expected order
var expectedElements = makeElements([]stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
})

// fill the commodity info pool in a single transaction
func populate(t *testing.T, db *storage.Database) {
	trx, err := db.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	for _, e := range testElements {
		trx.Put(db.Pool.CommodityInfo, []byte(e.key), []byte(e.value))
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}
