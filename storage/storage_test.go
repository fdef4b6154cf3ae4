// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bianyuanop/cousin-store-contract/fault"
	"github.com/bianyuanop/cousin-store-contract/storage"
)

func TestPoolsAreBound(t *testing.T) {
	db := setupMemory(t)
	defer db.Close()

	for _, tag := range storage.PoolTags() {
		p, ok := db.Pool.ByTag(tag[0])
		assert.True(t, ok, "pool: %s not bound", tag[1])
		assert.NotNil(t, p, "pool: %s is nil", tag[1])
	}

	_, ok := db.Pool.ByTag("?")
	assert.False(t, ok, "unknown tag found a pool")
}

func TestPutOutsideTransactionPanics(t *testing.T) {
	db := setupMemory(t)
	defer db.Close()

	assert.Panics(t, func() {
		db.Pool.CommodityInfo.Put([]byte("key"), []byte("value"))
	}, "put without begin")
}

func TestTransactionReadsOwnWrites(t *testing.T) {
	db := setupMemory(t)
	defer db.Close()

	trx, err := db.Begin()
	assert.Nil(t, err, "begin")

	trx.Put(db.Pool.CommodityInfo, []byte("key"), []byte("value"))
	trx.PutN(db.Pool.CommodityInfo, []byte("count"), 42)
	trx.Put(db.Pool.CommodityInfo, []byte("empty"), []byte{})

	assert.Equal(t, []byte("value"), trx.Get(db.Pool.CommodityInfo, []byte("key")), "uncommitted value")
	n, found := trx.GetN(db.Pool.CommodityInfo, []byte("count"))
	assert.True(t, found, "uncommitted count")
	assert.Equal(t, uint64(42), n, "uncommitted count value")
	assert.True(t, trx.Has(db.Pool.CommodityInfo, []byte("empty")), "uncommitted empty value")

	assert.Nil(t, trx.Commit(), "commit")

	assert.Equal(t, []byte("value"), db.Pool.CommodityInfo.Get([]byte("key")), "committed value")
	empty := db.Pool.CommodityInfo.Get([]byte("empty"))
	assert.NotNil(t, empty, "committed empty value must not read as absent")
	assert.Equal(t, 0, len(empty), "committed empty value")
	assert.Nil(t, db.Pool.CommodityInfo.Get([]byte("missing")), "absent key")
	assert.False(t, db.Pool.CommodityInfo.Has([]byte("missing")), "absent key")
}

func TestAbortDiscardsWrites(t *testing.T) {
	db := setupMemory(t)
	defer db.Close()

	trx, _ := db.Begin()
	trx.Put(db.Pool.CommodityInfo, []byte("key"), []byte("value"))
	trx.Abort()

	assert.False(t, db.Pool.CommodityInfo.Has([]byte("key")), "aborted write is visible")

	// a new transaction can start after abort
	trx, err := db.Begin()
	assert.Nil(t, err, "begin after abort")
	trx.Abort()
}

func TestSingleTransaction(t *testing.T) {
	db := setupMemory(t)
	defer db.Close()

	trx, err := db.Begin()
	assert.Nil(t, err, "first begin")

	_, err = db.Begin()
	assert.Equal(t, fault.ErrTransactionInUse, err, "second begin")

	assert.Nil(t, trx.Commit(), "commit")
	assert.Equal(t, fault.ErrTransactionNotInUse, trx.Commit(), "second commit")
}

func TestPoolsDoNotOverlap(t *testing.T) {
	db := setupMemory(t)
	defer db.Close()

	trx, _ := db.Begin()
	trx.Put(db.Pool.CommodityInfo, []byte{0, 0, 0, 1}, []byte("commodity"))
	trx.Put(db.Pool.OrderInfo, []byte{0, 0, 0, 1}, []byte("order"))
	assert.Nil(t, trx.Commit(), "commit")

	assert.Equal(t, []byte("commodity"), db.Pool.CommodityInfo.Get([]byte{0, 0, 0, 1}))
	assert.Equal(t, []byte("order"), db.Pool.OrderInfo.Get([]byte{0, 0, 0, 1}))
	assert.False(t, db.Pool.Orders.Has([]byte{0, 0, 0, 1}), "write leaked into another pool")
}

func TestFetchCursor(t *testing.T) {
	db := setupMemory(t)
	defer db.Close()
	populate(t, db)

	cursor := db.Pool.CommodityInfo.NewFetchCursor()

	first, err := cursor.Fetch(3)
	assert.Nil(t, err, "first fetch")
	assert.Equal(t, expectedElements[:3], first, "first page")

	rest, err := cursor.Fetch(10)
	assert.Nil(t, err, "second fetch")
	assert.Equal(t, expectedElements[3:], rest, "second page")

	none, err := cursor.Fetch(10)
	assert.Nil(t, err, "third fetch")
	assert.Equal(t, 0, len(none), "past the end")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")

	var nilCursor *storage.FetchCursor
	_, err = nilCursor.Fetch(1)
	assert.Equal(t, fault.ErrInvalidCursor, err, "nil cursor")
}

func TestFetchCursorSeek(t *testing.T) {
	db := setupMemory(t)
	defer db.Close()
	populate(t, db)

	data, err := db.Pool.CommodityInfo.NewFetchCursor().Seek([]byte("key-s")).Fetch(2)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, expectedElements[3:5], data, "seek position")
}

func TestLastElement(t *testing.T) {
	db := setupMemory(t)
	defer db.Close()

	_, found := db.Pool.CommodityInfo.LastElement()
	assert.False(t, found, "empty pool")

	populate(t, db)

	last, found := db.Pool.CommodityInfo.LastElement()
	assert.True(t, found, "populated pool")
	assert.Equal(t, expectedElements[len(expectedElements)-1], last, "last element")
}

func TestReopenFile(t *testing.T) {
	removeDatabase()
	defer removeDatabase()

	_, err := storage.Open(databaseFileName, storage.ReadOnly)
	assert.NotNil(t, err, "read only open of missing database")

	db, err := storage.Open(databaseFileName, storage.ReadWrite)
	assert.Nil(t, err, "create")
	populate(t, db)
	db.Close()
	db.Close() // second close is harmless

	db, err = storage.Open(databaseFileName, storage.ReadOnly)
	assert.Nil(t, err, "read only reopen")
	defer db.Close()

	assert.Equal(t, []byte("data-two"), db.Pool.CommodityInfo.Get([]byte("key-two")), "persisted value")
}
