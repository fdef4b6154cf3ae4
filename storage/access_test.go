// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bianyuanop/cousin-store-contract/fault"
	"github.com/bianyuanop/cousin-store-contract/storage"
	"github.com/bianyuanop/cousin-store-contract/storage/mocks"
)

const (
	defaultKey = "key"
)

var (
	defaultValue = []byte{'a'}
)

func newMemoryDB(t *testing.T) *leveldb.DB {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		t.Fatalf("leveldb open error: %s", err)
	}
	return db
}

func newMockCache(t *testing.T) (*mocks.MockCache, *gomock.Controller) {
	ctl := gomock.NewController(t)
	return mocks.NewMockCache(ctl), ctl
}

func setupDummyMockCache(t *testing.T) *mocks.MockCache {
	mockCache, ctl := newMockCache(t)
	defer ctl.Finish()

	mockCache.EXPECT().Get(gomock.Any()).Return(nil, false).AnyTimes()
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any()).AnyTimes()
	mockCache.EXPECT().Clear().AnyTimes()

	return mockCache
}

func TestBeginShouldErrorWhenAlreadyInTransaction(t *testing.T) {
	db := newMemoryDB(t)
	defer db.Close()

	da := storage.NewDA(db, new(leveldb.Batch), setupDummyMockCache(t))

	err := da.Begin()
	assert.Nil(t, err, "first time Begin should not error")

	err = da.Begin()
	assert.Equal(t, fault.ErrTransactionInUse, err, "second time Begin should return error")
}

func TestCommitReleasesInUse(t *testing.T) {
	db := newMemoryDB(t)
	defer db.Close()

	da := storage.NewDA(db, new(leveldb.Batch), setupDummyMockCache(t))

	_ = da.Begin()
	assert.True(t, da.InUse(), "begin did not set in use")

	err := da.Commit()
	assert.Nil(t, err, "commit error")
	assert.False(t, da.InUse(), "commit did not release in use")

	err = da.Commit()
	assert.Equal(t, fault.ErrTransactionNotInUse, err, "commit without begin")
}

func TestPutUpdatesCache(t *testing.T) {
	db := newMemoryDB(t)
	defer db.Close()

	mockCache, ctl := newMockCache(t)
	defer ctl.Finish()

	mockCache.EXPECT().Set(defaultKey, defaultValue).Times(1)

	da := storage.NewDA(db, new(leveldb.Batch), mockCache)
	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)

	found, _ := db.Has([]byte(defaultKey), nil)
	assert.False(t, found, "put reached the database before commit")
}

func TestGetPrefersCache(t *testing.T) {
	db := newMemoryDB(t)
	defer db.Close()

	_ = db.Put([]byte(defaultKey), []byte("committed"), nil)

	mockCache, ctl := newMockCache(t)
	defer ctl.Finish()

	mockCache.EXPECT().Get(defaultKey).Return(defaultValue, true).Times(2)

	da := storage.NewDA(db, new(leveldb.Batch), mockCache)

	value, err := da.Get([]byte(defaultKey))
	assert.Nil(t, err, "get error")
	assert.Equal(t, defaultValue, value, "cached value not returned")

	found, err := da.Has([]byte(defaultKey))
	assert.Nil(t, err, "has error")
	assert.True(t, found, "cached key not found")
}

func TestGetFallsBackToDatabase(t *testing.T) {
	db := newMemoryDB(t)
	defer db.Close()

	_ = db.Put([]byte(defaultKey), []byte("committed"), nil)

	da := storage.NewDA(db, new(leveldb.Batch), setupDummyMockCache(t))

	value, err := da.Get([]byte(defaultKey))
	assert.Nil(t, err, "get error")
	assert.Equal(t, []byte("committed"), value, "database value not returned")

	_, err = da.Get([]byte("missing"))
	assert.Equal(t, leveldb.ErrNotFound, err, "missing key")

	found, err := da.Has([]byte("missing"))
	assert.Nil(t, err, "has error")
	assert.False(t, found, "missing key found")
}

func TestCommitWritesBatchAndClearsCache(t *testing.T) {
	db := newMemoryDB(t)
	defer db.Close()

	mockCache, ctl := newMockCache(t)
	defer ctl.Finish()

	mockCache.EXPECT().Set(defaultKey, defaultValue).Times(1)
	mockCache.EXPECT().Clear().Times(2)

	da := storage.NewDA(db, new(leveldb.Batch), mockCache)
	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)

	err := da.Commit()
	assert.Nil(t, err, "commit error")

	value, err := db.Get([]byte(defaultKey), nil)
	assert.Nil(t, err, "committed value not in database")
	assert.Equal(t, defaultValue, value, "wrong committed value")

	// the batch is empty again, a second commit writes nothing new
	_ = db.Delete([]byte(defaultKey), nil)
	_ = da.Begin()
	assert.Nil(t, da.Commit(), "empty commit error")
	found, _ := db.Has([]byte(defaultKey), nil)
	assert.False(t, found, "batch not reset after commit")
}

func TestAbortDropsBatchAndClearsCache(t *testing.T) {
	db := newMemoryDB(t)
	defer db.Close()

	mockCache, ctl := newMockCache(t)
	defer ctl.Finish()

	mockCache.EXPECT().Set(defaultKey, defaultValue).Times(1)
	mockCache.EXPECT().Clear().Times(2)

	da := storage.NewDA(db, new(leveldb.Batch), mockCache)
	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)
	da.Abort()

	assert.False(t, da.InUse(), "abort did not release in use")

	// the batch is empty again, committing now writes nothing
	_ = da.Begin()
	assert.Nil(t, da.Commit(), "commit after abort")

	found, _ := db.Has([]byte(defaultKey), nil)
	assert.False(t, found, "aborted value reached the database")
}
