// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bianyuanop/cousin-store-contract/fault"
)

// Access - batched access to one database
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
}

// AccessData - a leveldb handle, the pending batch and its read cache
type AccessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, trx *leveldb.Batch, cache Cache) Access {
	return &AccessData{
		inUse: false,
		db:    db,
		batch: trx,
		cache: cache,
	}
}

// Begin - start collecting writes, only one batch may be open
func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.ErrTransactionInUse
	}

	d.inUse = true
	return nil
}

// Put - queue a write, visible to Get and Has at once
func (d *AccessData) Put(key []byte, value []byte) {
	d.cache.Set(string(key), value)
	d.batch.Put(key, value)
}

// Commit - write the whole batch atomically then release it
//
// the batch is discarded even if the write fails
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.ErrTransactionNotInUse
	}

	err := d.db.Write(d.batch, nil)
	d.reset()
	return err
}

// Get - pending value first, then the database
func (d *AccessData) Get(key []byte) ([]byte, error) {
	if val, found := d.cache.Get(string(key)); found {
		return val, nil
	}
	return d.db.Get(key, nil)
}

// Iterator - committed data only
func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

// Has - pending value first, then the database
func (d *AccessData) Has(key []byte) (bool, error) {
	if _, found := d.cache.Get(string(key)); found {
		return true, nil
	}
	return d.db.Has(key, nil)
}

// InUse - true between Begin and Commit/Abort
func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}

// Abort - drop every pending write
func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()
	d.reset()
}

func (d *AccessData) reset() {
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}
