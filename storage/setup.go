// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bianyuanop/cousin-store-contract/fault"
	"github.com/bitmark-inc/logger"
)

// Pools - the contract's storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	State         *PoolHandle `prefix:"N"`
	CommodityIds  *PoolHandle `prefix:"S"`
	CommodityInfo *PoolHandle `prefix:"C"`
	Orders        *PoolHandle `prefix:"O"`
	OrderInfo     *PoolHandle `prefix:"I"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Database - an open contract database
type Database struct {
	sync.Mutex
	log    *logger.L
	db     *leveldb.DB
	access Access
	trx    Transaction

	Pool Pools
}

// Open - open up a database file, creating it if read/write
func Open(name string, readOnly bool) (*Database, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}
	return setup(db, name, readOnly)
}

// OpenMemory - a database that lives only as long as the process
func OpenMemory() (*Database, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(db, "memory", ReadWrite)
}

func setup(db *leveldb.DB, name string, readOnly bool) (*Database, error) {

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	log := logger.New("storage")

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fault.ErrDatabaseVersion
	}

	if 0 == version {
		if readOnly {
			log.Criticalf("database: %q has no version", name)
			return nil, fault.ErrDatabaseVersion
		}

		// database was empty so tag as current version
		if err := putVersion(db, currentDBVersion); nil != err {
			return nil, err
		}
	} else if version < currentDBVersion {
		log.Criticalf("database version: %d < current version: %d", version, currentDBVersion)
		return nil, fault.ErrDatabaseVersion
	}

	access := newDA(db, new(leveldb.Batch), newCache())

	d := &Database{
		log:    log,
		db:     db,
		access: access,
		trx:    newTransaction(access),
	}

	if err := d.Pool.bind(access); nil != err {
		return nil, err
	}

	log.Infof("opened: %q  version: 0x%x  read only: %t", name, currentDBVersion, readOnly)

	ok = true // prevent db close
	return d, nil
}

// attach a handle to every pool field according to its prefix tag
func (pools *Pools) bind(access Access) error {

	// this will be a struct type
	poolType := reflect.TypeOf(*pools)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(pools).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo.Name, prefixTag)
		}

		prefix := prefixTag[0]
		if 0 == prefix {
			return fault.ErrInvalidPoolPrefix
		}
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: access,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Close - close the database connection
func (d *Database) Close() {
	d.Lock()
	defer d.Unlock()

	if nil == d.db {
		return
	}
	if d.access.InUse() {
		d.log.Warn("closing with an open transaction, pending writes dropped")
		d.access.Abort()
	}
	d.db.Close()
	d.db = nil
	d.log.Info("closed")
}

// Begin - start the single write transaction
func (d *Database) Begin() (Transaction, error) {
	err := d.access.Begin()
	if nil != err {
		return nil, err
	}
	return d.trx, nil
}

// PoolTags - prefix tag to pool field name, in declaration order
func PoolTags() [][2]string {
	poolType := reflect.TypeOf(Pools{})
	tags := make([][2]string, 0, poolType.NumField())
	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)
		tags = append(tags, [2]string{fieldInfo.Tag.Get("prefix"), fieldInfo.Name})
	}
	return tags
}

// ByTag - the pool with the given prefix tag
func (pools *Pools) ByTag(tag string) (*PoolHandle, bool) {
	poolType := reflect.TypeOf(*pools)
	poolValue := reflect.ValueOf(*pools)
	for i := 0; i < poolType.NumField(); i += 1 {
		if tag == poolType.Field(i).Tag.Get("prefix") {
			p, ok := poolValue.Field(i).Interface().(*PoolHandle)
			return p, ok && nil != p
		}
	}
	return nil, false
}

// return the stored version, 0 for an empty database
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
