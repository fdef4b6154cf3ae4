// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bianyuanop/cousin-store-contract/account"
	"github.com/bianyuanop/cousin-store-contract/counter"
	"github.com/bianyuanop/cousin-store-contract/fault"
	"github.com/bianyuanop/cousin-store-contract/recordstore"
	"github.com/bianyuanop/cousin-store-contract/storage"
)

// Configuration - where the store database lives
type Configuration struct {
	Database string // full path of the leveldb directory
	ReadOnly bool   // open an existing database for queries only
	Memory   bool   // ignore Database and keep everything in memory
}

// Host - the single writer in front of a store
type Host struct {
	// 64 bit atomic fields first for alignment
	executed counter.Counter
	rejected counter.Counter

	sync.Mutex
	log      *logger.L
	readOnly bool
	db       *storage.Database
	store    *recordstore.Store
}

// Stats - message counts since open
type Stats struct {
	Executed uint64 `json:"executed"`
	Rejected uint64 `json:"rejected"`
}

// Deploy - create a new store owned by the deploying account
func Deploy(configuration Configuration, owner *account.Account) (*Host, error) {
	if configuration.ReadOnly {
		return nil, fault.ErrReadOnly
	}
	return start(configuration, func(db *storage.Database) (*recordstore.Store, error) {
		return recordstore.Initialise(db, recordstore.HandlesFor(db), owner)
	})
}

// Open - attach to a previously deployed store
func Open(configuration Configuration) (*Host, error) {
	return start(configuration, func(db *storage.Database) (*recordstore.Store, error) {
		return recordstore.Load(db, recordstore.HandlesFor(db))
	})
}

func start(configuration Configuration, create func(*storage.Database) (*recordstore.Store, error)) (*Host, error) {
	log := logger.New("host")

	var db *storage.Database
	var err error
	if configuration.Memory {
		db, err = storage.OpenMemory()
	} else {
		db, err = storage.Open(configuration.Database, configuration.ReadOnly)
	}
	if nil != err {
		log.Errorf("open database: %q  error: %s", configuration.Database, err)
		return nil, err
	}

	store, err := create(db)
	if nil != err {
		db.Close()
		return nil, err
	}

	log.Infof("store owner: %s", store.Owner())

	return &Host{
		log:      log,
		readOnly: configuration.ReadOnly,
		db:       db,
		store:    store,
	}, nil
}

// Close - release the database
func (h *Host) Close() {
	h.Lock()
	defer h.Unlock()

	if nil == h.db {
		return
	}
	h.db.Close()
	h.db = nil
	h.store = nil
	h.log.Infof("closed  executed: %d  rejected: %d", h.executed.Uint64(), h.rejected.Uint64())
	h.log.Flush()
}

// Owner - the account that deployed the store
func (h *Host) Owner() *account.Account {
	h.Lock()
	defer h.Unlock()

	if nil == h.store {
		return nil
	}
	return h.store.Owner()
}

// Stats - counts of executed and rejected messages
func (h *Host) Stats() Stats {
	return Stats{
		Executed: h.executed.Uint64(),
		Rejected: h.rejected.Uint64(),
	}
}

// Execute - run one message to completion
//
// a non-Ok status is a normal result; err is only set for a message
// that could not run at all
func (h *Host) Execute(message Message) (Result, error) {
	h.Lock()
	defer h.Unlock()

	result := Result{
		Method: message.Method,
	}

	if nil == h.store {
		return result, fault.ErrNotInitialised
	}

	h.log.Debugf("execute: %s  caller: %s  id: %d", message.Method, message.Caller, message.Id)

	if h.readOnly && isMutation(message.Method) {
		h.log.Warnf("%s: refused on read only database", message.Method)
		return result, fault.ErrReadOnly
	}

	var err error
	s := h.store
	switch message.Method {
	case AddCommodity:
		result.Status, err = s.AddCommodity(message.Caller, message.Description)
	case AlterCommodity:
		result.Status, err = s.AlterCommodity(message.Caller, message.Id, message.Description)
	case GetCommodity:
		result.Value = s.GetCommodity(message.Id)
	case CommodityCount:
		result.Number = s.CommodityCount()
	case AddOrder:
		result.Number, err = s.AddOrder(message.Caller, message.Description)
	case GetOrder:
		result.Value = s.GetOrder(message.Caller, message.Id)
	case OrderCount:
		result.Number = s.OrderCount()
	case AlterOrder:
		result.Status, err = s.AlterOrder(message.Caller, message.Id, message.Description)
	case Verify:
		result.Problems = s.Verify()
	default:
		h.log.Warnf("unknown method: %q", message.Method)
		return result, fault.ErrUnknownMethod
	}

	if nil != err {
		h.log.Errorf("%s: error: %s", message.Method, err)
		return result, err
	}

	h.executed.Increment()
	if recordstore.Ok != result.Status {
		h.rejected.Increment()
		h.log.Infof("%s: rejected: %s", message.Method, result.Status)
	}
	return result, nil
}

func isMutation(method string) bool {
	switch method {
	case AddCommodity, AlterCommodity, AddOrder, AlterOrder:
		return true
	}
	return false
}
