// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package recordstore

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/logger"

	"github.com/bianyuanop/cousin-store-contract/account"
	"github.com/bianyuanop/cousin-store-contract/fault"
	"github.com/bianyuanop/cousin-store-contract/storage"
)

// keys in the state pool
var (
	ownerKey          = []byte("owner")
	commodityCountKey = []byte("commodity")
	orderCountKey     = []byte("order")
)

const idByteSize = 4

// Backend - source of write transactions
type Backend interface {
	Begin() (storage.Transaction, error)
}

// Handles - the pools holding the store state
type Handles struct {
	State         storage.Handle
	CommodityIds  storage.Handle
	CommodityInfo storage.Handle
	Orders        storage.Handle
	OrderInfo     storage.Handle
}

// Store - an open record store
//
// calls must be serialised by the caller
type Store struct {
	log     *logger.L
	backend Backend
	pools   Handles
	owner   *account.Account
}

// HandlesFor - the store pools of a database
func HandlesFor(db *storage.Database) Handles {
	return Handles{
		State:         db.Pool.State,
		CommodityIds:  db.Pool.CommodityIds,
		CommodityInfo: db.Pool.CommodityInfo,
		Orders:        db.Pool.Orders,
		OrderInfo:     db.Pool.OrderInfo,
	}
}

// Initialise - construct a new store owned by the constructing account
//
// counters start at zero and all collections are empty
func Initialise(backend Backend, pools Handles, owner *account.Account) (*Store, error) {
	if nil == owner {
		return nil, fault.ErrMissingCaller
	}

	log := logger.New("store")

	trx, err := backend.Begin()
	if nil != err {
		return nil, err
	}

	if trx.Has(pools.State, ownerKey) {
		trx.Abort()
		log.Error("store already has an owner")
		return nil, fault.ErrAlreadyInitialised
	}

	trx.Put(pools.State, ownerKey, owner.Bytes())
	trx.PutN(pools.State, commodityCountKey, 0)
	trx.PutN(pools.State, orderCountKey, 0)

	if err := trx.Commit(); nil != err {
		log.Criticalf("initialise commit error: %s", err)
		return nil, err
	}

	log.Infof("initialised with owner: %s", owner)

	return &Store{
		log:     log,
		backend: backend,
		pools:   pools,
		owner:   owner,
	}, nil
}

// Load - reopen a store created by Initialise
func Load(backend Backend, pools Handles) (*Store, error) {
	log := logger.New("store")

	ownerBytes := pools.State.Get(ownerKey)
	if nil == ownerBytes {
		return nil, fault.ErrNotInitialised
	}

	owner, err := account.FromBytes(ownerBytes)
	if nil != err {
		log.Criticalf("stored owner: %x  error: %s", ownerBytes, err)
		return nil, err
	}

	log.Debugf("loaded with owner: %s", owner)

	return &Store{
		log:     log,
		backend: backend,
		pools:   pools,
		owner:   owner,
	}, nil
}

// Owner - the account that constructed the store
func (s *Store) Owner() *account.Account {
	return s.owner
}

// AddCommodity - append a commodity to the catalog, owner only
func (s *Store) AddCommodity(caller *account.Account, description string) (Status, error) {
	if !s.owner.Equal(caller) {
		s.log.Debugf("add commodity: not owner: %s", caller)
		return NotOwner, nil
	}

	trx, err := s.backend.Begin()
	if nil != err {
		return Ok, err
	}

	id, err := nextId(trx, s.pools.State, commodityCountKey)
	if nil != err {
		trx.Abort()
		return Ok, err
	}

	key := idBytes(id)
	trx.Put(s.pools.CommodityIds, key, key)
	trx.Put(s.pools.CommodityInfo, key, []byte(description))
	trx.PutN(s.pools.State, commodityCountKey, uint64(id)+1)

	if err := trx.Commit(); nil != err {
		s.log.Criticalf("add commodity: commit error: %s", err)
		return Ok, err
	}
	return Ok, nil
}

// AlterCommodity - replace the description of a commodity, owner only
//
// an id above the commodity count is invalid; an id equal to it passes
// that check and is then reported as a missing record
func (s *Store) AlterCommodity(caller *account.Account, id uint32, description string) (Status, error) {
	if !s.owner.Equal(caller) {
		s.log.Debugf("alter commodity: not owner: %s", caller)
		return NotOwner, nil
	}

	trx, err := s.backend.Begin()
	if nil != err {
		return Ok, err
	}

	count, _ := trx.GetN(s.pools.State, commodityCountKey)
	if uint64(id) > count {
		trx.Abort()
		return InvalidId, nil
	}

	key := idBytes(id)
	if !trx.Has(s.pools.CommodityInfo, key) {
		trx.Abort()
		return RecordMissing, nil
	}

	trx.Put(s.pools.CommodityInfo, key, []byte(description))

	if err := trx.Commit(); nil != err {
		s.log.Criticalf("alter commodity: commit error: %s", err)
		return Ok, err
	}
	return Ok, nil
}

// GetCommodity - the description of a commodity, "" if absent
func (s *Store) GetCommodity(id uint32) string {
	return string(s.pools.CommodityInfo.Get(idBytes(id)))
}

// CommodityCount - number of commodities ever added
func (s *Store) CommodityCount() uint32 {
	return count(s.pools.State, commodityCountKey)
}

// AddOrder - record an order for the caller and return its id
func (s *Store) AddOrder(caller *account.Account, description string) (uint32, error) {
	if nil == caller {
		return 0, fault.ErrMissingCaller
	}

	trx, err := s.backend.Begin()
	if nil != err {
		return 0, err
	}

	id, err := nextId(trx, s.pools.State, orderCountKey)
	if nil != err {
		trx.Abort()
		return 0, err
	}

	key := idBytes(id)
	trx.Put(s.pools.Orders, key, caller.Bytes())
	trx.Put(s.pools.OrderInfo, key, []byte(description))
	trx.PutN(s.pools.State, orderCountKey, uint64(id)+1)

	if err := trx.Commit(); nil != err {
		s.log.Criticalf("add order: commit error: %s", err)
		return 0, err
	}
	return id, nil
}

// GetOrder - the description of an order as seen by the caller
//
// the owner sees every order, a client sees only its own
func (s *Store) GetOrder(caller *account.Account, id uint32) string {
	key := idBytes(id)

	if s.owner.Equal(caller) {
		return string(s.pools.OrderInfo.Get(key))
	}

	client := s.client(key)
	if nil == client || !client.Equal(caller) {
		return ""
	}
	return string(s.pools.OrderInfo.Get(key))
}

// OrderCount - number of orders ever added
func (s *Store) OrderCount() uint32 {
	return count(s.pools.State, orderCountKey)
}

// AlterOrder - replace the description of an order
//
// only the client that added the order may alter it, the owner has no
// override
func (s *Store) AlterOrder(caller *account.Account, id uint32, description string) (Status, error) {
	trx, err := s.backend.Begin()
	if nil != err {
		return Ok, err
	}

	key := idBytes(id)
	clientBytes := trx.Get(s.pools.Orders, key)
	if nil == clientBytes {
		trx.Abort()
		return InvalidId, nil
	}

	client, err := account.FromBytes(clientBytes)
	if nil != err {
		trx.Abort()
		s.log.Criticalf("alter order: %d  client: %x  error: %s", id, clientBytes, err)
		return Ok, err
	}

	s.log.Debugf("alter order: %d  client: %s  caller: %s", id, client, caller)

	if !client.Equal(caller) {
		trx.Abort()
		return NotAuthorized, nil
	}

	if !trx.Has(s.pools.OrderInfo, key) {
		trx.Abort()
		return RecordMissing, nil
	}

	trx.Put(s.pools.OrderInfo, key, []byte(description))

	if err := trx.Commit(); nil != err {
		s.log.Criticalf("alter order: commit error: %s", err)
		return Ok, err
	}
	return Ok, nil
}

// recorded client of an order, nil if absent or unreadable
func (s *Store) client(key []byte) *account.Account {
	clientBytes := s.pools.Orders.Get(key)
	if nil == clientBytes {
		return nil
	}
	client, err := account.FromBytes(clientBytes)
	if nil != err {
		s.log.Errorf("order: %x  client: %x  error: %s", key, clientBytes, err)
		return nil
	}
	return client
}

// the id the next record will receive
func nextId(trx storage.Transaction, state storage.Handle, key []byte) (uint32, error) {
	n, _ := trx.GetN(state, key)
	if n >= math.MaxUint32 {
		return 0, fault.ErrCounterOverflow
	}
	return uint32(n), nil
}

func count(state storage.Handle, key []byte) uint32 {
	n, _ := state.GetN(key)
	return uint32(n)
}

func idBytes(id uint32) []byte {
	buffer := make([]byte, idByteSize)
	binary.BigEndian.PutUint32(buffer, id)
	return buffer
}
