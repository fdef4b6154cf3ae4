// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - one atomic group of pool writes
//
// reads through a transaction see its own uncommitted writes
type Transaction interface {
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
	Commit() error
	Abort()
}

type transaction struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &transaction{
		access: access,
	}
}

func (t *transaction) Put(handle Handle, key []byte, value []byte) {
	handle.Put(key, value)
}

func (t *transaction) PutN(handle Handle, key []byte, value uint64) {
	handle.PutN(key, value)
}

func (t *transaction) Get(handle Handle, key []byte) []byte {
	return handle.Get(key)
}

func (t *transaction) GetN(handle Handle, key []byte) (uint64, bool) {
	return handle.GetN(key)
}

func (t *transaction) Has(handle Handle, key []byte) bool {
	return handle.Has(key)
}

func (t *transaction) Commit() error {
	return t.access.Commit()
}

func (t *transaction) Abort() {
	t.access.Abort()
}
