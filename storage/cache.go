// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - uncommitted writes of the open transaction, so reads inside
// the transaction see them before the batch reaches the database
//
// records are never deleted so only puts are tracked
type Cache interface {
	Get(string) ([]byte, bool)
	Set(string, []byte)
	Clear()
}

// entries live until the transaction commits or aborts
const (
	cleanupInterval   = 1 * time.Minute
	defaultExpiration = cache.NoExpiration
)

type dbCache struct {
	cache *cache.Cache
}

func newCache() Cache {
	return &dbCache{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

func (c *dbCache) Get(key string) ([]byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	return obj.([]byte), true
}

func (c *dbCache) Set(key string, value []byte) {
	c.cache.Set(key, value, defaultExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
