// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheWriteThenRead(t *testing.T) {
	c := newCache()

	key := "test"
	expected := []byte{'a', 'b', 'c', 'd'}

	_, found := c.Get(key)
	assert.False(t, found, "key present before set")

	c.Set(key, expected)
	actual, found := c.Get(key)
	assert.True(t, found, "key missing after set")
	assert.Equal(t, expected, actual, "wrong value")
}

func TestCacheEmptyValueIsFound(t *testing.T) {
	c := newCache()

	c.Set("empty", []byte{})
	actual, found := c.Get("empty")
	assert.True(t, found, "empty value must still be found")
	assert.Equal(t, 0, len(actual), "wrong value")
}

func TestCacheClear(t *testing.T) {
	c := newCache()

	c.Set("test", []byte{'a'})
	c.Clear()

	_, found := c.Get("test")
	assert.False(t, found, "clear did not empty the cache")
}
