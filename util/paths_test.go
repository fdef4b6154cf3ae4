// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bianyuanop/cousin-store-contract/util"
)

func TestEnsureAbsolute(t *testing.T) {
	tests := []struct {
		dir      string
		file     string
		expected string
	}{
		{"/data", "store.leveldb", "/data/store.leveldb"},
		{"/data", "log/../store.leveldb", "/data/store.leveldb"},
		{"/data", "/var/store.leveldb", "/var/store.leveldb"},
		{"/data/", "./x", "/data/x"},
	}

	for i, item := range tests {
		actual := util.EnsureAbsolute(item.dir, item.file)
		assert.Equal(t, item.expected, actual, "%d: dir: %q  file: %q", i, item.dir, item.file)
	}
}

func TestEnsureDirectory(t *testing.T) {
	dir, err := ioutil.TempDir("", "util-test")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	nested := filepath.Join(dir, "a", "b")
	assert.False(t, util.EnsureFileExists(nested), "exists before create")

	assert.Nil(t, util.EnsureDirectory(nested), "create")
	assert.True(t, util.EnsureFileExists(nested), "exists after create")
	assert.Nil(t, util.EnsureDirectory(nested), "create existing")

	file := filepath.Join(dir, "file")
	assert.Nil(t, ioutil.WriteFile(file, []byte("x"), 0600), "write file")
	assert.NotNil(t, util.EnsureDirectory(file), "file accepted as directory")
}
