// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// unexported constructors for the external tests
var (
	NewDA          = newDA
	NewCache       = newCache
	NewTransaction = newTransaction
)
