// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk contract state
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. id           = big endian uint32 (4 bytes)
// 4. count        = big endian uint64 (8 bytes)
// 5. account      = key variant ++ ed25519 public key (33 bytes)
// 6. description  = raw UTF-8 bytes, possibly empty
//
// State:
//
//   N ++ "owner"               - contract owner
//                                data: account
//   N ++ "commodity"           - next commodity id to issue
//                                data: count
//   N ++ "order"               - next order id to issue
//                                data: count
//
// Commodities:
//
//   S ++ position              - append-only sequence of issued ids
//                                data: id
//   C ++ id                    - commodity description
//                                data: description
//
// Orders:
//
//   O ++ id                    - submitting client
//                                data: account
//   I ++ id                    - order description
//                                data: description
//
// Testing:
//   Z ++ key                   - testing data
package storage
