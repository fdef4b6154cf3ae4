// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package recordstore - the owner gated commodity catalog and the
// client written order ledger
//
// every operation takes the calling account as a parameter, the host
// is trusted to supply it
//
// state is held in five pools:
//
//   State          "owner"     → owner account bytes
//                  "commodity" → next commodity id (8 byte BE)
//                  "order"     → next order id (8 byte BE)
//   CommodityIds   position    → commodity id
//   CommodityInfo  id          → description
//   Orders         id          → client account bytes
//   OrderInfo      id          → description
//
// all ids and positions are 4 byte big endian
//
// reads never distinguish an absent record from one whose description
// is empty, or (for orders) from one the caller may not see: all of
// these return ""
//
// a mutating call that also returns an error has written nothing and
// its status is meaningless
package recordstore
