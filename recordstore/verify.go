// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package recordstore

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/bianyuanop/cousin-store-contract/account"
	"github.com/bianyuanop/cousin-store-contract/storage"
)

// Problem - one inconsistency found by Verify
type Problem struct {
	Pool  string `json:"pool"`
	Id    uint32 `json:"id"`
	Issue string `json:"issue"`
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %d: %s", p.Pool, p.Id, p.Issue)
}

// Verify - check every issued id is fully backed and nothing lies beyond
//
// each commodity below the count needs a sequence entry holding its own
// id and an info entry; each order below the count needs a decodable
// client and an info entry; no pool may hold a key at or past its count
func (s *Store) Verify() []Problem {
	problems := make([]Problem, 0)

	commodities := s.CommodityCount()
	problems = s.checkTail(problems, "commodity ids", s.pools.CommodityIds, commodities)
	problems = s.checkTail(problems, "commodity info", s.pools.CommodityInfo, commodities)
	for id := uint32(0); id < commodities; id += 1 {
		key := idBytes(id)

		seq := s.pools.CommodityIds.Get(key)
		if nil == seq {
			problems = append(problems, Problem{"commodity ids", id, "missing"})
		} else if !bytes.Equal(key, seq) {
			problems = append(problems, Problem{"commodity ids", id, fmt.Sprintf("holds: %x", seq)})
		}
		if !s.pools.CommodityInfo.Has(key) {
			problems = append(problems, Problem{"commodity info", id, "missing"})
		}
	}

	orders := s.OrderCount()
	problems = s.checkTail(problems, "orders", s.pools.Orders, orders)
	problems = s.checkTail(problems, "order info", s.pools.OrderInfo, orders)
	for id := uint32(0); id < orders; id += 1 {
		key := idBytes(id)

		clientBytes := s.pools.Orders.Get(key)
		if nil == clientBytes {
			problems = append(problems, Problem{"orders", id, "missing"})
		} else if _, err := account.FromBytes(clientBytes); nil != err {
			problems = append(problems, Problem{"orders", id, err.Error()})
		}
		if !s.pools.OrderInfo.Has(key) {
			problems = append(problems, Problem{"order info", id, "missing"})
		}
	}

	for _, p := range problems {
		s.log.Warnf("verify: %s", p)
	}
	return problems
}

// keys are big endian ids so the last element is the highest id
func (s *Store) checkTail(problems []Problem, pool string, handle storage.Handle, count uint32) []Problem {
	last, found := handle.LastElement()
	if !found {
		return problems
	}
	if idByteSize != len(last.Key) {
		return append(problems, Problem{pool, 0, fmt.Sprintf("malformed key: %x", last.Key)})
	}
	id := binary.BigEndian.Uint32(last.Key)
	if id >= count {
		return append(problems, Problem{pool, id, fmt.Sprintf("beyond count: %d", count)})
	}
	return problems
}
