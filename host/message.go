// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"encoding/json"

	"github.com/bianyuanop/cousin-store-contract/account"
	"github.com/bianyuanop/cousin-store-contract/recordstore"
)

// message methods
const (
	AddCommodity   = "add_commodity"
	AlterCommodity = "alter_commodity"
	GetCommodity   = "get_commodity"
	CommodityCount = "commodity_count"
	AddOrder       = "add_order"
	GetOrder       = "get_order"
	OrderCount     = "order_count"
	AlterOrder     = "alter_order"
	Verify         = "verify"
)

// Message - one call into the store
type Message struct {
	Caller      *account.Account `json:"caller"`                // base58
	Method      string           `json:"method"`                //
	Id          uint32           `json:"id"`                    // commodity or order id
	Description string           `json:"description,omitempty"` // new description
}

// Result - outcome of a message, which fields apply depends on the method
type Result struct {
	Method   string
	Status   recordstore.Status    // mutations except add_order
	Value    string                // get_commodity, get_order
	Number   uint32                // add_order id or the counts
	Problems []recordstore.Problem // verify
}

// MarshalJSON - only the fields that apply to the method
func (r Result) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{
		"method": r.Method,
	}
	switch r.Method {
	case AddCommodity, AlterCommodity, AlterOrder:
		out["status"] = uint8(r.Status)
		out["statusText"] = r.Status.String()
	case GetCommodity, GetOrder:
		out["value"] = r.Value
	case AddOrder:
		out["id"] = r.Number
	case CommodityCount, OrderCount:
		out["count"] = r.Number
	case Verify:
		out["problems"] = r.Problems
	}
	return json.Marshal(out)
}
