// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package recordstore

import (
	"strconv"
)

// Status - outcome code of a mutating call
type Status uint8

// status codes, values are part of the external interface
const (
	Ok            Status = 0
	NotOwner      Status = 1
	NotAuthorized Status = 1 // orders: caller is not the recorded client
	InvalidId     Status = 2
	RecordMissing Status = 3
)

// String - name of the status
func (s Status) String() string {
	switch s {
	case Ok:
		return "ok"
	case NotOwner:
		return "not authorized"
	case InvalidId:
		return "invalid id"
	case RecordMissing:
		return "record missing"
	default:
		return "status(" + strconv.Itoa(int(s)) + ")"
	}
}

