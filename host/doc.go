// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package host - runs messages against a record store
//
// the host owns the database, performs the one time deployment that
// fixes the store owner and then executes messages strictly one at a
// time.  The caller of each message is asserted by whoever builds the
// message, the host does not verify it.
package host
