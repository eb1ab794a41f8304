// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package addressdb - payment history rows keyed by address hash
//
// Rows are append-only.  Each address keeps a row count in the
// address table; rows live in the address rows database under
// hash ++ count so a history scan is a prefix iteration.
//
// Confirmation of a payment is not recorded here: it is derived from
// the current state of the referenced transaction row.
//
// Payment row layout [21 bytes]:
//   [ txLink:8 ]  [ ioIndex:4 ]  [ value:8 ]  [ isOutput:1 ]
package addressdb
