// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockdb - the header table and the two chain indexes
//
// A header row is keyed by header digest and carries the packed
// header, its height and median time past, a state byte, an error
// code and the association into the transaction index.
//
// The candidate and confirmed indexes are dense height → digest
// sequences starting at genesis.  Entries may only be pushed onto or
// popped off the top, so both stay contiguous by construction.
//
// Row layout [105 bytes]:
//   [ header:74 ]  [ mtp:8 ]  [ height:8 ]  [ state:1 ]
//   [ code:4 ]  [ txStart:8 ]  [ txCount:2 ] (big endian fields)
package blockdb
