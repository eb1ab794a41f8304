// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txdb - the transaction table
//
// Rows are keyed by a link, a row id allocated from a persistent
// counter when the transaction is first stored.  A separate id index
// maps transaction digest → link.  Rows are append-only: a
// transaction is never deleted, only its confirmation state moves
// between unconfirmed, candidate and confirmed.
//
// Row layout:
//   [ state:1 ]  [ height:8 ]  [ mtp:8 ]  [ position:4 ]  [ forks:4 ]
//   [ packed transaction ] (big endian fields)
//
// Recently fetched rows are held in an LRU cache.  A writer replacing
// a cached row takes the cache's upgrade mutex exclusively, so a
// reader holding an accessor over the cached bytes can never observe
// a torn row.
package txdb
