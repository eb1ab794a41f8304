// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// The store root holds one LevelDB database per table file so the
// stable names survive inspection:
//
//   block_table        - header rows keyed by header digest
//   candidate_index    - header digest per height (candidate chain)
//   confirmed_index    - header digest per height (confirmed chain)
//   transaction_index  - transaction row links per association position
//   transaction_table  - transaction rows and the id → link index
//   address_table      - per-address payment row counts
//   address_rows       - payment rows keyed by address hash ++ count
//
// Each logical table is a pool with a single byte prefix (to spread
// the keys in LevelDB).  Prefixes are unique across all databases so
// that a single write-through cache can front every batch.
//
// Notes:
// 1. ++          = concatenation of byte data
// 2. height      = big endian uint64 (8 bytes)
// 3. digest      = 32 byte header digest (Argon2d)
// 4. txId        = 32 byte transaction digest (SHA3-256)
// 5. link        = row id as big endian uint64 (8 bytes)
// 6. count       = successive index value as big endian uint64 (8 bytes)
//
// Pools:
//
//   B ++ digest          - header row: packed header ++ metadata fields
//   c ++ height          - candidate index entry: digest
//   f ++ height          - confirmed index entry: digest
//   x ++ position        - association entry: tx link
//   n ++ "next"          - next free association position
//   T ++ txId            - transaction id index: link
//   R ++ link            - transaction row: state ++ height ++ mtp ++
//                          position ++ forks ++ packed transaction
//   N ++ "next"          - next free transaction link
//   A ++ address hash    - payment row count for the address
//   P ++ hash ++ count   - payment row
//
// Writes accumulate in a per-database batch and reach LevelDB only at
// Commit.  Puts become visible to Get and Has immediately through the
// cache; iteration (LastElement, fetch cursors) sees committed data
// only.  Each database's commit is all-or-nothing.
package storage
