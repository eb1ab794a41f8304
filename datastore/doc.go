// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package datastore - the coordinated chain store
//
// Composes the block, transaction and address tables into one
// transactional store with a candidate and a confirmed chain index
// and reorganization between them.
//
// Every mutating operation follows the same bracket: take the write
// mutex, run the verification predicates, begin the write (creating
// the persistent flush lock when per-write flushing is on), fan out
// the primitive operations, commit the affected tables in dependency
// order and end the write.  A primitive failure aborts the batch and
// ends the write best-effort; if ending the write itself fails the
// flush lock stays on disk and the store refuses to open until an
// operator intervenes.
//
// Readers do not take the write mutex.  They see a consistent state
// per table but no cross-table snapshot; a reader racing a writer may
// observe an indexed block whose transactions are not yet confirmed.
package datastore
