// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdb

import (
	"bytes"

	"github.com/trestle-systems/chainstore/blockdigest"
	"github.com/trestle-systems/chainstore/chainrecord"
)

// Index - push a header digest onto the top of an index
//
// can only add to the top of an index; the header row must exist and
// its state must admit the transition
func (b *BlockDB) Index(digest blockdigest.Digest, height uint64, candidate bool) bool {
	pool := b.confirmed
	if candidate {
		pool = b.candidate
	}

	// can only add to the top of an index (push)
	if height != indexCount(pool) {
		b.log.Errorf("index push out of sequence: %d count: %d", height, indexCount(pool))
		return false
	}

	row := b.headers.Get(digest[:])
	if nil == row {
		return false
	}

	state, ok := chainrecord.UpdateConfirmationState(row[stateOffset], true, candidate)
	if !ok {
		b.log.Errorf("index transition refused: %v state: %02x", digest, row[stateOffset])
		return false
	}

	updated := make([]byte, rowSize)
	copy(updated, row)
	updated[stateOffset] = state
	b.headers.Put(digest[:], updated)

	pool.Put(heightKey(height), digest[:])
	return true
}

// Unindex - pop a header digest off the top of an index
//
// can only remove from the top; the digest must match the entry
func (b *BlockDB) Unindex(digest blockdigest.Digest, height uint64, candidate bool) bool {
	pool := b.confirmed
	if candidate {
		pool = b.candidate
	}

	// can only remove from the top of an index (pop)
	if height+1 != indexCount(pool) {
		b.log.Errorf("index pop out of sequence: %d count: %d", height, indexCount(pool))
		return false
	}

	entry := pool.Get(heightKey(height))
	if nil == entry || !bytes.Equal(entry, digest[:]) {
		return false
	}

	row := b.headers.Get(digest[:])
	if nil == row {
		return false
	}

	state, ok := chainrecord.UpdateConfirmationState(row[stateOffset], false, candidate)
	if !ok {
		b.log.Errorf("unindex transition refused: %v state: %02x", digest, row[stateOffset])
		return false
	}

	updated := make([]byte, rowSize)
	copy(updated, row)
	updated[stateOffset] = state
	b.headers.Put(digest[:], updated)

	pool.Delete(heightKey(height))
	return true
}
