// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdb

import (
	"encoding/binary"

	"github.com/trestle-systems/chainstore/blockdigest"
	"github.com/trestle-systems/chainstore/chainrecord"
	"github.com/trestle-systems/chainstore/fault"
)

// key for the next free association position
var nextAssociationKey = []byte("next")

// Store - write a new header row
//
// new headers always start in the candidate state with no transaction
// association; storing an existing header is a programming error
func (b *BlockDB) Store(header *chainrecord.Header, height uint64, mtp uint64) {
	digest := header.Hash()
	if b.headers.Has(digest[:]) {
		b.log.Criticalf("store of existing header: %v", digest)
		return
	}

	row := make([]byte, rowSize)
	packed := header.Pack()
	copy(row, packed[:])
	binary.BigEndian.PutUint64(row[mtpOffset:], mtp)
	binary.BigEndian.PutUint64(row[heightOffset:], height)
	row[stateOffset] = chainrecord.StateCandidate
	// code, txStart and txCount stay zero until updated

	b.headers.Put(digest[:], row)

	header.Metadata.Exists = true
	header.Metadata.Height = height
	header.Metadata.MedianTimePast = mtp
}

// Update - populate the block's transaction association
//
// allocates consecutive association positions and records the links of
// all block transactions; validation and confirmation state of the row
// are unchanged
func (b *BlockDB) Update(block *chainrecord.Block) bool {
	digest := block.Hash()
	row := b.headers.Get(digest[:])
	if nil == row {
		return false
	}

	txCount := len(block.Transactions)
	txStart := uint64(0)
	if txCount > 0 {
		txStart, _ = b.txIndexNext.GetN(nextAssociationKey)
		for i, tx := range block.Transactions {
			link := make([]byte, 8)
			binary.BigEndian.PutUint64(link, tx.Metadata.Link)
			b.txIndex.Put(heightKey(txStart+uint64(i)), link)
		}
		b.txIndexNext.PutN(nextAssociationKey, txStart+uint64(txCount))
	}

	updated := make([]byte, rowSize)
	copy(updated, row)
	binary.BigEndian.PutUint64(updated[txStartOffset:], txStart)
	binary.BigEndian.PutUint16(updated[txCountOffset:], uint16(txCount))
	b.headers.Put(digest[:], updated)

	block.Header.Metadata.Populated = txCount != 0
	return true
}

// Validate - promote an unvalidated header to valid or failed
//
// a nil code marks the header valid; otherwise the code is persisted
// so the failure survives a restart
func (b *BlockDB) Validate(digest blockdigest.Digest, code error) bool {
	row := b.headers.Get(digest[:])
	if nil == row {
		return false
	}

	state, ok := chainrecord.UpdateValidationState(row[stateOffset], nil == code)
	if !ok {
		b.log.Errorf("revalidation of header: %v state: %02x", digest, row[stateOffset])
		return false
	}

	updated := make([]byte, rowSize)
	copy(updated, row)
	updated[stateOffset] = state
	if nil != code {
		binary.BigEndian.PutUint32(updated[codeOffset:], fault.Code(code))
	}
	b.headers.Put(digest[:], updated)
	return true
}
