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

// BlockResult - a decoded header row with its transaction links
type BlockResult struct {
	Header  *chainrecord.Header
	Digest  blockdigest.Digest
	Height  uint64
	Mtp     uint64
	State   byte
	Code    uint32
	TxLinks []uint64
}

// Error - the persisted validation failure, nil unless failed
func (r *BlockResult) Error() error {
	if !chainrecord.IsFailed(r.State) {
		return nil
	}
	return fault.ByCode(r.Code)
}

// decode a header row; the digest is the row key
func (b *BlockDB) decodeRow(digest blockdigest.Digest, row []byte) (*BlockResult, bool) {
	if len(row) != rowSize {
		b.log.Criticalf("corrupt header row for: %v length: %d", digest, len(row))
		return nil, false
	}

	var packed chainrecord.PackedHeader
	copy(packed[:], row[:mtpOffset])
	header := packed.Unpack()

	result := &BlockResult{
		Header: header,
		Digest: digest,
		Mtp:    binary.BigEndian.Uint64(row[mtpOffset:]),
		Height: binary.BigEndian.Uint64(row[heightOffset:]),
		State:  row[stateOffset],
		Code:   binary.BigEndian.Uint32(row[codeOffset:]),
	}

	txStart := binary.BigEndian.Uint64(row[txStartOffset:])
	txCount := int(binary.BigEndian.Uint16(row[txCountOffset:]))

	if txCount > 0 {
		result.TxLinks = make([]uint64, txCount)
		for i := 0; i < txCount; i += 1 {
			link := b.txIndex.Get(heightKey(txStart + uint64(i)))
			if nil == link {
				b.log.Criticalf("missing association %d for: %v", txStart+uint64(i), digest)
				return nil, false
			}
			result.TxLinks[i] = binary.BigEndian.Uint64(link)
		}
	}

	// populate the header metadata from the row
	header.Metadata.Exists = true
	header.Metadata.Populated = txCount != 0
	header.Metadata.Validated = chainrecord.IsValid(result.State) || chainrecord.IsFailed(result.State)
	header.Metadata.Candidate = chainrecord.IsCandidate(result.State)
	header.Metadata.Confirmed = chainrecord.IsConfirmed(result.State)
	header.Metadata.MedianTimePast = result.Mtp
	header.Metadata.Height = result.Height
	header.Metadata.Error = result.Error()

	return result, true
}

// GetByHash - read the row for a header digest
func (b *BlockDB) GetByHash(digest blockdigest.Digest) (*BlockResult, bool) {
	row := b.headers.Get(digest[:])
	if nil == row {
		return nil, false
	}
	return b.decodeRow(digest, row)
}

// Get - read the row indexed at a height
func (b *BlockDB) Get(height uint64, candidate bool) (*BlockResult, bool) {
	pool := b.confirmed
	if candidate {
		pool = b.candidate
	}

	entry := pool.Get(heightKey(height))
	if nil == entry {
		return nil, false
	}

	var digest blockdigest.Digest
	err := blockdigest.DigestFromBytes(&digest, entry)
	if nil != err {
		b.log.Criticalf("corrupt index entry at height: %d: %s", height, err)
		return nil, false
	}

	return b.GetByHash(digest)
}

// Top - the height of the top entry of an index
//
// returns false when the index is empty (no genesis)
func (b *BlockDB) Top(candidate bool) (uint64, bool) {
	pool := b.confirmed
	if candidate {
		pool = b.candidate
	}

	count := indexCount(pool)
	if 0 == count {
		return 0, false
	}
	return count - 1, true
}

// FetchMetadata - populate a header's metadata from its stored row
//
// a missing row leaves the metadata untouched at its zero state
func (b *BlockDB) FetchMetadata(header *chainrecord.Header) {
	result, found := b.GetByHash(header.Hash())
	if !found {
		return
	}
	header.Metadata = result.Header.Metadata
}
