// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdb

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/trestle-systems/chainstore/chainrecord"
	"github.com/trestle-systems/chainstore/storage"
)

// row field offsets after the packed header
const (
	mtpOffset     = chainrecord.HeaderSize
	heightOffset  = mtpOffset + 8
	stateOffset   = heightOffset + 8
	codeOffset    = stateOffset + 1
	txStartOffset = codeOffset + 4
	txCountOffset = txStartOffset + 8

	rowSize = txCountOffset + 2
)

// the block subsystem databases in commit order: the transaction
// association first, then the rows the indexes refer to, the indexes
// last
var commitOrder = []string{
	"transaction_index",
	"block_table",
	"candidate_index",
	"confirmed_index",
}

// BlockDB - the block subsystem of one store
type BlockDB struct {
	log *logger.L

	headers     *storage.PoolHandle
	candidate   *storage.PoolHandle
	confirmed   *storage.PoolHandle
	txIndex     *storage.PoolHandle
	txIndexNext *storage.PoolHandle

	accesses []storage.Access
}

// New - attach the block subsystem to an open store
func New(store *storage.Store) *BlockDB {
	accesses := make([]storage.Access, len(commitOrder))
	for i, name := range commitOrder {
		accesses[i] = store.Access(name)
	}

	return &BlockDB{
		log:         logger.New("blockdb"),
		headers:     store.Pool.Headers,
		candidate:   store.Pool.CandidateIndex,
		confirmed:   store.Pool.ConfirmedIndex,
		txIndex:     store.Pool.TxIndex,
		txIndexNext: store.Pool.TxIndexNext,
		accesses:    accesses,
	}
}

// Commit - write the batches of all block subsystem databases
func (b *BlockDB) Commit() error {
	for _, access := range b.accesses {
		err := access.Commit()
		if nil != err {
			b.log.Errorf("commit error: %s", err)
			return err
		}
	}
	return nil
}

// Flush - force all block subsystem journals to stable storage
func (b *BlockDB) Flush() error {
	for _, access := range b.accesses {
		err := access.Flush()
		if nil != err {
			b.log.Errorf("flush error: %s", err)
			return err
		}
	}
	return nil
}

// big endian height key
func heightKey(height uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, height)
	return key
}

// count of entries in an index pool
//
// the indexes are dense from zero so count is top + 1
func indexCount(pool *storage.PoolHandle) uint64 {
	last, found := pool.LastElement()
	if !found {
		return 0
	}
	return binary.BigEndian.Uint64(last.Key) + 1
}
