// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainrecord

import (
	"github.com/trestle-systems/chainstore/blockdigest"
	"github.com/trestle-systems/chainstore/merkle"
)

// Block - a header together with its ordered transactions
//
// a block is a transient composite: the store persists the header row,
// the transaction rows and the association between them, never a
// single block row
type Block struct {
	Header       *Header
	Transactions []*Transaction
}

// NewBlock - assemble a block and set the header merkle root from the
// transaction ids
func NewBlock(version uint16, previous blockdigest.Digest, timestamp uint64, txs []*Transaction) *Block {
	txIds := make([]merkle.Digest, len(txs))
	for i, tx := range txs {
		txIds[i] = tx.TxId()
	}

	header := &Header{
		Version:       version,
		PreviousBlock: previous,
		MerkleRoot:    merkle.Root(txIds),
		Timestamp:     timestamp,
	}

	return &Block{
		Header:       header,
		Transactions: txs,
	}
}

// Hash - the digest of the block's header
func (block *Block) Hash() blockdigest.Digest {
	return block.Header.Hash()
}

// TxIds - ordered transaction ids of the block
func (block *Block) TxIds() []merkle.Digest {
	ids := make([]merkle.Digest, len(block.Transactions))
	for i, tx := range block.Transactions {
		ids[i] = tx.TxId()
	}
	return ids
}
