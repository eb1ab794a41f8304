// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datastore

import (
	"github.com/trestle-systems/chainstore/chainrecord"
	"github.com/trestle-systems/chainstore/fault"
)

// verification predicates
//
// pure checks run before entering the write barrier; they never touch
// the barrier or the batches

// verifyExists - the header must have a stored row
func verifyExists(blocks BlockTable, header *chainrecord.Header) error {
	_, found := blocks.GetByHash(header.Hash())
	if !found {
		return fault.ErrBlockNotFound
	}
	return nil
}

// verifyTransactionExists - the transaction must have a stored row
func verifyTransactionExists(transactions TransactionTable, tx *chainrecord.Transaction) error {
	if !transactions.Exists(tx.TxId()) {
		return fault.ErrTransactionNotFound
	}
	return nil
}

// verifyMissing - a transaction with the same id must not be stored
func verifyMissing(transactions TransactionTable, tx *chainrecord.Transaction) error {
	if transactions.Exists(tx.TxId()) {
		return fault.ErrDuplicateTransaction
	}
	return nil
}

// verifyNotFailed - the block's header must not be marked failed
//
// a missing header passes: the caller is about to store it
func verifyNotFailed(blocks BlockTable, block *chainrecord.Block) error {
	result, found := blocks.GetByHash(block.Hash())
	if found && chainrecord.IsFailed(result.State) {
		return fault.ErrValidationFailed
	}
	return nil
}

// verifyUpdate - the header must exist at the height with no
// transaction association yet; the caller is about to populate it
func verifyUpdate(blocks BlockTable, block *chainrecord.Block, height uint64) error {
	result, found := blocks.GetByHash(block.Hash())
	if !found {
		return fault.ErrBlockNotFound
	}
	if result.Height != height {
		return fault.ErrOperationFailed
	}
	if 0 != len(result.TxLinks) {
		return fault.ErrOperationFailed
	}
	return nil
}

// verifyPush - the entity must extend the top of the selected index
// and link to the indexed parent
func verifyPush(blocks BlockTable, header *chainrecord.Header, height uint64, candidate bool) error {
	top, found := blocks.Top(candidate)

	if !found {
		// an empty index only accepts genesis
		if 0 != height {
			return fault.ErrOperationFailed
		}
		return nil
	}

	if height != top+1 {
		return fault.ErrOperationFailed
	}

	parent, found := blocks.Get(top, candidate)
	if !found {
		return fault.ErrOperationFailed
	}
	if header.PreviousBlock != parent.Digest {
		return fault.ErrOperationFailed
	}
	return nil
}

// verifyTop - the height must be the top of the selected index
func verifyTop(blocks BlockTable, height uint64, candidate bool) error {
	top, found := blocks.Top(candidate)
	if !found || top != height {
		return fault.ErrOperationFailed
	}
	return nil
}

// verifyFork - the fork point must match the index entry at its height
func verifyFork(blocks BlockTable, fork ForkPoint, candidate bool) error {
	result, found := blocks.Get(fork.Height, candidate)
	if !found || result.Digest != fork.Hash {
		return fault.ErrOperationFailed
	}
	return nil
}
