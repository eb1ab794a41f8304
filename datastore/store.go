// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datastore

import (
	"github.com/trestle-systems/chainstore/chainrecord"
	"github.com/trestle-systems/chainstore/fault"
)

// Store - store a transaction as unconfirmed
//
// the transaction's link metadata is set as a side effect
func (d *DataStore) Store(tx *chainrecord.Transaction, forks uint32) error {
	d.Lock()
	defer d.Unlock()

	err := d.isOpen()
	if nil != err {
		return err
	}

	err = verifyMissing(d.transactions, tx)
	if nil != err {
		return err
	}

	err = d.beginWrite()
	if nil != err {
		return err
	}

	if !d.transactions.Store(tx, forks) {
		return d.abortWrite()
	}

	err = d.transactions.Commit()
	if nil != err {
		return d.abortWrite()
	}

	return d.endWrite()
}

// IndexTransaction - append the payment records of a stored transaction
//
// a no-op when address indexing is disabled or the transaction was
// already stored before
func (d *DataStore) IndexTransaction(tx *chainrecord.Transaction) error {
	// existence check prevents duplicated indexing
	if !d.settings.IndexAddresses || tx.Metadata.Existed {
		return nil
	}

	d.Lock()
	defer d.Unlock()

	err := d.isOpen()
	if nil != err {
		return err
	}

	err = verifyTransactionExists(d.transactions, tx)
	if nil != err {
		return err
	}

	err = d.beginWrite()
	if nil != err {
		return err
	}

	d.addresses.Index(tx)

	err = d.addresses.Commit()
	if nil != err {
		return d.abortWrite()
	}

	return d.endWrite()
}

// IndexBlock - append the payment records of a block's new transactions
func (d *DataStore) IndexBlock(block *chainrecord.Block) error {
	if !d.settings.IndexAddresses {
		return nil
	}

	d.Lock()
	defer d.Unlock()

	err := d.isOpen()
	if nil != err {
		return err
	}

	err = verifyExists(d.blocks, block.Header)
	if nil != err {
		return err
	}

	err = d.beginWrite()
	if nil != err {
		return err
	}

	// existence check prevents duplicated indexing
	for _, tx := range block.Transactions {
		if !tx.Metadata.Existed {
			d.addresses.Index(tx)
		}
	}

	err = d.addresses.Commit()
	if nil != err {
		return d.abortWrite()
	}

	return d.endWrite()
}

// Update - add missing transactions for an existing block header
//
// populates the block's transaction association without touching its
// validation or confirmation state
func (d *DataStore) Update(block *chainrecord.Block, height uint64) error {
	d.Lock()
	defer d.Unlock()

	err := d.isOpen()
	if nil != err {
		return err
	}

	err = verifyUpdate(d.blocks, block, height)
	if nil != err {
		return err
	}

	err = d.beginWrite()
	if nil != err {
		return err
	}

	// store the missing transactions and set tx link metadata for all
	if !d.transactions.StoreAll(block.Transactions) {
		return d.abortWrite()
	}

	// update the block's transaction associations (not its state)
	if !d.blocks.Update(block) {
		return d.abortWrite()
	}

	err = d.commit()
	if nil != err {
		return d.abortWrite()
	}

	return d.endWrite()
}

// Invalidate - mark a header's validation state as failed
//
// the reason must be a non-nil error and is persisted with the row
func (d *DataStore) Invalidate(header *chainrecord.Header, reason error) error {
	if nil == reason {
		d.log.Critical("invalidate with nil reason")
		return fault.ErrOperationFailed
	}

	d.Lock()
	defer d.Unlock()

	err := d.isOpen()
	if nil != err {
		return err
	}

	err = verifyExists(d.blocks, header)
	if nil != err {
		return err
	}

	err = d.beginWrite()
	if nil != err {
		return err
	}

	if !d.blocks.Validate(header.Hash(), reason) {
		return d.abortWrite()
	}

	err = d.blocks.Commit()
	if nil != err {
		return d.abortWrite()
	}

	header.Metadata.Error = reason
	header.Metadata.Validated = true

	return d.endWrite()
}

// Candidate - promote a candidate block to valid and mark its
// transactions as candidate
//
// refuses a block whose header is already marked failed
func (d *DataStore) Candidate(block *chainrecord.Block) error {
	d.Lock()
	defer d.Unlock()

	err := d.isOpen()
	if nil != err {
		return err
	}

	err = verifyNotFailed(d.blocks, block)
	if nil != err {
		return err
	}

	err = d.beginWrite()
	if nil != err {
		return err
	}

	// set candidate validation state to valid
	if !d.blocks.Validate(block.Hash(), nil) {
		return d.abortWrite()
	}

	// mark candidate block txs as candidate (spent outputs are not marked)
	for _, tx := range block.Transactions {
		if !d.transactions.Candidate(tx.Metadata.Link) {
			return d.abortWrite()
		}
	}

	err = d.commit()
	if nil != err {
		return d.abortWrite()
	}

	block.Header.Metadata.Error = nil
	block.Header.Metadata.Validated = true

	return d.endWrite()
}

// Push - store, update, validate and confirm a presumed valid block
func (d *DataStore) Push(block *chainrecord.Block, height uint64, mtp uint64) error {
	d.Lock()
	defer d.Unlock()

	err := d.isOpen()
	if nil != err {
		return err
	}

	err = d.beginWrite()
	if nil != err {
		return err
	}

	// store the header unless header-first sync already did
	d.blocks.FetchMetadata(block.Header)
	if !block.Header.Metadata.Exists {
		d.blocks.Store(block.Header, height, mtp)
	}

	// push header reference onto the candidate index
	if !d.blocks.Index(block.Hash(), height, true) {
		return d.abortWrite()
	}

	// store any missing txs as unconfirmed, set tx link metadata for all
	if !d.transactions.StoreAll(block.Transactions) {
		return d.abortWrite()
	}

	// populate transaction references from link metadata
	if !d.blocks.Update(block) {
		return d.abortWrite()
	}

	// confirm all transactions
	for position, tx := range block.Transactions {
		if !d.transactions.Confirm(tx.Metadata.Link, height, mtp, uint32(position)) {
			return d.abortWrite()
		}
	}

	// promote validation state to valid (presumed valid)
	if !d.blocks.Validate(block.Hash(), nil) {
		return d.abortWrite()
	}

	// push header reference onto the confirmed index
	if !d.blocks.Index(block.Hash(), height, false) {
		return d.abortWrite()
	}

	err = d.commit()
	if nil != err {
		return d.abortWrite()
	}

	return d.endWrite()
}
