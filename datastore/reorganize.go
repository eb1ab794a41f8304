// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datastore

import (
	"math"

	"github.com/trestle-systems/chainstore/blockdigest"
	"github.com/trestle-systems/chainstore/chainrecord"
	"github.com/trestle-systems/chainstore/fault"
)

// ForkPoint - the common ancestor of two chains
type ForkPoint struct {
	Height uint64
	Hash   blockdigest.Digest
}

// ReorganizeHeaders - replace the candidate chain above a fork point
//
// pops every candidate entry above the fork into the returned list
// (ascending by height), then pushes the incoming headers.  A push
// failure stops without rewinding; the popped headers are still
// returned so the caller can recover.
func (d *DataStore) ReorganizeHeaders(fork ForkPoint, incoming []*chainrecord.Header) ([]*chainrecord.Header, error) {
	if fork.Height > math.MaxUint64-uint64(len(incoming)) {
		return nil, fault.ErrOperationFailed
	}

	outgoing, ok := d.popAboveHeaders(fork)
	if !ok {
		return nil, fault.ErrOperationFailed
	}
	if !d.pushAllHeaders(incoming, fork) {
		return outgoing, fault.ErrOperationFailed
	}
	return outgoing, nil
}

// ReorganizeBlocks - replace the confirmed chain above a fork point
func (d *DataStore) ReorganizeBlocks(fork ForkPoint, incoming []*chainrecord.Block) ([]*chainrecord.Block, error) {
	if fork.Height > math.MaxUint64-uint64(len(incoming)) {
		return nil, fault.ErrOperationFailed
	}

	outgoing, ok := d.popAboveBlocks(fork)
	if !ok {
		return nil, fault.ErrOperationFailed
	}
	if !d.pushAllBlocks(incoming, fork) {
		return outgoing, fault.ErrOperationFailed
	}
	return outgoing, nil
}

// Header reorganization
// ----------------------------------------------------------------------------

// push all headers onto the fork point
func (d *DataStore) pushAllHeaders(headers []*chainrecord.Header, fork ForkPoint) bool {
	firstHeight := fork.Height + 1

	for i, header := range headers {
		mtp := header.Metadata.MedianTimePast
		err := d.pushHeader(header, firstHeight+uint64(i), mtp)
		if nil != err {
			d.log.Errorf("push header %d: %s", firstHeight+uint64(i), err)
			return false
		}
	}
	return true
}

// pop all candidate headers above the fork point, ascending on return
func (d *DataStore) popAboveHeaders(fork ForkPoint) ([]*chainrecord.Header, bool) {
	err := verifyFork(d.blocks, fork, true)
	if nil != err {
		return nil, false
	}

	top, found := d.blocks.Top(true)
	if !found {
		return nil, false
	}

	headers := make([]*chainrecord.Header, 0, top-fork.Height)

	for height := top; height > fork.Height; height -= 1 {
		header, err := d.popHeader(height)
		if nil != err {
			d.log.Errorf("pop header %d: %s", height, err)
			return nil, false
		}
		headers = append([]*chainrecord.Header{header}, headers...)
	}
	return headers, true
}

// pushHeader - append one header to the candidate index
//
// expects the header to be the next candidate; stores the row unless
// header-first sync already did
func (d *DataStore) pushHeader(header *chainrecord.Header, height uint64, mtp uint64) error {
	d.Lock()
	defer d.Unlock()

	err := d.isOpen()
	if nil != err {
		return err
	}

	err = verifyPush(d.blocks, header, height, true)
	if nil != err {
		return err
	}

	err = d.beginWrite()
	if nil != err {
		return err
	}

	d.blocks.FetchMetadata(header)
	if !header.Metadata.Exists {
		d.blocks.Store(header, height, mtp)
	}

	if !d.blocks.Index(header.Hash(), height, true) {
		return d.abortWrite()
	}

	err = d.blocks.Commit()
	if nil != err {
		return d.abortWrite()
	}

	return d.endWrite()
}

// popHeader - remove the top candidate header
//
// proceeds only when the height is the candidate top
func (d *DataStore) popHeader(height uint64) (*chainrecord.Header, error) {
	d.Lock()
	defer d.Unlock()

	err := d.isOpen()
	if nil != err {
		return nil, err
	}

	err = verifyTop(d.blocks, height, true)
	if nil != err {
		return nil, err
	}

	result, found := d.blocks.Get(height, true)
	if !found {
		return nil, fault.ErrOperationFailed
	}

	err = d.beginWrite()
	if nil != err {
		return nil, err
	}

	// uncandidate the transactions of this candidate block
	for _, link := range result.TxLinks {
		if !d.transactions.Uncandidate(link) {
			return nil, d.abortWrite()
		}
	}

	// unindex the candidate header
	if !d.blocks.Unindex(result.Digest, height, true) {
		return nil, d.abortWrite()
	}

	err = d.commit()
	if nil != err {
		return nil, d.abortWrite()
	}

	err = d.endWrite()
	if nil != err {
		return nil, err
	}
	return result.Header, nil
}

// Block reorganization
// ----------------------------------------------------------------------------

// push all blocks onto the fork point
func (d *DataStore) pushAllBlocks(blocks []*chainrecord.Block, fork ForkPoint) bool {
	firstHeight := fork.Height + 1

	for i, block := range blocks {
		err := d.pushBlock(block, firstHeight+uint64(i))
		if nil != err {
			d.log.Errorf("push block %d: %s", firstHeight+uint64(i), err)
			return false
		}
	}
	return true
}

// pop all confirmed blocks above the fork point, ascending on return
func (d *DataStore) popAboveBlocks(fork ForkPoint) ([]*chainrecord.Block, bool) {
	err := verifyFork(d.blocks, fork, false)
	if nil != err {
		return nil, false
	}

	top, found := d.blocks.Top(false)
	if !found {
		return nil, false
	}

	blocks := make([]*chainrecord.Block, 0, top-fork.Height)

	for height := top; height > fork.Height; height -= 1 {
		block, err := d.popBlock(height)
		if nil != err {
			d.log.Errorf("pop block %d: %s", height, err)
			return nil, false
		}
		blocks = append([]*chainrecord.Block{block}, blocks...)
	}
	return blocks, true
}

// pushBlock - confirm one block already in the candidate chain
//
// median time past is taken from the stored header metadata
func (d *DataStore) pushBlock(block *chainrecord.Block, height uint64) error {
	d.Lock()
	defer d.Unlock()

	err := d.isOpen()
	if nil != err {
		return err
	}

	d.blocks.FetchMetadata(block.Header)
	mtp := block.Header.Metadata.MedianTimePast

	err = verifyPush(d.blocks, block.Header, height, false)
	if nil != err {
		return err
	}

	err = d.beginWrite()
	if nil != err {
		return err
	}

	// confirm txs (spent outputs are not marked)
	for position, tx := range block.Transactions {
		if !d.transactions.Confirm(tx.Metadata.Link, height, mtp, uint32(position)) {
			return d.abortWrite()
		}
	}

	// confirm candidate block (candidate index unchanged)
	if !d.blocks.Index(block.Hash(), height, false) {
		return d.abortWrite()
	}

	err = d.commit()
	if nil != err {
		return d.abortWrite()
	}

	return d.endWrite()
}

// popBlock - unconfirm the top confirmed block
//
// the block is reconstructed from its header row and transaction
// links before the state is reversed
func (d *DataStore) popBlock(height uint64) (*chainrecord.Block, error) {
	d.Lock()
	defer d.Unlock()

	err := d.isOpen()
	if nil != err {
		return nil, err
	}

	err = verifyTop(d.blocks, height, false)
	if nil != err {
		return nil, err
	}

	result, found := d.blocks.Get(height, false)
	if !found {
		return nil, fault.ErrOperationFailed
	}

	// create a block for walking transactions and return
	block, err := d.toBlock(result.Header, result.TxLinks)
	if nil != err {
		return nil, err
	}

	err = d.beginWrite()
	if nil != err {
		return nil, err
	}

	// deconfirm txs (spent outputs are not marked)
	for _, link := range result.TxLinks {
		if !d.transactions.Unconfirm(link) {
			return nil, d.abortWrite()
		}
	}

	// unconfirm confirmed block (candidate index unchanged)
	if !d.blocks.Unindex(result.Digest, height, false) {
		return nil, d.abortWrite()
	}

	err = d.commit()
	if nil != err {
		return nil, d.abortWrite()
	}

	err = d.endWrite()
	if nil != err {
		return nil, err
	}
	return block, nil
}

// assemble a block value from a header row and its transaction links
func (d *DataStore) toBlock(header *chainrecord.Header, links []uint64) (*chainrecord.Block, error) {
	txs := make([]*chainrecord.Transaction, len(links))
	for i, link := range links {
		result, found := d.transactions.Get(link)
		if !found {
			d.log.Criticalf("missing transaction row for link: %d", link)
			return nil, fault.ErrTransactionNotFound
		}
		txs[i] = result.Transaction
	}

	return &chainrecord.Block{
		Header:       header,
		Transactions: txs,
	}, nil
}
