// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txdb

import (
	"encoding/binary"

	"github.com/trestle-systems/chainstore/chainrecord"
	"github.com/trestle-systems/chainstore/merkle"
)

// Exists - check if a transaction with this id has a row
func (t *TxDB) Exists(txId merkle.Digest) bool {
	return t.ids.Has(txId[:])
}

// Store - store a transaction if missing and always set its link metadata
//
// an already stored transaction is not modified; its metadata gets the
// stored link and the existed flag
func (t *TxDB) Store(tx *chainrecord.Transaction, forks uint32) bool {
	txId := tx.TxId()

	if link, found := t.ids.GetN(txId[:]); found {
		tx.Metadata.Link = link
		tx.Metadata.Existed = true
		return true
	}

	packed, err := tx.Pack()
	if nil != err {
		t.log.Errorf("pack error: %s", err)
		return false
	}

	link, _ := t.next.GetN(nextLinkKey) // zero on first store

	row := make([]byte, packedOffset+len(packed))
	row[stateOffset] = StateUnconfirmed
	binary.BigEndian.PutUint32(row[forksOffset:], forks)
	copy(row[packedOffset:], packed)

	// resolve prevout links for address indexing
	for i := range tx.Inputs {
		if prevout, found := t.ids.GetN(tx.Inputs[i].PreviousTx[:]); found {
			tx.Inputs[i].PrevoutLink = prevout
		}
	}

	t.ids.PutN(txId[:], link)
	t.writeRow(link, row)
	t.next.PutN(nextLinkKey, link+1)

	tx.Metadata.Link = link
	tx.Metadata.Existed = false
	return true
}

// StoreAll - store any missing transactions of a block
//
// sets link metadata for every transaction, stored or existing
func (t *TxDB) StoreAll(txs []*chainrecord.Transaction) bool {
	for _, tx := range txs {
		if !t.Store(tx, 0) {
			return false
		}
	}
	return true
}

// GetLink - resolve a transaction id to its row link
func (t *TxDB) GetLink(txId merkle.Digest) (uint64, bool) {
	return t.ids.GetN(txId[:])
}
