// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txdb

import (
	"encoding/binary"

	"github.com/trestle-systems/chainstore/chainrecord"
)

// TxResult - a decoded transaction row
type TxResult struct {
	Transaction *chainrecord.Transaction
	State       byte
	Height      uint64
	Mtp         uint64
	Position    uint32
	Forks       uint32
}

// Get - read and decode the row for a link
func (t *TxDB) Get(link uint64) (*TxResult, bool) {
	reader, found := t.rowReader(link)
	if !found {
		return nil, false
	}
	defer reader.Release()

	row := reader.Buffer()
	if len(row) < packedOffset {
		t.log.Criticalf("corrupt transaction row: %d length: %d", link, len(row))
		return nil, false
	}

	result := &TxResult{
		State:    row[stateOffset],
		Height:   binary.BigEndian.Uint64(row[heightOffset:]),
		Mtp:      binary.BigEndian.Uint64(row[mtpOffset:]),
		Position: binary.BigEndian.Uint32(row[positionOffset:]),
		Forks:    binary.BigEndian.Uint32(row[forksOffset:]),
	}

	tx, err := chainrecord.UnpackTransaction(row[packedOffset:])
	if nil != err {
		t.log.Criticalf("corrupt transaction row: %d: %s", link, err)
		return nil, false
	}
	tx.Metadata.Link = link
	tx.Metadata.Existed = true
	result.Transaction = tx

	return result, true
}

// copy the raw row for a link so it can be modified and rewritten
func (t *TxDB) copyRow(link uint64) ([]byte, bool) {
	reader, found := t.rowReader(link)
	if !found {
		return nil, false
	}
	defer reader.Release()

	row := reader.Buffer()
	duplicate := make([]byte, len(row))
	copy(duplicate, row)
	return duplicate, true
}

// Confirm - mark a transaction confirmed at a chain position
func (t *TxDB) Confirm(link uint64, height uint64, mtp uint64, position uint32) bool {
	row, found := t.copyRow(link)
	if !found {
		return false
	}

	row[stateOffset] = StateConfirmed
	binary.BigEndian.PutUint64(row[heightOffset:], height)
	binary.BigEndian.PutUint64(row[mtpOffset:], mtp)
	binary.BigEndian.PutUint32(row[positionOffset:], position)

	t.writeRow(link, row)
	return true
}

// Unconfirm - return a confirmed transaction to the unconfirmed state
func (t *TxDB) Unconfirm(link uint64) bool {
	row, found := t.copyRow(link)
	if !found {
		return false
	}

	row[stateOffset] = StateUnconfirmed
	binary.BigEndian.PutUint64(row[heightOffset:], 0)
	binary.BigEndian.PutUint64(row[mtpOffset:], 0)
	binary.BigEndian.PutUint32(row[positionOffset:], 0)

	t.writeRow(link, row)
	return true
}

// Candidate - mark a transaction row as candidate
//
// only the row state changes; the outputs the transaction spends are
// not marked
func (t *TxDB) Candidate(link uint64) bool {
	return t.setState(link, StateCandidate)
}

// Uncandidate - reverse a candidate marking
func (t *TxDB) Uncandidate(link uint64) bool {
	return t.setState(link, StateUnconfirmed)
}

func (t *TxDB) setState(link uint64, state byte) bool {
	row, found := t.copyRow(link)
	if !found {
		return false
	}

	// candidate markings never disturb a confirmed row; only an
	// explicit Unconfirm moves a transaction out of confirmed
	if StateConfirmed == row[stateOffset] {
		return true
	}

	row[stateOffset] = state
	t.writeRow(link, row)
	return true
}
