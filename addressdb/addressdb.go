// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addressdb

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/trestle-systems/chainstore/chainrecord"
	"github.com/trestle-systems/chainstore/merkle"
	"github.com/trestle-systems/chainstore/storage"
)

// PaymentRecord - one payment history entry for an address
type PaymentRecord struct {
	TxLink   uint64
	IOIndex  uint32
	Value    uint64 // output value, or the prevout link for a spend
	IsOutput bool
}

// payment row layout
const (
	txLinkOffset   = 0
	ioIndexOffset  = txLinkOffset + 8
	valueOffset    = ioIndexOffset + 4
	isOutputOffset = valueOffset + 8

	rowSize = isOutputOffset + 1
)

// the address subsystem databases in commit order: rows before counts
// so a count never refers to a missing row
var commitOrder = []string{
	"address_rows",
	"address_table",
}

// AddressDB - the address subsystem of one store
type AddressDB struct {
	log *logger.L

	counts *storage.PoolHandle
	rows   *storage.PoolHandle

	accesses []storage.Access
}

// New - attach the address subsystem to an open store
func New(store *storage.Store) *AddressDB {
	accesses := make([]storage.Access, len(commitOrder))
	for i, name := range commitOrder {
		accesses[i] = store.Access(name)
	}

	return &AddressDB{
		log:      logger.New("addressdb"),
		counts:   store.Pool.AddressCounts,
		rows:     store.Pool.AddressRows,
		accesses: accesses,
	}
}

// Commit - write the batches of all address subsystem databases
func (a *AddressDB) Commit() error {
	for _, access := range a.accesses {
		err := access.Commit()
		if nil != err {
			a.log.Errorf("commit error: %s", err)
			return err
		}
	}
	return nil
}

// Flush - force all address subsystem journals to stable storage
func (a *AddressDB) Flush() error {
	for _, access := range a.accesses {
		err := access.Flush()
		if nil != err {
			a.log.Errorf("flush error: %s", err)
			return err
		}
	}
	return nil
}

// rowKey - hash ++ count
func rowKey(hash chainrecord.AddressHash, count uint64) []byte {
	key := make([]byte, chainrecord.AddressHashLength+8)
	copy(key, hash[:])
	binary.BigEndian.PutUint64(key[chainrecord.AddressHashLength:], count)
	return key
}

func (record *PaymentRecord) pack() []byte {
	row := make([]byte, rowSize)
	binary.BigEndian.PutUint64(row[txLinkOffset:], record.TxLink)
	binary.BigEndian.PutUint32(row[ioIndexOffset:], record.IOIndex)
	binary.BigEndian.PutUint64(row[valueOffset:], record.Value)
	if record.IsOutput {
		row[isOutputOffset] = 1
	}
	return row
}

func unpackPayment(row []byte) (PaymentRecord, bool) {
	if rowSize != len(row) {
		return PaymentRecord{}, false
	}
	return PaymentRecord{
		TxLink:   binary.BigEndian.Uint64(row[txLinkOffset:]),
		IOIndex:  binary.BigEndian.Uint32(row[ioIndexOffset:]),
		Value:    binary.BigEndian.Uint64(row[valueOffset:]),
		IsOutput: 1 == row[isOutputOffset],
	}, true
}

// Store - append one payment record to an address history
func (a *AddressDB) Store(hash chainrecord.AddressHash, record *PaymentRecord) {
	count, _ := a.counts.GetN(hash[:]) // zero for a new address

	a.rows.Put(rowKey(hash, count), record.pack())
	a.counts.PutN(hash[:], count+1)
}

// Index - derive and append the payment records of a transaction
//
// spends first, then outputs; a spend with no previous transaction
// (coinbase) creates no record
func (a *AddressDB) Index(tx *chainrecord.Transaction) {
	link := tx.Metadata.Link

	for i, in := range tx.Inputs {
		if (merkle.Digest{}) == in.PreviousTx {
			continue
		}
		a.Store(in.AddressHash, &PaymentRecord{
			TxLink:   link,
			IOIndex:  uint32(i),
			Value:    in.PrevoutLink,
			IsOutput: false,
		})
	}

	for i, out := range tx.Outputs {
		a.Store(out.AddressHash, &PaymentRecord{
			TxLink:   link,
			IOIndex:  uint32(i),
			Value:    out.Value,
			IsOutput: true,
		})
	}
}

// History - all payment records of an address in append order
func (a *AddressDB) History(hash chainrecord.AddressHash) []PaymentRecord {
	count, found := a.counts.GetN(hash[:])
	if !found {
		return nil
	}

	history := make([]PaymentRecord, 0, count)
	for i := uint64(0); i < count; i += 1 {
		row := a.rows.Get(rowKey(hash, i))
		record, ok := unpackPayment(row)
		if !ok {
			a.log.Criticalf("corrupt payment row %d for address: %x", i, hash)
			break
		}
		history = append(history, record)
	}
	return history
}
