// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainrecord

import (
	"encoding/binary"

	"github.com/trestle-systems/chainstore/fault"
	"github.com/trestle-systems/chainstore/merkle"
)

// AddressHashLength - bytes in an address hash
//
// address derivation is out of scope; the hash arrives fully formed
const AddressHashLength = 20

// AddressHash - key for payment history rows
type AddressHash [AddressHashLength]byte

// maximum counts in a packed transaction
// limited by uint16 fields
const (
	MaximumInputs  = 10000
	MaximumOutputs = 10000
	MaximumPayload = 0xffff
)

// Input - one spend of a previous output
type Input struct {
	PreviousTx    merkle.Digest `json:"previousTx"`
	PreviousIndex uint32        `json:"previousIndex"`
	AddressHash   AddressHash   `json:"addressHash"`

	// PrevoutLink - table link of the spent transaction row,
	// populated by the transaction table during store
	PrevoutLink uint64 `json:"-"`
}

// Output - one payment destination
type Output struct {
	Value       uint64      `json:"value,string"`
	AddressHash AddressHash `json:"addressHash"`
}

// TransactionMetadata - table-populated state attached to a transaction value
type TransactionMetadata struct {
	Link    uint64 // row id assigned by the transaction table
	Existed bool   // a row with this id was already stored
}

// Transaction - the unpacked transaction structure
type Transaction struct {
	Inputs  []Input  `json:"inputs"`
	Outputs []Output `json:"outputs"`
	Payload []byte   `json:"payload"`

	Metadata TransactionMetadata `json:"-"`

	digest *merkle.Digest // cached by TxId
}

// packed field sizes
const (
	inputSize  = merkle.DigestLength + 4 + AddressHashLength
	outputSize = 8 + AddressHashLength
)

// Pack - pack a transaction into its canonical byte form
//
// layout: inputCount:2 [inputs] outputCount:2 [outputs] payloadLength:2 payload
func (tx *Transaction) Pack() ([]byte, error) {
	if len(tx.Inputs) > MaximumInputs ||
		len(tx.Outputs) > MaximumOutputs ||
		len(tx.Payload) > MaximumPayload {
		return nil, fault.ErrInvalidCount
	}

	size := 2 + len(tx.Inputs)*inputSize + 2 + len(tx.Outputs)*outputSize + 2 + len(tx.Payload)
	buffer := make([]byte, 0, size)

	counter := make([]byte, 2)

	binary.LittleEndian.PutUint16(counter, uint16(len(tx.Inputs)))
	buffer = append(buffer, counter...)
	for _, in := range tx.Inputs {
		buffer = append(buffer, in.PreviousTx[:]...)
		index := make([]byte, 4)
		binary.LittleEndian.PutUint32(index, in.PreviousIndex)
		buffer = append(buffer, index...)
		buffer = append(buffer, in.AddressHash[:]...)
	}

	binary.LittleEndian.PutUint16(counter, uint16(len(tx.Outputs)))
	buffer = append(buffer, counter...)
	for _, out := range tx.Outputs {
		value := make([]byte, 8)
		binary.LittleEndian.PutUint64(value, out.Value)
		buffer = append(buffer, value...)
		buffer = append(buffer, out.AddressHash[:]...)
	}

	binary.LittleEndian.PutUint16(counter, uint16(len(tx.Payload)))
	buffer = append(buffer, counter...)
	buffer = append(buffer, tx.Payload...)

	return buffer, nil
}

// UnpackTransaction - turn a canonical byte form back into a transaction
func UnpackTransaction(buffer []byte) (*Transaction, error) {
	tx := &Transaction{}

	if len(buffer) < 2 {
		return nil, fault.ErrInvalidCount
	}
	inputCount := int(binary.LittleEndian.Uint16(buffer))
	buffer = buffer[2:]

	if len(buffer) < inputCount*inputSize {
		return nil, fault.ErrInvalidCount
	}
	tx.Inputs = make([]Input, inputCount)
	for i := 0; i < inputCount; i += 1 {
		copy(tx.Inputs[i].PreviousTx[:], buffer[:merkle.DigestLength])
		tx.Inputs[i].PreviousIndex = binary.LittleEndian.Uint32(buffer[merkle.DigestLength:])
		copy(tx.Inputs[i].AddressHash[:], buffer[merkle.DigestLength+4:inputSize])
		buffer = buffer[inputSize:]
	}

	if len(buffer) < 2 {
		return nil, fault.ErrInvalidCount
	}
	outputCount := int(binary.LittleEndian.Uint16(buffer))
	buffer = buffer[2:]

	if len(buffer) < outputCount*outputSize {
		return nil, fault.ErrInvalidCount
	}
	tx.Outputs = make([]Output, outputCount)
	for i := 0; i < outputCount; i += 1 {
		tx.Outputs[i].Value = binary.LittleEndian.Uint64(buffer)
		copy(tx.Outputs[i].AddressHash[:], buffer[8:outputSize])
		buffer = buffer[outputSize:]
	}

	if len(buffer) < 2 {
		return nil, fault.ErrInvalidCount
	}
	payloadLength := int(binary.LittleEndian.Uint16(buffer))
	buffer = buffer[2:]

	if len(buffer) != payloadLength {
		return nil, fault.ErrInvalidCount
	}
	if payloadLength > 0 {
		tx.Payload = make([]byte, payloadLength)
		copy(tx.Payload, buffer)
	}

	return tx, nil
}

// TxId - the digest identifying this transaction
//
// computed once and cached; a transaction must not be modified after
// its id has been taken
func (tx *Transaction) TxId() merkle.Digest {
	if nil == tx.digest {
		packed, err := tx.Pack()
		if nil != err {
			// Pack only fails for counts above the packing limits
			panic("chainrecord.TxId: " + err.Error())
		}
		digest := merkle.NewDigest(packed)
		tx.digest = &digest
	}
	return *tx.digest
}
