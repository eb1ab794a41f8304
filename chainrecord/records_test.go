// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainrecord_test

import (
	"bytes"
	"testing"

	"github.com/trestle-systems/chainstore/blockdigest"
	"github.com/trestle-systems/chainstore/chainrecord"
	"github.com/trestle-systems/chainstore/merkle"
)

func sampleTransaction(n byte) *chainrecord.Transaction {
	return &chainrecord.Transaction{
		Inputs: []chainrecord.Input{
			{
				PreviousTx:    merkle.NewDigest([]byte{n, 1}),
				PreviousIndex: uint32(n),
			},
		},
		Outputs: []chainrecord.Output{
			{
				Value:       1000 + uint64(n),
				AddressHash: chainrecord.AddressHash{n, 0xaa},
			},
		},
		Payload: []byte{n, n, n},
	}
}

func TestTransactionPack(t *testing.T) {
	tx := sampleTransaction(1)

	packed, err := tx.Pack()
	if nil != err {
		t.Fatalf("pack error: %v", err)
	}

	back, err := chainrecord.UnpackTransaction(packed)
	if nil != err {
		t.Fatalf("unpack error: %v", err)
	}

	if len(back.Inputs) != 1 || len(back.Outputs) != 1 {
		t.Fatalf("counts: %d/%d expected 1/1", len(back.Inputs), len(back.Outputs))
	}
	if back.Inputs[0] != tx.Inputs[0] {
		t.Errorf("input: %v expected: %v", back.Inputs[0], tx.Inputs[0])
	}
	if back.Outputs[0] != tx.Outputs[0] {
		t.Errorf("output: %v expected: %v", back.Outputs[0], tx.Outputs[0])
	}
	if !bytes.Equal(back.Payload, tx.Payload) {
		t.Errorf("payload: %x expected: %x", back.Payload, tx.Payload)
	}
	if back.TxId() != tx.TxId() {
		t.Errorf("id changed across pack: %v != %v", back.TxId(), tx.TxId())
	}

	// truncated buffer must be rejected
	_, err = chainrecord.UnpackTransaction(packed[:len(packed)-1])
	if nil == err {
		t.Error("truncated transaction accepted")
	}
}

func TestHeaderPack(t *testing.T) {
	header := &chainrecord.Header{
		Version:       1,
		PreviousBlock: blockdigest.NewDigest([]byte("previous")),
		MerkleRoot:    merkle.NewDigest([]byte("root")),
		Timestamp:     0x5eadbeef,
	}

	record := header.Pack()
	back := record.Unpack()

	if back.Version != header.Version ||
		back.PreviousBlock != header.PreviousBlock ||
		back.MerkleRoot != header.MerkleRoot ||
		back.Timestamp != header.Timestamp {
		t.Errorf("header: %+v expected: %+v", back, header)
	}
	if back.Hash() != header.Hash() {
		t.Error("hash changed across pack")
	}

	_, err := chainrecord.UnpackHeader(record[:chainrecord.HeaderSize-1])
	if nil == err {
		t.Error("truncated header accepted")
	}
}

func TestNewBlock(t *testing.T) {
	txs := []*chainrecord.Transaction{
		sampleTransaction(1),
		sampleTransaction(2),
		sampleTransaction(3),
	}

	previous := blockdigest.NewDigest([]byte("parent"))
	block := chainrecord.NewBlock(1, previous, 12345, txs)

	if block.Header.MerkleRoot != merkle.Root(block.TxIds()) {
		t.Error("merkle root does not cover transaction ids")
	}
	if block.Header.PreviousBlock != previous {
		t.Error("previous block digest lost")
	}
	if block.Hash() != block.Header.Hash() {
		t.Error("block hash is not the header hash")
	}
}

func TestValidationState(t *testing.T) {
	state := chainrecord.StateCandidate

	updated, ok := chainrecord.UpdateValidationState(state, true)
	if !ok {
		t.Fatal("validation of unvalidated header refused")
	}
	if !chainrecord.IsValid(updated) || !chainrecord.IsCandidate(updated) {
		t.Errorf("state: %02x lost bits", updated)
	}

	// a second validation attempt must be refused
	_, ok = chainrecord.UpdateValidationState(updated, false)
	if ok {
		t.Error("revalidation accepted")
	}

	failed, ok := chainrecord.UpdateValidationState(chainrecord.StateCandidate, false)
	if !ok || !chainrecord.IsFailed(failed) {
		t.Errorf("invalidate: %02x ok: %v", failed, ok)
	}
}

func TestConfirmationState(t *testing.T) {
	// candidate a fresh header
	state, ok := chainrecord.UpdateConfirmationState(0, true, true)
	if !ok || !chainrecord.IsCandidate(state) {
		t.Fatalf("candidate: %02x ok: %v", state, ok)
	}

	// confirming requires the valid bit
	_, ok = chainrecord.UpdateConfirmationState(state, true, false)
	if ok {
		t.Error("confirmed an unvalidated header")
	}

	state, _ = chainrecord.UpdateValidationState(state, true)
	confirmed, ok := chainrecord.UpdateConfirmationState(state, true, false)
	if !ok || !chainrecord.IsConfirmed(confirmed) || !chainrecord.IsValid(confirmed) {
		t.Fatalf("confirm: %02x ok: %v", confirmed, ok)
	}

	// unconfirm clears the confirmed bit, validation preserved
	back, ok := chainrecord.UpdateConfirmationState(confirmed, false, false)
	if !ok || chainrecord.IsConfirmed(back) || !chainrecord.IsValid(back) {
		t.Fatalf("unconfirm: %02x ok: %v", back, ok)
	}

	// a failed header cannot become candidate
	failed, _ := chainrecord.UpdateValidationState(0, false)
	_, ok = chainrecord.UpdateConfirmationState(failed, true, true)
	if ok {
		t.Error("candidated a failed header")
	}
}
