// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addressdb_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/trestle-systems/chainstore/addressdb"
	"github.com/trestle-systems/chainstore/chainrecord"
	"github.com/trestle-systems/chainstore/merkle"
	"github.com/trestle-systems/chainstore/storage"
)

const testingDirName = "testing"

func setup(t *testing.T) (*storage.Store, *addressdb.AddressDB) {
	_ = os.RemoveAll(testingDirName)
	_ = os.MkdirAll(testingDirName+"/store", 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	s, err := storage.Initialise(testingDirName+"/store", storage.Options{
		CreateIfAbsent: true,
		IndexAddresses: true,
	})
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	return s, addressdb.New(s)
}

func teardown(t *testing.T, s *storage.Store) {
	s.Finalise()
	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
}

func TestStoreHistory(t *testing.T) {
	s, db := setup(t)
	defer teardown(t, s)

	address := chainrecord.AddressHash{0xaa}

	db.Store(address, &addressdb.PaymentRecord{TxLink: 1, IOIndex: 0, Value: 100, IsOutput: true})
	db.Store(address, &addressdb.PaymentRecord{TxLink: 2, IOIndex: 1, Value: 1, IsOutput: false})
	if err := db.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}

	history := db.History(address)
	if 2 != len(history) {
		t.Fatalf("history length: %d expected: 2", len(history))
	}
	if history[0].TxLink != 1 || !history[0].IsOutput || 100 != history[0].Value {
		t.Errorf("first record: %+v", history[0])
	}
	if history[1].TxLink != 2 || history[1].IsOutput {
		t.Errorf("second record: %+v", history[1])
	}

	// unknown address has no history
	if nil != db.History(chainrecord.AddressHash{0xbb}) {
		t.Error("phantom history")
	}
}

func TestIndexTransaction(t *testing.T) {
	s, db := setup(t)
	defer teardown(t, s)

	spender := chainrecord.AddressHash{0x01}
	receiver := chainrecord.AddressHash{0x02}

	tx := &chainrecord.Transaction{
		Inputs: []chainrecord.Input{
			{
				PreviousTx:  merkle.NewDigest([]byte("funding")),
				AddressHash: spender,
				PrevoutLink: 5,
			},
			{
				// coinbase style input: no previous transaction
				AddressHash: spender,
			},
		},
		Outputs: []chainrecord.Output{
			{Value: 90, AddressHash: receiver},
		},
	}
	tx.Metadata.Link = 11

	db.Index(tx)
	if err := db.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}

	spends := db.History(spender)
	if 1 != len(spends) {
		t.Fatalf("spend records: %d expected: 1 (coinbase input skipped)", len(spends))
	}
	if spends[0].IsOutput || 11 != spends[0].TxLink || 5 != spends[0].Value {
		t.Errorf("spend record: %+v", spends[0])
	}

	outputs := db.History(receiver)
	if 1 != len(outputs) {
		t.Fatalf("output records: %d expected: 1", len(outputs))
	}
	if !outputs[0].IsOutput || 90 != outputs[0].Value || 11 != outputs[0].TxLink {
		t.Errorf("output record: %+v", outputs[0])
	}
}
