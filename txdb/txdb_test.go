// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txdb_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/trestle-systems/chainstore/chainrecord"
	"github.com/trestle-systems/chainstore/merkle"
	"github.com/trestle-systems/chainstore/storage"
	"github.com/trestle-systems/chainstore/txdb"
)

const testingDirName = "testing"

func setup(t *testing.T) (*storage.Store, *txdb.TxDB) {
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
	})
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	return s, txdb.New(s, 10)
}

func teardown(t *testing.T, s *storage.Store) {
	s.Finalise()
	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
}

func makeTransaction(payload string) *chainrecord.Transaction {
	return &chainrecord.Transaction{
		Outputs: []chainrecord.Output{
			{Value: 50, AddressHash: chainrecord.AddressHash{0x01}},
		},
		Payload: []byte(payload),
	}
}

func TestStoreAssignsSequentialLinks(t *testing.T) {
	s, db := setup(t)
	defer teardown(t, s)

	first := makeTransaction("first")
	second := makeTransaction("second")

	if !db.Store(first, 0) || !db.Store(second, 0) {
		t.Fatal("store refused")
	}
	if err := db.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}

	if 0 != first.Metadata.Link || 1 != second.Metadata.Link {
		t.Errorf("links: %d %d expected: 0 1", first.Metadata.Link, second.Metadata.Link)
	}
	if first.Metadata.Existed || second.Metadata.Existed {
		t.Error("fresh stores marked existed")
	}

	// storing again keeps the row and reports existence
	repeat := makeTransaction("first")
	if !db.Store(repeat, 0) {
		t.Fatal("repeat store refused")
	}
	if !repeat.Metadata.Existed || 0 != repeat.Metadata.Link {
		t.Errorf("repeat metadata: %+v", repeat.Metadata)
	}

	if !db.Exists(first.TxId()) {
		t.Error("stored transaction does not exist")
	}
	if db.Exists(merkle.NewDigest([]byte("never stored"))) {
		t.Error("phantom transaction exists")
	}
}

func TestConfirmRoundTrip(t *testing.T) {
	s, db := setup(t)
	defer teardown(t, s)

	tx := makeTransaction("confirm me")
	if !db.Store(tx, 0) {
		t.Fatal("store refused")
	}
	link := tx.Metadata.Link

	if !db.Confirm(link, 42, 9000, 3) {
		t.Fatal("confirm refused")
	}
	if err := db.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}

	result, found := db.Get(link)
	if !found {
		t.Fatal("row lost")
	}
	if txdb.StateConfirmed != result.State ||
		42 != result.Height || 9000 != result.Mtp || 3 != result.Position {
		t.Errorf("row: %+v", result)
	}
	if string(result.Transaction.Payload) != "confirm me" {
		t.Error("payload lost")
	}

	if !db.Unconfirm(link) {
		t.Fatal("unconfirm refused")
	}

	result, found = db.Get(link)
	if !found {
		t.Fatal("row lost after unconfirm")
	}
	if txdb.StateUnconfirmed != result.State || 0 != result.Height {
		t.Errorf("row after unconfirm: %+v", result)
	}

	// operations on a missing link fail
	if db.Confirm(999, 1, 1, 0) {
		t.Error("confirm of missing link accepted")
	}
}

func TestCandidateState(t *testing.T) {
	s, db := setup(t)
	defer teardown(t, s)

	tx := makeTransaction("candidate")
	db.Store(tx, 0)
	link := tx.Metadata.Link

	if !db.Candidate(link) {
		t.Fatal("candidate refused")
	}
	result, _ := db.Get(link)
	if txdb.StateCandidate != result.State {
		t.Errorf("state: %d expected candidate", result.State)
	}

	if !db.Uncandidate(link) {
		t.Fatal("uncandidate refused")
	}
	result, _ = db.Get(link)
	if txdb.StateUnconfirmed != result.State {
		t.Errorf("state: %d expected unconfirmed", result.State)
	}

	// candidate markings never disturb a confirmed row
	db.Confirm(link, 7, 70, 0)
	db.Candidate(link)
	result, _ = db.Get(link)
	if txdb.StateConfirmed != result.State || 7 != result.Height {
		t.Errorf("confirmed row disturbed: %+v", result)
	}
}

func TestPrevoutLinks(t *testing.T) {
	s, db := setup(t)
	defer teardown(t, s)

	funding := makeTransaction("funding")
	db.Store(funding, 0)

	spend := &chainrecord.Transaction{
		Inputs: []chainrecord.Input{
			{
				PreviousTx:  funding.TxId(),
				AddressHash: chainrecord.AddressHash{0x02},
			},
		},
		Outputs: []chainrecord.Output{
			{Value: 49, AddressHash: chainrecord.AddressHash{0x03}},
		},
	}
	db.Store(spend, 0)

	if spend.Inputs[0].PrevoutLink != funding.Metadata.Link {
		t.Errorf("prevout link: %d expected: %d",
			spend.Inputs[0].PrevoutLink, funding.Metadata.Link)
	}
}
