// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datastore_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/trestle-systems/chainstore/blockdigest"
	"github.com/trestle-systems/chainstore/chainrecord"
	"github.com/trestle-systems/chainstore/datastore"
)

const (
	testingDirName = "testing"
	storeDirName   = testingDirName + "/store"
)

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func testSettings(indexAddresses bool, flushWrites bool) datastore.Settings {
	return datastore.Settings{
		Directory:      storeDirName,
		IndexAddresses: indexAddresses,
		FlushWrites:    flushWrites,
		CacheCapacity:  100,
	}
}

// create a fresh store with a genesis block holding one transaction
func setup(t *testing.T, indexAddresses bool, flushWrites bool) (*datastore.DataStore, *chainrecord.Block) {
	removeFiles()
	_ = os.MkdirAll(storeDirName, 0700)

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

	genesis := makeBlock(blockdigest.Digest{}, 1, []*chainrecord.Transaction{
		makeTransaction("genesis coinbase", 0x10),
	})

	d := datastore.New(testSettings(indexAddresses, flushWrites))
	err := d.Create(genesis)
	if nil != err {
		t.Fatalf("create error: %s", err)
	}
	return d, genesis
}

func teardown(t *testing.T, d *datastore.DataStore) {
	if nil != d {
		_ = d.Close()
	}
	logger.Finalise()
	removeFiles()
}

// a coinbase style transaction: no inputs, one output
func makeTransaction(payload string, addr byte) *chainrecord.Transaction {
	return &chainrecord.Transaction{
		Outputs: []chainrecord.Output{
			{Value: 50, AddressHash: chainrecord.AddressHash{addr}},
		},
		Payload: []byte(payload),
	}
}

// a spend of output 0 of a previous transaction
func makeSpend(previous *chainrecord.Transaction, payload string, addr byte) *chainrecord.Transaction {
	return &chainrecord.Transaction{
		Inputs: []chainrecord.Input{
			{
				PreviousTx:    previous.TxId(),
				PreviousIndex: 0,
				AddressHash:   previous.Outputs[0].AddressHash,
			},
		},
		Outputs: []chainrecord.Output{
			{Value: 49, AddressHash: chainrecord.AddressHash{addr}},
		},
		Payload: []byte(payload),
	}
}

func makeBlock(parent blockdigest.Digest, timestamp uint64, txs []*chainrecord.Transaction) *chainrecord.Block {
	return chainrecord.NewBlock(1, parent, timestamp, txs)
}

// build a linear chain of count blocks on top of a parent digest,
// one fresh transaction per block
func makeChain(t *testing.T, parent blockdigest.Digest, timestamp uint64, count int) []*chainrecord.Block {
	blocks := make([]*chainrecord.Block, count)
	for i := 0; i < count; i += 1 {
		tx := makeTransaction(fmt.Sprintf("tx %d at %d", i, timestamp), byte(0x20+i))
		blocks[i] = makeBlock(parent, timestamp+uint64(i), []*chainrecord.Transaction{tx})
		parent = blocks[i].Hash()
	}
	return blocks
}

// candidate top and confirmed top must both be dense prefixes; check
// tops and the confirmed ⊆ candidate property
func checkIndexes(t *testing.T, d *datastore.DataStore, candidateTop uint64, confirmedTop uint64) {
	t.Helper()

	top, ok := d.Blocks().Top(true)
	if !ok || top != candidateTop {
		t.Fatalf("candidate top: %d ok: %v expected: %d", top, ok, candidateTop)
	}
	top, ok = d.Blocks().Top(false)
	if !ok || top != confirmedTop {
		t.Fatalf("confirmed top: %d ok: %v expected: %d", top, ok, confirmedTop)
	}

	// density and prefix equality
	for h := uint64(0); h <= candidateTop; h += 1 {
		entry, found := d.Blocks().Get(h, true)
		if !found {
			t.Fatalf("candidate index hole at height: %d", h)
		}
		if h <= confirmedTop {
			confirmed, found := d.Blocks().Get(h, false)
			if !found {
				t.Fatalf("confirmed index hole at height: %d", h)
			}
			if confirmed.Digest != entry.Digest {
				t.Fatalf("index mismatch at height: %d: %v != %v",
					h, confirmed.Digest, entry.Digest)
			}
		}
	}
}
