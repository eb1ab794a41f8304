// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datastore_test

import (
	"testing"

	"github.com/trestle-systems/chainstore/chainrecord"
	"github.com/trestle-systems/chainstore/datastore"
	"github.com/trestle-systems/chainstore/fault"
	"github.com/trestle-systems/chainstore/txdb"
)

// header-only fast sync: candidate advances, confirmed stays at
// genesis, nothing is popped
func TestHeaderFastSync(t *testing.T) {
	d, genesis := setup(t, false, false)
	defer teardown(t, d)

	chain := makeChain(t, genesis.Hash(), 100, 3)
	headers := make([]*chainrecord.Header, len(chain))
	for i, block := range chain {
		headers[i] = block.Header
	}

	fork := datastore.ForkPoint{Height: 0, Hash: genesis.Hash()}
	outgoing, err := d.ReorganizeHeaders(fork, headers)
	if nil != err {
		t.Fatalf("reorganize error: %s", err)
	}
	if 0 != len(outgoing) {
		t.Fatalf("outgoing: %d headers expected: none", len(outgoing))
	}

	top, ok := d.Blocks().Top(true)
	if !ok || 3 != top {
		t.Fatalf("candidate top: %d ok: %v expected: 3", top, ok)
	}
	top, ok = d.Blocks().Top(false)
	if !ok || 0 != top {
		t.Fatalf("confirmed top: %d ok: %v expected: 0", top, ok)
	}
}

// a mismatched fork point refuses the reorganization
func TestForkPointMismatch(t *testing.T) {
	d, genesis := setup(t, false, false)
	defer teardown(t, d)

	chain := makeChain(t, genesis.Hash(), 100, 1)
	fork := datastore.ForkPoint{Height: 0, Hash: chain[0].Hash()} // not the indexed entry

	_, err := d.ReorganizeHeaders(fork, []*chainrecord.Header{chain[0].Header})
	if fault.ErrOperationFailed != err {
		t.Fatalf("reorganize error: %v expected: %v", err, fault.ErrOperationFailed)
	}
}

// full reorganization of depth 2: out with the old chain, in with the
// longer fork
func TestReorganizeDepthTwo(t *testing.T) {
	d, genesis := setup(t, false, false)
	defer teardown(t, d)

	// confirmed chain [G, A, B]
	oldChain := makeChain(t, genesis.Hash(), 200, 2)
	for i, block := range oldChain {
		err := d.Push(block, uint64(i+1), 200+uint64(i))
		if nil != err {
			t.Fatalf("push %d error: %s", i, err)
		}
	}
	checkIndexes(t, d, 2, 2)

	// replacement fork [A', B', C']
	newChain := makeChain(t, genesis.Hash(), 300, 3)
	newHeaders := make([]*chainrecord.Header, len(newChain))
	for i, block := range newChain {
		newHeaders[i] = block.Header
	}

	fork := datastore.ForkPoint{Height: 0, Hash: genesis.Hash()}

	// candidate chain reorganizes first (header sync runs ahead)
	outgoingHeaders, err := d.ReorganizeHeaders(fork, newHeaders)
	if nil != err {
		t.Fatalf("header reorganize error: %s", err)
	}
	if 2 != len(outgoingHeaders) {
		t.Fatalf("outgoing headers: %d expected: 2", len(outgoingHeaders))
	}
	// ascending height order
	if outgoingHeaders[0].Hash() != oldChain[0].Hash() ||
		outgoingHeaders[1].Hash() != oldChain[1].Hash() {
		t.Fatal("outgoing headers not in height order")
	}

	// populate and promote the replacement blocks
	for i, block := range newChain {
		err = d.Update(block, uint64(i+1))
		if nil != err {
			t.Fatalf("update %d error: %s", i, err)
		}
		err = d.Candidate(block)
		if nil != err {
			t.Fatalf("candidate %d error: %s", i, err)
		}
	}

	// confirmed chain follows
	outgoing, err := d.ReorganizeBlocks(fork, newChain)
	if nil != err {
		t.Fatalf("block reorganize error: %s", err)
	}
	if 2 != len(outgoing) {
		t.Fatalf("outgoing blocks: %d expected: 2", len(outgoing))
	}
	if outgoing[0].Hash() != oldChain[0].Hash() ||
		outgoing[1].Hash() != oldChain[1].Hash() {
		t.Fatal("outgoing blocks not in height order")
	}

	checkIndexes(t, d, 3, 3)

	// replacement transactions confirmed at their new heights
	for i, block := range newChain {
		result, found := d.Transactions().Get(block.Transactions[0].Metadata.Link)
		if !found {
			t.Fatalf("replacement transaction %d lost", i)
		}
		if txdb.StateConfirmed != result.State || uint64(i+1) != result.Height {
			t.Fatalf("replacement transaction %d: %+v", i, result)
		}
	}

	// popped transactions back to unconfirmed, rows still present
	for i, block := range oldChain {
		result, found := d.Transactions().Get(block.Transactions[0].Metadata.Link)
		if !found {
			t.Fatalf("popped transaction %d deleted", i)
		}
		if txdb.StateUnconfirmed != result.State {
			t.Fatalf("popped transaction %d state: %d", i, result.State)
		}
	}
}

// reorganize round trip restores the original chain
func TestReorganizeRoundTrip(t *testing.T) {
	d, genesis := setup(t, false, false)
	defer teardown(t, d)

	chain := makeChain(t, genesis.Hash(), 400, 2)
	for i, block := range chain {
		err := d.Push(block, uint64(i+1), 400+uint64(i))
		if nil != err {
			t.Fatalf("push %d error: %s", i, err)
		}
	}

	fork := datastore.ForkPoint{Height: 0, Hash: genesis.Hash()}

	// out with the chain
	out1, err := d.ReorganizeBlocks(fork, nil)
	if nil != err {
		t.Fatalf("first reorganize error: %s", err)
	}
	if 2 != len(out1) {
		t.Fatalf("first outgoing: %d expected: 2", len(out1))
	}
	top, ok := d.Blocks().Top(false)
	if !ok || 0 != top {
		t.Fatalf("confirmed top: %d ok: %v expected: 0", top, ok)
	}

	// and back in with exactly what came out
	out2, err := d.ReorganizeBlocks(fork, out1)
	if nil != err {
		t.Fatalf("second reorganize error: %s", err)
	}
	if 0 != len(out2) {
		t.Fatalf("second outgoing: %d expected: none", len(out2))
	}

	checkIndexes(t, d, 2, 2)
	for i, block := range chain {
		entry, found := d.Blocks().Get(uint64(i+1), false)
		if !found || entry.Digest != block.Hash() {
			t.Fatalf("height %d not restored", i+1)
		}
	}
}

// the incoming length may not overflow past the fork height
func TestReorganizeOverflow(t *testing.T) {
	d, genesis := setup(t, false, false)
	defer teardown(t, d)

	fork := datastore.ForkPoint{Height: ^uint64(0) - 1, Hash: genesis.Hash()}
	incoming := makeChain(t, genesis.Hash(), 500, 2)

	_, err := d.ReorganizeBlocks(fork, incoming)
	if fault.ErrOperationFailed != err {
		t.Fatalf("overflow error: %v expected: %v", err, fault.ErrOperationFailed)
	}
}
