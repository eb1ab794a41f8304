// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/trestle-systems/chainstore/fault"
)

// Transaction - the store-wide critical section
//
// Begin marks every database access as in use so a second writer is
// detected immediately.  The individual table databases commit their
// own batches during the critical section; End or Abort releases the
// claim.
type Transaction struct {
	sync.Mutex
	inUse    bool
	accesses []Access
}

func newTransaction(accesses []Access) *Transaction {
	return &Transaction{
		inUse:    false,
		accesses: accesses,
	}
}

// Begin - claim every database for this writer
func (t *Transaction) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.ErrDoubleLockedTransaction
	}

	for _, access := range t.accesses {
		err := access.Begin()
		if nil != err {
			return fault.ErrDoubleLockedTransaction
		}
	}

	t.inUse = true
	return nil
}

// Commit - write every database batch in dependency order
func (t *Transaction) Commit() error {
	for _, access := range t.accesses {
		err := access.Commit()
		if nil != err {
			return err
		}
	}
	return nil
}

// End - release the claim keeping committed data
func (t *Transaction) End() {
	t.Lock()
	defer t.Unlock()

	for _, access := range t.accesses {
		access.End()
	}
	t.inUse = false
}

// Abort - drop uncommitted operations and release the claim
func (t *Transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	for _, access := range t.accesses {
		access.Abort()
	}
	t.inUse = false
}

// InUse - check whether a writer holds the critical section
func (t *Transaction) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}
