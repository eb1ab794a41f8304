// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package locker_test

import (
	"os"
	"testing"

	"github.com/trestle-systems/chainstore/fault"
	"github.com/trestle-systems/chainstore/locker"
)

const testingDirName = "testing"

func setup(t *testing.T) {
	teardown(t)
	err := os.MkdirAll(testingDirName, 0700)
	if nil != err {
		t.Fatalf("mkdir error: %s", err)
	}
}

func teardown(t *testing.T) {
	_ = os.RemoveAll(testingDirName)
}

func TestDirectoryLock(t *testing.T) {
	setup(t)
	defer teardown(t)

	first := locker.NewDirectoryLock(testingDirName)
	err := first.Lock()
	if nil != err {
		t.Fatalf("lock error: %s", err)
	}

	// a second claim must fail while the first is held
	second := locker.NewDirectoryLock(testingDirName)
	err = second.Lock()
	if fault.ErrStoreLockFailure != err {
		t.Fatalf("second lock error: %v expected: %v", err, fault.ErrStoreLockFailure)
	}

	first.Unlock()

	// after release the directory can be claimed again
	err = second.Lock()
	if nil != err {
		t.Fatalf("lock after unlock error: %s", err)
	}
	second.Unlock()

	// unlock of a non-holder must not remove the file of a holder
	err = first.Lock()
	if nil != err {
		t.Fatalf("relock error: %s", err)
	}
	second.Unlock() // never acquired this time
	err = second.Lock()
	if fault.ErrStoreLockFailure != err {
		t.Fatal("foreign unlock removed a held lock")
	}
	first.Unlock()
}

func TestFlushLock(t *testing.T) {
	setup(t)
	defer teardown(t)

	flush := locker.NewFlushLock(testingDirName)

	if flush.Present() {
		t.Fatal("sentinel present in fresh directory")
	}

	err := flush.Create()
	if nil != err {
		t.Fatalf("create error: %s", err)
	}
	if !flush.Present() {
		t.Fatal("sentinel missing after create")
	}

	// create is idempotent: a crashed write may retry
	err = flush.Create()
	if nil != err {
		t.Fatalf("re-create error: %s", err)
	}

	err = flush.Remove()
	if nil != err {
		t.Fatalf("remove error: %s", err)
	}
	if flush.Present() {
		t.Fatal("sentinel present after remove")
	}

	// removing an absent sentinel is a lock failure
	err = flush.Remove()
	if fault.ErrStoreLockFailure != err {
		t.Fatalf("double remove error: %v expected: %v", err, fault.ErrStoreLockFailure)
	}
}
