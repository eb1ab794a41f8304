// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/trestle-systems/chainstore/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrProcessOne  = fault.ProcessError("process one")
)

// test that the various error classes can be distinguished
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		notFound bool
		process  bool
	}{
		{ErrExistsOne, true, false, false, false},
		{ErrInvalidOne, false, true, false, false},
		{ErrNotFoundOne, false, false, true, false},
		{ErrProcessOne, false, false, false, true},
		{fault.ErrDuplicateTransaction, true, false, false, false},
		{fault.ErrValidationFailed, false, true, false, false},
		{fault.ErrBlockNotFound, false, false, true, false},
		{fault.ErrStoreLockFailure, false, false, false, true},
	}

	for i, item := range errorList {
		if fault.IsErrExists(item.err) != item.exists {
			t.Errorf("%d: exists class mismatch for: %v", i, item.err)
		}
		if fault.IsErrInvalid(item.err) != item.invalid {
			t.Errorf("%d: invalid class mismatch for: %v", i, item.err)
		}
		if fault.IsErrNotFound(item.err) != item.notFound {
			t.Errorf("%d: not found class mismatch for: %v", i, item.err)
		}
		if fault.IsErrProcess(item.err) != item.process {
			t.Errorf("%d: process class mismatch for: %v", i, item.err)
		}
	}
}

// test the persistent code round trip
func TestCodes(t *testing.T) {
	errorList := []error{
		nil,
		fault.ErrValidationFailed,
		fault.ErrInvalidBlockHeader,
		fault.ErrOperationFailed,
		fault.ErrBlockNotFound,
		fault.ErrDuplicateTransaction,
	}

	for i, e := range errorList {
		code := fault.Code(e)
		if nil == e && 0 != code {
			t.Errorf("%d: success must map to code zero, got: %d", i, code)
		}
		back := fault.ByCode(code)
		if back != e {
			t.Errorf("%d: code round trip: %v → %d → %v", i, e, code, back)
		}
	}

	// an error outside the table must not persist as success
	if 0 == fault.Code(ErrProcessOne) {
		t.Error("unlisted error mapped to success")
	}

	// a code from a future table version must map to a failure
	if nil == fault.ByCode(65535) {
		t.Error("future code mapped to success")
	}
}
