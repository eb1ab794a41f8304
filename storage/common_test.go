// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/trestle-systems/chainstore/storage"
)

// test store directory
const (
	testingDirName = "testing"
	storeDirName   = testingDirName + "/store"
)

// common test setup routines

// remove all files created by test
func removeFiles() {
	os.RemoveAll(testingDirName)
}

// configure for testing
func setup(t *testing.T, indexAddresses bool) *storage.Store {
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

	s, err := storage.Initialise(storeDirName, storage.Options{
		IndexAddresses: indexAddresses,
		CreateIfAbsent: true,
	})
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	return s
}

// post test cleanup
func teardown(t *testing.T, s *storage.Store) {
	if nil != s {
		s.Finalise()
	}
	logger.Finalise()
	removeFiles()
}

// commit one database batch or fail the test
func commit(t *testing.T, s *storage.Store, database string) {
	err := s.Access(database).Commit()
	if nil != err {
		t.Fatalf("commit %s error: %s", database, err)
	}
}
