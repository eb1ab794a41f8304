// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package locker

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/trestle-systems/chainstore/fault"
)

// lock file names inside the store directory
const (
	processLockFile = "chainstore.lck"
	flushLockFile   = "flush_lock"
)

// DirectoryLock - exclusive process claim on a store directory
type DirectoryLock struct {
	lockFile string
	created  bool
}

// NewDirectoryLock - create an unheld lock for a directory
func NewDirectoryLock(directory string) *DirectoryLock {
	return &DirectoryLock{
		lockFile: filepath.Join(directory, processLockFile),
	}
}

// Lock - take the exclusive claim
//
// fails if another process already holds the directory or if a stale
// lock file was left behind by a crash
func (d *DirectoryLock) Lock() error {
	if d.created {
		return fault.ErrAlreadyInitialised
	}

	lf, err := os.OpenFile(d.lockFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
	if nil != err {
		return fault.ErrStoreLockFailure
	}
	fmt.Fprintf(lf, "%d\n", os.Getpid())
	lf.Close()

	d.created = true
	return nil
}

// Unlock - remove the claim
//
// only removes the lock file if this instance created it
func (d *DirectoryLock) Unlock() {
	if d.created {
		os.Remove(d.lockFile)
		d.created = false
	}
}

// FlushLock - the persistent crashed-write sentinel
type FlushLock struct {
	directory string
	lockFile  string
}

// NewFlushLock - create a handle for the sentinel of a directory
func NewFlushLock(directory string) *FlushLock {
	return &FlushLock{
		directory: directory,
		lockFile:  filepath.Join(directory, flushLockFile),
	}
}

// Present - probe for the sentinel
func (f *FlushLock) Present() bool {
	_, err := os.Stat(f.lockFile)
	return nil == err
}

// Create - write the sentinel and force it to stable storage
func (f *FlushLock) Create() error {
	lf, err := os.OpenFile(f.lockFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if nil != err {
		return fault.ErrStoreLockFailure
	}
	err = lf.Sync()
	lf.Close()
	if nil != err {
		return fault.ErrStoreLockFailure
	}
	return f.syncDirectory()
}

// Remove - delete the sentinel and force the removal to stable storage
func (f *FlushLock) Remove() error {
	err := os.Remove(f.lockFile)
	if nil != err {
		return fault.ErrStoreLockFailure
	}
	return f.syncDirectory()
}

// the parent directory entry must reach the disk or a crash could
// resurrect or lose the sentinel
func (f *FlushLock) syncDirectory() error {
	dir, err := os.Open(f.directory)
	if nil != err {
		return fault.ErrStoreLockFailure
	}
	err = dir.Sync()
	dir.Close()
	if nil != err {
		return fault.ErrStoreLockFailure
	}
	return nil
}
