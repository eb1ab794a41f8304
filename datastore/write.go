// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datastore

import (
	"github.com/trestle-systems/chainstore/fault"
)

// beginWrite - enter the write barrier
//
// creates the persistent flush lock first when per-write flushing is
// enabled, then claims the store-wide batch session.  Any failure is
// a store lock failure.
func (d *DataStore) beginWrite() error {
	if d.settings.FlushWrites {
		err := d.flushLock.Create()
		if nil != err {
			d.log.Critical("begin write: flush lock create failed")
			return fault.ErrStoreLockFailure
		}
	}

	trx, err := d.store.NewTransaction()
	if nil != err {
		d.log.Criticalf("begin write: %s", err)
		if d.settings.FlushWrites {
			_ = d.flushLock.Remove()
		}
		return fault.ErrStoreLockFailure
	}

	d.trx = trx
	return nil
}

// endWrite - leave the write barrier after success
//
// flushes every table and only then removes the flush lock; a failure
// leaves the flush lock on disk, quarantining the store
func (d *DataStore) endWrite() error {
	if d.settings.FlushWrites {
		err := d.flush()
		if nil != err {
			d.log.Criticalf("end write: flush failed: %s", err)
			return fault.ErrStoreLockFailure
		}
		err = d.flushLock.Remove()
		if nil != err {
			d.log.Critical("end write: flush lock remove failed")
			return fault.ErrStoreLockFailure
		}
	}

	d.trx.End()
	d.trx = nil
	return nil
}

// abortWrite - best-effort end of write after a failed primitive
//
// drops the uncommitted batches and reports the inner failure; if the
// barrier itself cannot be ended the flush lock stays and the result
// is a store lock failure instead
func (d *DataStore) abortWrite() error {
	d.trx.Abort()
	d.trx = nil
	d.transactions.ResetCache()

	if d.settings.FlushWrites {
		err := d.flushLock.Remove()
		if nil != err {
			d.log.Critical("abort write: flush lock remove failed")
			return fault.ErrStoreLockFailure
		}
	}
	return fault.ErrOperationFailed
}
