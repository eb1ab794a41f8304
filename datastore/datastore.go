// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datastore

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/trestle-systems/chainstore/addressdb"
	"github.com/trestle-systems/chainstore/background"
	"github.com/trestle-systems/chainstore/blockdb"
	"github.com/trestle-systems/chainstore/blockdigest"
	"github.com/trestle-systems/chainstore/chainrecord"
	"github.com/trestle-systems/chainstore/fault"
	"github.com/trestle-systems/chainstore/locker"
	"github.com/trestle-systems/chainstore/merkle"
	"github.com/trestle-systems/chainstore/storage"
	"github.com/trestle-systems/chainstore/txdb"
)

// BlockTable - the block subsystem contract
type BlockTable interface {
	Commit() error
	Flush() error
	Store(header *chainrecord.Header, height uint64, mtp uint64)
	Update(block *chainrecord.Block) bool
	Validate(digest blockdigest.Digest, code error) bool
	Index(digest blockdigest.Digest, height uint64, candidate bool) bool
	Unindex(digest blockdigest.Digest, height uint64, candidate bool) bool
	Top(candidate bool) (uint64, bool)
	Get(height uint64, candidate bool) (*blockdb.BlockResult, bool)
	GetByHash(digest blockdigest.Digest) (*blockdb.BlockResult, bool)
	FetchMetadata(header *chainrecord.Header)
}

// TransactionTable - the transaction subsystem contract
type TransactionTable interface {
	Commit() error
	Flush() error
	Exists(txId merkle.Digest) bool
	Store(tx *chainrecord.Transaction, forks uint32) bool
	StoreAll(txs []*chainrecord.Transaction) bool
	Confirm(link uint64, height uint64, mtp uint64, position uint32) bool
	Unconfirm(link uint64) bool
	Candidate(link uint64) bool
	Uncandidate(link uint64) bool
	Get(link uint64) (*txdb.TxResult, bool)
	ResetCache()
}

// AddressTable - the address subsystem contract
type AddressTable interface {
	Commit() error
	Flush() error
	Index(tx *chainrecord.Transaction)
}

// DataStore - the coordinated chain store
type DataStore struct {
	sync.Mutex // the write mutex

	log      *logger.L
	settings Settings

	dirLock   *locker.DirectoryLock
	flushLock *locker.FlushLock

	store        *storage.Store
	blocks       BlockTable
	transactions TransactionTable
	addresses    AddressTable // nil when address indexing is disabled

	trx     *storage.Transaction
	flusher *background.T
	closed  bool
}

// New - a closed store handle for a settings set
func New(settings Settings) *DataStore {
	log := logger.New("datastore")
	log.Debugf("buckets: block [%d], transaction [%d], address [%d]",
		settings.BlockTableBuckets, settings.TransactionTableBuckets,
		settings.AddressTableBuckets)

	return &DataStore{
		log:       log,
		settings:  settings,
		dirLock:   locker.NewDirectoryLock(settings.Directory),
		flushLock: locker.NewFlushLock(settings.Directory),
		closed:    true,
	}
}

func (d *DataStore) storageOptions(create bool) storage.Options {
	return storage.Options{
		IndexAddresses: d.settings.IndexAddresses,
		CreateIfAbsent: create,
		WriteBuffer:    d.settings.FileGrowthRate,
		Buckets: map[string]int{
			"block_table":       d.settings.BlockTableBuckets,
			"transaction_table": d.settings.TransactionTableBuckets,
			"address_table":     d.settings.AddressTableBuckets,
		},
	}
}

// Create - create the store files and push the genesis block
//
// not idempotent; a failure leaves the file system state for operator
// inspection
func (d *DataStore) Create(genesis *chainrecord.Block) error {
	err := d.lockFiles()
	if nil != err {
		return err
	}

	err = d.start(true)
	if nil != err {
		d.dirLock.Unlock()
		return err
	}

	d.closed = false

	err = d.Push(genesis, 0, 0)
	if nil != err {
		d.log.Criticalf("genesis push failed: %s", err)
		return err
	}

	d.log.Info("store created")
	return nil
}

// Open - open an existing store
//
// must be called before performing queries, not idempotent; may be
// called again after Close
func (d *DataStore) Open() error {
	err := d.lockFiles()
	if nil != err {
		return err
	}

	err = d.start(false)
	if nil != err {
		d.dirLock.Unlock()
		return err
	}

	d.closed = false
	d.log.Info("store open")
	return nil
}

// take the directory lock, refusing a quarantined store
func (d *DataStore) lockFiles() error {
	if d.flushLock.Present() {
		d.log.Critical("flush lock present: store quarantined by a crashed write")
		return fault.ErrStoreLockFailure
	}
	return d.dirLock.Lock()
}

// open the databases and attach the table subsystems
func (d *DataStore) start(create bool) error {
	store, err := storage.Initialise(d.settings.Directory, d.storageOptions(create))
	if nil != err {
		d.log.Errorf("storage initialise error: %s", err)
		return err
	}

	d.store = store
	d.blocks = blockdb.New(store)
	d.transactions = txdb.New(store, d.settings.CacheCapacity)
	if d.settings.IndexAddresses {
		d.addresses = addressdb.New(store)
	}

	// batched flush mode: bound the loss window with a periodic flush
	if !d.settings.FlushWrites && d.settings.FlushIntervalSeconds > 0 {
		interval := time.Duration(d.settings.FlushIntervalSeconds) * time.Second
		d.flusher = background.Start(background.Processes{&flusher{d: d}}, interval)
	}
	return nil
}

// Close - close the store
//
// idempotent and thread safe; a second call returns success
func (d *DataStore) Close() error {
	d.Lock()
	if d.closed {
		d.Unlock()
		return nil
	}
	d.closed = true
	periodic := d.flusher
	d.flusher = nil
	d.Unlock()

	// outside the write mutex: the flusher takes it on each tick
	periodic.Stop()

	d.Lock()
	defer d.Unlock()

	d.store.Finalise()
	d.store = nil
	d.blocks = nil
	d.transactions = nil
	d.addresses = nil

	d.dirLock.Unlock()
	d.log.Info("store closed")
	return nil
}

// guard for operations on a closed store; caller holds the write mutex
func (d *DataStore) isOpen() error {
	if d.closed {
		return fault.ErrNotInitialised
	}
	return nil
}

// Blocks - reader access to the block subsystem
func (d *DataStore) Blocks() BlockTable {
	return d.blocks
}

// Transactions - reader access to the transaction subsystem
func (d *DataStore) Transactions() TransactionTable {
	return d.transactions
}

// Addresses - reader access to the address subsystem
//
// nil when address indexing is disabled
func (d *DataStore) Addresses() AddressTable {
	return d.addresses
}

// commit the affected tables in dependency order
func (d *DataStore) commit() error {
	if nil != d.addresses {
		err := d.addresses.Commit()
		if nil != err {
			return err
		}
	}
	err := d.transactions.Commit()
	if nil != err {
		return err
	}
	return d.blocks.Commit()
}

// flush every table to stable storage
func (d *DataStore) flush() error {
	err := d.blocks.Flush()
	if nil != err {
		return err
	}
	err = d.transactions.Flush()
	if nil != err {
		return err
	}
	if nil != d.addresses {
		return d.addresses.Flush()
	}
	return nil
}
