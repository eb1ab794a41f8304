// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txdb

import (
	"encoding/binary"

	lru "github.com/hashicorp/golang-lru"

	"github.com/bitmark-inc/logger"

	"github.com/trestle-systems/chainstore/accessor"
	"github.com/trestle-systems/chainstore/storage"
)

// transaction confirmation states
const (
	StateUnconfirmed byte = iota
	StateCandidate
	StateConfirmed
)

// row field offsets
const (
	stateOffset    = 0
	heightOffset   = stateOffset + 1
	mtpOffset      = heightOffset + 8
	positionOffset = mtpOffset + 8
	forksOffset    = positionOffset + 4
	packedOffset   = forksOffset + 4
)

// key for the next free link
var nextLinkKey = []byte("next")

// default record cache entries when no capacity is configured
const defaultCacheCapacity = 2000

// TxDB - the transaction subsystem of one store
type TxDB struct {
	log *logger.L

	ids  *storage.PoolHandle
	rows *storage.PoolHandle
	next *storage.PoolHandle

	access storage.Access

	cache      *lru.Cache
	cacheMutex *accessor.UpgradeMutex
}

// New - attach the transaction subsystem to an open store
func New(store *storage.Store, cacheCapacity int) *TxDB {
	if cacheCapacity <= 0 {
		cacheCapacity = defaultCacheCapacity
	}
	cache, err := lru.New(cacheCapacity)
	logger.PanicIfError("txdb.New", err)

	return &TxDB{
		log:        logger.New("txdb"),
		ids:        store.Pool.TxIds,
		rows:       store.Pool.TxRows,
		next:       store.Pool.TxRowNext,
		access:     store.Access("transaction_table"),
		cache:      cache,
		cacheMutex: accessor.NewUpgradeMutex(),
	}
}

// Commit - write the transaction table batch
func (t *TxDB) Commit() error {
	err := t.access.Commit()
	if nil != err {
		t.log.Errorf("commit error: %s", err)
	}
	return err
}

// Flush - force the transaction table journal to stable storage
func (t *TxDB) Flush() error {
	err := t.access.Flush()
	if nil != err {
		t.log.Errorf("flush error: %s", err)
	}
	return err
}

// big endian link key
func linkKey(link uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, link)
	return key
}

// read a row, preferring the record cache
//
// the returned accessor holds a shared lock over the bytes; the
// caller must Release it when done
func (t *TxDB) rowReader(link uint64) (*accessor.Accessor, bool) {
	a := accessor.NewAccessor(t.cacheMutex)

	if cached, found := t.cache.Get(link); found {
		a.Assign(cached.([]byte))
		return a, true
	}

	row := t.rows.Get(linkKey(link))
	if nil == row {
		a.Release()
		return nil, false
	}

	a.Assign(row)
	t.cache.Add(link, row)
	return a, true
}

// replace a row on disk and in the record cache
//
// takes the cache mutex exclusively so in-flight readers drain first
func (t *TxDB) writeRow(link uint64, row []byte) {
	t.cacheMutex.Lock()
	t.cache.Add(link, row)
	t.rows.Put(linkKey(link), row)
	t.cacheMutex.Unlock()
}

// ResetCache - drop all cached rows
//
// called after an aborted write so the cache cannot serve rows that
// never reached the database
func (t *TxDB) ResetCache() {
	t.cacheMutex.Lock()
	t.cache.Purge()
	t.cacheMutex.Unlock()
}
