// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"path/filepath"
	"reflect"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
)

// Pools - the set of exported pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Headers        *PoolHandle `prefix:"B" database:"block_table"`
	CandidateIndex *PoolHandle `prefix:"c" database:"candidate_index"`
	ConfirmedIndex *PoolHandle `prefix:"f" database:"confirmed_index"`
	TxIndex        *PoolHandle `prefix:"x" database:"transaction_index"`
	TxIndexNext    *PoolHandle `prefix:"n" database:"transaction_index"`
	TxIds          *PoolHandle `prefix:"T" database:"transaction_table"`
	TxRows         *PoolHandle `prefix:"R" database:"transaction_table"`
	TxRowNext      *PoolHandle `prefix:"N" database:"transaction_table"`
	AddressCounts  *PoolHandle `prefix:"A" database:"address_table"`
	AddressRows    *PoolHandle `prefix:"P" database:"address_rows"`
}

// database names in dependency order: address data first, block data
// last, so a crash between commits never leaves a higher table
// referencing a missing lower row
var databaseNames = []string{
	"address_rows",
	"address_table",
	"transaction_table",
	"transaction_index",
	"candidate_index",
	"confirmed_index",
	"block_table",
}

// databases only present when address indexing is enabled
var addressDatabases = map[string]bool{
	"address_rows":  true,
	"address_table": true,
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x101

// Options - store opening options
type Options struct {
	ReadOnly       bool
	IndexAddresses bool
	CreateIfAbsent bool

	// Buckets - LevelDB block cache KiB per database name, 0 = default
	Buckets map[string]int

	// WriteBuffer - MiB of LevelDB write buffer per database, 0 = default
	WriteBuffer int
}

// Store - handles for all databases of one store directory
type Store struct {
	Pool Pools

	directory string
	databases map[string]*leveldb.DB
	accesses  map[string]Access
	ordered   []Access
	cache     Cache
	trx       *Transaction
}

// Initialise - open up all databases of a store directory
//
// this must be called before any pool is accessed
func Initialise(directory string, options Options) (*Store, error) {

	s := &Store{
		directory: directory,
		databases: make(map[string]*leveldb.DB),
		accesses:  make(map[string]Access),
		cache:     newCache(),
	}

	ok := false
	defer func() {
		if !ok {
			s.dbClose()
		}
	}()

	for _, name := range databaseNames {
		if !options.IndexAddresses && addressDatabases[name] {
			continue
		}

		db, version, err := getDB(filepath.Join(directory, name), options, options.Buckets[name])
		if nil != err {
			return nil, err
		}
		s.databases[name] = db

		// ensure no database downgrade
		if version > currentDBVersion {
			return nil, fmt.Errorf("database: %s version: %d > current version: %d", name, version, currentDBVersion)
		}

		if 0 == version {
			// database was empty so tag as current version
			if options.ReadOnly {
				return nil, fmt.Errorf("database: %s is uninitialised", name)
			}
			err = putVersion(db, currentDBVersion)
			if nil != err {
				return nil, err
			}
		}

		access := newDA(name, db, s.cache)
		s.accesses[name] = access
		s.ordered = append(s.ordered, access)
	}

	s.trx = newTransaction(s.ordered)

	// this will be a struct type
	poolType := reflect.TypeOf(s.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&s.Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return nil, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		dbName := fieldInfo.Tag.Get("database")
		access, found := s.accesses[dbName]
		if !found {
			if !options.IndexAddresses && addressDatabases[dbName] {
				// pool stays nil; operations become no-ops
				continue
			}
			return nil, fmt.Errorf("pool: %v has invalid database: %q", fieldInfo, dbName)
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: access,
		}

		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	ok = true // prevent db close
	return s, nil
}

func (s *Store) dbClose() {
	for name, db := range s.databases {
		db.Close()
		delete(s.databases, name)
	}
}

// Finalise - close all databases
func (s *Store) Finalise() {
	s.dbClose()
}

// Access - the batched access handle for a named database
func (s *Store) Access(database string) Access {
	return s.accesses[database]
}

// NewTransaction - begin the store-wide critical section
func (s *Store) NewTransaction() (*Transaction, error) {
	err := s.trx.Begin()
	if nil != err {
		return nil, err
	}
	return s.trx, nil
}

// FlushAll - force every database journal to stable storage
func (s *Store) FlushAll() error {
	for _, access := range s.ordered {
		err := access.Flush()
		if nil != err {
			return err
		}
	}
	return nil
}

// return:
//   database handle
//   version number
func getDB(name string, options Options, buckets int) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: options.ReadOnly || !options.CreateIfAbsent,
		ReadOnly:       options.ReadOnly,
	}
	if buckets > 0 {
		opt.BlockCacheCapacity = buckets * ldb_opt.KiB
	}
	if options.WriteBuffer > 0 {
		opt.WriteBuffer = options.WriteBuffer * ldb_opt.MiB
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
