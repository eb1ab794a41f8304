// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/trestle-systems/chainstore/datastore"
	"github.com/trestle-systems/chainstore/fault"
)

// Configuration - the full configuration file layout
type Configuration struct {
	DataDirectory string             `gluamapper:"data_directory"`
	Store         datastore.Settings `gluamapper:"store"`
}

// default sizing when the configuration leaves a field at zero
const (
	defaultBlockTableBuckets       = 1024
	defaultTransactionTableBuckets = 4096
	defaultAddressTableBuckets     = 4096
	defaultFileGrowthRate          = 4
	defaultCacheCapacity           = 2000
)

// Read - parse a configuration file and apply defaults
func Read(fileName string) (*Configuration, error) {
	options := &Configuration{}

	err := ParseConfigurationFile(fileName, options)
	if nil != err {
		return nil, err
	}

	if "" == options.Store.Directory {
		if "" == options.DataDirectory {
			return nil, fault.ErrRequiredDataDirectory
		}
		options.Store.Directory = filepath.Join(options.DataDirectory, "store")
	}

	// the store root must be a directory
	info, err := os.Stat(options.Store.Directory)
	if nil == err && !info.IsDir() {
		return nil, fault.ErrDataDirectoryPath
	}

	if options.Store.BlockTableBuckets <= 0 {
		options.Store.BlockTableBuckets = defaultBlockTableBuckets
	}
	if options.Store.TransactionTableBuckets <= 0 {
		options.Store.TransactionTableBuckets = defaultTransactionTableBuckets
	}
	if options.Store.AddressTableBuckets <= 0 {
		options.Store.AddressTableBuckets = defaultAddressTableBuckets
	}
	if options.Store.FileGrowthRate <= 0 {
		options.Store.FileGrowthRate = defaultFileGrowthRate
	}
	if options.Store.CacheCapacity <= 0 {
		options.Store.CacheCapacity = defaultCacheCapacity
	}

	return options, nil
}
