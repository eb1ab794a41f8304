// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datastore

// Settings - store configuration
type Settings struct {
	Directory      string `gluamapper:"directory"`
	IndexAddresses bool   `gluamapper:"index_addresses"`
	FlushWrites    bool   `gluamapper:"flush_writes"`

	BlockTableBuckets       int `gluamapper:"block_table_buckets"`
	TransactionTableBuckets int `gluamapper:"transaction_table_buckets"`
	AddressTableBuckets     int `gluamapper:"address_table_buckets"`

	FileGrowthRate int `gluamapper:"file_growth_rate"`
	CacheCapacity  int `gluamapper:"cache_capacity"`

	// seconds between periodic flushes when FlushWrites is off;
	// zero disables the background flusher
	FlushIntervalSeconds int `gluamapper:"flush_interval_seconds"`
}
