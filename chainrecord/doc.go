// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainrecord - parsed block, header and transaction values
//
// These are the already-parsed records the store consumes.  Packing
// here is only the fixed table row layout; network serialization is
// handled elsewhere.
//
// Each record carries a Metadata block that the tables populate as a
// side effect of store and fetch operations.  Metadata is never packed
// into a row.
package chainrecord
