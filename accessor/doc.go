// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package accessor - scoped read access to remappable buffers
//
// A writer that replaces or grows a shared buffer must first wait for
// every outstanding reader to finish.  Readers enter through a
// three-phase protocol on an upgrade mutex: acquire the upgrade slot,
// transition to shared once the buffer pointer is taken, release on
// scope exit.  At most one reader holds the upgrade slot at a time.
// A waiting writer does not hold back new readers: it enters once the
// upgrade slot is free and every shared hold has been released.
package accessor
