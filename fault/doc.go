// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Store operations return one of these values; a nil error is the
// success code.  Each invalidation error also carries a stable numeric
// code so that a failure reason can be persisted in a header row and
// recovered on restart.
package fault
