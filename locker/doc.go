// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package locker - exclusive access to a store directory
//
// Two locks guard a store:
//
// The process lock is an O_EXCL pid file taken at open and removed at
// close.  It prevents two processes from opening the same directory.
//
// The flush lock is a persistent sentinel created before the first
// flushed write of a critical section and removed only after a fully
// flushed end of write.  Its presence at open time means a write was
// in progress when the process died: the store must not be used until
// an operator has verified the tables and removed the file.
package locker
