// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datastore

import (
	"time"

	"github.com/trestle-systems/chainstore/background"
)

// flusher - periodic table flush for stores running without per-write
// flushing
//
// a crash between flushes loses recent writes but never corrupts; the
// interval bounds the loss window
type flusher struct {
	d *DataStore
}

func (f *flusher) Run(args interface{}, shutdown <-chan struct{}) {
	interval := args.(time.Duration)
	log := f.d.log

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(interval):
			f.d.Lock()
			if !f.d.closed {
				err := f.d.flush()
				if nil != err {
					log.Errorf("periodic flush error: %s", err)
				}
			}
			f.d.Unlock()
		}
	}
}
