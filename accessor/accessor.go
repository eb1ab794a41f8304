// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accessor

import (
	"github.com/bitmark-inc/logger"
)

// Accessor - scoped reader handle over a remappable buffer
//
// construction takes the upgrade slot; Assign publishes the buffer
// and converts the hold to shared; Release must be called exactly
// once when the caller is done with the buffer
type Accessor struct {
	mutex    *UpgradeMutex
	data     []byte
	assigned bool
	released bool
}

// NewAccessor - enter the upgrade phase for a buffer's mutex
func NewAccessor(mutex *UpgradeMutex) *Accessor {
	mutex.LockUpgrade()
	return &Accessor{
		mutex: mutex,
	}
}

// Assign - publish the buffer and convert upgrade to shared
func (a *Accessor) Assign(data []byte) {
	if a.assigned {
		logger.Panic("accessor.Assign called twice")
	}
	a.mutex.UnlockUpgradeAndLockShared()
	a.data = data
	a.assigned = true
}

// Buffer - the current view of the published buffer
func (a *Accessor) Buffer() []byte {
	return a.data
}

// Increment - advance the view by n bytes
func (a *Accessor) Increment(n int) {
	if nil == a.data {
		logger.Panic("accessor.Increment with no buffer assigned")
	}
	if n < 0 || n > len(a.data) {
		logger.Panicf("accessor.Increment overflow: %d of %d", n, len(a.data))
	}
	a.data = a.data[n:]
}

// Release - drop the hold
//
// safe to call whether or not Assign happened; the hold is released
// exactly once
func (a *Accessor) Release() {
	if a.released {
		return
	}
	a.released = true

	if a.assigned {
		a.mutex.UnlockShared()
	} else {
		// never assigned: still in the upgrade phase
		a.mutex.UnlockUpgradeAndLockShared()
		a.mutex.UnlockShared()
	}
	a.data = nil
}
