// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accessor

import (
	"sync"
)

// UpgradeMutex - mutex with an intermediate upgrade state
//
// states a holder can be in:
//   upgrade   - exactly one pending reader, writers blocked from entry
//   shared    - any number of readers, writers wait for drain
//   exclusive - one writer, no readers
type UpgradeMutex struct {
	mutex     sync.Mutex
	condition *sync.Cond

	upgraders int // 0 or 1
	sharers   int
	exclusive bool
}

// NewUpgradeMutex - create an unlocked upgrade mutex
func NewUpgradeMutex() *UpgradeMutex {
	m := &UpgradeMutex{}
	m.condition = sync.NewCond(&m.mutex)
	return m
}

// LockUpgrade - take the single upgrade slot
//
// blocks while another upgrader or a writer is active
func (m *UpgradeMutex) LockUpgrade() {
	m.mutex.Lock()
	for 0 != m.upgraders || m.exclusive {
		m.condition.Wait()
	}
	m.upgraders = 1
	m.mutex.Unlock()
}

// UnlockUpgradeAndLockShared - atomically convert upgrade to shared
func (m *UpgradeMutex) UnlockUpgradeAndLockShared() {
	m.mutex.Lock()
	m.upgraders = 0
	m.sharers += 1
	m.condition.Broadcast()
	m.mutex.Unlock()
}

// UnlockShared - release one shared hold
func (m *UpgradeMutex) UnlockShared() {
	m.mutex.Lock()
	m.sharers -= 1
	if m.sharers < 0 {
		panic("accessor: unbalanced UnlockShared")
	}
	m.condition.Broadcast()
	m.mutex.Unlock()
}

// Lock - take the mutex exclusively, waiting for the upgrade slot to
// clear and all sharers to drain
func (m *UpgradeMutex) Lock() {
	m.mutex.Lock()
	for 0 != m.upgraders || 0 != m.sharers || m.exclusive {
		m.condition.Wait()
	}
	m.exclusive = true
	m.mutex.Unlock()
}

// Unlock - release the exclusive hold
func (m *UpgradeMutex) Unlock() {
	m.mutex.Lock()
	if !m.exclusive {
		panic("accessor: unlock of unlocked UpgradeMutex")
	}
	m.exclusive = false
	m.condition.Broadcast()
	m.mutex.Unlock()
}
