// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockdigest - block header hashing
//
// using a memory intensive argon2-d algorithm
package blockdigest
