// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of each tree error so callers can compare
// by identity and classify by kind (invalid input, not found, empty
// tree, allocation failure) without resorting to string matches
package fault
