// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a generic AVL balanced tree with parent links, ordered
// by a caller supplied compare function
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Nodes live in an arena addressed by index; slot zero is a sentinel
// standing in for every absent child or parent, it has height zero and
// its value is never read.  Queries return a Node handle that remains
// valid across rotations but reports IsNil once its slot is released.
//
// Inserting a key that is already present increments the node's count
// instead of adding a node.  Deleting a node with two children copies
// the in-order successor's data into it, so a handle held on such a
// node afterwards shows the successor's value; hold keys, not handles,
// across mutations.
package avl
