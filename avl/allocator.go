// Copyright (c) 2014-2017 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math"

	"github.com/bitmark-inc/avltree/fault"
)

// index of the sentinel slot: absent child, absent parent, empty root
const null int32 = 0

// a node in the tree
type node[T any] struct {
	left       int32  // left sub-tree
	right      int32  // right sub-tree
	up         int32  // parent node, or next free slot when reclaimed
	height     int32  // leaf = 1, sentinel = 0
	count      int    // number of insertions of this key
	generation uint32 // changes whenever the slot is reclaimed
	value      T      // copy of the inserted value
}

// allocate a new node, reuses reclaimed slots if any are available
//
// the tree is not modified when allocation fails
func (tree *Tree[T]) newNode(value T) (int32, error) {
	if tree.limit > 0 && tree.live() >= tree.limit {
		return null, fault.ErrAllocationFailed
	}

	if null == tree.pool {
		if 0 != tree.freeNodes {
			return null, fault.ErrAllocationFailed
		}
		if len(tree.nodes) >= math.MaxInt32 {
			return null, fault.ErrAllocationFailed
		}
		tree.nodes = append(tree.nodes, node[T]{
			height: 1,
			count:  1,
			value:  value,
		})
		return int32(len(tree.nodes) - 1), nil
	}

	p := tree.pool
	n := &tree.nodes[p]
	tree.pool = n.up
	n.left = null
	n.right = null
	n.up = null // ensure freelist link is cleared
	n.height = 1
	n.count = 1
	n.value = value
	tree.freeNodes -= 1
	return p, nil
}

// reclaim a node and keep it in the pool
//
// release selects whether the destructor sees the value; it is false
// when the value has already moved to another node
func (tree *Tree[T]) freeNode(p int32, release bool) {
	n := &tree.nodes[p]
	if release && nil != tree.destroy {
		tree.destroy(n.value)
	}

	var zero T
	n.value = zero
	n.left = null
	n.right = null
	n.height = 0
	n.count = 0
	n.generation += 1
	n.up = tree.pool // use as free list link
	tree.freeNodes += 1

	tree.pool = p
}

// number of slots currently holding a key
func (tree *Tree[T]) live() int {
	if 0 == len(tree.nodes) {
		return 0
	}
	return len(tree.nodes) - 1 - tree.freeNodes
}
