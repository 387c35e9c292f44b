// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// insert: tree balancer, p is the parent of the new node
//
// a child of a node that has just gone out of balance by an insert
// always leans one way, so its balance is tested for exactly ±1
func (tree *Tree[T]) insertFixUp(p int32) {
	for null != p {
		tree.updateHeight(p)

		left := tree.nodes[p].left
		right := tree.nodes[p].right

		switch bf := tree.balance(p); {
		case +2 == bf && +1 == tree.balance(left):
			// single LL rotation
			tree.rotateRight(p)
		case -2 == bf && -1 == tree.balance(right):
			// single RR rotation
			tree.rotateLeft(p)
		case +2 == bf && -1 == tree.balance(left):
			// double LR rotation
			tree.rotateLeft(left)
			tree.rotateRight(p)
		case -2 == bf && +1 == tree.balance(right):
			// double RL rotation
			tree.rotateRight(right)
			tree.rotateLeft(p)
		}

		p = tree.nodes[p].up
	}
}

// delete: tree balancer, p is the parent of the removed node
//
// after a removal the taller child may be level, which needs the
// single rotation
func (tree *Tree[T]) deleteFixUp(p int32) {
	for null != p {
		tree.updateHeight(p)

		left := tree.nodes[p].left
		right := tree.nodes[p].right

		switch bf := tree.balance(p); {
		case bf > 1 && tree.balance(left) >= 0:
			// single LL rotation
			tree.rotateRight(p)
		case bf < -1 && tree.balance(right) <= 0:
			// single RR rotation
			tree.rotateLeft(p)
		case bf > 1 && tree.balance(left) < 0:
			// double LR rotation
			tree.rotateLeft(left)
			tree.rotateRight(p)
		case bf < -1 && tree.balance(right) > 0:
			// double RL rotation
			tree.rotateRight(right)
			tree.rotateLeft(p)
		}

		p = tree.nodes[p].up
	}
}
