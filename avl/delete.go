// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
//
// under the DecrementCount policy a key inserted more than once only
// has its count reduced
func (tree *Tree[T]) Delete(key T) error {
	p, err := tree.present(key)
	if nil != err {
		return err
	}

	if DecrementCount == tree.policy && tree.nodes[p].count > 1 {
		tree.nodes[p].count -= 1
		return nil
	}

	tree.remove(p, true)
	return nil
}

// internal: unlink and free a node then rebalance
//
// release is passed to the allocator, false when the node's value has
// already been copied elsewhere
func (tree *Tree[T]) remove(p int32, release bool) {
	n := &tree.nodes[p]

	if null != n.left && null != n.right {
		s := tree.first(n.right)
		if nil != tree.destroy {
			tree.destroy(n.value)
		}
		donor := &tree.nodes[s]
		n.value = donor.value
		n.count = donor.count
		n.height = donor.height

		// the successor has no left child so this is a 0/1 child case
		tree.remove(s, false)
		return
	}

	child := n.left
	if null == child {
		child = n.right
	}
	up := n.up
	if null != child {
		tree.nodes[child].up = up
	}
	tree.replaceChild(up, p, child)

	tree.freeNode(p, release)
	tree.count -= 1

	tree.deleteFixUp(up)
}
