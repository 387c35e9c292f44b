// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// LowestCommonAncestor - the deepest node having both keys in its
// sub-tree, a node counts as being in its own sub-tree
//
// both keys must be present
func (tree *Tree[T]) LowestCommonAncestor(key1 T, key2 T) (Node[T], error) {
	if _, err := tree.present(key1); nil != err {
		return Node[T]{}, err
	}
	if _, err := tree.present(key2); nil != err {
		return Node[T]{}, err
	}

	p := tree.root
	for null != p {
		n := &tree.nodes[p]
		c1 := tree.compare(n.value, key1)
		c2 := tree.compare(n.value, key2)
		switch {
		case c1 > 0 && c2 > 0: // both keys to the left
			p = n.left
		case c1 < 0 && c2 < 0: // both keys to the right
			p = n.right
		default:
			return tree.handle(p), nil
		}
	}

	// unreachable while both keys are present
	return Node[T]{}, nil
}
