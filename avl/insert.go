// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new value into the tree
//
// a value equal to an existing key increments that node's count and
// leaves the stored value unchanged
func (tree *Tree[T]) Insert(value T) error {
	if err := tree.usable(); nil != err {
		return err
	}

	// find the insertion point
	p := tree.root
	up := null
	c := 0
	for null != p {
		up = p
		n := &tree.nodes[p]
		c = tree.compare(n.value, value)
		switch {
		case c > 0: // n.value > value
			p = n.left
		case c < 0: // n.value < value
			p = n.right
		default:
			n.count += 1
			return nil
		}
	}

	// allocate before any link changes
	q, err := tree.newNode(value)
	if nil != err {
		if nil != tree.log {
			tree.log.Warnf("insert: %s", err)
		}
		return err
	}

	tree.count += 1

	if null == up {
		tree.root = q
		return nil
	}

	tree.nodes[q].up = up
	if c > 0 {
		tree.nodes[up].left = q
	} else {
		tree.nodes[up].right = q
	}

	tree.insertFixUp(up)
	return nil
}
