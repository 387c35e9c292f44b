// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Find - find a specific item, the nil node if it is not present
func (tree *Tree[T]) Find(key T) Node[T] {
	if nil != tree.usable() {
		return Node[T]{}
	}
	return tree.handle(tree.locate(tree.root, key))
}

// internal: descend from p to the node equal to key, null if absent
func (tree *Tree[T]) locate(p int32, key T) int32 {
	for null != p {
		n := &tree.nodes[p]
		switch c := tree.compare(n.value, key); {
		case c < 0: // n.value < key
			p = n.right
		case c > 0: // n.value > key
			p = n.left
		default:
			return p
		}
	}
	return null
}

// Min - return the node with the lowest key value
func (tree *Tree[T]) Min() Node[T] {
	if nil != tree.usable() {
		return Node[T]{}
	}
	return tree.handle(tree.first(tree.root))
}

// Max - return the node with the highest key value
func (tree *Tree[T]) Max() Node[T] {
	if nil != tree.usable() {
		return Node[T]{}
	}
	return tree.handle(tree.last(tree.root))
}

// MinValue - the lowest value in the tree
func (tree *Tree[T]) MinValue() (T, error) {
	return tree.extreme(tree.first)
}

// MaxValue - the highest value in the tree
func (tree *Tree[T]) MaxValue() (T, error) {
	return tree.extreme(tree.last)
}

func (tree *Tree[T]) extreme(f func(int32) int32) (T, error) {
	var zero T
	if err := tree.usable(); nil != err {
		return zero, err
	}
	if null == tree.root {
		return zero, fault.ErrEmptyTree
	}
	return tree.nodes[f(tree.root)].value, nil
}

// Min - lowest node in the sub-tree rooted here
func (p Node[T]) Min() Node[T] {
	if p.IsNil() {
		return Node[T]{}
	}
	return p.tree.handle(p.tree.first(p.index))
}

// Max - highest node in the sub-tree rooted here
func (p Node[T]) Max() Node[T] {
	if p.IsNil() {
		return Node[T]{}
	}
	return p.tree.handle(p.tree.last(p.index))
}

// internal: lowest node in a sub-tree
func (tree *Tree[T]) first(p int32) int32 {
	if null == p {
		return null
	}
	for null != tree.nodes[p].left {
		p = tree.nodes[p].left
	}
	return p
}

// internal: highest node in a sub-tree
func (tree *Tree[T]) last(p int32) int32 {
	if null == p {
		return null
	}
	for null != tree.nodes[p].right {
		p = tree.nodes[p].right
	}
	return p
}
