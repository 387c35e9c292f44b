// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Predecessor - the node with the next lower key than key, or the nil
// node if key is the lowest; key must be present
func (tree *Tree[T]) Predecessor(key T) (Node[T], error) {
	p, err := tree.present(key)
	if nil != err {
		return Node[T]{}, err
	}
	return tree.handle(tree.prev(p)), nil
}

// Successor - the node with the next higher key than key, or the nil
// node if key is the highest; key must be present
func (tree *Tree[T]) Successor(key T) (Node[T], error) {
	p, err := tree.present(key)
	if nil != err {
		return Node[T]{}, err
	}
	return tree.handle(tree.next(p)), nil
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p Node[T]) Next() Node[T] {
	if p.IsNil() {
		return Node[T]{}
	}
	return p.tree.handle(p.tree.next(p.index))
}

// Prev - given a node, return the node with the next lowest key value
// or nil if no more nodes
func (p Node[T]) Prev() Node[T] {
	if p.IsNil() {
		return Node[T]{}
	}
	return p.tree.handle(p.tree.prev(p.index))
}

// internal: in-order successor of a node
func (tree *Tree[T]) next(p int32) int32 {
	if r := tree.nodes[p].right; null != r {
		return tree.first(r)
	}
	up := tree.nodes[p].up
	for null != up && tree.nodes[up].right == p {
		p = up
		up = tree.nodes[up].up
	}
	return up
}

// internal: in-order predecessor of a node
func (tree *Tree[T]) prev(p int32) int32 {
	if l := tree.nodes[p].left; null != l {
		return tree.last(l)
	}
	up := tree.nodes[p].up
	for null != up && tree.nodes[up].left == p {
		p = up
		up = tree.nodes[up].up
	}
	return up
}

// internal: locate a key that is required to be in the tree
func (tree *Tree[T]) present(key T) (int32, error) {
	if err := tree.usable(); nil != err {
		return null, err
	}
	if null == tree.root {
		return null, fault.ErrEmptyTree
	}
	p := tree.locate(tree.root, key)
	if null == p {
		return null, fault.ErrKeyNotFound
	}
	return p, nil
}
