// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - handle to a node of a tree
//
// the zero value is the nil node
type Node[T any] struct {
	tree       *Tree[T]
	index      int32
	generation uint32
}

// internal: make a handle, the sentinel gives the nil node
func (tree *Tree[T]) handle(p int32) Node[T] {
	if null == p {
		return Node[T]{}
	}
	return Node[T]{
		tree:       tree,
		index:      p,
		generation: tree.nodes[p].generation,
	}
}

// internal: the slot behind a handle if it is still live
func (p Node[T]) slot() *node[T] {
	if nil == p.tree || null == p.index || int(p.index) >= len(p.tree.nodes) {
		return nil
	}
	n := &p.tree.nodes[p.index]
	if n.generation != p.generation || 0 == n.count {
		return nil
	}
	return n
}

// IsNil - true for an absent node, or one whose slot has been released
func (p Node[T]) IsNil() bool {
	return nil == p.slot()
}

// Value - copy of the value stored in the node
func (p Node[T]) Value() T {
	n := p.slot()
	if nil == n {
		var zero T
		return zero
	}
	return n.value
}

// Count - number of times the node's key has been inserted
func (p Node[T]) Count() int {
	n := p.slot()
	if nil == n {
		return 0
	}
	return n.count
}

// Height - height of the sub-tree rooted here, a leaf is 1
func (p Node[T]) Height() int {
	n := p.slot()
	if nil == n {
		return 0
	}
	return int(n.height)
}

// Left - left child
func (p Node[T]) Left() Node[T] {
	n := p.slot()
	if nil == n {
		return Node[T]{}
	}
	return p.tree.handle(n.left)
}

// Right - right child
func (p Node[T]) Right() Node[T] {
	n := p.slot()
	if nil == n {
		return Node[T]{}
	}
	return p.tree.handle(n.right)
}

// Parent - return parent node of a node
func (p Node[T]) Parent() Node[T] {
	n := p.slot()
	if nil == n {
		return Node[T]{}
	}
	return p.tree.handle(n.up)
}

// Depth - get the depth of a node, the root is at zero and a nil node
// gives -1
func (p Node[T]) Depth() int {
	n := p.slot()
	if nil == n {
		return -1
	}
	count := 0
	for up := n.up; null != up; up = p.tree.nodes[up].up {
		count += 1
	}
	return count
}

// ChildrenByDepth - returns all descendants at a specific depth below
// this node, left to right
func (p Node[T]) ChildrenByDepth(depth uint) []Node[T] {
	if p.IsNil() {
		return nil
	}
	nodes := []Node[T]{}
	p.tree.collect(p.index, depth, &nodes)
	return nodes
}

func (tree *Tree[T]) collect(p int32, depth uint, nodes *[]Node[T]) {
	if null == p {
		return
	}
	if 0 == depth {
		*nodes = append(*nodes, tree.handle(p))
		return
	}
	tree.collect(tree.nodes[p].left, depth-1, nodes)
	tree.collect(tree.nodes[p].right, depth-1, nodes)
}
