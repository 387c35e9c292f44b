// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// promote x.right into x's position
func (tree *Tree[T]) rotateLeft(x int32) {
	nodes := tree.nodes
	y := nodes[x].right
	if null == y {
		return
	}

	nodes[x].right = nodes[y].left
	if null != nodes[y].left {
		nodes[nodes[y].left].up = x
	}
	nodes[y].left = x

	up := nodes[x].up
	nodes[y].up = up
	nodes[x].up = y
	tree.replaceChild(up, x, y)

	// x is now the child so must be first
	tree.updateHeight(x)
	tree.updateHeight(y)

	if nil != tree.log {
		tree.log.Tracef("rotate left: %d → %d", x, y)
	}
}

// promote x.left into x's position
func (tree *Tree[T]) rotateRight(x int32) {
	nodes := tree.nodes
	y := nodes[x].left
	if null == y {
		return
	}

	nodes[x].left = nodes[y].right
	if null != nodes[y].right {
		nodes[nodes[y].right].up = x
	}
	nodes[y].right = x

	up := nodes[x].up
	nodes[y].up = up
	nodes[x].up = y
	tree.replaceChild(up, x, y)

	tree.updateHeight(x)
	tree.updateHeight(y)

	if nil != tree.log {
		tree.log.Tracef("rotate right: %d → %d", x, y)
	}
}

// re-link up's child old to the replacement, up == null means the root
func (tree *Tree[T]) replaceChild(up int32, old int32, to int32) {
	if null == up {
		tree.root = to
		return
	}
	if tree.nodes[up].left == old {
		tree.nodes[up].left = to
	} else {
		tree.nodes[up].right = to
	}
}

// recompute height from the children
func (tree *Tree[T]) updateHeight(p int32) {
	if null == p {
		return
	}
	n := &tree.nodes[p]
	lh := tree.nodes[n.left].height
	rh := tree.nodes[n.right].height
	if lh >= rh {
		n.height = lh + 1
	} else {
		n.height = rh + 1
	}
}

// left height minus right height, zero for the sentinel
func (tree *Tree[T]) balance(p int32) int32 {
	if null == p {
		return 0
	}
	n := &tree.nodes[p]
	return tree.nodes[n.left].height - tree.nodes[n.right].height
}
