// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/eapache/queue"

	"github.com/bitmark-inc/avltree/fault"
)

// Action - called once for each node visited by a traversal
type Action[T any] func(node Node[T])

// Inorder - visit left sub-tree, node, right sub-tree
//
// the values are seen in ascending order
func (tree *Tree[T]) Inorder(action Action[T]) error {
	if err := tree.walkable(action); nil != err {
		return err
	}
	tree.inorder(tree.root, action)
	return nil
}

// Preorder - visit node, left sub-tree, right sub-tree
func (tree *Tree[T]) Preorder(action Action[T]) error {
	if err := tree.walkable(action); nil != err {
		return err
	}
	tree.preorder(tree.root, action)
	return nil
}

// Postorder - visit left sub-tree, right sub-tree, node
func (tree *Tree[T]) Postorder(action Action[T]) error {
	if err := tree.walkable(action); nil != err {
		return err
	}
	tree.postorder(tree.root, action)
	return nil
}

// LevelOrder - visit nodes breadth first, each level left to right
func (tree *Tree[T]) LevelOrder(action Action[T]) error {
	if err := tree.walkable(action); nil != err {
		return err
	}
	if null == tree.root {
		return nil
	}

	q := queue.New()
	q.Add(tree.root)
	for q.Length() > 0 {
		p := q.Remove().(int32)
		action(tree.handle(p))

		n := &tree.nodes[p]
		if null != n.left {
			q.Add(n.left)
		}
		if null != n.right {
			q.Add(n.right)
		}
	}
	return nil
}

func (tree *Tree[T]) inorder(p int32, action Action[T]) {
	if null == p {
		return
	}
	tree.inorder(tree.nodes[p].left, action)
	action(tree.handle(p))
	tree.inorder(tree.nodes[p].right, action)
}

func (tree *Tree[T]) preorder(p int32, action Action[T]) {
	if null == p {
		return
	}
	action(tree.handle(p))
	tree.preorder(tree.nodes[p].left, action)
	tree.preorder(tree.nodes[p].right, action)
}

func (tree *Tree[T]) postorder(p int32, action Action[T]) {
	if null == p {
		return
	}
	tree.postorder(tree.nodes[p].left, action)
	tree.postorder(tree.nodes[p].right, action)
	action(tree.handle(p))
}

func (tree *Tree[T]) walkable(action Action[T]) error {
	if err := tree.usable(); nil != err {
		return err
	}
	if nil == action {
		return fault.ErrNilAction
	}
	return nil
}
