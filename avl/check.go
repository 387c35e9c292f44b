// Copyright (c) 2014-2016 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - run every consistency check
func (tree *Tree[T]) Check() error {
	if err := tree.usable(); nil != err {
		return err
	}
	if !tree.CheckUp() || !tree.CheckBalance() || !tree.CheckOrder() || !tree.CheckSize() {
		return fault.ErrInconsistentTree
	}
	return nil
}

// CheckUp - check the up pointers for consistency
func (tree *Tree[T]) CheckUp() bool {
	if nil != tree.usable() {
		return false
	}
	return tree.checkup(tree.root, null)
}

// internal: consistency checker
func (tree *Tree[T]) checkup(p int32, up int32) bool {
	if null == p {
		return true
	}
	if tree.nodes[p].up != up {
		tree.failf("up link at node: %d  actual: %d  expected: %d", p, tree.nodes[p].up, up)
		return false
	}
	if !tree.checkup(tree.nodes[p].left, p) {
		return false
	}
	return tree.checkup(tree.nodes[p].right, p)
}

// CheckBalance - check each stored height against its children and
// that no node leans by more than one
func (tree *Tree[T]) CheckBalance() bool {
	if nil != tree.usable() {
		return false
	}
	_, ok := tree.checkBalance(tree.root)
	return ok
}

// internal: returns the computed height
func (tree *Tree[T]) checkBalance(p int32) (int32, bool) {
	if null == p {
		return 0, true
	}
	lh, ok := tree.checkBalance(tree.nodes[p].left)
	if !ok {
		return 0, false
	}
	rh, ok := tree.checkBalance(tree.nodes[p].right)
	if !ok {
		return 0, false
	}
	h := lh + 1
	if rh > lh {
		h = rh + 1
	}
	if h != tree.nodes[p].height {
		tree.failf("height at node: %d  actual: %d  expected: %d", p, tree.nodes[p].height, h)
		return 0, false
	}
	if bf := lh - rh; bf < -1 || bf > 1 {
		tree.failf("balance at node: %d  is: %+d", p, bf)
		return 0, false
	}
	return h, true
}

// CheckOrder - check that an in-order walk is strictly ascending
func (tree *Tree[T]) CheckOrder() bool {
	if nil != tree.usable() {
		return false
	}
	prev := null
	for p := tree.first(tree.root); null != p; p = tree.next(p) {
		if null != prev && tree.compare(tree.nodes[prev].value, tree.nodes[p].value) >= 0 {
			tree.failf("order at node: %d  not above node: %d", p, prev)
			return false
		}
		if tree.nodes[p].count < 1 {
			tree.failf("count at node: %d  is: %d", p, tree.nodes[p].count)
			return false
		}
		prev = p
	}
	return true
}

// CheckSize - check the key count against the reachable nodes
func (tree *Tree[T]) CheckSize() bool {
	if nil != tree.usable() {
		return false
	}
	n := tree.reachable(tree.root)
	if n != tree.count || n != tree.live() {
		tree.failf("size: %d  reachable: %d  allocated: %d", tree.count, n, tree.live())
		return false
	}
	return true
}

func (tree *Tree[T]) reachable(p int32) int {
	if null == p {
		return 0
	}
	return 1 + tree.reachable(tree.nodes[p].left) + tree.reachable(tree.nodes[p].right)
}

func (tree *Tree[T]) failf(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Errorf("check failed: "+format, arguments...)
	}
}
