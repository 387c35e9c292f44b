// Copyright (c) 2014-2017 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Get - index to specific item in ascending order
//
// steps from the lowest node so it is linear in index
func (tree *Tree[T]) Get(index int) Node[T] {
	if nil != tree.usable() || index < 0 || index >= tree.count {
		return Node[T]{}
	}
	p := tree.first(tree.root)
	for ; index > 0 && null != p; index -= 1 {
		p = tree.next(p)
	}
	return tree.handle(p)
}

// Search - find a specific item and its zero based position in
// ascending order, the nil node and -1 if it is not present
func (tree *Tree[T]) Search(key T) (Node[T], int) {
	if nil != tree.usable() {
		return Node[T]{}, -1
	}
	p := tree.locate(tree.root, key)
	if null == p {
		return Node[T]{}, -1
	}
	index := 0
	for q := tree.prev(p); null != q; q = tree.prev(q) {
		index += 1
	}
	return tree.handle(p), index
}
