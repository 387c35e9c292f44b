// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

func compareInts(a int, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

func newIntTree(t *testing.T, keys []int, options ...avl.Option) *avl.Tree[int] {
	tree, err := avl.New[int](compareInts, nil, options...)
	require.Nil(t, err, "new tree")
	for _, k := range keys {
		require.Nil(t, tree.Insert(k), "insert %d", k)
	}
	return tree
}

func inorder(t *testing.T, tree *avl.Tree[int]) []int {
	values := []int{}
	err := tree.Inorder(func(n avl.Node[int]) {
		values = append(values, n.Value())
	})
	require.Nil(t, err, "inorder")
	return values
}

func preorder(t *testing.T, tree *avl.Tree[int]) []int {
	values := []int{}
	err := tree.Preorder(func(n avl.Node[int]) {
		values = append(values, n.Value())
	})
	require.Nil(t, err, "preorder")
	return values
}

var scenarioC = []int{5, 3, 8, 1, 4, 7, 9, 2}

func TestRotateLeftOnAscendingInsert(t *testing.T) {
	tree := newIntTree(t, []int{10, 20, 30})

	root, err := tree.Root()
	require.Nil(t, err, "root")
	assert.Equal(t, 20, root.Value(), "wrong root")
	assert.Equal(t, 2, root.Height(), "wrong root height")
	assert.Equal(t, 10, root.Left().Value(), "wrong left")
	assert.Equal(t, 1, root.Left().Height(), "wrong left height")
	assert.Equal(t, 30, root.Right().Value(), "wrong right")
	assert.Equal(t, 1, root.Right().Height(), "wrong right height")
	assert.True(t, root.Parent().IsNil(), "root has a parent")
	assert.Equal(t, root, root.Left().Parent(), "wrong left parent")
	assert.Equal(t, root, root.Right().Parent(), "wrong right parent")
	assert.Nil(t, tree.Check(), "inconsistent")
}

func TestRotateRightOnDescendingInsert(t *testing.T) {
	tree := newIntTree(t, []int{30, 20, 10})

	root, err := tree.Root()
	require.Nil(t, err, "root")
	assert.Equal(t, 20, root.Value(), "wrong root")
	assert.Equal(t, 10, root.Left().Value(), "wrong left")
	assert.Equal(t, 30, root.Right().Value(), "wrong right")
	assert.Nil(t, tree.Check(), "inconsistent")
}

func TestDoubleRotations(t *testing.T) {
	// LR: 30, 10, 20 and RL: 10, 30, 20 both settle on 20
	for _, keys := range [][]int{{30, 10, 20}, {10, 30, 20}} {
		tree := newIntTree(t, keys)
		root, err := tree.Root()
		require.Nil(t, err, "root")
		assert.Equal(t, 20, root.Value(), "wrong root for: %v", keys)
		assert.Equal(t, []int{20, 10, 30}, preorder(t, tree), "wrong shape for: %v", keys)
		assert.Nil(t, tree.Check(), "inconsistent for: %v", keys)
	}
}

func TestSequentialInsert(t *testing.T) {
	tree := newIntTree(t, scenarioC)

	assert.Nil(t, tree.Check(), "inconsistent")
	assert.Equal(t, []int{1, 2, 3, 4, 5, 7, 8, 9}, inorder(t, tree), "wrong inorder")
	assert.Equal(t, []int{5, 3, 1, 2, 4, 8, 7, 9}, preorder(t, tree), "wrong preorder")
	assert.Equal(t, 8, tree.Size(), "wrong size")
}

func TestDeleteTwoChildren(t *testing.T) {
	tree := newIntTree(t, scenarioC)

	require.Nil(t, tree.Delete(3), "delete")

	assert.Nil(t, tree.Check(), "inconsistent")
	assert.Equal(t, []int{1, 2, 4, 5, 7, 8, 9}, inorder(t, tree), "wrong inorder")
	// the successor swap leaves 4 over 1 → 2, which needs a double rotation
	assert.Equal(t, []int{5, 2, 1, 4, 8, 7, 9}, preorder(t, tree), "wrong preorder")
	assert.Equal(t, 7, tree.Size(), "wrong size")
	assert.True(t, tree.Find(3).IsNil(), "3 still present")
}

func TestEmptyTree(t *testing.T) {
	tree := newIntTree(t, nil)

	assert.True(t, tree.IsEmpty(), "not empty")
	assert.Equal(t, 0, tree.Size(), "wrong size")
	assert.True(t, tree.Find(1).IsNil(), "found in empty tree")
	assert.True(t, tree.Min().IsNil(), "min of empty tree")
	assert.True(t, tree.Max().IsNil(), "max of empty tree")
	assert.Equal(t, fault.ErrEmptyTree, tree.Delete(1), "wrong delete error")

	_, err := tree.Root()
	assert.Equal(t, fault.ErrEmptyTree, err, "wrong root error")
	_, err = tree.MinValue()
	assert.Equal(t, fault.ErrEmptyTree, err, "wrong min value error")
	_, err = tree.Predecessor(1)
	assert.Equal(t, fault.ErrEmptyTree, err, "wrong predecessor error")

	calls := 0
	assert.Nil(t, tree.LevelOrder(func(avl.Node[int]) { calls += 1 }), "level order")
	assert.Equal(t, 0, calls, "action called on empty tree")
}

func TestDeleteAbsentKey(t *testing.T) {
	tree := newIntTree(t, scenarioC)
	before := preorder(t, tree)

	err := tree.Delete(6)
	assert.Equal(t, fault.ErrKeyNotFound, err, "wrong error")
	assert.True(t, fault.IsErrNotFound(err), "wrong error class")
	assert.Equal(t, before, preorder(t, tree), "structure changed")
	assert.Equal(t, 8, tree.Size(), "size changed")
}

func TestRoundTrip(t *testing.T) {
	tree := newIntTree(t, nil)
	for i := -50; i <= 50; i += 7 {
		require.Nil(t, tree.Insert(i), "insert")
		n := tree.Find(i)
		require.False(t, n.IsNil(), "not found: %d", i)
		assert.Equal(t, i, n.Value(), "wrong value")
		assert.Equal(t, 1, n.Count(), "wrong count")
	}
}

func TestSizeLaw(t *testing.T) {
	tree := newIntTree(t, nil)
	for i := 0; i < 100; i += 1 {
		require.Nil(t, tree.Insert(i*3), "insert")
	}
	assert.Equal(t, 100, tree.Size(), "wrong size")

	require.Nil(t, tree.Insert(42), "insert duplicate")
	assert.Equal(t, 100, tree.Size(), "duplicate changed size")
	assert.Equal(t, 2, tree.Find(42).Count(), "duplicate not counted")

	// default policy removes the node whatever its count
	require.Nil(t, tree.Delete(42), "delete")
	assert.True(t, tree.Find(42).IsNil(), "duplicate still present")
	assert.Equal(t, 99, tree.Size(), "wrong size after delete")
	assert.Nil(t, tree.Check(), "inconsistent")
}

func TestDecrementCountPolicy(t *testing.T) {
	tree := newIntTree(t, []int{1, 2, 3, 2, 2}, avl.WithPolicy(avl.DecrementCount))

	assert.Equal(t, 3, tree.Find(2).Count(), "wrong count")

	require.Nil(t, tree.Delete(2), "delete")
	assert.Equal(t, 2, tree.Find(2).Count(), "count not decremented")
	assert.Equal(t, 3, tree.Size(), "size changed")

	require.Nil(t, tree.Delete(2), "delete")
	require.Nil(t, tree.Delete(2), "delete")
	assert.True(t, tree.Find(2).IsNil(), "still present at zero count")
	assert.Equal(t, 2, tree.Size(), "wrong size")
	assert.Equal(t, fault.ErrKeyNotFound, tree.Delete(2), "wrong error")
	assert.Nil(t, tree.Check(), "inconsistent")
}

func TestInvalidPolicy(t *testing.T) {
	_, err := avl.New[int](compareInts, nil, avl.WithPolicy(avl.Policy(7)))
	assert.Equal(t, fault.ErrInvalidPolicy, err, "wrong error")
}

func TestPredecessorSuccessor(t *testing.T) {
	tree := newIntTree(t, scenarioC)

	items := []struct {
		key  int
		pred int // 0 ⇒ none
		succ int
	}{
		{1, 0, 2},
		{2, 1, 3},
		{3, 2, 4},
		{4, 3, 5},
		{5, 4, 7},
		{7, 5, 8},
		{8, 7, 9},
		{9, 8, 0},
	}

	for _, item := range items {
		p, err := tree.Predecessor(item.key)
		require.Nil(t, err, "predecessor: %d", item.key)
		s, err := tree.Successor(item.key)
		require.Nil(t, err, "successor: %d", item.key)
		if 0 == item.pred {
			assert.True(t, p.IsNil(), "unexpected predecessor of: %d", item.key)
		} else {
			assert.Equal(t, item.pred, p.Value(), "wrong predecessor of: %d", item.key)
		}
		if 0 == item.succ {
			assert.True(t, s.IsNil(), "unexpected successor of: %d", item.key)
		} else {
			assert.Equal(t, item.succ, s.Value(), "wrong successor of: %d", item.key)
		}
	}

	_, err := tree.Predecessor(6)
	assert.Equal(t, fault.ErrKeyNotFound, err, "wrong predecessor error")
	_, err = tree.Successor(6)
	assert.Equal(t, fault.ErrKeyNotFound, err, "wrong successor error")
}

func TestPredecessorSuccessorSymmetry(t *testing.T) {
	keys := []int{}
	for i := 0; i < 500; i += 1 {
		keys = append(keys, (i*7919)%1009)
	}
	tree := newIntTree(t, keys)

	for _, k := range keys {
		p, err := tree.Predecessor(k)
		require.Nil(t, err, "predecessor")
		s, err := tree.Successor(k)
		require.Nil(t, err, "successor")
		if p.IsNil() || s.IsNil() {
			continue
		}
		back, err := tree.Successor(p.Value())
		require.Nil(t, err, "successor of predecessor")
		assert.Equal(t, k, back.Value(), "successor(predecessor(%d))", k)
		back, err = tree.Predecessor(s.Value())
		require.Nil(t, err, "predecessor of successor")
		assert.Equal(t, k, back.Value(), "predecessor(successor(%d))", k)
	}
}

func TestLowestCommonAncestor(t *testing.T) {
	tree := newIntTree(t, scenarioC)

	items := []struct {
		a, b     int
		ancestor int
	}{
		{1, 4, 3},
		{2, 9, 5},
		{7, 9, 8},
		{1, 2, 1},
		{2, 1, 1},
		{3, 3, 3},
		{2, 4, 3},
		{4, 7, 5},
	}
	for _, item := range items {
		n, err := tree.LowestCommonAncestor(item.a, item.b)
		require.Nil(t, err, "lca(%d, %d)", item.a, item.b)
		assert.Equal(t, item.ancestor, n.Value(), "lca(%d, %d)", item.a, item.b)
	}

	_, err := tree.LowestCommonAncestor(1, 6)
	assert.Equal(t, fault.ErrKeyNotFound, err, "wrong error")
	_, err = tree.LowestCommonAncestor(6, 1)
	assert.Equal(t, fault.ErrKeyNotFound, err, "wrong error")
}

func TestMinMax(t *testing.T) {
	tree := newIntTree(t, scenarioC)

	assert.Equal(t, 1, tree.Min().Value(), "wrong min")
	assert.Equal(t, 9, tree.Max().Value(), "wrong max")

	v, err := tree.MaxValue()
	assert.Nil(t, err, "max value")
	assert.Equal(t, 9, v, "wrong max value")

	// sub-tree extremes
	eight := tree.Find(8)
	assert.Equal(t, 7, eight.Min().Value(), "wrong sub-tree min")
	assert.Equal(t, 9, eight.Max().Value(), "wrong sub-tree max")
	three := tree.Find(3)
	assert.Equal(t, 1, three.Min().Value(), "wrong sub-tree min")
	assert.Equal(t, 4, three.Max().Value(), "wrong sub-tree max")

	assert.True(t, (avl.Node[int]{}).Min().IsNil(), "min of nil node")
}

func TestStaleHandle(t *testing.T) {
	tree := newIntTree(t, scenarioC)

	leaf := tree.Find(9)
	require.False(t, leaf.IsNil(), "missing 9")
	require.Nil(t, tree.Delete(9), "delete")
	assert.True(t, leaf.IsNil(), "handle survived delete")
	assert.Equal(t, 0, leaf.Value(), "stale handle has a value")

	// the reclaimed slot is reused but the old handle stays dead
	require.Nil(t, tree.Insert(10), "insert")
	assert.True(t, leaf.IsNil(), "handle revived by slot reuse")
	assert.Equal(t, 10, tree.Find(10).Value(), "reused slot")
	assert.Nil(t, tree.Check(), "inconsistent")
}

func TestAscendingBulkStaysBalanced(t *testing.T) {
	tree := newIntTree(t, nil)
	const n = 1<<12 - 1
	for i := 0; i < n; i += 1 {
		require.Nil(t, tree.Insert(i), "insert")
	}
	require.Nil(t, tree.Check(), "inconsistent")

	root, err := tree.Root()
	require.Nil(t, err, "root")
	assert.Equal(t, 12, root.Height(), "sequential insert did not give a full tree")

	// delete every other key from the front, forcing delete rotations
	for i := 0; i < n; i += 2 {
		require.Nil(t, tree.Delete(i), "delete %d", i)
	}
	require.Nil(t, tree.Check(), "inconsistent after deletes")
	assert.Equal(t, n/2, tree.Size(), "wrong size")
}
