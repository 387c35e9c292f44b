// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/logger"
)

// CompareFunc - total order over values: negative if a < b, zero if
// equal, positive if a > b
type CompareFunc[T any] func(a T, b T) int

// DestroyFunc - optional release hook run on a value just before its
// node is reclaimed
type DestroyFunc[T any] func(value T)

// Policy - what Delete does with a key inserted more than once
type Policy int

const (
	// RemoveNode - remove the whole node whatever its count
	RemoveNode Policy = iota
	// DecrementCount - reduce the count, remove the node once it reaches zero
	DecrementCount
)

// Option - construction time setting for a tree
type Option func(*settings) error

type settings struct {
	limit  int
	policy Policy
	log    *logger.L
}

// WithLimit - maximum number of nodes the tree may hold, zero for no
// limit; an insert beyond the limit fails with an allocation error
func WithLimit(n int) Option {
	return func(s *settings) error {
		if n < 0 {
			return fault.ErrInvalidLimit
		}
		s.limit = n
		return nil
	}
}

// WithPolicy - select the removal policy for duplicate keys
func WithPolicy(p Policy) Option {
	return func(s *settings) error {
		switch p {
		case RemoveNode, DecrementCount:
			s.policy = p
			return nil
		default:
			return fault.ErrInvalidPolicy
		}
	}
}

// WithLogger - trace structural changes to a logger channel
func WithLogger(log *logger.L) Option {
	return func(s *settings) error {
		s.log = log
		return nil
	}
}

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	nodes     []node[T] // arena, slot zero is the sentinel
	pool      int32     // head of reclaimed slot list
	freeNodes int       // number of slots in the pool
	root      int32
	count     int // distinct keys

	compare CompareFunc[T]
	destroy DestroyFunc[T]
	limit   int
	policy  Policy
	log     *logger.L

	destroyed bool
}

// New - create an initially empty tree
//
// compare is required, destroy may be nil
func New[T any](compare CompareFunc[T], destroy DestroyFunc[T], options ...Option) (*Tree[T], error) {
	if nil == compare {
		return nil, fault.ErrNilComparator
	}

	s := settings{
		limit:  0,
		policy: RemoveNode,
	}
	for _, option := range options {
		if err := option(&s); nil != err {
			return nil, err
		}
	}

	return &Tree[T]{
		nodes:   make([]node[T], 1, 64),
		pool:    null,
		root:    null,
		count:   0,
		compare: compare,
		destroy: destroy,
		limit:   s.limit,
		policy:  s.policy,
		log:     s.log,
	}, nil
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree || null == tree.root
}

// Size - number of distinct keys currently in the tree
func (tree *Tree[T]) Size() int {
	if nil == tree {
		return 0
	}
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() (Node[T], error) {
	if err := tree.usable(); nil != err {
		return Node[T]{}, err
	}
	if null == tree.root {
		return Node[T]{}, fault.ErrEmptyTree
	}
	return tree.handle(tree.root), nil
}

// Destroy - release every node, running the destructor on each value
// in post-order, then drop the arena
func (tree *Tree[T]) Destroy() error {
	if err := tree.usable(); nil != err {
		return err
	}

	n := tree.teardown(tree.root)
	if nil != tree.log {
		tree.log.Debugf("destroyed tree: %d nodes released", n)
	}

	tree.nodes = nil
	tree.pool = null
	tree.freeNodes = 0
	tree.root = null
	tree.count = 0
	tree.destroyed = true
	return nil
}

// internal: post-order release, returns the number of nodes visited
func (tree *Tree[T]) teardown(p int32) int {
	if null == p {
		return 0
	}
	n := tree.teardown(tree.nodes[p].left)
	n += tree.teardown(tree.nodes[p].right)
	if nil != tree.destroy {
		tree.destroy(tree.nodes[p].value)
	}
	return n + 1
}

// internal: check the tree can be operated on
func (tree *Tree[T]) usable() error {
	if nil == tree {
		return fault.ErrNilTree
	}
	if tree.destroyed {
		return fault.ErrTreeDestroyed
	}
	return nil
}
