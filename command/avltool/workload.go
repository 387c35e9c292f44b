// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// output selection for a workload run
type display struct {
	quiet   bool // only errors
	verbose bool // node data in the drawing
}

// build a tree from the insert list then apply the delete list
//
// a delete of an absent key is reported and skipped, an allocation
// failure stops the build
func buildTree(conf *Configuration, log *logger.L) (*avl.Tree[int], error) {

	policy, err := conf.policy()
	if nil != err {
		return nil, err
	}

	options := []avl.Option{avl.WithPolicy(policy), avl.WithLimit(conf.Limit)}
	if nil != log {
		options = append(options, avl.WithLogger(log))
	}

	tree, err := avl.New[int](avl.Ordered[int], nil, options...)
	if nil != err {
		return nil, err
	}

	for _, key := range conf.Insert {
		if err := tree.Insert(key); nil != err {
			tree.Destroy()
			return nil, errors.Wrapf(err, "insert: %d", key)
		}
	}

	for _, key := range conf.Delete {
		err := tree.Delete(key)
		if nil == err {
			continue
		}
		if fault.IsErrNotFound(err) || fault.IsErrEmpty(err) {
			if nil != log {
				log.Warnf("delete: %d  error: %s", key, err)
			}
			continue
		}
		tree.Destroy()
		return nil, errors.Wrapf(err, "delete: %d", key)
	}

	return tree, nil
}

// run the workload, verify the tree and write the requested views
func runWorkload(w io.Writer, conf *Configuration, log *logger.L, show display) error {

	tree, err := buildTree(conf, log)
	if nil != err {
		return err
	}
	defer tree.Destroy()

	if err := tree.Check(); nil != err {
		return err
	}

	if show.quiet {
		return nil
	}

	fmt.Fprintf(w, "size: %d\n", tree.Size())
	if root, err := tree.Root(); nil == err {
		fmt.Fprintf(w, "height: %d\n", root.Height())
	}

	for _, name := range conf.Traverse {
		keys, err := traverse(tree, name)
		if nil != err {
			return err
		}
		fmt.Fprintf(w, "%s: %s\n", name, keys)
	}

	if conf.Print {
		tree.Print(w, show.verbose)
	}

	return nil
}

// build and verify only
func checkWorkload(w io.Writer, conf *Configuration, log *logger.L, show display) error {

	tree, err := buildTree(conf, log)
	if nil != err {
		return err
	}
	defer tree.Destroy()

	if err := tree.Check(); nil != err {
		return err
	}

	if !show.quiet {
		fmt.Fprintf(w, "ok: %d keys\n", tree.Size())
	}
	return nil
}

// render one traversal as a space separated key list
func traverse(tree *avl.Tree[int], name string) (string, error) {

	keys := make([]string, 0, tree.Size())
	action := func(node avl.Node[int]) {
		keys = append(keys, fmt.Sprintf("%d", node.Value()))
	}

	var err error
	switch name {
	case "inorder":
		err = tree.Inorder(action)
	case "preorder":
		err = tree.Preorder(action)
	case "postorder":
		err = tree.Postorder(action)
	case "level":
		err = tree.LevelOrder(action)
	default:
		err = fault.ErrInvalidOperation
	}
	if nil != err {
		return "", err
	}
	return strings.Join(keys, " "), nil
}
