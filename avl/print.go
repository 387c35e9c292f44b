// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - write an ASCII graphic representation of the tree, right
// sub-trees above left ones, and return its depth
func (tree *Tree[T]) Print(w io.Writer, printData bool) int {
	if nil != tree.usable() {
		return 0
	}
	return tree.printTree(w, tree.root, "", root, printData)
}

// internal print - returns the maximum depth of the tree
func (tree *Tree[T]) printTree(w io.Writer, p int32, prefix string, br branch, printData bool) int {
	if null == p {
		return 0
	}
	n := &tree.nodes[p]
	rd := 0
	ld := 0
	if null != n.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = tree.printTree(w, n.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if null != n.up {
		up = tree.nodes[n.up].value
	}
	if printData {
		fmt.Fprintf(w, "%v ^%v ×%d h:%d %+d\n", n.value, up, n.count, n.height, tree.balance(p))
	} else {
		fmt.Fprintf(w, "%v ^%v\n", n.value, up)
	}
	if null != n.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = tree.printTree(w, n.left, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
