// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"io"
)

// prefixes for the print routine
const (
	branchLeft  = "└── " // left or root node
	branchRight = "┌── "
	pipe        = "│   "
	blank       = "    "
)

// Print - display a box drawing representation of the tree, right
// sub-trees above their parent and left sub-trees below
// returns the number of levels printed
func (tree *Tree[K]) Print(w io.Writer) int {
	return printTree(w, tree.root, "", true)
}

// internal print - returns the maximum depth of the tree
func printTree[K Key](w io.Writer, p *Node[K], prefix string, isLeft bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := blank
		if isLeft {
			t = pipe
		}
		rd = printTree(w, p.right, prefix+t, false)
	}

	connector := branchRight
	if isLeft {
		connector = branchLeft
	}
	fmt.Fprintf(w, "%s%s%v\n", prefix, connector, p.key)

	if nil != p.left {
		t := pipe
		if isLeft {
			t = blank
		}
		ld = printTree(w, p.left, prefix+t, true)
	}
	return 1 + max(rd, ld)
}
