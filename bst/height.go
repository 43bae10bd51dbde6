// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Height - height of the whole tree, -1 if empty
func (tree *Tree[K]) Height() int {
	return tree.root.Height()
}

// Height - number of edges on the longest path down to a leaf
//
// a leaf has height 0 and a nil node has height -1
func (p *Node[K]) Height() int {
	if nil == p {
		return -1
	}
	return 1 + max(p.left.Height(), p.right.Height())
}

// Depth - number of edges from the root to this particular node
//
// the node is matched by identity, not by key, so it must be one
// obtained from this tree e.g. by Find
func (tree *Tree[K]) Depth(node *Node[K]) (int, error) {
	if nil == node {
		return -1, fault.ErrNodeNotFound
	}
	d := depth(tree.root, node, 0)
	if d < 0 {
		return -1, fault.ErrNodeNotFound
	}
	return d, nil
}

// internal: -1 if target is not in the sub-tree
func depth[K Key](p *Node[K], target *Node[K], current int) int {
	if nil == p {
		return -1
	}
	if p == target {
		return current
	}
	if d := depth(p.left, target, current+1); d >= 0 {
		return d
	}
	return depth(p.right, target, current+1)
}

// IsBalanced - true if, at every node, the heights of the two
// sub-trees differ by at most one
func (tree *Tree[K]) IsBalanced() bool {
	balanced, _ := checkBalanced(tree.root)
	return balanced
}

// compute balance and height together in one post-order pass
func checkBalanced[K Key](p *Node[K]) (bool, int) {
	if nil == p {
		return true, -1
	}

	leftBalanced, leftHeight := checkBalanced(p.left)
	rightBalanced, rightHeight := checkBalanced(p.right)

	diff := leftHeight - rightHeight
	balanced := leftBalanced && rightBalanced && diff >= -1 && diff <= 1

	return balanced, 1 + max(leftHeight, rightHeight)
}
