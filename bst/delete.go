// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Delete - removes a specific key from the tree
// returns the possibly updated root
//
// deleting a key that is not in the tree leaves the tree unchanged
func (tree *Tree[K]) Delete(key K) *Node[K] {
	removed := false
	tree.root, removed = del(key, tree.root)
	if removed {
		tree.count -= 1
	}
	return tree.root
}

// internal delete routine
func del[K Key](key K, p *Node[K]) (*Node[K], bool) {
	if nil == p { // key not in tree
		return nil, false
	}
	removed := false
	switch {
	case key < p.key:
		p.left, removed = del(key, p.left)
	case key > p.key:
		p.right, removed = del(key, p.right)
	default: // found: delete p
		if nil == p.left {
			return p.right, true
		}
		if nil == p.right {
			return p.left, true
		}

		// two children: take over the in-order successor's key
		// and remove the successor from the right sub-tree
		successor := minValueNode(p.right)
		p.key = successor.key
		p.right, removed = del(successor.key, p.right)
	}
	return p, removed
}
