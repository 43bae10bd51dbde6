// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Insert - insert a new key into the tree
// returns the possibly updated root
//
// inserting a key that is already present leaves the tree unchanged,
// no rebalancing is done so the tree may become unbalanced
func (tree *Tree[K]) Insert(key K) *Node[K] {
	added := false
	tree.root, added = insert(key, tree.root)
	if added {
		tree.count += 1
	}
	return tree.root
}

// internal routine for insert
func insert[K Key](key K, p *Node[K]) (*Node[K], bool) {
	if nil == p { // insert new node
		return &Node[K]{key: key}, true
	}
	added := false
	switch {
	case key < p.key:
		p.left, added = insert(key, p.left)
	case key > p.key:
		p.right, added = insert(key, p.right)
	default:
		// already present
	}
	return p, added
}
