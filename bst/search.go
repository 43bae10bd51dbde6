// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Find - find the node holding a specific key
func (tree *Tree[K]) Find(key K) (*Node[K], error) {
	p := search(key, tree.root)
	if nil == p {
		return nil, fault.ErrKeyNotFound
	}
	return p, nil
}

// Contains - true if the key is in the tree
func (tree *Tree[K]) Contains(key K) bool {
	return nil != search(key, tree.root)
}

func search[K Key](key K, p *Node[K]) *Node[K] {
	if nil == p {
		return nil
	}

	switch {
	case key < p.key:
		return search(key, p.left)
	case key > p.key:
		return search(key, p.right)
	default:
		return p
	}
}

// MinValueNode - the node with the lowest key in a sub-tree
// or nil for an empty sub-tree
func MinValueNode[K Key](node *Node[K]) *Node[K] {
	if nil == node {
		return nil
	}
	return minValueNode(node)
}

// internal: node must not be nil
func minValueNode[K Key](p *Node[K]) *Node[K] {
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: node must not be nil
func maxValueNode[K Key](p *Node[K]) *Node[K] {
	for nil != p.right {
		p = p.right
	}
	return p
}

// Min - the lowest key in the tree
func (tree *Tree[K]) Min() (K, error) {
	if nil == tree.root {
		var zero K
		return zero, fault.ErrKeyNotFound
	}
	return minValueNode(tree.root).key, nil
}

// Max - the highest key in the tree
func (tree *Tree[K]) Max() (K, error) {
	if nil == tree.root {
		var zero K
		return zero, fault.ErrKeyNotFound
	}
	return maxValueNode(tree.root).key, nil
}
