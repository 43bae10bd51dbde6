// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"golang.org/x/exp/constraints"
)

// Key - the numeric types that can be used as keys
type Key interface {
	constraints.Integer | constraints.Float
}

// Node - a node in the tree
type Node[K Key] struct {
	left  *Node[K] // left sub-tree
	right *Node[K] // right sub-tree
	key   K        // key part for ordering
}

// Tree - type to hold the root node of a tree
type Tree[K Key] struct {
	root  *Node[K]
	count int
}

// New - create a tree containing the keys from the list
//
// the list need not be sorted and may contain duplicates
func New[K Key](keys []K) *Tree[K] {
	unique := uniqueSorted(keys)
	return &Tree[K]{
		root:  buildTree(unique),
		count: len(unique),
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

// Key - read the key from a node item
func (p *Node[K]) Key() K {
	return p.key
}

// Left - return the left sub-tree of a node
func (p *Node[K]) Left() *Node[K] {
	return p.left
}

// Right - return the right sub-tree of a node
func (p *Node[K]) Right() *Node[K] {
	return p.right
}
