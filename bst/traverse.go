// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"iter"

	"github.com/bitmark-inc/bstree/fault"
)

// VisitFunc - called once for each node by LevelOrder
type VisitFunc[K Key] func(node *Node[K])

// LevelOrder - visit all nodes breadth first, left to right within
// each level
//
// a nil visitor is rejected before any node is visited
func (tree *Tree[K]) LevelOrder(visit VisitFunc[K]) error {
	if nil == visit {
		return fault.ErrInvalidCallback
	}

	queue := make([]*Node[K], 0, tree.count)
	if nil != tree.root {
		queue = append(queue, tree.root)
	}

	for len(queue) > 0 {
		p := queue[0]
		queue[0] = nil
		queue = queue[1:]

		visit(p)

		if nil != p.left {
			queue = append(queue, p.left)
		}
		if nil != p.right {
			queue = append(queue, p.right)
		}
	}
	return nil
}

// InOrder - keys of the whole tree in ascending order
func (tree *Tree[K]) InOrder() iter.Seq[K] {
	return tree.root.InOrder()
}

// PreOrder - keys of the whole tree, each node before its sub-trees
func (tree *Tree[K]) PreOrder() iter.Seq[K] {
	return tree.root.PreOrder()
}

// PostOrder - keys of the whole tree, each node after its sub-trees
func (tree *Tree[K]) PostOrder() iter.Seq[K] {
	return tree.root.PostOrder()
}

// InOrder - keys of a sub-tree: left, node, right
//
// a nil node gives an empty sequence
func (p *Node[K]) InOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		inOrder(p, yield)
	}
}

// PreOrder - keys of a sub-tree: node, left, right
func (p *Node[K]) PreOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		preOrder(p, yield)
	}
}

// PostOrder - keys of a sub-tree: left, right, node
func (p *Node[K]) PostOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		postOrder(p, yield)
	}
}

// the internal traversals return false once yield has asked to stop
func inOrder[K Key](p *Node[K], yield func(K) bool) bool {
	if nil == p {
		return true
	}
	return inOrder(p.left, yield) && yield(p.key) && inOrder(p.right, yield)
}

func preOrder[K Key](p *Node[K], yield func(K) bool) bool {
	if nil == p {
		return true
	}
	return yield(p.key) && preOrder(p.left, yield) && preOrder(p.right, yield)
}

func postOrder[K Key](p *Node[K], yield func(K) bool) bool {
	if nil == p {
		return true
	}
	return postOrder(p.left, yield) && postOrder(p.right, yield) && yield(p.key)
}

// Keys - all keys in ascending order
func (tree *Tree[K]) Keys() []K {
	keys := make([]K, 0, tree.count)
	for k := range tree.root.InOrder() {
		keys = append(keys, k)
	}
	return keys
}

// NodesAtDepth - the nodes at a specific depth, left to right
func (tree *Tree[K]) NodesAtDepth(depth uint) []*Node[K] {
	if nil == tree.root {
		return []*Node[K]{}
	}
	return tree.root.NodesAtDepth(depth)
}

// NodesAtDepth - the nodes at a specific depth below this node
func (p *Node[K]) NodesAtDepth(depth uint) []*Node[K] {
	nodes := []*Node[K]{}

	if depth == 0 {
		nodes = []*Node[K]{p}
	} else {
		if nil != p.left {
			nodes = append(nodes, p.left.NodesAtDepth(depth-1)...)
		}
		if nil != p.right {
			nodes = append(nodes, p.right.NodesAtDepth(depth-1)...)
		}
	}
	return nodes
}
