// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/xlab/treeprint"
)

// Branches - the tree as a treeprint tree, children are listed left
// then right and tagged [L] or [R]
func (tree *Tree[K]) Branches() treeprint.Tree {
	if nil == tree.root {
		return treeprint.New()
	}
	t := treeprint.NewWithRoot(tree.root.key)
	addBranches(t, tree.root)
	return t
}

func addBranches[K Key](t treeprint.Tree, p *Node[K]) {
	for _, child := range []struct {
		side string
		node *Node[K]
	}{
		{"L", p.left},
		{"R", p.right},
	} {
		switch {
		case nil == child.node:
		case nil == child.node.left && nil == child.node.right:
			t.AddMetaNode(child.side, child.node.key)
		default:
			addBranches(t.AddMetaBranch(child.side, child.node.key), child.node)
		}
	}
}
