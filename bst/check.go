// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Check - verify the key ordering of every node and the node count
func (tree *Tree[K]) Check() bool {
	n, ok := checkOrder(tree.root, nil, nil)
	return ok && n == tree.count
}

// internal: consistency checker
// keys must lie strictly between low and high, nil means unbounded
// returns the number of nodes in the sub-tree
func checkOrder[K Key](p *Node[K], low *K, high *K) (int, bool) {
	if nil == p {
		return 0, true
	}
	if nil != low && p.key <= *low {
		return 0, false
	}
	if nil != high && p.key >= *high {
		return 0, false
	}
	nl, ok := checkOrder(p.left, low, &p.key)
	if !ok {
		return 0, false
	}
	nr, ok := checkOrder(p.right, &p.key, high)
	if !ok {
		return 0, false
	}
	return 1 + nl + nr, true
}
