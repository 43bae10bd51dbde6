// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Rebalance - rebuild the tree with minimal height
//
// the in-order keys are already sorted and unique so they can be
// passed straight to the builder
func (tree *Tree[K]) Rebalance() {
	keys := tree.Keys()
	tree.root = buildTree(keys)
	tree.count = len(keys)
}
