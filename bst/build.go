// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"slices"
)

// return a sorted copy of keys with duplicates removed
func uniqueSorted[K Key](keys []K) []K {
	unique := slices.Clone(keys)
	slices.Sort(unique)
	return slices.Compact(unique)
}

// build a minimal height tree from sorted, duplicate free keys
//
// the middle key becomes the root, the keys before it the left
// sub-tree and the keys after it the right sub-tree
func buildTree[K Key](keys []K) *Node[K] {
	if 0 == len(keys) {
		return nil
	}

	mid := len(keys) / 2
	return &Node[K]{
		key:   keys[mid],
		left:  buildTree(keys[:mid]),
		right: buildTree(keys[mid+1:]),
	}
}
